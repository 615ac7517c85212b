package binder

import (
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"strings"
)

// DefaultMaxMemory is the default maximum memory used for parsing multipart forms (10MB).
const DefaultMaxMemory = 10 << 20 // 10 MB

// maxBoundaryLength follows RFC 2046.
const maxBoundaryLength = 70

// Params collects the body and query parameters of r into a flat map.
//
// Bodies are read for application/x-www-form-urlencoded and
// multipart/form-data requests; any other body is left untouched. When a key
// carries several values only the first one is kept, and body values take
// precedence over query values, as with r.FormValue.
func Params(r *http.Request) (map[string]string, error) {
	query, err := url.ParseQuery(r.URL.RawQuery)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidQuery, err)
	}

	values := make(map[string]string, len(query))
	for key, vals := range query {
		if len(vals) > 0 {
			values[key] = vals[0]
		}
	}

	body, err := bodyValues(r)
	if err != nil {
		return nil, err
	}
	for key, vals := range body {
		if len(vals) > 0 {
			values[key] = vals[0]
		}
	}

	return values, nil
}

// bodyValues parses the request body as a form. It returns nil for requests
// without a form content type.
func bodyValues(r *http.Request) (map[string][]string, error) {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" || r.Body == nil || r.Body == http.NoBody {
		return nil, nil
	}

	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		// Not a form we know how to read.
		return nil, nil
	}

	switch mediaType {
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidForm, err)
		}
		return r.PostForm, nil

	case "multipart/form-data":
		if !validBoundary(params["boundary"]) {
			return nil, fmt.Errorf("%w: invalid boundary parameter", ErrInvalidForm)
		}
		// Note: Request size limits should be handled at server/middleware level
		if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidForm, err)
		}
		if r.MultipartForm == nil {
			return nil, nil
		}
		return r.MultipartForm.Value, nil
	}

	return nil, nil
}

func validBoundary(boundary string) bool {
	if boundary == "" || len(boundary) > maxBoundaryLength {
		return false
	}
	return !strings.ContainsAny(boundary, "\r\n\x00")
}
