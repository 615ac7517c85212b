package validator

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// UUIDValidator parses canonical UUID strings (8-4-4-4-12 hex digits).
type UUIDValidator struct {
	version   *uuid.Version
	rejectNil bool
}

// UUID returns a UUID validator accepting any version.
func UUID() *UUIDValidator {
	return &UUIDValidator{}
}

// Version requires the UUID to be of version n.
func (v *UUIDValidator) Version(n int) *UUIDValidator {
	ver := uuid.Version(n)
	v.version = &ver
	return v
}

// RejectNil rejects the all-zero UUID.
func (v *UUIDValidator) RejectNil() *UUIDValidator {
	v.rejectNil = true
	return v
}

func (v *UUIDValidator) Validate(_ context.Context, p Param) Result {
	s := p.Value
	// uuid.Parse also accepts urn: and braced forms; only the canonical one is allowed here.
	if len(s) != 36 || s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return Invalid(KindInvalidUUID, "The provided value does not represent a UUID")
	}

	id, err := uuid.Parse(s)
	if err != nil {
		return Invalid(KindInvalidUUID, "The provided value does not represent a UUID")
	}
	if v.rejectNil && id == uuid.Nil {
		return Invalid(KindInvalidUUID, "The provided UUID cannot be nil")
	}
	if v.version != nil && id.Version() != *v.version {
		return Invalid(KindInvalidUUID, fmt.Sprintf("The provided UUID is not version %d", *v.version))
	}

	return Valid(id)
}
