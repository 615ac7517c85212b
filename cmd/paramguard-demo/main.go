// Command paramguard-demo serves a few endpoints guarded by request
// validators. It is meant for trying the library with curl:
//
//	curl -i 'localhost:8080/users?limit=500'
//	curl -i -X POST localhost:8080/teams/42/invites -d email=jane@example.com -d role=admin
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/paramguard/handler"
	"github.com/dmitrymomot/paramguard/pkg/config"
	"github.com/dmitrymomot/paramguard/pkg/httpserver"
	"github.com/dmitrymomot/paramguard/pkg/logger"
	"github.com/dmitrymomot/paramguard/pkg/request"
	"github.com/dmitrymomot/paramguard/pkg/requestid"
	"github.com/dmitrymomot/paramguard/pkg/validator"
)

type appConfig struct {
	Env       string `env:"APP_ENV" envDefault:"development"`
	Addr      string `env:"DEMO_ADDR"`
	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, "paramguard-demo"),
		logger.WithLevelString(cfg.LogLevel),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	}
	if cfg.LogFormat != "" {
		opts = append(opts, logger.WithFormat(logger.Format(cfg.LogFormat)))
	}
	log := logger.New(opts...)
	slog.SetDefault(log)

	if err := run(cfg, log); err != nil {
		log.Error("demo stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(cfg appConfig, log *slog.Logger) error {
	validationCfg, err := handler.LoadConfig()
	if err != nil {
		return err
	}

	var serverCfg httpserver.Config
	if err := config.Load(&serverCfg); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := httpserver.New(serverCfg, log, httpserver.WithAddr(cfg.Addr))
	return srv.Run(ctx, newRouter(log, validationCfg))
}

func newRouter(log *slog.Logger, cfg handler.Config) http.Handler {
	validate := func(v *request.Validator, opts ...handler.Option) func(http.Handler) http.Handler {
		return handler.Validate(v, append([]handler.Option{
			handler.WithLogger(log),
			handler.WithConfig(cfg),
		}, opts...)...)
	}

	r := chi.NewRouter()
	r.Use(requestid.Middleware)

	r.Get("/health", httpserver.HealthHandler())
	r.With(validate(listUsers())).Get("/users", echo)
	r.With(validate(createInvite())).Post("/teams/{teamID}/invites", echo)
	r.With(validate(listEvents())).Get("/events", echo)
	r.With(validate(searchPage(), handler.WithErrorPage(errorPage))).Get("/search", echo)

	return r
}

func listUsers() *request.Validator {
	return request.New().
		OptionalParamWithDefault("limit", validator.Int().Min(1).Max(100), int32(20)).
		OptionalParamWithDefault("offset", validator.Long().CoerceMin(0), int64(0)).
		OptionalParam("q", validator.String().Trim().MaxLength(64).NoNewlinesOrControlChars()).
		OptionalParamWithDefault("active", validator.Bool().AddMatchStrings(map[string]bool{"yes": true, "no": false}), true)
}

func createInvite() *request.Validator {
	profile := validator.Object().
		RequireFieldType("name", validator.TypeString).
		ValidateFieldWith("name", validator.String().NotBlank().MaxLength(80)).
		ValidateFieldWith("tags", validator.Array().MaxLength(10).OnlyAllowTypes(validator.TypeString))

	return request.New().
		Param("email", validator.Email().Trim().MaxLength(254)).
		Param("role", validator.String().ToLowerCase().IsIn("admin", "member", "viewer")).
		OptionalParam("profile", profile).
		OptionalParam("expires_at", validator.DateTime()).
		RouteParam("teamID", validator.Long().Min(1))
}

func listEvents() *request.Validator {
	return request.New().
		Param("from", validator.DateTime()).
		OptionalParam("to", validator.DateTime()).
		OptionalParam("session", validator.UUID().Version(4))
}

func searchPage() *request.Validator {
	return request.New().
		Param("q", validator.String().Trim().NotBlank().MinLength(2).MaxLength(64))
}

// echo writes the validated values back as JSON.
func echo(w http.ResponseWriter, r *http.Request) {
	res, ok := handler.ResultFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"request_id":   requestid.FromContext(r.Context()),
		"params":       res.Params(),
		"route_params": res.RouteParams(),
	})
}

func errorPage(p handler.ErrorPageParams) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, "<!doctype html><title>%d</title><h1>%s</h1><ul>",
			p.StatusCode, templ.EscapeString(p.Error)); err != nil {
			return err
		}
		for _, e := range p.Errors {
			if _, err := fmt.Fprintf(w, "<li><b>%s</b>: %s</li>",
				templ.EscapeString(e.Field), templ.EscapeString(e.Message)); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w, "</ul><p>Request %s</p>", templ.EscapeString(p.RequestID))
		return err
	})
}
