package main

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-r2base/internal/app"
	httphandler "github.com/MKhiriev/go-r2base/internal/handler/http"
	"github.com/MKhiriev/go-r2base/internal/registry"
	"github.com/MKhiriev/go-r2base/internal/response"
	"github.com/MKhiriev/go-r2base/internal/service"
	"github.com/MKhiriev/go-r2base/internal/utils"
	"github.com/MKhiriev/go-r2base/internal/validation"
	"github.com/MKhiriev/go-r2base/models"
	"github.com/go-chi/chi/v5"
)

var tokenRules = validation.Rules{
	"username": "required|string|alpha_dash|between:3,32",
	"password": "required|string|min:8",
}

var tokenAttributes = map[string]map[string]string{
	"tr": {"username": "kullanıcı adı", "password": "şifre"},
}

func controllers(info models.AppBuildInfo) []app.Controller {
	return []app.Controller{
		statusController(info),
		app.ControllerFunc(exampleController),
		app.ControllerFunc(tokenController),
	}
}

func statusController(info models.AppBuildInfo) app.Controller {
	return app.ControllerFunc(func(r chi.Router, a *app.App) {
		r.Get("/health", a.Handle(func(w http.ResponseWriter, r *http.Request) error {
			return response.OK(w, map[string]string{"status": "ok", "env": a.Env()})
		}))
		r.Get("/version", a.Handle(func(w http.ResponseWriter, r *http.Request) error {
			return response.OK(w, info)
		}))
	})
}

func exampleController(r chi.Router, a *app.App) {
	r.Get("/controller/a", a.Handle(func(w http.ResponseWriter, r *http.Request) error {
		return response.OK(w, map[string]string{"controller": "a"})
	}))
}

func tokenController(r chi.Router, a *app.App) {
	r.Post("/token", a.Handle(func(w http.ResponseWriter, r *http.Request) error {
		var body map[string]any
		if err := response.DecodeJSON(w, r, &body); err != nil {
			return err
		}

		err := validation.Validate(body, tokenRules,
			validation.WithLang(requestLang(r)),
			validation.WithLangAttributes(tokenAttributes),
		)
		if err != nil {
			return err
		}

		auth, err := registry.Get[service.AuthService](a.Registry(), service.AuthServiceName)
		if err != nil {
			return err
		}

		issued, err := auth.IssueAccessToken(r.Context(), map[string]any{"username": body["username"]})
		if err != nil {
			return err
		}
		return response.Created(w, issued)
	}))

	r.Group(func(r chi.Router) {
		r.Use(a.Auth())

		r.Get("/me", a.Handle(func(w http.ResponseWriter, r *http.Request) error {
			payload, _ := utils.GetTokenPayloadFromContext(r.Context())
			return response.OK(w, payload)
		}))

		r.Post("/logout", a.Handle(func(w http.ResponseWriter, r *http.Request) error {
			token, err := httphandler.TokenFromRequest(r)
			if err != nil {
				return response.Unauthorized(err.Error())
			}

			auth, err := registry.Get[service.AuthService](a.Registry(), service.AuthServiceName)
			if err != nil {
				return err
			}
			if err = auth.RevokeAccessToken(r.Context(), token); err != nil {
				return err
			}
			return response.NoContent(w, nil)
		}))
	})
}

// requestLang picks the first supported language of the Accept-Language
// header, "en" otherwise.
func requestLang(r *http.Request) string {
	for part := range strings.SplitSeq(r.Header.Get("Accept-Language"), ",") {
		tag, _, _ := strings.Cut(strings.TrimSpace(part), ";")
		base, _, _ := strings.Cut(strings.ToLower(tag), "-")
		for _, lang := range validation.Languages() {
			if base == lang {
				return lang
			}
		}
	}
	return validation.LangEN
}
