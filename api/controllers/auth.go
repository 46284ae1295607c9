package controllers

import (
	"net/http"

	"github.com/angelmondragon/lojavirtual-backend/api/responses"
	"github.com/angelmondragon/lojavirtual-backend/api/validators"
	authsvc "github.com/angelmondragon/lojavirtual-backend/internal/auth"
	"github.com/angelmondragon/lojavirtual-backend/pkg/logger"
)

// AuthRegister handles POST /auth/registrar.
func AuthRegister(svc authsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req authsvc.RegisterRequest
		if err := validators.DecodeJSONBody(r, &req, authsvc.MsgRegisterFieldsRequired); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		user, err := svc.Register(r.Context(), req)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, user)
	}
}

// AuthLogin handles POST /auth/login.
func AuthLogin(svc authsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req authsvc.LoginRequest
		if err := validators.DecodeJSONBody(r, &req, authsvc.MsgLoginFieldsRequired); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		resp, err := svc.Login(r.Context(), req)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, resp)
	}
}
