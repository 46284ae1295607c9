package cart

import (
	"net/http"

	"github.com/angelmondragon/lojavirtual-backend/api/middleware"
	"github.com/angelmondragon/lojavirtual-backend/api/responses"
	"github.com/angelmondragon/lojavirtual-backend/api/validators"
	cartsvc "github.com/angelmondragon/lojavirtual-backend/internal/cart"
	pkgerrors "github.com/angelmondragon/lojavirtual-backend/pkg/errors"
	"github.com/angelmondragon/lojavirtual-backend/pkg/logger"
)

func userID(r *http.Request) (int64, error) {
	id := middleware.UserIDFromContext(r.Context())
	if id == 0 {
		return 0, pkgerrors.New(pkgerrors.CodeUnauthorized, "user context missing")
	}
	return id, nil
}

// List handles GET /carrinho.
func List(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, err := userID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		view, err := svc.List(r.Context(), uid)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

// AddItem handles POST /carrinho/adicionar.
func AddItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, err := userID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var input cartsvc.AddItemInput
		if err := validators.DecodeJSONBody(r, &input, cartsvc.MsgItemFieldsRequired); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		item, err := svc.AddItem(r.Context(), uid, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, item)
	}
}

// RemoveItem handles DELETE /carrinho/remover/{id_produto}.
func RemoveItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, err := userID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		productID, err := validators.ParsePathID(r, "id_produto")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := svc.RemoveItem(r.Context(), uid, productID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteNoContent(w)
	}
}
