package cart

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/lojavirtual-backend/api/middleware"
	cartsvc "github.com/angelmondragon/lojavirtual-backend/internal/cart"
	pkgerrors "github.com/angelmondragon/lojavirtual-backend/pkg/errors"
)

type stubService struct {
	cartsvc.Service
	userID    int64
	input     cartsvc.AddItemInput
	removed   int64
	removeErr error
}

func (s *stubService) List(_ context.Context, userID int64) (*cartsvc.CartView, error) {
	s.userID = userID
	return &cartsvc.CartView{ID: 3, Items: []cartsvc.ItemView{}}, nil
}

func (s *stubService) AddItem(_ context.Context, userID int64, in cartsvc.AddItemInput) (*cartsvc.CartItemDTO, error) {
	s.userID = userID
	s.input = in
	return &cartsvc.CartItemDTO{ID: 1, CartID: 3, ProductID: in.ProductID, Quantity: in.Quantity, UnitPrice: decimal.NewFromInt(10)}, nil
}

func (s *stubService) RemoveItem(_ context.Context, userID, productID int64) error {
	s.userID = userID
	s.removed = productID
	return s.removeErr
}

func do(pattern, method, target string, userID int64, body []byte, h http.HandlerFunc) *httptest.ResponseRecorder {
	router := chi.NewRouter()
	router.Method(method, pattern, h)
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	if userID != 0 {
		req = req.WithContext(middleware.WithUserID(req.Context(), userID))
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestListUsesAuthenticatedUser(t *testing.T) {
	svc := &stubService{}
	rec := do("/carrinho", http.MethodGet, "/carrinho", 42, nil, List(svc, nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(42), svc.userID)
	assert.JSONEq(t, `{"id":3,"itens":[]}`, rec.Body.String())
}

func TestListWithoutUserIsUnauthorized(t *testing.T) {
	rec := do("/carrinho", http.MethodGet, "/carrinho", 0, nil, List(&stubService{}, nil))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAddItemReturnsCreated(t *testing.T) {
	svc := &stubService{}
	body, _ := json.Marshal(map[string]int{"id_produto": 8, "quantidade": 2})
	rec := do("/carrinho/adicionar", http.MethodPost, "/carrinho/adicionar", 42, body, AddItem(svc, nil))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, cartsvc.AddItemInput{ProductID: 8, Quantity: 2}, svc.input)
}

func TestRemoveItemReturnsNoContent(t *testing.T) {
	svc := &stubService{}
	rec := do("/carrinho/remover/{id_produto}", http.MethodDelete, "/carrinho/remover/8", 42, nil, RemoveItem(svc, nil))

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, int64(8), svc.removed)
}

func TestRemoveItemNotInCart(t *testing.T) {
	svc := &stubService{removeErr: pkgerrors.New(pkgerrors.CodeNotFound, cartsvc.MsgItemNotFound)}
	rec := do("/carrinho/remover/{id_produto}", http.MethodDelete, "/carrinho/remover/8", 42, nil, RemoveItem(svc, nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), cartsvc.MsgItemNotFound)
}
