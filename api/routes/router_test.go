package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/angelmondragon/lojavirtual-backend/internal/address"
	"github.com/angelmondragon/lojavirtual-backend/internal/auth"
	"github.com/angelmondragon/lojavirtual-backend/internal/cart"
	"github.com/angelmondragon/lojavirtual-backend/internal/categories"
	"github.com/angelmondragon/lojavirtual-backend/internal/companies"
	product "github.com/angelmondragon/lojavirtual-backend/internal/products"
	"github.com/angelmondragon/lojavirtual-backend/internal/testdb"
	"github.com/angelmondragon/lojavirtual-backend/internal/users"
	"github.com/angelmondragon/lojavirtual-backend/pkg/config"
	"github.com/angelmondragon/lojavirtual-backend/pkg/metrics"
	"github.com/angelmondragon/lojavirtual-backend/pkg/types"
)

type stubPinger struct{}

func (stubPinger) Ping(context.Context) error { return nil }

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Env: "test"},
		JWT: config.JWTConfig{Secret: "router-secret", Issuer: "loja-virtual", ExpirationMinutes: 60},
		Password: config.PasswordConfig{
			ArgonMemoryKB:    8192,
			ArgonTime:        1,
			ArgonParallelism: 1,
			ArgonSaltLen:     16,
			ArgonKeyLen:      32,
		},
		CORS: config.CORSConfig{AllowedOrigins: []string{"*"}},
	}
}

func newTestRouter(t *testing.T) (http.Handler, *gorm.DB) {
	t.Helper()
	conn := testdb.Open(t)
	cfg := testConfig()
	registry := prometheus.NewRegistry()

	authSvc, err := auth.NewService(auth.ServiceParams{
		UserRepo:       users.NewRepository(conn),
		JWTConfig:      cfg.JWT,
		PasswordConfig: cfg.Password,
	})
	require.NoError(t, err)
	companySvc, err := companies.NewService(companies.NewRepository(conn))
	require.NoError(t, err)
	categorySvc, err := categories.NewService(categories.NewRepository(conn))
	require.NoError(t, err)
	productSvc, err := product.NewService(product.NewRepository(conn))
	require.NoError(t, err)
	addressSvc, err := address.NewService(address.NewRepository(conn), nil)
	require.NoError(t, err)
	cartSvc, err := cart.NewService(cart.NewRepository(conn), metrics.NewCartMetrics(registry))
	require.NoError(t, err)

	router := NewRouter(cfg, nil, stubPinger{}, nil, registry, Services{
		Auth:       authSvc,
		Companies:  companySvc,
		Categories: categorySvc,
		Products:   productSvc,
		Addresses:  addressSvc,
		Cart:       cartSvc,
	})
	return router, conn
}

func call(t *testing.T, h http.Handler, method, target, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func countRows(t *testing.T, conn *gorm.DB, table string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, conn.Table(table).Count(&n).Error)
	return n
}

func TestRootAndHealth(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := call(t, router, http.MethodGet, "/", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "API Loja Virtual no ar!", rec.Body.String())

	rec = call(t, router, http.MethodGet, "/health/live", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "test", rec.Header().Get("X-Loja-Env"))

	rec = call(t, router, http.MethodGet, "/health/ready", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestCategoryLifecycle(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := call(t, router, http.MethodPost, "/categorias", "", map[string]string{"nome": "Livros", "descricao": "Papel"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[categories.CategoryDTO](t, rec)
	path := "/categorias/" + jsonID(created.ID)

	rec = call(t, router, http.MethodGet, path, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Livros", decode[categories.CategoryDTO](t, rec).Name)

	rec = call(t, router, http.MethodDelete, path, "", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = call(t, router, http.MethodGet, path, "", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, categories.MsgNotFound, decode[types.ErrorBody](t, rec).Error)
}

func TestCartRequiresToken(t *testing.T) {
	router, conn := newTestRouter(t)

	rec := call(t, router, http.MethodPost, "/carrinho/adicionar", "", map[string]int{"id_produto": 1, "quantidade": 1})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, auth.MsgMissingToken, decode[types.ErrorBody](t, rec).Error)
	assert.Zero(t, countRows(t, conn, "carrinhos"))
	assert.Zero(t, countRows(t, conn, "carrinho_itens"))

	rec = call(t, router, http.MethodGet, "/carrinho", "not-a-jwt", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestShoppingFlow(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := call(t, router, http.MethodPost, "/auth/registrar", "", map[string]string{
		"nome": "Ana", "email": "ana@example.com", "senha": "segredo",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "senha")

	rec = call(t, router, http.MethodPost, "/auth/login", "", map[string]string{"email": "ana@example.com", "senha": "segredo"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	token := decode[auth.LoginResponse](t, rec).Token
	require.NotEmpty(t, token)

	rec = call(t, router, http.MethodPost, "/empresas", "", map[string]string{"nome": "Loja", "cnpj": "123", "email": "loja@example.com"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	company := decode[companies.CompanyDTO](t, rec)

	rec = call(t, router, http.MethodPost, "/produtos", "", map[string]any{
		"nome": "Caneca", "preco": "25.50", "quantidade_estoque": 5, "id_empresa": company.ID,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[product.ProductDTO](t, rec)
	require.NotNil(t, created.CompanyName)
	assert.Equal(t, "Loja", *created.CompanyName)

	add := map[string]int64{"id_produto": created.ID, "quantidade": 2}
	rec = call(t, router, http.MethodPost, "/carrinho/adicionar", token, add)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	rec = call(t, router, http.MethodPost, "/carrinho/adicionar", token, add)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, 4, decode[cart.CartItemDTO](t, rec).Quantity)

	rec = call(t, router, http.MethodPost, "/carrinho/adicionar", token, map[string]int64{"id_produto": created.ID, "quantidade": 9})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, cart.MsgInsufficientStock, decode[types.ErrorBody](t, rec).Error)

	rec = call(t, router, http.MethodGet, "/carrinho", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	view := decode[cart.CartView](t, rec)
	require.Len(t, view.Items, 1)
	assert.Equal(t, "Caneca", view.Items[0].Name)
	assert.Equal(t, 4, view.Items[0].Quantity)

	rec = call(t, router, http.MethodDelete, "/carrinho/remover/"+jsonID(created.ID), token, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = call(t, router, http.MethodDelete, "/carrinho/remover/"+jsonID(created.ID), token, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	call(t, router, http.MethodGet, "/categorias", "", nil)
	rec := call(t, router, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "loja_http_requests_total"))
}

func jsonID(id int64) string {
	b, _ := json.Marshal(id)
	return string(b)
}
