package middleware

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
)

type fakeStore struct {
	data map[string]string
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: make(map[string]string)}
}

func (f *fakeStore) Get(_ context.Context, key string) (string, error) {
	if v, ok := f.data[key]; ok {
		return v, nil
	}
	return "", redis.Nil
}

func (f *fakeStore) SetNX(_ context.Context, key string, value any, _ time.Duration) (bool, error) {
	if _, ok := f.data[key]; ok {
		return false, nil
	}
	str, _ := value.(string)
	f.data[key] = str
	return true, nil
}

func (f *fakeStore) IdempotencyKey(scope, id string) string {
	return fmt.Sprintf("fake:%s:%s", scope, id)
}

func (f *fakeStore) Del(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(f.data, key)
	}
	return nil
}

const addPattern = "/carrinho/adicionar"

func cartRequest(userID int64, key, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, addPattern, strings.NewReader(body))
	if key != "" {
		req.Header.Set(IdempotencyHeader, key)
	}
	rc := chi.NewRouteContext()
	rc.RoutePatterns = []string{addPattern}
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rc)
	return req.WithContext(WithUserID(ctx, userID))
}

func countingHandler(calls *int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*calls++
		_, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = fmt.Fprintf(w, `{"quantidade":%d}`, *calls)
	})
}

func TestRouteTTLSelection(t *testing.T) {
	if ttl, ok := routeTTL(http.MethodPost, addPattern); !ok || ttl != defaultIdempotencyTTL {
		t.Fatalf("expected add-to-cart to be idempotent, got %v %v", ttl, ok)
	}
	if _, ok := routeTTL(http.MethodDelete, "/carrinho/remover/{id_produto}"); ok {
		t.Fatalf("remove should not be covered")
	}
	if _, ok := routeTTL(http.MethodPost, "/auth/login"); ok {
		t.Fatalf("login should not be covered")
	}
}

func TestIdempotencyWithoutKeyPassesThrough(t *testing.T) {
	store := newFakeStore()
	var calls int
	handler := Idempotency(store, nil)(countingHandler(&calls))

	for i := 0; i < 2; i++ {
		handler.ServeHTTP(httptest.NewRecorder(), cartRequest(1, "", `{"id_produto":1,"quantidade":1}`))
	}
	if calls != 2 {
		t.Fatalf("expected both requests processed, got %d", calls)
	}
	if len(store.data) != 0 {
		t.Fatalf("nothing should be stored without a key")
	}
}

func TestIdempotencyReplaysStoredResponse(t *testing.T) {
	store := newFakeStore()
	var calls int
	handler := Idempotency(store, nil)(countingHandler(&calls))

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, cartRequest(1, "abc", `{"id_produto":1,"quantidade":2}`))
	if first.Code != http.StatusCreated {
		t.Fatalf("expected first response 201 got %d", first.Code)
	}

	replay := httptest.NewRecorder()
	handler.ServeHTTP(replay, cartRequest(1, "abc", `{"id_produto":1,"quantidade":2}`))
	if replay.Code != http.StatusCreated {
		t.Fatalf("expected replay status 201 got %d", replay.Code)
	}
	if replay.Header().Get("Content-Type") != "application/json" {
		t.Fatalf("expected content-type header preserved")
	}
	if replay.Header().Get("Idempotent-Replay") != "true" {
		t.Fatalf("expected replay marker header")
	}
	if strings.TrimSpace(replay.Body.String()) != `{"quantidade":1}` {
		t.Fatalf("expected stored body got %s", replay.Body.String())
	}
	if calls != 1 {
		t.Fatalf("handler executed %d times, expected 1", calls)
	}
}

func TestIdempotencyDetectsBodyChange(t *testing.T) {
	store := newFakeStore()
	var calls int
	handler := Idempotency(store, nil)(countingHandler(&calls))

	handler.ServeHTTP(httptest.NewRecorder(), cartRequest(1, "xyz", `{"id_produto":1,"quantidade":1}`))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, cartRequest(1, "xyz", `{"id_produto":1,"quantidade":5}`))
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 got %d", rec.Code)
	}
	if body := decodeError(t, rec); body.Error != MsgIdempotencyMismatch {
		t.Fatalf("unexpected message %q", body.Error)
	}
	if calls != 1 {
		t.Fatalf("handler executed %d times, expected 1", calls)
	}
}

func TestIdempotencyKeysAreScopedPerUser(t *testing.T) {
	store := newFakeStore()
	var calls int
	handler := Idempotency(store, nil)(countingHandler(&calls))

	handler.ServeHTTP(httptest.NewRecorder(), cartRequest(1, "same", `{}`))
	handler.ServeHTTP(httptest.NewRecorder(), cartRequest(2, "same", `{}`))
	if calls != 2 {
		t.Fatalf("expected each user to be processed, got %d", calls)
	}
}

func TestIdempotencySkipsServerErrors(t *testing.T) {
	store := newFakeStore()
	var calls int
	handler := Idempotency(store, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), cartRequest(1, "k", `{}`))
	handler.ServeHTTP(httptest.NewRecorder(), cartRequest(1, "k", `{}`))
	if calls != 2 {
		t.Fatalf("failed attempts must be retryable, got %d calls", calls)
	}
}
