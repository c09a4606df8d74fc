package whitelist

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	apperrors "github.com/etherspot/arka-sub001/pkg/app/errors"
	"github.com/etherspot/arka-sub001/pkg/whitelist/mocks"
)

func newTestServer(svc Service) http.Handler {
	r := chi.NewRouter()
	RegisterRoutes(r, svc, zap.NewNop())
	return r
}

func TestWhitelistHTTP_Add(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().
		Add(mock.Anything, "key-1", mock.MatchedBy(func(id *int64) bool { return id != nil && *id == 9 }), []string{alice.Hex()}).
		Return([]common.Address{alice}, nil).
		Once()

	body := `{"api_key":"key-1","policy_id":9,"addresses":["` + alice.Hex() + `"]}`
	req := httptest.NewRequest(http.MethodPost, "/whitelist", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	newTestServer(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, rec.Code, rec.Body.String())
	}
	var got entriesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	if len(got.Addresses) != 1 || got.Addresses[0] != alice {
		t.Fatalf("unexpected response %+v", got)
	}
}

func TestWhitelistHTTP_AddConflict(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().
		Add(mock.Anything, "key-1", mock.Anything, mock.Anything).
		Return(nil, apperrors.ConflictError(ErrAlreadyWhitelisted, "addresses already whitelisted: "+alice.Hex())).
		Once()

	body := `{"api_key":"key-1","addresses":["` + alice.Hex() + `"]}`
	req := httptest.NewRequest(http.MethodPost, "/whitelist", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	newTestServer(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected status %d, got %d", http.StatusConflict, rec.Code)
	}
}

func TestWhitelistHTTP_InvalidJSON(t *testing.T) {
	svc := mocks.NewService(t)

	req := httptest.NewRequest(http.MethodDelete, "/whitelist", bytes.NewBufferString("{invalid"))
	rec := httptest.NewRecorder()
	newTestServer(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestWhitelistHTTP_ListAndCheck(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().List(mock.Anything, "key-1", noPolicy).Return(nil, nil).Once()
	svc.EXPECT().Check(mock.Anything, "key-1", noPolicy, bob.Hex()).Return(true, nil).Once()
	handler := newTestServer(svc)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/whitelist?api_key=key-1", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if got := rec.Body.String(); got != "{\"addresses\":[]}\n" {
		t.Fatalf("unexpected list body %q", got)
	}

	rec = httptest.NewRecorder()
	body := `{"api_key":"key-1","address":"` + bob.Hex() + `"}`
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/whitelist/check", bytes.NewBufferString(body)))
	var got checkResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	if !got.Whitelisted {
		t.Fatal("expected whitelisted true")
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/whitelist?api_key=key-1&policy_id=abc", nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
}
