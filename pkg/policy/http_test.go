package policy_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	apperrors "github.com/etherspot/arka-sub001/pkg/app/errors"
	"github.com/etherspot/arka-sub001/pkg/policy"
	"github.com/etherspot/arka-sub001/pkg/policy/mocks"
	"github.com/etherspot/arka-sub001/pkg/sponsorship"
)

func newTestServer(svc policy.Service) http.Handler {
	r := chi.NewRouter()
	policy.RegisterRoutes(r, svc, zap.NewNop())
	return r
}

func TestPolicyHTTP_Create(t *testing.T) {
	usd := decimal.NewFromInt(100)
	svc := mocks.NewService(t)
	svc.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(req *policy.CreateRequest) bool {
			return req.APIKey == "key-1" && req.Name == "campaign"
		})).
		Return(&sponsorship.Policy{
			ID:            7,
			WalletAddress: common.HexToAddress("0x1111111111111111111111111111111111111111"),
			Name:          "campaign",
			Enabled:       true,
			EnabledChains: []uint64{1},
			EPVersions:    []sponsorship.EPVersion{sponsorship.EPV07},
			Perpetual:     true,
			Global:        sponsorship.ScopeLimits{Applicable: true, MaxUSD: &usd},
		}, nil).
		Once()

	body := `{"api_key":"key-1","name":"campaign","enabled_chains":[1],"ep_versions":["EPV_07"],"perpetual":true,
		"global_limits":{"max_usd":"100"}}`
	rec := httptest.NewRecorder()
	newTestServer(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/policies", bytes.NewBufferString(body)))

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, rec.Code, rec.Body.String())
	}
	var got policy.Response
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	if got.ID != 7 || got.Global == nil || got.Global.MaxUSD == nil || *got.Global.MaxUSD != "100" {
		t.Fatalf("unexpected response %+v", got)
	}
	if got.PerUser != nil {
		t.Fatal("per user limits should be omitted")
	}
}

func TestPolicyHTTP_SetEnabled(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().SetEnabled(mock.Anything, int64(3), false).
		Return(&sponsorship.Policy{ID: 3}, nil).Once()
	svc.EXPECT().SetEnabled(mock.Anything, int64(4), true).
		Return(nil, apperrors.ResourceNotFoundError(sponsorship.ErrPolicyNotFound, "policy not found")).Once()
	handler := newTestServer(svc)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/policies/3/enabled", bytes.NewBufferString(`{"enabled":false}`)))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/policies/4/enabled", bytes.NewBufferString(`{"enabled":true}`)))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, rec.Code)
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/policies/3/enabled", bytes.NewBufferString(`{}`)))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d for missing flag, got %d", http.StatusBadRequest, rec.Code)
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/policies/abc/enabled", bytes.NewBufferString(`{"enabled":true}`)))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d for bad id, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestPolicyHTTP_ResetUsage(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().ResetUsage(mock.Anything, int64(5)).Return(nil).Once()

	rec := httptest.NewRecorder()
	newTestServer(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/policies/5/usage", nil))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected status %d, got %d", http.StatusNoContent, rec.Code)
	}
}
