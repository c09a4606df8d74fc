package engine_test

import (
	"bytes"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	apperrors "github.com/etherspot/arka-sub001/pkg/app/errors"
	"github.com/etherspot/arka-sub001/pkg/engine"
	"github.com/etherspot/arka-sub001/pkg/engine/mocks"
	"github.com/etherspot/arka-sub001/pkg/sponsorship"
)

func newTestServer(svc engine.Service) http.Handler {
	r := chi.NewRouter()
	engine.RegisterRoutes(r, svc, zap.NewNop())
	return r
}

func post(handler http.Handler, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/sponsorship/decide", bytes.NewBufferString(body)))
	return rec
}

func TestDecideHTTP_Admit(t *testing.T) {
	target := common.HexToAddress("0x0000000000000000000000000000000000001234")
	svc := mocks.NewService(t)
	svc.EXPECT().
		Decide(mock.Anything, mock.MatchedBy(func(req *sponsorship.Request) bool {
			return req.APIKey == "key-1" &&
				req.ChainID == 137 &&
				req.EPVersion == sponsorship.EPV07 &&
				req.Target != nil && *req.Target == target &&
				bytes.Equal(req.CallData, []byte{0xab, 0xcd, 0xef, 0x01}) &&
				req.CostNative.Cmp(big.NewInt(21000)) == 0
		})).
		Return(&sponsorship.Decision{ID: uuid.New(), Admit: true, EvaluatedAt: time.Now()}, nil).
		Once()

	rec := post(newTestServer(svc), `{"api_key":"key-1","chain_id":137,"ep_version":"EPV_07",
		"end_user":"0x00000000000000000000000000000000000A11CE","target":"0x0000000000000000000000000000000000001234",
		"call_data":"0xabcdef01","cost_native":"21000"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}
	var got sponsorship.Decision
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	if !got.Admit {
		t.Fatalf("expected admit, got %+v", got)
	}
}

func TestDecideHTTP_DenialIsOK(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().Decide(mock.Anything, mock.Anything).
		Return(&sponsorship.Decision{ID: uuid.New(), Reason: sponsorship.ReasonAddressBlocked}, nil).Once()

	rec := post(newTestServer(svc), `{"api_key":"key-1","chain_id":1,"ep_version":"EPV_06",
		"end_user":"0x00000000000000000000000000000000000A11CE","cost_native":"1"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	var got map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	if got["reason"] != string(sponsorship.ReasonAddressBlocked) || got["admit"] != false {
		t.Fatalf("unexpected body %v", got)
	}
}

func TestDecideHTTP_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "invalid json", body: `{`},
		{name: "missing api key", body: `{"chain_id":1,"ep_version":"EPV_07","end_user":"0x00000000000000000000000000000000000A11CE","cost_native":"1"}`},
		{name: "unknown ep version", body: `{"api_key":"k","chain_id":1,"ep_version":"EPV_09","end_user":"0x00000000000000000000000000000000000A11CE","cost_native":"1"}`},
		{name: "bad end user", body: `{"api_key":"k","chain_id":1,"ep_version":"EPV_07","end_user":"0x123","cost_native":"1"}`},
		{name: "negative cost", body: `{"api_key":"k","chain_id":1,"ep_version":"EPV_07","end_user":"0x00000000000000000000000000000000000A11CE","cost_native":"-5"}`},
		{name: "fractional cost", body: `{"api_key":"k","chain_id":1,"ep_version":"EPV_07","end_user":"0x00000000000000000000000000000000000A11CE","cost_native":"1.5"}`},
		{name: "bad call data", body: `{"api_key":"k","chain_id":1,"ep_version":"EPV_07","end_user":"0x00000000000000000000000000000000000A11CE","cost_native":"1","call_data":"0xzz"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewService(t)
			rec := post(newTestServer(svc), tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected status %d, got %d: %s", http.StatusBadRequest, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestDecideHTTP_ServiceErrors(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().Decide(mock.Anything, mock.Anything).
		Return(nil, apperrors.UnAuthorizedError(sponsorship.ErrAPIKeyNotFound, "unknown api key")).Once()

	rec := post(newTestServer(svc), `{"api_key":"nope","chain_id":1,"ep_version":"EPV_07",
		"end_user":"0x00000000000000000000000000000000000A11CE","cost_native":"1"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}
}

func TestDecideRequest_NormalizesCallData(t *testing.T) {
	body := engine.DecideRequest{
		APIKey: "k", ChainID: 1, EPVersion: "EPV_07",
		EndUser: "0x00000000000000000000000000000000000A11CE", CostNative: "7", CallData: "ABCDEF01",
		GasToken: "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48",
	}
	req, err := body.ToRequest()
	if err != nil {
		t.Fatalf("ToRequest() failed: %v", err)
	}
	if !bytes.Equal(req.CallData, []byte{0xab, 0xcd, 0xef, 0x01}) {
		t.Fatalf("unexpected call data %x", req.CallData)
	}
	if req.GasToken == nil || *req.GasToken != common.HexToAddress("0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48") {
		t.Fatalf("gas token not parsed: %v", req.GasToken)
	}
}
