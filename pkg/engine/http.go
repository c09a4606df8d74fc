package engine

import (
	"fmt"
	"math/big"
	"net/http"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	apperrors "github.com/etherspot/arka-sub001/pkg/app/errors"
	apphttp "github.com/etherspot/arka-sub001/pkg/app/http"
	"github.com/etherspot/arka-sub001/pkg/sponsorship"
)

// DecideRequest is the wire form of a sponsorship request.
type DecideRequest struct {
	APIKey          string `json:"api_key" validate:"required"`
	ChainID         uint64 `json:"chain_id" validate:"required"`
	EPVersion       string `json:"ep_version" validate:"required,oneof=EPV_06 EPV_07 EPV_08"`
	EndUser         string `json:"end_user" validate:"required,eth_addr"`
	Target          string `json:"target,omitempty" validate:"omitempty,eth_addr"`
	CallData        string `json:"call_data,omitempty"`
	CostNative      string `json:"cost_native" validate:"required"`
	GasToken        string `json:"gas_token,omitempty" validate:"omitempty,eth_addr"`
}

// ToRequest parses the wire form into a sponsorship.Request.
func (r *DecideRequest) ToRequest() (*sponsorship.Request, error) {
	cost, ok := new(big.Int).SetString(r.CostNative, 10)
	if !ok || cost.Sign() < 0 {
		return nil, fmt.Errorf("cost_native must be a non-negative integer amount of wei, got %q", r.CostNative)
	}

	req := &sponsorship.Request{
		APIKey:     r.APIKey,
		ChainID:    r.ChainID,
		EPVersion:  sponsorship.EPVersion(r.EPVersion),
		EndUser:    common.HexToAddress(r.EndUser),
		CostNative: cost,
	}
	if r.Target != "" {
		target := common.HexToAddress(r.Target)
		req.Target = &target
	}
	if r.GasToken != "" {
		token := common.HexToAddress(r.GasToken)
		req.GasToken = &token
	}
	if r.CallData != "" {
		data, err := hexutil.Decode(normalizeHex(r.CallData))
		if err != nil {
			return nil, fmt.Errorf("call_data must be hex encoded: %w", err)
		}
		req.CallData = data
	}
	return req, nil
}

func normalizeHex(s string) string {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return "0x" + s[2:]
	}
	return "0x" + s
}

// HTTP wraps the Service to provide the decision endpoint
type HTTP struct {
	service  Service
	validate *validator.Validate
	logger   *zap.Logger
}

// RegisterRoutes registers the decision endpoint on the given chi router
func RegisterRoutes(r chi.Router, service Service, logger *zap.Logger) {
	h := &HTTP{service: service, validate: validator.New(), logger: logger}

	r.Post("/sponsorship/decide", apphttp.HandleError(h.decide))
}

func (h *HTTP) decide(w http.ResponseWriter, r *http.Request) error {
	var body DecideRequest
	if err := apphttp.DecodeJSON(r, &body); err != nil {
		return err
	}
	if err := h.validate.Struct(&body); err != nil {
		return apperrors.BadRequestError(err, err.Error())
	}
	req, err := body.ToRequest()
	if err != nil {
		return apperrors.BadRequestError(err, err.Error())
	}

	d, err := h.service.Decide(r.Context(), req)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, d)
	return nil
}
