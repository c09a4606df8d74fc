package contractcall

import (
	"net/http"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/etherspot/arka-sub001/pkg/app/errors"
	apphttp "github.com/etherspot/arka-sub001/pkg/app/http"
	"github.com/etherspot/arka-sub001/pkg/sponsorship"
)

// EntryResponse is the wire form of a contract whitelist entry
type EntryResponse struct {
	WalletAddress   common.Address `json:"wallet_address"`
	ContractAddress common.Address `json:"contract_address"`
	ChainID         uint64         `json:"chain_id"`
	Selectors       []string       `json:"selectors"`
	HasABI          bool           `json:"has_abi"`
}

// HTTP wraps the Service to provide admin HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

// RegisterRoutes registers contract whitelist endpoints on the given chi router
func RegisterRoutes(r chi.Router, service Service, logger *zap.Logger) {
	h := &HTTP{service: service, logger: logger}

	r.Get("/contracts", apphttp.HandleError(h.get))
	r.Post("/contracts", apphttp.HandleError(h.upsert))
}

func (h *HTTP) upsert(w http.ResponseWriter, r *http.Request) error {
	var req UpsertRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}
	entry, err := h.service.Upsert(r.Context(), &req)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, toResponse(entry))
	return nil
}

func (h *HTTP) get(w http.ResponseWriter, r *http.Request) error {
	q := r.URL.Query()
	chainID, err := strconv.ParseUint(q.Get("chain_id"), 10, 64)
	if err != nil {
		return apperrors.BadRequestError(err, "invalid chain_id")
	}
	entry, err := h.service.Get(r.Context(), q.Get("api_key"), q.Get("contract"), chainID)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, toResponse(entry))
	return nil
}

func toResponse(e *sponsorship.ContractWhitelistEntry) EntryResponse {
	sels := make([]string, len(e.Selectors))
	for i, s := range e.Selectors {
		sels[i] = s.String()
	}
	return EntryResponse{
		WalletAddress:   e.WalletAddress,
		ContractAddress: e.ContractAddress,
		ChainID:         e.ChainID,
		Selectors:       sels,
		HasABI:          e.ABI != "",
	}
}
