package whitelist

import (
	"net/http"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/etherspot/arka-sub001/pkg/app/errors"
	apphttp "github.com/etherspot/arka-sub001/pkg/app/http"
)

type entriesRequest struct {
	APIKey    string   `json:"api_key"`
	PolicyID  *int64   `json:"policy_id,omitempty"`
	Addresses []string `json:"addresses"`
}

type checkRequest struct {
	APIKey   string `json:"api_key"`
	PolicyID *int64 `json:"policy_id,omitempty"`
	Address  string `json:"address"`
}

type entriesResponse struct {
	Addresses []common.Address `json:"addresses"`
}

type checkResponse struct {
	Address     string `json:"address"`
	Whitelisted bool   `json:"whitelisted"`
}

// HTTP wraps the Service to provide admin HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

// RegisterRoutes registers whitelist management endpoints on the given chi router
func RegisterRoutes(r chi.Router, service Service, logger *zap.Logger) {
	h := &HTTP{service: service, logger: logger}

	r.Get("/whitelist", apphttp.HandleError(h.list))
	r.Post("/whitelist", apphttp.HandleError(h.add))
	r.Delete("/whitelist", apphttp.HandleError(h.remove))
	r.Post("/whitelist/check", apphttp.HandleError(h.check))
}

func (h *HTTP) list(w http.ResponseWriter, r *http.Request) error {
	var policyID *int64
	if raw := r.URL.Query().Get("policy_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return apperrors.BadRequestError(err, "invalid policy_id")
		}
		policyID = &id
	}

	addrs, err := h.service.List(r.Context(), r.URL.Query().Get("api_key"), policyID)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, entriesResponse{Addresses: nonNil(addrs)})
	return nil
}

func (h *HTTP) add(w http.ResponseWriter, r *http.Request) error {
	var req entriesRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}
	addrs, err := h.service.Add(r.Context(), req.APIKey, req.PolicyID, req.Addresses)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusCreated, entriesResponse{Addresses: addrs})
	return nil
}

func (h *HTTP) remove(w http.ResponseWriter, r *http.Request) error {
	var req entriesRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}
	addrs, err := h.service.Remove(r.Context(), req.APIKey, req.PolicyID, req.Addresses)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, entriesResponse{Addresses: addrs})
	return nil
}

func (h *HTTP) check(w http.ResponseWriter, r *http.Request) error {
	var req checkRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}
	ok, err := h.service.Check(r.Context(), req.APIKey, req.PolicyID, req.Address)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, checkResponse{Address: req.Address, Whitelisted: ok})
	return nil
}

func nonNil(addrs []common.Address) []common.Address {
	if addrs == nil {
		return []common.Address{}
	}
	return addrs
}
