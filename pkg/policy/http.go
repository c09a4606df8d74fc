package policy

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/etherspot/arka-sub001/pkg/app/errors"
	apphttp "github.com/etherspot/arka-sub001/pkg/app/http"
)

type enabledRequest struct {
	Enabled *bool `json:"enabled"`
}

// HTTP wraps the Service to provide admin HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

// RegisterRoutes registers policy administration endpoints on the given chi router
func RegisterRoutes(r chi.Router, service Service, logger *zap.Logger) {
	h := &HTTP{service: service, logger: logger}

	r.Post("/policies", apphttp.HandleError(h.create))
	r.Patch("/policies/{id}/enabled", apphttp.HandleError(h.setEnabled))
	r.Delete("/policies/{id}/usage", apphttp.HandleError(h.resetUsage))
}

func (h *HTTP) create(w http.ResponseWriter, r *http.Request) error {
	var req CreateRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}
	p, err := h.service.Create(r.Context(), &req)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusCreated, toResponse(p))
	return nil
}

func (h *HTTP) setEnabled(w http.ResponseWriter, r *http.Request) error {
	id, err := policyID(r)
	if err != nil {
		return err
	}
	var req enabledRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}
	if req.Enabled == nil {
		return apperrors.BadRequestError(nil, "enabled is required")
	}
	p, err := h.service.SetEnabled(r.Context(), id, *req.Enabled)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, toResponse(p))
	return nil
}

func (h *HTTP) resetUsage(w http.ResponseWriter, r *http.Request) error {
	id, err := policyID(r)
	if err != nil {
		return err
	}
	if err := h.service.ResetUsage(r.Context(), id); err != nil {
		return err
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

func policyID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.BadRequestError(err, "invalid policy id")
	}
	return id, nil
}
