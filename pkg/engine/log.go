package engine

import (
	"context"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/etherspot/arka-sub001/pkg/app/errors"
	"github.com/etherspot/arka-sub001/pkg/sponsorship"
)

const serviceName = "SponsorshipDecisionEngine"

const apiKeyDisplaySize = 6

// logService wraps Service with logging of every decision
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the decision Service.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{svc: svc, logger: logger}
}

// Decide wraps the service method with logging
func (ls *logService) Decide(ctx context.Context, req *sponsorship.Request) (d *sponsorship.Decision, err error) {
	start := time.Now()

	ls.logger.Debug("Decide started",
		zap.String("service", serviceName),
		zap.String("method", "Decide"),
		zap.String("api_key", redactAPIKey(req.APIKey)),
		zap.Uint64("chain_id", req.ChainID),
		zap.String("ep_version", string(req.EPVersion)),
		zap.String("end_user", req.EndUser.Hex()),
	)

	defer func() {
		duration := time.Since(start)
		switch {
		case err != nil && apperrors.IsInternalError(err):
			ls.logger.Error("Decide failed",
				zap.String("service", serviceName),
				zap.String("method", "Decide"),
				zap.Uint64("chain_id", req.ChainID),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
		case err != nil:
			ls.logger.Info("Decide rejected",
				zap.String("service", serviceName),
				zap.String("method", "Decide"),
				zap.Uint64("chain_id", req.ChainID),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
		default:
			ls.logger.Info("Decide completed",
				zap.String("service", serviceName),
				zap.String("method", "Decide"),
				zap.String("decision_id", d.ID.String()),
				zap.Bool("admit", d.Admit),
				zap.Int64p("policy_id", d.PolicyID),
				zap.String("reason", string(d.Reason)),
				zap.String("end_user", req.EndUser.Hex()),
				zap.Duration("duration", duration),
			)
		}
	}()

	return ls.svc.Decide(ctx, req)
}

// redactAPIKey keeps only a short prefix of the key.
func redactAPIKey(key string) string {
	if len(key) <= apiKeyDisplaySize {
		return "<redacted>"
	}
	return key[:apiKeyDisplaySize] + "..."
}
