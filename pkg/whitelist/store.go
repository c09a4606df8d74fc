// Package whitelist gates sponsorship on allow lists and block lists and manages
// API key and policy level whitelist entries.
package whitelist

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
)

// Store is the narrow data-access interface for whitelist entries. A nil policyID addresses the
// API key level list, a non-nil one the list of that policy only.
//
//go:generate mockery --name Store --output mocks --outpkg mocks --filename mock_store.go --with-expecter
type Store interface {
	ListWhitelist(ctx context.Context, apiKey string, policyID *int64) ([]common.Address, error)
	AddWhitelist(ctx context.Context, apiKey string, policyID *int64, addresses []common.Address) error
	RemoveWhitelist(ctx context.Context, apiKey string, policyID *int64, addresses []common.Address) error
}
