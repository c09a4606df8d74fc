package sponsorship

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Reason is a stable, machine-readable denial code.
type Reason string

const (
	ReasonNoPolicyDefined          Reason = "NO_POLICY_DEFINED"
	ReasonPolicyDisabled           Reason = "POLICY_DISABLED"
	ReasonPolicyNotInTimeWindow    Reason = "POLICY_NOT_IN_TIME_WINDOW"
	ReasonUnsupportedChain         Reason = "UNSUPPORTED_CHAIN"
	ReasonAddressNotWhitelisted    Reason = "ADDRESS_NOT_WHITELISTED"
	ReasonAddressBlocked           Reason = "ADDRESS_BLOCKED"
	ReasonContractCallNotPermitted Reason = "CONTRACT_CALL_NOT_PERMITTED"
	ReasonGlobalLimitExceeded      Reason = "GLOBAL_LIMIT_EXCEEDED"
	ReasonPerUserLimitExceeded     Reason = "PER_USER_LIMIT_EXCEEDED"
	ReasonPerOpLimitExceeded       Reason = "PER_OP_LIMIT_EXCEEDED"
	ReasonPriceUnavailable         Reason = "PRICE_UNAVAILABLE"
	ReasonMonthlyQuotaExceeded     Reason = "MONTHLY_QUOTA_EXCEEDED"
)

// LimitScope names the counter a ceiling applies to.
type LimitScope string

const (
	ScopeGlobal  LimitScope = "global"
	ScopePerUser LimitScope = "per_user"
	ScopePerOp   LimitScope = "per_op"
	ScopeMonthly LimitScope = "monthly"
)

// Dimension names the denomination of a ceiling.
type Dimension string

const (
	DimensionUSD    Dimension = "usd"
	DimensionNative Dimension = "native"
	DimensionOps    Dimension = "ops"
)

// LimitKind identifies the ceiling that denied an operation.
type LimitKind struct {
	Scope     LimitScope `json:"scope"`
	Dimension Dimension  `json:"dimension"`
}

// Reason maps the exceeded scope to its denial code.
func (k LimitKind) Reason() Reason {
	switch k.Scope {
	case ScopePerOp:
		return ReasonPerOpLimitExceeded
	case ScopePerUser:
		return ReasonPerUserLimitExceeded
	case ScopeMonthly:
		return ReasonMonthlyQuotaExceeded
	default:
		return ReasonGlobalLimitExceeded
	}
}

// Request is a fully parsed sponsorship request.
type Request struct {
	APIKey    string
	ChainID   uint64
	EPVersion EPVersion
	EndUser   common.Address
	// Target is the contract the operation calls, nil for operations without a call.
	Target   *common.Address
	CallData []byte
	// CostNative is the estimated operation cost in wei.
	CostNative *big.Int
	// GasToken is the ERC-20 the operation pays gas with, nil when the paymaster covers native gas.
	GasToken *common.Address
	// Now overrides the evaluation time; zero means the engine clock.
	Now time.Time
}

// Decision is the outcome of one sponsorship request.
type Decision struct {
	ID          uuid.UUID        `json:"id"`
	Admit       bool             `json:"admit"`
	PolicyID    *int64           `json:"policy_id,omitempty"`
	Reason      Reason           `json:"reason,omitempty"`
	Limit       *LimitKind       `json:"limit,omitempty"`
	CostUSD     *decimal.Decimal `json:"cost_usd,omitempty"`
	CostToken   *big.Int         `json:"cost_token,omitempty"`
	Remaining   *Budget          `json:"remaining,omitempty"`
	EvaluatedAt time.Time        `json:"evaluated_at"`
}

// Budget is what is left under the tightest active ceiling of each dimension. A nil field means
// the dimension is unlimited.
type Budget struct {
	USD    *decimal.Decimal `json:"usd,omitempty"`
	Native *big.Int         `json:"native,omitempty"`
	Ops    *int64           `json:"ops,omitempty"`
}

// Admitted builds an admitting decision.
func Admitted(policyID int64, costUSD *decimal.Decimal, at time.Time) *Decision {
	return &Decision{ID: uuid.New(), Admit: true, PolicyID: &policyID, CostUSD: costUSD, EvaluatedAt: at}
}

// Denied builds a denying decision. policyID is nil when no policy was resolved.
func Denied(reason Reason, policyID *int64, at time.Time) *Decision {
	return &Decision{ID: uuid.New(), Reason: reason, PolicyID: policyID, EvaluatedAt: at}
}
