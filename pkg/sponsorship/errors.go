package sponsorship

import "errors"

// Lookup misses reported by persistence collaborators.
var (
	ErrAPIKeyNotFound        = errors.New("api key not found")
	ErrPolicyNotFound        = errors.New("policy not found")
	ErrContractEntryNotFound = errors.New("contract whitelist entry not found")
)

// Write conflicts reported by persistence collaborators. The write that reports them changed nothing.
var (
	ErrWhitelistEntryExists  = errors.New("whitelist entry already exists")
	ErrWhitelistEntryMissing = errors.New("whitelist entry does not exist")
)
