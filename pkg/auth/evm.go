package auth

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// ValidateEVMAddress checks if a string is a 0x-prefixed 20 byte hex address
func ValidateEVMAddress(address string) bool {
	if !strings.HasPrefix(address, "0x") && !strings.HasPrefix(address, "0X") {
		return false
	}
	if len(address) != 42 {
		return false
	}
	_, err := hex.DecodeString(address[2:])
	return err == nil
}

// NormalizeAddress returns a checksummed EVM address
func NormalizeAddress(address string) string {
	return common.HexToAddress(address).Hex()
}

// ParseAddress validates address and returns it in canonical form.
func ParseAddress(address string) (common.Address, error) {
	address = strings.TrimSpace(address)
	if !ValidateEVMAddress(address) {
		return common.Address{}, fmt.Errorf("invalid EVM address %q", address)
	}
	return common.HexToAddress(address), nil
}

// ParseAddresses parses a list of addresses, dropping duplicates while keeping first-seen order.
func ParseAddresses(addresses []string) ([]common.Address, error) {
	out := make([]common.Address, 0, len(addresses))
	seen := make(map[common.Address]struct{}, len(addresses))
	for _, a := range addresses {
		addr, err := ParseAddress(a)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[addr]; ok {
			continue
		}
		seen[addr] = struct{}{}
		out = append(out, addr)
	}
	return out, nil
}
