package auth

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingToken  = errors.New("missing bearer token")
	ErrInvalidToken  = errors.New("invalid token")
	ErrNotConfigured = errors.New("JWKS URL not configured")
)

// TokenValidator validates bearer tokens and returns their claims.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (jwt.MapClaims, error)
}

// JWTValidator validates RS256 tokens against a JWKS endpoint
type JWTValidator struct {
	jwksURL  string
	issuer   string
	audience string
	client   *http.Client

	keysMu sync.RWMutex
	keys   map[string]*rsa.PublicKey
}

type jwks struct {
	Keys []jwk `json:"keys"`
}

type jwk struct {
	Kid string `json:"kid"`
	Kty string `json:"kty"`
	N   string `json:"n"`
	E   string `json:"e"`
}

// NewJWTValidator creates a validator. Empty issuer or audience skips that check.
func NewJWTValidator(jwksURL, issuer, audience string) *JWTValidator {
	return &JWTValidator{
		jwksURL:  jwksURL,
		issuer:   issuer,
		audience: audience,
		keys:     make(map[string]*rsa.PublicKey),
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

// IsConfigured returns true if JWKS validation is configured
func (v *JWTValidator) IsConfigured() bool {
	return v.jwksURL != ""
}

// ValidateToken parses tokenString, checks signature, expiry, issuer and audience.
func (v *JWTValidator) ValidateToken(ctx context.Context, tokenString string) (jwt.MapClaims, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{"RS256", "RS384", "RS512"})}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}
	if v.audience != "" {
		opts = append(opts, jwt.WithAudience(v.audience))
	}

	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		kid, ok := token.Header["kid"].(string)
		if !ok || kid == "" {
			return nil, errors.New("missing kid in token header")
		}
		return v.key(ctx, kid)
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return claims, nil
}

// key returns the public key for kid, refreshing the key set once on a miss.
func (v *JWTValidator) key(ctx context.Context, kid string) (*rsa.PublicKey, error) {
	v.keysMu.RLock()
	key, ok := v.keys[kid]
	v.keysMu.RUnlock()
	if ok {
		return key, nil
	}

	if err := v.refreshKeys(ctx); err != nil {
		return nil, err
	}

	v.keysMu.RLock()
	key, ok = v.keys[kid]
	v.keysMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("key not found: %s", kid)
	}
	return key, nil
}

func (v *JWTValidator) refreshKeys(ctx context.Context) error {
	if v.jwksURL == "" {
		return ErrNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.jwksURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := v.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch JWKS: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("JWKS endpoint returned status %d", resp.StatusCode)
	}

	var set jwks
	if err := json.NewDecoder(resp.Body).Decode(&set); err != nil {
		return fmt.Errorf("failed to decode JWKS: %w", err)
	}

	keys := make(map[string]*rsa.PublicKey, len(set.Keys))
	for _, k := range set.Keys {
		if k.Kty != "RSA" {
			continue
		}
		pub, err := parseRSAPublicKey(k.N, k.E)
		if err != nil {
			continue
		}
		keys[k.Kid] = pub
	}

	v.keysMu.Lock()
	v.keys = keys
	v.keysMu.Unlock()
	return nil
}

// parseRSAPublicKey parses base64url encoded modulus and exponent
func parseRSAPublicKey(nStr, eStr string) (*rsa.PublicKey, error) {
	nBytes, err := base64.RawURLEncoding.DecodeString(nStr)
	if err != nil {
		return nil, fmt.Errorf("failed to decode modulus: %w", err)
	}
	eBytes, err := base64.RawURLEncoding.DecodeString(eStr)
	if err != nil {
		return nil, fmt.Errorf("failed to decode exponent: %w", err)
	}
	return &rsa.PublicKey{
		N: new(big.Int).SetBytes(nBytes),
		E: int(new(big.Int).SetBytes(eBytes).Int64()),
	}, nil
}
