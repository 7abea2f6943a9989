package auth

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
)

// maxJWKSBytes bounds the size of a key set document.
const maxJWKSBytes = 1 << 20

// SigningKey is one public key of the identity provider, addressed by key id.
// Keys are immutable once issued.
type SigningKey struct {
	KeyID string
	Key   *rsa.PublicKey
}

// jwk is the subset of RFC 7517 fields needed for RSA verification keys.
type jwk struct {
	Kty string `json:"kty"`
	Kid string `json:"kid"`
	Use string `json:"use,omitempty"`
	N   string `json:"n"`
	E   string `json:"e"`
}

type jwkSet struct {
	Keys []jwk `json:"keys"`
}

// ParseJWKS decodes a JSON Web Key Set into RSA signing keys keyed by kid.
// Non-RSA keys, encryption keys, keys without a kid and keys with malformed
// parameters are skipped. Only an undecodable document is an error.
func ParseJWKS(raw []byte) (map[string]SigningKey, error) {
	keys, _, err := parseJWKS(raw)
	return keys, err
}

// parseJWKS is ParseJWKS that also reports the malformed RSA keys it skipped.
func parseJWKS(raw []byte) (map[string]SigningKey, map[string]error, error) {
	var set jwkSet
	if err := json.Unmarshal(raw, &set); err != nil {
		return nil, nil, fmt.Errorf("decode jwks: %w", err)
	}

	keys := make(map[string]SigningKey, len(set.Keys))
	var skipped map[string]error
	for _, k := range set.Keys {
		if k.Kty != "RSA" || k.Kid == "" || (k.Use != "" && k.Use != "sig") {
			continue
		}
		pub, err := rsaPublicKey(k.N, k.E)
		if err != nil {
			if skipped == nil {
				skipped = make(map[string]error)
			}
			skipped[k.Kid] = err
			continue
		}
		keys[k.Kid] = SigningKey{KeyID: k.Kid, Key: pub}
	}
	return keys, skipped, nil
}

func rsaPublicKey(n, e string) (*rsa.PublicKey, error) {
	nb, err := base64.RawURLEncoding.DecodeString(n)
	if err != nil || len(nb) == 0 {
		return nil, errors.New("invalid modulus")
	}
	eb, err := base64.RawURLEncoding.DecodeString(e)
	if err != nil || len(eb) == 0 || len(eb) > 4 {
		return nil, errors.New("invalid exponent")
	}
	exp := 0
	for _, b := range eb {
		exp = exp<<8 | int(b)
	}
	return &rsa.PublicKey{N: new(big.Int).SetBytes(nb), E: exp}, nil
}

// HTTPFetcher downloads the key set from the provider's well-known endpoint.
type HTTPFetcher struct {
	url        string
	httpClient *http.Client
	log        *slog.Logger
}

// NewHTTPFetcher creates a fetcher for the given certs URL.
func NewHTTPFetcher(url string, logger *slog.Logger) *HTTPFetcher {
	return &HTTPFetcher{
		url:        url,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        logger.With("adapter", "jwks_http"),
	}
}

// Fetch performs a single GET. It never retries.
func (f *HTTPFetcher) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, fmt.Errorf("create jwks request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		f.log.ErrorContext(ctx, "jwks fetch failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("fetch jwks: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		f.log.ErrorContext(ctx, "jwks fetch failed", slog.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("fetch jwks: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxJWKSBytes))
	if err != nil {
		return nil, fmt.Errorf("read jwks: %w", err)
	}
	return body, nil
}

// RedisFetcher shares the raw key set between instances through Redis,
// falling back to the origin fetcher on a miss. Redis failures are logged
// and bypassed; they never fail a fetch on their own.
type RedisFetcher struct {
	next   jwksFetcher
	client *redis.Client
	key    string
	ttl    time.Duration
	log    *slog.Logger
}

// NewRedisFetcher wraps next with a Redis tier stored under key for ttl.
func NewRedisFetcher(next jwksFetcher, client *redis.Client, key string, ttl time.Duration, logger *slog.Logger) *RedisFetcher {
	return &RedisFetcher{
		next:   next,
		client: client,
		key:    key,
		ttl:    ttl,
		log:    logger.With("adapter", "jwks_redis"),
	}
}

// Fetch returns the shared document if present, otherwise fetches from origin and stores it.
func (f *RedisFetcher) Fetch(ctx context.Context) ([]byte, error) {
	cached, err := f.client.Get(ctx, f.key).Bytes()
	switch {
	case err == nil:
		return cached, nil
	case errors.Is(err, redis.Nil):
	default:
		f.log.WarnContext(ctx, "jwks redis read failed", slog.String("error", err.Error()))
	}

	raw, err := f.next.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	if err := f.client.Set(ctx, f.key, raw, f.ttl).Err(); err != nil {
		f.log.WarnContext(ctx, "jwks redis write failed", slog.String("error", err.Error()))
	}
	return raw, nil
}

// Invalidate drops the shared document so the next Fetch goes to origin.
func (f *RedisFetcher) Invalidate(ctx context.Context) error {
	if err := f.client.Del(ctx, f.key).Err(); err != nil {
		return fmt.Errorf("invalidate jwks: %w", err)
	}
	return nil
}
