package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hublead/marketplace-api/internal/core/domain"
)

const grantTTL = 24 * time.Hour

// GrantCache caches disclosure grants in Redis so replayed disclosure calls
// can skip the primary store. Key format: granted:<request_id>:<supplier_id>,
// value: the contact payload as JSON. Mongo stays authoritative; entries
// expire after grantTTL and are only ever written after a confirmed grant.
type GrantCache struct {
	client *redis.Client
}

// NewGrantCache creates a GrantCache wrapping the given Redis client.
func NewGrantCache(client *redis.Client) *GrantCache {
	return &GrantCache{client: client}
}

// Lookup returns the cached contact payload for the pair, or nil on a miss.
func (g *GrantCache) Lookup(ctx context.Context, requestID, supplierID string) (*domain.Contact, error) {
	raw, err := g.client.Get(ctx, g.key(requestID, supplierID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("grant lookup: %w", err)
	}

	var contact domain.Contact
	if err := json.Unmarshal([]byte(raw), &contact); err != nil {
		return nil, fmt.Errorf("grant lookup: decode: %w", err)
	}
	return &contact, nil
}

// Store records a confirmed grant (expires after grantTTL).
func (g *GrantCache) Store(ctx context.Context, requestID, supplierID string, contact domain.Contact) error {
	raw, err := json.Marshal(contact)
	if err != nil {
		return fmt.Errorf("grant store: encode: %w", err)
	}
	return g.client.Set(ctx, g.key(requestID, supplierID), raw, grantTTL).Err()
}

func (g *GrantCache) key(requestID, supplierID string) string {
	return fmt.Sprintf("granted:%s:%s", requestID, supplierID)
}
