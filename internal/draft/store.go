// Package draft is the durable draft store: session-scoped key-value
// persistence that survives process restarts. The session engine
// mirrors its in-flight state here so a crash mid-workout loses
// nothing; entries are purged on save or abandon.
package draft

import (
	"context"
	"fmt"
)

// Store is the durable draft store contract. Keys are opaque strings;
// values are JSON-serializable aggregates. Last write per key wins;
// writes to different keys are independent.
type Store interface {
	// Get returns the stored value for key, with ok=false when absent.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
	// Clear removes every key under the given prefix.
	Clear(ctx context.Context, prefix string) error
}

// SessionKey builds the draft key for a session. The template ID is
// embedded so concurrent sessions for different templates never
// collide; two sessions for the same template share the key and the
// last writer wins.
func SessionKey(templateID string) string {
	return fmt.Sprintf("session:%s", templateID)
}
