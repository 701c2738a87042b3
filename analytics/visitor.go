// api/analytics/visitor.go
package analytics

import "github.com/google/uuid"

// VisitorKey is the name the visitor identifier is stored under in the
// caller's durable client-local storage.
const VisitorKey = "visitor_id"

// KV is the minimal durable key-value capability the recorder needs for
// visitor identification. The HTTP layer backs it with cookies; tests use
// a plain map.
type KV interface {
	Get(key string) (string, bool)
	Set(key, value string)
}

// EnsureVisitorID returns the stored visitor identifier, generating and
// persisting a fresh cryptographically-random UUID on first sight. The
// identifier is opaque: it only approximates unique-visitor counts and
// carries no personal identity.
func EnsureVisitorID(kv KV) string {
	if id, ok := kv.Get(VisitorKey); ok && id != "" {
		return id
	}
	id := uuid.NewString()
	kv.Set(VisitorKey, id)
	return id
}
