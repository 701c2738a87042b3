package analytics

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mapKV is an in-memory KV standing in for the browser's durable storage.
type mapKV map[string]string

func (m mapKV) Get(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

func (m mapKV) Set(key, value string) {
	m[key] = value
}

func TestEnsureVisitorIDGeneratesAndPersists(t *testing.T) {
	kv := mapKV{}

	id := EnsureVisitorID(kv)

	require.NotEmpty(t, id)
	_, err := uuid.Parse(id)
	assert.NoError(t, err, "visitor id should be a well-formed UUID")
	assert.Equal(t, id, kv[VisitorKey])

	// Subsequent calls from the same storage reuse the identifier unchanged.
	assert.Equal(t, id, EnsureVisitorID(kv))
}

func TestEnsureVisitorIDReusesExisting(t *testing.T) {
	kv := mapKV{VisitorKey: "existing-visitor"}

	assert.Equal(t, "existing-visitor", EnsureVisitorID(kv))
	assert.Equal(t, "existing-visitor", kv[VisitorKey])
}

func TestEnsureVisitorIDDistinctPerStorage(t *testing.T) {
	// Two separate storages model two browsers: their identifiers must not
	// be shared or derivable from each other.
	a := EnsureVisitorID(mapKV{})
	b := EnsureVisitorID(mapKV{})

	assert.NotEqual(t, a, b)
}

func TestEnsureVisitorIDTreatsEmptyAsMissing(t *testing.T) {
	kv := mapKV{VisitorKey: ""}

	id := EnsureVisitorID(kv)

	require.NotEmpty(t, id)
	assert.Equal(t, id, kv[VisitorKey])
}
