package mathutil

import (
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var uuidPattern = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

func TestGenerateUUID(t *testing.T) {
	seen := make(map[string]bool)
	for range 100 {
		id := GenerateUUID()
		require.Len(t, id, 36)
		assert.Regexp(t, uuidPattern, id)
		assert.False(t, seen[id], "duplicate uuid %s", id)
		seen[id] = true
	}
}

func TestUUIDFromSeededSource(t *testing.T) {
	a := UUIDFrom(NewRand(5))
	b := UUIDFrom(NewRand(5))
	assert.Equal(t, a, b)
	assert.Regexp(t, uuidPattern, a)
	assert.NotEqual(t, a, UUIDFrom(NewRand(6)))
}

func TestUUIDFromPinned(t *testing.T) {
	id := UUIDFrom(NewRand(42))
	assert.Equal(t, "9972daab-2c86-459f-9d78-3fe1be4e3280", id)

	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())
	assert.Equal(t, uuid.RFC4122, parsed.Variant())
}
