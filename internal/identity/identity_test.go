package identity

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hslPattern = regexp.MustCompile(`^hsl\((\d{1,3}), 70%, 50%\)$`)

func TestColorFor(t *testing.T) {
	t.Run("is deterministic", func(t *testing.T) {
		for _, name := range []string{"Alice", "Bob", "a", "日本語", "a much longer display name"} {
			assert.Equal(t, ColorFor(name), ColorFor(name))
		}
	})

	t.Run("emits hsl with fixed saturation and lightness", func(t *testing.T) {
		for _, name := range []string{"Alice", "Bob", "Zoë", "x"} {
			m := hslPattern.FindStringSubmatch(ColorFor(name))
			require.NotNil(t, m, "unexpected color format: %s", ColorFor(name))
		}
	})

	t.Run("hue stays in range for hash-negative inputs", func(t *testing.T) {
		// Long strings overflow the 32-bit hash into negative territory;
		// the hue must still normalize into [0, 360).
		for _, name := range []string{"aaaaaaaaaaaaaaaaaaaaaaaa", "zzzzzzzzzz", "異體字異體字異體字"} {
			m := hslPattern.FindStringSubmatch(ColorFor(name))
			require.NotNil(t, m, "unexpected color format: %s", ColorFor(name))
		}
	})

	t.Run("single character matches the fold directly", func(t *testing.T) {
		// For one character the hash is just its code unit: 'a' is 97.
		assert.Equal(t, "hsl(97, 70%, 50%)", ColorFor("a"))
	})
}

func TestIdentityReady(t *testing.T) {
	assert.False(t, Identity{}.Ready())
	assert.False(t, Identity{ID: "A"}.Ready())
	assert.False(t, Identity{Name: "Alice"}.Ready())
	assert.True(t, Identity{ID: "A", Name: "Alice"}.Ready())
}

func TestIdentityColorTracksName(t *testing.T) {
	self := Identity{ID: "A", Name: "Alice"}
	assert.Equal(t, ColorFor("Alice"), self.Color())

	renamed := self.WithName("Alicia")
	assert.Equal(t, ColorFor("Alicia"), renamed.Color())
	// Original is unchanged
	assert.Equal(t, "Alice", self.Name)
}

func TestLoadOrCreateID(t *testing.T) {
	t.Run("creates and persists a new ID", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "state", "id")

		id, err := LoadOrCreateID(path)
		require.NoError(t, err)
		_, err = uuid.Parse(id)
		require.NoError(t, err)

		// A second load returns the same ID
		again, err := LoadOrCreateID(path)
		require.NoError(t, err)
		assert.Equal(t, id, again)
	})

	t.Run("rejects a corrupt identity file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "id")
		require.NoError(t, os.WriteFile(path, []byte("not-a-uuid"), 0o600))

		_, err := LoadOrCreateID(path)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "corrupt identity file")
	})
}
