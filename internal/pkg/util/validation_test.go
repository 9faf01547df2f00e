package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPasswordError(t *testing.T) {
	t.Run("too short", func(t *testing.T) {
		assert.Equal(t, "Password must be at least 4 characters", PasswordError("A!a"))
	})

	t.Run("missing uppercase", func(t *testing.T) {
		assert.Equal(t, "Password must include at least 1 uppercase letter", PasswordError("abc!"))
	})

	t.Run("missing symbol", func(t *testing.T) {
		assert.Equal(t, "Password must include at least 1 symbol", PasswordError("Abcd"))
	})

	t.Run("valid", func(t *testing.T) {
		assert.Equal(t, "", PasswordError("Ab!d"))
		assert.Equal(t, "", PasswordError("Pass word"), "space counts as a symbol")
	})
}

func TestSplitNames(t *testing.T) {
	t.Run("trims and drops empties", func(t *testing.T) {
		assert.Equal(t, []string{"go", "redis"}, SplitNames(" go , redis ,, "))
	})

	t.Run("dedupes preserving order", func(t *testing.T) {
		assert.Equal(t, []string{"a", "b"}, SplitNames("a,b,a"))
	})

	t.Run("all blank", func(t *testing.T) {
		assert.Empty(t, SplitNames(" , ,"))
	})
}
