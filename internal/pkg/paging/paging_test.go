package paging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlice(t *testing.T) {
	list := []int{1, 2, 3, 4, 5, 6, 7}

	t.Run("full pages", func(t *testing.T) {
		assert.Equal(t, []int{1, 2, 3}, Slice(list, 1, 3))
		assert.Equal(t, []int{4, 5, 6}, Slice(list, 2, 3))
	})

	t.Run("last page is partial", func(t *testing.T) {
		assert.Equal(t, []int{7}, Slice(list, 3, 3))
	})

	t.Run("page beyond range is empty", func(t *testing.T) {
		assert.Empty(t, Slice(list, 4, 3))
		assert.Empty(t, Slice(list, 100, 3))
	})

	t.Run("invalid page or size", func(t *testing.T) {
		assert.Empty(t, Slice(list, 0, 3))
		assert.Empty(t, Slice(list, 1, 0))
	})

	t.Run("empty list", func(t *testing.T) {
		assert.Empty(t, Slice([]int{}, 1, 3))
	})

	t.Run("pages partition the list", func(t *testing.T) {
		var collected []int
		for page := 1; page <= TotalPages(len(list), 3); page++ {
			collected = append(collected, Slice(list, page, 3)...)
		}
		assert.Equal(t, list, collected)
	})
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 6))
	assert.Equal(t, 1, TotalPages(1, 6))
	assert.Equal(t, 1, TotalPages(6, 6))
	assert.Equal(t, 2, TotalPages(7, 6))
	assert.Equal(t, 0, TotalPages(10, 0))
}

func TestCursor(t *testing.T) {
	t.Run("latest generation wins", func(t *testing.T) {
		var c Cursor
		first := c.Begin()
		second := c.Begin()

		assert.False(t, c.Accept(first), "stale generation must be rejected")
		assert.True(t, c.Accept(second))
	})

	t.Run("accept does not close the generation", func(t *testing.T) {
		var c Cursor
		gen := c.Begin()
		assert.True(t, c.Accept(gen))
		assert.True(t, c.Accept(gen))
	})
}
