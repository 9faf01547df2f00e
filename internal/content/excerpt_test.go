package content

import (
	"strings"
	"testing"
	"unicode/utf8"

	"Quill/internal/pkg/consts"

	"github.com/stretchr/testify/assert"
)

func TestExcerpt(t *testing.T) {
	t.Run("keeps first two sentences", func(t *testing.T) {
		got := Excerpt("<p>Hello. World. Third sentence.</p>")
		assert.Equal(t, "Hello. World.", got)
	})

	t.Run("normalizes other sentence terminators", func(t *testing.T) {
		got := Excerpt("<p>Wow! Amazing? More!</p>")
		assert.Equal(t, "Wow. Amazing.", got)
	})

	t.Run("single sentence gets a terminal period", func(t *testing.T) {
		got := Excerpt("<p>Just one fragment without punctuation</p>")
		assert.Equal(t, "Just one fragment without punctuation.", got)
	})

	t.Run("markup is stripped before excerpting", func(t *testing.T) {
		got := Excerpt(`<p><script>alert(1)</script>Safe. <strong>Stuff</strong>. More.</p>`)
		assert.Equal(t, "Safe. Stuff.", got)
	})

	t.Run("long content truncates at a word boundary", func(t *testing.T) {
		src := "<p>" + strings.Repeat("alpha ", 50) + "</p>"
		got := Excerpt(src)

		// 200 字符内能装下 33 个完整的 alpha
		want := strings.TrimSpace(strings.Repeat("alpha ", 33)) + "."
		assert.Equal(t, want, got)
		assert.LessOrEqual(t, utf8.RuneCountInString(got), consts.ExcerptMaxRunes)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Equal(t, "", Excerpt(""))
		assert.Equal(t, "", Excerpt("<p>   </p>"))
	})
}
