package content

import (
	"regexp"
	"strings"

	"Quill/internal/pkg/consts"
)

var sentenceEnd = regexp.MustCompile(`[.!?]+`)

// Excerpt 从富文本导出列表页摘要：最小白名单净化 → 纯文本 →
// 截断到 200 字符内的整词边界 → 取前两句。
func Excerpt(src string) string {
	text := strings.TrimSpace(PlainText(Sanitize(src, Minimal)))

	runes := []rune(text)
	if len(runes) > consts.ExcerptMaxRunes {
		words := strings.Split(string(runes[:consts.ExcerptMaxRunes]), " ")
		text = strings.Join(words[:len(words)-1], " ") + "..."
	}

	var sentences []string
	for _, fragment := range sentenceEnd.Split(text, -1) {
		if strings.TrimSpace(fragment) != "" {
			sentences = append(sentences, strings.TrimSpace(fragment))
		}
	}

	switch {
	case len(sentences) >= 2:
		return sentences[0] + ". " + sentences[1] + "."
	case len(sentences) == 1:
		return sentences[0] + "."
	default:
		return text
	}
}
