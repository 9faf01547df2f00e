package util

import (
	"regexp"
	"strings"
)

var (
	upperRegex  = regexp.MustCompile(`[A-Z]`)
	symbolRegex = regexp.MustCompile(`[^a-zA-Z0-9]`)
)

// PasswordError 本地密码规则检查，不通过时返回展示给用户的消息。
// 规则不通过的表单不发起任何网络请求。
func PasswordError(value string) string {
	if len(value) < 4 {
		return "Password must be at least 4 characters"
	}
	if !upperRegex.MatchString(value) {
		return "Password must include at least 1 uppercase letter"
	}
	if !symbolRegex.MatchString(value) {
		return "Password must include at least 1 symbol"
	}
	return ""
}

// SplitNames 逗号分隔的批量名称，去空白、去重、保持输入顺序
func SplitNames(raw string) []string {
	seen := make(map[string]struct{})
	var names []string

	for _, part := range strings.Split(raw, ",") {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		if _, exists := seen[name]; exists {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}
