package paging

import "sync"

// Slice 返回第 page 页（从 1 起）的可见子序列。不做越界收敛：
// 请求超过总页数时返回空页，由调用方保证正常导航不越界。
func Slice[T any](list []T, page, size int) []T {
	if size <= 0 || page <= 0 {
		return nil
	}

	start := (page - 1) * size
	if start >= len(list) {
		return nil
	}

	end := start + size
	if end > len(list) {
		end = len(list)
	}
	return list[start:end]
}

// TotalPages 空列表为 0 页
func TotalPages(total, size int) int {
	if size <= 0 || total <= 0 {
		return 0
	}
	return (total + size - 1) / size
}

// Cursor 为重叠的抓取打代号：过滤/排序变化开启新一代，
// 旧一代的迟到响应被丢弃，不会覆盖更新的状态。
type Cursor struct {
	mu  sync.Mutex
	gen uint64
}

// Begin 开启新一代抓取并返回其代号
func (c *Cursor) Begin() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	return c.gen
}

// Accept 仅当 gen 仍是最新一代时返回 true
func (c *Cursor) Accept(gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return gen == c.gen
}
