package content

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Allowlist 白名单：不在 Tags 中的元素被解包（保留子节点），
// 不在 Attrs 中的属性被剥离
type Allowlist struct {
	Tags  map[string]bool
	Attrs map[string]bool
}

// Minimal 摘要用白名单
var Minimal = Allowlist{
	Tags: map[string]bool{
		"p": true, "strong": true, "em": true, "br": true,
	},
	Attrs: map[string]bool{},
}

// Article 详情页用白名单
var Article = Allowlist{
	Tags: map[string]bool{
		"p": true, "strong": true, "em": true, "br": true,
		"ul": true, "ol": true, "li": true, "a": true, "blockquote": true,
		"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
		"pre": true, "code": true, "img": true,
	},
	Attrs: map[string]bool{
		"href": true, "src": true, "alt": true, "title": true, "target": true, "rel": true,
	},
}

// 整棵子树丢弃的危险元素
var droppedTags = map[string]bool{
	"script": true, "style": true, "iframe": true, "object": true,
	"embed": true, "form": true, "noscript": true, "title": true,
}

// 取值为 URL 的属性需要额外做协议校验
var urlAttrs = map[string]bool{
	"href": true, "src": true,
}

// Sanitize 把富文本压到白名单内。幂等：对已净化的输入原样返回。
func Sanitize(src string, allow Allowlist) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(src))
	if err != nil {
		return ""
	}

	body := doc.Find("body")
	if len(body.Nodes) == 0 {
		return ""
	}
	root := body.Nodes[0]
	cleanChildren(root, allow)

	var b strings.Builder
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&b, c); err != nil {
			return ""
		}
	}
	return b.String()
}

func cleanChildren(parent *html.Node, allow Allowlist) {
	c := parent.FirstChild
	for c != nil {
		next := c.NextSibling

		switch c.Type {
		case html.ElementNode:
			name := strings.ToLower(c.Data)
			switch {
			case droppedTags[name]:
				parent.RemoveChild(c)
			case !allow.Tags[name]:
				// 解包：子节点上提到原位置，之后继续从第一个上提的节点处理
				first := c.FirstChild
				for gc := c.FirstChild; gc != nil; {
					gcNext := gc.NextSibling
					c.RemoveChild(gc)
					parent.InsertBefore(gc, c)
					gc = gcNext
				}
				parent.RemoveChild(c)
				if first != nil {
					next = first
				}
			default:
				filterAttrs(c, allow)
				cleanChildren(c, allow)
			}
		case html.CommentNode:
			parent.RemoveChild(c)
		}

		c = next
	}
}

func filterAttrs(n *html.Node, allow Allowlist) {
	kept := n.Attr[:0]
	for _, attr := range n.Attr {
		key := strings.ToLower(attr.Key)
		if !allow.Attrs[key] {
			continue
		}
		if urlAttrs[key] && !safeURL(attr.Val) {
			continue
		}
		kept = append(kept, attr)
	}
	n.Attr = kept
}

func safeURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	switch strings.ToLower(u.Scheme) {
	case "", "http", "https", "mailto":
		return true
	default:
		return false
	}
}

// PlainText 去掉全部标记，仅保留文本内容
func PlainText(src string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(src))
	if err != nil {
		return ""
	}
	return doc.Text()
}
