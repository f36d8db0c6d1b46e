package newsportal

import "github.com/daniilsolovey/news-cms/internal/db"

func NewImage(i *db.Image) Image {
	return Image{Image: *i}
}

func NewCategory(c *db.Category) Category {
	return Category{Category: *c}
}

func NewTag(t *db.Tag) Tag {
	return Tag{Tag: *t}
}

func NewNews(n *db.News) News {
	return News{News: *n}
}

func NewContentBlock(b *db.ContentBlock) ContentBlock {
	return ContentBlock{ContentBlock: *b}
}

func NewLatestNewsPlugin(p *db.LatestNewsPlugin) LatestNewsPlugin {
	return LatestNewsPlugin{LatestNewsPlugin: *p}
}
