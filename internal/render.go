package internal

import (
	"strings"

	"github.com/russross/blackfriday/v2"
)

// RenderMarkdown converts a markdown fragment to HTML
func RenderMarkdown(markdown string) string {
	output := blackfriday.Run(
		[]byte(strings.TrimSpace(markdown)),
		blackfriday.WithExtensions(blackfriday.CommonExtensions|blackfriday.HardLineBreak),
	)
	return string(output)
}

// RenderComicPages paginates a comic script and renders each page
func RenderComicPages(script string) []ComicPageView {
	pages := Paginate(script)
	views := make([]ComicPageView, 0, len(pages))
	for i, page := range pages {
		views = append(views, ComicPageView{
			Page:     i + 1,
			Markdown: page,
			HTML:     RenderMarkdown(page),
		})
	}
	return views
}
