package render

import (
	"fmt"
	"html"

	"github.com/PuerkitoBio/goquery"
	nethtml "golang.org/x/net/html"
)

// ImplicitFigure wraps paragraphs consisting of a single image into a figure captioned with the alt
// text.
func ImplicitFigure(doc *goquery.Document) {
	doc.Find("p").Each(func(i int, s *goquery.Selection) {
		n := s.Nodes[0]

		if n.FirstChild == nil || n.FirstChild != n.LastChild {
			return
		}

		if n.FirstChild.Type != nethtml.ElementNode {
			return
		}

		if n.FirstChild.Data != "img" {
			return
		}

		src, ok := s.Children().Attr("src")
		if !ok {
			return
		}

		alt, _ := s.Children().Attr("alt")

		s.ReplaceWithHtml(fmt.Sprintf(
			`<figure><img src="%s" alt="%s"><figcaption>%s</figcaption></figure>`,
			html.EscapeString(src),
			html.EscapeString(alt),
			html.EscapeString(alt),
		))
	})
}
