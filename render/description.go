package render

import (
	"bytes"
	"fmt"
	"html/template"
	"net/url"
	"os"
	"path/filepath"

	"github.com/PuerkitoBio/goquery"
	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// Description is the optional trip text shown next to the map.
type Description struct {
	Title string
	HTML  template.HTML
}

// RenderDescription converts markdown with optional YAML front matter. Relative image sources are
// taken as photo names and resolved through resolve.
func RenderDescription(source []byte, resolve AssetResolver) (Description, error) {
	gmark := goldmark.New(
		goldmark.WithExtensions(meta.Meta),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)

	var buffer bytes.Buffer
	pc := parser.NewContext()

	if err := gmark.Convert(source, &buffer, parser.WithContext(pc)); err != nil {
		return Description{}, fmt.Errorf("convert markdown: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(&buffer)
	if err != nil {
		return Description{}, fmt.Errorf("could not parse HTML: %w", err)
	}

	recodeImages(doc, resolve)
	ImplicitFigure(doc)

	fragment, err := doc.Find("body").Html()
	if err != nil {
		return Description{}, fmt.Errorf("extract body: %w", err)
	}

	desc := Description{HTML: template.HTML(fragment)}
	if title, ok := meta.Get(pc)["title"].(string); ok {
		desc.Title = title
	}

	return desc, nil
}

func LoadDescription(path string, resolve AssetResolver) (Description, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return Description{}, err
	}

	return RenderDescription(source, resolve)
}

func recodeImages(doc *goquery.Document, resolve AssetResolver) {
	doc.Find("img").Each(func(i int, s *goquery.Selection) {
		src, ok := s.Attr("src")
		if !ok || resolve == nil {
			return
		}

		uri, err := url.Parse(src)
		if err != nil || uri.IsAbs() || filepath.IsAbs(uri.Path) || uri.Path == "" {
			return
		}

		s.SetAttr("src", resolve(filepath.Base(uri.Path)).Photo)
	})
}
