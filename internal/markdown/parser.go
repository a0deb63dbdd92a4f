package markdown

import (
	"bytes"
	"fmt"
	"html/template"
	"os"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"go.abhg.dev/goldmark/frontmatter"
)

// Meta holds the YAML frontmatter fields of a content page.
type Meta struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Updated     string `yaml:"updated"`
}

// Document is a parsed markdown content page.
type Document struct {
	Meta    Meta
	Content template.HTML
}

var md = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		&frontmatter.Extender{},
	),
	goldmark.WithRendererOptions(
		html.WithHardWraps(),
	),
)

// Parse converts markdown with optional YAML frontmatter to HTML.
func Parse(source []byte) (*Document, error) {
	var buf bytes.Buffer
	ctx := parser.NewContext()

	err := md.Convert(source, &buf, parser.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("convert markdown: %w", err)
	}

	doc := &Document{
		Content: template.HTML(buf.String()),
	}

	if fm := frontmatter.Get(ctx); fm != nil {
		err = fm.Decode(&doc.Meta)
		if err != nil {
			return nil, fmt.Errorf("decode frontmatter: %w", err)
		}
	}

	return doc, nil
}

// ParseFile reads and parses a markdown file from disk.
func ParseFile(path string) (*Document, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return Parse(source)
}
