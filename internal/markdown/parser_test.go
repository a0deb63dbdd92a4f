package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWithFrontmatter(t *testing.T) {
	source := []byte(`---
title: Privacy Policy
description: How we handle your data.
updated: "2026-08-01"
---

# Heading

Some **bold** text.
`)

	doc, err := Parse(source)
	require.NoError(t, err)

	assert.Equal(t, "Privacy Policy", doc.Meta.Title)
	assert.Equal(t, "How we handle your data.", doc.Meta.Description)
	assert.Equal(t, "2026-08-01", doc.Meta.Updated)

	html := string(doc.Content)
	assert.Contains(t, html, "<h1")
	assert.Contains(t, html, "<strong>bold</strong>")
	assert.NotContains(t, html, "title: Privacy Policy", "frontmatter must not leak into the body")
}

func TestParseWithoutFrontmatter(t *testing.T) {
	doc, err := Parse([]byte("plain paragraph"))
	require.NoError(t, err)

	assert.Empty(t, doc.Meta.Title)
	assert.Contains(t, string(doc.Content), "<p>plain paragraph</p>")
}

func TestParseFileMissing(t *testing.T) {
	_, err := ParseFile("testdata/does-not-exist.md")
	assert.Error(t, err)
}
