package service

import (
	"errors"
	"path/filepath"

	"github.com/medtrack/medtrack/internal/config"
	"github.com/medtrack/medtrack/internal/markdown"
)

var ErrPageNotFound = errors.New("page not found")

// LegalService serves the markdown-backed legal pages (privacy, terms).
type LegalService struct {
	contentPath string
	pages       map[string]string // slug -> filename
}

func NewLegalService(cfg *config.Config) *LegalService {
	return &LegalService{
		contentPath: cfg.ContentPath,
		pages: map[string]string{
			"privacy": "privacy.md",
			"terms":   "terms.md",
		},
	}
}

// Page parses and returns a legal page by slug.
func (s *LegalService) Page(slug string) (*markdown.Document, error) {
	filename, ok := s.pages[slug]
	if !ok {
		return nil, ErrPageNotFound
	}

	doc, err := markdown.ParseFile(filepath.Join(s.contentPath, "legal", filename))
	if err != nil {
		return nil, ErrPageNotFound
	}

	return doc, nil
}
