package search

import (
	"net/url"
	"strings"
	"unicode"

	"github.com/charmbracelet/x/ansi"

	"gemshub/internal/domain"
)

// Normalize trims and case-folds raw input
func Normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// Slug derives the URL path segment for a gem name
func Slug(name string) string {
	return url.PathEscape(strings.ReplaceAll(strings.ToLower(name), " ", "_"))
}

// Link is the site path for a gem name
func Link(name string) string {
	return LinkPrefix + Slug(name)
}

// Sanitize makes a catalog-provided name safe to print in a terminal
func Sanitize(name string) string {
	plain := ansi.Strip(name)
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, plain)
}

// Filter returns up to MaxResults records whose name contains query,
// in catalog order. query must already be normalized.
func Filter(records []domain.GemRecord, query string) []Result {
	if query == "" {
		return nil
	}
	results := make([]Result, 0, MaxResults)
	for _, r := range records {
		if !strings.Contains(strings.ToLower(r.Name), query) {
			continue
		}
		results = append(results, Result{
			Name: Sanitize(r.Name),
			Slug: Slug(r.Name),
			Link: Link(r.Name),
		})
		if len(results) == MaxResults {
			break
		}
	}
	return results
}
