// Package goquery provides HTML inspection for probe classification.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/portsift"
)

// Compile-time interface verification.
var _ portsift.PageInspector = (*Inspector)(nil)

// Inspector extracts classification-relevant features from HTML.
type Inspector struct{}

// NewInspector creates a new Inspector.
func NewInspector() *Inspector {
	return &Inspector{}
}

// Inspect parses HTML and reports whether the page exposes a
// password-type input control, plus the page title. A page that
// redirected to a login form but still responded successfully is
// caught here like any other.
func (i *Inspector) Inspect(html string) (*portsift.PageProfile, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, portsift.Errorf(portsift.EINVALID, "failed to parse HTML: %v", err)
	}

	profile := &portsift.PageProfile{
		HasPasswordInput: doc.Find("input[type='password']").Length() > 0,
		Title:            strings.TrimSpace(doc.Find("title").First().Text()),
	}

	return profile, nil
}
