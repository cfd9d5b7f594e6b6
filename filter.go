package portsift

import "strings"

// DefaultKeywords returns the keyword substrings a discovered URL must
// contain to be worth probing.
func DefaultKeywords() []string {
	return []string{"login", "signin", "auth", "admin", "portal", "dashboard", "account", "register"}
}

// DefaultBlockedExtensions returns file extensions that mark a URL as
// static content rather than a page worth probing.
func DefaultBlockedExtensions() []string {
	return []string{".jpg", ".png", ".css", ".js", ".pdf", ".svg", ".zip", ".docx", ".gif"}
}

// DefaultNoisePatterns returns URL substrings that mark a candidate as
// low-value; matching URLs are excluded from probing even if discovered.
func DefaultNoisePatterns() []string {
	return []string{"/news/", "/blog/", "/help/", "/faq/", "/terms/", "/privacy/"}
}

// CandidateFilter decides which discovered URLs are kept in the corpus
// and which pending URLs are excluded from probing as noise.
// A zero-value filter keeps everything.
type CandidateFilter struct {
	// Keywords - a URL must contain at least one to be kept.
	// If empty, the keyword check passes for every URL.
	Keywords []string

	// BlockedExtensions - a URL ending with any of these is rejected.
	BlockedExtensions []string

	// NoisePatterns - a URL containing any of these is excluded from
	// probing.
	NoisePatterns []string
}

// NewCandidateFilter returns a CandidateFilter with the default
// keyword, extension, and noise lists.
func NewCandidateFilter() *CandidateFilter {
	return &CandidateFilter{
		Keywords:          DefaultKeywords(),
		BlockedExtensions: DefaultBlockedExtensions(),
		NoisePatterns:     DefaultNoisePatterns(),
	}
}

// Keep reports whether a candidate URL should enter the corpus.
// The URL is matched case-insensitively.
func (f *CandidateFilter) Keep(rawURL string) bool {
	url := strings.ToLower(rawURL)

	if len(f.Keywords) > 0 {
		matched := false
		for _, kw := range f.Keywords {
			if strings.Contains(url, kw) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	for _, ext := range f.BlockedExtensions {
		if strings.HasSuffix(url, ext) {
			return false
		}
	}

	return true
}

// Noise reports whether the URL matches any noise pattern and should
// be skipped during validation.
func (f *CandidateFilter) Noise(rawURL string) bool {
	for _, pattern := range f.NoisePatterns {
		if strings.Contains(rawURL, pattern) {
			return true
		}
	}
	return false
}
