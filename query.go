package portsift

import "strings"

// Query is a wildcard host/path pattern submitted to the web-archive
// index (e.g. "*.edu/*"). It identifies one discovery+validation unit
// and is immutable once issued.
type Query string

// Validate returns an error if the query is empty.
func (q Query) Validate() error {
	if strings.TrimSpace(string(q)) == "" {
		return Errorf(EINVALID, "query pattern required")
	}
	return nil
}

// Slug returns a filesystem-safe name derived from the pattern, used
// to namespace per-query data on disk.
// Example: "*.edu/*" → "edu"
func (q Query) Slug() string {
	clean := strings.NewReplacer("*", "", "/", "", ".", "_").Replace(string(q))
	return strings.Trim(clean, "_")
}
