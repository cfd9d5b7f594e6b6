package portsift

import (
	"context"
	"time"
)

// ScanRecord is one archived probe result. The archive is a queryable
// counterpart to the append-only output streams.
type ScanRecord struct {
	ID             string         `json:"id"`
	Query          string         `json:"query"`
	URL            string         `json:"url"`
	Host           string         `json:"host"`
	Classification Classification `json:"classification"`
	Title          string         `json:"title"`
	ContentHash    string         `json:"contentHash"`
	ProbedAt       time.Time      `json:"probedAt"`
}

// Validate returns an error if the record contains invalid fields.
func (r *ScanRecord) Validate() error {
	if r.Query == "" {
		return Errorf(EINVALID, "scan record query required")
	}
	if r.URL == "" {
		return Errorf(EINVALID, "scan record URL required")
	}
	return nil
}

// ScanRecordFilter represents a filter for FindScanRecords.
type ScanRecordFilter struct {
	Query          *string         `json:"query"`
	Host           *string         `json:"host"`
	Classification *Classification `json:"classification"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// ArchiveService records probe results in a queryable archive.
type ArchiveService interface {
	// CreateScanRecord archives a probe result.
	CreateScanRecord(ctx context.Context, rec *ScanRecord) error

	// FindScanRecords retrieves records matching the filter, newest
	// first.
	FindScanRecords(ctx context.Context, filter ScanRecordFilter) ([]*ScanRecord, error)

	// ActiveHosts returns the distinct hosts with at least one live
	// result for the query.
	ActiveHosts(ctx context.Context, query string) ([]string, error)
}
