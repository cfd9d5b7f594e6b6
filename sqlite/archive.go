package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/portsift"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ portsift.ArchiveService = (*ArchiveService)(nil)

// ArchiveService implements portsift.ArchiveService using SQLite.
type ArchiveService struct {
	db *DB
}

// NewArchiveService creates a new ArchiveService.
func NewArchiveService(db *DB) *ArchiveService {
	return &ArchiveService{db: db}
}

// CreateScanRecord archives a probe result.
func (s *ArchiveService) CreateScanRecord(ctx context.Context, rec *portsift.ScanRecord) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	rec.ID = uuid.New().String()
	if rec.ProbedAt.IsZero() {
		rec.ProbedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO scan_records (id, query, url, host, classification, title, content_hash, probed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.Query, rec.URL, rec.Host, string(rec.Classification), rec.Title,
		rec.ContentHash, rec.ProbedAt.Format(time.RFC3339))

	return err
}

// FindScanRecords retrieves records matching the filter, newest first.
func (s *ArchiveService) FindScanRecords(ctx context.Context, filter portsift.ScanRecordFilter) ([]*portsift.ScanRecord, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, query, url, host, classification, title, content_hash, probed_at FROM scan_records WHERE 1=1")

	if filter.Query != nil {
		query.WriteString(" AND query = ?")
		args = append(args, *filter.Query)
	}
	if filter.Host != nil {
		query.WriteString(" AND host = ?")
		args = append(args, *filter.Host)
	}
	if filter.Classification != nil {
		query.WriteString(" AND classification = ?")
		args = append(args, string(*filter.Classification))
	}

	query.WriteString(" ORDER BY probed_at DESC")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*portsift.ScanRecord
	for rows.Next() {
		var rec portsift.ScanRecord
		var classification, probedAt string

		if err := rows.Scan(&rec.ID, &rec.Query, &rec.URL, &rec.Host, &classification,
			&rec.Title, &rec.ContentHash, &probedAt); err != nil {
			return nil, err
		}

		rec.Classification = portsift.Classification(classification)
		rec.ProbedAt, err = time.Parse(time.RFC3339, probedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse probed_at: %w", err)
		}

		records = append(records, &rec)
	}
	return records, rows.Err()
}

// ActiveHosts returns the distinct hosts with at least one live result
// for the query.
func (s *ArchiveService) ActiveHosts(ctx context.Context, query string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT DISTINCT host FROM scan_records
		WHERE query = ? AND host != '' AND classification IN (?, ?)
		ORDER BY host ASC
	`, query, string(portsift.ClassLive), string(portsift.ClassPortal))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var hosts []string
	for rows.Next() {
		var host string
		if err := rows.Scan(&host); err != nil {
			return nil, err
		}
		hosts = append(hosts, host)
	}
	return hosts, rows.Err()
}
