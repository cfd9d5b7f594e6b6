package mock

import (
	"context"

	"github.com/fwojciec/portsift"
)

var _ portsift.ArchiveService = (*ArchiveService)(nil)

// ArchiveService is a mock implementation of portsift.ArchiveService.
type ArchiveService struct {
	CreateScanRecordFn func(ctx context.Context, rec *portsift.ScanRecord) error
	FindScanRecordsFn  func(ctx context.Context, filter portsift.ScanRecordFilter) ([]*portsift.ScanRecord, error)
	ActiveHostsFn      func(ctx context.Context, query string) ([]string, error)
}

func (s *ArchiveService) CreateScanRecord(ctx context.Context, rec *portsift.ScanRecord) error {
	return s.CreateScanRecordFn(ctx, rec)
}

func (s *ArchiveService) FindScanRecords(ctx context.Context, filter portsift.ScanRecordFilter) ([]*portsift.ScanRecord, error) {
	return s.FindScanRecordsFn(ctx, filter)
}

func (s *ArchiveService) ActiveHosts(ctx context.Context, query string) ([]string, error) {
	return s.ActiveHostsFn(ctx, query)
}
