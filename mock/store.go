package mock

import "github.com/fwojciec/portsift"

var _ portsift.ProgressStore = (*ProgressStore)(nil)

// ProgressStore is a mock implementation of portsift.ProgressStore.
type ProgressStore struct {
	PageFn    func(query portsift.Query) int
	SetPageFn func(query portsift.Query, page int) error
}

func (s *ProgressStore) Page(query portsift.Query) int {
	return s.PageFn(query)
}

func (s *ProgressStore) SetPage(query portsift.Query, page int) error {
	return s.SetPageFn(query, page)
}

var _ portsift.LineAppender = (*LineAppender)(nil)

// LineAppender is a mock implementation of portsift.LineAppender.
// The zero value collects appended lines in Lines.
type LineAppender struct {
	AppendFn func(line string) error
	CloseFn  func() error

	Lines []string
}

func (a *LineAppender) Append(line string) error {
	if a.AppendFn != nil {
		return a.AppendFn(line)
	}
	a.Lines = append(a.Lines, line)
	return nil
}

func (a *LineAppender) Close() error {
	if a.CloseFn != nil {
		return a.CloseFn()
	}
	return nil
}

var _ portsift.Store = (*Store)(nil)

// Store is a mock implementation of portsift.Store.
type Store struct {
	CorpusFn      func(query portsift.Query) ([]string, error)
	OpenCorpusFn  func(query portsift.Query) (portsift.LineAppender, error)
	HistoryFn     func(query portsift.Query) (map[string]bool, error)
	OpenResultsFn func(query portsift.Query) (portsift.ResultLog, error)
}

func (s *Store) Corpus(query portsift.Query) ([]string, error) {
	return s.CorpusFn(query)
}

func (s *Store) OpenCorpus(query portsift.Query) (portsift.LineAppender, error) {
	return s.OpenCorpusFn(query)
}

func (s *Store) History(query portsift.Query) (map[string]bool, error) {
	return s.HistoryFn(query)
}

func (s *Store) OpenResults(query portsift.Query) (portsift.ResultLog, error) {
	return s.OpenResultsFn(query)
}

var _ portsift.ResultLog = (*ResultLog)(nil)

// ResultLog is a mock implementation of portsift.ResultLog.
// The zero value collects recorded outcomes in Records.
type ResultLog struct {
	RecordFn func(rawURL string, outcome portsift.Outcome) error
	CloseFn  func() error

	Records map[string]portsift.Outcome
}

func (l *ResultLog) Record(rawURL string, outcome portsift.Outcome) error {
	if l.RecordFn != nil {
		return l.RecordFn(rawURL, outcome)
	}
	if l.Records == nil {
		l.Records = make(map[string]portsift.Outcome)
	}
	l.Records[rawURL] = outcome
	return nil
}

func (l *ResultLog) Close() error {
	if l.CloseFn != nil {
		return l.CloseFn()
	}
	return nil
}
