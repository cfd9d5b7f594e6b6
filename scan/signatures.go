package scan

import "github.com/fwojciec/portsift/bloom"

// Signature set configuration.
const (
	// signatureSetMinCapacity sizes the Bloom filter for the expected
	// per-query corpus; archive indexes yield candidates at a scale
	// where an exact set stops being worth its memory.
	signatureSetMinCapacity = 100_000
	// signatureSetFPRate is the acceptable false positive rate. A
	// false positive skips one new candidate; a duplicate can never
	// enter the corpus.
	signatureSetFPRate = 0.001
)

// signatureSet tracks URL signatures already present in a query's
// corpus. Discovery is single-threaded, so no locking is needed.
type signatureSet struct {
	seen *bloom.Filter
}

// newSignatureSet creates a set sized for an existing corpus of n
// lines plus new intake.
func newSignatureSet(n int) *signatureSet {
	capacity := uint(signatureSetMinCapacity)
	if uint(n)*2 > capacity {
		capacity = uint(n) * 2
	}
	return &signatureSet{seen: bloom.NewFilter(capacity, signatureSetFPRate)}
}

func (s *signatureSet) Add(sig string) {
	s.seen.Add(sig)
}

func (s *signatureSet) Contains(sig string) bool {
	return s.seen.Test(sig)
}
