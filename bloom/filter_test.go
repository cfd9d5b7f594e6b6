package bloom_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/portsift/bloom"
	"github.com/stretchr/testify/assert"
)

func TestFilter_AddAndTest(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	assert.False(t, f.Test("a.com/login"))

	f.Add("a.com/login")

	assert.True(t, f.Test("a.com/login"))
	assert.False(t, f.Test("a.com/admin"))
}

func TestFilter_AddIsIdempotent(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	sig := "a.com/login"

	f.Add(sig)
	countAfterFirst := f.EstimatedCount()

	f.Add(sig)
	f.Add(sig)

	assert.Equal(t, countAfterFirst, f.EstimatedCount())
	assert.True(t, f.Test(sig))
}

func TestFilter_FalsePositiveRate(t *testing.T) {
	t.Parallel()

	const (
		numItems   = 10000
		fpRate     = 0.01
		testProbes = 10000
	)

	f := bloom.NewFilter(numItems, fpRate)

	for i := range numItems {
		f.Add(fmt.Sprintf("host%d.com/login", i))
	}

	falsePositives := 0
	for i := range testProbes {
		if f.Test(fmt.Sprintf("other%d.com/admin", i)) {
			falsePositives++
		}
	}

	// Allow up to 2% to account for statistical variance.
	actualRate := float64(falsePositives) / float64(testProbes)
	assert.Less(t, actualRate, 0.02, "false positive rate %f exceeds 2%%", actualRate)
}
