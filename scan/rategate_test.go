package scan_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/fwojciec/portsift"
	"github.com/fwojciec/portsift/scan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateGate(t *testing.T) {
	t.Parallel()

	t.Run("implements portsift.DomainLimiter interface", func(t *testing.T) {
		t.Parallel()
		var _ portsift.DomainLimiter = scan.NewRateGate(time.Second)
	})

	t.Run("first request is immediate", func(t *testing.T) {
		t.Parallel()

		gate := scan.NewRateGate(100 * time.Millisecond)

		start := time.Now()
		err := gate.Wait(context.Background(), "example.com")
		elapsed := time.Since(start)

		require.NoError(t, err)
		assert.Less(t, elapsed, 50*time.Millisecond, "first request should be immediate")
	})

	t.Run("second request to same host waits the interval", func(t *testing.T) {
		t.Parallel()

		gate := scan.NewRateGate(100 * time.Millisecond)

		err := gate.Wait(context.Background(), "example.com")
		require.NoError(t, err)

		start := time.Now()
		err = gate.Wait(context.Background(), "example.com")
		elapsed := time.Since(start)

		require.NoError(t, err)
		assert.GreaterOrEqual(t, elapsed, 80*time.Millisecond, "should wait for the interval")
	})

	t.Run("different hosts have independent gates", func(t *testing.T) {
		t.Parallel()

		gate := scan.NewRateGate(100 * time.Millisecond)

		err := gate.Wait(context.Background(), "example.com")
		require.NoError(t, err)

		start := time.Now()
		err = gate.Wait(context.Background(), "other.com")
		elapsed := time.Since(start)

		require.NoError(t, err)
		assert.Less(t, elapsed, 50*time.Millisecond, "different host should not wait")
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		gate := scan.NewRateGate(time.Second)

		err := gate.Wait(context.Background(), "example.com")
		require.NoError(t, err)

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		err = gate.Wait(ctx, "example.com")
		assert.Error(t, err, "should fail when context times out")
	})

	t.Run("five concurrent requests to one host take at least four intervals", func(t *testing.T) {
		t.Parallel()

		const interval = 50 * time.Millisecond
		gate := scan.NewRateGate(interval)

		var wg sync.WaitGroup
		start := time.Now()
		for range 5 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_ = gate.Wait(context.Background(), "example.com")
			}()
		}
		wg.Wait()
		elapsed := time.Since(start)

		assert.GreaterOrEqual(t, elapsed, 4*interval, "no request may land within the interval of the previous one")
		assert.Less(t, elapsed, 4*interval+200*time.Millisecond, "concurrency should not inflate the total beyond overhead")
	})
}
