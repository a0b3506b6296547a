package permissions

import (
	"context"
	"errors"
	"io"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devpulse/hackhub/pkg/observability"
)

// stubFetcher returns a scripted sequence of permission responses, repeating
// the last one once the script is exhausted.
type stubFetcher struct {
	mu      sync.Mutex
	script  []stubResponse
	calls   int
	blockCh chan struct{}
}

type stubResponse struct {
	tokens []string
	err    error
}

func (s *stubFetcher) GetPermissions(ctx context.Context, email string) ([]string, error) {
	s.mu.Lock()
	idx := s.calls
	if idx >= len(s.script) {
		idx = len(s.script) - 1
	}
	resp := s.script[idx]
	s.calls++
	block := s.blockCh
	s.mu.Unlock()

	if block != nil {
		<-block
	}
	return resp.tokens, resp.err
}

func (s *stubFetcher) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func testLogger() *observability.Logger {
	return observability.NewLogger(observability.ErrorLevel, io.Discard)
}

func TestRefreshLoadsPermissions(t *testing.T) {
	fetcher := &stubFetcher{script: []stubResponse{
		{tokens: []string{"viewThemes", "createTheme"}},
	}}
	resolver := NewResolver(fetcher, "sub@hackhub.dev", testLogger())

	resolver.Refresh(context.Background())

	current := resolver.Current()
	assert.True(t, current.Has(CapViewThemes))
	assert.True(t, current.Has(CapCreateTheme))
	assert.False(t, current.Has(CapDeleteTheme))
}

func TestFetchErrorClearsSet(t *testing.T) {
	fetcher := &stubFetcher{script: []stubResponse{
		{tokens: []string{"viewThemes", "manageResults"}},
		{err: errors.New("upstream unavailable")},
	}}
	resolver := NewResolver(fetcher, "sub@hackhub.dev", testLogger())
	ctx := context.Background()

	resolver.Refresh(ctx)
	require.True(t, resolver.Current().Has(CapViewThemes))

	resolver.Refresh(ctx)

	assert.Empty(t, resolver.Current(), "a failed fetch must leave no capability granted")
}

func TestSetRecoversAfterError(t *testing.T) {
	fetcher := &stubFetcher{script: []stubResponse{
		{err: errors.New("timeout")},
		{tokens: []string{"declareResults"}},
	}}
	resolver := NewResolver(fetcher, "sub@hackhub.dev", testLogger())
	ctx := context.Background()

	resolver.Refresh(ctx)
	require.Empty(t, resolver.Current())

	resolver.Refresh(ctx)
	assert.True(t, resolver.Current().Has(CapDeclareResults))
}

func TestOnChangeFiresOnlyOnActualChange(t *testing.T) {
	fetcher := &stubFetcher{script: []stubResponse{
		{tokens: []string{"viewThemes"}},
		{tokens: []string{"viewThemes"}},
		{tokens: []string{"viewThemes", "createTheme"}},
	}}
	resolver := NewResolver(fetcher, "sub@hackhub.dev", testLogger())
	ctx := context.Background()

	var notifications []Set
	resolver.OnChange(func(next Set) {
		notifications = append(notifications, next)
	})

	resolver.Refresh(ctx)
	resolver.Refresh(ctx) // identical set, must not notify
	resolver.Refresh(ctx)

	require.Len(t, notifications, 2)
	assert.True(t, notifications[0].Equal(NewSet("viewThemes")))
	assert.True(t, notifications[1].Equal(NewSet("viewThemes", "createTheme")))
}

func TestRepeatedErrorsNotifyOnce(t *testing.T) {
	fetcher := &stubFetcher{script: []stubResponse{
		{tokens: []string{"viewThemes"}},
		{err: errors.New("boom")},
		{err: errors.New("boom")},
	}}
	resolver := NewResolver(fetcher, "sub@hackhub.dev", testLogger())
	ctx := context.Background()

	var notified int
	resolver.OnChange(func(Set) { notified++ })

	resolver.Refresh(ctx)
	resolver.Refresh(ctx) // non-empty -> empty: notifies
	resolver.Refresh(ctx) // empty -> empty: silent

	assert.Equal(t, 2, notified)
}

func TestOnChangeReceivesCopy(t *testing.T) {
	fetcher := &stubFetcher{script: []stubResponse{
		{tokens: []string{"viewThemes"}},
	}}
	resolver := NewResolver(fetcher, "sub@hackhub.dev", testLogger())

	resolver.OnChange(func(next Set) {
		next[CapDeleteTheme] = struct{}{}
	})
	resolver.Refresh(context.Background())

	assert.False(t, resolver.Current().Has(CapDeleteTheme))
}

func TestConcurrentRefreshesCoalesce(t *testing.T) {
	block := make(chan struct{})
	fetcher := &stubFetcher{
		script:  []stubResponse{{tokens: []string{"viewThemes"}}},
		blockCh: block,
	}
	resolver := NewResolver(fetcher, "sub@hackhub.dev", testLogger())
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resolver.Refresh(ctx)
		}()
	}

	// Let all goroutines pile onto the in-flight fetch before releasing it.
	time.Sleep(50 * time.Millisecond)
	close(block)
	wg.Wait()

	assert.Equal(t, 1, fetcher.callCount())
	assert.True(t, resolver.Current().Has(CapViewThemes))
}

func TestRunPollsUntilCancelled(t *testing.T) {
	fetcher := &stubFetcher{script: []stubResponse{
		{tokens: []string{"viewThemes"}},
	}}
	resolver := NewResolver(fetcher, "sub@hackhub.dev", testLogger(),
		WithInterval(10*time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		resolver.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		return fetcher.callCount() >= 3
	}, time.Second, 5*time.Millisecond, "expected the initial fetch plus poll ticks")

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after context cancellation")
	}

	settled := fetcher.callCount()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, settled, fetcher.callCount(), "no fetches after cancellation")
}

func TestRunFetchesImmediately(t *testing.T) {
	fetcher := &stubFetcher{script: []stubResponse{
		{tokens: []string{"viewThemes"}},
	}}
	resolver := NewResolver(fetcher, "sub@hackhub.dev", testLogger(),
		WithInterval(time.Hour))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	var started atomic.Bool
	go func() {
		started.Store(true)
		resolver.Run(ctx)
	}()

	assert.Eventually(t, func() bool {
		return started.Load() && fetcher.callCount() == 1
	}, time.Second, 5*time.Millisecond, "first fetch must not wait for the interval")
}

func TestMetricsRecordSetSize(t *testing.T) {
	metrics := observability.NewMetrics(nil)
	fetcher := &stubFetcher{script: []stubResponse{
		{tokens: []string{"viewThemes", "createTheme", "editTheme"}},
	}}
	resolver := NewResolver(fetcher, "sub@hackhub.dev", testLogger(),
		WithMetrics(metrics))

	resolver.Refresh(context.Background())

	assert.Len(t, resolver.Current(), 3)
}
