package repositorycache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/goliatone/go-wordnet-cache/cache"
)

type TestSense struct {
	SynsetID string
	WordID   int64
}

// countingFetch returns fixed records and counts its invocations
type countingFetch struct {
	calls   atomic.Int32
	records []TestSense
	err     error
	gate    chan struct{}
	started chan struct{}
	once    sync.Once
}

func (f *countingFetch) fetch(ctx context.Context) ([]TestSense, error) {
	f.calls.Add(1)
	if f.started != nil {
		f.once.Do(func() { close(f.started) })
	}
	if f.gate != nil {
		select {
		case <-f.gate:
		case <-ctx.Done():
			return nil, fmt.Errorf("query: %w", ctx.Err())
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	out := make([]TestSense, len(f.records))
	copy(out, f.records)
	return out, nil
}

func newLookup(t *testing.T, cfg cache.Config, opts ...Option) *Lookup[TestSense] {
	t.Helper()

	records, err := cache.NewRecordCache[TestSense](cfg)
	if err != nil {
		t.Fatalf("NewRecordCache: %v", err)
	}
	return New(records, cache.NewDefaultKeySerializer(), opts...)
}

func senses() []TestSense {
	return []TestSense{
		{SynsetID: "06142412-n", WordID: 100001},
		{SynsetID: "06142412-n", WordID: 201821},
	}
}

func TestLookup_DefaultName(t *testing.T) {
	l := newLookup(t, cache.DefaultConfig())
	if l.Name() != "test_sense" {
		t.Errorf("expected test_sense, got %s", l.Name())
	}

	named := newLookup(t, cache.DefaultConfig(), WithName("sense"))
	if named.Name() != "sense" {
		t.Errorf("expected sense, got %s", named.Name())
	}
}

func TestLookup_ListCachesResult(t *testing.T) {
	for _, dedupe := range []bool{false, true} {
		t.Run(fmt.Sprintf("dedupe=%v", dedupe), func(t *testing.T) {
			l := newLookup(t, cache.DefaultConfig(), WithDeduplication(dedupe))
			f := &countingFetch{records: senses()}

			first, err := l.List(context.Background(), "FindBySynset", f.fetch, "06142412-n")
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			second, err := l.List(context.Background(), "FindBySynset", f.fetch, "06142412-n")
			if err != nil {
				t.Fatalf("List: %v", err)
			}

			if f.calls.Load() != 1 {
				t.Errorf("expected one fetch, got %d", f.calls.Load())
			}
			if len(first) != 2 || len(second) != 2 || first[0] != second[0] || first[1] != second[1] {
				t.Errorf("expected equal results, got %v and %v", first, second)
			}

			// results are independent copies
			first[0].WordID = 1
			third, _ := l.List(context.Background(), "FindBySynset", f.fetch, "06142412-n")
			if third[0].WordID != 100001 {
				t.Errorf("cached entry was mutated through a result: %v", third)
			}

			stats := l.Stats()
			if stats.Hits != 2 || stats.Misses != 1 || stats.Entries != 1 {
				t.Errorf("unexpected stats %+v", stats)
			}
		})
	}
}

func TestLookup_KeysIncludeMethodAndArgs(t *testing.T) {
	l := newLookup(t, cache.DefaultConfig())
	f := &countingFetch{records: senses()}

	calls := []struct {
		method string
		args   []any
	}{
		{"FindBySynset", []any{"06142412-n"}},
		{"FindBySynset", []any{"06141324-n"}},
		{"FindBySynsetAndLang", []any{"06142412-n", "eng"}},
		{"FindBySynsetAndLang", []any{"06142412-n", "jpn"}},
	}

	for _, c := range calls {
		if _, err := l.List(context.Background(), c.method, f.fetch, c.args...); err != nil {
			t.Fatalf("List: %v", err)
		}
	}

	if f.calls.Load() != int32(len(calls)) {
		t.Errorf("expected %d fetches, got %d", len(calls), f.calls.Load())
	}
}

func TestLookup_ErrorsNotCached(t *testing.T) {
	l := newLookup(t, cache.DefaultConfig(), WithDeduplication(true))
	boom := errors.New("decode failed")
	f := &countingFetch{err: boom}

	for i := 0; i < 2; i++ {
		_, err := l.List(context.Background(), "FindBySynset", f.fetch, "x")
		if !errors.Is(err, boom) {
			t.Fatalf("expected boom, got %v", err)
		}
	}

	if f.calls.Load() != 2 {
		t.Errorf("expected error to be retried, got %d fetches", f.calls.Load())
	}
	if l.Stats().Entries != 0 {
		t.Errorf("expected no entries, got %d", l.Stats().Entries)
	}
}

func TestLookup_EmptyResult(t *testing.T) {
	l := newLookup(t, cache.DefaultConfig(), WithDeduplication(true))
	f := &countingFetch{}

	for i := 0; i < 2; i++ {
		got, err := l.List(context.Background(), "FindBySynset", f.fetch, "missing")
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if got == nil || len(got) != 0 {
			t.Errorf("expected non-nil empty slice, got %#v", got)
		}
	}

	if f.calls.Load() != 1 {
		t.Errorf("expected empty result to be cached, got %d fetches", f.calls.Load())
	}
}

func TestLookup_First(t *testing.T) {
	l := newLookup(t, cache.DefaultConfig())

	got, found, err := l.First(context.Background(), "FindByID", (&countingFetch{records: senses()}).fetch, "06142412-n")
	if err != nil || !found {
		t.Fatalf("expected record, got found=%v err=%v", found, err)
	}
	if got.WordID != 100001 {
		t.Errorf("expected first record, got %+v", got)
	}

	_, found, err = l.First(context.Background(), "FindByID", (&countingFetch{}).fetch, "missing")
	if err != nil || found {
		t.Errorf("expected not found without error, got found=%v err=%v", found, err)
	}

	boom := errors.New("boom")
	_, found, err = l.First(context.Background(), "FindByID", (&countingFetch{err: boom}).fetch, "broken")
	if !errors.Is(err, boom) || found {
		t.Errorf("expected boom, got found=%v err=%v", found, err)
	}
}

func TestLookup_CacheBypass(t *testing.T) {
	l := newLookup(t, cache.DefaultConfig(), WithDeduplication(true))
	f := &countingFetch{records: senses()}
	ctx := context.Background()

	if _, err := l.List(ctx, "FindBySynset", f.fetch, "06142412-n"); err != nil {
		t.Fatalf("List: %v", err)
	}

	f.records = senses()[:1]
	fresh, err := l.List(WithCacheBypass(ctx), "FindBySynset", f.fetch, "06142412-n")
	if err != nil {
		t.Fatalf("List bypass: %v", err)
	}
	if len(fresh) != 1 {
		t.Errorf("expected fresh result, got %v", fresh)
	}

	cached, _ := l.List(ctx, "FindBySynset", f.fetch, "06142412-n")
	if len(cached) != 1 {
		t.Errorf("expected bypass result to refresh the cache, got %v", cached)
	}
	if f.calls.Load() != 2 {
		t.Errorf("expected 2 fetches, got %d", f.calls.Load())
	}
}

func TestLookup_DisabledCache(t *testing.T) {
	cfg := cache.DefaultConfig()
	cfg.Enabled = false
	l := newLookup(t, cfg)
	f := &countingFetch{records: senses()}

	for i := 0; i < 3; i++ {
		got, err := l.List(context.Background(), "FindBySynset", f.fetch, "06142412-n")
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(got) != 2 {
			t.Errorf("expected 2 records, got %d", len(got))
		}
	}
	if f.calls.Load() != 3 {
		t.Errorf("expected every call to reach the source, got %d", f.calls.Load())
	}
}

func TestLookup_ConcurrentSameKey(t *testing.T) {
	tests := []struct {
		name       string
		dedupe     bool
		maxFetches int32
	}{
		{"deduplicated", true, 1},
		{"independent", false, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newLookup(t, cache.DefaultConfig(), WithDeduplication(tt.dedupe))
			f := &countingFetch{records: senses(), gate: make(chan struct{}), started: make(chan struct{})}

			const callers = 16
			results := make([][]TestSense, callers)
			errs := make([]error, callers)

			var wg sync.WaitGroup
			for i := 0; i < callers; i++ {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					results[i], errs[i] = l.List(context.Background(), "FindBySynset", f.fetch, "06142412-n")
				}(i)
			}

			<-f.started
			time.Sleep(20 * time.Millisecond)
			close(f.gate)
			wg.Wait()

			for i := 0; i < callers; i++ {
				if errs[i] != nil {
					t.Fatalf("caller %d: %v", i, errs[i])
				}
				if len(results[i]) != 2 || results[i][0].WordID != 100001 {
					t.Errorf("caller %d: unexpected result %v", i, results[i])
				}
			}

			// every caller owns its slice
			results[0][0].WordID = -1
			for i := 1; i < callers; i++ {
				if results[i][0].WordID == -1 {
					t.Fatalf("caller %d shares a slice with caller 0", i)
				}
			}

			if got := f.calls.Load(); got < 1 || got > tt.maxFetches {
				t.Errorf("expected between 1 and %d fetches, got %d", tt.maxFetches, got)
			}

			if l.Stats().Entries != 1 {
				t.Errorf("expected a single entry, got %d", l.Stats().Entries)
			}
		})
	}
}

func TestLookup_WaiterContextCancelled(t *testing.T) {
	l := newLookup(t, cache.DefaultConfig(), WithDeduplication(true))
	f := &countingFetch{records: senses(), gate: make(chan struct{}), started: make(chan struct{})}

	leaderDone := make(chan error, 1)
	go func() {
		_, err := l.List(context.Background(), "FindBySynset", f.fetch, "06142412-n")
		leaderDone <- err
	}()
	<-f.started

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	_, err := l.List(ctx, "FindBySynset", f.fetch, "06142412-n")
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected waiter to stop on its deadline, got %v", err)
	}

	close(f.gate)
	if err := <-leaderDone; err != nil {
		t.Fatalf("leader: %v", err)
	}
}

func TestLookup_FollowerRetriesWhenLeaderCancelled(t *testing.T) {
	l := newLookup(t, cache.DefaultConfig(), WithDeduplication(true))
	f := &countingFetch{records: senses(), gate: make(chan struct{}), started: make(chan struct{})}

	leaderCtx, cancelLeader := context.WithCancel(context.Background())
	leaderDone := make(chan error, 1)
	go func() {
		_, err := l.List(leaderCtx, "FindBySynset", f.fetch, "06142412-n")
		leaderDone <- err
	}()
	<-f.started

	followerDone := make(chan struct {
		records []TestSense
		err     error
	}, 1)
	go func() {
		records, err := l.List(context.Background(), "FindBySynset", f.fetch, "06142412-n")
		followerDone <- struct {
			records []TestSense
			err     error
		}{records, err}
	}()

	// give the follower time to join the in-flight fetch
	time.Sleep(20 * time.Millisecond)
	cancelLeader()

	if err := <-leaderDone; !errors.Is(err, context.Canceled) {
		t.Errorf("expected leader to be cancelled, got %v", err)
	}

	close(f.gate)

	res := <-followerDone
	if res.err != nil {
		t.Fatalf("follower: %v", res.err)
	}
	if len(res.records) != 2 {
		t.Errorf("expected follower to receive records, got %v", res.records)
	}
}
