package testutil_test

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/gentype/internal/cache"
	"github.com/roach88/gentype/internal/harness"
	"github.com/roach88/gentype/internal/oracle"
	"github.com/roach88/gentype/internal/testutil"
	"github.com/roach88/gentype/internal/types"
)

var (
	foo   = types.NewObjectType("Foo")
	child = types.NewObjectType("Child", "Foo")
)

func newOracle(store *cache.Store, clock *testutil.DeterministicClock, run string) *oracle.Oracle {
	return oracle.New(
		oracle.WithCache(store),
		oracle.WithClock(clock),
		oracle.WithRunTokens(testutil.NewFixedRunGenerator(run)),
	)
}

func TestDeterministicClock_PinsCacheSeqs(t *testing.T) {
	clock := testutil.NewDeterministicClock()
	store := testutil.OpenTempCache(t)
	o := newOracle(store, clock, "")
	ctx := context.Background()

	_, err := o.IsSuperTypeOf(ctx, foo, child)
	require.NoError(t, err)
	_, err = o.IsSuperTypeOf(ctx, foo, child)
	require.NoError(t, err)
	_, err = o.Accepts(ctx, foo, child, true)
	require.NoError(t, err)

	rels, err := store.ReadRunRelations(ctx, testutil.DefaultRunToken)
	require.NoError(t, err)
	require.Len(t, rels, 2)
	assert.Equal(t, int64(1), rels[0].Seq)
	assert.Equal(t, int64(2), rels[1].Seq)
	assert.Equal(t, int64(2), clock.Current(), "memo hits do not advance the clock")
}

func TestDeterministicClock_ContinuesAcrossOracles(t *testing.T) {
	ctx := context.Background()
	store := testutil.OpenTempCache(t)

	first := testutil.NewDeterministicClock()
	_, err := newOracle(store, first, "run-1").IsSuperTypeOf(ctx, foo, child)
	require.NoError(t, err)

	second := testutil.NewDeterministicClockAt(first.Current())
	_, err = newOracle(store, second, "run-2").IsSubTypeOf(ctx, foo, child)
	require.NoError(t, err)

	rels, err := store.ReadRunRelations(ctx, "run-2")
	require.NoError(t, err)
	require.Len(t, rels, 1)
	assert.Equal(t, int64(2), rels[0].Seq)
}

func TestDeterministicClock_ResetReplaysCacheRows(t *testing.T) {
	clock := testutil.NewDeterministicClock()
	ctx := context.Background()
	store := testutil.OpenTempCache(t)
	query := func() {
		o := newOracle(store, clock, "")
		_, err := o.IsSuperTypeOf(ctx, foo, child)
		require.NoError(t, err)
		_, err = o.IsSubTypeOf(ctx, child, foo)
		require.NoError(t, err)
	}

	query()
	before, err := store.ReadRunRelations(ctx, testutil.DefaultRunToken)
	require.NoError(t, err)

	require.NoError(t, store.Clear(ctx))
	clock.Reset()
	query()
	after, err := store.ReadRunRelations(ctx, testutil.DefaultRunToken)
	require.NoError(t, err)

	require.Len(t, after, 2)
	assert.Equal(t, before, after)
}

func TestDeterministicClock_ConcurrentQueriesGetDistinctSeqs(t *testing.T) {
	const queries = 25
	clock := testutil.NewDeterministicClock()
	store := testutil.OpenTempCache(t)
	o := newOracle(store, clock, "")
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := range queries {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sub := types.NewObjectType(fmt.Sprintf("C%d", i), "Foo")
			_, err := o.IsSuperTypeOf(ctx, foo, sub)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(queries), clock.Current())
	assert.Equal(t, int64(queries), o.Stats().Misses)
}

func TestDeterministicClock_HarnessRerunIsByteIdentical(t *testing.T) {
	scenario, err := harness.LoadScenario(filepath.Join("..", "harness", "testdata", "scenarios", "templates.yaml"))
	require.NoError(t, err)

	snapshot := func() []byte {
		result, err := harness.Run(scenario)
		require.NoError(t, err)
		data, err := harness.Snapshot(scenario, result)
		require.NoError(t, err)
		return data
	}

	assert.Equal(t, string(snapshot()), string(snapshot()))
}
