package dispatch_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/on-the-ground/pure_ive_go/internal/dispatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type msg struct {
	key string
	seq int
}

func (m msg) PartitionKey() string { return m.key }

func TestDispatcher_SingleWorkerKeepsOrder(t *testing.T) {
	var got []int
	d := dispatch.New(1, 4, func(m msg) {
		got = append(got, m.seq)
	})

	for i := 0; i < 50; i++ {
		require.True(t, d.Post(context.Background(), msg{key: "k", seq: i}))
	}
	d.Close()

	require.Len(t, got, 50)
	for i, v := range got {
		assert.Equal(t, i, v)
	}
}

func TestDispatcher_PartitionsKeepPerKeyOrder(t *testing.T) {
	var mu sync.Mutex
	got := map[string][]int{}
	d := dispatch.New(4, 8, func(m msg) {
		mu.Lock()
		defer mu.Unlock()
		got[m.key] = append(got[m.key], m.seq)
	})
	assert.Equal(t, 4, d.NumWorkers())

	keys := []string{"alpha", "beta", "gamma", "delta", "epsilon"}
	for i := 0; i < 20; i++ {
		for _, k := range keys {
			require.True(t, d.Post(context.Background(), msg{key: k, seq: i}))
		}
	}
	d.Close()

	for _, k := range keys {
		seqs := got[k]
		require.Len(t, seqs, 20, fmt.Sprintf("key %s", k))
		for i, v := range seqs {
			assert.Equal(t, i, v)
		}
	}
}

func TestDispatcher_PostAfterCloseIsRejected(t *testing.T) {
	d := dispatch.New(2, 1, func(msg) {})
	d.Close()
	d.Close()
	assert.False(t, d.Post(context.Background(), msg{key: "k"}))
}

func TestDispatcher_PostHonoursContext(t *testing.T) {
	block := make(chan struct{})
	d := dispatch.New(1, 1, func(msg) { <-block })
	defer d.Close()
	defer close(block)

	// first message occupies the worker, second fills the buffer
	require.True(t, d.Post(context.Background(), msg{key: "k", seq: 0}))
	require.True(t, d.Post(context.Background(), msg{key: "k", seq: 1}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.False(t, d.Post(ctx, msg{key: "k", seq: 2}))
}
