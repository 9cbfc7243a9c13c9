package network_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/gridres/network"
	"github.com/stretchr/testify/require"
)

// TestConcurrentAddBus ensures concurrent AddBus calls register every bus
// exactly once with distinct indices.
func TestConcurrentAddBus(t *testing.T) {
	n := network.New()
	const num = 200
	var wg sync.WaitGroup
	wg.Add(num)

	idx := make([]int, num)
	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			pos, err := n.AddBus(network.Bus{ID: id})
			require.NoError(t, err)
			idx[id] = pos
		}(i)
	}
	wg.Wait()

	require.Equal(t, num, n.BusCount())
	seen := make(map[int]bool, num)
	for _, p := range idx {
		require.False(t, seen[p])
		seen[p] = true
	}
}
