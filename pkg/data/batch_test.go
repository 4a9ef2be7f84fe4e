package data

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/nlpodyssey/spago/pkg/mat"
	"github.com/stretchr/testify/require"
)

func testFeatureSet(n int) *FeatureSet {
	ids := make([]string, n)
	labels := make([]Value, n)
	for i := range ids {
		ids[i] = syntheticID(i)
		labels[i] = IntValue(int64(i % 2))
	}
	return &FeatureSet{
		Source:   "test",
		IDs:      ids,
		Labels:   labels,
		Features: mat.NewEmptyDense(n, 3),
	}
}

func TestBatcher(t *testing.T) {
	batcher := NewBatcher(testFeatureSet(7), 3, rand.New(rand.NewSource(42)))
	require.Equal(t, 7, batcher.Size())

	require.Equal(t, []int{0, 1, 2}, batcher.Next())
	require.Equal(t, []int{3, 4, 5}, batcher.Next())
	require.Equal(t, []int{6}, batcher.Next())
	require.Empty(t, batcher.Next())

	batcher.ResetOrder(OriginalOrder)
	require.Equal(t, []int{0, 1, 2}, batcher.Next())
}

func TestBatcherRandomOrder(t *testing.T) {
	batcher := NewBatcher(testFeatureSet(10), 10, rand.New(rand.NewSource(42)))
	batcher.ResetOrder(RandomOrder)

	batch := batcher.Next()
	require.Len(t, batch, 10)
	sorted := append([]int(nil), batch...)
	sort.Ints(sorted)
	require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, sorted)
}

func TestBatcherRandomSplit(t *testing.T) {
	batcher := NewBatcher(testFeatureSet(10), 4, rand.New(rand.NewSource(42)))
	splits := batcher.RandomSplit(7, 3)
	require.Len(t, splits, 2)
	require.Equal(t, 7, splits[0].Size())
	require.Equal(t, 3, splits[1].Size())

	var all []int
	for _, split := range splits {
		for batch := split.Next(); len(batch) > 0; batch = split.Next() {
			all = append(all, batch...)
		}
	}
	sort.Ints(all)
	require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, all)
}
