package data

import (
	"math/rand"
)

// Batcher iterates over the rows of a FeatureSet in batches of at most
// BatchSize indices, in original or shuffled order. It is the handoff
// object for training layers that consume the set incrementally.
type Batcher struct {
	Set       *FeatureSet
	BatchSize int
	Rand      *rand.Rand

	rowIndices   []int
	currentOrder []int
	currentIndex int
}

type BatchOrder int

const (
	OriginalOrder BatchOrder = iota
	RandomOrder
)

func NewBatcher(set *FeatureSet, batchSize int, rnd *rand.Rand) *Batcher {
	rowIndices := make([]int, set.Len())
	for i := range rowIndices {
		rowIndices[i] = i
	}
	b := &Batcher{Set: set, BatchSize: batchSize, Rand: rnd, rowIndices: rowIndices}
	b.ResetOrder(OriginalOrder)
	return b
}

func newBatcherSplit(set *FeatureSet, batchSize int, rnd *rand.Rand, indices []int) *Batcher {
	b := &Batcher{Set: set, BatchSize: batchSize, Rand: rnd, rowIndices: indices}
	b.ResetOrder(OriginalOrder)
	return b
}

func (b *Batcher) ResetOrder(order BatchOrder) {
	if b.currentOrder == nil {
		b.currentOrder = make([]int, len(b.rowIndices))
	}
	switch order {
	case OriginalOrder:
		copy(b.currentOrder, b.rowIndices)
	case RandomOrder:
		perm := b.Rand.Perm(len(b.currentOrder))
		for i := range perm {
			b.currentOrder[i] = b.rowIndices[perm[i]]
		}
	}
	b.currentIndex = 0
}

// Next returns the row indices of the next batch, or an empty slice
// once the current order is exhausted.
func (b *Batcher) Next() []int {
	batch := make([]int, 0, b.BatchSize)
	for ; b.currentIndex < len(b.currentOrder) && len(batch) < b.BatchSize; b.currentIndex++ {
		batch = append(batch, b.currentOrder[b.currentIndex])
	}
	return batch
}

func (b *Batcher) Size() int {
	return len(b.rowIndices)
}

// RandomSplit shuffles the rows and partitions them into consecutive
// splits of the given sizes, e.g. a train/dev partition.
func (b *Batcher) RandomSplit(sizes ...int) []*Batcher {
	indices := make([]int, len(b.rowIndices))
	copy(indices, b.rowIndices)
	b.Rand.Shuffle(len(indices), func(i, j int) {
		indices[i], indices[j] = indices[j], indices[i]
	})
	splits := make([]*Batcher, len(sizes))
	idx := 0
	for i := range sizes {
		splitIndices := make([]int, sizes[i])
		for j := range splitIndices {
			splitIndices[j] = indices[idx]
			idx++
		}
		splits[i] = newBatcherSplit(b.Set, b.BatchSize, b.Rand, splitIndices)
	}
	return splits
}
