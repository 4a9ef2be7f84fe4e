package vectorizer

import (
	"github.com/cespare/xxhash"
	"github.com/nlpodyssey/spago/pkg/mat"
)

// Hasher is a fixed-width hashing vectorizer. Feature names are hashed
// to a column index modulo the width; one extra hash bit selects the
// sign of the contribution so that collisions tend to cancel out. The
// width should be a power of two larger than the expected number of
// distinct features.
type Hasher struct {
	Width int
}

func NewHasher(width int) *Hasher {
	return &Hasher{Width: width}
}

func (h *Hasher) FitTransform(seq FeatureSeq) (mat.Matrix, error) {
	var data []float64
	rows := 0
	for {
		features, done, err := seq.Next()
		if err != nil {
			return nil, err
		}
		if done {
			break
		}
		row := make([]float64, h.Width)
		for name, value := range features {
			sum := xxhash.Sum64String(name)
			col := int(sum % uint64(h.Width))
			if sum&(1<<63) != 0 {
				value = -value
			}
			row[col] += value
		}
		data = append(data, row...)
		rows++
	}
	return mat.NewDense(rows, h.Width, data), nil
}

func (h *Hasher) NumFeatures() int {
	return h.Width
}
