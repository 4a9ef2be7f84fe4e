package vectorizer

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDictFitTransform(t *testing.T) {
	maps := []map[string]float64{
		{"f2": 2, "f1": 1},
		{"f3": 3},
	}
	dict := NewDict()
	matrix, err := dict.FitTransform(Slice(maps))
	require.NoError(t, err)

	require.Equal(t, []string{"f1", "f2", "f3"}, dict.FeatureNames)
	require.Equal(t, 3, dict.NumFeatures())
	require.Equal(t, 2, matrix.Rows())
	require.Equal(t, 3, matrix.Columns())
	require.Equal(t, []float64{1, 2, 0, 0, 0, 3}, matrix.Data())
}

func TestSliceSeqSingleConsumption(t *testing.T) {
	seq := Slice([]map[string]float64{{"f1": 1}})

	features, done, err := seq.Next()
	require.NoError(t, err)
	require.False(t, done)
	require.Equal(t, map[string]float64{"f1": 1}, features)

	_, done, err = seq.Next()
	require.NoError(t, err)
	require.True(t, done)

	// Exhausted sequences stay exhausted.
	_, done, _ = seq.Next()
	require.True(t, done)
}

func TestHasherFitTransform(t *testing.T) {
	maps := []map[string]float64{
		{"f1": 1, "f2": 2},
		{"f1": 3},
	}
	hasher := NewHasher(8)
	matrix, err := hasher.FitTransform(Slice(maps))
	require.NoError(t, err)
	require.Equal(t, 2, matrix.Rows())
	require.Equal(t, 8, matrix.Columns())
	require.Equal(t, 8, hasher.NumFeatures())

	// Hashing is deterministic across runs.
	again, err := NewHasher(8).FitTransform(Slice(maps))
	require.NoError(t, err)
	require.Equal(t, matrix.Data(), again.Data())

	// f1 alone occupies exactly one column of the second row.
	var nonzero []float64
	for j := 0; j < 8; j++ {
		if v := matrix.At(1, j); v != 0 {
			nonzero = append(nonzero, v)
		}
	}
	require.Len(t, nonzero, 1)
	require.Equal(t, 3.0, math.Abs(nonzero[0]))
}

func TestSaveLoadDict(t *testing.T) {
	dict := NewDict()
	_, err := dict.FitTransform(Slice([]map[string]float64{{"f1": 1, "f2": 2}}))
	require.NoError(t, err)

	var buffer bytes.Buffer
	require.NoError(t, SaveDict(dict, &buffer))

	loaded, err := LoadDict(&buffer)
	require.NoError(t, err)
	require.Equal(t, dict.FeatureNames, loaded.FeatureNames)
	require.Equal(t, dict.FeatureIndex, loaded.FeatureIndex)
}
