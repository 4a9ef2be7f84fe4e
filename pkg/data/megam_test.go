package data

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadMegaM(t *testing.T) {
	reader, err := ForPath("testdata/examples.megam", quietConfig())
	require.NoError(t, err)
	featureSet, err := reader.Read()
	require.NoError(t, err)

	require.Equal(t, []string{"ex1", "EXAMPLE_1"}, featureSet.IDs)
	require.Equal(t, []Value{IntValue(1), NoneValue()}, featureSet.Labels)

	// Columns are f1, f2 in sorted order.
	require.Equal(t, 2, featureSet.Features.Columns())
	require.Equal(t, 2.0, featureSet.Features.At(0, 0))
	require.Equal(t, 3.0, featureSet.Features.At(0, 1))
	require.Equal(t, 1.0, featureSet.Features.At(1, 0))
	require.Equal(t, 0.0, featureSet.Features.At(1, 1))
}

func TestReadMegaMSections(t *testing.T) {
	// TRAIN/TEST/DEV markers are skipped; comments name the next line.
	reader, err := ForPath("testdata/sections.megam", quietConfig())
	require.NoError(t, err)
	featureSet, err := reader.Read()
	require.NoError(t, err)

	require.Equal(t, []string{"a", "b"}, featureSet.IDs)
	require.Equal(t, []Value{IntValue(1), IntValue(2)}, featureSet.Labels)
}

func TestReadMegaMDuplicateFeature(t *testing.T) {
	reader, err := ForPath("testdata/dup.megam", quietConfig())
	require.NoError(t, err)
	_, err = reader.Read()
	var dup *DuplicateFeatureError
	require.True(t, errors.As(err, &dup))
}

func TestReadMegaMEmpty(t *testing.T) {
	reader, err := ForPath("testdata/empty.megam", quietConfig())
	require.NoError(t, err)
	_, err = reader.Read()
	var empty *EmptyInputError
	require.True(t, errors.As(err, &empty))
}
