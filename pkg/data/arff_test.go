package data

import (
	"testing"

	"github.com/stretchr/testify/require"

	"featureset/pkg/vectorizer"
)

func TestReadARFF(t *testing.T) {
	reader, err := ForPath("testdata/examples.arff", quietConfig())
	require.NoError(t, err)
	featureSet, err := reader.Read()
	require.NoError(t, err)

	require.Equal(t, "test_data", reader.Relation())
	require.False(t, reader.Regression())

	require.Equal(t, []string{"EX1", "EX2"}, featureSet.IDs)
	require.Equal(t, []Value{StrValue("pos"), StrValue("neg")}, featureSet.Labels)
	require.Equal(t, []float64{1, 2, 3, 4}, featureSet.Features.Data())
}

func TestReadARFFRegression(t *testing.T) {
	reader, err := ForPath("testdata/regression.arff", quietConfig())
	require.NoError(t, err)
	featureSet, err := reader.Read()
	require.NoError(t, err)

	require.True(t, reader.Regression())
	require.Equal(t, "housing data", reader.Relation())
	require.Equal(t, []Value{FloatValue(12.5), FloatValue(9.75)}, featureSet.Labels)

	// The quoted attribute name keeps its embedded space.
	dict := featureSet.Vectorizer.(*vectorizer.Dict)
	require.Equal(t, []string{"lot size"}, dict.FeatureNames)
	require.Equal(t, []float64{400, 250}, featureSet.Features.Data())
}

func TestSplitWithQuotes(t *testing.T) {
	fields := splitWithQuotes(`@attribute 'lot size' numeric`, ' ', '\'', '\\')
	require.Equal(t, []string{"@attribute", "lot size", "numeric"}, fields)

	fields = splitWithQuotes(`a,'b,c',d`, ',', '\'', '\\')
	require.Equal(t, []string{"a", "b,c", "d"}, fields)

	fields = splitWithQuotes(`'it\'s',2`, ',', '\'', '\\')
	require.Equal(t, []string{"it's", "2"}, fields)
}
