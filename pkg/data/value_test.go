package data

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestSafeFloat(t *testing.T) {
	logger := zerolog.Nop()

	require.Equal(t, IntValue(3), SafeFloat(StrValue("3"), nil, logger))
	require.Equal(t, FloatValue(3.5), SafeFloat(StrValue("3.5"), nil, logger))
	require.Equal(t, StrValue("abc"), SafeFloat(StrValue("abc"), nil, logger))
	require.Equal(t, IntValue(0), SafeFloat(NoneValue(), nil, logger))
	require.Equal(t, IntValue(-7), SafeFloat(StrValue("-7"), nil, logger))
}

func TestSafeFloatClassMap(t *testing.T) {
	classMap := map[string]string{"pos": "1", "neg": "0"}

	var out bytes.Buffer
	logger := zerolog.New(&out)

	require.Equal(t, IntValue(1), SafeFloat(StrValue("pos"), classMap, logger))
	require.Equal(t, IntValue(0), SafeFloat(StrValue("neg"), classMap, logger))
	require.Empty(t, out.String())

	// A value missing from a supplied map is used verbatim but flagged.
	require.Equal(t, StrValue("neutral"), SafeFloat(StrValue("neutral"), classMap, logger))
	require.Contains(t, out.String(), "neutral")
}

func TestSetFeature(t *testing.T) {
	logger := zerolog.Nop()
	features := map[string]float64{}

	setFeature(features, "f1", "2.5", logger)
	setFeature(features, "f2", "3", logger)
	setFeature(features, "color", "red", logger)

	require.Equal(t, map[string]float64{"f1": 2.5, "f2": 3, "color=red": 1}, features)
}
