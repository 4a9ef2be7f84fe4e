package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInspectWeather(t *testing.T) {

	inspectCmd := InspectCommand()
	inspectCmd.SetArgs(strings.Split("-i testdata/weather.csv -q", " "))
	err := inspectCmd.Execute()
	require.NoError(t, err)
}

func TestInspectClassMap(t *testing.T) {

	inspectCmd := InspectCommand()
	inspectCmd.SetArgs(strings.Split("-i testdata/weather.csv -q --class-map sunny=1,rain=0", " "))
	err := inspectCmd.Execute()
	require.NoError(t, err)
}

func TestInspectUnsupportedFormat(t *testing.T) {

	inspectCmd := InspectCommand()
	inspectCmd.SetArgs(strings.Split("-i testdata/weather.xyz -q", " "))
	inspectCmd.SilenceUsage = true
	inspectCmd.SilenceErrors = true
	err := inspectCmd.Execute()
	require.Error(t, err)
}
