package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/stat"

	"featureset/pkg/data"

	"github.com/spf13/cobra"
)

func InspectCommand() *cobra.Command {

	var inputFile string
	var quiet bool
	var idsToFloats bool
	var labelCol string
	var idCol string
	var classMap map[string]string
	var hashing bool
	var hashWidth int

	var cmd = &cobra.Command{
		Use:   "inspect -i inputFile",
		Short: "Reads a dataset in any supported format and reports its shape and label statistics",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := data.Config{
				Quiet:       quiet,
				IDsToFloats: idsToFloats,
				LabelCol:    labelCol,
				IDCol:       idCol,
				ClassMap:    classMap,
				Logger:      &log.Logger,
			}
			if hashing {
				cfg.Mode = data.HashMode
				cfg.HashWidth = hashWidth
			}
			reader, err := data.ForPath(inputFile, cfg)
			if err != nil {
				return err
			}
			featureSet, err := reader.Read()
			if err != nil {
				return err
			}
			logSummary(featureSet, reader)
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "name of the data file to inspect")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress progress output")
	cmd.Flags().BoolVarP(&idsToFloats, "ids-to-floats", "", false, "require example IDs to be numeric")
	cmd.Flags().StringVarP(&labelCol, "label-col", "t", "y", "name of the column holding the labels")
	cmd.Flags().StringVarP(&idCol, "id-col", "", "id", "name of the column holding the example IDs")
	cmd.Flags().StringToStringVarP(&classMap, "class-map", "", nil, "mapping from original label values to replacement values")
	cmd.Flags().BoolVarP(&hashing, "hashing", "", false, "use fixed-width hashing vectorization")
	cmd.Flags().IntVarP(&hashWidth, "hash-width", "", 0, "feature matrix width when hashing")

	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func logSummary(featureSet *data.FeatureSet, reader *data.Reader) {
	log.Info().
		Str("source", featureSet.Source).
		Int("examples", featureSet.Len()).
		Int("features", featureSet.Features.Columns()).
		Msg("dataset shape")

	var numeric []float64
	classCounts := map[string]int{}
	for _, label := range featureSet.Labels {
		if f, ok := label.AsFloat(); ok {
			numeric = append(numeric, f)
		}
		if label.Kind != data.KindNone {
			classCounts[label.String()]++
		}
	}

	// Sort class names for deterministic output
	classes := make([]string, 0, len(classCounts))
	for class := range classCounts {
		classes = append(classes, class)
	}
	sort.Strings(classes)
	for _, class := range classes {
		log.Info().Str("label", class).Int("count", classCounts[class]).Msg("label distribution")
	}

	if len(numeric) > 0 {
		log.Info().
			Float64("mean", stat.Mean(numeric, nil)).
			Float64("stddev", stat.StdDev(numeric, nil)).
			Msg("numeric label statistics")
	}
	if reader.Regression() {
		log.Info().Str("relation", reader.Relation()).Msg("label attribute declared numeric (regression)")
	}
}

var logLevel string
var logFormat string

func main() {

	Main := &cobra.Command{Use: "featureset", PersistentPreRun: setupLogging}

	Main.PersistentFlags().StringVarP(&logLevel, "log-level", "", "info", "Logging level: info error or debug")
	Main.PersistentFlags().StringVarP(&logFormat, "log-format", "", "pretty", "Logging format: pretty or json")

	Main.AddCommand(InspectCommand())

	if err := Main.Execute(); err != nil {
		panic(err)
	}
}

func setupLogging(cmd *cobra.Command, args []string) {

	switch logLevel {
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	default:
		panic("Invalid logging level specified")
	}

	switch logFormat {
	case "pretty":
		setupPrettyLogging()
	case "json":
	default:
		panic("Invalid log format specified")

	}

}

func setupPrettyLogging() {
	writer := zerolog.ConsoleWriter{Out: os.Stderr}
	writer.FormatFieldValue = func(i interface{}) string {
		switch v := i.(type) {
		case json.Number:
			val, _ := v.Float64()
			return fmt.Sprintf("%.3f", val)
		default:
			return fmt.Sprintf("%s", i)
		}

	}
	log.Logger = log.Output(writer)

}
