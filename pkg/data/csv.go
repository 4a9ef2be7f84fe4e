package data

import (
	"encoding/csv"
	"fmt"
	"os"

	"featureset/pkg/vectorizer"
)

// csvFormat is the delimited-table parser behind .csv and .tsv. The
// first line is the header; everything else follows the generic table
// contract.
type csvFormat struct {
	comma rune
}

func (c csvFormat) read(r *Reader) ([]string, []Value, vectorizer.FeatureSeq, error) {
	inputFile, err := os.Open(r.source)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("error opening %s: %w", r.source, err)
	}
	defer inputFile.Close()

	reader := csv.NewReader(inputFile)
	reader.Comma = c.comma

	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("error reading %s: %w", r.source, err)
	}
	if len(records) == 0 {
		return nil, nil, nil, &EmptyInputError{Source: r.source}
	}

	ids, labels, feats, err := r.fromFrame(&frame{columns: records[0], rows: records[1:]})
	if err != nil {
		return nil, nil, nil, err
	}
	return ids, labels, vectorizer.Slice(feats), nil
}
