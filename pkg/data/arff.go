package data

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"featureset/pkg/vectorizer"
)

// arffFormat parses attribute-relation files: a header of @relation and
// @attribute declarations, then a @data marker, then comma-separated
// rows. Attribute names become the column headers for the data block.
// As in Weka, the label attribute is conventionally declared last; the
// convention is assumed, not validated, since columns are assigned by
// header order either way.
type arffFormat struct{}

func (arffFormat) read(r *Reader) ([]string, []Value, vectorizer.FeatureSeq, error) {
	inputFile, err := os.Open(r.source)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("error opening %s: %w", r.source, err)
	}
	defer inputFile.Close()

	var lines []string
	scanner := bufio.NewScanner(inputFile)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, nil, fmt.Errorf("error reading %s: %w", r.source, err)
	}

	dataIdx := -1
	for i, line := range lines {
		if strings.EqualFold(line, "@data") {
			dataIdx = i
			break
		}
	}
	if dataIdx < 0 {
		return nil, nil, nil, fmt.Errorf("no @data section found in %s", r.source)
	}

	var columns []string
	for _, row := range lines[:dataIdx] {
		tokens := dropEmpty(splitWithQuotes(row, ' ', '\'', '\\'))
		if len(tokens) < 2 {
			continue
		}
		switch strings.ToLower(tokens[0]) {
		case "@attribute":
			columns = append(columns, tokens[1])
			// A numeric label attribute marks a regression dataset.
			if tokens[1] == r.cfg.LabelCol && len(tokens) > 2 {
				r.regression = strings.EqualFold(tokens[2], "numeric")
			}
		case "@relation":
			r.relation = tokens[1]
		}
	}

	rows := make([][]string, 0, len(lines)-dataIdx-1)
	for _, line := range lines[dataIdx+1:] {
		rows = append(rows, splitWithQuotes(line, ',', '\'', '\\'))
	}

	ids, labels, feats, err := r.fromFrame(&frame{columns: columns, rows: rows})
	if err != nil {
		return nil, nil, nil, err
	}
	return ids, labels, vectorizer.Slice(feats), nil
}

// splitWithQuotes splits s on delim without splitting inside quoted
// regions. The escape character keeps the following rune inert inside
// quotes. Quote characters themselves are stripped, as attribute names
// and types may contain the delimiter.
func splitWithQuotes(s string, delim, quote, escape rune) []string {
	var fields []string
	var current []rune
	inQuote := false
	escaped := false
	for _, c := range s {
		switch {
		case escaped:
			current = append(current, c)
			escaped = false
		case inQuote && c == escape:
			escaped = true
		case c == quote:
			inQuote = !inQuote
		case c == delim && !inQuote:
			fields = append(fields, string(current))
			current = current[:0]
		default:
			current = append(current, c)
		}
	}
	return append(fields, string(current))
}

func dropEmpty(fields []string) []string {
	out := fields[:0]
	for _, f := range fields {
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}
