package data

import (
	"bufio"
	"io"
	"strings"
)

// MegaM -fvals format. Each non-blank line is whitespace-tokenized: an
// odd token count means the first token is the label and the rest are
// name/value pairs, an even count means the line is unlabeled pairs, a
// single token is a bare label. A "# name" comment line names the
// instance on the following data line.
type megamScanner struct {
	scan       *bufio.Scanner
	reader     *Reader
	exampleNum int
	currID     string
}

func newMegaMScanner(f io.Reader, r *Reader) exampleScanner {
	return &megamScanner{
		scan:   bufio.NewScanner(f),
		reader: r,
		currID: "EXAMPLE_0",
	}
}

func (s *megamScanner) Next() (rawExample, bool, error) {
	for s.scan.Scan() {
		line := strings.TrimSpace(s.scan.Text())
		if strings.HasPrefix(line, "#") {
			s.currID = strings.TrimSpace(line[1:])
			continue
		}
		if line == "" || line == "TRAIN" || line == "TEST" || line == "DEV" {
			continue
		}

		fields := strings.Fields(line)
		ex := rawExample{id: s.currID, features: map[string]float64{}}
		var pairs []string
		switch {
		case len(fields) == 1:
			ex.label = SafeFloat(StrValue(fields[0]), s.reader.cfg.ClassMap, s.reader.logger)
		case len(fields)%2 == 1:
			ex.label = SafeFloat(StrValue(fields[0]), s.reader.cfg.ClassMap, s.reader.logger)
			pairs = fields[1:]
		default:
			pairs = fields
		}

		seen := make(map[string]struct{}, len(pairs)/2)
		for i := 0; i+1 < len(pairs); i += 2 {
			name := pairs[i]
			if _, dup := seen[name]; dup {
				return rawExample{}, false, &DuplicateFeatureError{Source: s.reader.source, ID: s.currID}
			}
			seen[name] = struct{}{}
			setFeature(ex.features, name, pairs[i+1], s.reader.logger)
		}

		// Default ID for the next instance, in case it has no comment.
		s.exampleNum++
		s.currID = syntheticID(s.exampleNum)
		return ex, false, nil
	}
	return rawExample{}, true, s.scan.Err()
}
