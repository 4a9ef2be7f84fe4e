package data

import (
	"bufio"
	"io"
	"regexp"
	"strings"
)

// LibSVM/LibLinear/SVMLight format. Example IDs, class names and
// feature names are not natively supported, so they are carried in a
// specially formatted trailing comment:
//
//	ExampleID | 1=FirstClass | 1=FirstFeature 2=SecondFeature
//
// The comment is optional; without it, labels and features keep their
// numeric codes.
var libsvmLineRegex = regexp.MustCompile(
	`^(\S+)\s+([^#]*?)\s*(?:#\s*([^|]+?)\s*\|\s*([^|]+?)\s*\|\s*(.*?)\s*)?$`)

// Feature names encoded into the comment cannot contain the format's
// own delimiters, so visually confusable look-alikes stand in for them
// and are substituted back before use.
var libsvmLookalikes = strings.NewReplacer(
	"∶", ":",
	"＃", "#",
	" ", " ",
	"꞊", "=",
	"∣", "|",
)

type libsvmScanner struct {
	scan    *bufio.Scanner
	reader  *Reader
	lineNum int
}

func newLibSVMScanner(f io.Reader, r *Reader) exampleScanner {
	return &libsvmScanner{scan: bufio.NewScanner(f), reader: r}
}

func (s *libsvmScanner) Next() (rawExample, bool, error) {
	if !s.scan.Scan() {
		return rawExample{}, true, s.scan.Err()
	}
	line := strings.TrimSpace(s.scan.Text())
	lineNum := s.lineNum
	s.lineNum++

	m := libsvmLineRegex.FindStringSubmatch(line)
	if m == nil {
		return rawExample{}, false, &MalformedLineError{Source: s.reader.source, Num: lineNum, Line: line}
	}
	labelCode, featurePart := m[1], m[2]
	id := strings.TrimSpace(m[3])

	var labelMap, featMap map[string]string
	if strings.TrimSpace(m[4]) != "" {
		labelMap = map[string]string{}
		for _, pair := range strings.Fields(m[4]) {
			kv := strings.SplitN(pair, "=", 2)
			if len(kv) == 2 {
				labelMap[kv[0]] = kv[1]
			}
		}
	}
	if strings.TrimSpace(m[5]) != "" {
		featMap = map[string]string{}
		for _, pair := range strings.Fields(m[5]) {
			kv := strings.SplitN(pair, "=", 2)
			if len(kv) == 2 {
				featMap[kv[0]] = libsvmLookalikes.Replace(kv[1])
			}
		}
	}

	if id == "" {
		id = syntheticID(lineNum)
	}
	className := labelCode
	if name, ok := labelMap[labelCode]; ok {
		className = name
	}

	ex := rawExample{
		id:       id,
		label:    SafeFloat(StrValue(className), s.reader.cfg.ClassMap, s.reader.logger),
		features: map[string]float64{},
	}
	for _, pair := range strings.Fields(featurePart) {
		kv := strings.SplitN(pair, ":", 2)
		if len(kv) != 2 {
			return rawExample{}, false, &MalformedLineError{Source: s.reader.source, Num: lineNum, Line: line}
		}
		name := kv[0]
		if mapped, ok := featMap[name]; ok {
			name = mapped
		}
		setFeature(ex.features, name, kv[1], s.reader.logger)
	}
	return ex, false, nil
}
