package data

import (
	"bufio"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"

	"featureset/pkg/vectorizer"
)

// ndjFormat parses newline-delimited JSON (.jsonlines/.ndj). Each line
// is one object; the instance ID lives under "id", the label under "y"
// and the feature mapping under a single nested "x" key.
type ndjFormat struct{}

func (ndjFormat) read(r *Reader) ([]string, []Value, vectorizer.FeatureSeq, error) {
	inputFile, err := os.Open(r.source)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("error opening %s: %w", r.source, err)
	}
	defer inputFile.Close()

	var objects []map[string]interface{}
	scanner := bufio.NewScanner(inputFile)
	lineNum := 0
	for scanner.Scan() {
		line := scanner.Text()
		lineNum++
		if len(line) == 0 {
			continue
		}
		var obj map[string]interface{}
		if err := json.Unmarshal([]byte(line), &obj); err != nil {
			return nil, nil, nil, fmt.Errorf("error parsing line %d of %s: %w", lineNum, r.source, err)
		}
		objects = append(objects, obj)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, nil, fmt.Errorf("error reading %s: %w", r.source, err)
	}
	if len(objects) == 0 {
		return nil, nil, nil, &EmptyInputError{Source: r.source}
	}

	ids := make([]string, 0, len(objects))
	labels := make([]Value, 0, len(objects))
	feats := make([]map[string]float64, 0, len(objects))
	for i, obj := range objects {
		if raw, ok := obj[r.cfg.IDCol]; ok {
			ids = append(ids, stringify(raw))
		} else {
			ids = append(ids, syntheticID(i))
		}
		if raw, ok := obj[r.cfg.LabelCol]; ok && raw != nil {
			labels = append(labels, SafeFloat(StrValue(stringify(raw)), r.cfg.ClassMap, r.logger))
		} else {
			labels = append(labels, NoneValue())
		}
		x, _ := obj["x"].(map[string]interface{})
		feats = append(feats, featureMapping(x))
	}

	ids, err = r.convertIDs(ids)
	if err != nil {
		return nil, nil, nil, err
	}
	return ids, labels, vectorizer.Slice(feats), nil
}

// stringify renders a decoded JSON scalar the way its textual form
// would have appeared, so coercion and class maps behave the same as
// for the delimited formats.
func stringify(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		if t == math.Trunc(t) && !math.IsInf(t, 0) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case nil:
		return ""
	}
	return fmt.Sprintf("%v", v)
}

// featureMapping converts a decoded "x" object to numeric features.
// Strings become one-hot "name=value" indicators, booleans become 0/1.
func featureMapping(x map[string]interface{}) map[string]float64 {
	features := make(map[string]float64, len(x))
	for name, v := range x {
		switch t := v.(type) {
		case float64:
			features[name] = t
		case string:
			features[name+"="+t] = 1
		case bool:
			if t {
				features[name] = 1
			}
		case nil:
		default:
			features[name] = 1
		}
	}
	return features
}
