package vectorizer

import (
	"sort"

	"github.com/nlpodyssey/spago/pkg/mat"
)

// FeatureSeq yields one feature mapping per example, in order. The
// sequence is forward-only and single-consumption: once Next reports
// done, the sequence is exhausted and yields nothing on further calls.
type FeatureSeq interface {
	Next() (features map[string]float64, done bool, err error)
}

// Vectorizer turns a sequence of sparse feature mappings into a numeric
// matrix with one row per example.
type Vectorizer interface {
	// FitTransform drains the sequence exactly once and returns the
	// feature matrix.
	FitTransform(seq FeatureSeq) (mat.Matrix, error)

	// NumFeatures reports the matrix width. For the dictionary
	// vectorizer this is only valid after FitTransform.
	NumFeatures() int
}

type sliceSeq struct {
	maps  []map[string]float64
	index int
}

func (s *sliceSeq) Next() (map[string]float64, bool, error) {
	if s.index >= len(s.maps) {
		return nil, true, nil
	}
	m := s.maps[s.index]
	s.index++
	return m, false, nil
}

// Slice adapts an in-memory list of feature mappings to a FeatureSeq.
func Slice(maps []map[string]float64) FeatureSeq {
	return &sliceSeq{maps: maps}
}

// Dict is an exact-name dictionary vectorizer: every distinct feature
// name encountered during FitTransform becomes one matrix column, in
// sorted name order.
type Dict struct {
	FeatureNames []string
	FeatureIndex map[string]int
}

func NewDict() *Dict {
	return &Dict{}
}

func (d *Dict) FitTransform(seq FeatureSeq) (mat.Matrix, error) {
	var rows []map[string]float64
	nameSet := map[string]struct{}{}
	for {
		features, done, err := seq.Next()
		if err != nil {
			return nil, err
		}
		if done {
			break
		}
		rows = append(rows, features)
		for name := range features {
			nameSet[name] = struct{}{}
		}
	}

	d.FeatureNames = make([]string, 0, len(nameSet))
	for name := range nameSet {
		d.FeatureNames = append(d.FeatureNames, name)
	}
	sort.Strings(d.FeatureNames)
	d.FeatureIndex = make(map[string]int, len(d.FeatureNames))
	for i, name := range d.FeatureNames {
		d.FeatureIndex[name] = i
	}

	out := mat.NewEmptyDense(len(rows), len(d.FeatureNames))
	for i, features := range rows {
		for name, value := range features {
			out.Set(i, d.FeatureIndex[name], value)
		}
	}
	return out, nil
}

func (d *Dict) NumFeatures() int {
	return len(d.FeatureNames)
}
