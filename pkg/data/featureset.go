package data

import (
	"github.com/nlpodyssey/spago/pkg/mat"

	"featureset/pkg/vectorizer"
)

// FeatureSet is the normalized representation of a data source: one
// identifier and one label per example, parallel to the rows of the
// vectorized feature matrix. It is owned by the caller after Read; the
// reader keeps no reference to it.
type FeatureSet struct {
	// Source names the file or list the set was read from.
	Source string

	// IDs holds one unique identifier per example.
	IDs []string

	// Labels holds one label per example; absent labels have KindNone.
	Labels []Value

	// Features is the vectorized feature matrix, one row per example.
	Features mat.Matrix

	// Vectorizer is the capability that produced Features. Consumers
	// use it to detect mode or width mismatches between sets.
	Vectorizer vectorizer.Vectorizer
}

// Len returns the number of examples.
func (f *FeatureSet) Len() int {
	return len(f.IDs)
}

// Record is one in-memory example, mirroring the "id"/"y"/"x" keys of
// the serialized formats. An empty ID and a KindNone label mean the
// field is absent.
type Record struct {
	ID       string
	Label    Value
	Features map[string]float64
}
