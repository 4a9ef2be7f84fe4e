package data

import "featureset/pkg/vectorizer"

// recordListFormat reads an already in-memory list of records. It
// exists so programmatic callers get the same column contract and the
// same diagnostics as the file formats, including the empty-input
// error.
type recordListFormat struct {
	records []Record
}

func (l recordListFormat) read(r *Reader) ([]string, []Value, vectorizer.FeatureSeq, error) {
	if len(l.records) == 0 {
		return nil, nil, nil, &EmptyInputError{Source: r.source}
	}

	anyLabel := false
	for _, rec := range l.records {
		if rec.Label.Kind != KindNone {
			anyLabel = true
		}
	}

	ids := make([]string, 0, len(l.records))
	labels := make([]Value, 0, len(l.records))
	feats := make([]map[string]float64, 0, len(l.records))
	for i, rec := range l.records {
		if rec.ID != "" {
			ids = append(ids, rec.ID)
		} else {
			ids = append(ids, syntheticID(i))
		}
		switch {
		case rec.Label.Kind == KindStr:
			labels = append(labels, SafeFloat(rec.Label, r.cfg.ClassMap, r.logger))
		case rec.Label.Kind != KindNone:
			labels = append(labels, SafeFloat(StrValue(rec.Label.String()), r.cfg.ClassMap, r.logger))
		case anyLabel:
			// Absent label in a labeled list coerces to integer zero.
			labels = append(labels, SafeFloat(NoneValue(), r.cfg.ClassMap, r.logger))
		default:
			labels = append(labels, NoneValue())
		}
		if rec.Features != nil {
			feats = append(feats, rec.Features)
		} else {
			feats = append(feats, map[string]float64{})
		}
	}

	ids, err := r.convertIDs(ids)
	if err != nil {
		return nil, nil, nil, err
	}
	return ids, labels, vectorizer.Slice(feats), nil
}
