package data

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"featureset/pkg/vectorizer"
)

// VectorizerMode selects how feature mappings are turned into a matrix.
type VectorizerMode int

const (
	// DictMode assigns one column per distinct feature name.
	DictMode VectorizerMode = iota
	// HashMode hashes feature names into a fixed-width matrix.
	HashMode
)

// Config is the full set of reader knobs. The zero value is valid:
// dictionary vectorization, label column "y", id column "id".
type Config struct {
	// Quiet suppresses progress output.
	Quiet bool

	// IDsToFloats requires every identifier to parse as a number.
	// Identifiers are normalized through the parse, so "2" and "2.0"
	// collide and trip the uniqueness check.
	IDsToFloats bool

	// LabelCol is the column or key carrying the label. Defaults to "y".
	LabelCol string

	// IDCol is the column or key carrying the identifier. Defaults to "id".
	IDCol string

	// ClassMap maps raw label text to replacement text, applied before
	// numeric coercion.
	ClassMap map[string]string

	// Mode selects the vectorizer variant.
	Mode VectorizerMode

	// HashWidth is the matrix width for HashMode. Required iff Mode is
	// HashMode.
	HashWidth int

	// Logger receives warnings and progress events. Defaults to a
	// console writer on stderr.
	Logger *zerolog.Logger
}

// Reader loads examples from one source into a FeatureSet. A Reader is
// bound to a single source and is not safe for concurrent use.
type Reader struct {
	cfg    Config
	source string
	format format
	vec    vectorizer.Vectorizer
	logger zerolog.Logger

	regression bool
	relation   string
}

// rawExample is one parsed instance before vectorization.
type rawExample struct {
	id       string
	label    Value
	features map[string]float64
}

// format turns the whole source into the parallel id/label arrays and
// the single-consumption feature sequence.
type format interface {
	read(r *Reader) (ids []string, labels []Value, seq vectorizer.FeatureSeq, err error)
}

// formats is the sole format-detection point. No content sniffing.
var formats = map[string]format{
	".arff":      arffFormat{},
	".csv":       csvFormat{comma: ','},
	".jsonlines": ndjFormat{},
	".libsvm":    streamFormat{newScanner: newLibSVMScanner},
	".megam":     streamFormat{newScanner: newMegaMScanner},
	".ndj":       ndjFormat{},
	".tsv":       csvFormat{comma: '\t'},
}

// ForPath returns a Reader for the given file, chosen by its lowercase
// extension.
func ForPath(path string, cfg Config) (*Reader, error) {
	f, ok := formats[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return nil, &UnsupportedFormatError{Path: path}
	}
	return newReader(path, f, cfg)
}

// ForRecords returns a Reader over an in-memory list of records.
func ForRecords(records []Record, cfg Config) (*Reader, error) {
	return newReader("in-memory record list", recordListFormat{records: records}, cfg)
}

func newReader(source string, f format, cfg Config) (*Reader, error) {
	if cfg.LabelCol == "" {
		cfg.LabelCol = "y"
	}
	if cfg.IDCol == "" {
		cfg.IDCol = "id"
	}
	var vec vectorizer.Vectorizer
	switch cfg.Mode {
	case DictMode:
		vec = vectorizer.NewDict()
	case HashMode:
		if cfg.HashWidth <= 0 {
			return nil, fmt.Errorf("hash width must be positive in hashing mode, got %d", cfg.HashWidth)
		}
		vec = vectorizer.NewHasher(cfg.HashWidth)
	default:
		return nil, fmt.Errorf("unknown vectorizer mode %d", cfg.Mode)
	}
	var logger zerolog.Logger
	if cfg.Logger != nil {
		logger = *cfg.Logger
	} else {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}
	return &Reader{
		cfg:    cfg,
		source: source,
		format: f,
		vec:    vec,
		logger: logger,
	}, nil
}

// Read loads the whole source, vectorizes the features and returns the
// assembled FeatureSet. Nothing is returned on error.
func (r *Reader) Read() (*FeatureSet, error) {
	r.logger.Debug().Str("source", r.source).Msg("reading examples")
	if !r.cfg.Quiet {
		r.logger.Info().Str("source", r.source).Msg("loading")
	}

	ids, labels, seq, err := r.format.read(r)
	if err != nil {
		return nil, err
	}

	features, err := r.vec.FitTransform(seq)
	if err != nil {
		return nil, err
	}

	// A mismatch here is a parser defect, not a user error.
	if len(ids) != len(labels) || len(ids) != features.Rows() {
		panic(fmt.Sprintf("reader defect: %d ids, %d labels and %d feature rows for %s",
			len(ids), len(labels), features.Rows(), r.source))
	}

	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			return nil, &DuplicateIDError{Source: r.source, ID: id}
		}
		seen[id] = struct{}{}
	}

	if !r.cfg.Quiet {
		r.logger.Info().Str("source", r.source).Int("examples", len(ids)).Msg("done")
	}
	return &FeatureSet{
		Source:     r.source,
		IDs:        ids,
		Labels:     labels,
		Features:   features,
		Vectorizer: r.vec,
	}, nil
}

// Regression reports whether the label attribute of an ARFF source was
// declared numeric. Valid after Read.
func (r *Reader) Regression() bool {
	return r.regression
}

// Relation returns the @relation name of an ARFF source. Valid after
// Read.
func (r *Reader) Relation() string {
	return r.relation
}

const progressInterval = 100

func (r *Reader) progressCount(n int) {
	if r.cfg.Quiet {
		return
	}
	r.logger.Info().Str("source", r.source).Int("examples", n).Msg("loading")
}

func (r *Reader) progressPercent(p float64) {
	if r.cfg.Quiet {
		return
	}
	r.logger.Info().Str("source", r.source).Float64("percent", p).Msg("vectorizing")
}

func syntheticID(i int) string {
	return fmt.Sprintf("EXAMPLE_%d", i)
}

// convertIDs applies the IDsToFloats option: every identifier must
// parse as a number and is re-rendered in canonical form.
func (r *Reader) convertIDs(ids []string) ([]string, error) {
	if !r.cfg.IDsToFloats {
		return ids, nil
	}
	for i, id := range ids {
		f, err := strconv.ParseFloat(id, 64)
		if err != nil {
			return nil, &InvalidIDError{Source: r.source, ID: id}
		}
		ids[i] = strconv.FormatFloat(f, 'g', -1, 64)
	}
	return ids, nil
}

// frame is a rectangular block of parsed cells with named columns,
// produced by the table-oriented formats.
type frame struct {
	columns []string
	rows    [][]string
}

// fromFrame applies the generic table contract: the id column becomes
// the identifiers, the label column becomes the labels after class-map
// substitution and coercion, and every remaining column becomes a
// feature.
func (r *Reader) fromFrame(fr *frame) ([]string, []Value, []map[string]float64, error) {
	if len(fr.rows) == 0 {
		return nil, nil, nil, &EmptyInputError{Source: r.source}
	}
	idIdx := indexOf(fr.columns, r.cfg.IDCol)
	labelIdx := indexOf(fr.columns, r.cfg.LabelCol)

	ids := make([]string, 0, len(fr.rows))
	labels := make([]Value, 0, len(fr.rows))
	feats := make([]map[string]float64, 0, len(fr.rows))
	for i, row := range fr.rows {
		if len(row) != len(fr.columns) {
			return nil, nil, nil, fmt.Errorf("row %d of %s has %d cells for %d columns",
				i, r.source, len(row), len(fr.columns))
		}
		if idIdx >= 0 {
			ids = append(ids, row[idIdx])
		} else {
			ids = append(ids, syntheticID(i))
		}
		if labelIdx >= 0 {
			labels = append(labels, SafeFloat(StrValue(row[labelIdx]), r.cfg.ClassMap, r.logger))
		} else {
			labels = append(labels, NoneValue())
		}
		features := make(map[string]float64, len(row))
		for j, cell := range row {
			if j == idIdx || j == labelIdx {
				continue
			}
			setFeature(features, fr.columns[j], cell, r.logger)
		}
		feats = append(feats, features)
	}

	ids, err := r.convertIDs(ids)
	if err != nil {
		return nil, nil, nil, err
	}
	return ids, labels, feats, nil
}

func indexOf(columns []string, name string) int {
	for i, col := range columns {
		if col == name {
			return i
		}
	}
	return -1
}

// exampleScanner parses a line-oriented source one example at a time.
type exampleScanner interface {
	Next() (ex rawExample, done bool, err error)
}

type scannerFunc func(f io.Reader, r *Reader) exampleScanner

// streamFormat is the two-pass row-by-row ingestion strategy. Pass one
// collects ids and labels while counting examples; pass two reopens the
// source and lazily yields only the feature mappings, so the full set
// of feature dictionaries is never held in memory twice.
type streamFormat struct {
	newScanner scannerFunc
}

func (s streamFormat) read(r *Reader) ([]string, []Value, vectorizer.FeatureSeq, error) {
	f, err := os.Open(r.source)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("error opening %s: %w", r.source, err)
	}
	defer f.Close()

	var ids []string
	var labels []Value
	scanner := s.newScanner(f, r)
	for {
		ex, done, err := scanner.Next()
		if err != nil {
			return nil, nil, nil, err
		}
		if done {
			break
		}
		ids = append(ids, ex.id)
		labels = append(labels, ex.label)
		if len(ids)%progressInterval == 0 {
			r.progressCount(len(ids))
		}
	}
	if len(ids) == 0 {
		return nil, nil, nil, &EmptyInputError{Source: r.source}
	}
	r.progressCount(len(ids))

	ids, err = r.convertIDs(ids)
	if err != nil {
		return nil, nil, nil, err
	}
	return ids, labels, &streamSeq{reader: r, newScanner: s.newScanner, total: len(ids)}, nil
}

// streamSeq is the lazy second pass. It re-parses the source and yields
// each feature mapping exactly once, forward-only; it is not
// restartable. The second pass must observe the same bytes as the
// first, which holds for regular files.
type streamSeq struct {
	reader     *Reader
	newScanner scannerFunc
	total      int

	file    *os.File
	scanner exampleScanner
	count   int
	done    bool
}

func (s *streamSeq) Next() (map[string]float64, bool, error) {
	if s.done {
		return nil, true, nil
	}
	if s.file == nil {
		f, err := os.Open(s.reader.source)
		if err != nil {
			s.done = true
			return nil, false, fmt.Errorf("error reopening %s: %w", s.reader.source, err)
		}
		s.file = f
		s.scanner = s.newScanner(f, s.reader)
	}
	ex, done, err := s.scanner.Next()
	if err != nil {
		s.file.Close()
		s.done = true
		return nil, false, err
	}
	if done {
		s.file.Close()
		s.done = true
		s.reader.progressPercent(100)
		return nil, true, nil
	}
	s.count++
	if s.count%progressInterval == 0 {
		s.reader.progressPercent(100 * float64(s.count) / float64(s.total))
	}
	return ex.features, false, nil
}
