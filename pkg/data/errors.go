package data

import "fmt"

// UnsupportedFormatError is returned when a path's extension is not in
// the recognized format table.
type UnsupportedFormatError struct {
	Path string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("example files must be in .arff, .csv, .jsonlines, .libsvm, .megam, .ndj or .tsv format, got %q", e.Path)
}

// EmptyInputError is returned when a source yields zero examples.
type EmptyInputError struct {
	Source string
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("no features found in possibly empty source %q", e.Source)
}

// InvalidIDError is returned when IDsToFloats is set but an identifier
// cannot be parsed as a number.
type InvalidIDError struct {
	Source string
	ID     string
}

func (e *InvalidIDError) Error() string {
	return fmt.Sprintf("ids_to_floats is set but ID %q could not be converted to float in %q", e.ID, e.Source)
}

// DuplicateIDError is returned when two examples share an identifier
// after the whole source has been parsed.
type DuplicateIDError struct {
	Source string
	ID     string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("example IDs are not unique in %q: %q appears more than once", e.Source, e.ID)
}

// DuplicateFeatureError is returned when a single instance declares the
// same feature name twice.
type DuplicateFeatureError struct {
	Source string
	ID     string
}

func (e *DuplicateFeatureError) Error() string {
	return fmt.Sprintf("there are duplicate feature names in %q for example %q", e.Source, e.ID)
}

// MalformedLineError is returned when a line does not match the
// structural grammar of its format.
type MalformedLineError struct {
	Source string
	Num    int
	Line   string
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("line %d of %q does not look like valid libsvm format: %q", e.Num, e.Source, e.Line)
}
