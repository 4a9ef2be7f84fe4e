package vectorizer

import (
	"encoding/gob"
	"fmt"
	"io"
)

// SaveDict writes a fitted dictionary vectorizer so a later consumer can
// recover the column-to-name assignment.
func SaveDict(d *Dict, writer io.Writer) error {
	encoder := gob.NewEncoder(writer)
	err := encoder.Encode(d)
	if err != nil {
		return fmt.Errorf("error encoding vectorizer: %w", err)
	}
	return nil
}

func LoadDict(input io.Reader) (*Dict, error) {
	decoder := gob.NewDecoder(input)
	dict := Dict{}
	err := decoder.Decode(&dict)
	if err != nil {
		return nil, fmt.Errorf("error decoding vectorizer: %w", err)
	}
	return &dict, nil
}
