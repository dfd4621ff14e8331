package encoding

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Sentence is an ordered sequence of word tokens.
type Sentence []string

// Document is the ordered sentences of one record's text field.
type Document []Sentence

// Record is one row of the input table. Class is only meaningful when the
// caller declares labeled mode.
type Record struct {
	Sentences Document
	Gene      Sentence
	Variation Sentence
	Class     int
}

// Encoded is one encoded unit. Exactly one nesting level is populated; which
// one is determined by the unit and document form that produced it (words and
// raw character streams are flat, per-word character groups add a level, and
// per-sentence grouping adds another).
type Encoded struct {
	Flat    []int
	Grouped [][]int
	Nested  [][][]int
}

// MarshalJSON emits only the populated nesting level, so serialized output
// keeps the nested-list shape downstream consumers expect.
func (e Encoded) MarshalJSON() ([]byte, error) {
	switch {
	case e.Nested != nil:
		return json.Marshal(e.Nested)
	case e.Grouped != nil:
		return json.Marshal(e.Grouped)
	case e.Flat != nil:
		return json.Marshal(e.Flat)
	}
	return []byte("[]"), nil
}

// Dataset holds the four index-aligned output sequences of a generation run.
// Labels is empty unless labeled mode was requested.
type Dataset struct {
	Documents  []Encoded `json:"documents"`
	Genes      []Encoded `json:"genes"`
	Variations []Encoded `json:"variations"`
	Labels     []int     `json:"labels"`
}

// LookupError reports a word absent from the vocabulary mapping entirely, as
// opposed to present but out of the in-vocabulary range. It is fatal to the
// record being processed.
type LookupError struct {
	Word     string
	Sentence Sentence
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("word %q not in vocabulary (sentence: %q)", e.Word, strings.Join(e.Sentence, " "))
}
