package encoding

import (
	"fmt"

	assert "github.com/ZanzyTHEbar/assert-lib"

	"github.com/oncotext/genetext/genetext/vocab"
)

// Generator converts a record table into integer-id sequences. It is
// read-only after construction; every Generate call walks the table in its
// existing row order (callers own any shuffling semantics).
type Generator struct {
	records []Record
	vocab   *vocab.Vocabulary
	asserts *assert.AssertHandler
}

// NewGenerator builds a generator over a record table and a vocabulary.
func NewGenerator(records []Record, v *vocab.Vocabulary) *Generator {
	return &Generator{
		records: records,
		vocab:   v,
		asserts: assert.NewAssertHandler(),
	}
}

// SentenceWordIDs maps each word of a sentence to its vocabulary id,
// substituting the unknown-word id when the id is outside the in-vocabulary
// range. addTags wraps the result with sentence-start/sentence-end ids.
// A word entirely absent from the vocabulary yields a *LookupError.
func (g *Generator) SentenceWordIDs(sentence Sentence, addTags bool) ([]int, error) {
	ids := make([]int, 0, len(sentence)+2)
	if addTags {
		ids = append(ids, g.vocab.SentenceStartID())
	}
	for _, word := range sentence {
		id, ok := g.vocab.ID(word)
		if !ok {
			return nil, &LookupError{Word: word, Sentence: sentence}
		}
		if id >= g.vocab.Size() {
			id = g.vocab.UnknownID()
		}
		ids = append(ids, id)
	}
	if addTags {
		ids = append(ids, g.vocab.SentenceEndID())
	}
	return ids, nil
}

// WordCharIDs maps each character of a word to its alphabet position.
// Characters outside the alphabet yield -1. addTags wraps the result with
// word-start/word-end ids.
func (g *Generator) WordCharIDs(word string, addTags bool) []int {
	ids := make([]int, 0, len(word)+2)
	if addTags {
		ids = append(ids, vocab.CharWordStartID)
	}
	for _, r := range word {
		ids = append(ids, vocab.CharID(r))
	}
	if addTags {
		ids = append(ids, vocab.CharWordEndID)
	}
	return ids
}

// SentenceCharIDs renders a sentence at character granularity. UnitChars
// keeps one sub-sequence per word (Grouped); UnitRawChars emits one flat
// stream for the whole sentence (Flat). Words outside the in-vocabulary
// range degrade to a single unknown-word entry instead of their character
// decomposition. Any other unit is a configuration violation.
func (g *Generator) SentenceCharIDs(sentence Sentence, addTags bool, unit Unit) (Encoded, error) {
	switch unit {
	case UnitChars:
		groups := make([][]int, 0, len(sentence)+2)
		if addTags {
			groups = append(groups, []int{vocab.CharSentStartID})
		}
		for _, word := range sentence {
			id, ok := g.vocab.ID(word)
			if !ok {
				return Encoded{}, &LookupError{Word: word, Sentence: sentence}
			}
			if id < g.vocab.Size() {
				groups = append(groups, g.WordCharIDs(word, addTags))
			} else {
				groups = append(groups, []int{vocab.CharUnknownWordID})
			}
		}
		if addTags {
			groups = append(groups, []int{vocab.CharSentEndID})
		}
		return Encoded{Grouped: groups}, nil

	case UnitRawChars:
		stream := make([]int, 0, len(sentence)+2)
		if addTags {
			stream = append(stream, vocab.CharSentStartID)
		}
		for _, word := range sentence {
			id, ok := g.vocab.ID(word)
			if !ok {
				return Encoded{}, &LookupError{Word: word, Sentence: sentence}
			}
			if id < g.vocab.Size() {
				stream = append(stream, g.WordCharIDs(word, addTags)...)
			} else {
				stream = append(stream, vocab.CharUnknownWordID)
			}
		}
		if addTags {
			stream = append(stream, vocab.CharSentEndID)
		}
		return Encoded{Flat: stream}, nil
	}
	return Encoded{}, &InvalidConfigError{Field: "unit", Value: unit.String()}
}

// DocumentWordIDs maps SentenceWordIDs over every sentence of a document.
// FormSentences keeps one id sequence per sentence; FormText flattens the
// whole document into one sequence.
func (g *Generator) DocumentWordIDs(doc Document, addTags bool, form DocForm) (Encoded, error) {
	switch form {
	case FormSentences:
		grouped := make([][]int, 0, len(doc))
		for _, sentence := range doc {
			ids, err := g.SentenceWordIDs(sentence, addTags)
			if err != nil {
				return Encoded{}, err
			}
			grouped = append(grouped, ids)
		}
		return Encoded{Grouped: grouped}, nil

	case FormText:
		flat := make([]int, 0)
		for _, sentence := range doc {
			ids, err := g.SentenceWordIDs(sentence, addTags)
			if err != nil {
				return Encoded{}, err
			}
			flat = append(flat, ids...)
		}
		return Encoded{Flat: flat}, nil
	}
	return Encoded{}, &InvalidConfigError{Field: "doc_form", Value: form.String()}
}

// DocumentCharIDs maps SentenceCharIDs over every sentence of a document.
// FormSentences keeps one entry per sentence; FormText concatenates the
// per-sentence results into one structure.
func (g *Generator) DocumentCharIDs(doc Document, addTags bool, form DocForm, unit Unit) (Encoded, error) {
	switch form {
	case FormSentences:
		if unit == UnitChars {
			nested := make([][][]int, 0, len(doc))
			for _, sentence := range doc {
				e, err := g.SentenceCharIDs(sentence, addTags, unit)
				if err != nil {
					return Encoded{}, err
				}
				nested = append(nested, e.Grouped)
			}
			return Encoded{Nested: nested}, nil
		}
		grouped := make([][]int, 0, len(doc))
		for _, sentence := range doc {
			e, err := g.SentenceCharIDs(sentence, addTags, unit)
			if err != nil {
				return Encoded{}, err
			}
			grouped = append(grouped, e.Flat)
		}
		return Encoded{Grouped: grouped}, nil

	case FormText:
		if unit == UnitChars {
			grouped := make([][]int, 0)
			for _, sentence := range doc {
				e, err := g.SentenceCharIDs(sentence, addTags, unit)
				if err != nil {
					return Encoded{}, err
				}
				grouped = append(grouped, e.Grouped...)
			}
			return Encoded{Grouped: grouped}, nil
		}
		flat := make([]int, 0)
		for _, sentence := range doc {
			e, err := g.SentenceCharIDs(sentence, addTags, unit)
			if err != nil {
				return Encoded{}, err
			}
			flat = append(flat, e.Flat...)
		}
		return Encoded{Flat: flat}, nil
	}
	return Encoded{}, &InvalidConfigError{Field: "doc_form", Value: form.String()}
}

// Generate produces the four index-aligned output sequences for the whole
// record table. The configuration is validated once up front; a lookup
// failure mid-table aborts the run wrapped with the offending record index.
func (g *Generator) Generate(cfg UnitConfig, hasClass, addTags bool) (*Dataset, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ds := &Dataset{}
	for i, rec := range g.records {
		var err error
		if cfg.Divide == SingleUnit {
			err = g.appendSingleUnit(ds, rec, cfg, hasClass, addTags)
		} else {
			err = g.appendPerSentence(ds, rec, cfg, hasClass, addTags)
		}
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
	}
	return ds, nil
}

// appendSingleUnit encodes the whole multi-sentence document as one unit.
// Gene and Variation are always encoded as single sentences; when rendered as
// characters they follow the document unit, not their own.
func (g *Generator) appendSingleUnit(ds *Dataset, rec Record, cfg UnitConfig, hasClass, addTags bool) error {
	doc := rec.Sentences

	switch cfg.DocUnit {
	case UnitWords:
		e, err := g.DocumentWordIDs(doc, addTags, cfg.DocForm)
		if err != nil {
			return err
		}
		ds.Documents = append(ds.Documents, e)

	case UnitChars, UnitRawChars:
		if cfg.DocForm == FormSentences {
			// Historical behavior: the full re-encoded document is
			// appended once per sentence, not one sentence's encoding.
			// Kept until downstream consumers confirm the intended shape.
			for range doc {
				e, err := g.DocumentCharIDs(doc, addTags, FormSentences, cfg.DocUnit)
				if err != nil {
					return err
				}
				ds.Documents = append(ds.Documents, e)
			}
		} else {
			e, err := g.DocumentCharIDs(doc, addTags, FormText, cfg.DocUnit)
			if err != nil {
				return err
			}
			ds.Documents = append(ds.Documents, e)
		}
	}

	if hasClass {
		ds.Labels = append(ds.Labels, rec.Class)
	}

	gene, err := g.fieldIDs(rec.Gene, cfg.GeneUnit, cfg.DocUnit, addTags)
	if err != nil {
		return err
	}
	ds.Genes = append(ds.Genes, gene)

	variation, err := g.fieldIDs(rec.Variation, cfg.VariationUnit, cfg.DocUnit, addTags)
	if err != nil {
		return err
	}
	ds.Variations = append(ds.Variations, variation)
	return nil
}

// appendPerSentence gives every sentence of the record its own entry, with
// gene, variation and label replicated so the outputs stay index-aligned.
func (g *Generator) appendPerSentence(ds *Dataset, rec Record, cfg UnitConfig, hasClass, addTags bool) error {
	for _, sentence := range rec.Sentences {
		switch cfg.DocUnit {
		case UnitWords:
			// doc_form does not matter at sentence granularity
			ids, err := g.SentenceWordIDs(sentence, addTags)
			if err != nil {
				return err
			}
			ds.Documents = append(ds.Documents, Encoded{Flat: ids})

		case UnitChars, UnitRawChars:
			e, err := g.SentenceCharIDs(sentence, addTags, cfg.DocUnit)
			if err != nil {
				return err
			}
			ds.Documents = append(ds.Documents, e)
		}

		if hasClass {
			ds.Labels = append(ds.Labels, rec.Class)
		}

		gene, err := g.fieldIDs(rec.Gene, cfg.GeneUnit, cfg.GeneUnit, addTags)
		if err != nil {
			return err
		}
		ds.Genes = append(ds.Genes, gene)

		variation, err := g.fieldIDs(rec.Variation, cfg.VariationUnit, cfg.VariationUnit, addTags)
		if err != nil {
			return err
		}
		ds.Variations = append(ds.Variations, variation)
	}
	return nil
}

// fieldIDs encodes a gene or variation sentence. fieldUnit decides between
// word and character rendering; charUnit is the unit actually used for the
// character rendering (the document unit under single-unit division).
func (g *Generator) fieldIDs(sentence Sentence, fieldUnit, charUnit Unit, addTags bool) (Encoded, error) {
	if fieldUnit == UnitWords {
		ids, err := g.SentenceWordIDs(sentence, addTags)
		if err != nil {
			return Encoded{}, err
		}
		return Encoded{Flat: ids}, nil
	}
	return g.SentenceCharIDs(sentence, addTags, charUnit)
}
