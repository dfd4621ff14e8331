package corpus

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/oncotext/genetext/genetext/encoding"
	"github.com/oncotext/genetext/genetext/vocab"
)

// VariantRow is one row of the variants CSV.
type VariantRow struct {
	ID        int    `csv:"ID"`
	Gene      string `csv:"Gene"`
	Variation string `csv:"Variation"`
	Class     int    `csv:"Class"`
}

// LoadVariants reads the variants CSV (ID, Gene, Variation, optionally Class).
func LoadVariants(path string) ([]VariantRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var rows []VariantRow
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("parsing variants %s: %w", path, err)
	}
	return rows, nil
}

// LoadTexts reads the clinical text file: an optional "ID,Text" header line
// followed by one "<id>||<text>" line per record.
func LoadTexts(path string) (map[int]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	texts := make(map[int]string)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	lineNo := 0
	for scanner.Scan() {
		line := scanner.Text()
		lineNo++
		if lineNo == 1 && !strings.Contains(line, "||") {
			// header line
			continue
		}
		parts := strings.SplitN(line, "||", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("texts %s line %d: missing \"||\" separator", path, lineNo)
		}
		id, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return nil, fmt.Errorf("texts %s line %d: bad id: %w", path, lineNo, err)
		}
		texts[id] = parts[1]
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading texts %s: %w", path, err)
	}
	return texts, nil
}

var sentencePattern = regexp.MustCompile(`[^.!?]+[.!?]*`)

// SplitSentences segments raw text on terminal punctuation.
func SplitSentences(text string) []string {
	var out []string
	for _, s := range sentencePattern.FindAllString(text, -1) {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// LoadRecords joins the variants table with the clinical texts by id and
// tokenizes every field into the record table the generator consumes.
// Records without a matching text get an empty document.
func LoadRecords(variantsPath, textPath string, tok *Tokenizer) ([]encoding.Record, error) {
	variants, err := LoadVariants(variantsPath)
	if err != nil {
		return nil, err
	}
	texts, err := LoadTexts(textPath)
	if err != nil {
		return nil, err
	}

	records := make([]encoding.Record, 0, len(variants))
	for _, row := range variants {
		text, ok := texts[row.ID]
		if !ok {
			slog.Warn("no clinical text for record", "id", row.ID)
		}

		var doc encoding.Document
		for _, sent := range SplitSentences(text) {
			words, err := tok.Words(sent)
			if err != nil {
				return nil, fmt.Errorf("tokenizing record %d: %w", row.ID, err)
			}
			if len(words) > 0 {
				doc = append(doc, words)
			}
		}

		gene, err := tok.Words(row.Gene)
		if err != nil {
			return nil, fmt.Errorf("tokenizing gene of record %d: %w", row.ID, err)
		}
		variation, err := tok.Words(row.Variation)
		if err != nil {
			return nil, fmt.Errorf("tokenizing variation of record %d: %w", row.ID, err)
		}

		records = append(records, encoding.Record{
			Sentences: doc,
			Gene:      gene,
			Variation: variation,
			Class:     row.Class,
		})
	}
	return records, nil
}

// BuildVocabulary collects every token of a record table in first-seen order
// and appends the reserved tokens last. It is the vocabulary-building stage
// for corpora that ship without a prebuilt vocab file.
func BuildVocabulary(records []encoding.Record) (*vocab.Vocabulary, error) {
	seen := make(map[string]struct{})
	var words []string
	add := func(sentence encoding.Sentence) {
		for _, w := range sentence {
			if _, ok := seen[w]; ok {
				continue
			}
			seen[w] = struct{}{}
			words = append(words, w)
		}
	}
	for _, rec := range records {
		for _, sentence := range rec.Sentences {
			add(sentence)
		}
		add(rec.Gene)
		add(rec.Variation)
	}
	for _, reserved := range []string{vocab.SentenceStartToken, vocab.SentenceEndToken, vocab.UnknownToken} {
		if _, ok := seen[reserved]; !ok {
			words = append(words, reserved)
		}
	}
	return vocab.New(words)
}
