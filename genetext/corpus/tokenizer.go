package corpus

import (
	"os"

	tk "github.com/sugarme/tokenizer"
	"github.com/sugarme/tokenizer/model/wordpiece"
	"github.com/sugarme/tokenizer/normalizer"
	"github.com/sugarme/tokenizer/pretokenizer"

	"github.com/oncotext/genetext/genetext/vocab"
)

// Tokenizer wraps a sugarme WordPiece tokenizer configured for plain word
// streams: BERT normalization and pre-tokenization, no special-token
// insertion. Words absent from the vocabulary file come back as the unknown
// token, which the encoding layer resolves to the unknown-word id.
type Tokenizer struct {
	t *tk.Tokenizer
}

// NewTokenizer builds a word tokenizer from a one-token-per-line vocab file.
func NewTokenizer(vocabPath string) (*Tokenizer, error) {
	var wp wordpiece.WordPiece
	if fi, err := os.Stat(vocabPath); err == nil && !fi.IsDir() {
		if nw, err := wordpiece.NewWordPieceFromFile(vocabPath, vocab.UnknownToken); err == nil {
			wp = nw
		} else {
			builder := wordpiece.NewWordPieceBuilder().Files(vocabPath)
			wp = builder.Build()
		}
	} else {
		builder := wordpiece.NewWordPieceBuilder().Files(vocabPath)
		wp = builder.Build()
	}

	t := tk.NewTokenizer(wp)
	t.WithNormalizer(normalizer.NewBertNormalizer(true, true, true, true))
	t.WithPreTokenizer(pretokenizer.NewBertPreTokenizer())

	return &Tokenizer{t: t}, nil
}

// Words tokenizes one sentence of raw text into word tokens.
func (tz *Tokenizer) Words(text string) ([]string, error) {
	if text == "" {
		return nil, nil
	}
	enc, err := tz.t.Encode(tk.NewSingleEncodeInput(tk.NewInputSequence(text)), false)
	if err != nil {
		return nil, err
	}
	return enc.GetTokens(), nil
}
