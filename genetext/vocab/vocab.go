package vocab

import (
	"bufio"
	"fmt"
	"os"
	"sort"
)

// Reserved tokens every vocabulary must carry. The sentence tags wrap a
// sentence when boundary tags are requested; the unknown token absorbs words
// whose ids fall outside the in-vocabulary range.
const (
	SentenceStartToken = "<SOSent>"
	SentenceEndToken   = "<EOSent>"
	UnknownToken       = "<UNK>"
)

// Vocabulary is an ordered mapping from word tokens to integer ids. Size() is
// the number of entries; ids at or above Size() denote unknown words. It is
// read-only after construction.
type Vocabulary struct {
	ids   map[string]int
	words []string

	sentStartID int
	sentEndID   int
	unknownID   int
}

// New builds a vocabulary from tokens in id order (token i gets id i). The
// reserved tokens must be present in the list.
func New(words []string) (*Vocabulary, error) {
	ids := make(map[string]int, len(words))
	for i, w := range words {
		if _, ok := ids[w]; ok {
			return nil, fmt.Errorf("duplicate token %q at position %d", w, i)
		}
		ids[w] = i
	}
	return FromIndex(ids)
}

// FromIndex builds a vocabulary from an explicit token->id mapping, e.g. one
// produced by an external vocabulary-building stage. Ids need not be dense;
// entries whose id is at or above len(index) are treated as out of the
// in-vocabulary range during encoding.
func FromIndex(index map[string]int) (*Vocabulary, error) {
	v := &Vocabulary{
		ids:   make(map[string]int, len(index)),
		words: make([]string, 0, len(index)),
	}
	for w, id := range index {
		v.ids[w] = id
		v.words = append(v.words, w)
	}
	sort.Slice(v.words, func(i, j int) bool { return v.ids[v.words[i]] < v.ids[v.words[j]] })

	for _, reserved := range []struct {
		token string
		dst   *int
	}{
		{SentenceStartToken, &v.sentStartID},
		{SentenceEndToken, &v.sentEndID},
		{UnknownToken, &v.unknownID},
	} {
		id, ok := v.ids[reserved.token]
		if !ok {
			return nil, fmt.Errorf("vocabulary missing reserved token %q", reserved.token)
		}
		*reserved.dst = id
	}
	return v, nil
}

// Load reads a vocabulary file with one token per line; line order determines
// the id.
func Load(path string) (*Vocabulary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		tok := scanner.Text()
		if tok == "" {
			continue
		}
		words = append(words, tok)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading vocabulary %s: %w", path, err)
	}
	return New(words)
}

// Size returns the number of vocabulary entries, reserved tokens included.
func (v *Vocabulary) Size() int { return len(v.ids) }

// ID looks up the id of a token. The second return is false when the token is
// absent from the vocabulary entirely.
func (v *Vocabulary) ID(token string) (int, bool) {
	id, ok := v.ids[token]
	return id, ok
}

// Words returns the tokens in id order. This is the order the embedding
// loader aligns matrix rows to.
func (v *Vocabulary) Words() []string {
	out := make([]string, len(v.words))
	copy(out, v.words)
	return out
}

func (v *Vocabulary) SentenceStartID() int { return v.sentStartID }
func (v *Vocabulary) SentenceEndID() int   { return v.sentEndID }
func (v *Vocabulary) UnknownID() int       { return v.unknownID }
