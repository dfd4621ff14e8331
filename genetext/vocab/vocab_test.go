package vocab

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVocabulary(t *testing.T) {
	tests := []struct {
		name string
		test func(t *testing.T)
	}{
		{"NewAssignsIdsInOrder", testNewAssignsIdsInOrder},
		{"NewRejectsDuplicates", testNewRejectsDuplicates},
		{"ReservedTokensRequired", testReservedTokensRequired},
		{"FromIndexSparseIds", testFromIndexSparseIds},
		{"LoadFromFile", testLoadFromFile},
	}
	for _, tt := range tests {
		t.Run(tt.name, tt.test)
	}
}

func testNewAssignsIdsInOrder(t *testing.T) {
	v, err := New([]string{"brca1", "mutation", SentenceStartToken, SentenceEndToken, UnknownToken})
	require.NoError(t, err)

	assert.Equal(t, 5, v.Size())

	id, ok := v.ID("brca1")
	require.True(t, ok)
	assert.Equal(t, 0, id)

	id, ok = v.ID("mutation")
	require.True(t, ok)
	assert.Equal(t, 1, id)

	_, ok = v.ID("egfr")
	assert.False(t, ok)

	assert.Equal(t, 2, v.SentenceStartID())
	assert.Equal(t, 3, v.SentenceEndID())
	assert.Equal(t, 4, v.UnknownID())
	assert.Equal(t, []string{"brca1", "mutation", SentenceStartToken, SentenceEndToken, UnknownToken}, v.Words())
}

func testNewRejectsDuplicates(t *testing.T) {
	_, err := New([]string{"brca1", "brca1", SentenceStartToken, SentenceEndToken, UnknownToken})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func testReservedTokensRequired(t *testing.T) {
	_, err := New([]string{"brca1", "mutation"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reserved token")
}

func testFromIndexSparseIds(t *testing.T) {
	// ids need not be dense; entries at or above Size() are out of the
	// in-vocabulary range
	v, err := FromIndex(map[string]int{
		"brca1":            0,
		"rare":             99,
		SentenceStartToken: 1,
		SentenceEndToken:   2,
		UnknownToken:       3,
	})
	require.NoError(t, err)

	assert.Equal(t, 5, v.Size())
	id, ok := v.ID("rare")
	require.True(t, ok)
	assert.GreaterOrEqual(t, id, v.Size())
}

func testLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vocab.txt")
	content := "tumor\nsuppressor\n" + SentenceStartToken + "\n" + SentenceEndToken + "\n" + UnknownToken + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	v, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 5, v.Size())
	id, ok := v.ID("suppressor")
	require.True(t, ok)
	assert.Equal(t, 1, id)
}

func TestCharAlphabet(t *testing.T) {
	t.Run("PositionsAndTags", func(t *testing.T) {
		assert.Equal(t, 0, CharID('a'))
		assert.Equal(t, 25, CharID('z'))
		assert.Equal(t, 26, CharID('0'))

		// reserved tags are contiguous after the alphabet
		assert.Equal(t, len(CharAlphabets), CharWordStartID)
		assert.Equal(t, len(CharAlphabets)+1, CharWordEndID)
		assert.Equal(t, len(CharAlphabets)+2, CharUnknownWordID)
		assert.Equal(t, len(CharAlphabets)+3, CharSentStartID)
		assert.Equal(t, len(CharAlphabets)+4, CharSentEndID)

		// the declared id space undercounts the tags by one; downstream
		// tables are sized against it, so it must not move
		assert.Equal(t, CharSentEndID, CharAlphabetsLen)
	})

	t.Run("UnrecognizedYieldsMinusOne", func(t *testing.T) {
		assert.Equal(t, -1, CharID('É'))
		assert.Equal(t, -1, CharID('\t'))
	})

	t.Run("RoundTrip", func(t *testing.T) {
		// every alphabet character must recover itself through its id,
		// except repeated characters which resolve to their first
		// occurrence
		for i, r := range CharAlphabets {
			id := CharID(r)
			require.GreaterOrEqual(t, id, 0)
			assert.LessOrEqual(t, id, i)
			assert.Equal(t, r, rune(CharAlphabets[id]))
		}
	})
}
