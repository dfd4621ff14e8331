package vocab

import "strings"

// CharAlphabets is the fixed set of recognized characters. A character's id is
// its byte position in this string (the alphabet is ASCII only, so byte and
// rune positions coincide).
const CharAlphabets = "abcdefghijklmnopqrstuvwxyz0123456789-,;.!?:'\"/\\|_@#$%^&*~`+-=<>()[]{}\n "

// Reserved character ids, positioned directly after the alphabet. The word
// tags wrap one word's characters; the sentence tags wrap a whole sentence
// when it is rendered as characters.
const (
	CharWordStartID   = len(CharAlphabets) + 0
	CharWordEndID     = len(CharAlphabets) + 1
	CharUnknownWordID = len(CharAlphabets) + 2
	CharSentStartID   = len(CharAlphabets) + 3
	CharSentEndID     = len(CharAlphabets) + 4
)

// CharAlphabetsLen is the id space the pipeline declares for character
// inputs. It counts four of the five reserved tags; downstream embedding
// tables were sized against this value, so it stays as-is.
const CharAlphabetsLen = len(CharAlphabets) + 4

// CharID returns the position of r in CharAlphabets, or -1 when r is not a
// recognized character. Unrecognized characters map to -1 rather than
// CharUnknownWordID; that sentinel is only used for whole out-of-vocabulary
// words.
func CharID(r rune) int {
	return strings.IndexRune(CharAlphabets, r)
}
