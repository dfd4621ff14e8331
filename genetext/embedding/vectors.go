package embedding

import (
	"bufio"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrDimensionMismatch reports a vector whose component count disagrees
	// with the requested dimension.
	ErrDimensionMismatch = errors.New("vector dimension mismatch")
	// ErrVectorCountMismatch reports a file whose parsed token count
	// disagrees with the count declared in its header.
	ErrVectorCountMismatch = errors.New("vector count mismatch")
)

// LoadVectors parses a fastText-style .vec file and projects it onto the
// given ordered vocabulary, returning one matrix row per word. Rows for words
// absent from the file keep a standard-normal random initialization, so
// out-of-file words still start from a non-degenerate vector. Word order in
// the file is irrelevant; lookups are by exact string match.
//
// The file's first line declares "<count> <dim>"; every following line is a
// token and dim whitespace-separated float components.
func LoadVectors(path string, dim int, words []string) (*mat.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("reading vectors %s: %w", path, err)
		}
		return nil, fmt.Errorf("vectors file %s is empty", path)
	}
	header := strings.Fields(scanner.Text())
	if len(header) != 2 {
		return nil, fmt.Errorf("vectors file %s: malformed header %q", path, scanner.Text())
	}
	declaredCount, err := strconv.Atoi(header[0])
	if err != nil {
		return nil, fmt.Errorf("vectors file %s: malformed header count: %w", path, err)
	}
	if _, err := strconv.Atoi(header[1]); err != nil {
		return nil, fmt.Errorf("vectors file %s: malformed header dimension: %w", path, err)
	}

	vectors := make(map[string][]float64, declaredCount)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		word := fields[0]
		vec := make([]float64, 0, len(fields)-1)
		for _, comp := range fields[1:] {
			v, err := strconv.ParseFloat(comp, 64)
			if err != nil {
				return nil, fmt.Errorf("vector for %q: %w", word, err)
			}
			vec = append(vec, v)
		}
		if len(vec) != dim {
			return nil, fmt.Errorf("%w: want %d, got %d for %q", ErrDimensionMismatch, dim, len(vec), word)
		}
		vectors[word] = vec
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading vectors %s: %w", path, err)
	}
	if len(vectors) != declaredCount {
		return nil, fmt.Errorf("%w: header declares %d, parsed %d", ErrVectorCountMismatch, declaredCount, len(vectors))
	}

	m := mat.NewDense(len(words), dim, nil)
	for i := range words {
		for j := 0; j < dim; j++ {
			m.Set(i, j, rand.NormFloat64())
		}
	}
	for i, word := range words {
		if vec, ok := vectors[word]; ok {
			m.SetRow(i, vec)
		}
	}
	return m, nil
}
