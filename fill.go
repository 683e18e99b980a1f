package w2vtext

import (
	"strconv"

	"gonum.org/v1/gonum/mat"
)

// Vocabulary maps tokens to rows of an embedding matrix.
type Vocabulary map[string]int

// FillStats summarizes a FillMatrix call.
type FillStats struct {
	// Hits is the number of vocabulary entries that had an embedding.
	Hits int

	// Total is the size of the vocabulary.
	Total int
}

// HitRate returns the percentage of vocabulary entries that had an
// embedding.
func (s FillStats) HitRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return 100 * float64(s.Hits) / float64(s.Total)
}

// FillMatrix pre-initializes the embedding matrix m for vocab. For
// every token of vocab that has an embedding, the row of m at the
// token's index is overwritten with it. Rows of other tokens are left
// as they are.
//
// m must have Dim() columns and a row for every index in vocab. These
// constraints are checked before m is modified.
func (r *Reader) FillMatrix(vocab Vocabulary, m mat.Mutable) (FillStats, error) {
	if len(vocab) == 0 {
		return FillStats{}, ErrEmptyVocabulary
	}

	rows, cols := m.Dims()
	if cols != r.dim {
		return FillStats{}, &DimensionMismatchError{Expected: r.dim, Actual: cols}
	}

	for token, idx := range vocab {
		if idx < 0 || idx >= rows {
			return FillStats{}, &IndexError{Token: token, Index: idx, Rows: rows}
		}
	}

	stats := FillStats{Total: len(vocab)}
	row := make([]float64, r.dim)
	for token, idx := range vocab {
		fields, ok := r.embeddings[token]
		if !ok {
			continue
		}

		if err := parseVector(token, fields, row); err != nil {
			return stats, err
		}

		for col, val := range row {
			m.Set(idx, col, val)
		}

		stats.Hits++
	}

	r.logger.Infof("%d/%d word vectors initialized (hit rate: %.2f%%)",
		stats.Hits, stats.Total, stats.HitRate())

	return stats, nil
}

// parseVector parses the components of token's embedding into dst.
func parseVector(token string, fields []string, dst []float64) error {
	for idx, field := range fields {
		val, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return &NumberError{Token: token, Field: idx, Err: err}
		}
		dst[idx] = val
	}

	return nil
}
