package w2vtext

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// WordSimilarity is a query result: a word and its cosine similarity
// to the query vector.
type WordSimilarity struct {
	Word       string
	Similarity float64
}

// Embeddings is a dense, normalized copy of the embeddings of a Reader
// that supports similarity queries.
type Embeddings struct {
	words   []string
	indices map[string]int

	// One unit-length row per word, nil when there are no words.
	matrix *mat.Dense
}

// Embeddings parses all vectors and normalizes them to unit length.
// Zero vectors remain zero.
func (r *Reader) Embeddings() (*Embeddings, error) {
	words := make([]string, 0, len(r.embeddings))
	for word := range r.embeddings {
		words = append(words, word)
	}
	sort.Strings(words)

	e := &Embeddings{
		words:   words,
		indices: make(map[string]int, len(words)),
	}

	if len(words) == 0 {
		return e, nil
	}

	data := make([]float64, len(words)*r.dim)
	for idx, word := range words {
		vec := data[idx*r.dim : (idx+1)*r.dim]
		if err := parseVector(word, r.embeddings[word], vec); err != nil {
			return nil, err
		}

		normalize(vec)

		e.indices[word] = idx
	}

	e.matrix = mat.NewDense(len(words), r.dim, data)

	return e, nil
}

// Size returns the number of words.
func (e *Embeddings) Size() int {
	return len(e.words)
}

// Vector returns the normalized embedding of word.
func (e *Embeddings) Vector(word string) ([]float64, bool) {
	idx, ok := e.indices[word]
	if !ok {
		return nil, false
	}

	return mat.Row(nil, idx, e.matrix), true
}

// Analogy answers "word1 is to word2 as word3 is to ?" with the limit
// words closest to word2 - word1 + word3.
func (e *Embeddings) Analogy(word1, word2, word3 string, limit int) ([]WordSimilarity, error) {
	v1, err := e.lookup(word1)
	if err != nil {
		return nil, err
	}

	v2, err := e.lookup(word2)
	if err != nil {
		return nil, err
	}

	v3, err := e.lookup(word3)
	if err != nil {
		return nil, err
	}

	v4 := make([]float64, len(v1))
	floats.SubTo(v4, v2, v1)
	floats.Add(v4, v3)
	normalize(v4)

	skips := map[string]struct{}{
		word1: {},
		word2: {},
		word3: {},
	}

	return e.similarity(v4, skips, limit), nil
}

// Similarity returns the limit words closest to word.
func (e *Embeddings) Similarity(word string, limit int) ([]WordSimilarity, error) {
	v, err := e.lookup(word)
	if err != nil {
		return nil, err
	}

	skips := map[string]struct{}{
		word: {},
	}

	return e.similarity(v, skips, limit), nil
}

func (e *Embeddings) lookup(word string) ([]float64, error) {
	v, ok := e.Vector(word)
	if !ok {
		return nil, &UnknownWordError{Word: word}
	}
	return v, nil
}

// similarity ranks all words outside skips by their dot product with
// vec and returns the best limit of them.
func (e *Embeddings) similarity(vec []float64, skips map[string]struct{}, limit int) []WordSimilarity {
	sims := mat.NewVecDense(len(e.words), nil)
	sims.MulVec(e.matrix, mat.NewVecDense(len(vec), vec))

	scores := make([]float64, 0, len(e.words))
	candidates := make([]int, 0, len(e.words))
	for idx, word := range e.words {
		if _, ok := skips[word]; ok {
			continue
		}
		scores = append(scores, sims.AtVec(idx))
		candidates = append(candidates, idx)
	}

	// Ascending, so the best candidates are at the end.
	order := make([]int, len(scores))
	floats.Argsort(scores, order)

	n := min(limit, len(scores))
	if n < 0 {
		n = 0
	}

	results := make([]WordSimilarity, n)
	for rank := range results {
		pos := len(scores) - 1 - rank
		results[rank] = WordSimilarity{
			Word:       e.words[candidates[order[pos]]],
			Similarity: scores[pos],
		}
	}

	return results
}

func normalize(vec []float64) {
	norm := floats.Norm(vec, 2)
	if norm == 0 {
		return
	}

	floats.Scale(1/norm, vec)
}
