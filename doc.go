// Package w2vtext loads word2vec embeddings in the text format.
//
// A file may start with a header line holding the vocabulary size and
// the vector dimensionality. Without a header, the dimensionality is
// taken from the first line. Every line must then carry one token and
// exactly that many values; anything else makes the load fail.
//
// The loaded table supports point lookups and can pre-initialize the
// embedding matrix of a model for a given vocabulary:
//
//	r, err := w2vtext.Open("vectors.txt", w2vtext.WithExpectedDim(300))
//	if err != nil {
//		log.Fatal(err)
//	}
//	stats, err := r.FillMatrix(vocab, embMatrix)
//
// Similarity and analogy queries use gonum's BLAS binding. Binding to
// the right BLAS library can give nice performance improvements; the
// w2vtext command does so when built with the netlib tag:
//
//	CGO_LDFLAGS="-L/path/to/OpenBLAS -lopenblas" go install -tags netlib ./cmd/w2vtext
package w2vtext
