package w2vtext

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"github.com/unixpickle/essentials"
)

// Reader holds the embeddings of a word2vec text file.
//
// A Reader is immutable after construction and can be queried from
// multiple goroutines.
type Reader struct {
	vocabSize  int
	dim        int
	embeddings map[string][]string
	logger     logrus.FieldLogger
}

// Option configures Open and Read.
type Option func(*options)

type options struct {
	expectedDim int
	logger      logrus.FieldLogger
}

// WithExpectedDim makes loading fail with a DimensionMismatchError when
// the vectors in the file do not have dim components. A non-positive
// dim disables the check.
func WithExpectedDim(dim int) Option {
	return func(o *options) {
		o.expectedDim = dim
	}
}

// WithLogger sets the logger for load and fill messages. The logrus
// standard logger is used by default.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		logger: logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Open reads the embeddings in the file at path.
func Open(path string, opts ...Option) (*Reader, error) {
	o := newOptions(opts)
	o.logger.Infof("Loading embeddings from: %s", path)

	f, err := os.Open(path)
	if err != nil {
		return nil, essentials.AddCtx("open embeddings", err)
	}
	defer f.Close()

	return read(f, o)
}

// Read reads embeddings in the word2vec text format from r. The whole
// stream is consumed; on error no embeddings are returned.
func Read(r io.Reader, opts ...Option) (*Reader, error) {
	return read(r, newOptions(opts))
}

func read(r io.Reader, o *options) (*Reader, error) {
	lines := &lineReader{r: bufio.NewReader(r)}

	first, ok, err := lines.next()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &FormatError{Msg: "embedding file is empty"}
	}

	var t *table
	if vocabSize, dim, isHeader := parseHeader(first); isHeader {
		t, err = readWithHeader(lines, vocabSize, dim, o.expectedDim)
	} else {
		t, err = readWithoutHeader(lines, first, o.expectedDim)
	}
	if err != nil {
		return nil, err
	}

	o.logger.Infof("#vectors: %d, #dimensions: %d", t.count, t.dim)

	return &Reader{
		vocabSize:  t.count,
		dim:        t.dim,
		embeddings: t.embeddings,
		logger:     o.logger,
	}, nil
}

// parseHeader reports whether fields form a (vocab_size, emb_dim)
// header.
func parseHeader(fields []string) (vocabSize, dim int, ok bool) {
	if len(fields) != 2 {
		return 0, 0, false
	}

	vocabSize, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, false
	}

	dim, err = strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, false
	}

	return vocabSize, dim, true
}

func readWithHeader(lines *lineReader, vocabSize, dim, expectedDim int) (*table, error) {
	if vocabSize < 0 {
		return nil, &FormatError{Line: 1, Msg: fmt.Sprintf("header declares negative vocabulary size %d", vocabSize)}
	}
	if dim <= 0 {
		return nil, &FormatError{Line: 1, Msg: fmt.Sprintf("header declares non-positive dimension %d", dim)}
	}
	if expectedDim > 0 && expectedDim != dim {
		return nil, &DimensionMismatchError{Expected: expectedDim, Actual: dim}
	}

	t := newTable(dim, vocabSize)
	if err := t.addAll(lines); err != nil {
		return nil, err
	}

	if t.count != vocabSize {
		return nil, &CountMismatchError{Declared: vocabSize, Actual: t.count}
	}

	return t, nil
}

func readWithoutHeader(lines *lineReader, first []string, expectedDim int) (*table, error) {
	if len(first) < 2 {
		return nil, &FormatError{Line: 1, Msg: fmt.Sprintf("expected a token followed by at least one value, got %d fields", len(first))}
	}

	dim := len(first) - 1
	if expectedDim > 0 && expectedDim != dim {
		return nil, &DimensionMismatchError{Expected: expectedDim, Actual: dim}
	}

	t := newTable(dim, 0)
	if err := t.add(first, 1); err != nil {
		return nil, err
	}
	if err := t.addAll(lines); err != nil {
		return nil, err
	}

	return t, nil
}

// maxSizeHint bounds the map pre-allocation taken from a header, which
// cannot be trusted before the lines are counted.
const maxSizeHint = 1 << 16

// table accumulates embeddings while a file is read.
type table struct {
	dim        int
	count      int
	embeddings map[string][]string
}

func newTable(dim, sizeHint int) *table {
	return &table{
		dim:        dim,
		embeddings: make(map[string][]string, min(sizeHint, maxSizeHint)),
	}
}

func (t *table) addAll(lines *lineReader) error {
	for {
		fields, ok, err := lines.next()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		if err := t.add(fields, lines.lineNo); err != nil {
			return err
		}
	}
}

func (t *table) add(fields []string, lineNo int) error {
	if len(fields) != t.dim+1 {
		return &FormatError{Line: lineNo, Expected: t.dim + 1, Got: len(fields)}
	}

	word := fields[0]
	if _, ok := t.embeddings[word]; ok {
		return &FormatError{Line: lineNo, Msg: fmt.Sprintf("duplicate token '%s'", word)}
	}

	t.embeddings[word] = fields[1:]
	t.count++

	return nil
}

// lineReader splits a stream into whitespace-separated fields, one
// line at a time.
type lineReader struct {
	r      *bufio.Reader
	lineNo int
}

// next returns the fields of the next line. ok is false at the end of
// the stream.
func (l *lineReader) next() (fields []string, ok bool, err error) {
	line, err := l.r.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, false, essentials.AddCtx(fmt.Sprintf("read line %d", l.lineNo+1), err)
	}
	if err == io.EOF && len(line) == 0 {
		return nil, false, nil
	}

	l.lineNo++

	if !utf8.ValidString(line) {
		return nil, false, &FormatError{Line: l.lineNo, Msg: "invalid UTF-8"}
	}

	return strings.Fields(line), true, nil
}

// Dim returns the dimensionality of the embeddings.
func (r *Reader) Dim() int {
	return r.dim
}

// Size returns the number of embeddings.
func (r *Reader) Size() int {
	return r.vocabSize
}

// Vector returns the components of the embedding of token, as they
// were written in the file. ok is false when there is no embedding for
// token.
func (r *Reader) Vector(token string) (vector []string, ok bool) {
	v, ok := r.embeddings[token]
	if !ok {
		return nil, false
	}

	return append([]string(nil), v...), true
}

// Iterate calls f for every embedding until f returns false. The order
// is unspecified. f must not modify vector.
func (r *Reader) Iterate(f func(token string, vector []string) bool) {
	for token, vector := range r.embeddings {
		if !f(token, vector) {
			return
		}
	}
}
