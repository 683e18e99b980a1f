package w2vtext

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/unixpickle/essentials"
)

// ReadVocabulary reads a vocabulary with one token per line. The index
// of a token is its position among the non-blank lines.
func ReadVocabulary(r io.Reader) (Vocabulary, error) {
	vocab := make(Vocabulary)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++

		token := strings.TrimSpace(scanner.Text())
		if token == "" {
			continue
		}

		if _, ok := vocab[token]; ok {
			return nil, fmt.Errorf("line %d: duplicate token '%s'", lineNo, token)
		}

		vocab[token] = len(vocab)
	}

	if err := scanner.Err(); err != nil {
		return nil, essentials.AddCtx("read vocabulary", err)
	}

	return vocab, nil
}

// Rows returns the number of matrix rows needed to hold every index of
// the vocabulary.
func (v Vocabulary) Rows() int {
	rows := 0
	for _, idx := range v {
		if idx+1 > rows {
			rows = idx + 1
		}
	}

	return rows
}
