// Copyright 2015 Daniël de Kok
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/danieldk/w2vtext"
	"github.com/danieldk/w2vtext/internal/config"
)

func newFillCmd(a *app) *cobra.Command {
	var vocabPath, outPath string
	var scale float64
	var seed int64

	cmd := &cobra.Command{
		Use:   "fill [vectors.txt]",
		Short: "Initialize an embedding matrix for a vocabulary",
		Long: `Allocates a matrix with one row per vocabulary token, initializes it
uniformly in [-scale, scale], and overwrites the rows of tokens that have
a pre-trained vector. The matrix is written in the word2vec text format.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("vocab") {
				vocabPath = a.cfg.Vocabulary
			}
			if !cmd.Flags().Changed("scale") {
				scale = a.cfg.InitScale
			}
			if !cmd.Flags().Changed("seed") {
				seed = a.cfg.Seed
			}
			if vocabPath == "" {
				return fmt.Errorf("no vocabulary file given")
			}

			vocab, err := readVocabulary(vocabPath)
			if err != nil {
				return err
			}
			if len(vocab) == 0 {
				return w2vtext.ErrEmptyVocabulary
			}

			r, err := a.openEmbeddings(args)
			if err != nil {
				return err
			}

			m := randomMatrix(vocab.Rows(), r.Dim(), scale, seed)
			if _, err := r.FillMatrix(vocab, m); err != nil {
				return err
			}

			if outPath != "" {
				return writeMatrixFile(outPath, vocab, m)
			}

			return writeMatrix(cmd.OutOrStdout(), vocab, m)
		},
	}

	cmd.Flags().StringVar(&vocabPath, "vocab", "", "vocabulary file, one token per line")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")
	cmd.Flags().Float64Var(&scale, "scale", config.DefaultInitScale, "bound of the uniform initialization")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0: time-based)")

	return cmd
}

func readVocabulary(path string) (w2vtext.Vocabulary, error) {
	path, err := config.ExpandPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return w2vtext.ReadVocabulary(f)
}

func randomMatrix(rows, cols int, scale float64, seed int64) *mat.Dense {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	data := make([]float64, rows*cols)
	for idx := range data {
		data[idx] = (2*rng.Float64() - 1) * scale
	}

	return mat.NewDense(rows, cols, data)
}

func writeMatrixFile(path string, vocab w2vtext.Vocabulary, m *mat.Dense) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return writeMatrix(f, vocab, m)
}

func writeMatrix(w io.Writer, vocab w2vtext.Vocabulary, m *mat.Dense) error {
	rows, cols := m.Dims()

	tokens := make([]string, rows)
	for token, idx := range vocab {
		tokens[idx] = token
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n", rows, cols)

	row := make([]float64, cols)
	for idx, token := range tokens {
		mat.Row(row, idx, m)
		fmt.Fprintln(bw, token, floatSliceToString(row))
	}

	return bw.Flush()
}

func floatSliceToString(floats []float64) string {
	stringFloats := make([]string, len(floats))

	for idx, float := range floats {
		stringFloats[idx] = strconv.FormatFloat(float, 'f', 6, 64)
	}

	return strings.Join(stringFloats, " ")
}
