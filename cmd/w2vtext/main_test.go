package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--log-level", "error"}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func TestStats(t *testing.T) {
	vectors := writeFile(t, t.TempDir(), "vectors.txt", "2 3\nfoo 0.1 0.2 0.3\nbar 0.4 0.5 0.6\n")

	out, err := execute(t, "", "stats", vectors)
	if err != nil {
		t.Fatal(err)
	}

	if want := "vectors: 2\ndimensions: 3\n"; out != want {
		t.Errorf("stats printed %q, want %q", out, want)
	}
}

func TestStatsDimMismatch(t *testing.T) {
	vectors := writeFile(t, t.TempDir(), "vectors.txt", "foo 0.1 0.2\n")

	if _, err := execute(t, "", "--dim", "3", "stats", vectors); err == nil {
		t.Error("stats should fail when the dimension does not match --dim")
	}
}

func TestFill(t *testing.T) {
	dir := t.TempDir()
	vectors := writeFile(t, dir, "vectors.txt", "a 1 2\nc 3 4\n")
	vocab := writeFile(t, dir, "vocab.txt", "a\nb\nc\n")

	out, err := execute(t, "", "fill", "--vocab", vocab, "--scale", "0.5", "--seed", "1", vectors)
	if err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 4 {
		t.Fatalf("fill should print a header and 3 rows, printed %q", out)
	}

	if lines[0] != "3 2" {
		t.Errorf("Header should be '3 2', was '%s'", lines[0])
	}
	if lines[1] != "a 1.000000 2.000000" {
		t.Errorf("Row of 'a' should hold its vector, was '%s'", lines[1])
	}
	if lines[3] != "c 3.000000 4.000000" {
		t.Errorf("Row of 'c' should hold its vector, was '%s'", lines[3])
	}

	fields := strings.Fields(lines[2])
	if len(fields) != 3 || fields[0] != "b" {
		t.Fatalf("Row of 'b' should have a token and 2 values, was '%s'", lines[2])
	}
	for _, field := range fields[1:] {
		val, err := strconv.ParseFloat(field, 64)
		if err != nil || val < -0.5 || val > 0.5 {
			t.Errorf("Row of 'b' should be initialized in [-0.5, 0.5], was '%s'", lines[2])
		}
	}
}

func TestFillOut(t *testing.T) {
	dir := t.TempDir()
	vectors := writeFile(t, dir, "vectors.txt", "a 1 2\n")
	vocab := writeFile(t, dir, "vocab.txt", "a\n")
	outPath := filepath.Join(dir, "matrix.txt")

	out, err := execute(t, "", "fill", "--vocab", vocab, "--out", outPath, vectors)
	if err != nil {
		t.Fatal(err)
	}
	if out != "" {
		t.Errorf("fill --out should not print the matrix, printed %q", out)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if want := "1 2\na 1.000000 2.000000\n"; string(data) != want {
		t.Errorf("fill wrote %q, want %q", data, want)
	}

	missing := filepath.Join(dir, "missing", "matrix.txt")
	if _, err := execute(t, "", "fill", "--vocab", vocab, "--out", missing, vectors); err == nil {
		t.Error("fill should fail when the output file cannot be created")
	}
}

func TestFillWithoutVocabulary(t *testing.T) {
	vectors := writeFile(t, t.TempDir(), "vectors.txt", "a 1 2\n")

	if _, err := execute(t, "", "fill", vectors); err == nil {
		t.Error("fill should fail without a vocabulary")
	}
}

func TestSimilar(t *testing.T) {
	vectors := writeFile(t, t.TempDir(), "vectors.txt", "berlin 1 0.1\nparis 0.9 0.2\nbanana -1 0\n")

	out, err := execute(t, "berlin bogus\n", "similar", vectors)
	if err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("similar should print 2 neighbours, printed %q", out)
	}
	if !strings.HasPrefix(lines[0], "paris ") || !strings.HasPrefix(lines[1], "banana ") {
		t.Errorf("Unexpected neighbour order: %q", out)
	}
}

func TestAnalogySkipsMalformedLines(t *testing.T) {
	vectors := writeFile(t, t.TempDir(), "vectors.txt",
		"berlin 1 0.1\nparis 0.9 0.2\ngermany 0.1 1\nfrance 0 0.9\n")

	out, err := execute(t, "berlin germany\nberlin germany paris\n", "analogy", vectors)
	if err != nil {
		t.Fatal(err)
	}

	if !strings.HasPrefix(out, "france ") {
		t.Errorf("analogy should answer 'france' first, printed %q", out)
	}
}
