// Package txlog adapts line-oriented files to the ledger processor.
package txlog

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrResource = errors.New("resource_error")
	ErrNotFound = fmt.Errorf("%w: source not found", ErrResource)
)

// Lines yields trimmed lines from r. Line length is not capped. The
// sequence is single-use.
func Lines(r io.Reader) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		br := bufio.NewReader(r)
		for {
			line, err := br.ReadString('\n')
			if line != "" && !yield(strings.TrimSpace(line), nil) {
				return
			}
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield("", fmt.Errorf("%w: read: %w", ErrResource, err))
				return
			}
		}
	}
}

// FileLines opens path lazily on first iteration and closes it when the
// iteration ends.
func FileLines(path string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		f, err := os.Open(path)
		if errors.Is(err, fs.ErrNotExist) {
			yield("", fmt.Errorf("%w: %s", ErrNotFound, path))
			return
		}
		if err != nil {
			yield("", fmt.Errorf("%w: open %s: %w", ErrResource, path, err))
			return
		}
		defer f.Close()
		for line, err := range Lines(f) {
			if !yield(line, err) {
				return
			}
		}
	}
}

// WriteLines writes each line followed by a newline.
func WriteLines(w io.Writer, lines []string) error {
	bw := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := bw.WriteString(line); err != nil {
			return fmt.Errorf("%w: write: %w", ErrResource, err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("%w: write: %w", ErrResource, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: write: %w", ErrResource, err)
	}
	return nil
}

// WriteFile replaces path with lines. The file is written next to path and
// renamed into place, so readers never see a partial result.
func WriteFile(path string, lines []string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: create %s: %w", ErrResource, path, err)
	}
	defer os.Remove(tmp.Name())

	if err := WriteLines(tmp, lines); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %w", ErrResource, path, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("%w: chmod %s: %w", ErrResource, path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%w: rename %s: %w", ErrResource, path, err)
	}
	return nil
}

// FileSink writes results to a file path.
type FileSink string

func (s FileSink) WriteResults(lines []string) error {
	return WriteFile(string(s), lines)
}
