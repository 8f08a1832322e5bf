package source

import (
	"bufio"
	"context"
	"io"
)

const (
	initialBufferSize = 64 * 1024
	maxLineSize       = 1024 * 1024 // 1MB max line size
)

// Scanner lazily streams lines from a list of resolved files, in resolution
// order, one file at a time. It never materializes a whole file in memory, so
// inputs larger than RAM are fine.
//
// Scanner is a single-consumer iterator. Parallelism happens downstream: the
// engine fans batches of lines out to workers, the scanner itself is the one
// serialization point that preserves canonical order.
type Scanner struct {
	files []string

	current     io.ReadCloser
	scanner     *bufio.Scanner
	currentPath string
	lineNum     int
	fileIndex   int
}

// NewScanner creates a Scanner over the given files. The files are read in
// slice order; pass the output of Resolve to get canonical ordering.
func NewScanner(files []string) *Scanner {
	return &Scanner{
		files:     files,
		fileIndex: -1,
	}
}

// Next returns the next line. Returns io.EOF when all files are exhausted.
//
// An I/O failure on the current file is returned as a *ReadError; the scanner
// then moves on, so a subsequent Next call continues with the next resolved
// file. The caller decides whether one unreadable file aborts the run.
func (s *Scanner) Next(ctx context.Context) (Line, error) {
	for {
		select {
		case <-ctx.Done():
			return Line{}, ctx.Err()
		default:
		}

		if s.scanner == nil {
			if err := s.openNextFile(); err != nil {
				return Line{}, err
			}
		}

		if s.scanner.Scan() {
			line := Line{
				File:   s.fileIndex,
				Number: s.lineNum,
				Path:   s.currentPath,
				Text:   s.scanner.Text(),
			}
			s.lineNum++
			return line, nil
		}

		if err := s.scanner.Err(); err != nil {
			path := s.currentPath
			s.closeCurrentFile()
			return Line{}, &ReadError{Path: path, Err: err}
		}

		// Current file exhausted, try next
		if err := s.closeCurrentFile(); err != nil {
			return Line{}, &ReadError{Path: s.currentPath, Err: err}
		}
	}
}

// Close releases resources.
func (s *Scanner) Close() error {
	return s.closeCurrentFile()
}

func (s *Scanner) openNextFile() error {
	s.fileIndex++
	if s.fileIndex >= len(s.files) {
		return io.EOF
	}

	path := s.files[s.fileIndex]
	r, err := Open(path)
	if err != nil {
		return &ReadError{Path: path, Err: err}
	}

	s.current = r
	s.scanner = bufio.NewScanner(r)
	s.scanner.Buffer(make([]byte, 0, initialBufferSize), maxLineSize)
	s.currentPath = path
	s.lineNum = 0

	return nil
}

func (s *Scanner) closeCurrentFile() error {
	if s.current != nil {
		err := s.current.Close()
		s.current = nil
		s.scanner = nil
		return err
	}
	s.scanner = nil
	return nil
}
