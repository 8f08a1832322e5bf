// Package source provides glob-based file resolution and lazy line streaming
// for the parsing engine.
package source

// Line is a single raw input line together with its canonical position.
// File resolution order, then on-disk line order, defines a total order over
// all input lines regardless of how they are later processed.
type Line struct {
	// File is the index of the originating file in resolution order.
	File int

	// Number is the 0-based line number within the file.
	Number int

	// Path is the file path, kept for diagnostics.
	Path string

	// Text is the raw line content without the trailing newline.
	Text string
}
