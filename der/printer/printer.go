package printer

import (
	"errors"
	"io"

	"github.com/joshuapare/derkit/der"
)

const (
	DefaultIndentSize      = 2
	DefaultMaxDepth        = 0
	DefaultMaxContentBytes = 64
)

// ErrNoRoot indicates a tree without a root node.
var ErrNoRoot = errors.New("printer: tree has no root")

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs an indented human-readable tree.
	FormatText Format = "text"

	// FormatJSON outputs the node projection as a JSON array.
	FormatJSON Format = "json"
)

// Options controls printing behavior.
type Options struct {
	// Format specifies output format (text, json).
	// Default: FormatText
	Format Format

	// IndentSize is the number of spaces per indent level (text format only).
	// Default: 2
	IndentSize int

	// MaxDepth limits recursion depth (0 = unlimited).
	// Default: 0 (unlimited)
	MaxDepth int

	// MaxContentBytes limits how much of a content display is printed
	// (text format only). Longer displays are truncated. Set to 0 for no limit.
	// Default: 64
	MaxContentBytes int

	// ShowOffsets prefixes each text line with the node's byte offset.
	// Default: false
	ShowOffsets bool
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format:          FormatText,
		IndentSize:      DefaultIndentSize,
		MaxDepth:        DefaultMaxDepth,
		MaxContentBytes: DefaultMaxContentBytes,
		ShowOffsets:     false,
	}
}

// Printer writes a tree in one of the supported formats.
type Printer struct {
	opts   Options
	writer io.Writer
}

// New creates a new Printer.
//
// Example:
//
//	p := printer.New(os.Stdout, printer.DefaultOptions())
//	err := p.Print(tree)
func New(w io.Writer, opts Options) *Printer {
	return &Printer{
		writer: w,
		opts:   opts,
	}
}

// Print writes the whole tree.
func (p *Printer) Print(tree *der.Tree) error {
	if tree.Root() == nil {
		return ErrNoRoot
	}
	switch p.opts.Format {
	case FormatJSON:
		return p.printJSON(tree)
	case FormatText:
		return p.printText(tree)
	default:
		return p.printText(tree)
	}
}

// within reports whether depth passes the MaxDepth limit.
func (p *Printer) within(depth int) bool {
	return p.opts.MaxDepth <= 0 || depth < p.opts.MaxDepth
}
