package der

import "errors"

// Parse error conditions.
var (
	// ErrIncomplete indicates the input ended inside an identifier, length or content.
	ErrIncomplete = errors.New("der: incomplete input")
	// ErrTail indicates bytes remaining after the outermost TLV.
	ErrTail = errors.New("der: junk after end of TLV")
	// ErrLength indicates a length field that is reserved or too large.
	ErrLength = errors.New("der: unsupported length encoding")
	// ErrIndefinitePrimitive indicates indefinite length on a primitive encoding.
	ErrIndefinitePrimitive = errors.New("der: indefinite length on primitive value")
	// ErrTag indicates a malformed high-tag-number identifier.
	ErrTag = errors.New("der: malformed identifier")
	// ErrDepth indicates nesting beyond Limits.MaxTreeDepth.
	ErrDepth = errors.New("der: nesting too deep")
	// ErrTooManyNodes indicates more nodes than Limits.MaxNodes.
	ErrTooManyNodes = errors.New("der: too many nodes")
	// ErrTooLarge indicates input larger than Limits.MaxInputSize.
	ErrTooLarge = errors.New("der: input too large")
	// ErrEmpty indicates zero-length input.
	ErrEmpty = errors.New("der: empty input")
)
