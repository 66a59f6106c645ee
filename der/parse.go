package der

import (
	"bytes"
	"fmt"

	"go.uber.org/zap"

	"github.com/joshuapare/derkit/pkg/types"
)

// ParseOptions controls how a blob is turned into a tree.
type ParseOptions struct {
	// Limits bounds depth, node count and input size.
	// Default: types.DefaultLimits()
	Limits types.Limits

	// Encapsulated enables detection of DER carried inside OCTET STRING and
	// BIT STRING content. A candidate becomes children only if its content
	// parses completely and re-encodes to the identical octets.
	// Default: true
	Encapsulated bool

	// ObjType is recorded on the tree (e.g. "roa", "cer").
	ObjType string
}

// DefaultParseOptions returns the options Parse uses for a zero value.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{
		Limits:       types.DefaultLimits(),
		Encapsulated: true,
	}
}

type parser struct {
	t    *Tree
	opts ParseOptions
}

// Parse decodes exactly one BER TLV (with any nesting) from data.
// Indefinite lengths are accepted and re-encoded in definite form.
func Parse(data []byte, opts ParseOptions) (*Tree, error) {
	if opts.Limits == (types.Limits{}) {
		opts.Limits = types.DefaultLimits()
	}
	if len(data) == 0 {
		return nil, ErrEmpty
	}
	if len(data) > opts.Limits.MaxInputSize {
		return nil, ErrTooLarge
	}

	p := &parser{
		t: &Tree{
			Tokens:  make(map[types.NodeID]*Token),
			RootID:  0,
			Labels:  make(map[string]types.NodeID),
			ObjType: opts.ObjType,
		},
		opts: opts,
	}
	root, n, err := p.parseTLV(data, types.NoNode, 0)
	if err != nil {
		return nil, err
	}
	if n != len(data) {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrTail, len(data)-n)
	}
	p.t.RootID = root
	p.t.FixSizes(true)

	logger.Debug("parsed tree",
		zap.Int("bytes", len(data)),
		zap.Int("nodes", len(p.t.Tokens)),
	)
	return p.t, nil
}

// parseTLV decodes one element at the start of b and returns its id and the
// number of octets consumed.
func (p *parser) parseTLV(b []byte, parent types.NodeID, depth int) (types.NodeID, int, error) {
	if depth > p.opts.Limits.MaxTreeDepth {
		return types.NoNode, 0, ErrDepth
	}
	if len(p.t.Tokens) >= p.opts.Limits.MaxNodes {
		return types.NoNode, 0, ErrTooManyNodes
	}

	ident, tagLen, err := ParseIdentifier(b)
	if err != nil {
		return types.NoNode, 0, err
	}
	length, lenLen, err := parseLength(b[tagLen:])
	if err != nil {
		return types.NoNode, 0, err
	}
	header := tagLen + lenLen
	tag := bytes.Clone(b[:tagLen])

	if length == indefiniteLength {
		if !ident.Constructed {
			return types.NoNode, 0, ErrIndefinitePrimitive
		}
		tok := p.t.newToken(tag, nil, parent)
		consumed, err := p.parseIndefinite(b[header:], tok, depth)
		if err != nil {
			return types.NoNode, 0, err
		}
		return tok.ID, header + consumed, nil
	}

	if len(b)-header < length {
		return types.NoNode, 0, ErrIncomplete
	}
	content := b[header : header+length]

	if ident.Constructed {
		tok := p.t.newToken(tag, nil, parent)
		if err := p.parseChildren(content, tok, depth); err != nil {
			return types.NoNode, 0, err
		}
		return tok.ID, header + length, nil
	}

	tok := p.t.newToken(tag, bytes.Clone(content), parent)
	if p.opts.Encapsulated {
		p.tryEncapsulated(tok, depth)
	}
	return tok.ID, header + length, nil
}

func (p *parser) parseChildren(content []byte, tok *Token, depth int) error {
	for pos := 0; pos < len(content); {
		child, n, err := p.parseTLV(content[pos:], tok.ID, depth+1)
		if err != nil {
			return err
		}
		tok.Children = append(tok.Children, child)
		pos += n
	}
	return nil
}

// parseIndefinite parses children until an end-of-contents marker and
// returns the octets consumed including the marker.
func (p *parser) parseIndefinite(b []byte, tok *Token, depth int) (int, error) {
	pos := 0
	for {
		if len(b)-pos < 2 {
			return 0, ErrIncomplete
		}
		if b[pos] == 0x00 && b[pos+1] == 0x00 {
			return pos + 2, nil
		}
		child, n, err := p.parseTLV(b[pos:], tok.ID, depth+1)
		if err != nil {
			return 0, err
		}
		tok.Children = append(tok.Children, child)
		pos += n
	}
}

// tryEncapsulated turns the content of a primitive OCTET STRING or BIT
// STRING into children when it is itself a complete DER SEQUENCE or SET.
// On any mismatch every token created for the attempt is discarded.
func (p *parser) tryEncapsulated(tok *Token, depth int) {
	inner := tok.Data
	switch {
	case len(tok.Tag) == 1 && tok.Tag[0] == TagOctetString:
	case tok.isBitString() && len(inner) > 1 && inner[0] == 0x00:
		inner = inner[1:]
	default:
		return
	}
	if len(inner) < 2 || (inner[0] != 0x30 && inner[0] != 0x31) {
		return
	}

	checkpoint := p.t.NextID
	rollback := func() {
		for id := checkpoint; id < p.t.NextID; id++ {
			delete(p.t.Tokens, id)
		}
		p.t.NextID = checkpoint
		tok.Children = tok.Children[:0]
	}

	if err := p.parseChildren(inner, tok, depth); err != nil {
		rollback()
		return
	}
	var reenc []byte
	for _, child := range tok.Children {
		reenc = append(reenc, p.t.EncodeNode(child)...)
	}
	if !bytes.Equal(reenc, inner) {
		logger.Debug("encapsulated content does not round-trip, keeping raw",
			zap.Int("id", int(tok.ID)),
		)
		rollback()
		return
	}
	tok.Data = []byte{}
}
