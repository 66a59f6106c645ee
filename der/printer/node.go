package printer

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/joshuapare/derkit/der"
	"github.com/joshuapare/derkit/pkg/types"
)

// Octets is a byte slice that marshals as a JSON array of numbers rather
// than base64, which is what browser frontends index into.
type Octets []byte

func (o Octets) MarshalJSON() ([]byte, error) {
	if o == nil {
		return []byte("[]"), nil
	}
	var sb strings.Builder
	sb.Grow(len(o)*4 + 2)
	sb.WriteByte('[')
	for i, b := range o {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, "%d", b)
	}
	sb.WriteByte(']')
	return []byte(sb.String()), nil
}

func (o *Octets) UnmarshalJSON(data []byte) error {
	var nums []int
	if err := json.Unmarshal(data, &nums); err != nil {
		return err
	}
	out := make(Octets, len(nums))
	for i, n := range nums {
		if n < 0 || n > 0xFF {
			return fmt.Errorf("printer: octet %d out of range", n)
		}
		out[i] = byte(n)
	}
	*o = out
	return nil
}

// TagTriple is (first identifier octet, display name, identifier octets).
type TagTriple struct {
	Value   uint8
	Display string
	Bytes   Octets
}

// LengthTriple is (length, display, length octets).
type LengthTriple struct {
	Value   int
	Display string
	Bytes   Octets
}

// ContentTriple is (hex of content, display, content octets).
type ContentTriple struct {
	Raw     string
	Display string
	Bytes   Octets
}

func (t TagTriple) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{t.Value, t.Display, t.Bytes})
}

func (t *TagTriple) UnmarshalJSON(data []byte) error {
	return unmarshalTriple(data, &t.Value, &t.Display, &t.Bytes)
}

func (t LengthTriple) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{t.Value, t.Display, t.Bytes})
}

func (t *LengthTriple) UnmarshalJSON(data []byte) error {
	return unmarshalTriple(data, &t.Value, &t.Display, &t.Bytes)
}

func (t ContentTriple) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{t.Raw, t.Display, t.Bytes})
}

func (t *ContentTriple) UnmarshalJSON(data []byte) error {
	return unmarshalTriple(data, &t.Raw, &t.Display, &t.Bytes)
}

func unmarshalTriple(data []byte, first, display, octets any) error {
	var parts []json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil {
		return err
	}
	if len(parts) != 3 {
		return fmt.Errorf("printer: expected 3 elements, got %d", len(parts))
	}
	for i, dst := range []any{first, display, octets} {
		if err := json.Unmarshal(parts[i], dst); err != nil {
			return err
		}
	}
	return nil
}

// Node is the display record of one TLV node.
type Node struct {
	ID       types.NodeID   `json:"id"`
	Label    string         `json:"label"`
	Tag      TagTriple      `json:"tag"`
	Length   LengthTriple   `json:"length"`
	Content  ContentTriple  `json:"content"`
	Children []types.NodeID `json:"children"`
	Parent   types.NodeID   `json:"parent"`
}

// NodeOf builds the display record of tok.
func NodeOf(tok *der.Token) Node {
	tag := tok.EffectiveTag()
	var first uint8
	if len(tag) > 0 {
		first = tag[0]
	}
	children := tok.Children
	if children == nil {
		children = []types.NodeID{}
	}
	return Node{
		ID:    tok.ID,
		Label: tok.Info,
		Tag: TagTriple{
			Value:   first,
			Display: tok.TagDisplay(),
			Bytes:   Octets(tag),
		},
		Length: LengthTriple{
			Value:   tok.EffectiveLength(),
			Display: tok.LengthDisplay(),
			Bytes:   Octets(tok.LengthOctets()),
		},
		Content: ContentTriple{
			Raw:     strings.ToUpper(hex.EncodeToString(tok.Data)),
			Display: tok.ContentDisplay(),
			Bytes:   Octets(tok.Data),
		},
		Children: children,
		Parent:   tok.Parent,
	}
}

// Project returns the display record of every node in pre-order: root
// first, then children in stored order. It never mutates the tree.
func Project(tree *der.Tree) []Node {
	return Preview(tree, -1)
}

// Preview returns the first n records of Project. A negative n means all.
func Preview(tree *der.Tree, n int) []Node {
	size := tree.Len()
	if n >= 0 && n < size {
		size = n
	}
	nodes := make([]Node, 0, size)
	if n == 0 {
		return nodes
	}
	tree.Walk(func(tok *der.Token, _ int) bool {
		nodes = append(nodes, NodeOf(tok))
		return n < 0 || len(nodes) < n
	})
	return nodes
}
