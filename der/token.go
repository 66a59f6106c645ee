package der

import (
	"github.com/joshuapare/derkit/pkg/types"
)

// Token is one TLV node in a Tree arena. Parent and children are ids, not
// pointers, so relocating a subtree only rewrites two children lists and one
// parent field.
type Token struct {
	ID       types.NodeID   `json:"id"`
	Parent   types.NodeID   `json:"parent"`
	Children []types.NodeID `json:"children"`

	// Tag holds the identifier octets as parsed or created; TagU is Tag[0].
	Tag  []byte `json:"tag"`
	TagU byte   `json:"tag_u"`

	// Data holds primitive content octets. Constructed nodes and nodes with
	// children serialize their children instead.
	Data []byte `json:"data"`

	// Cached by FixSizes.
	Length    int `json:"length"`     // content length in octets
	HeaderLen int `json:"header_len"` // identifier + length octets
	Offset    int `json:"offset"`     // absolute offset of the identifier

	// Overrides honored by Encode. They deliberately allow malformed output.
	VisualTag         []byte `json:"visual_tag,omitempty"`
	VisualLength      int    `json:"visual_length"`
	ManipulatedLength bool   `json:"manipulated_length"`
	Manipulated       bool   `json:"manipulated"`

	// Tainted marks cached sizes as stale.
	Tainted bool `json:"tainted"`

	// Info is the user label.
	Info string `json:"info"`
}

// EffectiveTag returns the identifier octets Encode writes.
func (t *Token) EffectiveTag() []byte {
	if len(t.VisualTag) > 0 {
		return t.VisualTag
	}
	return t.Tag
}

// EffectiveLength returns the length value Encode writes.
func (t *Token) EffectiveLength() int {
	if t.ManipulatedLength {
		return t.VisualLength
	}
	return t.Length
}

// Constructed reports whether the stored identifier has the constructed bit.
func (t *Token) Constructed() bool {
	return isConstructed(t.Tag)
}

// Encapsulating reports whether a primitive node carries DER in its content,
// represented as children.
func (t *Token) Encapsulating() bool {
	return !t.Constructed() && len(t.Children) > 0
}

// isBitString reports a universal primitive BIT STRING identifier.
func (t *Token) isBitString() bool {
	return len(t.Tag) == 1 && t.Tag[0] == TagBitString
}
