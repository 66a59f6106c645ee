package types

import (
	"fmt"
)

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindInvalidInput  ErrKind = iota // malformed hex/base64/tree blob at construction
	ErrKindUnknownNode                  // id not present (parent, target, drag endpoint)
	ErrKindEncoding                     // text value not representable for the declared tag
	ErrKindSerialization                // stored state blob failed to round-trip
	ErrKindState                        // operation not allowed for the node (e.g., root)
)

// String implements the Stringer interface for ErrKind.
func (k ErrKind) String() string {
	switch k {
	case ErrKindInvalidInput:
		return "invalid input"
	case ErrKindUnknownNode:
		return "unknown node"
	case ErrKindEncoding:
		return "encoding error"
	case ErrKindSerialization:
		return "serialization error"
	case ErrKindState:
		return "invalid state"
	default:
		return fmt.Sprintf("ErrKind(%d)", int(k))
	}
}

// EncodeKind narrows ErrKindEncoding to the value family that rejected the text.
type EncodeKind int

const (
	EncodeNone EncodeKind = iota
	EncodeInvalidBoolean
	EncodeInvalidInteger
	EncodeInvalidBitString
	EncodeInvalidHex
	EncodeInvalidNull
	EncodeInvalidOid
	EncodeInvalidReal
	EncodeInvalidTimestamp
	EncodeInvalidDuration
	EncodeNotEmpty // constructed types carry content in children
)

// String implements the Stringer interface for EncodeKind.
func (k EncodeKind) String() string {
	switch k {
	case EncodeNone:
		return "none"
	case EncodeInvalidBoolean:
		return "InvalidBoolean"
	case EncodeInvalidInteger:
		return "InvalidInteger"
	case EncodeInvalidBitString:
		return "InvalidBitString"
	case EncodeInvalidHex:
		return "InvalidHex"
	case EncodeInvalidNull:
		return "InvalidNull"
	case EncodeInvalidOid:
		return "InvalidOid"
	case EncodeInvalidReal:
		return "InvalidReal"
	case EncodeInvalidTimestamp:
		return "InvalidTimestamp"
	case EncodeInvalidDuration:
		return "InvalidDuration"
	case EncodeNotEmpty:
		return "NotEmpty"
	default:
		return fmt.Sprintf("EncodeKind(%d)", int(k))
	}
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind     ErrKind
	Encode   EncodeKind // set when Kind == ErrKindEncoding
	Msg      string
	Expected string // human-readable expected input format, if any
	Err      error  // optional underlying cause

	// kindOnly marks the package sentinels that stand for a whole kind.
	kindOnly bool
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := e.Msg
	if e.Expected != "" {
		msg += " (expected " + e.Expected + ")"
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target matches e. The kind sentinels below and
// templates without a Msg match every error of their kind; encoding templates
// additionally match on EncodeKind when they set one. Any other *Error, such
// as a package-level guard sentinel, matches only itself.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	if e == t {
		return true
	}
	if !t.kindOnly && t.Msg != "" {
		return false
	}
	if e.Kind != t.Kind {
		return false
	}
	return t.Encode == EncodeNone || t.Encode == e.Encode
}

// Sentinels commonly returned by implementations. Compare with errors.Is.
var (
	// ErrInvalidInput indicates a blob that is neither hex nor base64, or does not parse as a tree.
	ErrInvalidInput = &Error{Kind: ErrKindInvalidInput, Msg: "invalid data", kindOnly: true}
	// ErrUnknownNode indicates a node id not present in the tree.
	ErrUnknownNode = &Error{Kind: ErrKindUnknownNode, Msg: "invalid node", kindOnly: true}
	// ErrEncoding matches every value encoding failure.
	ErrEncoding = &Error{Kind: ErrKindEncoding, Msg: "invalid value", kindOnly: true}
	// ErrSerialization indicates a stored state blob could not be restored.
	ErrSerialization = &Error{Kind: ErrKindSerialization, Msg: "invalid stored state", kindOnly: true}
	// ErrState indicates the operation is not allowed on the node.
	ErrState = &Error{Kind: ErrKindState, Msg: "operation not allowed", kindOnly: true}
)

// UnknownNode returns an ErrKindUnknownNode error naming id and its role.
func UnknownNode(role string, id NodeID) error {
	return &Error{Kind: ErrKindUnknownNode, Msg: fmt.Sprintf("invalid %s: node %d does not exist", role, id)}
}

// -----------------------------------------------------------------------------
// Core Identifiers
// -----------------------------------------------------------------------------

// NodeID is a small, copyable handle referring to a TLV node within one tree.
// IDs are assigned at creation and never reused after deletion, so they stay
// valid across edits in a way that pointers would not.
type NodeID int

// NoNode is the parent of the root.
const NoNode NodeID = -1
