// Package der is a mutable BER/DER Tag-Length-Value tree.
//
// # Overview
//
// A Tree is an arena of Tokens keyed by integer id. Parent and child links are
// ids, so structural edits touch only children lists and parent fields, and a
// node handle stays valid until that node is deleted. Ids come from a
// monotonically increasing counter and are never reused within a tree.
//
// # Parsing
//
// Parse decodes one BER element, including high tag numbers and indefinite
// lengths, within the bounds of types.Limits:
//
//	t, err := der.Parse(blob, der.DefaultParseOptions())
//	if err != nil {
//	    return err
//	}
//
// OCTET STRING and BIT STRING content that is itself a complete DER SEQUENCE
// or SET is exposed as children of the primitive node ("encapsulating" node).
//
// # Editing Contract
//
// Mutations mark the edited node tainted and TaintParents marks its ancestor
// path. FixSizes(false) then recomputes cached lengths along tainted paths
// only, and reassigns offsets:
//
//	id := t.AddNode(0x02, []byte{0x05}, t.RootID, "serial")
//	t.TaintParents(id)
//	t.FixSizes(false)
//
// Encode always computes lengths from current content. VisualTag and
// VisualLength overrides are written verbatim, which deliberately permits
// malformed output for testing relying parties.
//
// # Thread Safety
//
// Tree is NOT thread-safe. One editing session owns it.
package der

import "github.com/joshuapare/derkit/internal/logging"

var logger = logging.New("der")
