// Package edit provides validated editing operations over a der.Tree.
//
// # Overview
//
// Editor is the single entry point for user edits. Text values go through
// value.Encode using the node's declared tag, so raw octets only reach the
// tree after they have been validated:
//
//	ed := edit.NewEditor(tree, nil)
//
//	// Append an INTEGER under the root
//	id, err := ed.AddNode(0x02, "65000", tree.RootID, "asID")
//
//	// Replace its content
//	err = ed.AdaptContent(id, "65001")
//
//	// Move it to the front of another SEQUENCE
//	err = ed.Drag(id, seqID, 0)
//
// # Overrides
//
// AdaptTag and AdaptLength set presentation overrides that Encode writes
// verbatim. They never touch content and never resize, which makes it
// possible to produce deliberately malformed objects.
//
// # Size Tracking
//
// Structural and content edits taint the ancestor path of every touched
// node and then run one der.Tree.FixSizes pass, so cached lengths are never
// stale once a call returns.
//
// # Errors
//
// Failures are *types.Error values: ErrKindUnknownNode for missing ids,
// ErrKindEncoding from the value encoder, ErrKindState for root and cycle
// guards, ErrKindInvalidInput for bad indexes and lengths.
package edit

import "github.com/joshuapare/derkit/internal/logging"

var logger = logging.New("edit")
