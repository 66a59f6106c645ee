// Package session is the host-facing editing API: one State per object.
//
// # Opening
//
// A State is created from hex or base64 text (New), from a file (Open), from
// a stored session (FromStored) or from a skeleton object (LoadExample). The
// object type is classified on open and can be overridden.
//
// # Editing
//
// Each edit method validates its inputs and encodes its value before
// touching the tree; a failed call leaves the session unchanged. Node ids
// stay valid across edits until the node is removed.
//
//	s, err := session.New("3003020105")
//	if err != nil {
//	    return err
//	}
//	if err := s.AdaptNodeContent(1, "6"); err != nil {
//	    return err
//	}
//	blob := s.ExportBin() // 30 03 02 01 06
//
// # Persistence
//
// EncodeStore and FromStored round-trip the full session, including labels
// and tag/length overrides that ExportBin would bake into malformed output.
//
// # Bundling
//
// Repositorify places the object into an RPKI repository through a
// bundle.Builder and returns the archive.
package session

import "github.com/joshuapare/derkit/internal/logging"

var logger = logging.New("session")
