// Package types defines the shared vocabulary of derkit: node handles and the
// typed error taxonomy returned by the encoder, the tree engine, the edit
// facade, and the session layer.
//
// Design goals:
//   - Small, copyable handles (NodeID) instead of pointers into the tree.
//   - Typed errors with stable categories (input/unknown node/encoding/...).
//   - Never panic on user input.
//
// This package has no dependencies beyond the standard library.
package types
