// Package value converts human-entered text into the exact content octets a
// TLV identifier byte requires.
//
// # Overview
//
// Encode is the single gate between user input and the tree: every byte
// slice the edit facade writes into a node comes from here. Dispatch goes
// through Classify, a 256-entry table mapping identifier bytes to a Kind,
// and each Kind owns one encoder:
//
//	b, err := value.Encode(0x02, "-129")       // INTEGER -> FF 7F
//	b, err := value.Encode(0x03, "101")        // BIT STRING -> 05 A0
//	b, err := value.Encode(0x06, "2.5.4.3")    // OID -> 55 04 03
//	b, err := value.Encode(0x17, "2025-01-30 11:21:43") // UTCTime
//
// # Errors
//
// Failures are *types.Error with Kind types.ErrKindEncoding. The Encode field
// names the family (types.EncodeInvalidInteger, ...) and Expected carries the
// accepted input format for display:
//
//	if value.IsEncodeKind(err, types.EncodeInvalidOid) { ... }
//
// # Related Packages
//
//   - github.com/joshuapare/derkit/der/oid: OID text <-> BER
//   - github.com/joshuapare/derkit/der/edit: applies encoded values to a tree
package value
