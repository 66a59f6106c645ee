// Package rpki knows the RPKI object types an editing session works with.
//
// # Object Types
//
// ObjectType names the repository objects: route origin authorizations (roa),
// manifests (mft), CRLs (crl), end-entity and CA certificates (cer, certca),
// ghostbusters records (gbr) and AS provider attestations (asa). FromString
// accepts names and file extensions.
//
// # Classification
//
// Classify inspects a parsed tree and guesses its type without validating
// signatures:
//
//	tree, _ := der.Parse(blob, der.DefaultParseOptions())
//	switch rpki.Classify(tree) {
//	case rpki.ROA:
//	    ...
//	}
//
// # Examples
//
// Example builds a labelled skeleton of any known type through the edit
// facade. The result round-trips through der.Parse and is a convenient
// starting point for crafting test objects by hand.
package rpki
