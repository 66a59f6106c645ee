package rpki

import (
	"bytes"

	"github.com/joshuapare/derkit/der"
	"github.com/joshuapare/derkit/der/oid"
)

var eContentTypes = map[string]ObjectType{
	oid.RouteOriginAuthz: ROA,
	oid.RPKIManifest:     MFT,
	oid.RPKIGhostbusters: GBR,
	oid.RPKIASPA:         ASPA,
}

// Classify guesses the object type of a parsed tree from its structure.
//
// CMS signed objects are identified by their eContentType. Otherwise the
// first element of the outer SEQUENCE is treated as a TBSCertificate or
// TBSCertList: a validity SEQUENCE of two times means a certificate (CA when
// basicConstraints asserts cA), a bare thisUpdate time means a CRL.
func Classify(tree *der.Tree) ObjectType {
	root := tree.Root()
	if root == nil || !hasTag(root, 0x30) {
		return Unknown
	}
	if t, ok := classifySigned(tree, root); ok {
		return t
	}

	tbs := child(tree, root, 0)
	if tbs == nil || !hasTag(tbs, 0x30) {
		return Unknown
	}
	switch {
	case isCertificate(tree, tbs):
		if isCA(tree, tbs) {
			return CERTCA
		}
		return CER
	case isCRL(tree, tbs):
		return CRL
	}
	return Unknown
}

// classifySigned handles ContentInfo { signedData, [0] SignedData }.
func classifySigned(tree *der.Tree, root *der.Token) (ObjectType, bool) {
	ct := child(tree, root, 0)
	if ct == nil || !hasTag(ct, der.TagOID) || oidOf(ct) != oid.SignedData {
		return Unknown, false
	}
	sd := child(tree, child(tree, root, 1), 0)
	encap := child(tree, sd, 2)
	eType := child(tree, encap, 0)
	if eType == nil || !hasTag(eType, der.TagOID) {
		return Unknown, true
	}
	if t, ok := eContentTypes[oidOf(eType)]; ok {
		return t, true
	}
	return Unknown, true
}

func isCertificate(tree *der.Tree, tbs *der.Token) bool {
	if first := child(tree, tbs, 0); first != nil && hasTag(first, 0xA0) {
		return true
	}
	for i := range tbs.Children {
		v := child(tree, tbs, i)
		if hasTag(v, 0x30) && len(v.Children) == 2 && isTime(child(tree, v, 0)) && isTime(child(tree, v, 1)) {
			return true
		}
	}
	return false
}

func isCRL(tree *der.Tree, tbs *der.Token) bool {
	for i := range tbs.Children {
		if isTime(child(tree, tbs, i)) {
			return true
		}
	}
	return false
}

// isCA looks for basicConstraints with cA TRUE in the [3] extensions.
func isCA(tree *der.Tree, tbs *der.Token) bool {
	var exts *der.Token
	for i := range tbs.Children {
		if c := child(tree, tbs, i); hasTag(c, 0xA3) {
			exts = child(tree, c, 0)
		}
	}
	if exts == nil {
		return false
	}
	for i := range exts.Children {
		ext := child(tree, exts, i)
		id := child(tree, ext, 0)
		if id == nil || oidOf(id) != oid.BasicConstraints {
			continue
		}
		value := child(tree, ext, len(ext.Children)-1)
		if value == nil || !hasTag(value, der.TagOctetString) {
			return false
		}
		return basicConstraintsCA(tree, value)
	}
	return false
}

func basicConstraintsCA(tree *der.Tree, value *der.Token) bool {
	if value.Encapsulating() {
		seq := child(tree, value, 0)
		flag := child(tree, seq, 0)
		return hasTag(flag, der.TagBoolean) && len(flag.Data) == 1 && flag.Data[0] != 0
	}
	// Content was not exposed as children; decode it on the side.
	inner, err := der.Parse(value.Data, der.DefaultParseOptions())
	if err != nil {
		return false
	}
	flag := child(inner, inner.Root(), 0)
	return hasTag(flag, der.TagBoolean) && len(flag.Data) == 1 && flag.Data[0] != 0
}

func child(tree *der.Tree, tok *der.Token, i int) *der.Token {
	if tok == nil || i < 0 || i >= len(tok.Children) {
		return nil
	}
	c, ok := tree.Lookup(tok.Children[i])
	if !ok {
		return nil
	}
	return c
}

func hasTag(tok *der.Token, tag byte) bool {
	return tok != nil && bytes.Equal(tok.Tag, []byte{tag})
}

func isTime(tok *der.Token) bool {
	return hasTag(tok, der.TagUTCTime) || hasTag(tok, der.TagGeneralizedTime)
}

func oidOf(tok *der.Token) string {
	s, err := oid.Decode(tok.Data)
	if err != nil {
		return ""
	}
	return s
}
