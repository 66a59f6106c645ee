package rpki

import (
	"encoding/hex"
	"fmt"

	"github.com/joshuapare/derkit/der"
	"github.com/joshuapare/derkit/der/edit"
	"github.com/joshuapare/derkit/der/oid"
	"github.com/joshuapare/derkit/pkg/types"
)

const (
	exampleNotBefore = "2025-01-01 00:00:00"
	exampleNotAfter  = "2026-01-01 00:00:00"
	exampleVCard     = "BEGIN:VCARD\r\nVERSION:4.0\r\nFN:RPKI Contact\r\nEND:VCARD\r\n"
)

// exampleBuilder adds labelled nodes through the edit facade and keeps the
// first error.
type exampleBuilder struct {
	ed  *edit.Editor
	err error
}

func (b *exampleBuilder) add(parent types.NodeID, tag byte, text, label string) types.NodeID {
	if b.err != nil {
		return types.NoNode
	}
	id, err := b.ed.AddNode(tag, text, parent, label)
	if err != nil {
		b.err = fmt.Errorf("example node %q: %w", label, err)
	}
	return id
}

func (b *exampleBuilder) algorithm(parent types.NodeID, dotted, label string) {
	seq := b.add(parent, 0x30, "", label)
	b.add(seq, 0x06, dotted, "")
	b.add(seq, 0x05, "", "")
}

func (b *exampleBuilder) name(parent types.NodeID, cn, label string) {
	seq := b.add(parent, 0x30, "", label)
	set := b.add(seq, 0x31, "", "")
	atv := b.add(set, 0x30, "", "")
	b.add(atv, 0x06, oid.CommonName, "")
	b.add(atv, 0x13, cn, "")
}

// Example builds a labelled skeleton object of type t, ready to be edited.
// Signatures and keys are placeholders; the result is structurally valid but
// not cryptographically valid.
func Example(t ObjectType) (*der.Tree, error) {
	tree := der.NewTree([]byte{0x30}, nil)
	tree.ObjType = t.String()
	b := &exampleBuilder{ed: edit.NewEditor(tree, nil)}
	root := tree.RootID

	switch t {
	case ROA, MFT, GBR, ASPA:
		econtent := b.signedObject(root, t)
		b.eContent(econtent, t)
	case CER, CERTCA:
		b.certificate(root, t == CERTCA)
	case CRL:
		b.crl(root)
	default:
		return nil, &types.Error{Kind: types.ErrKindInvalidInput, Msg: "invalid object type " + t.String()}
	}
	if b.err != nil {
		return nil, b.err
	}
	return tree, nil
}

// signedObject builds ContentInfo/SignedData and returns the eContent
// OCTET STRING.
func (b *exampleBuilder) signedObject(root types.NodeID, t ObjectType) types.NodeID {
	var eType string
	for dotted, ot := range eContentTypes {
		if ot == t {
			eType = dotted
		}
	}

	b.add(root, 0x06, oid.SignedData, "contentType")
	content := b.add(root, 0xA0, "", "content")
	sd := b.add(content, 0x30, "", "signedData")
	b.add(sd, 0x02, "3", "version")
	digests := b.add(sd, 0x31, "", "digestAlgorithms")
	b.algorithm(digests, oid.SHA256, "")
	encap := b.add(sd, 0x30, "", "encapContentInfo")
	b.add(encap, 0x06, eType, "eContentType")
	wrapper := b.add(encap, 0xA0, "", "")
	var econtent types.NodeID
	if t == GBR {
		econtent = b.add(wrapper, 0x04, hex.EncodeToString([]byte(exampleVCard)), "eContent")
	} else {
		econtent = b.add(wrapper, 0x04, "", "eContent")
	}
	b.add(sd, 0x31, "", "signerInfos")
	return econtent
}

func (b *exampleBuilder) eContent(parent types.NodeID, t ObjectType) {
	switch t {
	case ROA:
		roa := b.add(parent, 0x30, "", "RouteOriginAttestation")
		b.add(roa, 0x02, "65000", "asID")
		blocks := b.add(roa, 0x30, "", "ipAddrBlocks")
		family := b.add(blocks, 0x30, "", "")
		b.add(family, 0x04, "0001", "addressFamily")
		addrs := b.add(family, 0x30, "", "")
		addr := b.add(addrs, 0x30, "", "")
		b.add(addr, 0x03, "00001010", "address")
	case MFT:
		mft := b.add(parent, 0x30, "", "Manifest")
		b.add(mft, 0x02, "1", "manifestNumber")
		b.add(mft, 0x18, exampleNotBefore, "thisUpdate")
		b.add(mft, 0x18, exampleNotAfter, "nextUpdate")
		b.add(mft, 0x06, oid.SHA256, "fileHashAlg")
		b.add(mft, 0x30, "", "fileList")
	case ASPA:
		aspa := b.add(parent, 0x30, "", "ASProviderAttestation")
		version := b.add(aspa, 0xA0, "", "")
		b.add(version, 0x02, "1", "version")
		b.add(aspa, 0x02, "65000", "customerASID")
		providers := b.add(aspa, 0x30, "", "providers")
		b.add(providers, 0x02, "65001", "")
	}
}

func (b *exampleBuilder) certificate(root types.NodeID, ca bool) {
	tbs := b.add(root, 0x30, "", "tbsCertificate")
	version := b.add(tbs, 0xA0, "", "")
	b.add(version, 0x02, "2", "version")
	b.add(tbs, 0x02, "1", "serialNumber")
	b.algorithm(tbs, oid.SHA256WithRSA, "signature")
	b.name(tbs, "ta", "issuer")
	validity := b.add(tbs, 0x30, "", "validity")
	b.add(validity, 0x17, exampleNotBefore, "notBefore")
	b.add(validity, 0x17, exampleNotAfter, "notAfter")
	b.name(tbs, "ta", "subject")
	spki := b.add(tbs, 0x30, "", "subjectPublicKeyInfo")
	b.algorithm(spki, oid.RSAEncryption, "")
	b.add(spki, 0x03, "", "subjectPublicKey")

	exts := b.add(b.add(tbs, 0xA3, "", ""), 0x30, "", "extensions")
	bc := b.add(exts, 0x30, "", "")
	b.add(bc, 0x06, oid.BasicConstraints, "")
	b.add(bc, 0x01, "255", "")
	value := b.add(b.add(bc, 0x04, "", ""), 0x30, "", "basicConstraints")
	if ca {
		b.add(value, 0x01, "255", "cA")
	}

	b.algorithm(root, oid.SHA256WithRSA, "signatureAlgorithm")
	b.add(root, 0x03, "", "signatureValue")
}

func (b *exampleBuilder) crl(root types.NodeID) {
	tbs := b.add(root, 0x30, "", "tbsCertList")
	b.add(tbs, 0x02, "1", "version")
	b.algorithm(tbs, oid.SHA256WithRSA, "signature")
	b.name(tbs, "ta", "issuer")
	b.add(tbs, 0x17, exampleNotBefore, "thisUpdate")
	b.add(tbs, 0x17, exampleNotAfter, "nextUpdate")

	b.algorithm(root, oid.SHA256WithRSA, "signatureAlgorithm")
	b.add(root, 0x03, "", "signatureValue")
}
