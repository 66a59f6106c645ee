package testutil

// Encoded object identifiers used by the fixtures.
var (
	OIDSignedData    = BytesFromHex("2A864886F70D010702")
	OIDSHA256        = BytesFromHex("608648016503040201")
	OIDSHA256WithRSA = BytesFromHex("2A864886F70D01010B")
	OIDRSAEncryption = BytesFromHex("2A864886F70D010101")
	OIDROA           = BytesFromHex("2A864886F70D0109100118")
	OIDManifest      = BytesFromHex("2A864886F70D010910011A")
	OIDGhostbusters  = BytesFromHex("2A864886F70D0109100123")
	OIDASPA          = BytesFromHex("2A864886F70D0109100131")
	OIDCommonName    = BytesFromHex("550403")
	OIDBasicConstr   = BytesFromHex("551D13")
	OIDCRLNumber     = BytesFromHex("551D14")
)

var (
	sigBytes   = BytesFromHex("AB CD EF 01 23 45 67 89")
	thisUpdate = []byte("250101000000Z")
	nextUpdate = []byte("260101000000Z")
)

func seq(content ...[]byte) []byte { return TLV(0x30, content...) }

func algorithm(o []byte) []byte {
	return seq(TLV(0x06, o), TLV(0x05))
}

func name(cn string) []byte {
	return seq(TLV(0x31, seq(TLV(0x06, OIDCommonName), TLV(0x13, []byte(cn)))))
}

// SignedObject wraps eContent in a minimal CMS ContentInfo/SignedData with
// the given eContentType.
func SignedObject(eContentType, eContent []byte) []byte {
	signedData := seq(
		TLV(0x02, []byte{0x03}),
		TLV(0x31, seq(TLV(0x06, OIDSHA256))),
		seq(
			TLV(0x06, eContentType),
			TLV(0xA0, TLV(0x04, eContent)),
		),
		TLV(0x31),
	)
	return seq(TLV(0x06, OIDSignedData), TLV(0xA0, signedData))
}

// ROA returns a signed object carrying a RouteOriginAttestation for AS65000
// and 10.0.0.0/8.
func ROA() []byte {
	roa := seq(
		TLV(0x02, BytesFromHex("00FDE8")),
		seq(seq(
			TLV(0x04, BytesFromHex("0001")),
			seq(seq(TLV(0x03, BytesFromHex("000A")))),
		)),
	)
	return SignedObject(OIDROA, roa)
}

// Manifest returns a signed object carrying a manifest with no file entries.
func Manifest() []byte {
	mft := seq(
		TLV(0x02, []byte{0x01}),
		TLV(0x18, []byte("20250101000000Z")),
		TLV(0x18, []byte("20260101000000Z")),
		TLV(0x06, OIDSHA256),
		seq(),
	)
	return SignedObject(OIDManifest, mft)
}

// Certificate returns a self-signed-looking X.509 certificate whose public key
// BIT STRING and basicConstraints extension both hold encapsulated DER.
func Certificate(ca bool) []byte {
	var bc []byte
	if ca {
		bc = seq(TLV(0x01, []byte{0xFF}))
	} else {
		bc = seq()
	}
	spki := seq(
		algorithm(OIDRSAEncryption),
		TLV(0x03, []byte{0x00}, seq(
			TLV(0x02, BytesFromHex("00C1D2E3F4")),
			TLV(0x02, BytesFromHex("010001")),
		)),
	)
	tbs := seq(
		TLV(0xA0, TLV(0x02, []byte{0x02})),
		TLV(0x02, BytesFromHex("0123")),
		algorithm(OIDSHA256WithRSA),
		name("ta"),
		seq(TLV(0x17, thisUpdate), TLV(0x17, nextUpdate)),
		name("ta"),
		spki,
		TLV(0xA3, seq(seq(
			TLV(0x06, OIDBasicConstr),
			TLV(0x01, []byte{0xFF}),
			TLV(0x04, bc),
		))),
	)
	return seq(tbs, algorithm(OIDSHA256WithRSA), TLV(0x03, []byte{0x00}, sigBytes))
}

// CRL returns a version 2 CRL with no revoked certificates.
func CRL() []byte {
	tbs := seq(
		TLV(0x02, []byte{0x01}),
		algorithm(OIDSHA256WithRSA),
		name("ta"),
		TLV(0x17, thisUpdate),
		TLV(0x17, nextUpdate),
		TLV(0xA0, seq(seq(
			TLV(0x06, OIDCRLNumber),
			TLV(0x04, TLV(0x02, []byte{0x01})),
		))),
	)
	return seq(tbs, algorithm(OIDSHA256WithRSA), TLV(0x03, []byte{0x00}, sigBytes))
}
