package oid

// Well-known OIDs seen in PKIX certificates, CRLs, CMS signed objects and
// RPKI payloads.
const (
	RSAEncryption          = "1.2.840.113549.1.1.1"
	SHA256WithRSA          = "1.2.840.113549.1.1.11"
	SignedData             = "1.2.840.113549.1.7.2"
	ContentType            = "1.2.840.113549.1.9.3"
	MessageDigest          = "1.2.840.113549.1.9.4"
	SigningTime            = "1.2.840.113549.1.9.5"
	RouteOriginAuthz       = "1.2.840.113549.1.9.16.1.24"
	RPKIManifest           = "1.2.840.113549.1.9.16.1.26"
	RPKIGhostbusters       = "1.2.840.113549.1.9.16.1.35"
	RPKIASPA               = "1.2.840.113549.1.9.16.1.49"
	SHA256                 = "2.16.840.1.101.3.4.2.1"
	CommonName             = "2.5.4.3"
	SubjectKeyIdentifier   = "2.5.29.14"
	KeyUsage               = "2.5.29.15"
	BasicConstraints       = "2.5.29.19"
	CRLNumber              = "2.5.29.20"
	CRLDistributionPoints  = "2.5.29.31"
	CertificatePolicies    = "2.5.29.32"
	AuthorityKeyIdentifier = "2.5.29.35"
	AuthorityInfoAccess    = "1.3.6.1.5.5.7.1.1"
	IPAddrBlocks           = "1.3.6.1.5.5.7.1.7"
	ASIdentifiers          = "1.3.6.1.5.5.7.1.8"
	SubjectInfoAccess      = "1.3.6.1.5.5.7.1.11"
	CPSQualifier           = "1.3.6.1.5.5.7.2.1"
	CAIssuers              = "1.3.6.1.5.5.7.48.2"
	CARepository           = "1.3.6.1.5.5.7.48.5"
	RPKIManifestAccess     = "1.3.6.1.5.5.7.48.10"
	SignedObjectAccess     = "1.3.6.1.5.5.7.48.11"
	RPKINotify             = "1.3.6.1.5.5.7.48.13"
	RPKIPolicy             = "1.3.6.1.5.5.7.14.2"
)

var names = map[string]string{
	RSAEncryption:          "rsaEncryption",
	SHA256WithRSA:          "sha256WithRSAEncryption",
	SignedData:             "signedData",
	ContentType:            "contentType",
	MessageDigest:          "messageDigest",
	SigningTime:            "signingTime",
	RouteOriginAuthz:       "routeOriginAuthz",
	RPKIManifest:           "rpkiManifest",
	RPKIGhostbusters:       "rpkiGhostbusters",
	RPKIASPA:               "id-ct-ASPA",
	SHA256:                 "sha256",
	CommonName:             "commonName",
	SubjectKeyIdentifier:   "subjectKeyIdentifier",
	KeyUsage:               "keyUsage",
	BasicConstraints:       "basicConstraints",
	CRLNumber:              "cRLNumber",
	CRLDistributionPoints:  "cRLDistributionPoints",
	CertificatePolicies:    "certificatePolicies",
	AuthorityKeyIdentifier: "authorityKeyIdentifier",
	AuthorityInfoAccess:    "authorityInfoAccess",
	IPAddrBlocks:           "id-pe-ipAddrBlocks",
	ASIdentifiers:          "id-pe-autonomousSysIds",
	SubjectInfoAccess:      "subjectInfoAccess",
	CPSQualifier:           "id-qt-cps",
	CAIssuers:              "caIssuers",
	CARepository:           "id-ad-caRepository",
	RPKIManifestAccess:     "id-ad-rpkiManifest",
	SignedObjectAccess:     "id-ad-signedObject",
	RPKINotify:             "id-ad-rpkiNotify",
	RPKIPolicy:             "id-cp-ipAddr-asNumber",
}

// Name returns the registered symbolic name of a dotted OID, or "".
func Name(dotted string) string {
	return names[dotted]
}
