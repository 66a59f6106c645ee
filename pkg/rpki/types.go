package rpki

import (
	"fmt"
	"strings"
)

// ObjectType identifies the kind of RPKI object a tree holds.
type ObjectType int

const (
	Unknown ObjectType = iota
	ROA
	MFT
	CRL
	CER
	CERTCA
	GBR
	ASPA
)

var objectTypeNames = map[ObjectType]string{
	Unknown: "unknown",
	ROA:     "roa",
	MFT:     "mft",
	CRL:     "crl",
	CER:     "cer",
	CERTCA:  "certca",
	GBR:     "gbr",
	ASPA:    "asa",
}

func (t ObjectType) String() string {
	if s, ok := objectTypeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("ObjectType(%d)", int(t))
}

// Extension returns the repository file extension for objects of type t.
// CA and end-entity certificates share "cer".
func (t ObjectType) Extension() string {
	switch t {
	case CERTCA:
		return "cer"
	case Unknown:
		return "der"
	}
	return t.String()
}

// IsPayload reports whether t is a signed payload object, as opposed to
// repository infrastructure (manifest, CRL, certificates).
func (t ObjectType) IsPayload() bool {
	switch t {
	case ROA, GBR, ASPA:
		return true
	}
	return false
}

// FromString parses an object type name or file extension. Matching is
// case-insensitive and ignores a leading dot. Unrecognized names map to
// Unknown.
func FromString(s string) ObjectType {
	switch strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), ".") {
	case "roa":
		return ROA
	case "mft", "manifest":
		return MFT
	case "crl":
		return CRL
	case "cer", "cert", "ee":
		return CER
	case "certca", "ca":
		return CERTCA
	case "gbr":
		return GBR
	case "asa", "aspa":
		return ASPA
	}
	return Unknown
}
