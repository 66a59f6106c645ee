package der

import (
	"fmt"
)

// Class is the two-bit tag class of an identifier.
type Class byte

const (
	ClassUniversal       Class = 0
	ClassApplication     Class = 1
	ClassContextSpecific Class = 2
	ClassPrivate         Class = 3
)

const (
	constructedBit = 0x20
	highTagNumber  = 0x1F
)

// Universal tag numbers.
const (
	TagEOC              = 0
	TagBoolean          = 1
	TagInteger          = 2
	TagBitString        = 3
	TagOctetString      = 4
	TagNull             = 5
	TagOID              = 6
	TagObjectDescriptor = 7
	TagExternal         = 8
	TagReal             = 9
	TagEnumerated       = 10
	TagEmbeddedPDV      = 11
	TagUTF8String       = 12
	TagRelativeOID      = 13
	TagTime             = 14
	TagSequence         = 16
	TagSet              = 17
	TagNumericString    = 18
	TagPrintableString  = 19
	TagT61String        = 20
	TagVideotexString   = 21
	TagIA5String        = 22
	TagUTCTime          = 23
	TagGeneralizedTime  = 24
	TagGraphicString    = 25
	TagVisibleString    = 26
	TagGeneralString    = 27
	TagUniversalString  = 28
	TagCharacterString  = 29
	TagBMPString        = 30
	TagDate             = 31
	TagTimeOfDay        = 32
	TagDateTime         = 33
	TagDuration         = 34
)

var universalNames = map[uint64]string{
	TagEOC:              "EOC",
	TagBoolean:          "BOOLEAN",
	TagInteger:          "INTEGER",
	TagBitString:        "BIT STRING",
	TagOctetString:      "OCTET STRING",
	TagNull:             "NULL",
	TagOID:              "OBJECT IDENTIFIER",
	TagObjectDescriptor: "ObjectDescriptor",
	TagExternal:         "EXTERNAL",
	TagReal:             "REAL",
	TagEnumerated:       "ENUMERATED",
	TagEmbeddedPDV:      "EMBEDDED PDV",
	TagUTF8String:       "UTF8String",
	TagRelativeOID:      "RELATIVE-OID",
	TagTime:             "TIME",
	TagSequence:         "SEQUENCE",
	TagSet:              "SET",
	TagNumericString:    "NumericString",
	TagPrintableString:  "PrintableString",
	TagT61String:        "T61String",
	TagVideotexString:   "VideotexString",
	TagIA5String:        "IA5String",
	TagUTCTime:          "UTCTime",
	TagGeneralizedTime:  "GeneralizedTime",
	TagGraphicString:    "GraphicString",
	TagVisibleString:    "VisibleString",
	TagGeneralString:    "GeneralString",
	TagUniversalString:  "UniversalString",
	TagCharacterString:  "CHARACTER STRING",
	TagBMPString:        "BMPString",
	TagDate:             "DATE",
	TagTimeOfDay:        "TIME-OF-DAY",
	TagDateTime:         "DATE-TIME",
	TagDuration:         "DURATION",
}

// Identifier is a decoded identifier octet sequence.
type Identifier struct {
	Class       Class
	Constructed bool
	Number      uint64
}

// ParseIdentifier decodes identifier octets at the start of b and returns the
// number of octets consumed.
func ParseIdentifier(b []byte) (id Identifier, n int, err error) {
	if len(b) == 0 {
		return id, 0, ErrIncomplete
	}
	id.Class = Class(b[0] >> 6)
	id.Constructed = b[0]&constructedBit != 0
	if b[0]&highTagNumber != highTagNumber {
		id.Number = uint64(b[0] & highTagNumber)
		return id, 1, nil
	}

	n = 1
	for {
		if n >= len(b) {
			return id, 0, ErrIncomplete
		}
		c := b[n]
		n++
		if id.Number > (1<<57)-1 {
			return id, 0, ErrTag
		}
		id.Number = id.Number<<7 | uint64(c&0x7F)
		if c&0x80 == 0 {
			return id, n, nil
		}
	}
}

// TagName renders identifier octets for display: universal tags by name,
// other classes as "[APPLICATION 1]", "[0]" (context-specific) or
// "[PRIVATE 3]". Undecodable identifiers render as hex.
func TagName(tag []byte) string {
	id, _, err := ParseIdentifier(tag)
	if err != nil {
		return fmt.Sprintf("0x%X", tag)
	}
	switch id.Class {
	case ClassUniversal:
		if name, ok := universalNames[id.Number]; ok {
			return name
		}
		return fmt.Sprintf("[UNIVERSAL %d]", id.Number)
	case ClassApplication:
		return fmt.Sprintf("[APPLICATION %d]", id.Number)
	case ClassContextSpecific:
		return fmt.Sprintf("[%d]", id.Number)
	default:
		return fmt.Sprintf("[PRIVATE %d]", id.Number)
	}
}

// isConstructed reports whether the first identifier octet has the constructed bit.
func isConstructed(tag []byte) bool {
	return len(tag) > 0 && tag[0]&constructedBit != 0
}
