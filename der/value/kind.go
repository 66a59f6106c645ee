package value

import "fmt"

// Kind is the value family an identifier byte selects. Primitive and
// constructed identifier bytes of the same universal type share a Kind and
// therefore encode identically.
type Kind int

const (
	KindOther Kind = iota // EXTERNAL, EMBEDDED PDV, context/application tags
	KindBoolean
	KindInteger // INTEGER and ENUMERATED
	KindBitString
	KindOctetString
	KindNull
	KindObjectIdentifier
	KindReal
	KindTime // TIME, RFC 3339 input
	KindUTCTime
	KindGeneralizedTime
	KindString
	KindSequence
	KindSet
	KindDate
	KindTimeOfDay
	KindDateTime
	KindDuration
)

var kindNames = map[Kind]string{
	KindOther:            "OTHER",
	KindBoolean:          "BOOLEAN",
	KindInteger:          "INTEGER",
	KindBitString:        "BIT STRING",
	KindOctetString:      "OCTET STRING",
	KindNull:             "NULL",
	KindObjectIdentifier: "OBJECT IDENTIFIER",
	KindReal:             "REAL",
	KindTime:             "TIME",
	KindUTCTime:          "UTCTime",
	KindGeneralizedTime:  "GeneralizedTime",
	KindString:           "STRING",
	KindSequence:         "SEQUENCE",
	KindSet:              "SET",
	KindDate:             "DATE",
	KindTimeOfDay:        "TIME-OF-DAY",
	KindDateTime:         "DATE-TIME",
	KindDuration:         "DURATION",
}

// String implements the Stringer interface for Kind.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// tagRange maps an inclusive range of identifier bytes to a Kind.
type tagRange struct {
	lo, hi byte
	kind   Kind
}

// tagRanges lists every identifier byte with a dedicated encoder. Bytes not
// listed fall through to KindOther.
var tagRanges = []tagRange{
	{0x01, 0x01, KindBoolean},
	{0x02, 0x02, KindInteger},
	{0x0A, 0x0A, KindInteger},
	{0x2A, 0x2A, KindInteger},
	{0x03, 0x03, KindBitString},
	{0x23, 0x23, KindBitString},
	{0x04, 0x04, KindOctetString},
	{0x24, 0x24, KindOctetString},
	{0x05, 0x05, KindNull},
	{0x25, 0x25, KindNull},
	{0x06, 0x06, KindObjectIdentifier},
	{0x26, 0x26, KindObjectIdentifier},
	{0x09, 0x09, KindReal},
	{0x29, 0x29, KindReal},
	{0x0E, 0x0E, KindTime},
	{0x2E, 0x2E, KindTime},
	{0x17, 0x17, KindUTCTime},
	{0x37, 0x37, KindUTCTime},
	{0x18, 0x18, KindGeneralizedTime},
	{0x38, 0x38, KindGeneralizedTime},
	{0x07, 0x07, KindString}, // ObjectDescriptor
	{0x27, 0x27, KindString},
	{0x0C, 0x0C, KindString}, // UTF8String
	{0x2C, 0x2C, KindString},
	{0x12, 0x16, KindString}, // Numeric..IA5
	{0x32, 0x36, KindString},
	{0x19, 0x1E, KindString}, // Graphic..BMP
	{0x39, 0x3E, KindString},
	{0x10, 0x10, KindSequence},
	{0x30, 0x30, KindSequence},
	{0x11, 0x11, KindSet},
	{0x31, 0x31, KindSet},
	{0x1F, 0x1F, KindDate},
	{0x3F, 0x3F, KindDate},
	{0x20, 0x20, KindTimeOfDay},
	{0x40, 0x40, KindTimeOfDay},
	{0x21, 0x21, KindDateTime},
	{0x41, 0x41, KindDateTime},
	{0x22, 0x22, KindDuration},
	{0x42, 0x42, KindDuration},
}

var kindTable = func() (t [256]Kind) {
	for _, r := range tagRanges {
		for b := int(r.lo); b <= int(r.hi); b++ {
			t[b] = r.kind
		}
	}
	return t
}()

// Classify returns the value family for an identifier byte.
func Classify(tag byte) Kind {
	return kindTable[tag]
}
