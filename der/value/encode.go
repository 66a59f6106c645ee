package value

import (
	"encoding/binary"
	"encoding/hex"
	"math"
	"strconv"
	"strings"

	"github.com/joshuapare/derkit/der/oid"
	"github.com/joshuapare/derkit/pkg/types"
)

// encodeFunc turns user text into content octets for one Kind.
type encodeFunc func(text string) ([]byte, error)

var encoders map[Kind]encodeFunc

func init() {
	encoders = map[Kind]encodeFunc{
		KindOther:            encodeVerbatim,
		KindBoolean:          encodeBoolean,
		KindInteger:          encodeInteger,
		KindBitString:        encodeBitString,
		KindOctetString:      ParseHex,
		KindNull:             encodeNull,
		KindObjectIdentifier: encodeOID,
		KindReal:             encodeReal,
		KindTime:             encodeRFC3339Time,
		KindUTCTime:          encodeUTCTime,
		KindGeneralizedTime:  encodeGeneralizedTime,
		KindString:           encodeVerbatim,
		KindSequence:         encodeEmpty,
		KindSet:              encodeEmpty,
		KindDate:             stripping("-"),
		KindTimeOfDay:        stripping(":"),
		KindDateTime:         stripping("-", ":"),
		KindDuration:         EncodeDuration,
	}
}

// Encode converts human-entered text into the content octets required by the
// identifier byte tag. It is pure and deterministic.
//
// Failures are *types.Error values with Kind ErrKindEncoding and an Encode
// field naming the rejected family; Expected describes the accepted format.
func Encode(tag byte, text string) ([]byte, error) {
	return encoders[Classify(tag)](text)
}

func encodeVerbatim(text string) ([]byte, error) {
	return []byte(text), nil
}

func encodeBoolean(text string) ([]byte, error) {
	v, err := strconv.ParseUint(text, 10, 8)
	if err != nil {
		return nil, encodeError(types.EncodeInvalidBoolean, "invalid integer, only 0 - 255 allowed", FormatBoolean, err)
	}
	return []byte{byte(v)}, nil
}

func encodeInteger(text string) ([]byte, error) {
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return nil, encodeError(types.EncodeInvalidInteger, "invalid integer", FormatInteger, err)
	}
	return IntegerBytes(v), nil
}

// IntegerBytes returns the minimal big-endian two's complement encoding of v,
// as X.690 8.3 requires for INTEGER and ENUMERATED content.
func IntegerBytes(v int64) []byte {
	var full [8]byte
	binary.BigEndian.PutUint64(full[:], uint64(v))
	b := full[:]
	// Drop a leading octet while the next octet carries the same sign.
	for len(b) > 1 {
		if (b[0] == 0x00 && b[1]&0x80 == 0) || (b[0] == 0xFF && b[1]&0x80 != 0) {
			b = b[1:]
			continue
		}
		break
	}
	return append([]byte(nil), b...)
}

func encodeBitString(text string) ([]byte, error) {
	padding := (8 - len(text)%8) % 8
	out := make([]byte, 1, 1+(len(text)+7)/8)
	out[0] = byte(padding)

	var cur byte
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '0':
		case '1':
			cur |= 0x80 >> (i % 8)
		default:
			return nil, encodeError(types.EncodeInvalidBitString, "invalid bit string (only 0 and 1 allowed)", FormatBitString, nil)
		}
		if i%8 == 7 {
			out = append(out, cur)
			cur = 0
		}
	}
	if padding != 0 {
		out = append(out, cur)
	}
	return out, nil
}

// ParseHex decodes a hex string into bytes. Surrounding whitespace and a
// leading "0x" are ignored and an odd number of digits is left-padded with a
// zero.
func ParseHex(text string) ([]byte, error) {
	s := strings.TrimSpace(text)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
	}
	if len(s)%2 != 0 {
		s = "0" + s
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, encodeError(types.EncodeInvalidHex, "invalid hex string", FormatHex, err)
	}
	return b, nil
}

func encodeNull(text string) ([]byte, error) {
	if text != "" {
		return nil, encodeError(types.EncodeInvalidNull, "invalid NULL value", FormatNull, nil)
	}
	return []byte{}, nil
}

func encodeOID(text string) ([]byte, error) {
	b := oid.Encode(text)
	if len(b) == 0 {
		return nil, encodeError(types.EncodeInvalidOid, "invalid OID", FormatOID, nil)
	}
	return b, nil
}

func encodeReal(text string) ([]byte, error) {
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, encodeError(types.EncodeInvalidReal, "invalid REAL value", FormatReal, err)
	}
	out := make([]byte, 8)
	binary.BigEndian.PutUint64(out, math.Float64bits(v))
	return out, nil
}

func encodeEmpty(text string) ([]byte, error) {
	if text != "" {
		return nil, encodeError(types.EncodeNotEmpty, "constructed values carry no content", FormatConstructed, nil)
	}
	return []byte{}, nil
}

// stripping returns an encoder that removes every separator from the text.
func stripping(seps ...string) encodeFunc {
	return func(text string) ([]byte, error) {
		for _, sep := range seps {
			text = strings.ReplaceAll(text, sep, "")
		}
		return []byte(text), nil
	}
}
