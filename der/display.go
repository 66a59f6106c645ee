package der

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"

	"github.com/joshuapare/derkit/der/oid"
)

var (
	bmpDecoder       encoding.Encoding = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	universalDecoder encoding.Encoding = utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM)
	t61Decoder       encoding.Encoding = charmap.ISO8859_1
)

// LengthOctets returns the length field Encode writes for t.
func (t *Token) LengthOctets() []byte {
	return appendLength(nil, t.EffectiveLength())
}

// TagDisplay renders the effective identifier of t.
func (t *Token) TagDisplay() string {
	name := TagName(t.EffectiveTag())
	if len(t.VisualTag) > 0 {
		return name + " (manipulated)"
	}
	return name
}

// LengthDisplay renders the effective length of t.
func (t *Token) LengthDisplay() string {
	s := strconv.Itoa(t.EffectiveLength())
	if t.ManipulatedLength {
		return s + " (manipulated)"
	}
	return s
}

// ContentDisplay renders the content for humans. Constructed and
// encapsulating nodes render their element count. Content that does not
// decode as its universal type falls back to hex.
func (t *Token) ContentDisplay() string {
	if t.Constructed() || t.Encapsulating() {
		return fmt.Sprintf("(%d elements)", len(t.Children))
	}
	id, _, err := ParseIdentifier(t.EffectiveTag())
	if err != nil || id.Class != ClassUniversal {
		return hexOrText(t.Data)
	}
	if s, ok := displayUniversal(id.Number, t.Data); ok {
		return s
	}
	return strings.ToUpper(hex.EncodeToString(t.Data))
}

func displayUniversal(number uint64, data []byte) (string, bool) {
	switch number {
	case TagBoolean:
		if len(data) != 1 {
			return "", false
		}
		if data[0] == 0 {
			return "FALSE", true
		}
		return "TRUE", true
	case TagInteger, TagEnumerated:
		if len(data) == 0 {
			return "", false
		}
		return signedInt(data).String(), true
	case TagBitString:
		return bitString(data)
	case TagNull:
		return "", len(data) == 0
	case TagOID:
		s, err := oid.Decode(data)
		if err != nil {
			return "", false
		}
		if name := oid.Name(s); name != "" {
			return s + " (" + name + ")", true
		}
		return s, true
	case TagReal:
		if len(data) != 8 {
			return "", false
		}
		f := math.Float64frombits(binary.BigEndian.Uint64(data))
		return strconv.FormatFloat(f, 'g', -1, 64), true
	case TagUTCTime:
		return timeString(data, "060102150405Z0700", "0601021504Z0700")
	case TagGeneralizedTime:
		return timeString(data, "20060102150405Z0700", "20060102150405.999999999Z0700")
	case TagBMPString:
		return decodeWith(bmpDecoder, data)
	case TagUniversalString:
		return decodeWith(universalDecoder, data)
	case TagT61String, TagVideotexString:
		return decodeWith(t61Decoder, data)
	case TagUTF8String, TagNumericString, TagPrintableString, TagIA5String,
		TagVisibleString, TagGraphicString, TagGeneralString, TagObjectDescriptor,
		TagTime, TagDate, TagTimeOfDay, TagDateTime, TagDuration:
		if !utf8.Valid(data) {
			return "", false
		}
		return string(data), true
	}
	return "", false
}

// signedInt decodes big-endian two's complement.
func signedInt(data []byte) *big.Int {
	n := new(big.Int).SetBytes(data)
	if data[0]&0x80 != 0 {
		n.Sub(n, new(big.Int).Lsh(big.NewInt(1), uint(len(data))*8))
	}
	return n
}

func bitString(data []byte) (string, bool) {
	if len(data) == 0 || data[0] > 7 || (len(data) == 1 && data[0] != 0) {
		return "", false
	}
	bits := (len(data)-1)*8 - int(data[0])
	var sb strings.Builder
	sb.Grow(bits)
	for i := range bits {
		if data[1+i/8]&(0x80>>(i%8)) != 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String(), true
}

func timeString(data []byte, layouts ...string) (string, bool) {
	for _, layout := range layouts {
		if ts, err := time.Parse(layout, string(data)); err == nil {
			return ts.UTC().Format("2006-01-02 15:04:05 MST"), true
		}
	}
	return "", false
}

func decodeWith(enc encoding.Encoding, data []byte) (string, bool) {
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", false
	}
	return string(out), true
}

// hexOrText shows printable UTF-8 as text and anything else as hex.
func hexOrText(data []byte) string {
	if len(data) > 0 && utf8.Valid(data) && strings.IndexFunc(string(data), isControl) < 0 {
		return string(data)
	}
	return strings.ToUpper(hex.EncodeToString(data))
}

func isControl(r rune) bool {
	return r < 0x20 || r == 0x7F
}
