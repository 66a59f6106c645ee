package value

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/joshuapare/derkit/pkg/types"
)

// durationTag is the identifier of a universal DURATION (tag number 34) in
// high-tag-number form. It prefixes every encoded duration.
var durationTag = []byte{0x1F, 0x22}

var durationRe = regexp.MustCompile(`^P(?:(\d+)Y)?(?:(\d+)M)?(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?)?$`)

// EncodeDuration parses an ISO 8601 duration such as "P1Y2M3DT4H5M6S" and
// returns the identifier, a one-octet length and the canonical ASCII form.
//
// Zero components are dropped, and the T separator is emitted only when an
// hour, minute or second component remains.
func EncodeDuration(text string) ([]byte, error) {
	m := durationRe.FindStringSubmatch(text)
	if m == nil {
		return nil, encodeError(types.EncodeInvalidDuration, "invalid duration format", FormatDuration, nil)
	}

	var vals [6]uint64
	for i := range vals {
		if m[i+1] == "" {
			continue
		}
		v, err := strconv.ParseUint(m[i+1], 10, 64)
		if err != nil {
			return nil, encodeError(types.EncodeInvalidDuration, "duration component out of range", FormatDuration, err)
		}
		vals[i] = v
	}

	var sb strings.Builder
	appendComponent(&sb, vals[0], 'Y')
	appendComponent(&sb, vals[1], 'M')
	appendComponent(&sb, vals[2], 'D')
	if vals[3] > 0 || vals[4] > 0 || vals[5] > 0 {
		sb.WriteByte('T')
		appendComponent(&sb, vals[3], 'H')
		appendComponent(&sb, vals[4], 'M')
		appendComponent(&sb, vals[5], 'S')
	}

	rendered := sb.String()
	if len(rendered) > maxDurationTextSize {
		return nil, encodeError(types.EncodeInvalidDuration, "duration too long", FormatDuration, nil)
	}

	out := make([]byte, 0, len(durationTag)+1+len(rendered))
	out = append(out, durationTag...)
	out = append(out, byte(len(rendered)))
	out = append(out, rendered...)
	return out, nil
}

func appendComponent(sb *strings.Builder, v uint64, unit byte) {
	if v == 0 {
		return
	}
	sb.WriteString(strconv.FormatUint(v, 10))
	sb.WriteByte(unit)
}
