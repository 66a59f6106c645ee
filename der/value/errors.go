package value

import (
	"errors"

	"github.com/joshuapare/derkit/pkg/types"
)

// Expected input formats, shown to the user alongside encoding errors.
const (
	FormatBoolean       = "an integer between 0 and 255"
	FormatInteger       = "a signed 64-bit decimal integer"
	FormatBitString     = "a string of 0 and 1 characters"
	FormatHex           = "hex digits, optionally prefixed with 0x"
	FormatNull          = "an empty value"
	FormatOID           = "a dotted OID with at least three components (e.g. 1.2.840.113549)"
	FormatReal          = "a decimal floating point number"
	FormatRFC3339       = "ISO 8601 (e.g. 2025-02-12T14:30:00Z)"
	FormatLegacyTime    = "%Y-%m-%d %H:%M:%S (e.g. 2025-01-30 11:21:43)"
	FormatUTCTimeRange  = "a year between 1950 and 2049"
	FormatDuration      = "an ISO 8601 duration (e.g. P1Y2M3DT4H5M6S)"
	FormatConstructed   = "an empty value; add child nodes instead"
	maxDurationTextSize = 0xFF
)

func encodeError(kind types.EncodeKind, msg, expected string, cause error) error {
	return &types.Error{
		Kind:     types.ErrKindEncoding,
		Encode:   kind,
		Msg:      msg,
		Expected: expected,
		Err:      cause,
	}
}

// IsEncodeKind reports whether err is an encoding error of the given family.
func IsEncodeKind(err error, kind types.EncodeKind) bool {
	var e *types.Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == types.ErrKindEncoding && e.Encode == kind
}
