package value

import (
	"time"

	"github.com/joshuapare/derkit/pkg/types"
)

const (
	legacyInputLayout     = "2006-01-02 15:04:05"
	utcTimeLayout         = "060102150405Z"
	generalizedTimeLayout = "20060102150405Z"
)

func encodeRFC3339Time(text string) ([]byte, error) {
	t, err := time.Parse(time.RFC3339, text)
	if err != nil {
		return nil, encodeError(types.EncodeInvalidTimestamp, "invalid ISO 8601 format", FormatRFC3339, err)
	}
	return []byte(t.UTC().Format(generalizedTimeLayout)), nil
}

func parseLegacy(text string) (time.Time, error) {
	t, err := time.ParseInLocation(legacyInputLayout, text, time.UTC)
	if err != nil {
		return time.Time{}, encodeError(types.EncodeInvalidTimestamp, "invalid date format", FormatLegacyTime, err)
	}
	return t, nil
}

// encodeUTCTime renders YYMMDDHHMMSSZ. RFC 5280 4.1.2.5.1 restricts the
// two-digit year to 1950..2049.
func encodeUTCTime(text string) ([]byte, error) {
	t, err := parseLegacy(text)
	if err != nil {
		return nil, err
	}
	if y := t.Year(); y < 1950 || y > 2049 {
		return nil, encodeError(types.EncodeInvalidTimestamp, "year not representable as UTCTime", FormatUTCTimeRange, nil)
	}
	return []byte(t.Format(utcTimeLayout)), nil
}

func encodeGeneralizedTime(text string) ([]byte, error) {
	t, err := parseLegacy(text)
	if err != nil {
		return nil, err
	}
	return []byte(t.Format(generalizedTimeLayout)), nil
}
