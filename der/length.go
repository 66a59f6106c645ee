package der

import "math"

// maxLengthOctets bounds the long form so lengths always fit an int.
const maxLengthOctets = 7

// indefiniteLength is the sentinel parseLength returns for the 0x80 form.
const indefiniteLength = -1

// parseLength decodes a length field at the start of b. It returns the
// content length (or indefiniteLength) and the octets consumed.
func parseLength(b []byte) (length, n int, err error) {
	if len(b) == 0 {
		return 0, 0, ErrIncomplete
	}
	first := b[0]
	switch {
	case first < 0x80:
		return int(first), 1, nil
	case first == 0x80:
		return indefiniteLength, 1, nil
	case first == 0xFF:
		return 0, 0, ErrLength // reserved, X.690 8.1.3.5
	}

	count := int(first & 0x7F)
	if count > maxLengthOctets {
		return 0, 0, ErrLength
	}
	if len(b) < 1+count {
		return 0, 0, ErrIncomplete
	}
	var v uint64
	for _, c := range b[1 : 1+count] {
		v = v<<8 | uint64(c)
	}
	if v > uint64(math.MaxInt) {
		return 0, 0, ErrLength
	}
	return int(v), 1 + count, nil
}

// appendLength writes the minimal definite length encoding of n.
func appendLength(b []byte, n int) []byte {
	if n < 0x80 {
		return append(b, byte(n))
	}
	var tmp [8]byte
	i := len(tmp)
	for v := uint64(n); v > 0; v >>= 8 {
		i--
		tmp[i] = byte(v)
	}
	b = append(b, 0x80|byte(len(tmp)-i))
	return append(b, tmp[i:]...)
}

// lengthSize returns the number of octets appendLength writes for n.
func lengthSize(n int) int {
	if n < 0x80 {
		return 1
	}
	size := 1
	for v := uint64(n); v > 0; v >>= 8 {
		size++
	}
	return size
}
