// Package oid converts ASN.1 OBJECT IDENTIFIER values between their dotted
// decimal text form and BER content octets.
package oid

import (
	"errors"
	"strconv"
	"strings"
)

var (
	// ErrEmpty indicates zero content octets.
	ErrEmpty = errors.New("oid: empty encoding")
	// ErrTruncated indicates the final subidentifier has its continuation bit set.
	ErrTruncated = errors.New("oid: truncated subidentifier")
	// ErrOverflow indicates a subidentifier that does not fit in 64 bits.
	ErrOverflow = errors.New("oid: subidentifier overflow")
)

// minArcs is the minimum number of dotted components Encode accepts.
const minArcs = 3

// Encode converts a dotted decimal string such as "1.2.840.113549" into BER
// content octets.
//
// Each component must parse as a non-negative 32-bit integer and at least
// three components are required. The first two components are combined as
// 40*c0+c1. Every subidentifier is written base-128, big-endian, with the
// continuation bit set on all but its last octet.
//
// A nil result signals invalid input.
func Encode(s string) []byte {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) < minArcs {
		return nil
	}

	arcs := make([]uint64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseUint(p, 10, 32)
		if err != nil {
			return nil
		}
		arcs = append(arcs, v)
	}

	out := make([]byte, 0, len(arcs)+4)
	out = appendBase128(out, 40*arcs[0]+arcs[1])
	for _, arc := range arcs[2:] {
		out = appendBase128(out, arc)
	}
	return out
}

// appendBase128 writes v as a base-128 group with continuation bits.
func appendBase128(b []byte, v uint64) []byte {
	if v < 0x80 {
		return append(b, byte(v))
	}
	var stack [10]byte
	n := 0
	for v > 0 {
		stack[n] = byte(v & 0x7F)
		v >>= 7
		n++
	}
	for i := n - 1; i >= 0; i-- {
		if i == 0 {
			b = append(b, stack[i])
		} else {
			b = append(b, stack[i]|0x80)
		}
	}
	return b
}

// Decode converts BER content octets back into dotted decimal form.
func Decode(b []byte) (string, error) {
	if len(b) == 0 {
		return "", ErrEmpty
	}

	var sb strings.Builder
	var v uint64
	first := true
	for i, c := range b {
		if v > (1<<57)-1 {
			return "", ErrOverflow
		}
		v = v<<7 | uint64(c&0x7F)
		if c&0x80 != 0 {
			if i == len(b)-1 {
				return "", ErrTruncated
			}
			continue
		}

		if first {
			// X.690 8.19.4: the first subidentifier folds the first two arcs.
			var c0, c1 uint64
			switch {
			case v < 40:
				c0, c1 = 0, v
			case v < 80:
				c0, c1 = 1, v-40
			default:
				c0, c1 = 2, v-80
			}
			sb.WriteString(strconv.FormatUint(c0, 10))
			sb.WriteByte('.')
			sb.WriteString(strconv.FormatUint(c1, 10))
			first = false
		} else {
			sb.WriteByte('.')
			sb.WriteString(strconv.FormatUint(v, 10))
		}
		v = 0
	}
	return sb.String(), nil
}
