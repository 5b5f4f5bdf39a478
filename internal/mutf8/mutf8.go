// Package mutf8 implements the modified UTF-8 encoding that NBT inherits
// from Java's DataOutput.writeUTF. It differs from standard UTF-8 in two
// ways: U+0000 is written as the two-byte sequence C0 80 (so encoded strings
// never contain a raw NUL), and characters above U+FFFF are written as a
// CESU-8 style pair of 3-byte-encoded UTF-16 surrogates instead of one
// 4-byte sequence.
//
// Tag names and string payloads on the wire are opaque bytes to the decoder;
// this package is for display layers that want readable text. Decoding is
// lenient: malformed sequences become U+FFFD rather than errors.
package mutf8

import (
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// MUTF8 is the modified UTF-8 encoding. It satisfies x/text's
// encoding.Encoding, so the usual decoder/encoder call shapes apply:
//
//	plain, err := mutf8.MUTF8.NewDecoder().Bytes(raw)
var MUTF8 encoding.Encoding = mutf8Encoding{}

type mutf8Encoding struct{}

func (mutf8Encoding) NewDecoder() *encoding.Decoder {
	return &encoding.Decoder{Transformer: decoder{}}
}

func (mutf8Encoding) NewEncoder() *encoding.Encoder {
	return &encoding.Encoder{Transformer: encoder{}}
}

// DecodeString converts modified UTF-8 bytes into a UTF-8 string for
// display. Bytes that do not form valid modified UTF-8 decode to U+FFFD.
func DecodeString(b []byte) string {
	// Fast path: ASCII is identical in both encodings.
	if isASCII(b) {
		return string(b)
	}
	out, err := MUTF8.NewDecoder().Bytes(b)
	if err != nil {
		return string(b)
	}
	return string(out)
}

// EncodeString converts a UTF-8 string into modified UTF-8 bytes.
func EncodeString(s string) []byte {
	if s == "" {
		return nil
	}
	out, err := MUTF8.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return []byte(s)
	}
	return out
}

// isASCII checks if all bytes in data are non-NUL ASCII (0x01-0x7F), the
// range where modified UTF-8 and UTF-8 coincide byte for byte.
func isASCII(data []byte) bool {
	for _, b := range data {
		if b == 0 || b >= 0x80 {
			return false
		}
	}
	return true
}

// decoder transforms modified UTF-8 into UTF-8.
type decoder struct{ transform.NopResetter }

func (decoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		var (
			r    rune
			size int
		)
		switch b0 := src[nSrc]; {
		case b0 < 0x80:
			// Raw NUL never appears in well-formed input, but decode it
			// anyway; display must not fail on arbitrary bytes.
			r, size = rune(b0), 1
		case b0&0xE0 == 0xC0:
			if nSrc+2 > len(src) {
				if !atEOF {
					return nDst, nSrc, transform.ErrShortSrc
				}
				r, size = utf8.RuneError, len(src)-nSrc
			} else if b1 := src[nSrc+1]; b1&0xC0 != 0x80 {
				r, size = utf8.RuneError, 1
			} else {
				r, size = rune(b0&0x1F)<<6|rune(b1&0x3F), 2
			}
		case b0&0xF0 == 0xE0:
			if nSrc+3 > len(src) {
				if !atEOF {
					return nDst, nSrc, transform.ErrShortSrc
				}
				r, size = utf8.RuneError, len(src)-nSrc
			} else if b1, b2 := src[nSrc+1], src[nSrc+2]; b1&0xC0 != 0x80 || b2&0xC0 != 0x80 {
				r, size = utf8.RuneError, 1
			} else {
				r = rune(b0&0x0F)<<12 | rune(b1&0x3F)<<6 | rune(b2&0x3F)
				size = 3
				if utf16.IsSurrogate(r) {
					r, size, err = pairSurrogate(src[nSrc:], r, atEOF)
					if err != nil {
						return nDst, nSrc, err
					}
				}
			}
		default:
			// 10xxxxxx continuation with no lead, or a 4-byte UTF-8 lead,
			// which modified UTF-8 never produces.
			r, size = utf8.RuneError, 1
		}

		if nDst+utf8.RuneLen(r) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += utf8.EncodeRune(dst[nDst:], r)
		nSrc += size
	}
	return nDst, nSrc, nil
}

// pairSurrogate resolves a 3-byte sequence that decoded to a UTF-16
// surrogate. A high surrogate followed by an encoded low surrogate combines
// into one supplementary rune consuming 6 bytes; anything else is a lone
// surrogate consuming 3.
func pairSurrogate(src []byte, hi rune, atEOF bool) (rune, int, error) {
	if hi >= 0xDC00 {
		return utf8.RuneError, 3, nil
	}
	if len(src) < 6 {
		if !atEOF {
			return 0, 0, transform.ErrShortSrc
		}
		return utf8.RuneError, 3, nil
	}
	b3, b4, b5 := src[3], src[4], src[5]
	if b3&0xF0 != 0xE0 || b4&0xC0 != 0x80 || b5&0xC0 != 0x80 {
		return utf8.RuneError, 3, nil
	}
	lo := rune(b3&0x0F)<<12 | rune(b4&0x3F)<<6 | rune(b5&0x3F)
	r := utf16.DecodeRune(hi, lo)
	if r == utf8.RuneError {
		return utf8.RuneError, 3, nil
	}
	return r, 6, nil
}

// encoder transforms UTF-8 into modified UTF-8.
type encoder struct{ transform.NopResetter }

func (encoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		r, size := utf8.DecodeRune(src[nSrc:])
		if r == utf8.RuneError && size == 1 {
			if !atEOF && !utf8.FullRune(src[nSrc:]) {
				return nDst, nSrc, transform.ErrShortSrc
			}
			// Invalid input byte: emit the replacement character.
		}

		var n int
		switch {
		case r == 0:
			n = 2
		case r < 0x80:
			n = 1
		case r < 0x800:
			n = 2
		case r < 0x10000:
			n = 3
		default:
			n = 6
		}
		if nDst+n > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}

		switch {
		case r == 0:
			dst[nDst] = 0xC0
			dst[nDst+1] = 0x80
		case r < 0x80:
			dst[nDst] = byte(r)
		case r < 0x800:
			dst[nDst] = 0xC0 | byte(r>>6)
			dst[nDst+1] = 0x80 | byte(r)&0x3F
		case r < 0x10000:
			putThreeByte(dst[nDst:], r)
		default:
			hi, lo := utf16.EncodeRune(r)
			putThreeByte(dst[nDst:], hi)
			putThreeByte(dst[nDst+3:], lo)
		}
		nDst += n
		nSrc += size
	}
	return nDst, nSrc, nil
}

func putThreeByte(b []byte, r rune) {
	b[0] = 0xE0 | byte(r>>12)
	b[1] = 0x80 | byte(r>>6)&0x3F
	b[2] = 0x80 | byte(r)&0x3F
}
