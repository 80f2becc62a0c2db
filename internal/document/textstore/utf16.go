package textstore

import "unicode/utf16"

// EncodeUTF16 converts a string to UTF-16 code units.
func EncodeUTF16(s string) []uint16 {
	if s == "" {
		return nil
	}
	return utf16.Encode([]rune(s))
}

// DecodeUTF16 converts UTF-16 code units back to a string.
func DecodeUTF16(units []uint16) string {
	if len(units) == 0 {
		return ""
	}
	return string(utf16.Decode(units))
}

// UTF16Len returns the length of s in UTF-16 code units.
// Characters outside the BMP count as two units.
func UTF16Len(s string) int {
	n := 0
	for _, r := range s {
		if r >= 0x10000 {
			n += 2
		} else {
			n++
		}
	}
	return n
}

// IsHighSurrogate returns true if c is a UTF-16 high (leading) surrogate.
func IsHighSurrogate(c uint16) bool {
	return c >= 0xD800 && c < 0xDC00
}

// IsLowSurrogate returns true if c is a UTF-16 low (trailing) surrogate.
func IsLowSurrogate(c uint16) bool {
	return c >= 0xDC00 && c < 0xE000
}
