package selection

import "unicode/utf16"

// maxHashChars is how much of the surrounding context feeds the hash.
const maxHashChars = 200

// ContextHash computes a 32-bit rolling hash over the first 200 UTF-16
// code units of the context: h = 31*h + unit, accumulated left to right,
// unsigned. Deterministic and order-sensitive, for cheap result
// de-duplication by callers.
func ContextHash(s string) uint32 {
	units := utf16.Encode([]rune(s))
	if len(units) > maxHashChars {
		units = units[:maxHashChars]
	}
	var h uint32
	for _, u := range units {
		h = 31*h + uint32(u)
	}
	return h
}
