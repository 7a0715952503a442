package sourcemap

import "strings"

const base64Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

// encodeVLQ appends the base64 VLQ form of n to sb (Source Map v3 wire
// encoding: sign bit in the lowest position, 5 value bits per digit).
func encodeVLQ(sb *strings.Builder, n int32) {
	v := uint32(n) << 1
	if n < 0 {
		v = uint32(-n)<<1 | 1
	}
	for {
		digit := v & 31
		v >>= 5
		if v > 0 {
			digit |= 32
		}
		sb.WriteByte(base64Alphabet[digit])
		if v == 0 {
			return
		}
	}
}
