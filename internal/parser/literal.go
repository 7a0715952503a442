package parser

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"
)

func decodeNumber(text string) (float64, error) {
	if len(text) > 2 && (text[:2] == "0x" || text[:2] == "0X") {
		v, err := strconv.ParseUint(text[2:], 16, 64)
		if err != nil {
			return 0, err
		}
		return float64(v), nil
	}
	return strconv.ParseFloat(strings.TrimSuffix(text, "."), 64)
}

var errBadString = errors.New("malformed string literal")

// decodeString evaluates a quoted string literal, resolving escapes.
func decodeString(raw string) (string, error) {
	if len(raw) < 2 {
		return "", errBadString
	}
	quote := raw[0]
	if raw[len(raw)-1] != quote {
		return "", errBadString
	}
	body := raw[1 : len(raw)-1]

	var sb strings.Builder
	sb.Grow(len(body))
	for i := 0; i < len(body); {
		ch := body[i]
		if ch != '\\' {
			sb.WriteByte(ch)
			i++
			continue
		}
		if i+1 >= len(body) {
			return "", errBadString
		}
		esc := body[i+1]
		i += 2
		switch esc {
		case 'n':
			sb.WriteByte('\n')
		case 't':
			sb.WriteByte('\t')
		case 'r':
			sb.WriteByte('\r')
		case 'b':
			sb.WriteByte('\b')
		case 'f':
			sb.WriteByte('\f')
		case 'v':
			sb.WriteByte('\v')
		case '0':
			sb.WriteByte(0)
		case 'x':
			if i+2 > len(body) {
				return "", errBadString
			}
			v, err := strconv.ParseUint(body[i:i+2], 16, 8)
			if err != nil {
				return "", errBadString
			}
			// \xHH names code point U+00HH, which is multi-byte UTF-8
			// above 0x7f.
			sb.WriteRune(rune(v))
			i += 2
		case 'u':
			if i+4 > len(body) {
				return "", errBadString
			}
			v, err := strconv.ParseUint(body[i:i+4], 16, 32)
			if err != nil {
				return "", errBadString
			}
			sb.WriteRune(rune(v))
			i += 4
		case '\n':
			// Line continuation: escaped newline is dropped.
		default:
			r, size := utf8.DecodeRuneInString(body[i-1:])
			sb.WriteRune(r)
			i += size - 1
		}
	}
	return sb.String(), nil
}
