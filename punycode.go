package urlkit

import "strings"

// Bootstring parameters from RFC 3492 §5.
const (
	puBase        = 36
	puTMin        = 1
	puTMax        = 26
	puSkew        = 38
	puDamp        = 700
	puInitialBias = 72
	puInitialN    = 128
)

const puDelimiter = '-'

func puAdapt(delta, numPoints int, firstTime bool) int {
	if firstTime {
		delta /= puDamp
	} else {
		delta /= 2
	}
	delta += delta / numPoints
	k := 0
	for delta > ((puBase-puTMin)*puTMax)/2 {
		delta /= puBase - puTMin
		k += puBase
	}
	return k + (puBase-puTMin+1)*delta/(delta+puSkew)
}

// digitToBasic returns the ASCII code point for a bootstring digit value
// (0-25 -> a-z, 26-35 -> 0-9).
func digitToBasic(digit int) byte {
	if digit < 26 {
		return byte('a' + digit)
	}
	return byte('0' + (digit - 26))
}

// basicToDigit is the inverse of digitToBasic; it returns -1 for bytes
// that are not valid bootstring digits.
func basicToDigit(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c-'0') + 26
	case 'a' <= c && c <= 'z':
		return int(c - 'a')
	case 'A' <= c && c <= 'Z':
		return int(c - 'A')
	default:
		return -1
	}
}

// punycodeEncode implements RFC 3492 §6.3, encoding a sequence of Unicode
// code points into the ASCII bootstring that follows "xn--" (or, for a
// bare call, the full Punycode payload without the ACE prefix).
func punycodeEncode(input []rune) (string, error) {
	var out strings.Builder

	var basic []rune
	for _, r := range input {
		if r < 0x80 {
			basic = append(basic, r)
		}
	}
	b := len(basic)
	for _, r := range basic {
		out.WriteRune(r)
	}
	if b > 0 {
		out.WriteByte(puDelimiter)
	}

	n := puInitialN
	delta := 0
	bias := puInitialBias
	h := b

	total := len(input)
	for h < total {
		m := maxRuneAtLeast(input, n)
		if m-n > (maxInt-delta)/(h+1) {
			return "", errPunycodeOverflow
		}
		delta += (m - n) * (h + 1)
		n = m

		for _, r := range input {
			if int(r) < n {
				delta++
				if delta < 0 {
					return "", errPunycodeOverflow
				}
			}
			if int(r) == n {
				q := delta
				for k := puBase; ; k += puBase {
					var t int
					switch {
					case k <= bias:
						t = puTMin
					case k >= bias+puTMax:
						t = puTMax
					default:
						t = k - bias
					}
					if q < t {
						break
					}
					out.WriteByte(digitToBasic(t + (q-t)%(puBase-t)))
					q = (q - t) / (puBase - t)
				}
				out.WriteByte(digitToBasic(q))
				bias = puAdapt(delta, h+1, h == b)
				delta = 0
				h++
			}
		}
		delta++
		n++
	}

	return out.String(), nil
}

const maxInt = int(^uint(0) >> 1)

func maxRuneAtLeast(input []rune, floor int) int {
	m := maxInt
	for _, r := range input {
		if int(r) >= floor && int(r) < m {
			m = int(r)
		}
	}
	return m
}

// punycodeDecode implements RFC 3492 §6.2, decoding the ASCII bootstring
// that follows "xn--" back into Unicode code points.
func punycodeDecode(input string) ([]rune, error) {
	n := puInitialN
	i := 0
	bias := puInitialBias

	var output []rune

	delim := strings.LastIndexByte(input, puDelimiter)
	basic := ""
	rest := input
	if delim >= 0 {
		basic = input[:delim]
		rest = input[delim+1:]
	}
	for _, r := range basic {
		output = append(output, r)
	}

	pos := 0
	for pos < len(rest) {
		oldI := i
		w := 1
		for k := puBase; ; k += puBase {
			if pos >= len(rest) {
				return nil, errPunycodeBadInput
			}
			digit := basicToDigit(rest[pos])
			pos++
			if digit < 0 {
				return nil, errPunycodeBadInput
			}
			if digit > (maxInt-i)/w {
				return nil, errPunycodeOverflow
			}
			i += digit * w

			var t int
			switch {
			case k <= bias:
				t = puTMin
			case k >= bias+puTMax:
				t = puTMax
			default:
				t = k - bias
			}
			if digit < t {
				break
			}
			if w > maxInt/(puBase-t) {
				return nil, errPunycodeOverflow
			}
			w *= puBase - t
		}

		numPoints := len(output) + 1
		bias = puAdapt(i-oldI, numPoints, oldI == 0)

		if i/numPoints > maxInt-n {
			return nil, errPunycodeOverflow
		}
		n += i / numPoints
		i %= numPoints

		if n > 0x10FFFF {
			return nil, errPunycodeBadInput
		}

		// Insert the decoded code point at position i.
		output = append(output, 0)
		copy(output[i+1:], output[i:])
		output[i] = rune(n)
		i++
	}

	return output, nil
}
