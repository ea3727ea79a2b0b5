package urlkit

import "strings"

const acePrefix = "xn--"

// encodeLabel implements spec.md §4.3 encode_label: a label that is
// already pure ASCII passes through unchanged, whether or not it
// already carries an "xn--" prefix (an already-ACE label re-encoding
// itself would break idempotence, per §8); anything else is
// Punycode-encoded and given the "xn--" prefix.
func encodeLabel(label string) (string, error) {
	if label == "" {
		return "", newError(PunycodeEncode, label, errLabelEmpty)
	}
	if isASCII(label) {
		if len(label) > 63 {
			return "", newError(PunycodeEncode, label, errLabelTooLong)
		}
		return label, nil
	}

	encoded, err := punycodeEncode([]rune(label))
	if err != nil {
		return "", newError(PunycodeEncode, label, err)
	}
	out := acePrefix + encoded
	if len(out) > 63 {
		return "", newError(PunycodeEncode, label, errLabelTooLong)
	}
	return out, nil
}

// decodeLabel implements spec.md §4.3 decode_label: a label without the
// "xn--" prefix passes through unchanged; otherwise the suffix is
// Punycode-decoded back to Unicode.
func decodeLabel(label string) (string, error) {
	if label == "" {
		return "", newError(PunycodeDecode, label, errLabelEmpty)
	}
	if !strings.HasPrefix(strings.ToLower(label), acePrefix) {
		return label, nil
	}
	runes, err := punycodeDecode(label[len(acePrefix):])
	if err != nil {
		return "", newError(PunycodeDecode, label, err)
	}
	return string(runes), nil
}

// punycodeHost applies encodeLabel to every dot-separated label of host
// and rejoins them, per spec.md §4.3 "Host-level operations".
func punycodeHost(host string) (string, error) {
	labels := strings.Split(host, ".")
	for i, label := range labels {
		if label == "" {
			return "", newError(PunycodeEncode, host, errLabelEmpty)
		}
		enc, err := encodeLabel(label)
		if err != nil {
			return "", err
		}
		labels[i] = enc
	}
	return strings.Join(labels, "."), nil
}

// unpunycodeHost applies decodeLabel to every dot-separated label of host
// and rejoins them.
func unpunycodeHost(host string) (string, error) {
	labels := strings.Split(host, ".")
	for i, label := range labels {
		if label == "" {
			return "", newError(PunycodeDecode, host, errLabelEmpty)
		}
		dec, err := decodeLabel(label)
		if err != nil {
			return "", err
		}
		labels[i] = dec
	}
	return strings.Join(labels, "."), nil
}
