package execx

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// DecodeText validates raw captured tool output as UTF-8 and returns it as a
// string. Invalid byte sequences yield encoding.ErrInvalidUTF8 so callers
// can distinguish decode failures from launch failures.
func DecodeText(raw []byte) (string, error) {
	decoded, _, err := transform.Bytes(encoding.UTF8Validator, raw)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}
