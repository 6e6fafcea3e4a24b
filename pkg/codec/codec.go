package codec

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
)

// MaxSegmentLength caps the encoded size of a single segment (8 KiB).
const MaxSegmentLength = 8 << 10

// rawURL rejects non-zero trailing bits so every byte string has exactly one
// accepted encoding.
var rawURL = base64.RawURLEncoding.Strict()

// Encode returns data as unpadded base64url text.
func Encode(data []byte) string {
	return rawURL.EncodeToString(data)
}

// Decode parses unpadded base64url text. Padding and line breaks (which the
// standard decoder would silently skip) are rejected, so every byte string
// has exactly one accepted text form.
func Decode(s string) ([]byte, error) {
	if len(s) > MaxSegmentLength {
		return nil, ErrSegmentTooLong
	}
	if strings.ContainsAny(s, "=\r\n") {
		return nil, ErrDecode
	}

	data, err := rawURL.DecodeString(s)
	if err != nil {
		return nil, errors.Join(ErrDecode, err)
	}
	return data, nil
}

// Serialize returns the compact JSON encoding of v.
// Struct fields keep declaration order and map keys are sorted, so equal
// inputs always produce byte-identical output. HTML characters are not escaped.
func Serialize(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, errors.Join(ErrSerialize, err)
	}
	// Encoder terminates every value with a newline.
	return bytes.TrimSuffix(buf.Bytes(), []byte{'\n'}), nil
}

// Deserialize parses JSON data into v.
func Deserialize(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return errors.Join(ErrParse, err)
	}
	return nil
}

// EncodeValue serializes v and returns it as a base64url segment.
func EncodeValue(v any) (string, error) {
	data, err := Serialize(v)
	if err != nil {
		return "", err
	}
	return Encode(data), nil
}

// DecodeValue decodes a base64url segment and parses the JSON inside into v.
func DecodeValue(segment string, v any) error {
	data, err := Decode(segment)
	if err != nil {
		return err
	}
	return Deserialize(data, v)
}
