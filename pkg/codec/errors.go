package codec

import "errors"

var (
	ErrDecode         = errors.New("codec: malformed base64url input")
	ErrSegmentTooLong = errors.New("codec: segment exceeds maximum length")
	ErrSerialize      = errors.New("codec: value cannot be serialized")
	ErrParse          = errors.New("codec: malformed json input")
)
