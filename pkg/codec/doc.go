// Package codec implements the canonical encoding used by token segments.
//
// Two layers are provided:
//
//   - Encode / Decode convert raw bytes to and from unpadded base64url text
//     (RFC 4648 section 5: "-" and "_" instead of "+" and "/", no "=" padding).
//   - Serialize / Deserialize convert Go values to and from compact JSON.
//
// The base64url alphabet is part of the wire format: tokens issued by any
// compatible implementation decode with this package and vice versa. Decode
// accepts exactly one text form per byte string (no padding, no line breaks,
// zero trailing bits) and refuses input longer than MaxSegmentLength before
// doing any work so that an attacker cannot make a verifier decode an
// arbitrarily large blob.
//
// # Usage
//
//	import "github.com/dmitrymomot/jwtkit/pkg/codec"
//
//	raw, err := codec.Serialize(map[string]any{"sub": "42"})
//	if err != nil {
//	    // handle error
//	}
//	segment := codec.Encode(raw) // eyJzdWIiOiI0MiJ9
//
//	data, err := codec.Decode(segment)
//	var claims map[string]any
//	err = codec.Deserialize(data, &claims)
//
// # Error Handling
//
// Failures wrap one of the sentinel errors ErrDecode, ErrSegmentTooLong,
// ErrSerialize or ErrParse and can be matched with errors.Is.
package codec
