package id

import (
	"encoding/base64"
	"encoding/binary"
	"errors"
	"fmt"
)

// Alphabet is the URL-safe base64 symbol set reordered by ASCII value, so
// fixed-length encodings sort the same way as the values they encode.
const Alphabet = "-0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ_abcdefghijklmnopqrstuvwxyz"

// EncodedLen is the length of every encoded ID.
const EncodedLen = 11

var ErrInvalidEncoding = errors.New("invalid tiny64 encoding")

// Raw base64 consumes 3 bytes per 4 symbols and expands the final 2 bytes of
// a uint64 into 3 symbols, the last carrying 2 zero bits.
var sortableEncoding = base64.NewEncoding(Alphabet).WithPadding(base64.NoPadding).Strict()

// Encode renders v as 11 characters from Alphabet. For a < b,
// Encode(a) < Encode(b).
func Encode(v uint64) string {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	return sortableEncoding.EncodeToString(b[:])
}

// Decode is the inverse of Encode. Tokens whose final symbol sets any of the
// unused low bits are rejected, so every accepted token round-trips exactly.
func Decode(s string) (uint64, error) {
	if len(s) != EncodedLen {
		return 0, fmt.Errorf("%q has length %d, want %d: %w", s, len(s), EncodedLen, ErrInvalidEncoding)
	}
	var b [8]byte
	n, err := sortableEncoding.Decode(b[:], []byte(s))
	if err != nil {
		return 0, fmt.Errorf("%q: %v: %w", s, err, ErrInvalidEncoding)
	}
	if n != len(b) {
		return 0, fmt.Errorf("%q decoded to %d bytes: %w", s, n, ErrInvalidEncoding)
	}
	return binary.BigEndian.Uint64(b[:]), nil
}
