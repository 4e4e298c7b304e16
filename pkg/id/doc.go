// Package id provides tiny64: a 64-bit, time-sortable identifier rendered as
// an 11-character URL-safe token.
//
// # Format
//
// The ID is a uint64 with three packed fields, most significant first:
//
//	[ 42 bits: timestamp (ms since Unix epoch) ]
//	[ 12 bits: sequence number                ]
//	[ 10 bits: random                         ]
//
// The textual form is the 8 big-endian bytes of the value in unpadded base64
// over an alphabet whose symbols are in ascending ASCII order, so comparing
// two encoded IDs as strings gives the same answer as comparing the integers.
//
// # Monotonicity
//
// A Generator is one sequence context. Within a context:
//   - IDs in the same millisecond are ordered by the sequence field.
//   - If the sequence would overflow within a millisecond, the generator waits
//     for the clock to advance before emitting the next ID.
//   - If the system clock regresses the sequence is reset and the timestamp
//     field follows the clock. Rollback is neither detected nor corrected, so
//     IDs emitted after a regression can sort before earlier ones.
//
// Independent generators (other processes, or other Generator values) do not
// coordinate. Two IDs from different contexts with the same timestamp and
// sequence are told apart only by the random field, a 1 in 1024 chance of
// collision.
//
// Usage
//
//	s, err := id.Generate()         // process default context
//
//	g := id.NewGenerator()
//	v, err := g.Next()               // typed ID
//	ts := v.Time()
//	back, err := id.Parse(v.String())
package id
