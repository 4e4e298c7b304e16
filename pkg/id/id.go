package id

import (
	"encoding/json"
	"fmt"
	"time"
)

// Field widths and positions of the packed identifier.
const (
	TimestampBits = 42
	SequenceBits  = 12
	RandomBits    = 10

	SequenceShift  = RandomBits
	TimestampShift = SequenceBits + RandomBits

	TimestampMask uint64 = (1 << TimestampBits) - 1 // 0x3FF_FFFF_FFFF
	SequenceMask  uint64 = (1 << SequenceBits) - 1
	RandomMask    uint64 = (1 << RandomBits) - 1

	// MaxSequence is the last sequence value available within one millisecond.
	MaxSequence = SequenceMask
)

// ID is a 64-bit identifier: [42 bits timestamp][12 bits sequence][10 bits random].
type ID uint64

// Pack assembles an ID from its fields. Each field is masked to its width.
func Pack(timestampMS uint64, sequence uint16, random uint16) ID {
	return ID((timestampMS&TimestampMask)<<TimestampShift |
		(uint64(sequence)&SequenceMask)<<SequenceShift |
		uint64(random)&RandomMask)
}

// Split returns the timestamp, sequence and random fields without loss.
func (i ID) Split() (uint64, uint16, uint16) {
	return i.Timestamp(), i.Sequence(), i.Random()
}

// Timestamp returns the millisecond field.
func (i ID) Timestamp() uint64 { return uint64(i) >> TimestampShift }

// Sequence returns the per-millisecond counter.
func (i ID) Sequence() uint16 { return uint16((uint64(i) >> SequenceShift) & SequenceMask) }

// Random returns the random field.
func (i ID) Random() uint16 { return uint16(uint64(i) & RandomMask) }

// Uint64 returns the raw value.
func (i ID) Uint64() uint64 { return uint64(i) }

// Time returns the UTC wall clock time carried by the timestamp field.
func (i ID) Time() time.Time {
	return time.UnixMilli(int64(i.Timestamp())).UTC()
}

// String returns the 11-character encoding.
func (i ID) String() string { return Encode(uint64(i)) }

// Compare returns -1, 0, 1 based on numeric order, which is also the lexical
// order of the encoded form.
func (i ID) Compare(other ID) int {
	switch {
	case i < other:
		return -1
	case i > other:
		return 1
	}
	return 0
}

// Parse decodes an 11-character token into an ID.
func Parse(s string) (ID, error) {
	v, err := Decode(s)
	if err != nil {
		return 0, err
	}
	return ID(v), nil
}

// MarshalText implements encoding.TextMarshaler.
func (i ID) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (i *ID) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*i = v
	return nil
}

// MarshalJSON encodes the ID as its 11-character string.
func (i ID) MarshalJSON() ([]byte, error) {
	return json.Marshal(i.String())
}

// UnmarshalJSON accepts the 11-character string form.
func (i *ID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("id must be a JSON string: %w", err)
	}
	return i.UnmarshalText([]byte(s))
}
