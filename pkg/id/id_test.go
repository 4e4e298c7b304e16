package id

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackSplit(t *testing.T) {
	tests := []struct {
		name string
		ts   uint64
		seq  uint16
		rnd  uint16
	}{
		{"zero", 0, 0, 0},
		{"all max", TimestampMask, uint16(MaxSequence), uint16(RandomMask)},
		{"timestamp only", 1700000000000, 0, 0},
		{"sequence only", 0, 4095, 0},
		{"random only", 0, 0, 1023},
		{"mixed", 1700000000000, 5, 7},
		{"low bits", 1, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Pack(tt.ts, tt.seq, tt.rnd)
			ts, seq, rnd := v.Split()
			assert.Equal(t, tt.ts, ts)
			assert.Equal(t, tt.seq, seq)
			assert.Equal(t, tt.rnd, rnd)
			assert.Equal(t, tt.ts<<22|uint64(tt.seq)<<10|uint64(tt.rnd), v.Uint64())
		})
	}
}

func TestPackSweep(t *testing.T) {
	for _, ts := range []uint64{0, 1, 1 << 20, 1<<41 + 3, TimestampMask} {
		for seq := uint16(0); seq < 4096; seq += 273 {
			for rnd := uint16(0); rnd < 1024; rnd += 97 {
				gotTS, gotSeq, gotRnd := Pack(ts, seq, rnd).Split()
				if gotTS != ts || gotSeq != seq || gotRnd != rnd {
					t.Fatalf("Pack(%d,%d,%d) split to (%d,%d,%d)", ts, seq, rnd, gotTS, gotSeq, gotRnd)
				}
			}
		}
	}
}

func TestPackMasksOversizedFields(t *testing.T) {
	v := Pack(1<<TimestampBits|9, 1<<SequenceBits|3, 1<<RandomBits|2)
	assert.Equal(t, uint64(9), v.Timestamp())
	assert.Equal(t, uint16(3), v.Sequence())
	assert.Equal(t, uint16(2), v.Random())
}

func TestIDTime(t *testing.T) {
	when := time.Date(2024, 5, 6, 7, 8, 9, 123_000_000, time.UTC)
	v := Pack(uint64(when.UnixMilli()), 1, 2)
	assert.True(t, when.Equal(v.Time()), "got %s", v.Time())
}

func TestIDCompare(t *testing.T) {
	a := Pack(1000, 0, 1023)
	b := Pack(1000, 1, 0)
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(a))
	assert.Less(t, a.String(), b.String())
}

func TestParse(t *testing.T) {
	v := Pack(1700000000000, 5, 7)
	got, err := Parse(v.String())
	require.NoError(t, err)
	assert.Equal(t, v, got)

	_, err = Parse("not-an-id")
	assert.True(t, errors.Is(err, ErrInvalidEncoding))
}

func TestIDJSON(t *testing.T) {
	type doc struct {
		ID ID `json:"id"`
	}
	in := doc{ID: Pack(1700000000000, 5, 7)}
	b, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"NjEtLV--4-R"}`, string(b))

	var out doc
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Equal(t, in, out)

	assert.Error(t, json.Unmarshal([]byte(`{"id":12}`), &out))
	assert.Error(t, json.Unmarshal([]byte(`{"id":"short"}`), &out))
}
