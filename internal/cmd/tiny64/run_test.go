package tiny64cmd

import (
	"bytes"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/rzbill/tiny64/pkg/id"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type harness struct {
	out, err   bytes.Buffer
	clockCalls atomic.Int64
	ms         atomic.Int64
	gen        *id.Generator
}

func newHarness(ms int64) *harness {
	h := &harness{}
	h.ms.Store(ms)
	h.gen = id.NewGenerator(id.WithClock(func() int64 {
		h.clockCalls.Add(1)
		return h.ms.Load()
	}))
	return h
}

func (h *harness) run(args ...string) int {
	return Main(args, Options{Out: &h.out, Err: &h.err, Generator: h.gen})
}

func TestMainNoArgsPrintsOneID(t *testing.T) {
	h := newHarness(1700000000000)

	code := h.run()

	require.Equal(t, ExitOK, code)
	assert.Empty(t, h.err.String())
	line := h.out.String()
	require.True(t, strings.HasSuffix(line, "\n"))
	s := strings.TrimSuffix(line, "\n")
	require.Len(t, s, id.EncodedLen)

	v, err := id.Parse(s)
	require.NoError(t, err)
	assert.Equal(t, uint64(1700000000000), v.Timestamp())
}

func TestMainHelp(t *testing.T) {
	for _, arg := range []string{"-h", "--help"} {
		t.Run(arg, func(t *testing.T) {
			h := newHarness(1)

			code := h.run(arg)

			assert.Equal(t, ExitOK, code)
			assert.Equal(t, helpText, h.out.String())
			assert.Empty(t, h.err.String())
			assert.Zero(t, h.clockCalls.Load(), "help must not generate an id")
		})
	}
}

func TestMainUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"positional argument", []string{"extra"}, `unexpected argument "extra"`},
		{"unknown flag", []string{"--count=3"}, "unknown flag"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(1)

			code := h.run(tt.args...)

			assert.Equal(t, ExitUsage, code)
			assert.Empty(t, h.out.String())
			assert.Contains(t, h.err.String(), tt.want)
			assert.Zero(t, h.clockCalls.Load())
		})
	}
}

func TestMainClockBeforeEpoch(t *testing.T) {
	h := newHarness(-1)

	code := h.run()

	assert.Equal(t, ExitError, code)
	assert.Empty(t, h.out.String())
	assert.Contains(t, h.err.String(), "failed to generate id")
	assert.Contains(t, h.err.String(), id.ErrClockBeforeEpoch.Error())
	assert.Contains(t, h.err.String(), "component=tiny64")
}

func TestMainSharedGeneratorIsOrdered(t *testing.T) {
	h := newHarness(1700000000000)

	require.Equal(t, ExitOK, h.run())
	require.Equal(t, ExitOK, h.run())

	lines := strings.Split(strings.TrimSpace(h.out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Less(t, lines[0], lines[1])
}

func TestMainDefaultGenerator(t *testing.T) {
	var out, errOut bytes.Buffer
	code := Main(nil, Options{Out: &out, Err: &errOut})

	require.Equal(t, ExitOK, code)
	assert.Len(t, strings.TrimSpace(out.String()), id.EncodedLen)
}
