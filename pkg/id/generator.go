package id

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	logpkg "github.com/rzbill/tiny64/pkg/log"
)

// ErrClockBeforeEpoch is returned when the system clock reads earlier than
// 1970-01-01T00:00:00Z. No timestamp field can represent that, so the
// generator refuses rather than emitting a corrupt ID.
var ErrClockBeforeEpoch = errors.New("system clock is before the unix epoch")

// Generator produces monotonically increasing IDs for one sequence context.
// It is safe for concurrent use; callers sharing a Generator are serialized.
type Generator struct {
	mu       sync.Mutex
	lastMs   uint64
	sequence uint16

	nowMs     func() int64
	random    RandomSource
	spinSleep time.Duration
	logger    logpkg.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock replaces the millisecond clock. The default is time.Now().UnixMilli.
func WithClock(nowMs func() int64) Option {
	return func(g *Generator) {
		g.nowMs = nowMs
	}
}

// WithRandomSource replaces the source of the random field.
func WithRandomSource(rs RandomSource) Option {
	return func(g *Generator) {
		g.random = rs
	}
}

// WithSpinSleep makes the overflow wait sleep for d between clock samples
// instead of yielding. Zero keeps the busy spin.
func WithSpinSleep(d time.Duration) Option {
	return func(g *Generator) {
		g.spinSleep = d
	}
}

// WithLogger sets the logger used for overflow diagnostics.
func WithLogger(l logpkg.Logger) Option {
	return func(g *Generator) {
		g.logger = l
	}
}

// NewGenerator creates a Generator with state (0, 0).
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		nowMs:  func() int64 { return time.Now().UnixMilli() },
		random: NewHashSource(),
		logger: logpkg.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// NextID returns the next packed value for this context.
//
// Within one millisecond the sequence field increments. When it would wrap
// past MaxSequence the call blocks until the clock moves to a different
// millisecond; the wait has no timeout. A clock that moves backwards simply
// resets the sequence.
func (g *Generator) NextID() (uint64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	now, err := g.sampleMs()
	if err != nil {
		return 0, err
	}

	seq := uint16(0)
	if now == g.lastMs {
		seq = (g.sequence + 1) & uint16(SequenceMask)
		if seq == 0 {
			g.logger.Debug("sequence exhausted, waiting for next millisecond",
				logpkg.Uint64("ms", now))
			if now, err = g.waitNextMs(now); err != nil {
				return 0, err
			}
		}
	}

	g.lastMs = now
	g.sequence = seq

	return uint64(Pack(now, seq, g.random.Uint10())), nil
}

// Next returns NextID as an ID.
func (g *Generator) Next() (ID, error) {
	v, err := g.NextID()
	return ID(v), err
}

// Generate returns the encoded form of the next ID.
func (g *Generator) Generate() (string, error) {
	v, err := g.NextID()
	if err != nil {
		return "", err
	}
	return Encode(v), nil
}

func (g *Generator) sampleMs() (uint64, error) {
	ms := g.nowMs()
	if ms < 0 {
		return 0, fmt.Errorf("clock reads %d ms: %w", ms, ErrClockBeforeEpoch)
	}
	return uint64(ms), nil
}

// waitNextMs re-samples the clock until it reports a millisecond other than
// current.
func (g *Generator) waitNextMs(current uint64) (uint64, error) {
	for {
		if g.spinSleep > 0 {
			time.Sleep(g.spinSleep)
		} else {
			runtime.Gosched()
		}
		ms, err := g.sampleMs()
		if err != nil {
			return 0, err
		}
		if ms != current {
			return ms, nil
		}
	}
}

var defaultGenerator = NewGenerator()

// Generate returns one encoded ID from the process default context.
func Generate() (string, error) {
	return defaultGenerator.Generate()
}

// MustGenerate is Generate for callers that treat a pre-epoch clock as fatal.
func MustGenerate() string {
	s, err := Generate()
	if err != nil {
		panic(err)
	}
	return s
}

// NewID returns the next ID from the process default context.
func NewID() (ID, error) {
	return defaultGenerator.Next()
}
