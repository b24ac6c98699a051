package feedback

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/rs/zerolog"
)

const (
	defaultSampleRate   = 10000
	defaultFeedbackRate = 5
)

var (
	ErrInvalidConfig = errors.New("feedback: invalid configuration")
	ErrNilDevice     = errors.New("feedback: reader and writer must not be nil")
)

// Config holds the loop timing and reduction settings.
type Config struct {
	// SampleRate is the acquisition rate in Hz.
	SampleRate float64
	// FeedbackRate is the number of feedback values written per second.
	FeedbackRate float64
	Reducer      Reducer
	Logger       zerolog.Logger
}

// SamplesPerBuffer returns the number of samples reduced per cycle,
// int(SampleRate / FeedbackRate).
func (c Config) SamplesPerBuffer() int {
	if c.FeedbackRate <= 0 {
		return 0
	}
	return int(c.SampleRate / c.FeedbackRate)
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns 10 kHz acquisition, 5 Hz feedback, [Mean]
// reduction and a disabled logger.
func DefaultConfig() Config {
	return Config{
		SampleRate:   defaultSampleRate,
		FeedbackRate: defaultFeedbackRate,
		Reducer:      Mean,
		Logger:       zerolog.Nop(),
	}
}

// WithSampleRate sets the acquisition rate in Hz.
func WithSampleRate(hz float64) Option {
	return func(c *Config) {
		if hz > 0 {
			c.SampleRate = hz
		}
	}
}

// WithFeedbackRate sets the number of feedback values per second.
func WithFeedbackRate(hz float64) Option {
	return func(c *Config) {
		if hz > 0 {
			c.FeedbackRate = hz
		}
	}
}

// WithReducer sets the buffer reduction. A nil reducer is ignored.
func WithReducer(r Reducer) Option {
	return func(c *Config) {
		if r != nil {
			c.Reducer = r
		}
	}
}

// WithLogger sets the logger used for cycle and error events.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Config) { c.Logger = l }
}

// Stats is a snapshot of loop progress.
type Stats struct {
	Cycles    uint64
	LastValue float64
}

// Loop couples one input channel to one output channel.
type Loop struct {
	in  Reader
	out Writer
	cfg Config
	buf []float64
	log zerolog.Logger

	mu    sync.Mutex
	stats Stats
}

// New creates a loop reading from in and writing to out.
func New(in Reader, out Writer, opts ...Option) (*Loop, error) {
	if in == nil || out == nil {
		return nil, ErrNilDevice
	}

	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	n := cfg.SamplesPerBuffer()
	if n < 1 || math.IsInf(cfg.SampleRate, 0) || math.IsNaN(cfg.SampleRate) {
		return nil, fmt.Errorf("%w: sample rate %g Hz, feedback rate %g Hz gives %d samples per buffer",
			ErrInvalidConfig, cfg.SampleRate, cfg.FeedbackRate, n)
	}

	return &Loop{
		in:  in,
		out: out,
		cfg: cfg,
		buf: make([]float64, n),
		log: cfg.Logger.With().Str("component", "feedback").Logger(),
	}, nil
}

// Config returns the effective configuration.
func (l *Loop) Config() Config { return l.cfg }

// Stats returns the number of completed cycles and the last value written,
// read as one consistent snapshot. It is safe to call while Run is active.
func (l *Loop) Stats() Stats {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.stats
}

// Step runs one cycle: fill the buffer, reduce it and write the result.
// It is not safe to call Step concurrently with Step or Run.
func (l *Loop) Step(ctx context.Context) (float64, error) {
	if err := l.fill(ctx); err != nil {
		return 0, err
	}

	v := l.cfg.Reducer(l.buf)
	if err := l.out.WriteValue(ctx, v); err != nil {
		return 0, fmt.Errorf("feedback: write: %w", err)
	}

	l.mu.Lock()
	l.stats.Cycles++
	l.stats.LastValue = v
	cycle := l.stats.Cycles
	l.mu.Unlock()

	l.log.Debug().Uint64("cycle", cycle).Float64("value", v).Msg("feedback written")
	return v, nil
}

func (l *Loop) fill(ctx context.Context) error {
	for filled := 0; filled < len(l.buf); {
		if err := ctx.Err(); err != nil {
			return err
		}
		n, err := l.in.ReadSamples(ctx, l.buf[filled:])
		if n < 0 || n > len(l.buf)-filled {
			return fmt.Errorf("feedback: read: reader returned %d samples for %d requested", n, len(l.buf)-filled)
		}
		filled += n
		if err != nil {
			return fmt.Errorf("feedback: read after %d of %d samples: %w", filled, len(l.buf), err)
		}
	}
	return nil
}

// Run executes cycles until ctx is done or a device error occurs. It
// returns nil on cancellation and the wrapped device error otherwise;
// failed cycles are not retried.
func (l *Loop) Run(ctx context.Context) error {
	l.log.Info().
		Float64("sample_rate", l.cfg.SampleRate).
		Float64("feedback_rate", l.cfg.FeedbackRate).
		Int("samples_per_buffer", len(l.buf)).
		Msg("feedback loop started")

	for {
		if ctx.Err() != nil {
			l.log.Info().Uint64("cycles", l.Stats().Cycles).Msg("feedback loop stopped")
			return nil
		}

		if _, err := l.Step(ctx); err != nil {
			if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
				l.log.Info().Uint64("cycles", l.Stats().Cycles).Msg("feedback loop stopped")
				return nil
			}
			l.log.Error().Err(err).Uint64("cycles", l.Stats().Cycles).Msg("feedback loop failed")
			return err
		}
	}
}
