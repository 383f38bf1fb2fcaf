// Package dataset generates labelled cube states for training: random
// scrambles, the states they reach and their one-hot representations.
package dataset

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/bits-and-blooms/bitset"
	"github.com/sirupsen/logrus"

	rubikscube "github.com/h4rr9/rubiks-cube"
)

// ErrInvalidConfig is returned by NewGenerator for unusable settings.
var ErrInvalidConfig = errors.New("dataset: invalid config")

// Config controls a generation run.
type Config struct {
	Count       int               // number of samples
	ScrambleLen int               // turns per scramble
	Metric      rubikscube.Metric // generators drawn from
	Seed        uint64
	BatchSize   int // samples handed to the sink at once; default 256
}

func (c Config) validate() error {
	switch {
	case c.Count <= 0:
		return fmt.Errorf("%w: count must be positive, got %d", ErrInvalidConfig, c.Count)
	case c.ScrambleLen < 0:
		return fmt.Errorf("%w: scramble length must not be negative, got %d", ErrInvalidConfig, c.ScrambleLen)
	case c.BatchSize < 0:
		return fmt.Errorf("%w: batch size must not be negative, got %d", ErrInvalidConfig, c.BatchSize)
	}
	return nil
}

// Sample is one generated state.
type Sample struct {
	Index int
	Turns []rubikscube.Turn
	Cube  rubikscube.Cube
}

// Representation returns the one-hot encoding of the sample's state.
func (s Sample) Representation() *bitset.BitSet {
	return s.Cube.Representation()
}

// Sink consumes generated samples.
type Sink interface {
	Write(ctx context.Context, batch []Sample) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(ctx context.Context, batch []Sample) error

func (f SinkFunc) Write(ctx context.Context, batch []Sample) error { return f(ctx, batch) }

// Generator produces reproducible samples: sample i depends only on the
// seed and i.
type Generator struct {
	cfg Config
	log logrus.FieldLogger
}

// NewGenerator validates cfg and returns a generator.
func NewGenerator(cfg Config, log logrus.FieldLogger) (*Generator, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.BatchSize == 0 {
		cfg.BatchSize = 256
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Generator{cfg: cfg, log: log.WithField("component", "dataset")}, nil
}

// Sample builds sample i.
func (g *Generator) Sample(i int) Sample {
	rng := rand.New(rand.NewPCG(g.cfg.Seed, uint64(i)))
	c := rubikscube.New()
	turns := c.Scramble(g.cfg.ScrambleLen, rng, rubikscube.WithMetric(g.cfg.Metric))
	return Sample{Index: i, Turns: turns, Cube: c}
}

// Run generates all samples and writes them to sink in batches. It stops at
// the first sink error or when ctx is cancelled, returning the number of
// samples written so far.
func (g *Generator) Run(ctx context.Context, sink Sink) (int, error) {
	g.log.WithFields(logrus.Fields{
		"count":    g.cfg.Count,
		"scramble": g.cfg.ScrambleLen,
		"metric":   g.cfg.Metric,
		"seed":     g.cfg.Seed,
	}).Info("generating samples")

	written := 0
	batch := make([]Sample, 0, g.cfg.BatchSize)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := sink.Write(ctx, batch); err != nil {
			return fmt.Errorf("write samples %d-%d: %w", batch[0].Index, batch[len(batch)-1].Index, err)
		}
		written += len(batch)
		g.log.WithField("written", written).Debug("batch written")
		batch = batch[:0]
		return nil
	}

	for i := 0; i < g.cfg.Count; i++ {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		batch = append(batch, g.Sample(i))
		if len(batch) == g.cfg.BatchSize {
			if err := flush(); err != nil {
				return written, err
			}
		}
	}
	if err := flush(); err != nil {
		return written, err
	}

	g.log.WithField("written", written).Info("generation complete")
	return written, nil
}
