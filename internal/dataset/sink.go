package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	rubikscube "github.com/h4rr9/rubiks-cube"
	"github.com/h4rr9/rubiks-cube/internal/storage"
)

// StorageSink appends samples to a stored dataset.
type StorageSink struct {
	Samples   *storage.SampleRepository
	DatasetID string
}

func (s *StorageSink) Write(ctx context.Context, batch []Sample) error {
	rows := make([]storage.Sample, len(batch))
	for i, smp := range batch {
		rows[i] = storage.Sample{
			Index:          smp.Index,
			Scramble:       rubikscube.FormatTurns(smp.Turns),
			Facelets:       smp.Cube.Facelets().String(),
			Representation: smp.Representation(),
			Solvable:       smp.Cube.IsSolvable(),
		}
	}
	return s.Samples.InsertBatch(ctx, s.DatasetID, rows)
}

// Record is the JSON form of a sample.
type Record struct {
	Index    int    `json:"index"`
	Scramble string `json:"scramble"`
	Facelets string `json:"facelets"`
	Bits     []uint `json:"bits"` // indices of the set representation bits
	Solvable bool   `json:"solvable"`
}

// NewRecord converts a sample to its JSON form.
func NewRecord(s Sample) Record {
	r := s.Representation()
	bits := make([]uint, 0, r.Count())
	for i, ok := r.NextSet(0); ok; i, ok = r.NextSet(i + 1) {
		bits = append(bits, i)
	}
	return Record{
		Index:    s.Index,
		Scramble: rubikscube.FormatTurns(s.Turns),
		Facelets: s.Cube.Facelets().String(),
		Bits:     bits,
		Solvable: s.Cube.IsSolvable(),
	}
}

// JSONLinesSink writes one JSON record per line.
type JSONLinesSink struct {
	enc *json.Encoder
}

// NewJSONLinesSink writes records to w.
func NewJSONLinesSink(w io.Writer) *JSONLinesSink {
	return &JSONLinesSink{enc: json.NewEncoder(w)}
}

func (s *JSONLinesSink) Write(_ context.Context, batch []Sample) error {
	for _, smp := range batch {
		if err := s.enc.Encode(NewRecord(smp)); err != nil {
			return fmt.Errorf("encode sample %d: %w", smp.Index, err)
		}
	}
	return nil
}
