package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Sample is one stored (scramble, state) pair.
type Sample struct {
	Index          int
	Scramble       string         // turn notation
	Facelets       string         // 54 color letters, face by face
	Representation *bitset.BitSet // one-hot state
	Solvable       bool
}

// SampleRepository stores the samples of datasets.
type SampleRepository struct {
	db *DB
}

// NewSampleRepository creates a new sample repository.
func NewSampleRepository(db *DB) *SampleRepository {
	return &SampleRepository{db: db}
}

// InsertBatch writes samples in one transaction and bumps the dataset's
// sample count.
func (r *SampleRepository) InsertBatch(ctx context.Context, datasetID string, samples []Sample) error {
	return r.db.Transaction(func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO samples (dataset_id, idx, scramble_text, facelets, representation, solvable)
			VALUES (?, ?, ?, ?, ?, ?)
		`)
		if err != nil {
			return fmt.Errorf("failed to prepare sample insert: %w", err)
		}
		defer stmt.Close()

		for _, s := range samples {
			repr, err := s.Representation.MarshalBinary()
			if err != nil {
				return fmt.Errorf("failed to encode sample %d: %w", s.Index, err)
			}
			if _, err := stmt.ExecContext(ctx, datasetID, s.Index, s.Scramble, s.Facelets, repr, s.Solvable); err != nil {
				return fmt.Errorf("failed to insert sample %d: %w", s.Index, err)
			}
		}

		_, err = tx.ExecContext(ctx,
			"UPDATE datasets SET sample_count = sample_count + ? WHERE dataset_id = ?",
			len(samples), datasetID)
		if err != nil {
			return fmt.Errorf("failed to update sample count: %w", err)
		}
		return nil
	})
}

// List returns up to limit samples of a dataset starting at index offset.
func (r *SampleRepository) List(ctx context.Context, datasetID string, offset, limit int) ([]Sample, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT idx, scramble_text, facelets, representation, solvable
		FROM samples
		WHERE dataset_id = ? AND idx >= ?
		ORDER BY idx
		LIMIT ?
	`, datasetID, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list samples: %w", err)
	}
	defer rows.Close()

	var samples []Sample
	for rows.Next() {
		var s Sample
		var repr []byte
		if err := rows.Scan(&s.Index, &s.Scramble, &s.Facelets, &repr, &s.Solvable); err != nil {
			return nil, fmt.Errorf("failed to scan sample: %w", err)
		}
		s.Representation = new(bitset.BitSet)
		if err := s.Representation.UnmarshalBinary(repr); err != nil {
			return nil, fmt.Errorf("failed to decode sample %d: %w", s.Index, err)
		}
		samples = append(samples, s)
	}
	return samples, rows.Err()
}

// Count returns the number of stored samples of a dataset.
func (r *SampleRepository) Count(ctx context.Context, datasetID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM samples WHERE dataset_id = ?", datasetID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count samples: %w", err)
	}
	return n, nil
}
