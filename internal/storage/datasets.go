package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Dataset describes one generated batch of samples.
type Dataset struct {
	DatasetID   string
	CreatedAt   time.Time
	Metric      string
	ScrambleLen int
	Seed        uint64
	SampleCount int
	Notes       *string
}

// DatasetRepository provides CRUD operations for datasets.
type DatasetRepository struct {
	db *DB
}

// NewDatasetRepository creates a new dataset repository.
func NewDatasetRepository(db *DB) *DatasetRepository {
	return &DatasetRepository{db: db}
}

// Create inserts an empty dataset and returns its ID.
func (r *DatasetRepository) Create(ctx context.Context, metric string, scrambleLen int, seed uint64, notes string) (string, error) {
	id := uuid.New().String()

	var notesPtr *string
	if notes != "" {
		notesPtr = &notes
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO datasets (dataset_id, created_at, metric, scramble_len, seed, notes)
		VALUES (?, ?, ?, ?, ?, ?)
	`, id, time.Now().UTC().Format(time.RFC3339Nano), metric, scrambleLen, int64(seed), notesPtr)
	if err != nil {
		return "", fmt.Errorf("failed to create dataset: %w", err)
	}
	return id, nil
}

// Get retrieves a dataset by ID. A missing dataset yields ErrNotFound.
func (r *DatasetRepository) Get(ctx context.Context, datasetID string) (*Dataset, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT dataset_id, created_at, metric, scramble_len, seed, sample_count, notes
		FROM datasets
		WHERE dataset_id = ?
	`, datasetID)

	d, err := scanDataset(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("dataset %s: %w", datasetID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get dataset: %w", err)
	}
	return d, nil
}

// List retrieves the most recent datasets.
func (r *DatasetRepository) List(ctx context.Context, limit int) ([]Dataset, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT dataset_id, created_at, metric, scramble_len, seed, sample_count, notes
		FROM datasets
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list datasets: %w", err)
	}
	defer rows.Close()

	var datasets []Dataset
	for rows.Next() {
		d, err := scanDataset(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan dataset: %w", err)
		}
		datasets = append(datasets, *d)
	}
	return datasets, rows.Err()
}

// Delete removes a dataset and its samples.
func (r *DatasetRepository) Delete(ctx context.Context, datasetID string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM datasets WHERE dataset_id = ?", datasetID)
	if err != nil {
		return fmt.Errorf("failed to delete dataset: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("dataset %s: %w", datasetID, ErrNotFound)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanDataset(s scanner) (*Dataset, error) {
	var d Dataset
	var createdAt string
	var seed int64
	if err := s.Scan(&d.DatasetID, &createdAt, &d.Metric, &d.ScrambleLen, &seed, &d.SampleCount, &d.Notes); err != nil {
		return nil, err
	}
	d.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
	d.Seed = uint64(seed)
	return &d, nil
}
