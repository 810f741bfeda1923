package datasetdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// importMetadata returns the recorded provenance for a source, or nil when
// the source has never been imported.
func (c *Client) importMetadata(ctx context.Context, source string) (*ImportMetadata, error) {
	row := c.DB.QueryRowContext(ctx, `
		SELECT source, content_hash, sample_count, imported_at
		FROM import_metadata WHERE source = ?;
	`, source)

	var meta ImportMetadata
	var importedAt string
	err := row.Scan(&meta.Source, &meta.ContentHash, &meta.SampleCount, &importedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading import metadata: %w", err)
	}

	meta.ImportedAt, err = time.Parse(time.RFC3339, importedAt)
	if err != nil {
		return nil, fmt.Errorf("error parsing import timestamp: %w", err)
	}

	return &meta, nil
}

// SampleCount returns the number of stored samples for a horizon.
func (c *Client) SampleCount(ctx context.Context, horizon int) (int64, error) {
	var count int64
	err := c.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM samples WHERE horizon = ?;`, horizon).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting samples: %w", err)
	}
	return count, nil
}

// LabelCount returns the number of stored samples for a horizon carrying the given label.
func (c *Client) LabelCount(ctx context.Context, horizon, label int) (int64, error) {
	var count int64
	err := c.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM samples WHERE horizon = ? AND label = ?;`, horizon, label).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting samples by label: %w", err)
	}
	return count, nil
}

// Horizons returns the distinct horizons present in the cache, ascending.
func (c *Client) Horizons(ctx context.Context) ([]int, error) {
	rows, err := c.DB.QueryContext(ctx, `SELECT DISTINCT horizon FROM samples ORDER BY horizon;`)
	if err != nil {
		return nil, fmt.Errorf("error querying horizons: %w", err)
	}
	defer rows.Close() // nolint:errcheck

	var horizons []int
	for rows.Next() {
		var h int
		if err := rows.Scan(&h); err != nil {
			return nil, fmt.Errorf("error scanning horizon: %w", err)
		}
		horizons = append(horizons, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating horizons: %w", err)
	}
	return horizons, nil
}

// LoadSamples returns the stored samples for a horizon in member-file order.
func (c *Client) LoadSamples(ctx context.Context, horizon int) ([]Sample, error) {
	rows, err := c.DB.QueryContext(ctx, `
		SELECT horizon, row_idx, features, label
		FROM samples WHERE horizon = ? ORDER BY row_idx;
	`, horizon)
	if err != nil {
		return nil, fmt.Errorf("error querying samples: %w", err)
	}
	defer rows.Close() // nolint:errcheck

	var samples []Sample
	for rows.Next() {
		var s Sample
		var encoded string
		if err := rows.Scan(&s.Horizon, &s.RowIndex, &encoded, &s.Label); err != nil {
			return nil, fmt.Errorf("error scanning sample: %w", err)
		}
		s.Features, err = decodeFeatures(encoded)
		if err != nil {
			return nil, err
		}
		samples = append(samples, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating samples: %w", err)
	}
	return samples, nil
}
