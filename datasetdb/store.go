package datasetdb

import (
	"context"
	"fmt"
	"log"
	"time"
)

// ImportSamples stores the samples of one member file inside a transaction.
// The import is conditional: when the archive content hash matches a previous
// import of the same source, the stored rows are already current and the
// whole operation is skipped.
func (c *Client) ImportSamples(ctx context.Context, source, contentHash string, horizon int, features [][]float64, labels []int) error {
	startTime := time.Now()
	defer func() {
		c.importRuntime = time.Since(startTime)

		if c.config.verbose {
			log.Println("importing", source, "took", c.importRuntime.String())
		}
	}()

	if len(features) != len(labels) {
		return fmt.Errorf("features/labels length mismatch: %d != %d", len(features), len(labels))
	}

	current, err := c.importMetadata(ctx, source)
	if err != nil {
		return err
	}
	if current != nil && current.ContentHash == contentHash {
		if c.config.verbose {
			log.Println("skipping import of unchanged source", source)
		}
		return nil
	}

	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM samples WHERE horizon = ?;`, horizon); err != nil {
		tx.Rollback() // nolint:errcheck
		return fmt.Errorf("error clearing stale samples: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO samples (horizon, row_idx, features, label)
		VALUES (?, ?, ?, ?);
	`)
	if err != nil {
		tx.Rollback() // nolint:errcheck
		return fmt.Errorf("error preparing statement: %w", err)
	}
	defer stmt.Close() // nolint:errcheck

	for i := range features {
		encoded, err := encodeFeatures(features[i])
		if err != nil {
			tx.Rollback() // nolint:errcheck
			return err
		}

		if _, err := stmt.ExecContext(ctx, horizon, i, encoded, labels[i]); err != nil {
			tx.Rollback() // nolint:errcheck
			return fmt.Errorf("error inserting sample: %w", err)
		}
	}

	_, err = tx.ExecContext(ctx, `
		INSERT OR REPLACE INTO import_metadata (source, content_hash, sample_count, imported_at)
		VALUES (?, ?, ?, ?);
	`, source, contentHash, len(labels), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		tx.Rollback() // nolint:errcheck
		return fmt.Errorf("error recording import metadata: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}
