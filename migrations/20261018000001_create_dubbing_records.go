package migrations

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddNamedMigrationContext("20261018000001_create_dubbing_records.go", upCreateDubbingRecords, downCreateDubbingRecords)
}

func upCreateDubbingRecords(ctx context.Context, tx *sql.Tx) error {
	createRecordsTable := `
	CREATE TABLE IF NOT EXISTS dubbing_records (
		id UUID PRIMARY KEY,
		dubbing_id VARCHAR(255) NOT NULL,
		source_lang VARCHAR(16) NOT NULL,
		target_lang VARCHAR(16) NOT NULL,
		status VARCHAR(50),
		audio_path VARCHAR(500),
		checksum VARCHAR(64),
		expected_duration_sec DOUBLE PRECISION,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		completed_at TIMESTAMP WITH TIME ZONE
	);
	`
	if _, err := tx.ExecContext(ctx, createRecordsTable); err != nil {
		return fmt.Errorf("could not create dubbing_records table: %w", err)
	}

	createIndex := `CREATE INDEX IF NOT EXISTS idx_dubbing_records_dubbing_id ON dubbing_records (dubbing_id);`
	if _, err := tx.ExecContext(ctx, createIndex); err != nil {
		return fmt.Errorf("could not create dubbing_records index: %w", err)
	}
	return nil
}

func downCreateDubbingRecords(ctx context.Context, tx *sql.Tx) error {
	if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS dubbing_records;"); err != nil {
		return fmt.Errorf("could not drop table dubbing_records: %w", err)
	}
	return nil
}
