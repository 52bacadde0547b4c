package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the Postgres catalog schema.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createInstancesQuery := `
	CREATE TABLE IF NOT EXISTS instances (
		name TEXT PRIMARY KEY,
		dialect TEXT NOT NULL,
		points INTEGER NOT NULL,
		vehicle_types INTEGER NOT NULL,
		fleet_size INTEGER NOT NULL,
		timed BOOLEAN NOT NULL,
		loaded_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	`

	createPointsQuery := `
	CREATE TABLE IF NOT EXISTS instance_points (
		instance_name TEXT NOT NULL REFERENCES instances(name) ON DELETE CASCADE,
		point_id INTEGER NOT NULL,
		x DOUBLE PRECISION NOT NULL,
		y DOUBLE PRECISION NOT NULL,
		demand INTEGER NOT NULL,
		service_time DOUBLE PRECISION NOT NULL,
		tw_begin DOUBLE PRECISION NOT NULL,
		tw_end DOUBLE PRECISION NOT NULL,
		PRIMARY KEY (instance_name, point_id)
	);
	`

	createVehicleTypesQuery := `
	CREATE TABLE IF NOT EXISTS instance_vehicle_types (
		instance_name TEXT NOT NULL REFERENCES instances(name) ON DELETE CASCADE,
		type_id INTEGER NOT NULL,
		capacity INTEGER NOT NULL,
		max_number INTEGER NOT NULL,
		fixed_cost DOUBLE PRECISION NOT NULL,
		var_cost_dist DOUBLE PRECISION NOT NULL,
		var_cost_time DOUBLE PRECISION NOT NULL,
		tw_begin DOUBLE PRECISION NOT NULL,
		tw_end DOUBLE PRECISION NOT NULL,
		service_time DOUBLE PRECISION NOT NULL,
		PRIMARY KEY (instance_name, type_id)
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_instances_dialect
	ON instances(dialect);
	`

	statements := []string{
		createInstancesQuery,
		createPointsQuery,
		createVehicleTypesQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
