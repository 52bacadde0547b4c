package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"vrp-instance-service/internal/domain"
	"vrp-instance-service/internal/parsers"
	"vrp-instance-service/internal/platform/obs"
	"vrp-instance-service/internal/ports"
)

// SQLInstanceRepository is a Postgres-backed implementation of the
// InstanceRepository port.
type SQLInstanceRepository struct {
	DB *sql.DB
}

func NewSQLInstanceRepository(db *sql.DB) *SQLInstanceRepository {
	return &SQLInstanceRepository{DB: db}
}

// Store the instance's points and vehicle types, replacing any previous
// version with the same name.
func (s *SQLInstanceRepository) SaveInstance(ctx context.Context, inst *domain.Instance) (err error) {
	defer obs.Time(ctx, "instance.repo.SaveInstance")(&err)

	if s.DB == nil {
		return errors.New("save instance: db is nil")
	}
	if inst == nil || strings.TrimSpace(inst.Name) == "" {
		return errors.New("save instance: instance name must not be empty")
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save instance: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `
	INSERT INTO instances (name, dialect, points, vehicle_types, fleet_size, timed, loaded_at)
	VALUES ($1, $2, $3, $4, $5, $6, now())
	ON CONFLICT (name) DO UPDATE
	SET dialect = EXCLUDED.dialect,
		points = EXCLUDED.points,
		vehicle_types = EXCLUDED.vehicle_types,
		fleet_size = EXCLUDED.fleet_size,
		timed = EXCLUDED.timed,
		loaded_at = EXCLUDED.loaded_at;
	`, inst.Name, inst.Dialect, len(inst.Points), len(inst.VehicleTypes), inst.FleetSize(), inst.Timed()); err != nil {
		return fmt.Errorf("save instance %q: upsert: %w", inst.Name, err)
	}

	for _, q := range []string{
		`DELETE FROM instance_points WHERE instance_name = $1;`,
		`DELETE FROM instance_vehicle_types WHERE instance_name = $1;`,
	} {
		if _, err := tx.ExecContext(ctx, q, inst.Name); err != nil {
			return fmt.Errorf("save instance %q: clear previous rows: %w", inst.Name, err)
		}
	}

	pointStmt, err := tx.PrepareContext(ctx, `
	INSERT INTO instance_points (instance_name, point_id, x, y, demand, service_time, tw_begin, tw_end)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`)
	if err != nil {
		return fmt.Errorf("save instance %q: prepare points: %w", inst.Name, err)
	}
	defer pointStmt.Close()

	for _, p := range inst.Points {
		if _, err := pointStmt.ExecContext(ctx, inst.Name, p.ID, p.X, p.Y, p.Demand, p.ServiceTime, p.TWBegin, p.TWEnd); err != nil {
			return fmt.Errorf("save instance %q: insert point %d: %w", inst.Name, p.ID, err)
		}
	}

	typeStmt, err := tx.PrepareContext(ctx, `
	INSERT INTO instance_vehicle_types (
		instance_name, type_id, capacity, max_number, fixed_cost,
		var_cost_dist, var_cost_time, tw_begin, tw_end, service_time
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`)
	if err != nil {
		return fmt.Errorf("save instance %q: prepare vehicle types: %w", inst.Name, err)
	}
	defer typeStmt.Close()

	for _, vt := range inst.VehicleTypes {
		if _, err := typeStmt.ExecContext(ctx, inst.Name, vt.ID, vt.Capacity, vt.MaxNumber, vt.FixedCost,
			vt.VarCostDist, vt.VarCostTime, vt.TWBegin, vt.TWEnd, vt.ServiceTime); err != nil {
			return fmt.Errorf("save instance %q: insert vehicle type %d: %w", inst.Name, vt.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save instance %q: commit: %w", inst.Name, err)
	}
	return nil
}

// Return the catalog ordered by name.
func (s *SQLInstanceRepository) ListInstances(ctx context.Context) (_ []ports.InstanceSummary, err error) {
	defer obs.Time(ctx, "instance.repo.ListInstances")(&err)

	if s.DB == nil {
		return nil, errors.New("list instances: db is nil")
	}

	rows, err := s.DB.QueryContext(ctx, `
	SELECT name, dialect, points, vehicle_types, fleet_size, timed, loaded_at
	FROM instances
	ORDER BY name;
	`)
	if err != nil {
		return nil, fmt.Errorf("list instances: query instances table: %w", err)
	}
	defer rows.Close()

	out := make([]ports.InstanceSummary, 0, 64)
	for rows.Next() {
		var r ports.InstanceSummary
		if err := rows.Scan(&r.Name, &r.Dialect, &r.Points, &r.VehicleTypes, &r.FleetSize, &r.Timed, &r.LoadedAt); err != nil {
			return nil, fmt.Errorf("list instances: scan row: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list instances: row iteration: %w", err)
	}
	return out, nil
}

// Read back the stored records of one instance.
func (s *SQLInstanceRepository) GetInstance(ctx context.Context, name string) (_ *parsers.RawInstance, err error) {
	defer obs.Time(ctx, "instance.repo.GetInstance")(&err)

	if s.DB == nil {
		return nil, errors.New("get instance: db is nil")
	}

	raw := &parsers.RawInstance{Name: name}
	err = s.DB.QueryRowContext(ctx, `SELECT dialect, timed FROM instances WHERE name = $1;`, name).
		Scan(&raw.Format, &raw.Timed)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get instance %q: %w", name, ports.ErrInstanceNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get instance %q: query instances table: %w", name, err)
	}
	if raw.Dialect, err = parsers.FormatDialect(raw.Format); err != nil {
		return nil, fmt.Errorf("get instance %q: %w", name, err)
	}

	if raw.Points, err = s.points(ctx, name); err != nil {
		return nil, err
	}
	if raw.VehicleTypes, err = s.vehicleTypes(ctx, name); err != nil {
		return nil, err
	}
	return raw, nil
}

func (s *SQLInstanceRepository) points(ctx context.Context, name string) ([]domain.Point, error) {
	rows, err := s.DB.QueryContext(ctx, `
	SELECT point_id, x, y, demand, service_time, tw_begin, tw_end
	FROM instance_points
	WHERE instance_name = $1
	ORDER BY point_id;
	`, name)
	if err != nil {
		return nil, fmt.Errorf("get instance %q: query points: %w", name, err)
	}
	defer rows.Close()

	var out []domain.Point
	for rows.Next() {
		var p domain.Point
		if err := rows.Scan(&p.ID, &p.X, &p.Y, &p.Demand, &p.ServiceTime, &p.TWBegin, &p.TWEnd); err != nil {
			return nil, fmt.Errorf("get instance %q: scan point: %w", name, err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get instance %q: point iteration: %w", name, err)
	}
	return out, nil
}

func (s *SQLInstanceRepository) vehicleTypes(ctx context.Context, name string) ([]domain.VehicleType, error) {
	rows, err := s.DB.QueryContext(ctx, `
	SELECT type_id, capacity, max_number, fixed_cost, var_cost_dist, var_cost_time, tw_begin, tw_end, service_time
	FROM instance_vehicle_types
	WHERE instance_name = $1
	ORDER BY type_id;
	`, name)
	if err != nil {
		return nil, fmt.Errorf("get instance %q: query vehicle types: %w", name, err)
	}
	defer rows.Close()

	var out []domain.VehicleType
	for rows.Next() {
		vt := domain.VehicleType{StartPointID: domain.DepotID, EndPointID: domain.DepotID}
		if err := rows.Scan(&vt.ID, &vt.Capacity, &vt.MaxNumber, &vt.FixedCost, &vt.VarCostDist,
			&vt.VarCostTime, &vt.TWBegin, &vt.TWEnd, &vt.ServiceTime); err != nil {
			return nil, fmt.Errorf("get instance %q: scan vehicle type: %w", name, err)
		}
		out = append(out, vt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get instance %q: vehicle type iteration: %w", name, err)
	}
	return out, nil
}
