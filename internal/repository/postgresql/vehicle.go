package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/hayatfoods/hrfleet-backend-go/internal/domain/vehicle"
	"github.com/hayatfoods/hrfleet-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type vehicleRepositoryImpl struct {
	db *database.DB
}

func NewVehicleRepository(db *database.DB) vehicle.VehicleRepository {
	return &vehicleRepositoryImpl{db: db}
}

const vehicleColumns = `
	v.id, v.branch_id, v.license_number, v.model, v.make, v.year,
	v.license_expiry, v.insurance_expiry, v.status, v.created_at, v.updated_at, COALESCE(b.name, '')
`

func scanVehicle(row pgx.Row) (vehicle.VehicleWithBranch, error) {
	var v vehicle.VehicleWithBranch
	err := row.Scan(
		&v.ID,
		&v.BranchID,
		&v.LicenseNumber,
		&v.Model,
		&v.Make,
		&v.Year,
		&v.LicenseExpiry,
		&v.InsuranceExpiry,
		&v.Status,
		&v.CreatedAt,
		&v.UpdatedAt,
		&v.BranchName,
	)
	return v, err
}

// GetByID implements vehicle.VehicleRepository.
func (r *vehicleRepositoryImpl) GetByID(ctx context.Context, id string) (vehicle.VehicleWithBranch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + vehicleColumns + `
		FROM vehicles v
		LEFT JOIN branches b ON b.id = v.branch_id
		WHERE v.id = $1 AND v.deleted_at IS NULL
	`

	result, err := scanVehicle(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return vehicle.VehicleWithBranch{}, vehicle.ErrVehicleNotFound
		}
		return vehicle.VehicleWithBranch{}, fmt.Errorf("failed to get vehicle: %w", err)
	}

	return result, nil
}

// List implements vehicle.VehicleRepository.
func (r *vehicleRepositoryImpl) List(ctx context.Context) ([]vehicle.VehicleWithBranch, error) {
	return r.list(ctx, nil)
}

// ListByBranch implements vehicle.VehicleRepository.
func (r *vehicleRepositoryImpl) ListByBranch(ctx context.Context, branchID string) ([]vehicle.VehicleWithBranch, error) {
	return r.list(ctx, &branchID)
}

func (r *vehicleRepositoryImpl) list(ctx context.Context, branchID *string) ([]vehicle.VehicleWithBranch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + vehicleColumns + `
		FROM vehicles v
		LEFT JOIN branches b ON b.id = v.branch_id
		WHERE v.deleted_at IS NULL
	`
	args := []interface{}{}
	if branchID != nil {
		query += ` AND v.branch_id = $1`
		args = append(args, *branchID)
	}
	query += ` ORDER BY v.license_number ASC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	defer rows.Close()

	var vehicles []vehicle.VehicleWithBranch
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vehicle: %w", err)
		}
		vehicles = append(vehicles, v)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return vehicles, nil
}

// Create implements vehicle.VehicleRepository.
func (r *vehicleRepositoryImpl) Create(ctx context.Context, newVehicle vehicle.Vehicle) (vehicle.Vehicle, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO vehicles (
			id, branch_id, license_number, model, make, year,
			license_expiry, insurance_expiry, status, created_at, updated_at
		)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	result := newVehicle
	err := q.QueryRow(ctx, query,
		newVehicle.BranchID,
		newVehicle.LicenseNumber,
		newVehicle.Model,
		newVehicle.Make,
		newVehicle.Year,
		newVehicle.LicenseExpiry,
		newVehicle.InsuranceExpiry,
		newVehicle.Status,
	).Scan(&result.ID, &result.CreatedAt, &result.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return vehicle.Vehicle{}, vehicle.ErrLicenseNumberExists
		}
		return vehicle.Vehicle{}, fmt.Errorf("failed to create vehicle: %w", err)
	}

	return result, nil
}

// Update implements vehicle.VehicleRepository.
func (r *vehicleRepositoryImpl) Update(ctx context.Context, id string, req vehicle.UpdateVehicleRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE vehicles SET updated_at = NOW()`
	args := []interface{}{}
	argIdx := 1

	set := func(column string, value interface{}) {
		query += fmt.Sprintf(", %s = $%d", column, argIdx)
		args = append(args, value)
		argIdx++
	}

	if req.LicenseNumber != nil {
		set("license_number", *req.LicenseNumber)
	}
	if req.Model != nil {
		set("model", *req.Model)
	}
	if req.Make != nil {
		set("make", *req.Make)
	}
	if req.Year != nil {
		set("year", *req.Year)
	}
	if req.LicenseExpiry != nil {
		set("license_expiry", parseDate(req.LicenseExpiry))
	}
	if req.InsuranceExpiry != nil {
		set("insurance_expiry", parseDate(req.InsuranceExpiry))
	}
	if req.Status != nil {
		set("status", *req.Status)
	}

	query += fmt.Sprintf(" WHERE id = $%d AND deleted_at IS NULL", argIdx)
	args = append(args, id)

	commandTag, err := q.Exec(ctx, query, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return vehicle.ErrLicenseNumberExists
		}
		return fmt.Errorf("failed to update vehicle: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return vehicle.ErrVehicleNotFound
	}

	return nil
}

// UpdateBranch implements vehicle.VehicleRepository.
func (r *vehicleRepositoryImpl) UpdateBranch(ctx context.Context, id string, branchID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE vehicles
		SET branch_id = $2, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`

	commandTag, err := q.Exec(ctx, query, id, branchID)
	if err != nil {
		return fmt.Errorf("failed to transfer vehicle: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return vehicle.ErrVehicleNotFound
	}

	return nil
}

// SoftDelete implements vehicle.VehicleRepository.
func (r *vehicleRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE vehicles
		SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete vehicle: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return vehicle.ErrVehicleNotFound
	}

	return nil
}

// ExistsByLicenseNumber implements vehicle.VehicleRepository.
func (r *vehicleRepositoryImpl) ExistsByLicenseNumber(ctx context.Context, licenseNumber string, excludeID *string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM vehicles
			WHERE license_number = $1 AND deleted_at IS NULL AND ($2::uuid IS NULL OR id <> $2)
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, licenseNumber, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check license number: %w", err)
	}

	return exists, nil
}
