package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hayatfoods/hrfleet-backend-go/internal/domain/vacation"
	"github.com/hayatfoods/hrfleet-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type vacationRepositoryImpl struct {
	db *database.DB
}

func NewVacationRepository(db *database.DB) vacation.VacationRepository {
	return &vacationRepositoryImpl{db: db}
}

const vacationColumns = `
	vc.id, vc.employee_id, vc.duration_code, vc.start_date, vc.end_date,
	vc.reason, vc.status, vc.created_at, vc.updated_at,
	COALESCE(e.full_name, ''), COALESCE(e.qid_number, ''), COALESCE(b.name, '')
`

func scanVacation(row pgx.Row) (vacation.VacationWithEmployee, error) {
	var v vacation.VacationWithEmployee
	err := row.Scan(
		&v.ID,
		&v.EmployeeID,
		&v.DurationCode,
		&v.StartDate,
		&v.EndDate,
		&v.Reason,
		&v.Status,
		&v.CreatedAt,
		&v.UpdatedAt,
		&v.EmployeeName,
		&v.EmployeeQID,
		&v.BranchName,
	)
	return v, err
}

// GetByID implements vacation.VacationRepository.
func (r *vacationRepositoryImpl) GetByID(ctx context.Context, id string) (vacation.VacationWithEmployee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + vacationColumns + `
		FROM vacations vc
		LEFT JOIN employees e ON e.id = vc.employee_id
		LEFT JOIN branches b ON b.id = e.branch_id
		WHERE vc.id = $1 AND vc.deleted_at IS NULL
	`

	result, err := scanVacation(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return vacation.VacationWithEmployee{}, vacation.ErrVacationNotFound
		}
		return vacation.VacationWithEmployee{}, fmt.Errorf("failed to get vacation: %w", err)
	}

	return result, nil
}

// List implements vacation.VacationRepository.
func (r *vacationRepositoryImpl) List(ctx context.Context) ([]vacation.VacationWithEmployee, error) {
	return r.list(ctx, nil)
}

// ListByEmployee implements vacation.VacationRepository.
func (r *vacationRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]vacation.VacationWithEmployee, error) {
	return r.list(ctx, &employeeID)
}

func (r *vacationRepositoryImpl) list(ctx context.Context, employeeID *string) ([]vacation.VacationWithEmployee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + vacationColumns + `
		FROM vacations vc
		LEFT JOIN employees e ON e.id = vc.employee_id
		LEFT JOIN branches b ON b.id = e.branch_id
		WHERE vc.deleted_at IS NULL
	`
	args := []interface{}{}
	if employeeID != nil {
		query += ` AND vc.employee_id = $1`
		args = append(args, *employeeID)
	}
	query += ` ORDER BY vc.start_date DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list vacations: %w", err)
	}
	defer rows.Close()

	var vacations []vacation.VacationWithEmployee
	for rows.Next() {
		v, err := scanVacation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vacation: %w", err)
		}
		vacations = append(vacations, v)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return vacations, nil
}

// Create implements vacation.VacationRepository.
func (r *vacationRepositoryImpl) Create(ctx context.Context, newVacation vacation.Vacation) (vacation.Vacation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO vacations (
			id, employee_id, duration_code, start_date, end_date,
			reason, status, created_at, updated_at
		)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	result := newVacation
	err := q.QueryRow(ctx, query,
		newVacation.EmployeeID,
		newVacation.DurationCode,
		newVacation.StartDate,
		newVacation.EndDate,
		newVacation.Reason,
		newVacation.Status,
	).Scan(&result.ID, &result.CreatedAt, &result.UpdatedAt)
	if err != nil {
		return vacation.Vacation{}, fmt.Errorf("failed to create vacation: %w", err)
	}

	return result, nil
}

// Update implements vacation.VacationRepository.
func (r *vacationRepositoryImpl) Update(ctx context.Context, updated vacation.Vacation) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE vacations
		SET duration_code = $2, start_date = $3, end_date = $4,
		    reason = $5, status = $6, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`

	commandTag, err := q.Exec(ctx, query,
		updated.ID,
		updated.DurationCode,
		updated.StartDate,
		updated.EndDate,
		updated.Reason,
		updated.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to update vacation: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return vacation.ErrVacationNotFound
	}

	return nil
}

// SoftDelete implements vacation.VacationRepository.
func (r *vacationRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE vacations
		SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete vacation: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return vacation.ErrVacationNotFound
	}

	return nil
}

// HasOverlap implements vacation.VacationRepository.
func (r *vacationRepositoryImpl) HasOverlap(ctx context.Context, employeeID string, start, end time.Time, excludeID *string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM vacations
			WHERE employee_id = $1
			  AND deleted_at IS NULL
			  AND status <> 'cancelled'
			  AND start_date <= $3
			  AND end_date >= $2
			  AND ($4::uuid IS NULL OR id <> $4)
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, start, end, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check vacation overlap: %w", err)
	}

	return exists, nil
}
