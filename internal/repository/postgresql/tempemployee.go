package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hayatfoods/hrfleet-backend-go/internal/domain/document"
	"github.com/hayatfoods/hrfleet-backend-go/internal/domain/tempemployee"
	"github.com/hayatfoods/hrfleet-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type tempEmployeeRepositoryImpl struct {
	db *database.DB
}

func NewTempEmployeeRepository(db *database.DB) tempemployee.TempEmployeeRepository {
	return &tempEmployeeRepositoryImpl{db: db}
}

const tempEmployeeColumns = `
	t.id, t.work_branch_id, t.full_name, t.role, t.phone_number, t.status,
	t.qid_number, t.qid_expiry, t.medical_card_expiry, t.documents,
	t.created_at, t.updated_at, COALESCE(b.name, '')
`

func scanTempEmployee(row pgx.Row) (tempemployee.TempEmployeeWithBranch, error) {
	var t tempemployee.TempEmployeeWithBranch
	err := row.Scan(
		&t.ID,
		&t.WorkBranchID,
		&t.FullName,
		&t.Role,
		&t.PhoneNumber,
		&t.Status,
		&t.QIDNumber,
		&t.QIDExpiry,
		&t.MedicalCardExpiry,
		&t.Documents,
		&t.CreatedAt,
		&t.UpdatedAt,
		&t.WorkBranchName,
	)
	return t, err
}

// GetByID implements tempemployee.TempEmployeeRepository.
func (r *tempEmployeeRepositoryImpl) GetByID(ctx context.Context, id string) (tempemployee.TempEmployeeWithBranch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + tempEmployeeColumns + `
		FROM temp_employees t
		LEFT JOIN branches b ON b.id = t.work_branch_id
		WHERE t.id = $1 AND t.deleted_at IS NULL
	`

	result, err := scanTempEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return tempemployee.TempEmployeeWithBranch{}, tempemployee.ErrTempEmployeeNotFound
		}
		return tempemployee.TempEmployeeWithBranch{}, fmt.Errorf("failed to get temp employee: %w", err)
	}

	return result, nil
}

// List implements tempemployee.TempEmployeeRepository.
func (r *tempEmployeeRepositoryImpl) List(ctx context.Context) ([]tempemployee.TempEmployeeWithBranch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + tempEmployeeColumns + `
		FROM temp_employees t
		LEFT JOIN branches b ON b.id = t.work_branch_id
		WHERE t.deleted_at IS NULL
		ORDER BY t.full_name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list temp employees: %w", err)
	}
	defer rows.Close()

	var temps []tempemployee.TempEmployeeWithBranch
	for rows.Next() {
		t, err := scanTempEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan temp employee: %w", err)
		}
		temps = append(temps, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return temps, nil
}

// Create implements tempemployee.TempEmployeeRepository.
func (r *tempEmployeeRepositoryImpl) Create(ctx context.Context, newTempEmployee tempemployee.TempEmployee) (tempemployee.TempEmployee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO temp_employees (
			id, work_branch_id, full_name, role, phone_number, status,
			qid_number, qid_expiry, medical_card_expiry, documents,
			created_at, updated_at
		)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	result := newTempEmployee
	if result.Documents == nil {
		result.Documents = document.Set{}
	}

	err := q.QueryRow(ctx, query,
		newTempEmployee.WorkBranchID,
		newTempEmployee.FullName,
		newTempEmployee.Role,
		newTempEmployee.PhoneNumber,
		newTempEmployee.Status,
		newTempEmployee.QIDNumber,
		newTempEmployee.QIDExpiry,
		newTempEmployee.MedicalCardExpiry,
		result.Documents,
	).Scan(&result.ID, &result.CreatedAt, &result.UpdatedAt)
	if err != nil {
		return tempemployee.TempEmployee{}, fmt.Errorf("failed to create temp employee: %w", err)
	}

	return result, nil
}

// Update implements tempemployee.TempEmployeeRepository.
func (r *tempEmployeeRepositoryImpl) Update(ctx context.Context, id string, req tempemployee.UpdateTempEmployeeRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE temp_employees SET updated_at = NOW()`
	args := []interface{}{}
	argIdx := 1

	set := func(column string, value interface{}) {
		query += fmt.Sprintf(", %s = $%d", column, argIdx)
		args = append(args, value)
		argIdx++
	}

	if req.WorkBranchID != nil {
		set("work_branch_id", *req.WorkBranchID)
	}
	if req.FullName != nil {
		set("full_name", *req.FullName)
	}
	if req.Role != nil {
		set("role", *req.Role)
	}
	if req.PhoneNumber != nil {
		set("phone_number", *req.PhoneNumber)
	}
	if req.Status != nil {
		set("status", *req.Status)
	}
	if req.QIDNumber != nil {
		set("qid_number", *req.QIDNumber)
	}
	if req.QIDExpiry != nil {
		set("qid_expiry", parseDate(req.QIDExpiry))
	}
	if req.MedicalCardExpiry != nil {
		set("medical_card_expiry", parseDate(req.MedicalCardExpiry))
	}

	query += fmt.Sprintf(" WHERE id = $%d AND deleted_at IS NULL", argIdx)
	args = append(args, id)

	commandTag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update temp employee: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return tempemployee.ErrTempEmployeeNotFound
	}

	return nil
}

// SoftDelete implements tempemployee.TempEmployeeRepository.
func (r *tempEmployeeRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE temp_employees
		SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete temp employee: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return tempemployee.ErrTempEmployeeNotFound
	}

	return nil
}

// SetDocument implements tempemployee.TempEmployeeRepository.
func (r *tempEmployeeRepositoryImpl) SetDocument(ctx context.Context, id string, documentType string, rec document.Record) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE temp_employees
		SET documents = COALESCE(documents, '{}'::jsonb) || jsonb_build_object($2::text, $3::jsonb),
		    updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`

	value, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to encode document record: %w", err)
	}

	commandTag, err := q.Exec(ctx, query, id, documentType, value)
	if err != nil {
		return fmt.Errorf("failed to set document: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return tempemployee.ErrTempEmployeeNotFound
	}

	return nil
}
