package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hayatfoods/hrfleet-backend-go/internal/domain/document"
	"github.com/hayatfoods/hrfleet-backend-go/internal/domain/employee"
	"github.com/hayatfoods/hrfleet-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	e.id, e.branch_id, e.full_name, e.role, e.nationality, e.phone_number, e.email,
	e.join_date, e.status, e.qid_number, e.qid_expiry, e.passport_number,
	e.passport_expiry, e.visa_expiry, e.medical_card_expiry, e.documents,
	e.created_at, e.updated_at, COALESCE(b.name, '')
`

func scanEmployee(row pgx.Row) (employee.EmployeeWithBranch, error) {
	var e employee.EmployeeWithBranch
	err := row.Scan(
		&e.ID,
		&e.BranchID,
		&e.FullName,
		&e.Role,
		&e.Nationality,
		&e.PhoneNumber,
		&e.Email,
		&e.JoinDate,
		&e.Status,
		&e.QIDNumber,
		&e.QIDExpiry,
		&e.PassportNumber,
		&e.PassportExpiry,
		&e.VisaExpiry,
		&e.MedicalCardExpiry,
		&e.Documents,
		&e.CreatedAt,
		&e.UpdatedAt,
		&e.BranchName,
	)
	return e, err
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.EmployeeWithBranch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		LEFT JOIN branches b ON b.id = e.branch_id
		WHERE e.id = $1 AND e.deleted_at IS NULL
	`

	result, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.EmployeeWithBranch{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeWithBranch{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return result, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.EmployeeWithBranch, error) {
	return r.list(ctx, false)
}

// ListActive implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ListActive(ctx context.Context) ([]employee.EmployeeWithBranch, error) {
	return r.list(ctx, true)
}

func (r *employeeRepositoryImpl) list(ctx context.Context, activeOnly bool) ([]employee.EmployeeWithBranch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		LEFT JOIN branches b ON b.id = e.branch_id
		WHERE e.deleted_at IS NULL
	`
	if activeOnly {
		query += ` AND e.status = 'active'`
	}
	query += ` ORDER BY e.full_name ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.EmployeeWithBranch
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return employees, nil
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			id, branch_id, full_name, role, nationality, phone_number, email,
			join_date, status, qid_number, qid_expiry, passport_number,
			passport_expiry, visa_expiry, medical_card_expiry, documents,
			created_at, updated_at
		)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	result := newEmployee
	if result.Documents == nil {
		result.Documents = document.Set{}
	}

	err := q.QueryRow(ctx, query,
		newEmployee.BranchID,
		newEmployee.FullName,
		newEmployee.Role,
		newEmployee.Nationality,
		newEmployee.PhoneNumber,
		newEmployee.Email,
		newEmployee.JoinDate,
		newEmployee.Status,
		newEmployee.QIDNumber,
		newEmployee.QIDExpiry,
		newEmployee.PassportNumber,
		newEmployee.PassportExpiry,
		newEmployee.VisaExpiry,
		newEmployee.MedicalCardExpiry,
		result.Documents,
	).Scan(&result.ID, &result.CreatedAt, &result.UpdatedAt)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return result, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) error {
	q := GetQuerier(ctx, r.db)

	// Build dynamic update query
	query := `UPDATE employees SET updated_at = NOW()`
	args := []interface{}{}
	argIdx := 1

	set := func(column string, value interface{}) {
		query += fmt.Sprintf(", %s = $%d", column, argIdx)
		args = append(args, value)
		argIdx++
	}

	if req.BranchID != nil {
		set("branch_id", *req.BranchID)
	}
	if req.FullName != nil {
		set("full_name", *req.FullName)
	}
	if req.Role != nil {
		set("role", *req.Role)
	}
	if req.Nationality != nil {
		set("nationality", *req.Nationality)
	}
	if req.PhoneNumber != nil {
		set("phone_number", *req.PhoneNumber)
	}
	if req.Email != nil {
		set("email", *req.Email)
	}
	if req.JoinDate != nil {
		set("join_date", parseDate(req.JoinDate))
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
	if req.PassportNumber != nil {
		set("passport_number", *req.PassportNumber)
	}
	if req.PassportExpiry != nil {
		set("passport_expiry", parseDate(req.PassportExpiry))
	}
	if req.VisaExpiry != nil {
		set("visa_expiry", parseDate(req.VisaExpiry))
	}
	if req.MedicalCardExpiry != nil {
		set("medical_card_expiry", parseDate(req.MedicalCardExpiry))
	}

	query += fmt.Sprintf(" WHERE id = $%d AND deleted_at IS NULL", argIdx)
	args = append(args, id)

	commandTag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// SoftDelete implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// ExistsByQID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ExistsByQID(ctx context.Context, qidNumber string, excludeID *string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM employees
			WHERE qid_number = $1 AND deleted_at IS NULL AND ($2::uuid IS NULL OR id <> $2)
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, qidNumber, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check qid: %w", err)
	}

	return exists, nil
}

// SetDocument implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) SetDocument(ctx context.Context, id string, documentType string, rec document.Record) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
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
		return employee.ErrEmployeeNotFound
	}

	return nil
}
