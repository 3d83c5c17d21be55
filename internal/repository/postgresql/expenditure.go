package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/hayatfoods/hrfleet-backend-go/internal/domain/expenditure"
	"github.com/hayatfoods/hrfleet-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type expenditureRepositoryImpl struct {
	db *database.DB
}

func NewExpenditureRepository(db *database.DB) expenditure.ExpenditureRepository {
	return &expenditureRepositoryImpl{db: db}
}

const expenditureColumns = `
	ex.id, ex.branch_id, ex.category, ex.description, ex.amount, ex.spent_at,
	ex.recorded_by, ex.created_at, ex.updated_at, COALESCE(b.name, '')
`

func scanExpenditure(row pgx.Row) (expenditure.ExpenditureWithBranch, error) {
	var e expenditure.ExpenditureWithBranch
	err := row.Scan(
		&e.ID,
		&e.BranchID,
		&e.Category,
		&e.Description,
		&e.Amount,
		&e.SpentAt,
		&e.RecordedBy,
		&e.CreatedAt,
		&e.UpdatedAt,
		&e.BranchName,
	)
	return e, err
}

// GetByID implements expenditure.ExpenditureRepository.
func (r *expenditureRepositoryImpl) GetByID(ctx context.Context, id string) (expenditure.ExpenditureWithBranch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + expenditureColumns + `
		FROM expenditures ex
		LEFT JOIN branches b ON b.id = ex.branch_id
		WHERE ex.id = $1 AND ex.deleted_at IS NULL
	`

	result, err := scanExpenditure(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return expenditure.ExpenditureWithBranch{}, expenditure.ErrExpenditureNotFound
		}
		return expenditure.ExpenditureWithBranch{}, fmt.Errorf("failed to get expenditure: %w", err)
	}

	return result, nil
}

// List implements expenditure.ExpenditureRepository.
func (r *expenditureRepositoryImpl) List(ctx context.Context) ([]expenditure.ExpenditureWithBranch, error) {
	return r.list(ctx, nil)
}

// ListByBranch implements expenditure.ExpenditureRepository.
func (r *expenditureRepositoryImpl) ListByBranch(ctx context.Context, branchID string) ([]expenditure.ExpenditureWithBranch, error) {
	return r.list(ctx, &branchID)
}

func (r *expenditureRepositoryImpl) list(ctx context.Context, branchID *string) ([]expenditure.ExpenditureWithBranch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + expenditureColumns + `
		FROM expenditures ex
		LEFT JOIN branches b ON b.id = ex.branch_id
		WHERE ex.deleted_at IS NULL
	`
	args := []interface{}{}
	if branchID != nil {
		query += ` AND ex.branch_id = $1`
		args = append(args, *branchID)
	}
	query += ` ORDER BY ex.spent_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenditures: %w", err)
	}
	defer rows.Close()

	var expenditures []expenditure.ExpenditureWithBranch
	for rows.Next() {
		e, err := scanExpenditure(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expenditure: %w", err)
		}
		expenditures = append(expenditures, e)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return expenditures, nil
}

// Create implements expenditure.ExpenditureRepository.
func (r *expenditureRepositoryImpl) Create(ctx context.Context, newExpenditure expenditure.Expenditure) (expenditure.Expenditure, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO expenditures (
			id, branch_id, category, description, amount, spent_at,
			recorded_by, created_at, updated_at
		)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	result := newExpenditure
	err := q.QueryRow(ctx, query,
		newExpenditure.BranchID,
		newExpenditure.Category,
		newExpenditure.Description,
		newExpenditure.Amount,
		newExpenditure.SpentAt,
		newExpenditure.RecordedBy,
	).Scan(&result.ID, &result.CreatedAt, &result.UpdatedAt)
	if err != nil {
		return expenditure.Expenditure{}, fmt.Errorf("failed to create expenditure: %w", err)
	}

	return result, nil
}

// Update implements expenditure.ExpenditureRepository.
func (r *expenditureRepositoryImpl) Update(ctx context.Context, id string, req expenditure.UpdateExpenditureRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE expenditures SET updated_at = NOW()`
	args := []interface{}{}
	argIdx := 1

	set := func(column string, value interface{}) {
		query += fmt.Sprintf(", %s = $%d", column, argIdx)
		args = append(args, value)
		argIdx++
	}

	if req.Category != nil {
		set("category", *req.Category)
	}
	if req.Description != nil {
		set("description", *req.Description)
	}
	if req.Amount != nil {
		set("amount", *req.Amount)
	}
	if req.SpentAt != nil {
		set("spent_at", parseDate(req.SpentAt))
	}

	query += fmt.Sprintf(" WHERE id = $%d AND deleted_at IS NULL", argIdx)
	args = append(args, id)

	commandTag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update expenditure: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return expenditure.ErrExpenditureNotFound
	}

	return nil
}

// SoftDelete implements expenditure.ExpenditureRepository.
func (r *expenditureRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE expenditures
		SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete expenditure: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return expenditure.ErrExpenditureNotFound
	}

	return nil
}
