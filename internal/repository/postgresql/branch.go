package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hayatfoods/hrfleet-backend-go/internal/domain/branch"
	"github.com/hayatfoods/hrfleet-backend-go/internal/domain/document"
	"github.com/hayatfoods/hrfleet-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type branchRepositoryImpl struct {
	db *database.DB
}

func NewBranchRepository(db *database.DB) branch.BranchRepository {
	return &branchRepositoryImpl{db: db}
}

const branchColumns = `
	br.id, br.name, br.location, br.manager_name, br.contact_number,
	br.cr_expiry, br.ruksa_expiry, br.computer_card_expiry, br.certification_expiry,
	br.documents, br.created_at, br.updated_at,
	(SELECT COUNT(*) FROM employees e WHERE e.branch_id = br.id AND e.deleted_at IS NULL),
	(SELECT COUNT(*) FROM vehicles v WHERE v.branch_id = br.id AND v.deleted_at IS NULL)
`

func scanBranch(row pgx.Row) (branch.BranchWithCounts, error) {
	var b branch.BranchWithCounts
	err := row.Scan(
		&b.ID,
		&b.Name,
		&b.Location,
		&b.ManagerName,
		&b.ContactNumber,
		&b.CRExpiry,
		&b.RuksaExpiry,
		&b.ComputerCardExpiry,
		&b.CertificationExpiry,
		&b.Documents,
		&b.CreatedAt,
		&b.UpdatedAt,
		&b.EmployeeCount,
		&b.VehicleCount,
	)
	return b, err
}

// GetByID implements branch.BranchRepository.
func (r *branchRepositoryImpl) GetByID(ctx context.Context, id string) (branch.BranchWithCounts, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + branchColumns + `
		FROM branches br
		WHERE br.id = $1 AND br.deleted_at IS NULL
	`

	result, err := scanBranch(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return branch.BranchWithCounts{}, branch.ErrBranchNotFound
		}
		return branch.BranchWithCounts{}, fmt.Errorf("failed to get branch: %w", err)
	}

	return result, nil
}

// List implements branch.BranchRepository.
func (r *branchRepositoryImpl) List(ctx context.Context) ([]branch.BranchWithCounts, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + branchColumns + `
		FROM branches br
		WHERE br.deleted_at IS NULL
		ORDER BY br.name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}
	defer rows.Close()

	var branches []branch.BranchWithCounts
	for rows.Next() {
		b, err := scanBranch(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan branch: %w", err)
		}
		branches = append(branches, b)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return branches, nil
}

// Create implements branch.BranchRepository.
func (r *branchRepositoryImpl) Create(ctx context.Context, newBranch branch.Branch) (branch.Branch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO branches (
			id, name, location, manager_name, contact_number,
			cr_expiry, ruksa_expiry, computer_card_expiry, certification_expiry,
			documents, created_at, updated_at
		)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	result := newBranch
	if result.Documents == nil {
		result.Documents = document.Set{}
	}

	err := q.QueryRow(ctx, query,
		newBranch.Name,
		newBranch.Location,
		newBranch.ManagerName,
		newBranch.ContactNumber,
		newBranch.CRExpiry,
		newBranch.RuksaExpiry,
		newBranch.ComputerCardExpiry,
		newBranch.CertificationExpiry,
		result.Documents,
	).Scan(&result.ID, &result.CreatedAt, &result.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return branch.Branch{}, branch.ErrBranchNameExists
		}
		return branch.Branch{}, fmt.Errorf("failed to create branch: %w", err)
	}

	return result, nil
}

// Update implements branch.BranchRepository.
func (r *branchRepositoryImpl) Update(ctx context.Context, id string, req branch.UpdateBranchRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE branches SET updated_at = NOW()`
	args := []interface{}{}
	argIdx := 1

	set := func(column string, value interface{}) {
		query += fmt.Sprintf(", %s = $%d", column, argIdx)
		args = append(args, value)
		argIdx++
	}

	if req.Name != nil {
		set("name", *req.Name)
	}
	if req.Location != nil {
		set("location", *req.Location)
	}
	if req.ManagerName != nil {
		set("manager_name", *req.ManagerName)
	}
	if req.ContactNumber != nil {
		set("contact_number", *req.ContactNumber)
	}
	if req.CRExpiry != nil {
		set("cr_expiry", parseDate(req.CRExpiry))
	}
	if req.RuksaExpiry != nil {
		set("ruksa_expiry", parseDate(req.RuksaExpiry))
	}
	if req.ComputerCardExpiry != nil {
		set("computer_card_expiry", parseDate(req.ComputerCardExpiry))
	}
	if req.CertificationExpiry != nil {
		set("certification_expiry", parseDate(req.CertificationExpiry))
	}

	query += fmt.Sprintf(" WHERE id = $%d AND deleted_at IS NULL", argIdx)
	args = append(args, id)

	commandTag, err := q.Exec(ctx, query, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return branch.ErrBranchNameExists
		}
		return fmt.Errorf("failed to update branch: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return branch.ErrBranchNotFound
	}

	return nil
}

// SoftDelete implements branch.BranchRepository.
func (r *branchRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE branches
		SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete branch: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return branch.ErrBranchNotFound
	}

	return nil
}

// ExistsByName implements branch.BranchRepository.
func (r *branchRepositoryImpl) ExistsByName(ctx context.Context, name string, excludeID *string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM branches
			WHERE LOWER(name) = LOWER($1) AND deleted_at IS NULL AND ($2::uuid IS NULL OR id <> $2)
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, name, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check branch name: %w", err)
	}

	return exists, nil
}

// SetDocument implements branch.BranchRepository.
func (r *branchRepositoryImpl) SetDocument(ctx context.Context, id string, documentType string, rec document.Record) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE branches
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
		return branch.ErrBranchNotFound
	}

	return nil
}
