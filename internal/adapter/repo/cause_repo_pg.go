package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"causes/internal/domain"
	"causes/internal/infra"
	"causes/internal/sqlinline"
)

// CauseRepositoryPG implements CauseRepository using PostgreSQL. Identifiers
// are ObjectID hex strings so both stores share one id scheme.
type CauseRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewCauseRepositoryPG creates a new cause repo.
func NewCauseRepositoryPG(sql infra.SQLExecutor) *CauseRepositoryPG {
	return &CauseRepositoryPG{sql: sql}
}

// EnsureSchema creates the causes and contributions tables when missing.
func EnsureSchema(ctx context.Context, sql infra.SQLExecutor) error {
	for _, q := range []string{sqlinline.QCreateCausesTable, sqlinline.QCreateContributionsTable} {
		if _, err := sql.Exec(ctx, q); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

func (r *CauseRepositoryPG) List(ctx context.Context) ([]domain.Cause, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListCauses)
	if err != nil {
		return nil, fmt.Errorf("list causes: %w", err)
	}
	defer rows.Close()

	items := []domain.Cause{}
	for rows.Next() {
		var c domain.Cause
		if err := rows.Scan(&c.ID, &c.Title, &c.Description, &c.ImageURL); err != nil {
			return nil, fmt.Errorf("scan cause: %w", err)
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list causes: %w", err)
	}
	return items, nil
}

func (r *CauseRepositoryPG) Create(ctx context.Context, in domain.CauseInput) (domain.InsertResult, error) {
	id := primitive.NewObjectID().Hex()
	if _, err := r.sql.Exec(ctx, sqlinline.QInsertCause, id, in.Title, in.Description, in.ImageURL); err != nil {
		return domain.InsertResult{}, fmt.Errorf("insert cause: %w", err)
	}
	return domain.InsertResult{Acknowledged: true, InsertedID: id}, nil
}

func (r *CauseRepositoryPG) GetByID(ctx context.Context, id string) (*domain.Cause, error) {
	id, err := domain.CanonicalID(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	var c domain.Cause
	err = r.sql.QueryRow(ctx, sqlinline.QGetCause, id).Scan(&c.ID, &c.Title, &c.Description, &c.ImageURL)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get cause: %w", err)
	}
	return &c, nil
}

func (r *CauseRepositoryPG) Replace(ctx context.Context, id string, in domain.CauseInput) (domain.UpdateResult, error) {
	id, err := domain.CanonicalID(id)
	if err != nil {
		return domain.UpdateResult{}, domain.ErrInvalidID
	}

	tag, err := r.sql.Exec(ctx, sqlinline.QReplaceCause, id, in.Title, in.Description, in.ImageURL)
	if err != nil {
		return domain.UpdateResult{}, fmt.Errorf("update cause: %w", err)
	}
	n := tag.RowsAffected()
	return domain.UpdateResult{Acknowledged: true, MatchedCount: n, ModifiedCount: n}, nil
}

func (r *CauseRepositoryPG) Delete(ctx context.Context, id string) (domain.DeleteResult, error) {
	id, err := domain.CanonicalID(id)
	if err != nil {
		return domain.DeleteResult{}, domain.ErrInvalidID
	}

	tag, err := r.sql.Exec(ctx, sqlinline.QDeleteCause, id)
	if err != nil {
		return domain.DeleteResult{}, fmt.Errorf("delete cause: %w", err)
	}
	return domain.DeleteResult{Acknowledged: true, DeletedCount: tag.RowsAffected()}, nil
}

var _ domain.CauseRepository = (*CauseRepositoryPG)(nil)
