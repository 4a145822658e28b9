package repo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"causes/internal/domain"
	"causes/internal/infra"
	"causes/internal/sqlinline"
)

// ContributionRepositoryPG implements ContributionRepository using PostgreSQL.
type ContributionRepositoryPG struct {
	sql infra.SQLExecutor
}

func NewContributionRepositoryPG(sql infra.SQLExecutor) *ContributionRepositoryPG {
	return &ContributionRepositoryPG{sql: sql}
}

func (r *ContributionRepositoryPG) Create(ctx context.Context, c *domain.Contribution) (domain.InsertResult, error) {
	causeID, err := domain.CanonicalID(c.CauseID)
	if err != nil {
		return domain.InsertResult{}, domain.ErrInvalidID
	}
	c.CauseID = causeID
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}

	id := primitive.NewObjectID().Hex()
	_, err = r.sql.Exec(ctx, sqlinline.QInsertContribution,
		id, c.CauseID, c.CauseDonatedTo, c.Name, c.Email, c.Amount, c.CreatedAt)
	if err != nil {
		return domain.InsertResult{}, fmt.Errorf("insert contribution: %w", err)
	}
	c.ID = id
	return domain.InsertResult{Acknowledged: true, InsertedID: id}, nil
}

func (r *ContributionRepositoryPG) ListByCause(ctx context.Context, causeID string) ([]domain.Contribution, error) {
	causeID, err := domain.CanonicalID(causeID)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	rows, err := r.sql.Query(ctx, sqlinline.QListContributionsByCause, causeID)
	if err != nil {
		return nil, fmt.Errorf("list contributions: %w", err)
	}
	defer rows.Close()

	items := []domain.Contribution{}
	for rows.Next() {
		var c domain.Contribution
		if err := rows.Scan(&c.ID, &c.CauseID, &c.CauseDonatedTo, &c.Name, &c.Email, &c.Amount, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan contribution: %w", err)
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list contributions: %w", err)
	}
	return items, nil
}

var _ domain.ContributionRepository = (*ContributionRepositoryPG)(nil)
