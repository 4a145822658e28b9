package domain

import "context"

// CauseRepository defines persistence for causes. Lookups of an absent id
// return ErrNotFound; mutations report zero counts instead.
type CauseRepository interface {
	List(ctx context.Context) ([]Cause, error)
	Create(ctx context.Context, in CauseInput) (InsertResult, error)
	GetByID(ctx context.Context, id string) (*Cause, error)
	Replace(ctx context.Context, id string, in CauseInput) (UpdateResult, error)
	Delete(ctx context.Context, id string) (DeleteResult, error)
}

// ContributionRepository defines persistence for contributions.
type ContributionRepository interface {
	Create(ctx context.Context, contribution *Contribution) (InsertResult, error)
	ListByCause(ctx context.Context, causeID string) ([]Contribution, error)
}

// HealthChecker reports whether the backing store is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}
