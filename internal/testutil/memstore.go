// Package testutil provides in-memory repositories for handler and router tests.
package testutil

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"causes/internal/domain"
)

// MemStore implements CauseRepository, ContributionRepository and
// HealthChecker in memory. Set Err to make every call fail with it.
type MemStore struct {
	mu            sync.Mutex
	order         []string
	causes        map[string]domain.Cause
	contributions []domain.Contribution
	Err           error
	PingErr       error
}

func NewMemStore() *MemStore {
	return &MemStore{causes: make(map[string]domain.Cause)}
}

// ContributionRepo exposes the contribution side of the store. The two
// repository interfaces both declare Create, so one type cannot satisfy both.
func (s *MemStore) ContributionRepo() domain.ContributionRepository {
	return contributionView{s}
}

// Contributions returns a copy of every stored contribution.
func (s *MemStore) Contributions() []domain.Contribution {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Contribution(nil), s.contributions...)
}

func (s *MemStore) Ping(context.Context) error {
	return s.PingErr
}

func (s *MemStore) List(context.Context) ([]domain.Cause, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	items := make([]domain.Cause, 0, len(s.order))
	for _, id := range s.order {
		items = append(items, s.causes[id])
	}
	return items, nil
}

func (s *MemStore) Create(_ context.Context, in domain.CauseInput) (domain.InsertResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return domain.InsertResult{}, s.Err
	}
	id := primitive.NewObjectID().Hex()
	s.causes[id] = domain.Cause{ID: id, Title: in.Title, Description: in.Description, ImageURL: in.ImageURL}
	s.order = append(s.order, id)
	return domain.InsertResult{Acknowledged: true, InsertedID: id}, nil
}

func (s *MemStore) GetByID(_ context.Context, id string) (*domain.Cause, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	c, ok := s.causes[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

func (s *MemStore) Replace(_ context.Context, id string, in domain.CauseInput) (domain.UpdateResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return domain.UpdateResult{}, s.Err
	}
	c, ok := s.causes[id]
	if !ok {
		return domain.UpdateResult{Acknowledged: true}, nil
	}
	updated := domain.Cause{ID: id, Title: in.Title, Description: in.Description, ImageURL: in.ImageURL}
	var modified int64
	if updated != c {
		modified = 1
	}
	s.causes[id] = updated
	return domain.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: modified}, nil
}

func (s *MemStore) Delete(_ context.Context, id string) (domain.DeleteResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return domain.DeleteResult{}, s.Err
	}
	if _, ok := s.causes[id]; !ok {
		return domain.DeleteResult{Acknowledged: true}, nil
	}
	delete(s.causes, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return domain.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
}

type contributionView struct {
	s *MemStore
}

func (v contributionView) Create(_ context.Context, c *domain.Contribution) (domain.InsertResult, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	if v.s.Err != nil {
		return domain.InsertResult{}, v.s.Err
	}
	if c.CauseID == "" {
		return domain.InsertResult{}, errors.New("cause id required")
	}
	c.ID = primitive.NewObjectID().Hex()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	v.s.contributions = append(v.s.contributions, *c)
	return domain.InsertResult{Acknowledged: true, InsertedID: c.ID}, nil
}

func (v contributionView) ListByCause(_ context.Context, causeID string) ([]domain.Contribution, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	if v.s.Err != nil {
		return nil, v.s.Err
	}
	items := []domain.Contribution{}
	for _, c := range v.s.contributions {
		if c.CauseID == causeID {
			items = append(items, c)
		}
	}
	return items, nil
}

var (
	_ domain.CauseRepository        = (*MemStore)(nil)
	_ domain.ContributionRepository = contributionView{}
	_ domain.HealthChecker          = (*MemStore)(nil)
)
