package memo

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/memoboard/internal/domain"
)

type memoRepo interface {
	Load(ctx context.Context) ([]domain.Memo, error)
	Update(ctx context.Context, fn func(memos []domain.Memo) ([]domain.Memo, error)) error
}

// Service provides memo board operations. Each call is one full
// load-mutate-save cycle against the repository.
type Service struct {
	memos memoRepo
	log   *slog.Logger
	now   func() time.Time
}

// NewService creates a new Memo service.
func NewService(
	log *slog.Logger,
	memos memoRepo,
) *Service {
	return &Service{
		memos: memos,
		log:   log.With("service", "memo"),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// mutate locates memo id inside one repository update, applies fn to it and
// refreshes UpdatedAt. The returned memo is a copy of the persisted record.
func (s *Service) mutate(ctx context.Context, id int64, fn func(m *domain.Memo) error) (*domain.Memo, error) {
	var updated domain.Memo

	err := s.memos.Update(ctx, func(memos []domain.Memo) ([]domain.Memo, error) {
		idx := indexOf(memos, id)
		if idx < 0 {
			return nil, fmt.Errorf("memo %d: %w", id, domain.ErrNotFound)
		}

		m := &memos[idx]
		if err := fn(m); err != nil {
			return nil, err
		}
		m.Touch(s.now())

		updated = cloneMemo(*m)
		return memos, nil
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func indexOf(memos []domain.Memo, id int64) int {
	for i := range memos {
		if memos[i].ID == id {
			return i
		}
	}
	return -1
}

func cloneMemo(m domain.Memo) domain.Memo {
	items := make([]domain.ChecklistItem, len(m.Items))
	copy(items, m.Items)
	m.Items = items
	return m
}
