package memo

import (
	"context"
	"fmt"

	"github.com/heartmarshall/memoboard/internal/domain"
)

// List returns every memo in display order: pinned first, newest first.
func (s *Service) List(ctx context.Context) ([]domain.Memo, error) {
	memos, err := s.memos.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load memos: %w", err)
	}

	domain.SortForDisplay(memos)
	return memos, nil
}

// Get returns a single memo by ID.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Memo, error) {
	memos, err := s.memos.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load memos: %w", err)
	}

	idx := indexOf(memos, id)
	if idx < 0 {
		return nil, fmt.Errorf("memo %d: %w", id, domain.ErrNotFound)
	}

	m := memos[idx]
	return &m, nil
}
