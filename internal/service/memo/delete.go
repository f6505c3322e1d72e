package memo

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/heartmarshall/memoboard/internal/domain"
)

// Delete removes a memo by ID.
func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.memos.Update(ctx, func(memos []domain.Memo) ([]domain.Memo, error) {
		idx := indexOf(memos, id)
		if idx < 0 {
			return nil, fmt.Errorf("memo %d: %w", id, domain.ErrNotFound)
		}
		return slices.Delete(memos, idx, idx+1), nil
	})
	if err != nil {
		return fmt.Errorf("delete memo: %w", err)
	}

	s.log.InfoContext(ctx, "memo deleted", slog.Int64("memo_id", id))

	return nil
}
