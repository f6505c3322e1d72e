package memo

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/memoboard/internal/domain"
)

// Edit replaces the content of a memo or the items of a checklist, and the
// color of either. Fields that do not apply to the memo's type are ignored.
// Replacing items renumbers them from zero.
func (s *Service) Edit(ctx context.Context, input EditInput) (*domain.Memo, error) {
	m, err := s.mutate(ctx, input.ID, func(m *domain.Memo) error {
		if !m.IsChecklist() && input.Content != nil {
			m.Content = *input.Content
		}
		if m.IsChecklist() && input.Items != nil {
			m.ReplaceItems(normalizeItems(input.Items))
		}
		if input.Color != nil {
			m.Color = normalizeColor(*input.Color)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("edit memo: %w", err)
	}

	s.log.InfoContext(ctx, "memo edited",
		slog.Int64("memo_id", m.ID),
		slog.Bool("content", input.Content != nil),
		slog.Bool("items", input.Items != nil),
		slog.Bool("color", input.Color != nil),
	)

	return m, nil
}
