package memo

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/memoboard/internal/domain"
)

// ToggleItem flips the checked flag of one checklist item.
func (s *Service) ToggleItem(ctx context.Context, input ToggleItemInput) (*domain.Memo, error) {
	m, err := s.mutate(ctx, input.MemoID, func(m *domain.Memo) error {
		if !m.IsChecklist() {
			return fmt.Errorf("memo %d is a %s: %w", m.ID, m.Type, domain.ErrTypeMismatch)
		}
		item := m.Item(input.ItemID)
		if item == nil {
			return fmt.Errorf("item %d of memo %d: %w", input.ItemID, m.ID, domain.ErrNotFound)
		}
		item.Checked = !item.Checked
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("toggle item: %w", err)
	}

	s.log.DebugContext(ctx, "checklist item toggled",
		slog.Int64("memo_id", m.ID),
		slog.Int("item_id", input.ItemID),
	)

	return m, nil
}

// SetColor overwrites the memo's color. Any value is accepted; an empty
// string clears it.
func (s *Service) SetColor(ctx context.Context, input SetColorInput) (*domain.Memo, error) {
	color := normalizeColor(input.Color)

	m, err := s.mutate(ctx, input.ID, func(m *domain.Memo) error {
		m.Color = color
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("set color: %w", err)
	}

	if !color.InPalette() {
		s.log.DebugContext(ctx, "color outside palette",
			slog.Int64("memo_id", m.ID),
			slog.String("color", color.String()),
		)
	}

	return m, nil
}

// TogglePin flips the memo's pinned flag.
func (s *Service) TogglePin(ctx context.Context, id int64) (*domain.Memo, error) {
	m, err := s.mutate(ctx, id, func(m *domain.Memo) error {
		m.Pinned = !m.Pinned
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("toggle pin: %w", err)
	}

	s.log.InfoContext(ctx, "memo pin toggled",
		slog.Int64("memo_id", m.ID),
		slog.Bool("pinned", m.Pinned),
	)

	return m, nil
}
