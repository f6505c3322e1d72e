package memo

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/memoboard/internal/domain"
)

// Create validates input and appends a new memo to the board.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Memo, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	typ := input.memoType()

	m := domain.Memo{
		Author:    strings.TrimSpace(input.Author),
		Type:      typ,
		Content:   input.Content,
		Items:     []domain.ChecklistItem{},
		Color:     normalizeColor(input.Color),
		Pinned:    false,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if typ == domain.MemoTypeChecklist {
		m.Items = normalizeItems(input.Items)
	}

	err := s.memos.Update(ctx, func(memos []domain.Memo) ([]domain.Memo, error) {
		m.ID = domain.NextMemoID(memos, now)
		return append(memos, m), nil
	})
	if err != nil {
		return nil, fmt.Errorf("create memo: %w", err)
	}

	s.log.InfoContext(ctx, "memo created",
		slog.Int64("memo_id", m.ID),
		slog.String("author", m.Author),
		slog.String("type", m.Type.String()),
		slog.Int("items", len(m.Items)),
	)

	created := cloneMemo(m)
	return &created, nil
}
