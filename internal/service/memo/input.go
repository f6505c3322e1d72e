package memo

import (
	"strings"

	"github.com/heartmarshall/memoboard/internal/domain"
)

// ItemInput is one checklist line as submitted by a client.
type ItemInput struct {
	Text    string
	Checked bool
}

// CreateInput holds the parameters for creating a memo.
type CreateInput struct {
	Author  string
	Type    string
	Content string
	Items   []ItemInput
	Color   string
}

// memoType resolves the requested type; empty means a plain memo.
func (i CreateInput) memoType() domain.MemoType {
	t := strings.TrimSpace(i.Type)
	if t == "" {
		return domain.MemoTypeMemo
	}
	return domain.MemoType(t)
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Author) == "" {
		errs = append(errs, domain.FieldError{Field: "author", Message: "required"})
	}

	switch t := i.memoType(); t {
	case domain.MemoTypeMemo:
		if strings.TrimSpace(i.Content) == "" {
			errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
		}
	case domain.MemoTypeChecklist:
		if len(normalizeItems(i.Items)) == 0 {
			errs = append(errs, domain.FieldError{Field: "items", Message: "at least one item required"})
		}
	default:
		errs = append(errs, domain.FieldError{Field: "type", Message: "must be memo or checklist"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// EditInput holds the parameters for editing a memo. Nil fields are left
// unchanged. A non-nil empty Items clears a checklist.
type EditInput struct {
	ID      int64
	Content *string
	Items   []ItemInput
	Color   *string
}

// SetColorInput holds the parameters for recoloring a memo.
type SetColorInput struct {
	ID    int64
	Color string
}

// ToggleItemInput identifies one checklist item.
type ToggleItemInput struct {
	MemoID int64
	ItemID int
}

// normalizeItems trims item text, drops blank lines and numbers the rest
// from zero.
func normalizeItems(in []ItemInput) []domain.ChecklistItem {
	items := make([]domain.ChecklistItem, 0, len(in))
	for _, it := range in {
		text := strings.TrimSpace(it.Text)
		if text == "" {
			continue
		}
		items = append(items, domain.ChecklistItem{Text: text, Checked: it.Checked})
	}
	return domain.NumberItems(items)
}

func normalizeColor(c string) domain.Color {
	return domain.Color(strings.TrimSpace(c))
}
