package jsonfile

import (
	"time"

	"github.com/heartmarshall/memoboard/internal/domain"
)

// memoRecord is the on-disk shape of a memo. Field names match the files
// written by earlier versions of the board, so existing data loads as-is.
type memoRecord struct {
	ID        int64        `json:"id"`
	Author    string       `json:"author"`
	Type      string       `json:"type"`
	Content   string       `json:"content"`
	Items     []itemRecord `json:"items"`
	Color     string       `json:"color"`
	Pinned    bool         `json:"pinned"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

type itemRecord struct {
	ID      int    `json:"id"`
	Text    string `json:"text"`
	Checked bool   `json:"checked"`
}

func toDomain(r memoRecord) domain.Memo {
	typ := domain.MemoType(r.Type)
	if typ == "" {
		typ = domain.MemoTypeMemo
	}

	items := make([]domain.ChecklistItem, len(r.Items))
	for i, it := range r.Items {
		items[i] = domain.ChecklistItem{ID: it.ID, Text: it.Text, Checked: it.Checked}
	}

	return domain.Memo{
		ID:        r.ID,
		Author:    r.Author,
		Type:      typ,
		Content:   r.Content,
		Items:     items,
		Color:     domain.Color(r.Color),
		Pinned:    r.Pinned,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func fromDomain(m domain.Memo) memoRecord {
	items := make([]itemRecord, len(m.Items))
	for i, it := range m.Items {
		items[i] = itemRecord{ID: it.ID, Text: it.Text, Checked: it.Checked}
	}

	return memoRecord{
		ID:        m.ID,
		Author:    m.Author,
		Type:      m.Type.String(),
		Content:   m.Content,
		Items:     items,
		Color:     m.Color.String(),
		Pinned:    m.Pinned,
		CreatedAt: m.CreatedAt.UTC(),
		UpdatedAt: m.UpdatedAt.UTC(),
	}
}
