package domain

import (
	"cmp"
	"slices"
	"time"
)

// Memo is a single board entry, either free text or a checklist.
type Memo struct {
	ID        int64
	Author    string
	Type      MemoType
	Content   string
	Items     []ChecklistItem
	Color     Color
	Pinned    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ChecklistItem is one line of a checklist memo. ID is the item's position
// at the time the list was last replaced, so it is only unique per memo.
type ChecklistItem struct {
	ID      int
	Text    string
	Checked bool
}

// IsChecklist reports whether the memo carries checklist items.
func (m *Memo) IsChecklist() bool {
	return m.Type == MemoTypeChecklist
}

// Item returns a pointer to the item with the given id, or nil.
func (m *Memo) Item(id int) *ChecklistItem {
	for i := range m.Items {
		if m.Items[i].ID == id {
			return &m.Items[i]
		}
	}
	return nil
}

// ReplaceItems swaps the whole item list and renumbers it from zero.
func (m *Memo) ReplaceItems(items []ChecklistItem) {
	m.Items = NumberItems(items)
}

// Touch refreshes UpdatedAt.
func (m *Memo) Touch(now time.Time) {
	m.UpdatedAt = now
}

// NumberItems returns a copy of items with positional ids 0..n-1.
func NumberItems(items []ChecklistItem) []ChecklistItem {
	out := make([]ChecklistItem, len(items))
	for i, it := range items {
		it.ID = i
		out[i] = it
	}
	return out
}

// NextMemoID derives an id from the creation time in milliseconds. When the
// clock has not moved past the newest existing id, the id continues from it.
func NextMemoID(existing []Memo, now time.Time) int64 {
	id := now.UnixMilli()
	for _, m := range existing {
		if m.ID >= id {
			id = m.ID + 1
		}
	}
	return id
}

// SortForDisplay orders memos in place: pinned first, then newest CreatedAt
// first. Equal timestamps fall back to the higher id first.
func SortForDisplay(memos []Memo) {
	slices.SortStableFunc(memos, compareForDisplay)
}

func compareForDisplay(a, b Memo) int {
	if a.Pinned != b.Pinned {
		if a.Pinned {
			return -1
		}
		return 1
	}
	if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
		return c
	}
	return cmp.Compare(b.ID, a.ID)
}
