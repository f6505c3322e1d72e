package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/memoboard/internal/domain"
	"github.com/heartmarshall/memoboard/internal/service/memo"
	"github.com/heartmarshall/memoboard/pkg/ctxutil"
)

// memoService defines the minimal interface needed by MemoHandler.
type memoService interface {
	List(ctx context.Context) ([]domain.Memo, error)
	Get(ctx context.Context, id int64) (*domain.Memo, error)
	Create(ctx context.Context, input memo.CreateInput) (*domain.Memo, error)
	Edit(ctx context.Context, input memo.EditInput) (*domain.Memo, error)
	ToggleItem(ctx context.Context, input memo.ToggleItemInput) (*domain.Memo, error)
	SetColor(ctx context.Context, input memo.SetColorInput) (*domain.Memo, error)
	TogglePin(ctx context.Context, id int64) (*domain.Memo, error)
	Delete(ctx context.Context, id int64) error
}

// MemoHandler serves the /api/memos endpoints.
type MemoHandler struct {
	svc memoService
	log *slog.Logger
}

// NewMemoHandler creates a MemoHandler.
func NewMemoHandler(svc memoService, logger *slog.Logger) *MemoHandler {
	return &MemoHandler{svc: svc, log: logger.With("handler", "memo")}
}

// itemInput accepts either a bare string or {"text": ..., "checked": ...}.
type itemInput struct {
	Text    string
	Checked bool
}

func (i *itemInput) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*i = itemInput{Text: text}
		return nil
	}

	var obj struct {
		Text    *string `json:"text"`
		Checked bool    `json:"checked"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("item must be a string or an object with text: %w", err)
	}
	if obj.Text == nil {
		// null or {} carry no text and are dropped like blank lines.
		*i = itemInput{}
		return nil
	}
	*i = itemInput{Text: *obj.Text, Checked: obj.Checked}
	return nil
}

func toItemInputs(in []itemInput) []memo.ItemInput {
	if in == nil {
		return nil
	}
	out := make([]memo.ItemInput, len(in))
	for i, it := range in {
		out[i] = memo.ItemInput{Text: it.Text, Checked: it.Checked}
	}
	return out
}

type createMemoRequest struct {
	Author  string      `json:"author"`
	Type    string      `json:"type"`
	Content string      `json:"content"`
	Items   []itemInput `json:"items"`
	Color   string      `json:"color"`
}

type editMemoRequest struct {
	Content *string     `json:"content"`
	Items   []itemInput `json:"items"`
	Color   *string     `json:"color"`
}

type setColorRequest struct {
	Color string `json:"color"`
}

type memoResponse struct {
	ID        int64          `json:"id"`
	Author    string         `json:"author"`
	Type      string         `json:"type"`
	Content   string         `json:"content"`
	Items     []itemResponse `json:"items"`
	Color     string         `json:"color"`
	Pinned    bool           `json:"pinned"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

type itemResponse struct {
	ID      int    `json:"id"`
	Text    string `json:"text"`
	Checked bool   `json:"checked"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// List handles GET /api/memos.
func (h *MemoHandler) List(w http.ResponseWriter, r *http.Request) {
	memos, err := h.svc.List(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	out := make([]memoResponse, len(memos))
	for i := range memos {
		out[i] = toMemoResponse(&memos[i])
	}
	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /api/memos/{id}.
func (h *MemoHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.memoID(w, r)
	if !ok {
		return
	}

	m, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toMemoResponse(m))
}

// Create handles POST /api/memos.
func (h *MemoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createMemoRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	m, err := h.svc.Create(r.Context(), memo.CreateInput{
		Author:  req.Author,
		Type:    req.Type,
		Content: req.Content,
		Items:   toItemInputs(req.Items),
		Color:   req.Color,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toMemoResponse(m))
}

// Edit handles PUT /api/memos/{id}. Every body field is optional; an empty
// body only refreshes updated_at.
func (h *MemoHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := h.memoID(w, r)
	if !ok {
		return
	}

	var req editMemoRequest
	if err := decodeJSON(w, r, &req); err != nil && !errors.Is(err, errEmptyBody) {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	m, err := h.svc.Edit(r.Context(), memo.EditInput{
		ID:      id,
		Content: req.Content,
		Items:   toItemInputs(req.Items),
		Color:   req.Color,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toMemoResponse(m))
}

// ToggleItem handles PATCH /api/memos/{id}/toggle/{itemId}.
func (h *MemoHandler) ToggleItem(w http.ResponseWriter, r *http.Request) {
	id, ok := h.memoID(w, r)
	if !ok {
		return
	}

	// An unparsable item id can never match, so the service reports it as
	// not found after the memo and type checks.
	itemID, err := strconv.Atoi(r.PathValue("itemId"))
	if err != nil || itemID < 0 {
		itemID = -1
	}

	m, err := h.svc.ToggleItem(r.Context(), memo.ToggleItemInput{MemoID: id, ItemID: itemID})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toMemoResponse(m))
}

// SetColor handles PATCH /api/memos/{id}/color. A missing body clears the color.
func (h *MemoHandler) SetColor(w http.ResponseWriter, r *http.Request) {
	id, ok := h.memoID(w, r)
	if !ok {
		return
	}

	var req setColorRequest
	if err := decodeJSON(w, r, &req); err != nil && !errors.Is(err, errEmptyBody) {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	m, err := h.svc.SetColor(r.Context(), memo.SetColorInput{ID: id, Color: req.Color})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toMemoResponse(m))
}

// TogglePin handles PATCH /api/memos/{id}/pin.
func (h *MemoHandler) TogglePin(w http.ResponseWriter, r *http.Request) {
	id, ok := h.memoID(w, r)
	if !ok {
		return
	}

	m, err := h.svc.TogglePin(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toMemoResponse(m))
}

// Delete handles DELETE /api/memos/{id}.
func (h *MemoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.memoID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "memo deleted"})
}

func (h *MemoHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		resp := errorResponse{Error: verr.Error()}
		for _, fe := range verr.Errors {
			resp.Fields = append(resp.Fields, fieldResponse{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, http.StatusBadRequest, resp)
	case errors.Is(err, domain.ErrTypeMismatch):
		writeError(w, http.StatusBadRequest, "only checklists have items to toggle")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		h.log.ErrorContext(r.Context(), "internal error",
			slog.String("error", err.Error()),
			slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
		)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// memoID parses the {id} path value. An id that is not an integer names no
// memo and is answered with 404.
func (h *MemoHandler) memoID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := r.PathValue("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		h.handleError(w, r, fmt.Errorf("memo %q: %w", raw, domain.ErrNotFound))
		return 0, false
	}
	return id, true
}

func toMemoResponse(m *domain.Memo) memoResponse {
	items := make([]itemResponse, len(m.Items))
	for i, it := range m.Items {
		items[i] = itemResponse{ID: it.ID, Text: it.Text, Checked: it.Checked}
	}

	return memoResponse{
		ID:        m.ID,
		Author:    m.Author,
		Type:      m.Type.String(),
		Content:   m.Content,
		Items:     items,
		Color:     m.Color.String(),
		Pinned:    m.Pinned,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
