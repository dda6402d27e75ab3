package handlers

import (
	"FindIt/internal/model"
	"FindIt/internal/service"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// maxBodyBytes ограничивает размер тела запроса на вставку.
const maxBodyBytes = 64 << 10

// ItemHandler отдаёт и принимает строки таблицы items.
type ItemHandler struct {
	ItemService *service.ItemService
	Logger      *zap.SugaredLogger
}

// NewItemHandler создаёт хендлер items
func NewItemHandler(itemService *service.ItemService, logger *zap.SugaredLogger) *ItemHandler {
	return &ItemHandler{ItemService: itemService, Logger: logger}
}

// ItemRow — строка items в проводном формате (snake_case, контакты nullable).
type ItemRow struct {
	ID           string  `json:"id"`
	Type         string  `json:"type"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Location     string  `json:"location"`
	Date         string  `json:"date"`
	ContactName  string  `json:"contact_name"`
	ContactPhone *string `json:"contact_phone"`
	ContactEmail *string `json:"contact_email"`
	Category     string  `json:"category"`
	CreatedAt    string  `json:"created_at"`
}

// InsertRequest — тело POST /api/items. id и created_at назначает сервер.
type InsertRequest struct {
	Type         string  `json:"type"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Location     string  `json:"location"`
	Date         string  `json:"date"`
	ContactName  string  `json:"contact_name"`
	ContactPhone *string `json:"contact_phone"`
	ContactEmail *string `json:"contact_email"`
	Category     string  `json:"category"`
}

func toRow(it model.Item) ItemRow {
	return ItemRow{
		ID:           it.ID,
		Type:         it.Type,
		Name:         it.Name,
		Description:  it.Description,
		Location:     it.Location,
		Date:         it.Date,
		ContactName:  it.ContactName,
		ContactPhone: it.ContactPhone,
		ContactEmail: it.ContactEmail,
		Category:     it.Category,
		CreatedAt:    it.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

// List отдаёт все строки, новые сверху (created_at DESC).
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.ItemService.List(r.Context())
	if err != nil {
		h.Logger.Errorw("List: service error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	rows := make([]ItemRow, 0, len(items))
	for _, it := range items {
		rows = append(rows, toRow(it))
	}
	writeJSON(w, http.StatusOK, rows)
}

// Get отдаёт одну строку по id.
func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	it, err := h.ItemService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "item not found", http.StatusNotFound)
			return
		}
		h.Logger.Errorw("Get: service error", "id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, toRow(*it))
}

// Create вставляет строку и возвращает её с назначенными id и created_at.
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	var req InsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Create: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	it, err := h.ItemService.Create(r.Context(), service.NewItem{
		Type:         req.Type,
		Name:         req.Name,
		Description:  req.Description,
		Location:     req.Location,
		Date:         req.Date,
		ContactName:  req.ContactName,
		ContactPhone: req.ContactPhone,
		ContactEmail: req.ContactEmail,
		Category:     req.Category,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidItem) {
			h.Logger.Warnw("Create: rejected", "error", err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.Logger.Errorw("Create: service error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, toRow(*it))
}

// Categories отдаёт закрытый список категорий.
func (h *ItemHandler) Categories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, model.Categories)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
