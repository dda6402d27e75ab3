package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// ErrNotFound возвращается, если сервер не знает запрошенную запись.
var ErrNotFound = errors.New("item not found")

// Client — HTTP-клиент удалённого хранилища items.
// Повторов и таймаутов нет: ошибка запроса возвращается вызывающему как есть.
type Client struct {
	http *resty.Client
}

// NewClient создаёт клиента для сервера по адресу baseURL (например, http://localhost:8081).
func NewClient(baseURL string) *Client {
	c := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	return &Client{http: c}
}

// ListItems запрашивает все строки items в порядке сервера (created_at DESC).
func (c *Client) ListItems(ctx context.Context) ([]Row, error) {
	resp, err := c.http.R().SetContext(ctx).Get("/api/items")
	if err != nil {
		return nil, fmt.Errorf("fetch items: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, statusError(resp)
	}
	var rows []Row
	if err := json.Unmarshal(resp.Body(), &rows); err != nil {
		return nil, fmt.Errorf("decode items: %w", err)
	}
	return rows, nil
}

// GetItem запрашивает одну строку по id.
func (c *Client) GetItem(ctx context.Context, id string) (Row, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("id", id).
		Get("/api/items/{id}")
	if err != nil {
		return Row{}, fmt.Errorf("fetch item: %w", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return Row{}, ErrNotFound
	}
	if resp.StatusCode() != http.StatusOK {
		return Row{}, statusError(resp)
	}
	var row Row
	if err := json.Unmarshal(resp.Body(), &row); err != nil {
		return Row{}, fmt.Errorf("decode item: %w", err)
	}
	return row, nil
}

// InsertItem вставляет строку и возвращает её в виде, сохранённом сервером.
func (c *Client) InsertItem(ctx context.Context, in Insert) (Row, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(&in).
		Post("/api/items")
	if err != nil {
		return Row{}, fmt.Errorf("insert item: %w", err)
	}
	if resp.StatusCode() != http.StatusCreated && resp.StatusCode() != http.StatusOK {
		return Row{}, statusError(resp)
	}
	var row Row
	if len(resp.Body()) > 0 {
		if err := json.Unmarshal(resp.Body(), &row); err != nil {
			return Row{}, fmt.Errorf("decode inserted item: %w", err)
		}
	}
	return row, nil
}

func statusError(resp *resty.Response) error {
	return fmt.Errorf("server returned status %d: %s", resp.StatusCode(), strings.TrimSpace(resp.String()))
}
