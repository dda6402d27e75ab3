package api

import (
	"FindIt/internal/cli/model"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListItems_PreservesServerOrderAndNumericIDs(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/items" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"created_at":"2024-01-02"},{"id":2,"created_at":"2024-01-01"}]`))
	}))
	defer ts.Close()

	rows, err := NewClient(ts.URL).ListItems(context.Background())
	require.NoError(t, err)
	if assert.Len(t, rows, 2) {
		assert.Equal(t, RowID("1"), rows[0].ID)
		assert.Equal(t, RowID("2"), rows[1].ID)
	}
}

func TestListItems_NonOKStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer ts.Close()

	_, err := NewClient(ts.URL).ListItems(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
	assert.Contains(t, err.Error(), "boom")
}

func TestListItems_TransportError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := ts.URL
	ts.Close() // сервер недоступен

	_, err := NewClient(url).ListItems(context.Background())
	assert.Error(t, err)
}

func TestInsertItem_SendsNullForEmptyContacts(t *testing.T) {
	var got map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/items" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("bad json: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"srv-1","type":"found","name":"Keys","created_at":"2024-05-01T10:00:00Z"}`))
	}))
	defer ts.Close()

	draft := model.ItemFormData{
		Type: "found", Name: "Keys", Description: "three keys", Location: "Gym",
		Date: "2024-05-01", ContactName: "Bob", ContactEmail: "bob@example.com", Category: "Keys",
	}
	row, err := NewClient(ts.URL).InsertItem(context.Background(), InsertFromDraft(draft))
	require.NoError(t, err)
	assert.Equal(t, RowID("srv-1"), row.ID)

	// ключ присутствует и равен null
	v, ok := got["contact_phone"]
	assert.True(t, ok)
	assert.Nil(t, v)
	assert.Equal(t, "bob@example.com", got["contact_email"])
	assert.Equal(t, "Bob", got["contact_name"])
	_, hasID := got["id"]
	assert.False(t, hasID)
}

func TestInsertItem_Rejected(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid item: missing description", http.StatusBadRequest)
	}))
	defer ts.Close()

	_, err := NewClient(ts.URL).InsertItem(context.Background(), Insert{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing description")
}

func TestGetItem_FoundAndNotFound(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/items/abc":
			_, _ = w.Write([]byte(`{"id":"abc","name":"Ring","contact_phone":""}`))
		default:
			http.Error(w, "item not found", http.StatusNotFound)
		}
	}))
	defer ts.Close()

	c := NewClient(ts.URL + "/")
	row, err := c.GetItem(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, "Ring", row.Name)

	_, err = c.GetItem(context.Background(), "zzz")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestRowToItem_OptionalMapping(t *testing.T) {
	empty := ""
	phone := "+1 555"
	it := Row{ID: "7", ContactName: "Ann", ContactPhone: &phone, ContactEmail: &empty, CreatedAt: "2024-01-02"}.ToItem()
	assert.Equal(t, "7", it.ID)
	assert.Equal(t, "Ann", it.ContactName)
	if assert.NotNil(t, it.ContactPhone) {
		assert.Equal(t, phone, *it.ContactPhone)
	}
	assert.Nil(t, it.ContactEmail) // пустая строка → отсутствует
	assert.Equal(t, "2024-01-02", it.CreatedAt)

	it = Row{}.ToItem()
	assert.Nil(t, it.ContactPhone)
	assert.Nil(t, it.ContactEmail)
}

func TestRowID_Unmarshal(t *testing.T) {
	var r struct {
		ID RowID `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"id":"a-b"}`), &r))
	assert.Equal(t, RowID("a-b"), r.ID)
	require.NoError(t, json.Unmarshal([]byte(`{"id":42}`), &r))
	assert.Equal(t, RowID("42"), r.ID)
	assert.Error(t, json.Unmarshal([]byte(`{"id":true}`), &r))
}
