package ledger

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reina-tokumaru/clinic-reservation-system/pkg/logging"
)

func TestListPageEmpty(t *testing.T) {
	h := NewHandler(NewMemoryStore(), logging.New("error"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	h.ListPage(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"reservations":[]}`, w.Body.String())
}

func TestCreateSubmitAppendsAndRedirects(t *testing.T) {
	store := NewMemoryStore()
	h := NewHandler(store, logging.New("error"))

	form := url.Values{
		"patient_name":     {"山田太郎"},
		"reservation_date": {"2026-09-15"},
		"time_slot":        {"10:00"},
	}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	h.CreateSubmit(w, req)

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	got, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "山田太郎", got[0].Name)
	assert.Equal(t, StatusBooked, got[0].Status)
}

func TestListPageAfterCreates(t *testing.T) {
	store := NewMemoryStore()
	h := NewHandler(store, logging.New("error"))

	_, err := store.Append(context.Background(), "山田太郎", "2026-09-15", "10:00")
	require.NoError(t, err)
	_, err = store.Append(context.Background(), "佐藤花子", "2026-09-16", "14:30")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	h.ListPage(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Reservations []Reservation `json:"reservations"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Reservations, 2)
	assert.Equal(t, "山田太郎", resp.Reservations[0].Name)
	assert.Equal(t, "佐藤花子", resp.Reservations[1].Name)
}
