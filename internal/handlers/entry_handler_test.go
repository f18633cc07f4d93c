package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"io.remyapps.remy/internal/journal"
	createmodels "io.remyapps.remy/internal/models/create_entry"
	streakmodels "io.remyapps.remy/internal/models/get_streak"
	listmodels "io.remyapps.remy/internal/models/list_entries"
	"io.remyapps.remy/internal/storage"
	"io.remyapps.remy/internal/store/memory"
)

// newTestRouter wires the handler against in-memory stores with a stubbed
// authenticated user. The Redis client points at nothing; cache writes fail
// soft and are logged, which is the production behavior on a cache outage.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	service := journal.NewService(memory.NewEntryStore(), memory.NewStreakStore(), zap.NewNop().Sugar())
	photos, err := storage.NewPhotoStore(t.TempDir(), "/images")
	require.NoError(t, err)
	redisClient := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})

	h := NewEntryHandler(service, redisClient, photos, zap.NewNop().Sugar())

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("uid", "user-1")
		c.Next()
	})
	router.POST("/create-entry", h.CreateEntry)
	router.POST("/get-entry", h.GetEntry)
	router.POST("/list-entries", h.ListEntries)
	router.POST("/update-entry", h.UpdateEntry)
	router.POST("/delete-entry", h.DeleteEntry)
	router.GET("/streak", h.GetStreak)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateEntry_ReturnsEntryAndStreak(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/create-entry", gin.H{
		"content":     "first entry",
		"journalType": "quick",
		"moodTag":     "happy",
		"themeTag":    "work",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp createmodels.CreateEntryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Entry.ID)
	assert.Equal(t, "first entry", resp.Entry.Content)
	assert.Equal(t, 1, resp.Streak.CurrentStreak)
	assert.Equal(t, 1, resp.Streak.LongestStreak)
}

func TestCreateEntry_RejectsUnknownJournalType(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/create-entry", gin.H{
		"content":     "x",
		"journalType": "bullet",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateEntry_RejectsUnknownMood(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/create-entry", gin.H{
		"content":     "x",
		"journalType": "quick",
		"moodTag":     "ecstatic",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetStreak_NewUserIsZero(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/streak", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp streakmodels.GetStreakResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.CurrentStreak)
	assert.Equal(t, 0, resp.LongestStreak)
	assert.Nil(t, resp.LastEntryDate)
}

func TestGetStreak_AfterCreateHasDate(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/create-entry", gin.H{
		"content":     "today",
		"journalType": "personal",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodGet, "/streak", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp streakmodels.GetStreakResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.CurrentStreak)
	require.NotNil(t, resp.LastEntryDate)
	assert.Equal(t, time.Now().Format("2006-01-02"), *resp.LastEntryDate)
}

func TestListEntries_NewestFirst(t *testing.T) {
	router := newTestRouter(t)
	base := time.Date(2025, time.June, 2, 12, 0, 0, 0, time.UTC)

	for _, offset := range []int{0, 2, 1} {
		w := doJSON(t, router, http.MethodPost, "/create-entry", gin.H{
			"content":     "entry",
			"journalType": "quick",
			"timestamp":   base.AddDate(0, 0, offset).Format(time.RFC3339),
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(t, router, http.MethodPost, "/list-entries", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp listmodels.ListEntriesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 3, resp.Total)
	assert.True(t, resp.Entries[0].Timestamp.After(resp.Entries[1].Timestamp))
	assert.True(t, resp.Entries[1].Timestamp.After(resp.Entries[2].Timestamp))
}

func TestDeleteEntry_RemovesEntryButKeepsStreak(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/create-entry", gin.H{
		"content":     "to be removed",
		"journalType": "quick",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created createmodels.CreateEntryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, router, http.MethodPost, "/delete-entry", gin.H{"entryId": created.Entry.ID})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPost, "/list-entries", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listed listmodels.ListEntriesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	assert.Equal(t, 0, listed.Total)

	// Streak is knowingly stale after a delete
	w = doJSON(t, router, http.MethodGet, "/streak", nil)
	var streakResp streakmodels.GetStreakResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &streakResp))
	assert.Equal(t, 1, streakResp.CurrentStreak)
}

func TestDeleteEntry_MissingEntryIs404(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/delete-entry", gin.H{"entryId": "nope"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateEntry_KeepsStreakUntouched(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/create-entry", gin.H{
		"content":     "draft",
		"journalType": "reflection",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created createmodels.CreateEntryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, router, http.MethodPost, "/update-entry", gin.H{
		"entryId": created.Entry.ID,
		"content": "polished",
		"moodTag": "grateful",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/streak", nil)
	var streakResp streakmodels.GetStreakResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &streakResp))
	assert.Equal(t, 1, streakResp.CurrentStreak)
}
