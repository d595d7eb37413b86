package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vibeloop/vibeloop/internal/model"
)

func TestMemberHandler_List(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/api/members", "")

	require.Equal(t, http.StatusOK, rec.Code)
	members := decode[[]model.TeamMember](t, rec)
	require.Len(t, members, 5)
	assert.Equal(t, "Alice Johnson", members[0].Name)
	assert.Equal(t, "Emma Thompson", members[4].Name)
}

func TestMemberHandler_List_IgnoresConcurrentFailures(t *testing.T) {
	ts := newTestServerWithLatency(t, 100*time.Millisecond)
	ts.do(t, http.MethodGet, "/api/members", "")

	var wg sync.WaitGroup
	var list, mood int
	wg.Add(2)
	go func() {
		defer wg.Done()
		rec := httptest.NewRecorder()
		ts.mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/members", nil))
		list = rec.Code
	}()
	go func() {
		defer wg.Done()
		time.Sleep(30 * time.Millisecond)
		rec := httptest.NewRecorder()
		ts.mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/members/1/mood", strings.NewReader(`{"mood":"ecstatic"}`)))
		mood = rec.Code
	}()
	wg.Wait()

	assert.Equal(t, http.StatusBadRequest, mood)
	assert.Equal(t, http.StatusOK, list)
}

func TestMemberHandler_UpdateMood(t *testing.T) {
	t.Run("updates mood", func(t *testing.T) {
		ts := newTestServer(t)
		ts.do(t, http.MethodGet, "/api/members", "")

		rec := ts.do(t, http.MethodPut, "/api/members/2/mood", `{"mood":"stressed","timestamp":"2026-10-18T09:30:00Z"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		member := decode[model.TeamMember](t, rec)
		assert.Equal(t, "2", member.ID)
		require.NotNil(t, member.Mood)
		assert.Equal(t, model.MoodStressed, *member.Mood)
		require.NotNil(t, member.MoodUpdatedAt)
		assert.Equal(t, "2026-10-18T09:30:00Z", member.MoodUpdatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"))
	})

	t.Run("unknown member", func(t *testing.T) {
		ts := newTestServer(t)
		ts.do(t, http.MethodGet, "/api/members", "")

		rec := ts.do(t, http.MethodPut, "/api/members/99/mood", `{"mood":"good"}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		resp := decode[ErrorResponse](t, rec)
		assert.Equal(t, "Member with id 99 not found", resp.Error.Message)
	})

	t.Run("before any data", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(t, http.MethodPut, "/api/members/1/mood", `{"mood":"good"}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	tests := []struct {
		name string
		body string
	}{
		{"missing mood", `{}`},
		{"unknown mood", `{"mood":"ecstatic"}`},
		{"malformed body", `{"mood":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t)
			ts.do(t, http.MethodGet, "/api/members", "")

			rec := ts.do(t, http.MethodPut, "/api/members/1/mood", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, model.CodeInvalidInput, decode[ErrorResponse](t, rec).Error.Code)
		})
	}
}
