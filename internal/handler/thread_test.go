package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diskusi-dev/diskusi/internal/domain"
	internal_errors "github.com/diskusi-dev/diskusi/internal/errors"
	"github.com/diskusi-dev/diskusi/internal/jwt"
	mw "github.com/diskusi-dev/diskusi/internal/middleware"
)

// --- Mocks ---

type MockThreadService struct {
	createFunc    func(creationData domain.ThreadCreationData) (domain.AddedThread, error)
	getDetailFunc func(id domain.ThreadId) (domain.Thread, error)
}

func (m *MockThreadService) Create(_ context.Context, creationData domain.ThreadCreationData) (domain.AddedThread, error) {
	if m.createFunc != nil {
		return m.createFunc(creationData)
	}
	return domain.AddedThread{Id: "thread-123", Title: creationData.Title, Owner: creationData.Owner}, nil
}

func (m *MockThreadService) GetDetail(_ context.Context, id domain.ThreadId) (domain.Thread, error) {
	if m.getDetailFunc != nil {
		return m.getDetailFunc(id)
	}
	return domain.Thread{Id: id, Comments: []domain.Comment{}}, nil
}

// --- Helpers ---

func newRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()
	r.Post("/threads", h.CreateThread)
	r.Get("/threads/{threadId}", h.GetThread)
	r.Post("/threads/{threadId}/comments", h.CreateComment)
	r.Delete("/threads/{threadId}/comments/{commentId}", h.DeleteComment)
	r.Post("/threads/{threadId}/comments/{commentId}/replies", h.CreateReply)
	r.Delete("/threads/{threadId}/comments/{commentId}/replies/{replyId}", h.DeleteReply)
	return r
}

func asUser(req *http.Request, userId domain.UserId) *http.Request {
	ctx := context.WithValue(req.Context(), mw.UserClaimsKey, &jwt.UserClaims{UserId: userId, Username: "dicoding"})
	return req.WithContext(ctx)
}

func decodeEnvelope(t *testing.T, body string) map[string]any {
	t.Helper()
	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(body), &got))
	return got
}

// --- Tests ---

func TestCreateThreadHandler(t *testing.T) {
	router := newRouter(New(nil, &MockThreadService{}, nil, nil))

	t.Run("successful request", func(t *testing.T) {
		req := asUser(httptest.NewRequest(http.MethodPost, "/threads", strings.NewReader(`{"title": "sebuah thread", "body": "sebuah body thread"}`)), "user-1")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusCreated, rr.Code)
		got := decodeEnvelope(t, rr.Body.String())
		assert.Equal(t, "success", got["status"])
		data := got["data"].(map[string]any)
		addedThread := data["addedThread"].(map[string]any)
		assert.Equal(t, "thread-123", addedThread["id"])
		assert.Equal(t, "sebuah thread", addedThread["title"])
		assert.Equal(t, "user-1", addedThread["owner"])
	})

	t.Run("missing body field", func(t *testing.T) {
		req := asUser(httptest.NewRequest(http.MethodPost, "/threads", strings.NewReader(`{"title": "sebuah thread"}`)), "user-1")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "fail", decodeEnvelope(t, rr.Body.String())["status"])
	})

	t.Run("wrong field type", func(t *testing.T) {
		req := asUser(httptest.NewRequest(http.MethodPost, "/threads", strings.NewReader(`{"title": 7, "body": "x"}`)), "user-1")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("no user in context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/threads", strings.NewReader(`{"title": "a", "body": "b"}`))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestGetThreadHandler(t *testing.T) {
	t.Run("returns nested thread", func(t *testing.T) {
		date := time.Date(2021, 8, 8, 7, 59, 16, 0, time.UTC)
		thread := domain.Thread{
			Id:       "thread-123",
			Title:    "sebuah thread",
			Body:     "sebuah body thread",
			Date:     date,
			Username: "dicoding",
			Comments: []domain.Comment{
				{Id: "comment-1", Username: "johndoe", Content: "sebuah comment", Replies: []domain.Reply{}},
			},
		}
		svc := &MockThreadService{getDetailFunc: func(id domain.ThreadId) (domain.Thread, error) { return thread, nil }}
		router := newRouter(New(nil, svc, nil, nil))

		req := httptest.NewRequest(http.MethodGet, "/threads/thread-123", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		got := decodeEnvelope(t, rr.Body.String())
		data := got["data"].(map[string]any)
		gotThread := data["thread"].(map[string]any)
		assert.Equal(t, "sebuah thread", gotThread["title"])
		comments := gotThread["comments"].([]any)
		require.Len(t, comments, 1)
		comment := comments[0].(map[string]any)
		assert.Equal(t, "sebuah comment", comment["content"])
		assert.Equal(t, []any{}, comment["replies"])
	})

	t.Run("thread not found", func(t *testing.T) {
		svc := &MockThreadService{getDetailFunc: func(id domain.ThreadId) (domain.Thread, error) {
			return domain.Thread{}, internal_errors.NotFound("thread id tidak ditemukan di database")
		}}
		router := newRouter(New(nil, svc, nil, nil))

		req := httptest.NewRequest(http.MethodGet, "/threads/thread-xxx", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		got := decodeEnvelope(t, rr.Body.String())
		assert.Equal(t, "fail", got["status"])
		assert.Equal(t, "thread id tidak ditemukan di database", got["message"])
	})

	t.Run("storage failure is a masked 500", func(t *testing.T) {
		svc := &MockThreadService{getDetailFunc: func(id domain.ThreadId) (domain.Thread, error) {
			return domain.Thread{}, assert.AnError
		}}
		router := newRouter(New(nil, svc, nil, nil))

		req := httptest.NewRequest(http.MethodGet, "/threads/thread-123", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.NotContains(t, rr.Body.String(), assert.AnError.Error())
	})
}
