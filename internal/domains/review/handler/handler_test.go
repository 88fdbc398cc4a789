package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipeshare-backend/internal/domains/review/model"
)

type fakeReviewService struct {
	listOut []model.ReviewResponse
	listErr error

	createOut *model.ReviewResponse
	createErr error
}

func (f *fakeReviewService) ListReviews(ctx context.Context, recipeID string) ([]model.ReviewResponse, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listOut, nil
}

func (f *fakeReviewService) CreateReview(ctx context.Context, actorID string, req model.CreateReviewRequest) (*model.ReviewResponse, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createOut, nil
}

func newReviewRouter(svc *fakeReviewService, actorID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewReviewHandler(svc)

	router := gin.New()
	router.GET("/reviews", h.ListReviews)
	router.POST("/reviews", func(c *gin.Context) {
		if actorID != "" {
			c.Set("userID", actorID)
		}
		h.CreateReview(c)
	})
	return router
}

func TestListReviewsHandler(t *testing.T) {
	t.Run("missing recipeId is a bad request", func(t *testing.T) {
		router := newReviewRouter(&fakeReviewService{}, "")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reviews", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "missing recipeId")
	})

	t.Run("reviews are returned as a raw array", func(t *testing.T) {
		svc := &fakeReviewService{
			listOut: []model.ReviewResponse{
				{ID: "rev1", RecipeID: "r1", UserID: "u1", Text: "Great", CreatedAt: 100, Username: "chef_anna"},
			},
		}
		router := newReviewRouter(svc, "")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reviews?recipeId=r1", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.True(t, strings.HasPrefix(w.Body.String(), "["))
		assert.Contains(t, w.Body.String(), "chef_anna")
	})
}

func TestCreateReviewHandler(t *testing.T) {
	t.Run("anonymous caller is unauthorized", func(t *testing.T) {
		router := newReviewRouter(&fakeReviewService{}, "")

		req := httptest.NewRequest(http.MethodPost, "/reviews", strings.NewReader(`{"recipeId":"r1","text":"hi"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("empty text is a bad request", func(t *testing.T) {
		router := newReviewRouter(&fakeReviewService{}, "u1")

		req := httptest.NewRequest(http.MethodPost, "/reviews", strings.NewReader(`{"recipeId":"r1","text":""}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("created review comes back with 201", func(t *testing.T) {
		svc := &fakeReviewService{
			createOut: &model.ReviewResponse{ID: "rev1", RecipeID: "r1", UserID: "u1", Text: "hi", Username: model.AnonymousUsername},
		}
		router := newReviewRouter(svc, "u1")

		req := httptest.NewRequest(http.MethodPost, "/reviews", strings.NewReader(`{"recipeId":"r1","text":"hi"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), model.AnonymousUsername)
	})
}
