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

	"recipes-backend/internal/domains/tag"
)

type fakeTagService struct {
	tags     []tag.Tag
	writeErr error
}

func (f *fakeTagService) Create(ctx context.Context, req *tag.TagRequest) (*tag.Tag, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if f.writeErr != nil {
		return nil, f.writeErr
	}
	return &tag.Tag{ID: 1, Name: req.Name}, nil
}

func (f *fakeTagService) GetAll(ctx context.Context) ([]tag.Tag, error) {
	return f.tags, nil
}

func (f *fakeTagService) GetByID(ctx context.Context, id int64) (*tag.Tag, error) {
	for i := range f.tags {
		if f.tags[i].ID == id {
			return &f.tags[i], nil
		}
	}
	return nil, tag.ErrTagNotFound
}

func (f *fakeTagService) Update(ctx context.Context, id int64, req *tag.TagRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return f.writeErr
}

func (f *fakeTagService) Delete(ctx context.Context, id int64) error {
	return f.writeErr
}

func setupTestRouter(svc tag.TagService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	h := NewTagHandler(svc)
	router.POST("/tags", h.Create)
	router.GET("/tags", h.GetAll)
	router.GET("/tags/:id", h.GetByID)
	router.PUT("/tags/:id", h.Update)
	router.DELETE("/tags/:id", h.Delete)

	return router
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateTag(t *testing.T) {
	router := setupTestRouter(&fakeTagService{})

	w := doRequest(router, http.MethodPost, "/tags", `{"name": "vegan"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"vegan"`)
}

func TestCreateTagEmptyName(t *testing.T) {
	router := setupTestRouter(&fakeTagService{})

	w := doRequest(router, http.MethodPost, "/tags", `{"name": ""}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateTagDuplicateIsConflict(t *testing.T) {
	router := setupTestRouter(&fakeTagService{writeErr: tag.ErrDuplicateTag})

	w := doRequest(router, http.MethodPost, "/tags", `{"name": "vegan"}`)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestGetTagByIDNotFound(t *testing.T) {
	router := setupTestRouter(&fakeTagService{})

	w := doRequest(router, http.MethodGet, "/tags/99", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteTagNotFound(t *testing.T) {
	router := setupTestRouter(&fakeTagService{writeErr: tag.ErrTagNotFound})

	w := doRequest(router, http.MethodDelete, "/tags/99", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}
