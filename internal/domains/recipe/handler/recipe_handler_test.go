package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipes-backend/internal/domains/recipe/model"
)

// fakeRecipeService delegates to the real request validation so handler tests
// exercise the full bind-validate-respond path without a database.
type fakeRecipeService struct {
	createID int64
	getErr   error
	writeErr error
	recipes  []*model.RecipeResponse
	listErr  error
}

func (f *fakeRecipeService) Create(ctx context.Context, req *model.RecipeRequest) (*model.CreateRecipeResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if f.writeErr != nil {
		return nil, f.writeErr
	}
	return &model.CreateRecipeResponse{RecipeID: f.createID}, nil
}

func (f *fakeRecipeService) Update(ctx context.Context, id int64, req *model.RecipeRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return f.writeErr
}

func (f *fakeRecipeService) GetAll(ctx context.Context) ([]*model.RecipeResponse, error) {
	return f.recipes, f.listErr
}

func (f *fakeRecipeService) GetByID(ctx context.Context, id int64) (*model.RecipeResponse, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.recipes[0], nil
}

func (f *fakeRecipeService) GetByCategory(ctx context.Context, categoryID int64) ([]*model.RecipeResponse, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	if len(f.recipes) == 0 {
		return nil, model.ErrNoRecipesInCategory
	}
	return f.recipes, f.listErr
}

func (f *fakeRecipeService) Delete(ctx context.Context, id int64) error {
	return f.writeErr
}

func setupTestRouter(svc *fakeRecipeService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	h := NewRecipeHandler(svc)
	router.POST("/recipes", h.Create)
	router.GET("/recipes", h.GetAll)
	router.GET("/recipes/category/:categoryId", h.GetByCategory)
	router.GET("/recipes/:id", h.GetByID)
	router.PUT("/recipes/:id", h.Update)
	router.DELETE("/recipes/:id", h.Delete)

	return router
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

const validBody = `{
	"title": "Tea",
	"instructions": "Boil water",
	"categoryId": 1,
	"ingredients": [
		{"name": "Water", "quantity": 1, "unit": "cup"},
		{"name": "Tea Leaves", "quantity": 1, "unit": "tsp"}
	]
}`

func TestCreateRecipeReturns201WithID(t *testing.T) {
	router := setupTestRouter(&fakeRecipeService{createID: 33})

	w := doRequest(router, http.MethodPost, "/recipes", validBody)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			RecipeID int64 `json:"recipeId"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, int64(33), resp.Data.RecipeID)
}

func TestCreateRecipeRejectsMissingFields(t *testing.T) {
	router := setupTestRouter(&fakeRecipeService{})

	w := doRequest(router, http.MethodPost, "/recipes", `{"title": "Tea"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Error   struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
}

func TestCreateRecipeRejectsInvalidQuantity(t *testing.T) {
	router := setupTestRouter(&fakeRecipeService{})

	body := `{
		"title": "Tea",
		"instructions": "Boil water",
		"categoryId": 1,
		"ingredients": [{"name": "Water", "quantity": 0, "unit": "cup"}]
	}`
	w := doRequest(router, http.MethodPost, "/recipes", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateRecipeMissingCategoryIs404(t *testing.T) {
	router := setupTestRouter(&fakeRecipeService{writeErr: model.ErrCategoryNotFound})

	w := doRequest(router, http.MethodPost, "/recipes", validBody)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetRecipeByIDNotFound(t *testing.T) {
	router := setupTestRouter(&fakeRecipeService{getErr: model.ErrRecipeNotFound})

	w := doRequest(router, http.MethodGet, "/recipes/999", "")

	require.Equal(t, http.StatusNotFound, w.Code)

	var resp struct {
		Success bool            `json:"success"`
		Error   *map[string]any `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.NotNil(t, resp.Error)
}

func TestGetRecipeByIDBadID(t *testing.T) {
	router := setupTestRouter(&fakeRecipeService{})

	w := doRequest(router, http.MethodGet, "/recipes/abc", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetRecipesEmptyListIs200(t *testing.T) {
	router := setupTestRouter(&fakeRecipeService{recipes: []*model.RecipeResponse{}})

	w := doRequest(router, http.MethodGet, "/recipes", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"data":[]`)
}

func TestGetRecipesByCategoryEmptyIs404(t *testing.T) {
	router := setupTestRouter(&fakeRecipeService{})

	w := doRequest(router, http.MethodGet, "/recipes/category/5", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateRecipeNotFound(t *testing.T) {
	router := setupTestRouter(&fakeRecipeService{writeErr: model.ErrRecipeNotFound})

	w := doRequest(router, http.MethodPut, "/recipes/999", validBody)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteRecipeNotFound(t *testing.T) {
	router := setupTestRouter(&fakeRecipeService{writeErr: model.ErrRecipeNotFound})

	w := doRequest(router, http.MethodDelete, "/recipes/999", "")

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestDeleteRecipeReturnsConfirmation(t *testing.T) {
	router := setupTestRouter(&fakeRecipeService{})

	w := doRequest(router, http.MethodDelete, "/recipes/1", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "recipe deleted")
}
