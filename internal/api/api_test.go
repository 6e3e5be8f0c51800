package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/nutrishare/backend/internal/api"
	"github.com/nutrishare/backend/internal/catalog"
	"github.com/nutrishare/backend/internal/database"
	"github.com/nutrishare/backend/internal/router"
	"github.com/nutrishare/backend/internal/service"
)

const testJWTSecret = "test-secret-please-rotate"

type testEnv struct {
	router  *gin.Engine
	catalog *catalog.Catalog
	auth    *service.AuthService
}

// newTestEnv wires the full HTTP stack against an in-memory database.
// Redis and S3 backed routes stay unmounted, matching a minimal deploy.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	cat := catalog.New(catalog.WithBackend(catalog.NewGormBackend(db)))
	authService := service.NewAuthService(db, testJWTSecret)
	profileService := service.NewProfileService(db, cat)
	logger := zap.NewNop().Sugar()

	deps := router.Deps{
		Auth:      api.NewAuthHandler(authService, logger),
		Recipes:   api.NewRecipeHandler(cat, nil, logger),
		Profile:   api.NewProfileHandler(profileService, authService, logger),
		Dashboard: api.NewDashboardHandler(profileService),
		Validator: authService,
		Logger:    logger,
	}

	return &testEnv{
		router:  router.SetupRouter(deps),
		catalog: cat,
		auth:    authService,
	}
}

// request performs an HTTP request against the test router. A non-empty
// token is sent as a bearer credential.
func (e *testEnv) request(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// registerUser creates an account through the API and returns its token.
func (e *testEnv) registerUser(t *testing.T, name, accountType string) string {
	t.Helper()

	resp := e.request(t, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"name":         name,
		"email":        fmt.Sprintf("%s@example.com", name),
		"password":     "password123",
		"account_type": accountType,
	})
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

	var body struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.NotEmpty(t, body.Token)
	return body.Token
}

// createRecipe posts a valid recipe and returns its id.
func (e *testEnv) createRecipe(t *testing.T, token, title string) int64 {
	t.Helper()

	resp := e.request(t, http.MethodPost, "/api/v1/recipes", token, recipePayload(title))
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

	var body struct {
		Recipe struct {
			ID int64 `json:"id"`
		} `json:"recipe"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	return body.Recipe.ID
}

func recipePayload(title string) gin.H {
	return gin.H{
		"title":        title,
		"description":  "A balanced weeknight dinner.",
		"image":        "https://example.com/dish.jpg",
		"prep_time":    30,
		"difficulty":   "easy",
		"category":     "Vegan",
		"ingredients":  []string{"2 cups spinach", "1 block tofu"},
		"instructions": []string{"Press tofu", "Wilt spinach"},
		"nutrition_facts": gin.H{
			"calories": 380, "protein": 22, "carbs": 30, "fat": 14, "fiber": 8,
		},
	}
}
