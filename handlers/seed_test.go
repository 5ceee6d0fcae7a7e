package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/krycha420/fast-food/config"
	"github.com/krycha420/fast-food/data"
	"github.com/krycha420/fast-food/handlers"
	"github.com/krycha420/fast-food/mockstore"
	"github.com/krycha420/fast-food/models"
	"github.com/krycha420/fast-food/routes"
	"github.com/krycha420/fast-food/seeder"
	"github.com/krycha420/fast-food/store"
)

const testPassword = "letmein"

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// okImages answers every image fetch with fixed bytes so tests never
// leave the process.
type okImages struct{}

func (okImages) Do(req *http.Request) (*http.Response, error) {
	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(bytes.NewReader([]byte("png-bytes"))),
	}, nil
}

func testDataset() data.Dataset {
	return data.Dataset{
		Categories: []models.Category{
			{Name: "Pizza", Description: "Stone-baked"},
			{Name: "Drinks", Description: "Cold drinks"},
		},
		Customizations: []models.Customization{
			{Name: "Extra Cheese", Price: 1.5, Type: models.TypeTopping},
		},
		Menu: []data.MenuItem{
			{
				Name:           "Margherita",
				SourceImageURL: "https://images.test/margherita.png",
				Price:          10.99,
				CategoryName:   "Pizza",
				Customizations: []string{"Extra Cheese"},
			},
		},
	}
}

// newTestApp wires the whole stack against an in-memory store emulator.
func newTestApp(t *testing.T) (*gin.Engine, *store.Client) {
	t.Helper()

	db, err := mockstore.Open(":memory:")
	require.NoError(t, err)
	srv := httptest.NewServer(mockstore.New(db).Router())
	t.Cleanup(srv.Close)

	client := store.New(srv.URL+"/v1", "test-project", "test-key")
	storeCfg := config.StoreConfig{
		DatabaseID:                     "db",
		CategoriesCollectionID:         "categories",
		CustomizationsCollectionID:     "customizations",
		MenuCollectionID:               "menu",
		MenuCustomizationsCollectionID: "menu_customizations",
		BucketID:                       "images",
	}
	s := seeder.New(client.Databases(), client.Storage(), okImages{}, storeCfg)

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	r := gin.New()
	routes.SetupRoutes(r, handlers.NewAuthHandler(config.AdminConfig{PasswordHash: hash}), handlers.NewSeedHandler(s, testDataset()))
	return r, client
}

func login(t *testing.T, router *gin.Engine, password string) (int, string) {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"password": password})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/auth/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp struct {
		Token string `json:"token"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w.Code, resp.Token
}

func TestLoginWrongPassword(t *testing.T) {
	router, _ := newTestApp(t)
	code, token := login(t, router, "wrong")
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Empty(t, token)
}

func TestSeedRequiresAuth(t *testing.T) {
	router, _ := newTestApp(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/seed", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("POST", "/api/seed", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestReportBeforeAnyRun(t *testing.T) {
	router, _ := newTestApp(t)
	code, token := login(t, router, testPassword)
	require.Equal(t, http.StatusOK, code)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/seed/report", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSeedEndToEnd(t *testing.T) {
	router, client := newTestApp(t)
	code, token := login(t, router, testPassword)
	require.Equal(t, http.StatusOK, code)

	// Residual records beyond one listing page must be cleared too.
	ctx := context.Background()
	for i := 0; i < mockstore.MaxPageSize+5; i++ {
		_, err := client.Databases().CreateDocument(ctx, "db", "menu", "", map[string]any{"name": fmt.Sprintf("stale-%d", i)})
		require.NoError(t, err)
	}

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/seed", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Message string         `json:"message"`
		Summary map[string]int `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Seed completed", resp.Message)
	assert.Equal(t, 2, resp.Summary["categories_created"])
	assert.Equal(t, 1, resp.Summary["customizations_created"])
	assert.Equal(t, 1, resp.Summary["menu_items_created"])
	assert.Equal(t, 1, resp.Summary["links_created"])
	assert.Equal(t, 0, resp.Summary["menu_items_skipped"])

	// Only the dataset's menu item remains after the clear.
	menu, err := client.Databases().ListAllDocuments(ctx, "db", "menu")
	require.NoError(t, err)
	require.Len(t, menu, 1)
	assert.Equal(t, "Margherita", menu[0].Fields["name"])

	// The image was re-hosted in the bucket and referenced by view URL.
	files, err := client.Storage().ListAllFiles(ctx, "images")
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Contains(t, menu[0].Fields["image_url"], files[0].ID)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/api/seed/report", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
