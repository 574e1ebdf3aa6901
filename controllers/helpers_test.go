package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/restaurant-ordering/config"
	"github.com/yeremiapane/restaurant-ordering/database"
	"github.com/yeremiapane/restaurant-ordering/utils"
	"gorm.io/gorm"
)

// setupTestDB opens a private in-memory SQLite database for the test.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	utils.InitLogger()
	cfg := config.Default()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	cfg.DBSource = "file:" + name + "?mode=memory&cache=shared&_foreign_keys=on"

	db, err := database.Open(cfg)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (e envelope) object(t *testing.T) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(e.Data, &out))
	return out
}

func (e envelope) list(t *testing.T) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	require.NoError(t, json.Unmarshal(e.Data, &out))
	return out
}

// fields returns the offending field names of a 400 response.
func (e envelope) fields(t *testing.T) []string {
	t.Helper()
	var data struct {
		Fields []struct {
			Field string `json:"field"`
		} `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(e.Data, &data))
	names := make([]string, 0, len(data.Fields))
	for _, f := range data.Fields {
		names = append(names, f.Field)
	}
	return names
}

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func perform(t *testing.T, router http.Handler, method, path, body string) (int, envelope) {
	t.Helper()
	req, err := http.NewRequest(method, path, bytes.NewBufferString(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return w.Code, resp
}
