package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/restaurant-ordering/controllers"
	"github.com/yeremiapane/restaurant-ordering/models"
)

func TestTableEndpoints(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Create(&models.Restaurant{Name: "Warung Biru"}).Error)

	router := newRouter()
	tc := controllers.NewTableController(db)
	router.POST("/tables", tc.CreateTable)
	router.GET("/tables/:table_id", tc.GetTable)
	router.GET("/tables/qr/:qr_code", tc.GetTableByQRCode)
	router.GET("/restaurants/:restaurant_id/tables", tc.GetRestaurantTables)

	code, resp := perform(t, router, http.MethodPost, "/tables", `{"restaurantId":1,"number":4,"capacity":2}`)
	require.Equal(t, http.StatusCreated, code, resp.Message)
	data := resp.object(t)
	qr, ok := data["qrCode"].(string)
	require.True(t, ok)
	assert.NotEmpty(t, qr)
	assert.Equal(t, true, data["isAvailable"])

	code, resp = perform(t, router, http.MethodGet, "/tables/qr/"+qr, "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(4), resp.object(t)["number"])

	code, resp = perform(t, router, http.MethodPost, "/tables", `{"restaurantId":1,"number":5,"capacity":2,"qrCode":"mine"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, []string{"qrCode"}, resp.fields(t))

	code, _ = perform(t, router, http.MethodPost, "/tables", `{"restaurantId":9,"number":5,"capacity":2}`)
	assert.Equal(t, http.StatusConflict, code)

	code, resp = perform(t, router, http.MethodPost, "/tables", `{"restaurantId":1,"number":5,"capacity":0}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, []string{"capacity"}, resp.fields(t))

	code, resp = perform(t, router, http.MethodGet, "/restaurants/1/tables", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Len(t, resp.list(t), 1)

	code, _ = perform(t, router, http.MethodGet, "/tables/qr/unknown", "")
	assert.Equal(t, http.StatusNotFound, code)
}
