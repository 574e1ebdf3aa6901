package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-ordering/repository"
	"github.com/yeremiapane/restaurant-ordering/schema"
	"github.com/yeremiapane/restaurant-ordering/utils"
	"gorm.io/gorm"
)

type TableController struct {
	Tables *repository.TableRepository
}

func NewTableController(db *gorm.DB) *TableController {
	return &TableController{Tables: repository.NewTableRepository(db)}
}

// CreateTable adds a table. Its qrCode is generated here, never taken from
// the request.
func (tc *TableController) CreateTable(c *gin.Context) {
	body, err := readBody(c)
	if err != nil {
		respondFailure(c, err)
		return
	}
	in, err := schema.DecodeTable(body)
	if err != nil {
		respondFailure(c, err)
		return
	}

	table := in.Model()
	if err := tc.Tables.Create(c.Request.Context(), &table); err != nil {
		respondFailure(c, err)
		return
	}
	created, err := tc.Tables.FindByID(c.Request.Context(), table.ID)
	if err != nil {
		respondFailure(c, err)
		return
	}

	utils.InfoLogger.Printf("New table created: %d (restaurant=%d, qr=%s)", created.Number, created.RestaurantID, created.QRCode)
	utils.RespondJSON(c, http.StatusCreated, "Table created successfully", created)
}

func (tc *TableController) GetTable(c *gin.Context) {
	id, err := paramID(c, "table_id")
	if err != nil {
		respondFailure(c, err)
		return
	}
	table, err := tc.Tables.FindByID(c.Request.Context(), id)
	if err != nil {
		respondFailure(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table detail", table)
}

// GetTableByQRCode resolves a scanned code to its table.
func (tc *TableController) GetTableByQRCode(c *gin.Context) {
	table, err := tc.Tables.FindByQRCode(c.Request.Context(), c.Param("qr_code"))
	if err != nil {
		respondFailure(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table detail", table)
}

func (tc *TableController) GetRestaurantTables(c *gin.Context) {
	id, err := paramID(c, "restaurant_id")
	if err != nil {
		respondFailure(c, err)
		return
	}
	tables, err := tc.Tables.ListByRestaurant(c.Request.Context(), id)
	if err != nil {
		respondFailure(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of tables", tables)
}
