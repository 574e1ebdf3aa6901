package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-ordering/repository"
	"github.com/yeremiapane/restaurant-ordering/schema"
	"github.com/yeremiapane/restaurant-ordering/utils"
	"gorm.io/gorm"
)

type MenuController struct {
	MenuItems *repository.MenuItemRepository
}

func NewMenuController(db *gorm.DB) *MenuController {
	return &MenuController{MenuItems: repository.NewMenuItemRepository(db)}
}

func (mc *MenuController) CreateMenuItem(c *gin.Context) {
	body, err := readBody(c)
	if err != nil {
		respondFailure(c, err)
		return
	}
	in, err := schema.DecodeMenuItem(body)
	if err != nil {
		respondFailure(c, err)
		return
	}
	if !in.Category.Valid() {
		respondFailure(c, invalidField("category", "must be one of veg, non-veg, desserts"))
		return
	}

	item := in.Model()
	if err := mc.MenuItems.Create(c.Request.Context(), &item); err != nil {
		respondFailure(c, err)
		return
	}
	created, err := mc.MenuItems.FindByID(c.Request.Context(), item.ID)
	if err != nil {
		respondFailure(c, err)
		return
	}

	utils.InfoLogger.Printf("Menu item created: %s (restaurant=%d, price=%s)", created.Name, created.RestaurantID, created.Price)
	utils.RespondJSON(c, http.StatusCreated, "Menu item created successfully", created)
}

func (mc *MenuController) GetMenuItem(c *gin.Context) {
	id, err := paramID(c, "item_id")
	if err != nil {
		respondFailure(c, err)
		return
	}
	item, err := mc.MenuItems.FindByID(c.Request.Context(), id)
	if err != nil {
		respondFailure(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu item detail", item)
}

func (mc *MenuController) GetRestaurantMenu(c *gin.Context) {
	id, err := paramID(c, "restaurant_id")
	if err != nil {
		respondFailure(c, err)
		return
	}
	items, err := mc.MenuItems.ListByRestaurant(c.Request.Context(), id)
	if err != nil {
		respondFailure(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of menu items", items)
}
