package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-ordering/repository"
	"github.com/yeremiapane/restaurant-ordering/schema"
	"github.com/yeremiapane/restaurant-ordering/utils"
	"gorm.io/gorm"
)

type RestaurantController struct {
	Restaurants *repository.RestaurantRepository
}

func NewRestaurantController(db *gorm.DB) *RestaurantController {
	return &RestaurantController{Restaurants: repository.NewRestaurantRepository(db)}
}

func (rc *RestaurantController) CreateRestaurant(c *gin.Context) {
	body, err := readBody(c)
	if err != nil {
		respondFailure(c, err)
		return
	}
	in, err := schema.DecodeRestaurant(body)
	if err != nil {
		respondFailure(c, err)
		return
	}

	restaurant := in.Model()
	if err := rc.Restaurants.Create(c.Request.Context(), &restaurant); err != nil {
		respondFailure(c, err)
		return
	}
	created, err := rc.Restaurants.FindByID(c.Request.Context(), restaurant.ID)
	if err != nil {
		respondFailure(c, err)
		return
	}

	utils.InfoLogger.Printf("Restaurant created: %d %s", created.ID, created.Name)
	utils.RespondJSON(c, http.StatusCreated, "Restaurant created successfully", created)
}

func (rc *RestaurantController) GetAllRestaurants(c *gin.Context) {
	restaurants, err := rc.Restaurants.List(c.Request.Context())
	if err != nil {
		respondFailure(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of restaurants", restaurants)
}

func (rc *RestaurantController) GetRestaurant(c *gin.Context) {
	id, err := paramID(c, "restaurant_id")
	if err != nil {
		respondFailure(c, err)
		return
	}
	restaurant, err := rc.Restaurants.FindByID(c.Request.Context(), id)
	if err != nil {
		respondFailure(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Restaurant detail", restaurant)
}
