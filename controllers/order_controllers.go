package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-ordering/repository"
	"github.com/yeremiapane/restaurant-ordering/schema"
	"github.com/yeremiapane/restaurant-ordering/utils"
	"gorm.io/gorm"
)

type OrderController struct {
	Orders *repository.OrderRepository
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{Orders: repository.NewOrderRepository(db)}
}

// CreateOrder places an order. Status and paymentStatus start as "pending".
func (oc *OrderController) CreateOrder(c *gin.Context) {
	body, err := readBody(c)
	if err != nil {
		respondFailure(c, err)
		return
	}
	in, err := schema.DecodeOrder(body)
	if err != nil {
		respondFailure(c, err)
		return
	}

	order := in.Model()
	if err := oc.Orders.Create(c.Request.Context(), &order); err != nil {
		respondFailure(c, err)
		return
	}
	created, err := oc.Orders.FindByID(c.Request.Context(), order.ID)
	if err != nil {
		respondFailure(c, err)
		return
	}

	utils.InfoLogger.Printf("Order created: %d (table=%d, items=%d, total=%s)", created.ID, created.TableID, len(created.Items), created.Total)
	utils.RespondJSON(c, http.StatusCreated, "Order created successfully", created)
}

func (oc *OrderController) GetOrder(c *gin.Context) {
	id, err := paramID(c, "order_id")
	if err != nil {
		respondFailure(c, err)
		return
	}
	order, err := oc.Orders.FindByID(c.Request.Context(), id)
	if err != nil {
		respondFailure(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

func (oc *OrderController) GetRestaurantOrders(c *gin.Context) {
	id, err := paramID(c, "restaurant_id")
	if err != nil {
		respondFailure(c, err)
		return
	}
	orders, err := oc.Orders.ListByRestaurant(c.Request.Context(), id)
	if err != nil {
		respondFailure(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}
