package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-ordering/repository"
	"github.com/yeremiapane/restaurant-ordering/schema"
	"github.com/yeremiapane/restaurant-ordering/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserController struct {
	Users *repository.UserRepository
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{Users: repository.NewUserRepository(db)}
}

// CreateUser registers a user. The password is stored as a bcrypt hash.
func (uc *UserController) CreateUser(c *gin.Context) {
	body, err := readBody(c)
	if err != nil {
		respondFailure(c, err)
		return
	}
	in, err := schema.DecodeUser(body)
	if err != nil {
		respondFailure(c, err)
		return
	}
	if in.Role != "" && !in.Role.Valid() {
		respondFailure(c, invalidField("role", "must be one of customer, kitchen, admin"))
		return
	}

	user := in.Model()
	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		respondFailure(c, err)
		return
	}
	user.Password = string(hashed)

	if err := uc.Users.Create(c.Request.Context(), &user); err != nil {
		respondFailure(c, err)
		return
	}
	created, err := uc.Users.FindByID(c.Request.Context(), user.ID)
	if err != nil {
		respondFailure(c, err)
		return
	}

	utils.InfoLogger.Printf("User created: %s (role=%s)", created.Username, created.Role)
	utils.RespondJSON(c, http.StatusCreated, "User created successfully", created)
}

func (uc *UserController) GetUser(c *gin.Context) {
	id, err := paramID(c, "user_id")
	if err != nil {
		respondFailure(c, err)
		return
	}
	user, err := uc.Users.FindByID(c.Request.Context(), id)
	if err != nil {
		respondFailure(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "User detail", user)
}

