package user

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"artizans_back_end/internal/database"
	"artizans_back_end/internal/models"
	"artizans_back_end/internal/utils"
)

type Handler struct {
	db *database.Mongo
}

func New(db *database.Mongo) *Handler {
	return &Handler{db: db}
}

// CreateUser registers a user once per unique email. Uniqueness is an
// application-level pre-check (find then insert), not a database constraint,
// so two racing registrations can still both land. Accepted trade-off.
func (h *Handler) CreateUser(c *gin.Context) {
	var input struct {
		Name  string `json:"name"`
		Email string `json:"email"`
		Photo string `json:"photo"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	var existing models.User
	err := h.db.Users().FindOne(ctx, bson.M{"email": input.Email}).Decode(&existing)
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{"success": false, "message": "User exists."})
		return
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		log.Printf("❌ User lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error creating user"})
		return
	}

	newUser := models.User{
		Name:      input.Name,
		Email:     input.Email,
		Photo:     input.Photo,
		Role:      "user",
		CreatedAt: time.Now(),
	}

	result, err := h.db.Users().InsertOne(ctx, newUser)
	if err != nil {
		log.Printf("❌ User insert failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error creating user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":    true,
		"message":    "User created!",
		"insertedId": utils.InsertedID(result),
	})
}

func (h *Handler) GetUserByEmail(c *gin.Context) {
	targetEmail := c.Query("email")
	if targetEmail == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email required."})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	var user models.User
	err := h.db.Users().FindOne(ctx, bson.M{"email": targetEmail}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found."})
		return
	}
	if err != nil {
		log.Printf("❌ User lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, user)
}
