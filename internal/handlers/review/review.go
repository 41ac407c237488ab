package review

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

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

// CreateReview accepts a review from any caller. The product reference is a
// loose hex string and is deliberately not checked against product-data.
func (h *Handler) CreateReview(c *gin.Context) {
	var review models.Review
	if err := c.ShouldBindJSON(&review); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	result, err := h.db.Reviews().InsertOne(ctx, review)
	if err != nil {
		log.Printf("❌ Review insert failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to post review."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Review posted!",
		"insertedId": utils.InsertedID(result),
	})
}

func (h *Handler) GetAllReviews(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	cursor, err := h.db.Reviews().Find(ctx, bson.M{})
	if err != nil {
		log.Printf("❌ Review find failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to get reviews"})
		return
	}
	defer cursor.Close(ctx)

	reviews := []models.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		log.Printf("❌ Review decode failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to get reviews"})
		return
	}

	c.JSON(http.StatusOK, reviews)
}
