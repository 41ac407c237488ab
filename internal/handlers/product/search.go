package product

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"artizans_back_end/internal/models"
)

// SearchProducts does a case-insensitive substring match across name,
// descriptions and category using the store's native regex matching.
// No ranking, no pagination.
func (h *Handler) SearchProducts(c *gin.Context) {
	searchItem := c.Query("q")
	if searchItem == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Search query is required."})
		return
	}

	pattern := primitive.Regex{Pattern: searchItem, Options: "i"}
	filter := bson.M{"$or": []bson.M{
		{"name": pattern},
		{"short_description": pattern},
		{"long_description": pattern},
		{"category": pattern},
	}}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	cursor, err := h.db.Products().Find(ctx, filter)
	if err != nil {
		log.Printf("❌ Search failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to perform search"})
		return
	}
	defer cursor.Close(ctx)

	results := []models.Product{}
	if err := cursor.All(ctx, &results); err != nil {
		log.Printf("❌ Search decode failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to perform search"})
		return
	}

	c.JSON(http.StatusOK, results)
}

func (h *Handler) GetProductsByCategory(c *gin.Context) {
	category := c.Param("category")

	ctx, cancel := h.requestContext(c)
	defer cancel()

	cursor, err := h.db.Products().Find(ctx, bson.M{"category": category})
	if err != nil {
		log.Printf("❌ Category find failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred while fetching products."})
		return
	}
	defer cursor.Close(ctx)

	results := []models.Product{}
	if err := cursor.All(ctx, &results); err != nil {
		log.Printf("❌ Category decode failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred while fetching products."})
		return
	}

	if len(results) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "No products found in this category."})
		return
	}

	c.JSON(http.StatusOK, results)
}
