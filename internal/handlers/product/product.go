package product

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
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

func (h *Handler) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), 10*time.Second)
}

// CreateProduct inserts a new product document. No schema validation is done
// beyond JSON shape; the admin dashboard owns the field semantics.
func (h *Handler) CreateProduct(c *gin.Context) {
	var p models.Product
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	result, err := h.db.Products().InsertOne(ctx, p)
	if err != nil {
		log.Printf("❌ Product insert failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to add product"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Product added!",
		"insertedId": utils.InsertedID(result),
	})
}

func (h *Handler) GetAllProducts(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	cursor, err := h.db.Products().Find(ctx, bson.M{})
	if err != nil {
		log.Printf("❌ Product find failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch products"})
		return
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		log.Printf("❌ Product decode failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch products"})
		return
	}

	c.JSON(http.StatusOK, products)
}

func (h *Handler) GetFeaturedProducts(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	cursor, err := h.db.Products().Find(ctx, bson.M{"is_featured": true})
	if err != nil {
		log.Printf("❌ Featured product find failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch featured products"})
		return
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		log.Printf("❌ Featured product decode failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch featured products"})
		return
	}

	c.JSON(http.StatusOK, products)
}

// GetProductByID returns a product together with the reviews that reference
// it. The linkage is the product's hex id stored as a plain string on each
// review, so there is nothing referential to enforce here.
func (h *Handler) GetProductByID(c *gin.Context) {
	id := c.Param("id")
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product ID"})
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	var product models.Product
	err = h.db.Products().FindOne(ctx, bson.M{"_id": oid}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}
	if err != nil {
		log.Printf("❌ Product lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to get product details"})
		return
	}

	reviews := []models.Review{}
	cursor, err := h.db.Reviews().Find(ctx, bson.M{"productId": id})
	if err != nil {
		log.Printf("❌ Review find failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to get product details"})
		return
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, &reviews); err != nil {
		log.Printf("❌ Review decode failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to get product details"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": product, "reviews": reviews})
}

// UpdateProduct applies a partial update: only the fields present in the
// request body end up in the $set document.
func (h *Handler) UpdateProduct(c *gin.Context) {
	id := c.Param("id")
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product ID format."})
		return
	}

	var input models.ProductUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	updateFields := buildUpdateFields(input)
	if len(updateFields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No valid fields provided for update."})
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	result, err := h.db.Products().UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": updateFields})
	if err != nil {
		log.Printf("❌ Product update failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update product"})
		return
	}

	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "Product updated successfully.",
		"matchedCount":  result.MatchedCount,
		"modifiedCount": result.ModifiedCount,
	})
}

func (h *Handler) DeleteProduct(c *gin.Context) {
	oid, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product ID"})
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	result, err := h.db.Products().DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		log.Printf("❌ Product delete failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete product"})
		return
	}

	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Product deleted.",
		"deletedCount": result.DeletedCount,
	})
}

func buildUpdateFields(input models.ProductUpdate) bson.M {
	fields := bson.M{}
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.Brand != nil {
		fields["brand"] = *input.Brand
	}
	if input.RegularPrice != nil {
		fields["regular_price"] = *input.RegularPrice
	}
	if input.OfferPrice != nil {
		fields["offer_price"] = *input.OfferPrice
	}
	if input.Rating != nil {
		fields["rating"] = *input.Rating
	}
	if input.Category != nil {
		fields["category"] = *input.Category
	}
	if input.IsFeatured != nil {
		fields["is_featured"] = *input.IsFeatured
	}
	if input.StockStatus != nil {
		fields["stock_status"] = *input.StockStatus
	}
	if input.ShortDescription != nil {
		fields["short_description"] = *input.ShortDescription
	}
	if input.LongDescription != nil {
		fields["long_description"] = *input.LongDescription
	}
	if input.Images != nil {
		fields["images"] = *input.Images
	}
	if input.Features != nil {
		fields["features"] = *input.Features
	}
	return fields
}
