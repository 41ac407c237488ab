package order

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

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

// PlaceOrder inserts the checkout payload as-is. Status stays whatever the
// storefront sent; admins move it to "Delivered" later.
func (h *Handler) PlaceOrder(c *gin.Context) {
	var order models.Order
	if err := c.ShouldBindJSON(&order); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	result, err := h.db.Orders().InsertOne(ctx, order)
	if err != nil {
		log.Printf("❌ Order insert failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to place order."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Order placed!",
		"insertedId": utils.InsertedID(result),
	})
}

// GetAllOrders is the admin view across every buyer.
func (h *Handler) GetAllOrders(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	cursor, err := h.db.Orders().Find(ctx, bson.M{})
	if err != nil {
		log.Printf("❌ Order find failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching orders"})
		return
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		log.Printf("❌ Order decode failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching orders"})
		return
	}

	c.JSON(http.StatusOK, orders)
}

// GetOrdersByEmail lists a buyer's own orders. The authenticated identity
// must match the requested email or the request is forbidden.
func (h *Handler) GetOrdersByEmail(c *gin.Context) {
	email := c.Param("email")

	if c.GetString("email") != email {
		c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden access"})
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	cursor, err := h.db.Orders().Find(ctx, bson.M{"shippingInfo.email": email})
	if err != nil {
		log.Printf("❌ User order find failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching user orders"})
		return
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		log.Printf("❌ User order decode failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching user orders"})
		return
	}

	c.JSON(http.StatusOK, orders)
}

// UpdateOrderStatus sets the free-form status string on one order.
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	oid, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid Order ID"})
		return
	}

	var input struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	result, err := h.db.Orders().UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"status": input.Status}})
	if err != nil {
		log.Printf("❌ Order status update failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update status"})
		return
	}

	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "Order status updated.",
		"matchedCount":  result.MatchedCount,
		"modifiedCount": result.ModifiedCount,
	})
}
