package stats

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"artizans_back_end/internal/database"
)

type Handler struct {
	db *database.Mongo
}

func New(db *database.Mongo) *Handler {
	return &Handler{db: db}
}

// CategoryStat is one row of the per-category product breakdown.
type CategoryStat struct {
	Category string `bson:"_id" json:"_id"`
	Count    int64  `bson:"count" json:"count"`
}

// OrderTrend is one point of the 7-point order chart: all orders are counted,
// but only "Delivered" orders contribute revenue.
type OrderTrend struct {
	Date         string  `bson:"_id" json:"_id"`
	DailyRevenue float64 `bson:"dailyRevenue" json:"dailyRevenue"`
	OrderCount   int64   `bson:"orderCount" json:"orderCount"`
}

// GetAdminStats rebuilds the dashboard report from the live collections on
// every call. Counts are approximate; revenue is net of shipping and only
// counts delivered orders.
func (h *Handler) GetAdminStats(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
	defer cancel()

	users, err := h.db.Users().EstimatedDocumentCount(ctx)
	if err != nil {
		h.fail(c, "users count", err)
		return
	}
	products, err := h.db.Products().EstimatedDocumentCount(ctx)
	if err != nil {
		h.fail(c, "products count", err)
		return
	}
	orders, err := h.db.Orders().EstimatedDocumentCount(ctx)
	if err != nil {
		h.fail(c, "orders count", err)
		return
	}

	revenue, err := h.totalRevenue(ctx)
	if err != nil {
		h.fail(c, "revenue", err)
		return
	}

	categoryStats, err := h.categoryStats(ctx)
	if err != nil {
		h.fail(c, "category stats", err)
		return
	}

	orderStats, err := h.orderTrends(ctx)
	if err != nil {
		h.fail(c, "order trends", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users":         users,
		"products":      products,
		"orders":        orders,
		"revenue":       revenue,
		"categoryStats": categoryStats,
		"orderStats":    orderStats,
	})
}

func (h *Handler) totalRevenue(ctx context.Context) (float64, error) {
	cursor, err := h.db.Orders().Aggregate(ctx, RevenuePipeline())
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		TotalRevenue float64 `bson:"totalRevenue"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].TotalRevenue, nil
}

func (h *Handler) categoryStats(ctx context.Context) ([]CategoryStat, error) {
	cursor, err := h.db.Products().Aggregate(ctx, CategoryPipeline())
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	stats := []CategoryStat{}
	if err := cursor.All(ctx, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}

func (h *Handler) orderTrends(ctx context.Context) ([]OrderTrend, error) {
	cursor, err := h.db.Orders().Aggregate(ctx, OrderTrendPipeline())
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	trends := []OrderTrend{}
	if err := cursor.All(ctx, &trends); err != nil {
		return nil, err
	}
	return trends, nil
}

func (h *Handler) fail(c *gin.Context, what string, err error) {
	log.Printf("❌ Stats %s failed: %v", what, err)
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch stats"})
}

// RevenuePipeline sums total minus shippingFee over delivered orders only:
// realized net product revenue, not gross order volume.
func RevenuePipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "status", Value: "Delivered"}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "totalRevenue", Value: bson.D{
				{Key: "$sum", Value: bson.D{
					{Key: "$subtract", Value: bson.A{"$total", "$shippingFee"}},
				}},
			}},
		}}},
	}
}

// CategoryPipeline counts products per category.
func CategoryPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$category"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}
}

// OrderTrendPipeline groups orders per date, counting every order but only
// adding revenue for delivered ones, sorted ascending and capped at 7 points.
func OrderTrendPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$date"},
			{Key: "dailyRevenue", Value: bson.D{
				{Key: "$sum", Value: bson.D{
					{Key: "$cond", Value: bson.A{
						bson.D{{Key: "$eq", Value: bson.A{"$status", "Delivered"}}},
						bson.D{{Key: "$subtract", Value: bson.A{"$total", "$shippingFee"}}},
						0,
					}},
				}},
			}},
			{Key: "orderCount", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
		{{Key: "$limit", Value: 7}},
	}
}
