package user

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"artizans_back_end/internal/database"
)

const usersNS = "artizans-mart.user-data"

func userRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/users", h.CreateUser)
	r.GET("/user", h.GetUserByEmail)
	return r
}

func TestCreateUser(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("new email is created with default role", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, usersNS, mtest.FirstBatch),
			mtest.CreateSuccessResponse(),
		)

		r := userRouter(New(database.NewWithDatabase(mt.DB)))
		req := httptest.NewRequest(http.MethodPost, "/users",
			strings.NewReader(`{"name":"Buyer","email":"buyer@example.com"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(mt, http.StatusCreated, w.Code)
		assert.Contains(mt, w.Body.String(), `"success":true`)
		assert.Contains(mt, w.Body.String(), "insertedId")
	})

	mt.Run("duplicate email is 409 and not inserted", func(mt *mtest.T) {
		// Only the lookup response is queued: an insert attempt would fail
		// the test by consuming a response that is not there.
		mt.AddMockResponses(
			mtest.CreateCursorResponse(1, usersNS, mtest.FirstBatch, bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "email", Value: "buyer@example.com"},
				{Key: "role", Value: "user"},
			}),
		)

		r := userRouter(New(database.NewWithDatabase(mt.DB)))
		req := httptest.NewRequest(http.MethodPost, "/users",
			strings.NewReader(`{"name":"Buyer","email":"buyer@example.com"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(mt, http.StatusConflict, w.Code)
		assert.Contains(mt, w.Body.String(), "User exists.")
	})
}

func TestGetUserByEmail(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("missing email query is 400", func(mt *mtest.T) {
		r := userRouter(New(database.NewWithDatabase(mt.DB)))
		req := httptest.NewRequest(http.MethodGet, "/user", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(mt, http.StatusBadRequest, w.Code)
	})

	mt.Run("unknown email is 404", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, usersNS, mtest.FirstBatch))

		r := userRouter(New(database.NewWithDatabase(mt.DB)))
		req := httptest.NewRequest(http.MethodGet, "/user?email=nobody@example.com", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(mt, http.StatusNotFound, w.Code)
	})

	mt.Run("known email returns the record", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(1, usersNS, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "name", Value: "Buyer"},
			{Key: "email", Value: "buyer@example.com"},
			{Key: "role", Value: "user"},
		}))

		r := userRouter(New(database.NewWithDatabase(mt.DB)))
		req := httptest.NewRequest(http.MethodGet, "/user?email=buyer@example.com", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(mt, http.StatusOK, w.Code)
		assert.Contains(mt, w.Body.String(), `"role":"user"`)
	})
}
