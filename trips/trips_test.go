package trips

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"voyago/db"
	"voyago/globals"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestRemoveTripMissingID(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	mt.Run("zero deleted count maps to not found", func(mt *mtest.T) {
		db.TripsCollection = mt.Coll
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		err := removeTrip(ctx, "no-such-trip", "u-1")
		require.ErrorIs(mt, err, ErrTripNotFound)
	})
}

func TestDeleteTripMissingIDRespondsNotFound(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	mt.Run("missing trip id answers 404", func(mt *mtest.T) {
		db.TripsCollection = mt.Coll
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		req := httptest.NewRequest(http.MethodDelete, "/api/trips/no-such-trip", nil)
		req = req.WithContext(context.WithValue(req.Context(), globals.UserIDKey, "u-1"))
		rr := httptest.NewRecorder()
		DeleteTrip(rr, req, httprouter.Params{{Key: "tripid", Value: "no-such-trip"}})

		assert.Equal(mt, http.StatusNotFound, rr.Code)
		assert.Contains(mt, rr.Body.String(), "Trip not found")
	})
}

func TestDeleteTripRequiresUser(t *testing.T) {
	req := httptest.NewRequest(http.MethodDelete, "/api/trips/t-1", nil)
	rr := httptest.NewRecorder()
	DeleteTrip(rr, req, httprouter.Params{{Key: "tripid", Value: "t-1"}})

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
