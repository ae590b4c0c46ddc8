package trips

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"voyago/db"
	"voyago/globals"
	"voyago/models"
	"voyago/mq"
	"voyago/utils"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func getUserIDFromContext(r *http.Request) (string, bool) {
	userID, ok := r.Context().Value(globals.UserIDKey).(string)
	return userID, ok && userID != ""
}

func insertTrip(ctx context.Context, rec models.TripRecord) error {
	if _, err := db.TripsCollection.InsertOne(ctx, rec); err != nil {
		return &StoreError{Op: "save", Err: err}
	}
	return nil
}

func listTrips(ctx context.Context, userID string) ([]models.TripRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := db.TripsCollection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, &StoreError{Op: "list", Err: err}
	}
	defer cursor.Close(ctx)

	var records []models.TripRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, &StoreError{Op: "list", Err: err}
	}
	return records, nil
}

func removeTrip(ctx context.Context, tripID, userID string) error {
	res, err := db.TripsCollection.DeleteOne(ctx, bson.M{"tripid": tripID, "user_id": userID})
	if err != nil {
		return &StoreError{Op: "delete", Err: err}
	}
	if res.DeletedCount == 0 {
		return ErrTripNotFound
	}
	return nil
}

// POST /api/trips
func SaveTrip(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		http.Error(w, "Invalid user", http.StatusUnauthorized)
		return
	}

	var trip models.Trip
	if err := json.NewDecoder(r.Body).Decode(&trip); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if trip.TripID == "" {
		trip.TripID = uuid.NewString()
	}

	rec := models.TripRecord{
		TripID:      trip.TripID,
		UserID:      userID,
		Destination: trip.Destination,
		StartDate:   trip.StartDate,
		EndDate:     trip.EndDate,
		Params: models.TripParams{
			From:      trip.From,
			Travelers: trip.Travelers,
			Budget:    trip.Budget,
			Pace:      trip.Pace,
			Interests: trip.Interests,
			Title:     trip.Title,
		},
		Itinerary: trip.Itinerary,
		CreatedAt: time.Now().UTC(),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := insertTrip(ctx, rec); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	mq.Emit(r.Context(), mq.TripEvent{Action: "created", TripID: rec.TripID, UserID: userID})
	utils.RespondWithJSON(w, http.StatusCreated,
		utils.M{"success": true, "data": utils.M{"tripid": rec.TripID}})
}

// GET /api/trips
func GetUserTrips(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		http.Error(w, "Invalid user", http.StatusUnauthorized)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	records, err := listTrips(ctx, userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	out := make([]models.Trip, 0, len(records))
	for _, rec := range records {
		out = append(out, rec.Trip())
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "data": out})
}

// DELETE /api/trips/:tripid
func DeleteTrip(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		http.Error(w, "Invalid user", http.StatusUnauthorized)
		return
	}

	tripID := ps.ByName("tripid")
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	switch err := removeTrip(ctx, tripID, userID); {
	case errors.Is(err, ErrTripNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Trip not found")
		return
	case err != nil:
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	mq.Emit(r.Context(), mq.TripEvent{Action: "deleted", TripID: tripID, UserID: userID})
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "message": "Trip deleted"})
}
