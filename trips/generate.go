package trips

import (
	"encoding/json"
	"net/http"

	"voyago/models"
	"voyago/planner"
	"voyago/rdx"
	"voyago/utils"
	"voyago/weather"

	"github.com/julienschmidt/httprouter"
)

var defaultPlanner = planner.New(nil, weather.NewClient(nil, rdx.Conn))

// POST /api/trips/generate
func GenerateTrip(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var inputs models.TripInputs
	if err := json.NewDecoder(r.Body).Decode(&inputs); err != nil {
		utils.RespondWithJSON(w, http.StatusBadRequest,
			utils.M{"success": false, "error": "Invalid request payload"})
		return
	}

	trip, err := defaultPlanner.GenerateTrip(r.Context(), inputs)
	if err != nil {
		utils.RespondWithJSON(w, http.StatusBadRequest,
			utils.M{"success": false, "error": err.Error()})
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "data": trip})
}
