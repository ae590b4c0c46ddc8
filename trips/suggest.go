package trips

import (
	"encoding/json"
	"net/http"

	"voyago/catalog"
	"voyago/models"
	"voyago/planner"
	"voyago/utils"

	"github.com/julienschmidt/httprouter"
)

type alternativesRequest struct {
	Activity    models.Activity   `json:"activity"`
	Destination string            `json:"destination"`
	Budget      models.BudgetTier `json:"budget"`
}

// POST /api/trips/activity/alternatives
func SuggestAlternatives(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req alternativesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	alts := planner.Alternatives(req.Activity, req.Destination, req.Budget)
	if alts == nil {
		alts = []models.Activity{}
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "data": alts})
}

type replaceRequest struct {
	Trip      models.Trip     `json:"trip"`
	DayNumber int             `json:"day_number"`
	Activity  models.Activity `json:"activity"`
}

// POST /api/trips/activity/replace
func ReplaceActivity(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req replaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	updated := planner.ReplaceActivity(&req.Trip, req.DayNumber, req.Activity)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "data": updated})
}

// GET /api/catalog/categories
func GetCategories(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	cats := catalog.Categories()
	out := make([]string, 0, len(cats))
	for _, c := range cats {
		out = append(out, string(c))
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "data": out})
}
