package trips

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"voyago/ics"
	"voyago/models"
	"voyago/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
)

// POST /api/trips/export/ics
func ExportICS(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var trip models.Trip
	if err := json.NewDecoder(r.Body).Decode(&trip); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	data := ics.Export(&trip)

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", ics.Filename(&trip)))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// POST /api/trips/export/pdf
func ExportPDF(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var trip models.Trip
	if err := json.NewDecoder(r.Body).Decode(&trip); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	data, err := buildTripPDF(&trip)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to render PDF")
		return
	}

	filename := strings.TrimSuffix(ics.Filename(&trip), ".ics") + ".pdf"
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func buildTripPDF(trip *models.Trip) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, trip.Title)
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Destination: %s", trip.Destination))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Dates: %s to %s", trip.StartDate, trip.EndDate))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Travelers: %d | Budget: %s | Pace: %s",
		trip.Travelers, trip.Budget, trip.Pace))
	pdf.Ln(4)

	for _, day := range trip.Itinerary {
		pdf.Ln(8)
		pdf.SetFont("Arial", "B", 13)
		header := fmt.Sprintf("Day %d - %s", day.DayNumber, day.Date)
		if day.Weather != nil {
			header += fmt.Sprintf(" (%s, %s)", day.Weather.Condition, day.Weather.Temperature)
		}
		pdf.Cell(0, 8, header)
		pdf.Ln(8)

		pdf.SetFont("Arial", "", 11)
		for _, act := range day.Activities {
			pdf.Cell(0, 6, fmt.Sprintf("%s  %s (%s) - %s",
				act.Time, act.Name, act.Duration, act.Cost))
			pdf.Ln(6)
			if act.TravelNote != "" {
				pdf.Cell(0, 6, "        "+act.TravelNote)
				pdf.Ln(6)
			}
		}
	}

	// QR code so the printed sheet links back to the saved trip.
	if qrPNG, err := qrcode.Encode(trip.TripID, qrcode.Medium, 256); err == nil {
		opts := gofpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader("trip-qr", opts, bytes.NewReader(qrPNG))
		pdf.ImageOptions("trip-qr", 165, 10, 30, 30, false, opts, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
