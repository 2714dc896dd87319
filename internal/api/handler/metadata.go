package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/camperplan/camperplan/internal/api/models"
	"github.com/camperplan/camperplan/internal/api/response"
	"github.com/camperplan/camperplan/internal/season"
)

// MetadataHandler handles metadata endpoints.
type MetadataHandler struct{}

// NewMetadataHandler creates a new MetadataHandler.
func NewMetadataHandler() *MetadataHandler {
	return &MetadataHandler{}
}

// GetSeason handles GET /v1/metadata/seasons/{season}. The optional
// countries query parameter is a comma-separated list of ISO country
// codes and adjusts the factors for the destination region.
func (h *MetadataHandler) GetSeason(w http.ResponseWriter, r *http.Request) {
	s := season.Season(strings.ToLower(chi.URLParam(r, "season")))
	if !s.Valid() {
		response.NotFound(w, r, "unknown season: "+string(s))
		return
	}

	var countries []string
	if raw := r.URL.Query().Get("countries"); raw != "" {
		for _, c := range strings.Split(raw, ",") {
			if c = strings.TrimSpace(c); c != "" {
				countries = append(countries, c)
			}
		}
	}

	factors := season.Factors(s, countries)
	response.JSON(w, r, http.StatusOK, models.SeasonalFactors{
		Season:               string(factors.Season),
		TemperatureBand:      string(factors.TemperatureBand),
		PrecipitationBand:    string(factors.PrecipitationBand),
		CampsiteAvailability: string(factors.CampsiteAvailability),
		DrivingConditions:    string(factors.DrivingConditions),
		DistanceMultiplier:   factors.DistanceMultiplier,
		SpeedMultiplier:      factors.SpeedMultiplier,
		Recommendations:      factors.Recommendations,
		Warnings:             factors.Warnings,
	})
}

// GetEnums handles GET /v1/metadata/enums.
func (h *MetadataHandler) GetEnums(w http.ResponseWriter, r *http.Request) {
	enums := models.Enums{
		WaypointKinds: []models.WaypointKind{
			models.KindStart,
			models.KindEnd,
			models.KindIntermediate,
			models.KindCampsite,
			models.KindAccommodation,
		},
		VehicleTypes: []models.VehicleType{
			models.VehicleMotorhome,
			models.VehicleCaravan,
			models.VehicleCampervan,
		},
		FuelTypes: []models.FuelType{
			models.FuelDiesel,
			models.FuelPetrol,
			models.FuelElectric,
			models.FuelLPG,
		},
		Objectives: []models.Objective{
			models.ObjectiveShortest,
			models.ObjectiveFastest,
			models.ObjectiveBalanced,
		},
		Seasons: []string{
			string(season.SeasonSpring),
			string(season.SeasonSummer),
			string(season.SeasonAutumn),
			string(season.SeasonWinter),
		},
		Feasibilities: []models.Feasibility{
			models.FeasibilityExcellent,
			models.FeasibilityGood,
			models.FeasibilityChallenging,
			models.FeasibilityUnrealistic,
		},
	}
	response.JSON(w, r, http.StatusOK, enums)
}
