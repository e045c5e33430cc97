package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tripwise/internal/catalog"
	"tripwise/internal/geo"
	"tripwise/internal/models/response_models"
	"tripwise/internal/services"
	"tripwise/pkg/utils"
)

type DestinationController struct {
	activityService services.ActivityServiceInterface
}

func NewDestinationController(activityService services.ActivityServiceInterface) *DestinationController {
	return &DestinationController{
		activityService: activityService,
	}
}

// ListDestinations godoc
// @Summary List the curated destinations shown on the globe
// @Tags Destination
// @Produce json
// @Success 200 {array} catalog.Destination
// @Router /destinations [get]
func (d *DestinationController) ListDestinations(c *gin.Context) {
	utils.RespondSuccess(c, catalog.Destinations, "Destinations fetched")
}

// ListOptions godoc
// @Summary List the wizard's fixed option sets
// @Tags Destination
// @Produce json
// @Success 200 {object} response_models.OptionsResponse
// @Router /destinations/options [get]
func (d *DestinationController) ListOptions(c *gin.Context) {
	utils.RespondSuccess(c, response_models.OptionsResponse{
		OriginCities:  catalog.OriginCities,
		Nationalities: catalog.Nationalities,
		Airlines:      catalog.Airlines,
		HotelTiers:    catalog.HotelTiers,
		FlightClasses: catalog.FlightClasses,
		VisaStatuses:  catalog.VisaStatuses,
	}, "Options fetched")
}

// ListActivities godoc
// @Summary List active activities for a destination, sorted by name
// @Tags Destination
// @Produce json
// @Param id path string true "Destination id or label"
// @Success 200 {array} response_models.ActivitySummary
// @Failure 404 {object} utils.APIResponse
// @Router /destinations/{id}/activities [get]
func (d *DestinationController) ListActivities(c *gin.Context) {
	activities, err := d.activityService.ListByDestination(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, activities, "Activities fetched")
}

// GetRoute godoc
// @Summary Sample the great-circle route between two points
// @Description Returns the animated route path for the globe; reduced=true halves the sample density for prefers-reduced-motion clients
// @Tags Destination
// @Produce json
// @Param from query string true "Origin destination id"
// @Param to query string true "Target destination id"
// @Param reduced query bool false "Reduced motion sampling"
// @Success 200 {object} response_models.RouteResponse
// @Failure 404 {object} utils.APIResponse
// @Router /destinations/route [get]
func (d *DestinationController) GetRoute(c *gin.Context) {
	from, ok := catalog.Resolve(c.Query("from"))
	if !ok {
		utils.RespondError(c, http.StatusNotFound, "Unknown origin destination")
		return
	}
	to, ok := catalog.Resolve(c.Query("to"))
	if !ok {
		utils.RespondError(c, http.StatusNotFound, "Unknown target destination")
		return
	}

	samples := geo.DenseSamples
	if reduced, _ := strconv.ParseBool(c.DefaultQuery("reduced", "false")); reduced {
		samples = geo.ReducedSamples
	}

	a := geo.LatLng{Lat: from.Lat, Lng: from.Lng}
	b := geo.LatLng{Lat: to.Lat, Lng: to.Lng}

	utils.RespondSuccess(c, response_models.RouteResponse{
		From:    a,
		To:      b,
		Samples: samples,
		Points:  geo.RoutePoints(a, b, samples),
	}, "Route sampled")
}

// NearestDestination godoc
// @Summary Find the curated destination closest to a coordinate
// @Description Stands in for reverse geocoding after a geolocation fix; callers fall back to a fixed coordinate when geolocation is denied
// @Tags Destination
// @Produce json
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Success 200 {object} catalog.Destination
// @Router /destinations/nearest [get]
func (d *DestinationController) NearestDestination(c *gin.Context) {
	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lng, errLng := strconv.ParseFloat(c.Query("lng"), 64)
	if errLat != nil || errLng != nil {
		utils.RespondError(c, http.StatusBadRequest, "lat and lng must be numbers")
		return
	}

	point := geo.LatLng{Lat: lat, Lng: lng}
	nearest := catalog.Destinations[0]
	best := geo.AngularDistance(point, geo.LatLng{Lat: nearest.Lat, Lng: nearest.Lng})
	for _, dest := range catalog.Destinations[1:] {
		dist := geo.AngularDistance(point, geo.LatLng{Lat: dest.Lat, Lng: dest.Lng})
		if dist < best {
			best = dist
			nearest = dest
		}
	}

	utils.RespondSuccess(c, nearest, "Nearest destination found")
}
