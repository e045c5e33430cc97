package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripwise/internal/models/request_models"
	"tripwise/internal/services"
	"tripwise/pkg/utils"
)

type TripRequestController struct {
	tripService     services.TripRequestServiceInterface
	activityService services.ActivityServiceInterface
	wizardService   services.WizardServiceInterface
}

func NewTripRequestController(
	tripService services.TripRequestServiceInterface,
	activityService services.ActivityServiceInterface,
	wizardService services.WizardServiceInterface,
) *TripRequestController {
	return &TripRequestController{
		tripService:     tripService,
		activityService: activityService,
		wizardService:   wizardService,
	}
}

// SubmitTripRequest godoc
// @Summary Submit a completed trip draft
// @Description Validates the fifteen draft fields, normalizes them and creates exactly one trip request
// @Tags TripRequest
// @Accept json
// @Produce json
// @Param request body request_models.SubmitTripRequest true "Completed draft"
// @Success 201 {object} response_models.TripRequestCreated
// @Failure 400 {object} utils.APIResponse
// @Router /trip-requests [post]
func (t *TripRequestController) SubmitTripRequest(c *gin.Context) {
	var req request_models.SubmitTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Malformed request body")
		return
	}

	created, err := t.tripService.Submit(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	// A successful submission retires the wizard session and its snapshot.
	t.wizardService.Complete(c.Request.Context(), req.SessionID)

	utils.RespondCreated(c, created, "Trip request created")
}

// GetTripRequest godoc
// @Summary Get a trip request confirmation view
// @Tags TripRequest
// @Produce json
// @Param id path string true "Trip request ID"
// @Success 200 {object} response_models.TripRequestDetail
// @Failure 404 {object} utils.APIResponse
// @Router /trip-requests/{id} [get]
func (t *TripRequestController) GetTripRequest(c *gin.Context) {
	detail, err := t.tripService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, detail, "Trip request fetched")
}

// AttachActivity godoc
// @Summary Attach a catalog activity to a trip request
// @Description Idempotent: attaching the same pair twice succeeds and keeps one join row
// @Tags TripRequest
// @Accept json
// @Produce json
// @Param id path string true "Trip request ID"
// @Param request body request_models.AttachActivityRequest true "Activity ID"
// @Success 201 {object} response_models.ActivityAttached
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /trip-requests/{id}/activities [post]
func (t *TripRequestController) AttachActivity(c *gin.Context) {
	var req request_models.AttachActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ActivityID == "" {
		utils.RespondError(c, http.StatusBadRequest, "ActivityID is required")
		return
	}

	attached, err := t.activityService.Attach(c.Request.Context(), c.Param("id"), req.ActivityID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, attached, "Activity attached")
}

// UpdateStatus godoc
// @Summary Change a trip request's pipeline status
// @Tags TripRequest
// @Accept json
// @Produce json
// @Param id path string true "Trip request ID"
// @Param request body request_models.UpdateStatusRequest true "New status"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trip-requests/{id}/status [patch]
func (t *TripRequestController) UpdateStatus(c *gin.Context) {
	var req request_models.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Status == "" {
		utils.RespondError(c, http.StatusBadRequest, "Status is required")
		return
	}

	if err := t.tripService.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Status updated")
}
