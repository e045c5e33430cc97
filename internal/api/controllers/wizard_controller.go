package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripwise/internal/models/request_models"
	"tripwise/internal/services"
	"tripwise/pkg/utils"
)

type WizardController struct {
	wizardService services.WizardServiceInterface
}

func NewWizardController(wizardService services.WizardServiceInterface) *WizardController {
	return &WizardController{
		wizardService: wizardService,
	}
}

// StartWizard godoc
// @Summary Start or resume a trip-builder session
// @Description Creates a wizard session, optionally seeded with a globe pick, or restores the draft of a returning session
// @Tags Wizard
// @Accept json
// @Produce json
// @Param request body request_models.StartWizardRequest false "Optional session id and seed"
// @Success 201 {object} response_models.WizardState
// @Router /wizard [post]
func (w *WizardController) StartWizard(c *gin.Context) {
	var req request_models.StartWizardRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		utils.RespondError(c, http.StatusBadRequest, "Malformed request body")
		return
	}

	state, err := w.wizardService.Start(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, state, "Wizard session started")
}

// GetWizard godoc
// @Summary Get the current wizard state
// @Tags Wizard
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} response_models.WizardState
// @Failure 404 {object} utils.APIResponse
// @Router /wizard/{sessionId} [get]
func (w *WizardController) GetWizard(c *gin.Context) {
	state, err := w.wizardService.Get(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, state, "Wizard state fetched")
}

// AnswerStep godoc
// @Summary Answer the current wizard step
// @Description Validates the answer for the step; on failure the step does not advance and the state carries an inline error message
// @Tags Wizard
// @Accept json
// @Produce json
// @Param sessionId path string true "Session ID"
// @Param request body request_models.AnswerRequest true "Step name and answer fields"
// @Success 200 {object} response_models.WizardState
// @Failure 404 {object} utils.APIResponse
// @Router /wizard/{sessionId}/answer [post]
func (w *WizardController) AnswerStep(c *gin.Context) {
	var req request_models.AnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Step is required")
		return
	}

	state, err := w.wizardService.Answer(c.Request.Context(), c.Param("sessionId"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, state, "Answer recorded")
}

// StepBack godoc
// @Summary Move one step back
// @Tags Wizard
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} response_models.WizardState
// @Router /wizard/{sessionId}/back [post]
func (w *WizardController) StepBack(c *gin.Context) {
	state, err := w.wizardService.Back(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, state, "Moved back one step")
}

// ResetWizard godoc
// @Summary Reset the wizard to a blank first step
// @Tags Wizard
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} response_models.WizardState
// @Router /wizard/{sessionId}/reset [post]
func (w *WizardController) ResetWizard(c *gin.Context) {
	state, err := w.wizardService.Reset(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, state, "Wizard reset")
}

// SeedWizard godoc
// @Summary Seed draft fields from an external pick
// @Description Merges supplied fields into the draft; a supplied destination jumps the session to the confirm step
// @Tags Wizard
// @Accept json
// @Produce json
// @Param sessionId path string true "Session ID"
// @Param request body request_models.SeedDraft true "Fields to merge"
// @Success 200 {object} response_models.WizardState
// @Router /wizard/{sessionId}/seed [post]
func (w *WizardController) SeedWizard(c *gin.Context) {
	var seed request_models.SeedDraft
	if err := c.ShouldBindJSON(&seed); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Malformed request body")
		return
	}

	state, err := w.wizardService.Seed(c.Request.Context(), c.Param("sessionId"), seed)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, state, "Draft seeded")
}
