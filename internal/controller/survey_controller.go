package controller

import (
	"errors"

	"digicheck_backend/internal/service"
	"digicheck_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SurveyController struct {
	SurveyService *service.SurveyService
}

func NewSurveyController(surveyService *service.SurveyService) *SurveyController {
	return &SurveyController{SurveyService: surveyService}
}

// @Summary Submit a maturity survey
// @Description Scores a questionnaire, persists the submission and returns scores, levels, recommended actions and benchmark deltas
// @Tags surveys
// @Accept json
// @Produce json
// @Param X-Org-ID header int true "Organization id"
// @Param survey body service.SurveySubmitRequest true "Survey answers"
// @Success 201 {object} util.Response
// @Router /surveys [post]
func (c *SurveyController) SubmitSurvey(ctx *gin.Context) {
	orgID := util.OrgID(ctx)
	if orgID == 0 {
		util.BadRequest(ctx, util.ErrMissingOrg.Error())
		return
	}

	var req service.SurveySubmitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.SurveyService.SubmitSurvey(orgID, req)
	if err != nil {
		if errors.Is(err, util.ErrInvalidAnswerPayload) || errors.Is(err, util.ErrUnknownQuestion) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, result)
}

// @Summary Latest survey submission
// @Tags surveys
// @Produce json
// @Param X-Org-ID header int true "Organization id"
// @Success 200 {object} util.Response
// @Router /surveys/latest [get]
func (c *SurveyController) GetLatest(ctx *gin.Context) {
	orgID := util.OrgID(ctx)
	if orgID == 0 {
		util.BadRequest(ctx, util.ErrMissingOrg.Error())
		return
	}

	submission, err := c.SurveyService.GetLatest(orgID)
	if err != nil {
		if errors.Is(err, util.ErrSubmissionNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, submission)
}

// @Summary Survey submission history
// @Tags surveys
// @Produce json
// @Param X-Org-ID header int true "Organization id"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} util.Response
// @Router /surveys [get]
func (c *SurveyController) ListSurveys(ctx *gin.Context) {
	orgID := util.OrgID(ctx)
	if orgID == 0 {
		util.BadRequest(ctx, util.ErrMissingOrg.Error())
		return
	}

	page := int(util.MustParseUint(ctx.DefaultQuery("page", "1")))
	limit := int(util.MustParseUint(ctx.DefaultQuery("limit", "20")))

	submissions, total, err := c.SurveyService.ListByOrg(orgID, page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  submissions,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}
