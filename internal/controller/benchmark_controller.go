package controller

import (
	"errors"

	"digicheck_backend/internal/service"
	"digicheck_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type BenchmarkController struct {
	BenchmarkService *service.BenchmarkService
	SurveyService    *service.SurveyService
}

func NewBenchmarkController(benchmarkService *service.BenchmarkService, surveyService *service.SurveyService) *BenchmarkController {
	return &BenchmarkController{BenchmarkService: benchmarkService, SurveyService: surveyService}
}

// @Summary Latest benchmark dataset
// @Tags benchmark
// @Produce json
// @Success 200 {object} util.Response
// @Router /benchmark [get]
func (c *BenchmarkController) GetBenchmark(ctx *gin.Context) {
	bench, err := c.BenchmarkService.GetLatest()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	if bench == nil {
		util.NotFound(ctx)
		return
	}

	util.Success(ctx, bench)
}

// @Summary Benchmark comparison for the latest survey
// @Tags benchmark
// @Produce json
// @Param X-Org-ID header int true "Organization id"
// @Success 200 {object} util.Response
// @Router /benchmark/deltas [get]
func (c *BenchmarkController) GetDeltas(ctx *gin.Context) {
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

	deltas, err := c.BenchmarkService.CalcDeltas(submission.ScoreSet().Scores)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	if deltas == nil {
		util.NotFound(ctx)
		return
	}

	util.Success(ctx, deltas)
}
