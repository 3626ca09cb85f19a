package controller

import (
	"errors"

	"digicheck_backend/internal/model"
	"digicheck_backend/internal/service"
	"digicheck_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type GuideController struct {
	GuideService *service.GuideService
}

func NewGuideController(guideService *service.GuideService) *GuideController {
	return &GuideController{GuideService: guideService}
}

// @Summary List published guides
// @Tags guides
// @Produce json
// @Param category query string false "Category filter"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} util.Response
// @Router /guides [get]
func (c *GuideController) ListGuides(ctx *gin.Context) {
	category := model.CategoryKey(ctx.Query("category"))
	if category != "" && !category.Valid() {
		util.BadRequest(ctx, "unknown category")
		return
	}

	page := int(util.MustParseUint(ctx.DefaultQuery("page", "1")))
	limit := int(util.MustParseUint(ctx.DefaultQuery("limit", "20")))

	guides, total, err := c.GuideService.ListPublished(page, limit, category)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  guides,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// @Summary Guide detail
// @Tags guides
// @Produce json
// @Param slug path string true "Guide slug"
// @Success 200 {object} util.Response
// @Router /guides/{slug} [get]
func (c *GuideController) GetGuide(ctx *gin.Context) {
	guide, err := c.GuideService.GetBySlug(ctx.Param("slug"))
	if err != nil {
		if errors.Is(err, util.ErrGuideNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, guide)
}
