package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/internal/dto"
	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/internal/service"
	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/pkg/response"
)

// OptionHandler 옵션 모듈 HTTP 처리기
type OptionHandler struct {
	optionSvc service.OptionService
}

// NewOptionHandler OptionHandler 생성
func NewOptionHandler(optionSvc service.OptionService) *OptionHandler {
	return &OptionHandler{optionSvc: optionSvc}
}

// List 브랜드별 옵션 목록 (category로 선택 필터)
// GET /api/v1/options?brand_id=&category=
func (h *OptionHandler) List(c *gin.Context) {
	var req dto.OptionListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "brand_id가 필요합니다")
		return
	}

	result, err := h.optionSvc.ListByBrand(c.Request.Context(), req.BrandID, req.Category)
	if err != nil {
		if errors.Is(err, service.ErrBrandNotFound) {
			response.NotFound(c, 15001, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}
