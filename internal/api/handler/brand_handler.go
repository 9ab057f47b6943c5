package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/internal/dto"
	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/internal/service"
	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/pkg/response"
)

// BrandHandler 브랜드 모듈 HTTP 처리기
type BrandHandler struct {
	brandSvc    service.BrandService
	favoriteSvc service.FavoriteService
}

// NewBrandHandler BrandHandler 생성
func NewBrandHandler(brandSvc service.BrandService, favoriteSvc service.FavoriteService) *BrandHandler {
	return &BrandHandler{brandSvc: brandSvc, favoriteSvc: favoriteSvc}
}

// List 브랜드 목록 (즐겨찾기 우선, 키워드 검색)
// GET /api/v1/brands
func (h *BrandHandler) List(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.BrandListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "요청 형식이 올바르지 않습니다")
		return
	}

	result, err := h.brandSvc.List(c.Request.Context(), userID, req.Keyword)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// AddFavorite 브랜드 즐겨찾기 등록 (멱등)
// POST /api/v1/brands/:id/favorite
func (h *BrandHandler) AddFavorite(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	brandID, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.favoriteSvc.AddBrand(c.Request.Context(), userID, brandID); err != nil {
		if errors.Is(err, service.ErrBrandNotFound) {
			response.NotFound(c, 15001, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}

// RemoveFavorite 브랜드 즐겨찾기 해제
// DELETE /api/v1/brands/:id/favorite
func (h *BrandHandler) RemoveFavorite(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	brandID, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.favoriteSvc.RemoveBrand(c.Request.Context(), userID, brandID); err != nil {
		if errors.Is(err, service.ErrFavoriteNotFound) {
			response.NotFound(c, 15002, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.NoContent(c)
}
