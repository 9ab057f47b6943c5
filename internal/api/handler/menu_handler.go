package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/internal/dto"
	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/internal/service"
	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/pkg/response"
)

// MenuHandler 메뉴 모듈 HTTP 처리기
type MenuHandler struct {
	menuSvc     service.MenuService
	favoriteSvc service.FavoriteService
}

// NewMenuHandler MenuHandler 생성
func NewMenuHandler(menuSvc service.MenuService, favoriteSvc service.FavoriteService) *MenuHandler {
	return &MenuHandler{menuSvc: menuSvc, favoriteSvc: favoriteSvc}
}

// ListByBrand 브랜드 내 메뉴 목록
// GET /api/v1/brands/:id/menus
func (h *MenuHandler) ListByBrand(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	brandID, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.MenuListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "요청 형식이 올바르지 않습니다")
		return
	}

	result, err := h.menuSvc.ListByBrand(c.Request.Context(), userID, brandID, req.Keyword)
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

// Get 메뉴 상세 (사이즈별 영양 정보 포함)
// GET /api/v1/menus/:id
func (h *MenuHandler) Get(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	menuID, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.menuSvc.Get(c.Request.Context(), userID, menuID)
	if err != nil {
		if errors.Is(err, service.ErrMenuNotFound) {
			response.NotFound(c, 16001, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// ListFavorites 즐겨찾기한 메뉴 목록
// GET /api/v1/menus/favorites
func (h *MenuHandler) ListFavorites(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.menuSvc.ListFavorites(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// AddFavorite 메뉴 즐겨찾기 등록 (멱등)
// POST /api/v1/menus/:id/favorite
func (h *MenuHandler) AddFavorite(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	menuID, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.favoriteSvc.AddMenu(c.Request.Context(), userID, menuID); err != nil {
		if errors.Is(err, service.ErrMenuNotFound) {
			response.NotFound(c, 16001, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}

// RemoveFavorite 메뉴 즐겨찾기 해제
// DELETE /api/v1/menus/:id/favorite
func (h *MenuHandler) RemoveFavorite(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	menuID, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.favoriteSvc.RemoveMenu(c.Request.Context(), userID, menuID); err != nil {
		if errors.Is(err, service.ErrFavoriteNotFound) {
			response.NotFound(c, 15002, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.NoContent(c)
}
