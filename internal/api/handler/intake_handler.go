package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/internal/dto"
	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/internal/service"
	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/pkg/response"
)

// IntakeHandler 섭취 기록 모듈 HTTP 처리기
type IntakeHandler struct {
	intakeSvc service.IntakeService
	exportSvc service.ExportService
}

// NewIntakeHandler IntakeHandler 생성
func NewIntakeHandler(intakeSvc service.IntakeService, exportSvc service.ExportService) *IntakeHandler {
	return &IntakeHandler{intakeSvc: intakeSvc, exportSvc: exportSvc}
}

// Create 섭취 기록 생성
// POST /api/v1/intakes
func (h *IntakeHandler) Create(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateIntakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 형식이 올바르지 않습니다")
		return
	}

	result, err := h.intakeSvc.Create(c.Request.Context(), userID, &req)
	if err != nil {
		writeIntakeError(c, err)
		return
	}

	response.Created(c, result)
}

// Update 섭취 기록 수정 (옵션 전체 교체)
// PUT /api/v1/intakes/:id
func (h *IntakeHandler) Update(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	intakeID, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateIntakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 형식이 올바르지 않습니다")
		return
	}

	result, err := h.intakeSvc.Update(c.Request.Context(), userID, intakeID, &req)
	if err != nil {
		writeIntakeError(c, err)
		return
	}

	response.OK(c, result)
}

// Delete 섭취 기록 삭제
// DELETE /api/v1/intakes/:id
func (h *IntakeHandler) Delete(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	intakeID, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.intakeSvc.Delete(c.Request.Context(), userID, intakeID); err != nil {
		writeIntakeError(c, err)
		return
	}

	response.NoContent(c)
}

// List 기간별 섭취 기록
// GET /api/v1/intakes?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *IntakeHandler) List(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.IntakeListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "from/to 날짜가 필요합니다")
		return
	}

	result, err := h.intakeSvc.ListByPeriod(c.Request.Context(), userID, req.From, req.To)
	if err != nil {
		writeIntakeError(c, err)
		return
	}

	response.OK(c, result)
}

// Stats 기간 통계 (일별 합산)
// GET /api/v1/intakes/stats?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *IntakeHandler) Stats(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.IntakeListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "from/to 날짜가 필요합니다")
		return
	}

	result, err := h.intakeSvc.StatsByPeriod(c.Request.Context(), userID, req.From, req.To)
	if err != nil {
		writeIntakeError(c, err)
		return
	}

	response.OK(c, result)
}

// Export 기간 내 기록을 XLSX 파일로 내려준다
// GET /api/v1/intakes/export?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *IntakeHandler) Export(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.IntakeListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "from/to 날짜가 필요합니다")
		return
	}

	data, filename, err := h.exportSvc.ExportIntakes(c.Request.Context(), userID, req.From, req.To)
	if err != nil {
		writeIntakeError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

func writeIntakeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrIntakeNotFound):
		response.NotFound(c, 17001, err.Error())
	case errors.Is(err, service.ErrMenuSizeNotFound):
		response.NotFound(c, 17002, err.Error())
	case errors.Is(err, service.ErrOptionNotFound):
		response.NotFound(c, 17003, err.Error())
	case errors.Is(err, service.ErrOptionBrandMixed):
		response.BadRequest(c, 17004, err.Error())
	case errors.Is(err, service.ErrInvalidPeriod):
		response.BadRequest(c, 17005, err.Error())
	default:
		response.InternalError(c)
	}
}
