package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/internal/dto"
	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/internal/service"
	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/pkg/response"
)

// NotificationHandler 알림 설정 모듈 HTTP 처리기
type NotificationHandler struct {
	settingSvc service.NotificationSettingService
}

// NewNotificationHandler NotificationHandler 생성
func NewNotificationHandler(settingSvc service.NotificationSettingService) *NotificationHandler {
	return &NotificationHandler{settingSvc: settingSvc}
}

// GetSetting 알림 설정 조회 (없으면 기본값 생성)
// GET /api/v1/notifications/settings
func (h *NotificationHandler) GetSetting(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.settingSvc.Get(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// UpdateSetting 알림 설정 변경 (부분 갱신)
// PATCH /api/v1/notifications/settings
func (h *NotificationHandler) UpdateSetting(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateNotificationSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 형식이 올바르지 않습니다")
		return
	}

	result, err := h.settingSvc.Update(c.Request.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidTriggerTime) {
			response.BadRequest(c, 14001, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}
