package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/internal/dto"
	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/internal/service"
	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/pkg/response"
)

// DeviceHandler 디바이스 모듈 HTTP 처리기
type DeviceHandler struct {
	deviceSvc service.DeviceService
}

// NewDeviceHandler DeviceHandler 생성
func NewDeviceHandler(deviceSvc service.DeviceService) *DeviceHandler {
	return &DeviceHandler{deviceSvc: deviceSvc}
}

// Register FCM 토큰 등록/갱신
// POST /api/v1/devices
func (h *DeviceHandler) Register(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.RegisterDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 형식이 올바르지 않습니다")
		return
	}

	result, err := h.deviceSvc.Register(c.Request.Context(), userID, &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// Unregister FCM 토큰 해제
// DELETE /api/v1/devices
func (h *DeviceHandler) Unregister(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req struct {
		FCMToken string `json:"fcm_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 형식이 올바르지 않습니다")
		return
	}

	if err := h.deviceSvc.Unregister(c.Request.Context(), userID, req.FCMToken); err != nil {
		if errors.Is(err, service.ErrDeviceNotFound) {
			response.NotFound(c, 13001, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.NoContent(c)
}
