package handler

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/internal/dto"
	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/internal/service"
	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/pkg/response"
)

// UserHandler 유저 모듈 HTTP 처리기
type UserHandler struct {
	userSvc service.UserService
}

// NewUserHandler UserHandler 생성
func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// GetMe 내 정보 조회
// GET /api/v1/users/me
func (h *UserHandler) GetMe(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.userSvc.GetMe(c.Request.Context(), userID)
	if err != nil {
		writeUserError(c, err)
		return
	}

	response.OK(c, result)
}

// UpdateNickname 닉네임 변경
// PATCH /api/v1/users/me/nickname
func (h *UserHandler) UpdateNickname(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateNicknameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 형식이 올바르지 않습니다")
		return
	}

	result, err := h.userSvc.UpdateNickname(c.Request.Context(), userID, req.Nickname)
	if err != nil {
		writeUserError(c, err)
		return
	}

	response.OK(c, result)
}

// UpdateProfileImage 프로필 이미지 업로드 (multipart/form-data, image 필드)
// PUT /api/v1/users/me/profile-image
func (h *UserHandler) UpdateProfileImage(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		response.BadRequest(c, 10001, "이미지 파일이 필요합니다")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.InternalError(c)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		response.InternalError(c)
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	result, err := h.userSvc.UpdateProfileImage(c.Request.Context(), userID, fileHeader.Filename, contentType, data)
	if err != nil {
		writeUserError(c, err)
		return
	}

	response.OK(c, result)
}

// DeleteMe 탈퇴
// DELETE /api/v1/users/me
func (h *UserHandler) DeleteMe(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.userSvc.DeleteMe(c.Request.Context(), userID); err != nil {
		writeUserError(c, err)
		return
	}

	response.NoContent(c)
}

func writeUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, 12001, err.Error())
	case errors.Is(err, service.ErrNicknameTaken):
		response.Conflict(c, 11004, err.Error())
	default:
		response.InternalError(c)
	}
}
