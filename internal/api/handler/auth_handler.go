package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/internal/dto"
	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/internal/service"
	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/pkg/jwt"
	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/pkg/response"
)

// AuthHandler 인증 모듈 HTTP 처리기
type AuthHandler struct {
	authSvc  service.AuthService
	resetSvc service.PasswordResetService
}

// NewAuthHandler AuthHandler 생성
func NewAuthHandler(authSvc service.AuthService, resetSvc service.PasswordResetService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc, resetSvc: resetSvc}
}

// Signup 자체 회원가입
// POST /api/v1/auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 형식이 올바르지 않습니다")
		return
	}

	result, err := h.authSvc.Signup(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrLoginIDTaken):
			response.Conflict(c, 11002, err.Error())
		case errors.Is(err, service.ErrEmailTaken):
			response.Conflict(c, 11003, err.Error())
		case errors.Is(err, service.ErrNicknameTaken):
			response.Conflict(c, 11004, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, result)
}

// Login 자체 로그인
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 형식이 올바르지 않습니다")
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			response.Error(c, http.StatusUnauthorized, 11001, err.Error())
		case errors.Is(err, service.ErrUserDeleted):
			response.Error(c, http.StatusForbidden, 11005, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}

// SocialLogin 소셜 로그인 (Google / Apple)
// POST /api/v1/auth/social-login
func (h *AuthHandler) SocialLogin(c *gin.Context) {
	var req dto.SocialLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 형식이 올바르지 않습니다")
		return
	}

	result, err := h.authSvc.SocialLogin(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnsupportedProvider):
			response.BadRequest(c, 11006, err.Error())
		case errors.Is(err, service.ErrInvalidCredentials):
			response.Error(c, http.StatusUnauthorized, 11001, "소셜 토큰 검증에 실패했습니다")
		case errors.Is(err, service.ErrUserDeleted):
			response.Error(c, http.StatusForbidden, 11005, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}

// RefreshToken 토큰 재발급
// POST /api/v1/auth/refresh
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 형식이 올바르지 않습니다")
		return
	}

	result, err := h.authSvc.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired),
			errors.Is(err, jwt.ErrTokenInvalid),
			errors.Is(err, service.ErrTokenBlacklisted):
			response.Unauthorized(c, 10002, "토큰이 유효하지 않습니다")
		case errors.Is(err, service.ErrUserDeleted):
			response.Error(c, http.StatusForbidden, 11005, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}

// Logout 로그아웃 — Access/Refresh 토큰을 블랙리스트에 올린다
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	var req dto.RefreshTokenRequest
	// 본문이 없어도(Access Token만 무효화) 진행한다
	_ = c.ShouldBindJSON(&req)

	accessToken := ""
	if auth := c.GetHeader("Authorization"); len(auth) > 7 {
		accessToken = auth[7:]
	}

	if err := h.authSvc.Logout(c.Request.Context(), accessToken, req.RefreshToken); err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}

// RequestPasswordReset 비밀번호 재설정 코드 발송
// POST /api/v1/auth/password-reset/request
func (h *AuthHandler) RequestPasswordReset(c *gin.Context) {
	var req dto.PasswordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 형식이 올바르지 않습니다")
		return
	}

	if err := h.resetSvc.Request(c.Request.Context(), req.Email); err != nil {
		response.InternalError(c)
		return
	}

	// 이메일 존재 여부와 무관하게 같은 응답을 준다
	response.OK(c, nil)
}

// VerifyPasswordReset 재설정 코드 검증
// POST /api/v1/auth/password-reset/verify
func (h *AuthHandler) VerifyPasswordReset(c *gin.Context) {
	var req dto.PasswordResetVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 형식이 올바르지 않습니다")
		return
	}

	if err := h.resetSvc.Verify(c.Request.Context(), req.Email, req.Code); err != nil {
		writeResetError(c, err)
		return
	}

	response.OK(c, nil)
}

// ConfirmPasswordReset 새 비밀번호 확정
// POST /api/v1/auth/password-reset/confirm
func (h *AuthHandler) ConfirmPasswordReset(c *gin.Context) {
	var req dto.PasswordResetConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 형식이 올바르지 않습니다")
		return
	}

	if err := h.resetSvc.Confirm(c.Request.Context(), req.Email, req.Code, req.NewPassword); err != nil {
		writeResetError(c, err)
		return
	}

	response.OK(c, nil)
}

func writeResetError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrResetCodeInvalid):
		response.BadRequest(c, 11007, err.Error())
	case errors.Is(err, service.ErrResetCodeExpired):
		response.BadRequest(c, 11008, err.Error())
	default:
		response.InternalError(c)
	}
}
