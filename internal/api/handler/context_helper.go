package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/pkg/response"
)

// MustGetUserID Gin 컨텍스트에서 user_id를 꺼낸다.
// JWT 미들웨어가 주입하지 않았으면 401을 쓰고 false를 돌려준다.
// 호출 측은 ok=false일 때 바로 return해야 한다.
func MustGetUserID(c *gin.Context) (int64, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		response.Unauthorized(c, 10002, "인증되지 않았습니다")
		return 0, false
	}
	id, ok := v.(int64)
	if !ok || id == 0 {
		response.Unauthorized(c, 10002, "인증되지 않았습니다")
		return 0, false
	}
	return id, true
}

// ParseIDParam 경로 파라미터를 int64 ID로 파싱한다. 실패 시 400을 쓴다.
func ParseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, 10001, "경로 파라미터가 올바르지 않습니다")
		return 0, false
	}
	return id, true
}
