package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/pkg/jwt"
	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/pkg/redis"
	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/pkg/response"
)

// JWTAuth JWT 인증 미들웨어.
// Authorization: Bearer <token>에서 Access Token을 꺼내 검증하고,
// Redis 블랙리스트(로그아웃된 토큰)를 확인한다. rdb가 nil이면 블랙리스트 확인은 건너뛴다.
func JWTAuth(jwtMgr *jwt.Manager, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, 10002, "인증 헤더가 없습니다")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, 10002, "인증 헤더 형식이 올바르지 않습니다")
			c.Abort()
			return
		}

		claims, err := jwtMgr.ParseToken(parts[1])
		if err != nil {
			response.Unauthorized(c, 10002, "토큰이 유효하지 않거나 만료되었습니다")
			c.Abort()
			return
		}

		if claims.TokenType != "access" {
			response.Unauthorized(c, 10002, "토큰 종류가 올바르지 않습니다")
			c.Abort()
			return
		}

		if rdb != nil {
			blacklisted, err := rdb.IsAccessTokenBlacklisted(c.Request.Context(), claims.ID)
			// Redis 장애 시에는 서명 검증만으로 통과시킨다
			if err == nil && blacklisted {
				response.Unauthorized(c, 10002, "로그아웃된 토큰입니다")
				c.Abort()
				return
			}
		}

		c.Set("user_id", claims.UserID)
		c.Next()
	}
}
