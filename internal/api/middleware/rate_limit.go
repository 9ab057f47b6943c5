package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/pkg/redis"
	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/pkg/response"
)

// RateLimit Redis 고정 윈도우 기반 속도 제한 미들웨어.
// 비밀번호 재설정처럼 남용 여지가 있는 엔드포인트에 건다.
// rdb가 nil이거나 Redis 장애 시에는 제한 없이 통과시킨다.
func RateLimit(rdb *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		key := fmt.Sprintf("rate_limit:%s:%s", c.ClientIP(), c.FullPath())
		allowed, err := rdb.CheckRateLimit(c.Request.Context(), key, limit, window)
		if err != nil {
			c.Next()
			return
		}

		if !allowed {
			response.Error(c, http.StatusTooManyRequests, 10004, "요청이 너무 잦습니다. 잠시 후 다시 시도해 주세요")
			c.Abort()
			return
		}

		c.Next()
	}
}
