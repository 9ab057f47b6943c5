package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/config"
	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/internal/api/handler"
	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/internal/api/middleware"
	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/pkg/jwt"
	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/pkg/redis"
)

// Setup Gin 라우터 초기화
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 전역 미들웨어 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(5 << 20)) // 프로필 이미지 업로드 고려 5MB

	// ── 헬스 체크 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 인증 모듈 (비로그인)
		auth := v1.Group("/auth")
		{
			auth.POST("/signup", h.Auth.Signup)
			auth.POST("/login", h.Auth.Login)
			auth.POST("/social-login", h.Auth.SocialLogin)
			auth.POST("/refresh", h.Auth.RefreshToken)

			// 비밀번호 재설정 — 남용 방지 레이트 리밋
			reset := auth.Group("/password-reset")
			reset.Use(middleware.RateLimit(rdb, 5, time.Minute))
			{
				reset.POST("/request", h.Auth.RequestPasswordReset)
				reset.POST("/verify", h.Auth.VerifyPasswordReset)
				reset.POST("/confirm", h.Auth.ConfirmPasswordReset)
			}
		}

		// 인증 필요 라우트
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			authorized.POST("/auth/logout", h.Auth.Logout)

			// 유저 모듈
			users := authorized.Group("/users")
			{
				users.GET("/me", h.User.GetMe)
				users.PATCH("/me/nickname", h.User.UpdateNickname)
				users.PUT("/me/profile-image", h.User.UpdateProfileImage)
				users.DELETE("/me", h.User.DeleteMe)
			}

			// 디바이스 모듈
			devices := authorized.Group("/devices")
			{
				devices.POST("", h.Device.Register)
				devices.DELETE("", h.Device.Unregister)
			}

			// 알림 설정 모듈
			notifications := authorized.Group("/notifications")
			{
				notifications.GET("/settings", h.Notification.GetSetting)
				notifications.PATCH("/settings", h.Notification.UpdateSetting)
			}

			// 브랜드 모듈
			brands := authorized.Group("/brands")
			{
				brands.GET("", h.Brand.List)
				brands.GET("/:id/menus", h.Menu.ListByBrand)
				brands.POST("/:id/favorite", h.Brand.AddFavorite)
				brands.DELETE("/:id/favorite", h.Brand.RemoveFavorite)
			}

			// 메뉴 모듈
			menus := authorized.Group("/menus")
			{
				menus.GET("/favorites", h.Menu.ListFavorites)
				menus.GET("/:id", h.Menu.Get)
				menus.POST("/:id/favorite", h.Menu.AddFavorite)
				menus.DELETE("/:id/favorite", h.Menu.RemoveFavorite)
			}

			// 옵션 모듈
			authorized.GET("/options", h.Option.List)

			// 섭취 기록 모듈
			intakes := authorized.Group("/intakes")
			{
				intakes.POST("", h.Intake.Create)
				intakes.GET("", h.Intake.List)
				intakes.GET("/stats", h.Intake.Stats)
				intakes.GET("/export", h.Intake.Export)
				intakes.PUT("/:id", h.Intake.Update)
				intakes.DELETE("/:id", h.Intake.Delete)
			}
		}
	}

	return r
}
