package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config 애플리케이션 전역 설정
type Config struct {
	Server       ServerConfig       `mapstructure:"server"`
	Database     DatabaseConfig     `mapstructure:"db"`
	Redis        RedisConfig        `mapstructure:"redis"`
	Auth         AuthConfig         `mapstructure:"auth"`
	Mail         MailConfig         `mapstructure:"mail"`
	Storage      StorageConfig      `mapstructure:"storage"`
	FCM          FCMConfig          `mapstructure:"fcm"`
	Notification NotificationConfig `mapstructure:"notification"`
	Log          LogConfig          `mapstructure:"log"`
}

// ServerConfig HTTP 서버 설정
type ServerConfig struct {
	Port    int        `mapstructure:"port"`
	BaseURL string     `mapstructure:"base_url"`
	CORS    CORSConfig `mapstructure:"cors"`
}

// CORSConfig 교차 출처 설정
type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// DatabaseConfig PostgreSQL 설정
type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Name            string `mapstructure:"name"`
	User            string `mapstructure:"user"`
	Password        string `mapstructure:"password"`
	SSLMode         string `mapstructure:"sslmode"`
	Timezone        string `mapstructure:"timezone"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`  // 커넥션 최대 수명(분)
	ConnMaxIdleTime int    `mapstructure:"conn_max_idle_time"` // 유휴 커넥션 최대 수명(분)
}

// DSN PostgreSQL 연결 문자열 생성
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode, c.Timezone,
	)
}

// RedisConfig Redis 설정 (토큰 블랙리스트 / 레이트 리밋)
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// AuthConfig JWT 인증 설정
type AuthConfig struct {
	JWTSecret       string        `mapstructure:"jwt_secret"`
	AccessTokenTTL  time.Duration `mapstructure:"access_token_ttl"`
	RefreshTokenTTL time.Duration `mapstructure:"refresh_token_ttl"`
	GoogleClientID  string        `mapstructure:"google_client_id"`
	AppleClientID   string        `mapstructure:"apple_client_id"`
	ResetCodeTTL    time.Duration `mapstructure:"reset_code_ttl"`
}

// MailConfig SMTP 메일 설정 (비밀번호 재설정 코드 발송)
type MailConfig struct {
	SMTPHost string `mapstructure:"smtp_host"`
	SMTPPort int    `mapstructure:"smtp_port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
}

// StorageConfig S3 저장소 설정 (프로필 이미지 업로드)
type StorageConfig struct {
	Bucket     string `mapstructure:"bucket"`
	Region     string `mapstructure:"region"`
	BaseURL    string `mapstructure:"base_url"`
	ProfileDir string `mapstructure:"profile_dir"`
}

// FCMConfig Firebase Cloud Messaging 설정
type FCMConfig struct {
	CredentialsFile string `mapstructure:"credentials_file"`
}

// NotificationConfig 알림 스케줄러 설정
type NotificationConfig struct {
	Timezone string `mapstructure:"timezone"` // 트리거 시각 비교 기준 타임존
	CronSpec string `mapstructure:"cron_spec"`
}

// LogConfig 로그 설정
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load 설정 파일과 환경 변수에서 설정 로드
// 우선순위: 환경 변수 > 설정 파일 > 기본값
func Load(path string) (*Config, error) {
	v := viper.New()

	// ── 기본값 ──
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.base_url", "http://localhost:8080")
	v.SetDefault("server.cors.allow_origins", []string{"http://localhost:5173"})

	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.name", "lastcup")
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.password", "")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.timezone", "Asia/Seoul")
	v.SetDefault("db.max_open_conns", 25)
	v.SetDefault("db.max_idle_conns", 10)
	v.SetDefault("db.conn_max_lifetime", 60)
	v.SetDefault("db.conn_max_idle_time", 30)

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("auth.access_token_ttl", "30m")
	v.SetDefault("auth.refresh_token_ttl", "336h") // 14일
	v.SetDefault("auth.reset_code_ttl", "10m")

	v.SetDefault("storage.region", "ap-northeast-2")
	v.SetDefault("storage.profile_dir", "profile-images")

	v.SetDefault("notification.timezone", "Asia/Seoul")
	v.SetDefault("notification.cron_spec", "* * * * *") // 매분

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// ── 설정 파일 ──
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	// ── 환경 변수 ──
	v.SetEnvPrefix("LASTCUP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("설정 파일 읽기 실패: %w", err)
		}
		// 설정 파일이 없으면 기본값과 환경 변수만 사용
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("설정 파싱 실패: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate 필수 설정 검증
func (c *Config) Validate() error {
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("설정 검증 실패: auth.jwt_secret은 비어 있을 수 없습니다")
	}
	if len(c.Auth.JWTSecret) < 16 {
		return fmt.Errorf("설정 검증 실패: auth.jwt_secret은 16자 이상이어야 합니다")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("설정 검증 실패: server.port는 1-65535 범위여야 합니다")
	}
	if _, err := time.LoadLocation(c.Notification.Timezone); err != nil {
		return fmt.Errorf("설정 검증 실패: notification.timezone이 올바르지 않습니다: %w", err)
	}
	return nil
}
