package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// 바이낸스 API 설정
	Binance struct {
		APIKey     string        `envconfig:"BINANCE_API_KEY" required:"true"`
		SecretKey  string        `envconfig:"BINANCE_SECRET_KEY" required:"true"`
		UseTestnet bool          `envconfig:"BINANCE_USE_TESTNET" default:"true"`
		Timeout    time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s"`
		RecvWindow int           `envconfig:"RECV_WINDOW" default:"5000"`
	}

	// 거래 설정
	Trading struct {
		// 최소 명목 가치 (USDT). 거래소 전역 기준인지 심볼별 기준인지
		// 확정되지 않아 설정값으로 둡니다.
		MinNotional float64 `envconfig:"MIN_NOTIONAL" default:"100"`
	}

	// 로그 설정
	Log struct {
		Level      string `envconfig:"LOG_LEVEL" default:"info"`
		File       string `envconfig:"LOG_FILE" default:"logs/bot.log"`
		MaxSizeMB  int    `envconfig:"LOG_MAX_SIZE_MB" default:"1"`
		MaxBackups int    `envconfig:"LOG_MAX_BACKUPS" default:"3"`
		MaxAgeDays int    `envconfig:"LOG_MAX_AGE_DAYS" default:"28"`
	}

	// 디스코드 웹훅 설정 (선택, 비워두면 알림 비활성화)
	Discord struct {
		TradeWebhook string `envconfig:"DISCORD_TRADE_WEBHOOK"`
		ErrorWebhook string `envconfig:"DISCORD_ERROR_WEBHOOK"`
		InfoWebhook  string `envconfig:"DISCORD_INFO_WEBHOOK"`
	}
}

// ValidateConfig는 설정이 유효한지 확인합니다.
func ValidateConfig(cfg *Config) error {
	if cfg.Binance.APIKey == "" || cfg.Binance.SecretKey == "" {
		return fmt.Errorf("바이낸스 API 키와 시크릿 키는 비어 있을 수 없습니다")
	}

	if cfg.Trading.MinNotional <= 0 {
		return fmt.Errorf("MIN_NOTIONAL은 0보다 커야 합니다")
	}

	if cfg.Binance.RecvWindow <= 0 {
		return fmt.Errorf("RECV_WINDOW는 0보다 커야 합니다")
	}

	if cfg.Binance.Timeout < time.Second {
		return fmt.Errorf("HTTP_TIMEOUT은 1초 이상이어야 합니다")
	}

	return nil
}

// LoadConfig는 환경변수에서 설정을 로드합니다.
func LoadConfig() (*Config, error) {
	// .env 파일은 로컬 실행 편의를 위한 것이므로 없어도 계속 진행
	_ = godotenv.Load()

	var cfg Config
	// 환경변수를 구조체로 파싱
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("환경변수 처리 실패: %w", err)
	}

	// 설정값 검증
	if err := ValidateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("설정값 검증 실패: %w", err)
	}

	return &cfg, nil
}
