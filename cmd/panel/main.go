package main

import (
	"context"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/assist-by/aegis/internal/clock"
	"github.com/assist-by/aegis/internal/config"
	"github.com/assist-by/aegis/internal/exchange/binance"
	"github.com/assist-by/aegis/internal/guard"
	"github.com/assist-by/aegis/internal/logger"
	"github.com/assist-by/aegis/internal/notification"
	"github.com/assist-by/aegis/internal/notification/discord"
	"github.com/assist-by/aegis/internal/trader"
	"github.com/assist-by/aegis/internal/ui"
)

func main() {
	ctx := context.Background()

	// 설정 로드
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("설정 로드 실패: %v", err)
	}

	// 로그 설정 (패널 모드에서는 파일로만 기록해 화면을 어지럽히지 않습니다)
	logCfg := logger.Config{
		Level:      cfg.Log.Level,
		Console:    false,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	}
	if err := logger.Init(logCfg); err != nil {
		log.Fatalf("로그 초기화 실패: %v", err)
	}

	// 바이낸스 클라이언트 생성
	binanceClient, err := binance.NewClient(
		cfg.Binance.APIKey,
		cfg.Binance.SecretKey,
		binance.WithTestnet(cfg.Binance.UseTestnet),
		binance.WithTimeout(cfg.Binance.Timeout),
		binance.WithRecvWindow(cfg.Binance.RecvWindow),
	)
	if err != nil {
		log.Fatalf("바이낸스 클라이언트 생성 실패: %v", err)
	}

	// 바이낸스 서버와 시간 동기화 (실패해도 경고만 남기고 진행)
	clock.NewSynchronizer().Sync(ctx, binanceClient)

	// Discord 알림 클라이언트 생성 (웹훅이 설정된 경우만)
	var notifier notification.Notifier
	if cfg.Discord.TradeWebhook != "" || cfg.Discord.ErrorWebhook != "" || cfg.Discord.InfoWebhook != "" {
		notifier = discord.NewClient(
			cfg.Discord.TradeWebhook,
			cfg.Discord.ErrorWebhook,
			cfg.Discord.InfoWebhook,
		)
		if cfg.Binance.UseTestnet {
			if err := notifier.SendInfo("주문 패널이 테스트넷 모드로 시작되었습니다."); err != nil {
				logger.Errorf("시작 알림 전송 실패: %v", err)
			}
		} else {
			if err := notifier.SendInfo("주문 패널이 메인넷 모드로 시작되었습니다. 실제 자산이 사용됩니다."); err != nil {
				logger.Errorf("시작 알림 전송 실패: %v", err)
			}
		}
	}

	t := trader.New(binanceClient, guard.New(binanceClient, cfg.Trading.MinNotional), notifier)

	// 주문 입력 폼 실행
	p := tea.NewProgram(ui.NewModel(t, binanceClient))
	if _, err := p.Run(); err != nil {
		log.Fatalf("패널 실행 실패: %v", err)
	}
}
