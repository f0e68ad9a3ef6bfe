package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/assist-by/aegis/internal/clock"
	"github.com/assist-by/aegis/internal/config"
	"github.com/assist-by/aegis/internal/domain"
	"github.com/assist-by/aegis/internal/exchange/binance"
	"github.com/assist-by/aegis/internal/guard"
	"github.com/assist-by/aegis/internal/logger"
	"github.com/assist-by/aegis/internal/notification"
	"github.com/assist-by/aegis/internal/notification/discord"
	"github.com/assist-by/aegis/internal/trader"
)

func main() {
	// 명령줄 플래그 정의
	symbolFlag := flag.String("symbol", "", "거래할 심볼 (예: BTCUSDT)")
	sideFlag := flag.String("side", "", "주문 방향: BUY 또는 SELL")
	typeFlag := flag.String("type", "", "주문 유형: MARKET, LIMIT, STOP_LIMIT")
	quantityFlag := flag.String("quantity", "", "주문 수량")
	priceFlag := flag.String("price", "", "지정가 (LIMIT/STOP_LIMIT 필수)")
	stopFlag := flag.String("stop", "", "스탑 가격 (STOP_LIMIT 필수)")
	tifFlag := flag.String("tif", "GTC", "주문 유효 기간: GTC, IOC, FOK")
	accountFlag := flag.Bool("account", false, "계정 잔고만 조회하고 종료")

	// 플래그 파싱
	flag.Parse()

	// 컨텍스트 생성
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 설정 로드
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("설정 로드 실패: %v", err)
	}

	// 로그 설정
	if err := logger.Init(logger.Config{
		Level:      cfg.Log.Level,
		Console:    true,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	}); err != nil {
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

	if cfg.Binance.UseTestnet {
		logger.Infof("테스트넷 모드로 실행 중입니다. 실제 자산은 사용되지 않습니다.")
	} else {
		logger.Warnf("메인넷 모드로 실행 중입니다. 실제 자산이 사용됩니다!")
	}

	// 바이낸스 서버와 시간 동기화 (실패해도 경고만 남기고 진행)
	clock.NewSynchronizer().Sync(ctx, binanceClient)

	// 계정 조회 모드
	if *accountFlag {
		printAccountInfo(ctx, binanceClient)
		return
	}

	// 주문 유형별 필수 플래그 확인 (조기 피드백용, 빌더에서 다시 검증됨)
	intent, err := intentFromFlags(*symbolFlag, *sideFlag, *typeFlag, *quantityFlag, *priceFlag, *stopFlag, *tifFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "에러: %v\n", err)
		flag.Usage()
		os.Exit(1)
	}

	// Discord 알림 클라이언트 생성 (웹훅이 설정된 경우만)
	var notifier notification.Notifier
	if cfg.Discord.TradeWebhook != "" || cfg.Discord.ErrorWebhook != "" || cfg.Discord.InfoWebhook != "" {
		notifier = discord.NewClient(
			cfg.Discord.TradeWebhook,
			cfg.Discord.ErrorWebhook,
			cfg.Discord.InfoWebhook,
		)
		if err := notifier.SendInfo(startupNotice(cfg.Binance.UseTestnet)); err != nil {
			logger.Errorf("시작 알림 전송 실패: %v", err)
		}
	}

	// 주문 파이프라인 실행
	t := trader.New(binanceClient, guard.New(binanceClient, cfg.Trading.MinNotional), notifier)
	outcome := t.Submit(ctx, intent)

	printOutcome(outcome)

	if !outcome.IsSuccess() {
		os.Exit(1)
	}
}

// startupNotice는 실행 모드를 알리는 시작 알림 문구를 반환합니다
func startupNotice(useTestnet bool) string {
	if useTestnet {
		return "주문 도구가 테스트넷 모드로 시작되었습니다."
	}
	return "주문 도구가 메인넷 모드로 시작되었습니다. 실제 자산이 사용됩니다."
}

// intentFromFlags는 명령줄 플래그를 거래 의도로 변환합니다
func intentFromFlags(symbol, side, orderType, quantity, price, stop, tif string) (domain.TradeIntent, error) {
	if symbol == "" {
		return domain.TradeIntent{}, fmt.Errorf("-symbol 플래그는 필수입니다")
	}

	intent := domain.TradeIntent{
		Symbol:      symbol,
		Side:        domain.OrderSide(side),
		TimeInForce: domain.TimeInForce(tif),
	}

	if !intent.Side.IsValid() {
		return domain.TradeIntent{}, fmt.Errorf("-side는 BUY 또는 SELL이어야 합니다")
	}

	switch orderType {
	case "MARKET":
		intent.Type = domain.Market
	case "LIMIT":
		intent.Type = domain.Limit
	case "STOP_LIMIT":
		intent.Type = domain.StopLimit
	default:
		return domain.TradeIntent{}, fmt.Errorf("-type은 MARKET, LIMIT, STOP_LIMIT 중 하나여야 합니다")
	}

	qty, err := parsePositiveFloat(quantity)
	if err != nil {
		return domain.TradeIntent{}, fmt.Errorf("-quantity: %w", err)
	}
	intent.Quantity = qty

	if intent.Type.NeedsPrice() {
		if price == "" {
			return domain.TradeIntent{}, fmt.Errorf("%s 주문에는 -price 플래그가 필요합니다", orderType)
		}
		p, err := parsePositiveDecimal(price)
		if err != nil {
			return domain.TradeIntent{}, fmt.Errorf("-price: %w", err)
		}
		intent.Price = p
	}

	if intent.Type.NeedsStopPrice() {
		if stop == "" {
			return domain.TradeIntent{}, fmt.Errorf("STOP_LIMIT 주문에는 -stop 플래그가 필요합니다")
		}
		sp, err := parsePositiveDecimal(stop)
		if err != nil {
			return domain.TradeIntent{}, fmt.Errorf("-stop: %w", err)
		}
		intent.StopPrice = sp
	}

	return intent, nil
}

// parsePositiveFloat는 0보다 큰 실수를 파싱합니다
func parsePositiveFloat(value string) (float64, error) {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("숫자로 변환할 수 없습니다: %q", value)
	}
	if v <= 0 {
		return 0, fmt.Errorf("0보다 커야 합니다")
	}
	return v, nil
}

// parsePositiveDecimal은 0보다 큰 십진수를 파싱합니다.
// 입력한 문자열 그대로의 정밀도가 와이어까지 유지됩니다.
func parsePositiveDecimal(value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("숫자로 변환할 수 없습니다: %q", value)
	}
	if !d.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("0보다 커야 합니다")
	}
	return d, nil
}

// printAccountInfo는 선물 계정의 USDT 잔고를 출력합니다
func printAccountInfo(ctx context.Context, client *binance.Client) {
	info, err := client.GetAccountInfo(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "계정 조회 실패: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("--- 선물 계정 (USDT-M) ---")
	if usdt, ok := info.Balances["USDT"]; ok {
		fmt.Printf("USDT 지갑 잔고   : %.4f\n", usdt.WalletBalance)
		fmt.Printf("USDT 사용 가능   : %.4f\n", usdt.Available)
	} else {
		fmt.Println("USDT 잔고가 없습니다.")
	}
	fmt.Printf("총 마진 잔고     : %.4f\n", info.TotalMarginBalance)
	fmt.Printf("총 미실현 손익   : %.4f\n", info.TotalUnrealizedProfit)

	for _, pos := range info.Positions {
		fmt.Printf("포지션 %-10s : 수량 %.8f, 진입가 %.4f, 미실현 %.4f\n",
			pos.Symbol, pos.Quantity, pos.EntryPrice, pos.UnrealizedProfit)
	}
}

// printOutcome은 주문 시도 결과를 출력합니다
func printOutcome(outcome domain.OrderOutcome) {
	switch outcome.Kind {
	case domain.Accepted:
		o := outcome.Order
		fmt.Println("\n--- 주문 결과 ---")
		fmt.Printf("심볼          : %s\n", o.Symbol)
		fmt.Printf("방향          : %s\n", o.Side)
		fmt.Printf("유형          : %s\n", o.Type)
		fmt.Printf("상태          : %s\n", o.Status)
		fmt.Printf("주문 ID       : %d\n", o.OrderID)
		fmt.Printf("클라이언트 ID : %s\n", o.ClientOrderID)
		fmt.Printf("가격          : %.8f\n", o.Price)
		fmt.Printf("주문 수량     : %.8f\n", o.OrigQuantity)
		fmt.Printf("체결 수량     : %.8f\n", o.ExecutedQuantity)
		fmt.Printf("갱신 시간     : %s\n", o.UpdateTime.Format("2006-01-02 15:04:05"))

	case domain.RejectedByExchange:
		fmt.Println("\n거래소가 주문을 거부했습니다:")
		fmt.Printf("  코드   : %d\n", outcome.Code)
		fmt.Printf("  메시지 : %s\n", outcome.Message)
		if outcome.Guidance != "" {
			fmt.Printf("\n%s\n", outcome.Guidance)
		}

	case domain.GuardBlocked:
		fmt.Println("\n주문을 전송하지 않았습니다:")
		fmt.Printf("  추정 명목 가치 = %s USDT (가격 × 수량)\n", outcome.Estimate.StringFixed(2))
		fmt.Printf("  최소 기준인 %s USDT 이상이 필요합니다.\n", outcome.Threshold.StringFixed(2))
		fmt.Println("  수량을 늘리거나 더 저렴한 심볼을 시도하세요.")

	case domain.LocalValidationFailure:
		fmt.Printf("\n주문 검증 실패: %s\n", outcome.Description)

	case domain.TransportFailure:
		fmt.Printf("\n거래소 통신 중 네트워크 에러가 발생했습니다:\n  %s\n", outcome.Description)

	default:
		fmt.Printf("\n예상하지 못한 에러:\n  %s\n", outcome.Description)
	}
}
