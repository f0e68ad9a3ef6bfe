package guard

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/assist-by/aegis/internal/exchange"
	"github.com/assist-by/aegis/internal/logger"
)

// Guard는 주문 전송 전에 명목 가치(가격 × 수량)를 검사합니다.
// 이 검사는 자문 성격이며, 최종 기준은 거래소의 자체 거부(-4164)입니다.
type Guard struct {
	exchange  exchange.Exchange
	threshold decimal.Decimal
}

// Result는 명목 가치 검사 결과를 표현합니다
type Result struct {
	Allowed   bool            // 주문 진행 허용 여부
	Estimate  decimal.Decimal // 추정 명목 가치 (Allowed=false일 때 의미 있음)
	Threshold decimal.Decimal // 적용된 최소 기준
	Warning   string          // fail-open으로 허용한 경우의 경고 문구
}

// New는 새로운 명목 가치 가드를 생성합니다
func New(ex exchange.Exchange, minNotional float64) *Guard {
	return &Guard{
		exchange:  ex,
		threshold: decimal.NewFromFloat(minNotional),
	}
}

// Check는 주문의 추정 명목 가치를 계산해 최소 기준과 비교합니다.
// 지정가가 없으면(시장가 주문) 마크 가격을 조회해 사용합니다.
//
// 마크 가격 조회에 실패하면 주문을 차단하지 않고 경고와 함께 허용합니다.
// 거래소가 최종적으로 거부할 수 있으므로 가격 조회 문제로
// 유효할 수도 있는 주문을 막지 않기 위한 의도된 동작입니다.
func (g *Guard) Check(ctx context.Context, symbol string, quantity float64, limitPrice decimal.Decimal, hasLimitPrice bool) Result {
	price := limitPrice

	if !hasLimitPrice {
		markPrice, err := g.exchange.GetMarkPrice(ctx, symbol)
		if err != nil {
			warning := fmt.Sprintf("명목 가치를 확인할 수 없어 검사를 건너뜁니다: %v", err)
			logger.Warnf("%s", warning)
			return Result{Allowed: true, Threshold: g.threshold, Warning: warning}
		}
		price = markPrice
	}

	estimate := price.Mul(decimal.NewFromFloat(quantity))

	if estimate.LessThan(g.threshold) {
		return Result{
			Allowed:   false,
			Estimate:  estimate,
			Threshold: g.threshold,
		}
	}

	return Result{Allowed: true, Estimate: estimate, Threshold: g.threshold}
}
