package domain

import (
	"github.com/shopspring/decimal"
)

// TradeIntent는 사용자가 입력한 거래 의도를 표현합니다.
// 주문 유형별 필수 필드가 모두 양수로 채워져 있어야 "완전한" 의도이며,
// 불완전한 의도는 기본값으로 채우지 않고 검증 에러로 처리합니다.
type TradeIntent struct {
	Symbol      string          // 심볼 (예: BTCUSDT)
	Side        OrderSide       // 매수/매도
	Type        OrderType       // 주문 유형 (MARKET, LIMIT, STOP_LIMIT)
	Quantity    float64         // 수량 (코인 기준)
	Price       decimal.Decimal // 지정가 (LIMIT/STOP_LIMIT 필수)
	StopPrice   decimal.Decimal // 스탑 가격 (STOP_LIMIT 필수)
	TimeInForce TimeInForce     // 주문 유효 기간 (LIMIT/STOP_LIMIT에서 의미 있음)
}

// Validate는 주문 유형별 필수 필드를 검증합니다.
// 네트워크 호출 전에 호출되며, 실패 시 *ValidationError를 반환합니다.
func (i TradeIntent) Validate() error {
	if i.Symbol == "" {
		return NewValidationError("symbol", "심볼이 비어 있습니다")
	}

	if !i.Side.IsValid() {
		return NewValidationError("side", "주문 방향은 BUY 또는 SELL이어야 합니다")
	}

	if !i.Type.IsValid() {
		return NewValidationError("type", "지원하지 않는 주문 유형입니다")
	}

	if i.Quantity <= 0 {
		return NewValidationError("quantity", "수량은 0보다 커야 합니다")
	}

	if i.Type.NeedsPrice() && !i.Price.IsPositive() {
		return NewValidationError("price", "지정가는 LIMIT/STOP_LIMIT 주문에서 0보다 커야 합니다")
	}

	if i.Type.NeedsStopPrice() && !i.StopPrice.IsPositive() {
		return NewValidationError("stopPrice", "스탑 가격은 STOP_LIMIT 주문에서 0보다 커야 합니다")
	}

	if i.Type.NeedsPrice() && !i.TimeInForce.IsValid() {
		return NewValidationError("timeInForce", "TIF는 GTC, IOC, FOK 중 하나여야 합니다")
	}

	return nil
}

// LimitPrice는 지정가가 설정된 경우 그 값을 반환합니다.
// MARKET 주문처럼 지정가가 없는 경우 두 번째 반환값이 false입니다.
func (i TradeIntent) LimitPrice() (decimal.Decimal, bool) {
	if i.Type.NeedsPrice() && i.Price.IsPositive() {
		return i.Price, true
	}
	return decimal.Decimal{}, false
}
