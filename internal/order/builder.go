package order

import (
	"github.com/google/uuid"

	"github.com/assist-by/aegis/internal/domain"
)

// Build는 완전한 TradeIntent를 와이어 주문 요청으로 변환합니다.
// 주문 유형별 필수 필드를 먼저 검증하며, 실패 시 네트워크 호출 없이
// *domain.ValidationError를 반환합니다.
//
// 구성 규칙:
//   - MARKET: 심볼/방향/유형/수량만 전송
//   - LIMIT: 지정가(십진수 문자열)와 TIF 추가
//   - STOP_LIMIT: 지정가/스탑 가격(십진수 문자열), TIF,
//     그리고 마크 가격 트리거 기준을 명시적으로 추가
func Build(intent domain.TradeIntent) (*domain.OrderRequest, error) {
	if err := intent.Validate(); err != nil {
		return nil, err
	}

	req := &domain.OrderRequest{
		Symbol:        intent.Symbol,
		Side:          intent.Side,
		Type:          intent.Type,
		Quantity:      intent.Quantity,
		ClientOrderID: newClientOrderID(),
	}

	switch intent.Type {
	case domain.Market:
		// 시장가는 추가 필드가 없습니다

	case domain.Limit:
		req.Price = intent.Price.String()
		req.TimeInForce = intent.TimeInForce

	case domain.StopLimit:
		req.Price = intent.Price.String()
		req.StopPrice = intent.StopPrice.String()
		req.TimeInForce = intent.TimeInForce
		req.WorkingType = domain.MarkPriceTrigger
	}

	return req, nil
}

// newClientOrderID는 주문 추적용 클라이언트 주문 ID를 생성합니다.
// 바이낸스의 newClientOrderId 길이 제한(36자) 안에 들어갑니다.
func newClientOrderID() string {
	return uuid.NewString()
}
