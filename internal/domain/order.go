package domain

import "time"

// OrderRequest는 거래소로 전송할 준비가 된 주문 요청을 표현합니다.
// 가격과 스탑 가격은 부동소수점 반올림 오차를 피하기 위해
// 와이어 경계에서 정확한 십진수 문자열로 전송됩니다.
type OrderRequest struct {
	Symbol        string      // 심볼 (예: BTCUSDT)
	Side          OrderSide   // 매수/매도
	Type          OrderType   // 주문 유형
	Quantity      float64     // 수량 (숫자로 전송)
	Price         string      // 지정가 (LIMIT/STOP_LIMIT, 십진수 문자열)
	StopPrice     string      // 스탑 가격 (STOP_LIMIT, 십진수 문자열)
	TimeInForce   TimeInForce // 주문 유효 기간 (LIMIT/STOP_LIMIT)
	WorkingType   WorkingType // 스탑 트리거 기준 가격 (STOP_LIMIT)
	ClientOrderID string      // 클라이언트 측 주문 ID
}

// OrderResponse는 거래소의 주문 응답 스냅샷을 표현합니다
type OrderResponse struct {
	OrderID          int64     // 주문 ID
	Symbol           string    // 심볼
	Status           string    // 주문 상태 (예: NEW)
	ClientOrderID    string    // 클라이언트 측 주문 ID
	Price            float64   // 주문 가격
	AvgPrice         float64   // 평균 체결 가격
	OrigQuantity     float64   // 원래 주문 수량
	ExecutedQuantity float64   // 체결된 수량
	Side             OrderSide // 매수/매도
	Type             OrderType // 주문 유형
	UpdateTime       time.Time // 주문 갱신 시간
}
