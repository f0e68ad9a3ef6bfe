package domain

// OrderSide는 주문 방향을 정의합니다
type OrderSide string

const (
	Buy  OrderSide = "BUY"
	Sell OrderSide = "SELL"
)

// IsValid는 주문 방향이 유효한 값인지 확인합니다
func (s OrderSide) IsValid() bool {
	return s == Buy || s == Sell
}

// OrderType은 주문 유형을 정의합니다
// StopLimit은 바이낸스 선물 와이어 타입 "STOP"(지정가 스탑)으로 전송됩니다
type OrderType string

const (
	Market    OrderType = "MARKET"
	Limit     OrderType = "LIMIT"
	StopLimit OrderType = "STOP"
)

// IsValid는 주문 유형이 유효한 값인지 확인합니다
func (t OrderType) IsValid() bool {
	return t == Market || t == Limit || t == StopLimit
}

// NeedsPrice는 지정가가 필요한 주문 유형인지 반환합니다
func (t OrderType) NeedsPrice() bool {
	return t == Limit || t == StopLimit
}

// NeedsStopPrice는 스탑 가격이 필요한 주문 유형인지 반환합니다
func (t OrderType) NeedsStopPrice() bool {
	return t == StopLimit
}

// TimeInForce는 주문 유효 기간 정책을 정의합니다
type TimeInForce string

const (
	GTC TimeInForce = "GTC" // Good Till Cancel
	IOC TimeInForce = "IOC" // Immediate Or Cancel
	FOK TimeInForce = "FOK" // Fill Or Kill
)

// IsValid는 TIF 값이 유효한지 확인합니다
func (t TimeInForce) IsValid() bool {
	return t == GTC || t == IOC || t == FOK
}

// WorkingType은 스탑 조건이 평가되는 기준 가격 종류를 정의합니다
type WorkingType string

const (
	// MarkPriceTrigger는 마크 가격을 트리거 기준으로 사용합니다.
	// 바이낸스는 여러 기준 가격을 지원하므로 기본값에 의존하지 않고 항상 명시합니다.
	MarkPriceTrigger WorkingType = "MARK_PRICE"
)

// ErrorCode는 바이낸스 API 에러 코드를 정의합니다
const (
	ErrCodeMinNotional = -4164 // 주문 명목 가치가 최소 기준 미달
)
