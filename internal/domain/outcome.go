package domain

import "github.com/shopspring/decimal"

// OutcomeKind는 주문 시도 결과의 분류를 정의합니다
type OutcomeKind int

const (
	Accepted               OutcomeKind = iota // 거래소가 주문을 접수함
	RejectedByExchange                        // 거래소가 구조화된 에러 코드로 거부함
	TransportFailure                          // 네트워크/전송 계층 실패
	GuardBlocked                              // 로컬 명목 가치 검사에서 차단됨
	LocalValidationFailure                    // 필수 필드 누락/잘못됨 (네트워크 호출 전)
	UnclassifiedFailure                       // 그 외 분류 불가능한 실패
)

// String은 OutcomeKind의 문자열 표현을 반환합니다
func (k OutcomeKind) String() string {
	switch k {
	case Accepted:
		return "Accepted"
	case RejectedByExchange:
		return "RejectedByExchange"
	case TransportFailure:
		return "TransportFailure"
	case GuardBlocked:
		return "GuardBlocked"
	case LocalValidationFailure:
		return "LocalValidationFailure"
	case UnclassifiedFailure:
		return "UnclassifiedFailure"
	default:
		return "Unknown"
	}
}

// OrderOutcome은 한 번의 주문 시도 결과를 표현합니다.
// 시도마다 새로 생성되며 생성 후 변경되지 않습니다.
type OrderOutcome struct {
	Kind OutcomeKind

	// Accepted인 경우 채워지는 주문 스냅샷
	Order *OrderResponse

	// RejectedByExchange인 경우의 에러 코드와 메시지 (원문 그대로 보존)
	Code    int
	Message string

	// 알려진 거부 코드에 대한 안내 문구 (예: 최소 명목 가치 미달)
	Guidance string

	// GuardBlocked인 경우의 추정 명목 가치와 기준값
	Estimate  decimal.Decimal
	Threshold decimal.Decimal

	// TransportFailure/LocalValidationFailure/UnclassifiedFailure의 설명
	Description string
}

// IsSuccess는 주문이 거래소에 접수되었는지 반환합니다
func (o OrderOutcome) IsSuccess() bool {
	return o.Kind == Accepted
}

// AcceptedOutcome은 접수된 주문에 대한 결과를 생성합니다
func AcceptedOutcome(order *OrderResponse) OrderOutcome {
	return OrderOutcome{Kind: Accepted, Order: order}
}

// RejectedOutcome은 거래소 거부에 대한 결과를 생성합니다
func RejectedOutcome(code int, message, guidance string) OrderOutcome {
	return OrderOutcome{
		Kind:     RejectedByExchange,
		Code:     code,
		Message:  message,
		Guidance: guidance,
	}
}

// TransportFailureOutcome은 전송 계층 실패에 대한 결과를 생성합니다
func TransportFailureOutcome(description string) OrderOutcome {
	return OrderOutcome{Kind: TransportFailure, Description: description}
}

// GuardBlockedOutcome은 명목 가치 검사 차단에 대한 결과를 생성합니다
func GuardBlockedOutcome(estimate, threshold decimal.Decimal) OrderOutcome {
	return OrderOutcome{Kind: GuardBlocked, Estimate: estimate, Threshold: threshold}
}

// ValidationFailureOutcome은 로컬 검증 실패에 대한 결과를 생성합니다
func ValidationFailureOutcome(description string) OrderOutcome {
	return OrderOutcome{Kind: LocalValidationFailure, Description: description}
}

// UnclassifiedOutcome은 분류할 수 없는 실패에 대한 결과를 생성합니다
func UnclassifiedOutcome(description string) OrderOutcome {
	return OrderOutcome{Kind: UnclassifiedFailure, Description: description}
}
