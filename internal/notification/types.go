package notification

import "github.com/assist-by/aegis/internal/domain"

const (
	ColorSuccess = 0x00FF00 // 녹색
	ColorError   = 0xFF0000 // 빨간색
	ColorInfo    = 0x0099FF // 파란색
	ColorWarning = 0xFFA500 // 주황색
)

// Notifier는 알림 전송 인터페이스를 정의합니다.
// 알림 실패는 거래 흐름을 중단시키지 않아야 하므로
// 호출자는 에러를 기록만 하고 계속 진행합니다.
type Notifier interface {
	// SendInfo는 일반 정보 알림을 전송합니다
	SendInfo(message string) error

	// SendError는 에러 알림을 전송합니다
	SendError(err error) error

	// SendOrderOutcome은 주문 시도와 그 결과를 전송합니다
	SendOrderOutcome(intent domain.TradeIntent, outcome domain.OrderOutcome) error
}

// GetColorForOutcome은 결과 분류에 따른 색상을 반환합니다
func GetColorForOutcome(kind domain.OutcomeKind) int {
	switch kind {
	case domain.Accepted:
		return ColorSuccess
	case domain.RejectedByExchange, domain.TransportFailure, domain.UnclassifiedFailure:
		return ColorError
	case domain.GuardBlocked, domain.LocalValidationFailure:
		return ColorWarning
	default:
		return ColorInfo
	}
}
