package order

import (
	"context"
	"errors"
	"net"

	"github.com/assist-by/aegis/internal/domain"
)

// MinNotionalGuidance는 최소 명목 가치 미달 거부(-4164)에 대한 안내 문구입니다.
// 이 시스템에서 가장 흔하게 만나는 거부 코드이므로 일반 메시지와 구분해 안내합니다.
const MinNotionalGuidance = "주문 가치(가격 × 수량)가 최소 기준에 미달했습니다. " +
	"수량을 늘리거나 더 저렴한 심볼을 선택한 뒤 다시 시도하세요."

// Classify는 어댑터 호출 결과를 구조화된 주문 결과로 분류합니다.
//
// 분류 규칙:
//   - 주문 ID와 상태가 있는 응답 → Accepted
//   - 숫자 에러 코드를 가진 거래소 에러 → RejectedByExchange (코드/메시지 원문 보존)
//   - 전송/연결 계층 실패 → TransportFailure
//   - 그 외 → UnclassifiedFailure (원본 에러 설명 보존)
func Classify(resp *domain.OrderResponse, err error) domain.OrderOutcome {
	if err == nil {
		if resp != nil && resp.OrderID != 0 && resp.Status != "" {
			return domain.AcceptedOutcome(resp)
		}
		return domain.UnclassifiedOutcome("주문 ID가 없는 응답을 받았습니다")
	}

	var apiErr *domain.APIError
	if errors.As(err, &apiErr) {
		guidance := ""
		if apiErr.Code == domain.ErrCodeMinNotional {
			guidance = MinNotionalGuidance
		}
		return domain.RejectedOutcome(apiErr.Code, apiErr.Message, guidance)
	}

	if isTransportError(err) {
		return domain.TransportFailureOutcome(err.Error())
	}

	return domain.UnclassifiedOutcome(err.Error())
}

// isTransportError는 구조화된 거래소 응답 없이 실패한
// 네트워크/연결 계층 에러인지 판별합니다
func isTransportError(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}

	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
