package trader

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/assist-by/aegis/internal/domain"
	"github.com/assist-by/aegis/internal/exchange"
	"github.com/assist-by/aegis/internal/guard"
	"github.com/assist-by/aegis/internal/logger"
	"github.com/assist-by/aegis/internal/notification"
	"github.com/assist-by/aegis/internal/order"
)

// Trader는 한 번의 주문 시도 파이프라인을 담당합니다:
// 검증 → 명목 가치 검사 → 주문 생성 → 전송 → 결과 분류.
// 한 세션에서는 한 번에 하나의 시도만 실행됩니다.
type Trader struct {
	exchange exchange.Exchange
	guard    *guard.Guard
	notifier notification.Notifier // nil이면 알림 비활성화
}

// New는 새로운 트레이더를 생성합니다
func New(ex exchange.Exchange, g *guard.Guard, notifier notification.Notifier) *Trader {
	return &Trader{
		exchange: ex,
		guard:    g,
		notifier: notifier,
	}
}

// Submit은 거래 의도를 처리해 분류된 결과를 반환합니다.
// 원격 호출 실패도 데이터로 반환하며 프로세스를 중단시키지 않습니다.
// 사용자에게 어떻게 보여줄지는 호출자(CLI 종료 코드, UI 메시지)가 결정합니다.
func (t *Trader) Submit(ctx context.Context, intent domain.TradeIntent) domain.OrderOutcome {
	logger.WithFields(logrus.Fields{
		"symbol":   intent.Symbol,
		"side":     intent.Side,
		"type":     intent.Type,
		"quantity": intent.Quantity,
	}).Info("주문 시도 시작")

	// 1. 의도 검증 (네트워크 호출 전)
	if err := intent.Validate(); err != nil {
		outcome := domain.ValidationFailureOutcome(err.Error())
		t.finish(intent, outcome)
		return outcome
	}

	// 2. 명목 가치 검사 (시장가는 마크 가격 조회)
	limitPrice, hasLimitPrice := intent.LimitPrice()
	result := t.guard.Check(ctx, intent.Symbol, intent.Quantity, limitPrice, hasLimitPrice)
	if !result.Allowed {
		outcome := domain.GuardBlockedOutcome(result.Estimate, result.Threshold)
		t.finish(intent, outcome)
		return outcome
	}

	// 3. 와이어 주문 요청 생성
	req, err := order.Build(intent)
	if err != nil {
		outcome := domain.ValidationFailureOutcome(err.Error())
		t.finish(intent, outcome)
		return outcome
	}

	// 4. 서명된 요청 전송 (재시도 없음)
	resp, err := t.exchange.PlaceOrder(ctx, *req)

	// 5. 결과 분류
	outcome := order.Classify(resp, err)
	t.finish(intent, outcome)
	return outcome
}

// finish는 시도 결과를 로그와 알림으로 남깁니다.
// 알림 실패는 거래 흐름을 중단시키지 않고 기록만 합니다.
func (t *Trader) finish(intent domain.TradeIntent, outcome domain.OrderOutcome) {
	fields := logrus.Fields{
		"symbol":  intent.Symbol,
		"outcome": outcome.Kind.String(),
	}

	switch outcome.Kind {
	case domain.Accepted:
		fields["orderId"] = outcome.Order.OrderID
		fields["status"] = outcome.Order.Status
		logger.WithFields(fields).Info("주문이 접수되었습니다")
	case domain.RejectedByExchange:
		fields["code"] = outcome.Code
		logger.WithFields(fields).Errorf("거래소가 주문을 거부했습니다: %s", outcome.Message)
	case domain.GuardBlocked:
		logger.WithFields(fields).Warnf("명목 가치 미달로 주문을 전송하지 않았습니다: 추정 %s < 기준 %s",
			outcome.Estimate.StringFixed(2), outcome.Threshold.StringFixed(2))
	case domain.LocalValidationFailure:
		logger.WithFields(fields).Warnf("주문 검증 실패: %s", outcome.Description)
	default:
		logger.WithFields(fields).Errorf("주문 실패: %s", outcome.Description)
	}

	if t.notifier == nil {
		return
	}

	if err := t.notifier.SendOrderOutcome(intent, outcome); err != nil {
		logger.Errorf("주문 결과 알림 전송 실패: %v", err)
	}

	// 거래소 거부가 아닌 실패는 운영자가 조치해야 하므로 에러 채널로도 보냅니다
	switch outcome.Kind {
	case domain.TransportFailure, domain.UnclassifiedFailure:
		err := fmt.Errorf("%s 주문 실패 (%s): %s", intent.Symbol, outcome.Kind, outcome.Description)
		if sendErr := t.notifier.SendError(err); sendErr != nil {
			logger.Errorf("에러 알림 전송 실패: %v", sendErr)
		}
	}
}
