package order

import (
	"fmt"
	"net"
	"syscall"
	"testing"
	"time"

	"github.com/assist-by/aegis/internal/domain"
)

func TestClassify(t *testing.T) {
	acceptedResp := &domain.OrderResponse{
		OrderID:      123,
		Symbol:       "BTCUSDT",
		Status:       "NEW",
		Side:         domain.Buy,
		Type:         domain.Limit,
		OrigQuantity: 0.002,
		UpdateTime:   time.Now(),
	}

	tests := []struct {
		name         string
		resp         *domain.OrderResponse
		err          error
		wantKind     domain.OutcomeKind
		wantCode     int
		wantGuidance bool
	}{
		{
			name:     "주문 ID와 상태가 있으면 Accepted",
			resp:     acceptedResp,
			wantKind: domain.Accepted,
		},
		{
			name:         "최소 명목 가치 미달 코드는 안내 문구와 함께 Rejected",
			err:          &domain.APIError{Code: -4164, Message: "Order's notional must be no smaller than 100"},
			wantKind:     domain.RejectedByExchange,
			wantCode:     -4164,
			wantGuidance: true,
		},
		{
			name:     "일반 거래소 거부는 안내 문구 없이 Rejected",
			err:      &domain.APIError{Code: -1121, Message: "Invalid symbol."},
			wantKind: domain.RejectedByExchange,
			wantCode: -1121,
		},
		{
			name: "감싸진 거래소 에러도 코드가 보존됨",
			err: fmt.Errorf("주문 실행 실패: %w",
				&domain.APIError{Code: -2019, Message: "Margin is insufficient."}),
			wantKind: domain.RejectedByExchange,
			wantCode: -2019,
		},
		{
			name: "연결 거부는 TransportFailure",
			err: fmt.Errorf("API 요청 실패: %w", &net.OpError{
				Op:  "dial",
				Net: "tcp",
				Err: syscall.ECONNREFUSED,
			}),
			wantKind: domain.TransportFailure,
		},
		{
			name:     "분류할 수 없는 에러는 UnclassifiedFailure",
			err:      fmt.Errorf("주문 응답 파싱 실패"),
			wantKind: domain.UnclassifiedFailure,
		},
		{
			name:     "응답과 에러가 모두 없으면 UnclassifiedFailure",
			wantKind: domain.UnclassifiedFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := Classify(tt.resp, tt.err)

			if outcome.Kind != tt.wantKind {
				t.Fatalf("Kind = %v, want %v", outcome.Kind, tt.wantKind)
			}

			if tt.wantKind == domain.RejectedByExchange {
				if outcome.Code != tt.wantCode {
					t.Errorf("Code = %d, want %d", outcome.Code, tt.wantCode)
				}
				if outcome.Message == "" {
					t.Error("거부 메시지가 비어 있음")
				}
				if tt.wantGuidance && outcome.Guidance != MinNotionalGuidance {
					t.Errorf("Guidance = %q, want 최소 명목 가치 안내 문구", outcome.Guidance)
				}
				if !tt.wantGuidance && outcome.Guidance != "" {
					t.Errorf("일반 거부에 안내 문구가 포함됨: %q", outcome.Guidance)
				}
			}

			if tt.wantKind == domain.Accepted {
				if outcome.Order == nil || outcome.Order.OrderID != 123 {
					t.Errorf("Order 스냅샷이 보존되지 않음: %+v", outcome.Order)
				}
			}

			if tt.wantKind == domain.TransportFailure && outcome.Description == "" {
				t.Error("전송 실패 설명이 비어 있음")
			}
		})
	}
}
