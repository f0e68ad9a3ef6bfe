package guard

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/assist-by/aegis/internal/domain"
)

// fakeExchange는 테스트용 거래소 구현입니다
type fakeExchange struct {
	markPrice decimal.Decimal
	markErr   error
	markCalls int
}

func (f *fakeExchange) GetServerTime(ctx context.Context) (time.Time, error) {
	return time.Now(), nil
}

func (f *fakeExchange) SetTimeOffset(offset int64) {}

func (f *fakeExchange) GetMarkPrice(ctx context.Context, symbol string) (decimal.Decimal, error) {
	f.markCalls++
	if f.markErr != nil {
		return decimal.Decimal{}, f.markErr
	}
	return f.markPrice, nil
}

func (f *fakeExchange) GetAccountInfo(ctx context.Context) (*domain.AccountInfo, error) {
	return nil, fmt.Errorf("테스트에서 지원하지 않음")
}

func (f *fakeExchange) PlaceOrder(ctx context.Context, order domain.OrderRequest) (*domain.OrderResponse, error) {
	return nil, fmt.Errorf("테스트에서 지원하지 않음")
}

func TestGuard_Check(t *testing.T) {
	ctx := context.Background()

	t.Run("지정가 기준 명목 가치가 기준 미달이면 차단", func(t *testing.T) {
		ex := &fakeExchange{}
		g := New(ex, 100)

		result := g.Check(ctx, "BTCUSDT", 1, decimal.NewFromInt(50), true)

		assert.False(t, result.Allowed)
		assert.Equal(t, "50", result.Estimate.String())
		assert.Equal(t, "100", result.Threshold.String())
		assert.Zero(t, ex.markCalls, "지정가가 있으면 마크 가격을 조회하지 않아야 함")
	})

	t.Run("명목 가치가 기준 이상이면 허용", func(t *testing.T) {
		ex := &fakeExchange{}
		g := New(ex, 100)

		result := g.Check(ctx, "BTCUSDT", 1, decimal.NewFromInt(200), true)

		assert.True(t, result.Allowed)
		assert.Empty(t, result.Warning)
	})

	t.Run("시장가 주문은 마크 가격으로 추정", func(t *testing.T) {
		ex := &fakeExchange{markPrice: decimal.RequireFromString("60000.5")}
		g := New(ex, 100)

		result := g.Check(ctx, "BTCUSDT", 0.001, decimal.Decimal{}, false)

		assert.False(t, result.Allowed)
		assert.Equal(t, 1, ex.markCalls)
		// 60000.5 × 0.001 = 60.0005 < 100
		assert.True(t, result.Estimate.LessThan(result.Threshold))
	})

	t.Run("마크 가격 조회 실패 시 경고와 함께 허용 (fail-open)", func(t *testing.T) {
		ex := &fakeExchange{markErr: fmt.Errorf("연결 시간 초과")}
		g := New(ex, 100)

		result := g.Check(ctx, "BTCUSDT", 0.001, decimal.Decimal{}, false)

		assert.True(t, result.Allowed, "가격 조회 실패는 주문을 차단하지 않아야 함")
		assert.NotEmpty(t, result.Warning)
	})

	t.Run("경계값: 추정치가 기준과 같으면 허용", func(t *testing.T) {
		ex := &fakeExchange{}
		g := New(ex, 100)

		result := g.Check(ctx, "BTCUSDT", 2, decimal.NewFromInt(50), true)

		assert.True(t, result.Allowed)
	})

	t.Run("설정된 기준값이 반영됨", func(t *testing.T) {
		ex := &fakeExchange{}
		g := New(ex, 10)

		result := g.Check(ctx, "BTCUSDT", 1, decimal.NewFromInt(50), true)

		assert.True(t, result.Allowed)
	})
}
