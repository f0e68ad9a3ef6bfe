package clock

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/assist-by/aegis/internal/domain"
)

type fakeExchange struct {
	serverTime time.Time
	serverErr  error
	offset     int64
	offsetSet  bool
}

func (f *fakeExchange) GetServerTime(ctx context.Context) (time.Time, error) {
	if f.serverErr != nil {
		return time.Time{}, f.serverErr
	}
	return f.serverTime, nil
}

func (f *fakeExchange) SetTimeOffset(offset int64) {
	f.offset = offset
	f.offsetSet = true
}

func (f *fakeExchange) GetMarkPrice(ctx context.Context, symbol string) (decimal.Decimal, error) {
	return decimal.Decimal{}, fmt.Errorf("테스트에서 지원하지 않음")
}

func (f *fakeExchange) GetAccountInfo(ctx context.Context) (*domain.AccountInfo, error) {
	return nil, fmt.Errorf("테스트에서 지원하지 않음")
}

func (f *fakeExchange) PlaceOrder(ctx context.Context, order domain.OrderRequest) (*domain.OrderResponse, error) {
	return nil, fmt.Errorf("테스트에서 지원하지 않음")
}

func TestSynchronizer_Sync(t *testing.T) {
	t.Run("오프셋은 서버 시간 - 로컬 시간", func(t *testing.T) {
		local := time.UnixMilli(900)
		ex := &fakeExchange{serverTime: time.UnixMilli(1000)}

		s := NewSynchronizer(WithNowFunc(func() time.Time { return local }))
		offset, ok := s.Sync(context.Background(), ex)

		if !ok {
			t.Fatal("동기화가 실패로 보고됨")
		}
		if offset != 100 {
			t.Errorf("offset = %d, want 100", offset)
		}
		if !ex.offsetSet || ex.offset != 100 {
			t.Errorf("어댑터에 저장된 오프셋 = %d (set=%v), want 100", ex.offset, ex.offsetSet)
		}
	})

	t.Run("서버가 뒤처진 경우 음수 오프셋", func(t *testing.T) {
		local := time.UnixMilli(2000)
		ex := &fakeExchange{serverTime: time.UnixMilli(1500)}

		s := NewSynchronizer(WithNowFunc(func() time.Time { return local }))
		offset, ok := s.Sync(context.Background(), ex)

		if !ok || offset != -500 {
			t.Errorf("offset = %d (ok=%v), want -500", offset, ok)
		}
	})

	t.Run("조회 실패 시 오프셋을 건드리지 않음", func(t *testing.T) {
		ex := &fakeExchange{serverErr: fmt.Errorf("연결 시간 초과")}

		s := NewSynchronizer()
		offset, ok := s.Sync(context.Background(), ex)

		if ok {
			t.Error("실패한 동기화가 성공으로 보고됨")
		}
		if offset != 0 {
			t.Errorf("offset = %d, want 0", offset)
		}
		if ex.offsetSet {
			t.Error("실패 시 어댑터 오프셋이 변경됨")
		}
	})
}
