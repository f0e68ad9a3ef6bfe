package exchange

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/assist-by/aegis/internal/domain"
)

// Exchange는 거래소와의 상호작용을 위한 인터페이스입니다.
// HTTP 구현 대신 페이크 구현을 주입해 결정적으로 테스트할 수 있습니다.
type Exchange interface {
	// 시간 동기화
	GetServerTime(ctx context.Context) (time.Time, error)
	SetTimeOffset(offset int64)

	// 시장 데이터 조회
	GetMarkPrice(ctx context.Context, symbol string) (decimal.Decimal, error)

	// 계정 데이터 조회
	GetAccountInfo(ctx context.Context) (*domain.AccountInfo, error)

	// 거래 기능
	PlaceOrder(ctx context.Context, order domain.OrderRequest) (*domain.OrderResponse, error)
}
