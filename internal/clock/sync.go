package clock

import (
	"context"
	"time"

	"github.com/assist-by/aegis/internal/exchange"
	"github.com/assist-by/aegis/internal/logger"
)

// Synchronizer는 거래소 서버와 로컬 시계의 오프셋을 계산합니다.
// 세션 시작 시 한 번 실행하고, 결과를 어댑터에 저장해
// 이후의 모든 서명 요청 타임스탬프에 반영되도록 합니다.
type Synchronizer struct {
	now func() time.Time
}

// Option은 동기화 생성 옵션을 정의합니다
type Option func(*Synchronizer)

// WithNowFunc은 현재 시간을 읽는 함수를 교체합니다 (테스트용)
func WithNowFunc(now func() time.Time) Option {
	return func(s *Synchronizer) {
		s.now = now
	}
}

// NewSynchronizer는 새로운 시계 동기화기를 생성합니다
func NewSynchronizer(opts ...Option) *Synchronizer {
	s := &Synchronizer{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Sync는 서버 시간을 한 번 조회해 오프셋(서버 - 로컬, 밀리초)을 계산하고
// 어댑터에 저장합니다. 실패해도 호출자에게 에러를 전파하지 않습니다:
// 동기화 실패는 서명 정확도만 떨어뜨릴 뿐이며 거래소가 잘못된 서명을
// 명시적으로 거부하므로, 경고만 남기고 기존 오프셋을 유지합니다.
// 반환값은 계산된 오프셋과 동기화 성공 여부입니다.
func (s *Synchronizer) Sync(ctx context.Context, ex exchange.Exchange) (int64, bool) {
	serverTime, err := ex.GetServerTime(ctx)
	if err != nil {
		logger.Warnf("서버 시간 동기화 실패, 기존 오프셋을 유지합니다: %v", err)
		return 0, false
	}

	offset := serverTime.UnixMilli() - s.now().UnixMilli()
	ex.SetTimeOffset(offset)

	logger.Infof("서버 시간 동기화 완료: 오프셋 %dms", offset)
	return offset, true
}
