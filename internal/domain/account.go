package domain

// Balance는 계정 잔고 정보를 표현합니다
type Balance struct {
	Asset            string  // 자산 심볼 (예: USDT, BTC)
	WalletBalance    float64 // 지갑 잔고
	Available        float64 // 사용 가능한 잔고
	UnrealizedProfit float64 // 미실현 손익
}

// PositionSnapshot은 계정 조회 시점의 포지션 스냅샷입니다.
// 조회 용도로만 사용하며 로컬에서 포지션을 추적하지 않습니다.
type PositionSnapshot struct {
	Symbol           string  // 심볼 (예: BTCUSDT)
	Quantity         float64 // 포지션 수량 (양수: 롱, 음수: 숏)
	EntryPrice       float64 // 평균 진입가
	UnrealizedProfit float64 // 미실현 손익
}

// AccountInfo는 선물 계정 정보를 표현합니다
type AccountInfo struct {
	Balances              map[string]Balance // 자산별 잔고
	Positions             []PositionSnapshot // 수량이 0이 아닌 포지션
	CanTrade              bool               // 거래 가능 여부
	TotalMarginBalance    float64            // 총 마진 잔고
	TotalUnrealizedProfit float64            // 총 미실현 손익
}
