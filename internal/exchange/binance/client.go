package binance

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/assist-by/aegis/internal/domain"
)

// Client는 바이낸스 선물 API 클라이언트를 구현합니다
type Client struct {
	apiKey           string
	secretKey        string
	baseURL          string
	recvWindow       string
	httpClient       *http.Client
	serverTimeOffset int64 // 서버 시간과의 차이 (밀리초)
	mu               sync.RWMutex
}

// ClientOption은 클라이언트 생성 옵션을 정의합니다
type ClientOption func(*Client)

// WithTimeout은 HTTP 클라이언트의 타임아웃을 설정합니다
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithBaseURL은 기본 URL을 설정합니다
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithTestnet은 테스트넷 사용 여부를 설정합니다
func WithTestnet(useTestnet bool) ClientOption {
	return func(c *Client) {
		if useTestnet {
			c.baseURL = "https://testnet.binancefuture.com"
		} else {
			c.baseURL = "https://fapi.binance.com"
		}
	}
}

// WithRecvWindow는 서명 요청의 수신 허용 시간(밀리초)을 설정합니다.
// 동기화 후 남은 미세한 시계 오차로 요청이 거부되지 않도록 하는 여유값입니다.
func WithRecvWindow(ms int) ClientOption {
	return func(c *Client) {
		c.recvWindow = strconv.Itoa(ms)
	}
}

// NewClient는 새로운 바이낸스 API 클라이언트를 생성합니다.
// 자격 증명과 네트워크 대상은 생성 시점에 원자적으로 결정되며,
// 키나 시크릿이 비어 있으면 에러를 반환합니다.
func NewClient(apiKey, secretKey string, opts ...ClientOption) (*Client, error) {
	if apiKey == "" || secretKey == "" {
		return nil, fmt.Errorf("API 키와 시크릿 키는 비어 있을 수 없습니다")
	}

	c := &Client{
		apiKey:     apiKey,
		secretKey:  secretKey,
		baseURL:    "https://fapi.binance.com", // 기본값은 메인넷 선물 거래소
		recvWindow: "5000",
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}

	// 옵션 적용
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// doRequest는 HTTP 요청을 실행하고 결과를 반환합니다.
// 거래소가 구조화된 에러 본문을 반환하면 *domain.APIError로 감싸서 반환합니다.
func (c *Client) doRequest(ctx context.Context, method, endpoint string, params url.Values, needSign bool) ([]byte, error) {
	if params == nil {
		params = url.Values{}
	}

	// URL 생성
	reqURL, err := url.Parse(c.baseURL + endpoint)
	if err != nil {
		return nil, fmt.Errorf("URL 파싱 실패: %w", err)
	}

	// 타임스탬프 추가 (시계 오프셋 보정 포함)
	if needSign {
		timestamp := strconv.FormatInt(c.adjustedTime(), 10)
		params.Set("timestamp", timestamp)
		params.Set("recvWindow", c.recvWindow)
	}

	// 파라미터 설정
	reqURL.RawQuery = params.Encode()

	// 서명 추가
	if needSign {
		signature := c.sign(params.Encode())
		reqURL.RawQuery = reqURL.RawQuery + "&signature=" + signature
	}

	// 요청 생성
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("요청 생성 실패: %w", err)
	}

	// 헤더 설정
	req.Header.Set("Content-Type", "application/json")
	if needSign {
		req.Header.Set("X-MBX-APIKEY", c.apiKey)
	}

	// 요청 실행
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("API 요청 실패: %w", err)
	}
	defer resp.Body.Close()

	// 응답 읽기
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("응답 읽기 실패: %w", err)
	}

	// 상태 코드 확인
	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Code    int    `json:"code"`
			Message string `json:"msg"`
		}
		if err := json.Unmarshal(body, &apiErr); err != nil || apiErr.Code == 0 {
			return nil, fmt.Errorf("HTTP 에러(%d): %s", resp.StatusCode, string(body))
		}
		return nil, &domain.APIError{Code: apiErr.Code, Message: apiErr.Message}
	}

	return body, nil
}

// sign은 요청에 대한 HMAC-SHA256 서명을 생성합니다
func (c *Client) sign(payload string) string {
	h := hmac.New(sha256.New, []byte(c.secretKey))
	h.Write([]byte(payload))
	return hex.EncodeToString(h.Sum(nil))
}

// adjustedTime은 오프셋이 보정된 현재 시간을 밀리초로 반환합니다
func (c *Client) adjustedTime() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return time.Now().UnixMilli() + c.serverTimeOffset
}

// SetTimeOffset은 서버 시간과의 오프셋(밀리초)을 설정합니다.
// 이후의 모든 서명 요청 타임스탬프에 적용됩니다.
func (c *Client) SetTimeOffset(offset int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.serverTimeOffset = offset
}

// TimeOffset은 현재 설정된 서버 시간 오프셋을 반환합니다
func (c *Client) TimeOffset() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.serverTimeOffset
}

// GetServerTime은 거래소 서버 시간을 조회합니다
func (c *Client) GetServerTime(ctx context.Context) (time.Time, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/fapi/v1/time", nil, false)
	if err != nil {
		return time.Time{}, err
	}

	var result struct {
		ServerTime int64 `json:"serverTime"`
	}
	if err := json.Unmarshal(resp, &result); err != nil {
		return time.Time{}, fmt.Errorf("서버 시간 파싱 실패: %w", err)
	}

	return time.UnixMilli(result.ServerTime), nil
}

// GetMarkPrice는 심볼의 현재 마크 가격을 조회합니다
func (c *Client) GetMarkPrice(ctx context.Context, symbol string) (decimal.Decimal, error) {
	params := url.Values{}
	params.Add("symbol", symbol)

	resp, err := c.doRequest(ctx, http.MethodGet, "/fapi/v1/premiumIndex", params, false)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("마크 가격 조회 실패: %w", err)
	}

	var result struct {
		Symbol    string `json:"symbol"`
		MarkPrice string `json:"markPrice"`
	}
	if err := json.Unmarshal(resp, &result); err != nil {
		return decimal.Decimal{}, fmt.Errorf("마크 가격 파싱 실패: %w", err)
	}

	markPrice, err := decimal.NewFromString(result.MarkPrice)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("마크 가격 변환 실패: %w", err)
	}

	return markPrice, nil
}

// GetAccountInfo는 선물 계정의 잔고와 포지션 스냅샷을 조회합니다
func (c *Client) GetAccountInfo(ctx context.Context) (*domain.AccountInfo, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/fapi/v2/account", nil, true)
	if err != nil {
		return nil, fmt.Errorf("계정 조회 실패: %w", err)
	}

	var result struct {
		CanTrade              bool    `json:"canTrade"`
		TotalMarginBalance    float64 `json:"totalMarginBalance,string"`
		TotalUnrealizedProfit float64 `json:"totalUnrealizedProfit,string"`
		Assets                []struct {
			Asset            string  `json:"asset"`
			WalletBalance    float64 `json:"walletBalance,string"`
			AvailableBalance float64 `json:"availableBalance,string"`
			UnrealizedProfit float64 `json:"unrealizedProfit,string"`
		} `json:"assets"`
		Positions []struct {
			Symbol           string  `json:"symbol"`
			PositionAmt      float64 `json:"positionAmt,string"`
			EntryPrice       float64 `json:"entryPrice,string"`
			UnrealizedProfit float64 `json:"unrealizedProfit,string"`
		} `json:"positions"`
	}

	if err := json.Unmarshal(resp, &result); err != nil {
		return nil, fmt.Errorf("계정 응답 파싱 실패: %w", err)
	}

	info := &domain.AccountInfo{
		Balances:              make(map[string]domain.Balance),
		CanTrade:              result.CanTrade,
		TotalMarginBalance:    result.TotalMarginBalance,
		TotalUnrealizedProfit: result.TotalUnrealizedProfit,
	}

	// 잔고가 있는 자산만 포함
	for _, asset := range result.Assets {
		if asset.WalletBalance > 0 {
			info.Balances[asset.Asset] = domain.Balance{
				Asset:            asset.Asset,
				WalletBalance:    asset.WalletBalance,
				Available:        asset.AvailableBalance,
				UnrealizedProfit: asset.UnrealizedProfit,
			}
		}
	}

	// 수량이 0이 아닌 포지션만 포함
	for _, p := range result.Positions {
		if p.PositionAmt != 0 {
			info.Positions = append(info.Positions, domain.PositionSnapshot{
				Symbol:           p.Symbol,
				Quantity:         p.PositionAmt,
				EntryPrice:       p.EntryPrice,
				UnrealizedProfit: p.UnrealizedProfit,
			})
		}
	}

	return info, nil
}

// PlaceOrder는 새로운 주문을 생성합니다.
// 내부에서 재시도하지 않으며, 한 번의 호출은 한 번의 전송입니다.
func (c *Client) PlaceOrder(ctx context.Context, order domain.OrderRequest) (*domain.OrderResponse, error) {
	params := url.Values{}
	params.Add("symbol", order.Symbol)
	params.Add("side", string(order.Side))
	params.Add("type", string(order.Type))
	params.Add("quantity", strconv.FormatFloat(order.Quantity, 'f', -1, 64))

	switch order.Type {
	case domain.Market:
		// 시장가는 심볼/방향/유형/수량만 전송합니다

	case domain.Limit:
		params.Add("timeInForce", string(order.TimeInForce))
		params.Add("price", order.Price)

	case domain.StopLimit:
		params.Add("timeInForce", string(order.TimeInForce))
		params.Add("price", order.Price)
		params.Add("stopPrice", order.StopPrice)
		params.Add("workingType", string(order.WorkingType))
	}

	// 클라이언트 주문 ID가 설정되었으면 추가
	if order.ClientOrderID != "" {
		params.Add("newClientOrderId", order.ClientOrderID)
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/fapi/v1/order", params, true)
	if err != nil {
		return nil, err
	}

	var result struct {
		OrderID       int64  `json:"orderId"`
		Symbol        string `json:"symbol"`
		Status        string `json:"status"`
		ClientOrderID string `json:"clientOrderId"`
		Price         string `json:"price"`
		AvgPrice      string `json:"avgPrice"`
		OrigQty       string `json:"origQty"`
		ExecutedQty   string `json:"executedQty"`
		Side          string `json:"side"`
		Type          string `json:"type"`
		UpdateTime    int64  `json:"updateTime"`
	}

	if err := json.Unmarshal(resp, &result); err != nil {
		return nil, fmt.Errorf("주문 응답 파싱 실패: %w", err)
	}

	// 문자열을 숫자로 변환
	price, _ := strconv.ParseFloat(result.Price, 64)
	avgPrice, _ := strconv.ParseFloat(result.AvgPrice, 64)
	origQuantity, _ := strconv.ParseFloat(result.OrigQty, 64)
	executedQuantity, _ := strconv.ParseFloat(result.ExecutedQty, 64)

	return &domain.OrderResponse{
		OrderID:          result.OrderID,
		Symbol:           result.Symbol,
		Status:           result.Status,
		ClientOrderID:    result.ClientOrderID,
		Price:            price,
		AvgPrice:         avgPrice,
		OrigQuantity:     origQuantity,
		ExecutedQuantity: executedQuantity,
		Side:             domain.OrderSide(result.Side),
		Type:             domain.OrderType(result.Type),
		UpdateTime:       time.UnixMilli(result.UpdateTime),
	}, nil
}
