package order

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/assist-by/aegis/internal/domain"
)

func TestBuild(t *testing.T) {
	tests := []struct {
		name      string
		intent    domain.TradeIntent
		wantErr   bool
		wantField string
		check     func(t *testing.T, req *domain.OrderRequest)
	}{
		{
			name: "시장가 주문은 가격 필드를 포함하지 않음",
			intent: domain.TradeIntent{
				Symbol:   "BTCUSDT",
				Side:     domain.Buy,
				Type:     domain.Market,
				Quantity: 0.01,
				// 시장가에서는 무시되어야 하는 잉여 필드
				Price:     decimal.NewFromInt(50000),
				StopPrice: decimal.NewFromInt(49000),
			},
			check: func(t *testing.T, req *domain.OrderRequest) {
				if req.Price != "" {
					t.Errorf("시장가 주문에 가격이 포함됨: %q", req.Price)
				}
				if req.StopPrice != "" {
					t.Errorf("시장가 주문에 스탑 가격이 포함됨: %q", req.StopPrice)
				}
				if req.TimeInForce != "" {
					t.Errorf("시장가 주문에 TIF가 포함됨: %q", req.TimeInForce)
				}
			},
		},
		{
			name: "지정가 주문은 정확한 십진수 문자열을 유지함",
			intent: domain.TradeIntent{
				Symbol:      "BTCUSDT",
				Side:        domain.Sell,
				Type:        domain.Limit,
				Quantity:    0.5,
				Price:       decimal.RequireFromString("25000.5"),
				TimeInForce: domain.GTC,
			},
			check: func(t *testing.T, req *domain.OrderRequest) {
				if req.Price != "25000.5" {
					t.Errorf("Price = %q, want %q", req.Price, "25000.5")
				}
				if req.TimeInForce != domain.GTC {
					t.Errorf("TimeInForce = %q, want GTC", req.TimeInForce)
				}
			},
		},
		{
			name: "스탑 지정가 주문은 마크 가격 트리거를 명시함",
			intent: domain.TradeIntent{
				Symbol:      "ETHUSDT",
				Side:        domain.Buy,
				Type:        domain.StopLimit,
				Quantity:    1,
				Price:       decimal.RequireFromString("3000.25"),
				StopPrice:   decimal.RequireFromString("2990.1"),
				TimeInForce: domain.IOC,
			},
			check: func(t *testing.T, req *domain.OrderRequest) {
				if req.Price != "3000.25" {
					t.Errorf("Price = %q, want %q", req.Price, "3000.25")
				}
				if req.StopPrice != "2990.1" {
					t.Errorf("StopPrice = %q, want %q", req.StopPrice, "2990.1")
				}
				if req.WorkingType != domain.MarkPriceTrigger {
					t.Errorf("WorkingType = %q, want MARK_PRICE", req.WorkingType)
				}
			},
		},
		{
			name: "지정가 주문에 가격이 없으면 검증 실패",
			intent: domain.TradeIntent{
				Symbol:      "BTCUSDT",
				Side:        domain.Buy,
				Type:        domain.Limit,
				Quantity:    0.01,
				TimeInForce: domain.GTC,
			},
			wantErr:   true,
			wantField: "price",
		},
		{
			name: "스탑 지정가 주문에 스탑 가격이 없으면 검증 실패",
			intent: domain.TradeIntent{
				Symbol:      "BTCUSDT",
				Side:        domain.Buy,
				Type:        domain.StopLimit,
				Quantity:    0.01,
				Price:       decimal.NewFromInt(50000),
				TimeInForce: domain.GTC,
			},
			wantErr:   true,
			wantField: "stopPrice",
		},
		{
			name: "수량이 0 이하면 검증 실패",
			intent: domain.TradeIntent{
				Symbol:   "BTCUSDT",
				Side:     domain.Buy,
				Type:     domain.Market,
				Quantity: 0,
			},
			wantErr:   true,
			wantField: "quantity",
		},
		{
			name: "심볼이 비어 있으면 검증 실패",
			intent: domain.TradeIntent{
				Side:     domain.Buy,
				Type:     domain.Market,
				Quantity: 1,
			},
			wantErr:   true,
			wantField: "symbol",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := Build(tt.intent)

			if tt.wantErr {
				if err == nil {
					t.Fatal("에러를 기대했지만 nil을 받음")
				}
				var vErr *domain.ValidationError
				if !errors.As(err, &vErr) {
					t.Fatalf("ValidationError를 기대했지만 %T를 받음", err)
				}
				if vErr.Field != tt.wantField {
					t.Errorf("Field = %q, want %q", vErr.Field, tt.wantField)
				}
				return
			}

			if err != nil {
				t.Fatalf("Build() error = %v", err)
			}

			// 공통 필드 확인
			if req.Symbol != tt.intent.Symbol {
				t.Errorf("Symbol = %q, want %q", req.Symbol, tt.intent.Symbol)
			}
			if req.Side != tt.intent.Side {
				t.Errorf("Side = %q, want %q", req.Side, tt.intent.Side)
			}
			if req.Quantity != tt.intent.Quantity {
				t.Errorf("Quantity = %v, want %v", req.Quantity, tt.intent.Quantity)
			}
			if req.ClientOrderID == "" || len(req.ClientOrderID) > 36 {
				t.Errorf("ClientOrderID 길이가 잘못됨: %q", req.ClientOrderID)
			}

			if tt.check != nil {
				tt.check(t, req)
			}
		})
	}
}
