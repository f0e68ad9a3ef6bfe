package discord

import (
	"fmt"
	"time"

	"github.com/assist-by/aegis/internal/domain"
	"github.com/assist-by/aegis/internal/notification"
)

// SendInfo는 일반 정보 알림을 전송합니다
func (c *Client) SendInfo(message string) error {
	embed := NewEmbed().
		SetDescription(message).
		SetColor(notification.ColorInfo).
		SetFooter("Assist by Aegis 🛡️").
		SetTimestamp(time.Now())

	msg := WebhookMessage{
		Embeds: []Embed{*embed},
	}

	return c.sendToWebhook(c.infoWebhook, msg)
}

// SendError는 에러 알림을 전송합니다
func (c *Client) SendError(err error) error {
	embed := NewEmbed().
		SetTitle("에러 발생").
		SetDescription(fmt.Sprintf("```%v```", err)).
		SetColor(notification.ColorError).
		SetFooter("Assist by Aegis 🛡️").
		SetTimestamp(time.Now())

	msg := WebhookMessage{
		Embeds: []Embed{*embed},
	}

	return c.sendToWebhook(c.errorWebhook, msg)
}

// SendOrderOutcome은 주문 시도와 그 분류 결과를 전송합니다
func (c *Client) SendOrderOutcome(intent domain.TradeIntent, outcome domain.OrderOutcome) error {
	embed := NewEmbed().
		SetTitle(fmt.Sprintf("주문 시도: %s", intent.Symbol)).
		SetColor(notification.GetColorForOutcome(outcome.Kind)).
		SetFooter("Assist by Aegis 🛡️").
		SetTimestamp(time.Now()).
		AddField("방향", string(intent.Side), true).
		AddField("유형", string(intent.Type), true).
		AddField("수량", fmt.Sprintf("%.8f", intent.Quantity), true).
		AddField("결과", outcome.Kind.String(), false)

	switch outcome.Kind {
	case domain.Accepted:
		embed.AddField("주문 ID", fmt.Sprintf("%d", outcome.Order.OrderID), true).
			AddField("상태", outcome.Order.Status, true)

	case domain.RejectedByExchange:
		embed.AddField("거부 코드", fmt.Sprintf("%d", outcome.Code), true).
			AddField("메시지", outcome.Message, false)
		if outcome.Guidance != "" {
			embed.AddField("안내", outcome.Guidance, false)
		}

	case domain.GuardBlocked:
		embed.AddField("추정 명목 가치", outcome.Estimate.StringFixed(2)+" USDT", true).
			AddField("최소 기준", outcome.Threshold.StringFixed(2)+" USDT", true)

	default:
		embed.AddField("설명", outcome.Description, false)
	}

	msg := WebhookMessage{
		Embeds: []Embed{*embed},
	}

	return c.sendToWebhook(c.tradeWebhook, msg)
}
