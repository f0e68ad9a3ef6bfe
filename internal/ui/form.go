package ui

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/assist-by/aegis/internal/domain"
	"github.com/assist-by/aegis/internal/exchange"
	"github.com/assist-by/aegis/internal/trader"
)

// 폼 필드 인덱스
const (
	fieldSymbol = iota
	fieldSide
	fieldType
	fieldQuantity
	fieldPrice
	fieldStop
	fieldTIF
	fieldSubmit
	fieldCount
)

var (
	// 스타일 정의
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Width(14)

	focusedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("2"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("1"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("3"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

var (
	sideOptions = []domain.OrderSide{domain.Buy, domain.Sell}
	typeOptions = []domain.OrderType{domain.Market, domain.Limit, domain.StopLimit}
	typeLabels  = []string{"MARKET", "LIMIT", "STOP_LIMIT"}
	tifOptions  = []domain.TimeInForce{domain.GTC, domain.IOC, domain.FOK}
)

// outcomeMsg는 주문 파이프라인 실행 결과를 전달합니다
type outcomeMsg struct {
	outcome domain.OrderOutcome
}

// accountMsg는 계정 조회 결과를 전달합니다
type accountMsg struct {
	info *domain.AccountInfo
	err  error
}

// Model은 주문 입력 폼의 bubbletea 모델입니다
type Model struct {
	trader   *trader.Trader
	exchange exchange.Exchange

	focus      int
	symbol     string
	sideIdx    int
	typeIdx    int
	quantity   string
	price      string
	stop       string
	tifIdx     int
	submitting bool

	formErr string
	outcome *domain.OrderOutcome
	account *domain.AccountInfo
	acctErr error
}

// NewModel은 새로운 주문 폼 모델을 생성합니다
func NewModel(t *trader.Trader, ex exchange.Exchange) Model {
	return Model{
		trader:   t,
		exchange: ex,
		symbol:   "BTCUSDT",
	}
}

// Init은 bubbletea 초기화 커맨드를 반환합니다
func (m Model) Init() tea.Cmd {
	return nil
}

// orderType은 현재 선택된 주문 유형을 반환합니다
func (m Model) orderType() domain.OrderType {
	return typeOptions[m.typeIdx]
}

// fieldVisible은 현재 주문 유형에서 해당 필드가 보이는지 반환합니다
func (m Model) fieldVisible(field int) bool {
	switch field {
	case fieldPrice:
		return m.orderType().NeedsPrice()
	case fieldStop:
		return m.orderType().NeedsStopPrice()
	case fieldTIF:
		return m.orderType().NeedsPrice()
	default:
		return true
	}
}

// nextField는 보이는 필드 기준으로 포커스를 이동합니다
func (m Model) nextField(delta int) int {
	focus := m.focus
	for {
		focus = (focus + delta + fieldCount) % fieldCount
		if m.fieldVisible(focus) {
			return focus
		}
	}
}

// Update는 입력 이벤트를 처리합니다
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case outcomeMsg:
		m.submitting = false
		outcome := msg.outcome
		m.outcome = &outcome
		return m, nil

	case accountMsg:
		m.account = msg.info
		m.acctErr = msg.err
		return m, nil
	}

	return m, nil
}

// handleKey는 키 입력을 처리합니다
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit

	case "tab", "down":
		m.focus = m.nextField(1)
		return m, nil

	case "shift+tab", "up":
		m.focus = m.nextField(-1)
		return m, nil

	case "left", "right":
		delta := 1
		if msg.String() == "left" {
			delta = -1
		}
		switch m.focus {
		case fieldSide:
			m.sideIdx = (m.sideIdx + delta + len(sideOptions)) % len(sideOptions)
		case fieldType:
			m.typeIdx = (m.typeIdx + delta + len(typeOptions)) % len(typeOptions)
			m.outcome = nil
		case fieldTIF:
			m.tifIdx = (m.tifIdx + delta + len(tifOptions)) % len(tifOptions)
		}
		return m, nil

	case "f2":
		return m, m.loadAccountCmd()

	case "enter":
		if m.focus != fieldSubmit {
			m.focus = m.nextField(1)
			return m, nil
		}
		if m.submitting {
			return m, nil
		}
		intent, err := m.buildIntent()
		if err != nil {
			m.formErr = err.Error()
			return m, nil
		}
		m.formErr = ""
		m.outcome = nil
		m.submitting = true
		return m, m.submitCmd(intent)

	case "backspace":
		m.editField(trimLastRune)
		return m, nil

	default:
		if len(msg.Runes) == 1 {
			r := msg.Runes[0]
			m.editField(func(s string) string {
				return s + string(r)
			})
		}
		return m, nil
	}
}

// trimLastRune은 마지막 룬 하나를 제거합니다 (멀티바이트 입력 안전)
func trimLastRune(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeLastRuneInString(s)
	return s[:len(s)-size]
}

// editField는 포커스된 텍스트 필드를 수정합니다
func (m *Model) editField(edit func(string) string) {
	switch m.focus {
	case fieldSymbol:
		m.symbol = strings.ToUpper(edit(m.symbol))
	case fieldQuantity:
		m.quantity = edit(m.quantity)
	case fieldPrice:
		m.price = edit(m.price)
	case fieldStop:
		m.stop = edit(m.stop)
	}
}

// buildIntent는 폼 입력을 거래 의도로 변환합니다.
// 빌더와 동일한 완전성 규칙을 화면단에서도 검사해 조기 피드백을 줍니다.
func (m Model) buildIntent() (domain.TradeIntent, error) {
	if m.symbol == "" {
		return domain.TradeIntent{}, fmt.Errorf("심볼을 입력하세요")
	}

	intent := domain.TradeIntent{
		Symbol:      m.symbol,
		Side:        sideOptions[m.sideIdx],
		Type:        m.orderType(),
		TimeInForce: tifOptions[m.tifIdx],
	}

	qty, err := decimal.NewFromString(m.quantity)
	if err != nil || !qty.IsPositive() {
		return domain.TradeIntent{}, fmt.Errorf("수량은 0보다 큰 숫자여야 합니다")
	}
	intent.Quantity, _ = qty.Float64()

	if intent.Type.NeedsPrice() {
		p, err := decimal.NewFromString(m.price)
		if err != nil || !p.IsPositive() {
			return domain.TradeIntent{}, fmt.Errorf("지정가는 0보다 큰 숫자여야 합니다")
		}
		intent.Price = p
	}

	if intent.Type.NeedsStopPrice() {
		sp, err := decimal.NewFromString(m.stop)
		if err != nil || !sp.IsPositive() {
			return domain.TradeIntent{}, fmt.Errorf("스탑 가격은 0보다 큰 숫자여야 합니다")
		}
		intent.StopPrice = sp
	}

	return intent, nil
}

// submitCmd는 주문 파이프라인을 UI 고루틴 밖에서 실행합니다
func (m Model) submitCmd(intent domain.TradeIntent) tea.Cmd {
	t := m.trader
	return func() tea.Msg {
		return outcomeMsg{outcome: t.Submit(context.Background(), intent)}
	}
}

// loadAccountCmd는 계정 잔고를 조회합니다
func (m Model) loadAccountCmd() tea.Cmd {
	ex := m.exchange
	return func() tea.Msg {
		info, err := ex.GetAccountInfo(context.Background())
		return accountMsg{info: info, err: err}
	}
}

// View는 폼 화면을 렌더링합니다
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("바이낸스 선물 주문 패널"))
	b.WriteString("\n\n")

	if m.account != nil || m.acctErr != nil {
		b.WriteString(m.renderAccount())
		b.WriteString("\n")
	}

	b.WriteString(m.renderField(fieldSymbol, "심볼", m.symbol))
	b.WriteString(m.renderField(fieldSide, "방향", string(sideOptions[m.sideIdx])))
	b.WriteString(m.renderField(fieldType, "주문 유형", typeLabels[m.typeIdx]))
	b.WriteString(m.renderField(fieldQuantity, "수량", m.quantity))

	if m.fieldVisible(fieldPrice) {
		b.WriteString(m.renderField(fieldPrice, "지정가", m.price))
	}
	if m.fieldVisible(fieldStop) {
		b.WriteString(m.renderField(fieldStop, "스탑 가격", m.stop))
	}
	if m.fieldVisible(fieldTIF) {
		b.WriteString(m.renderField(fieldTIF, "TIF", string(tifOptions[m.tifIdx])))
	}

	b.WriteString("\n")
	submitLabel := "[ 주문 전송 ]"
	if m.submitting {
		submitLabel = "[ 전송 중... ]"
	}
	if m.focus == fieldSubmit {
		b.WriteString(focusedStyle.Render(submitLabel))
	} else {
		b.WriteString(submitLabel)
	}
	b.WriteString("\n")

	if m.formErr != "" {
		b.WriteString(errorStyle.Render("입력 오류: " + m.formErr))
		b.WriteString("\n")
	}

	if m.outcome != nil {
		b.WriteString("\n")
		b.WriteString(boxStyle.Render(m.renderOutcome(*m.outcome)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab/↑↓ 필드 이동 · ←→ 값 변경 · enter 전송 · F2 계정 조회 · esc 종료"))
	b.WriteString("\n")

	return b.String()
}

// renderField는 폼 필드 한 줄을 렌더링합니다
func (m Model) renderField(field int, label, value string) string {
	cursor := "  "
	rendered := value
	if m.focus == field {
		cursor = focusedStyle.Render("> ")
		rendered = focusedStyle.Render(value + "▌")
	}
	return fmt.Sprintf("%s%s%s\n", cursor, labelStyle.Render(label), rendered)
}

// renderAccount는 계정 잔고 카드를 렌더링합니다
func (m Model) renderAccount() string {
	if m.acctErr != nil {
		return boxStyle.Render(errorStyle.Render(fmt.Sprintf("계정 조회 실패: %v", m.acctErr)))
	}

	var lines []string
	if usdt, ok := m.account.Balances["USDT"]; ok {
		lines = append(lines,
			fmt.Sprintf("USDT 지갑 잔고: %.4f", usdt.WalletBalance),
			fmt.Sprintf("USDT 사용 가능: %.4f", usdt.Available))
	} else {
		lines = append(lines, "USDT 잔고가 없습니다")
	}
	return boxStyle.Render(strings.Join(lines, "\n"))
}

// renderOutcome은 주문 결과 패널을 렌더링합니다
func (m Model) renderOutcome(outcome domain.OrderOutcome) string {
	switch outcome.Kind {
	case domain.Accepted:
		o := outcome.Order
		return successStyle.Render("주문이 접수되었습니다") + "\n" +
			fmt.Sprintf("주문 ID: %d · 상태: %s\n", o.OrderID, o.Status) +
			fmt.Sprintf("%s %s %s · 수량 %.8f", o.Symbol, o.Side, o.Type, o.OrigQuantity)

	case domain.RejectedByExchange:
		s := errorStyle.Render("거래소가 주문을 거부했습니다") + "\n" +
			fmt.Sprintf("코드 %d: %s", outcome.Code, outcome.Message)
		if outcome.Guidance != "" {
			s += "\n" + warnStyle.Render(outcome.Guidance)
		}
		return s

	case domain.GuardBlocked:
		return warnStyle.Render("명목 가치 미달로 전송하지 않았습니다") + "\n" +
			fmt.Sprintf("추정 %s USDT < 기준 %s USDT",
				outcome.Estimate.StringFixed(2), outcome.Threshold.StringFixed(2))

	case domain.LocalValidationFailure:
		return errorStyle.Render("주문 검증 실패") + "\n" + outcome.Description

	case domain.TransportFailure:
		return errorStyle.Render("네트워크 에러") + "\n" + outcome.Description

	default:
		return errorStyle.Render("예상하지 못한 에러") + "\n" + outcome.Description
	}
}
