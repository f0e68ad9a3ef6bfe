package ui

import (
	"testing"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
)

func TestTrimLastRune(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"빈 문자열은 그대로", "", ""},
		{"ASCII는 한 글자 제거", "BTCUSDT", "BTCUSDT"[:6]},
		{"멀티바이트 글자도 통째로 제거", "BTC원", "BTC"},
		{"멀티바이트만 있는 입력", "원화", "원"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := trimLastRune(tt.input)
			if got != tt.want {
				t.Errorf("trimLastRune(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("결과가 유효한 UTF-8이 아님: %q", got)
			}
		})
	}
}

func TestModel_Backspace(t *testing.T) {
	m := NewModel(nil, nil)
	m.symbol = "BTC원"

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	got := updated.(Model).symbol

	if got != "BTC" {
		t.Errorf("symbol = %q, want %q", got, "BTC")
	}
	if !utf8.ValidString(got) {
		t.Errorf("백스페이스 후 심볼이 유효한 UTF-8이 아님: %q", got)
	}
}
