package logger

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// captureStdout은 fn 실행 동안 표준 출력에 쓰인 내용을 돌려줍니다
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("파이프 생성 실패: %v", err)
	}

	orig := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	fn()

	w.Close()
	captured, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("표준 출력 읽기 실패: %v", err)
	}
	return string(captured)
}

func TestInit(t *testing.T) {
	t.Run("콘솔이 꺼져 있으면 표준 출력에 기록하지 않음", func(t *testing.T) {
		logFile := filepath.Join(t.TempDir(), "bot.log")

		captured := captureStdout(t, func() {
			if err := Init(Config{
				Level:      "info",
				Console:    false,
				File:       logFile,
				MaxSizeMB:  1,
				MaxBackups: 1,
			}); err != nil {
				t.Fatalf("Init() error = %v", err)
			}
			Infof("주문 시도 시작")
		})

		if captured != "" {
			t.Errorf("콘솔이 꺼진 상태에서 표준 출력에 기록됨: %q", captured)
		}

		content, err := os.ReadFile(logFile)
		if err != nil {
			t.Fatalf("로그 파일 읽기 실패: %v", err)
		}
		if !strings.Contains(string(content), "주문 시도 시작") {
			t.Errorf("로그 파일에 메시지가 없음: %q", string(content))
		}
	})

	t.Run("콘솔이 켜져 있으면 표준 출력에 기록", func(t *testing.T) {
		captured := captureStdout(t, func() {
			if err := Init(Config{Level: "info", Console: true}); err != nil {
				t.Fatalf("Init() error = %v", err)
			}
			Infof("메인넷 모드")
		})

		if !strings.Contains(captured, "메인넷 모드") {
			t.Errorf("표준 출력에 메시지가 없음: %q", captured)
		}
	})

	t.Run("출력 대상이 없어도 기록 호출이 안전함", func(t *testing.T) {
		if err := Init(Config{Level: "info"}); err != nil {
			t.Fatalf("Init() error = %v", err)
		}
		Infof("버려지는 메시지")
	})

	t.Run("잘못된 레벨은 info로 대체", func(t *testing.T) {
		if err := Init(Config{Level: "loud", Console: true}); err != nil {
			t.Fatalf("Init() error = %v", err)
		}
		if Logger.GetLevel().String() != "info" {
			t.Errorf("레벨 = %s, want info", Logger.GetLevel())
		}
	})
}
