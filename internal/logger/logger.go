package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger는 전역 로거 인스턴스입니다.
// Init을 한 번 호출한 뒤 패키지 함수로 사용합니다.
var Logger *logrus.Logger

// Config는 로그 설정을 정의합니다
type Config struct {
	Level      string // 로그 레벨: debug, info, warn, error
	Console    bool   // 표준 출력에도 기록할지 여부 (TUI 모드에서는 꺼야 함)
	File       string // 로그 파일 경로 (비어 있으면 파일 기록 없음)
	MaxSizeMB  int    // 로그 파일 최대 크기 (MB)
	MaxBackups int    // 보관할 이전 로그 파일 수
	MaxAgeDays int    // 이전 로그 파일 보관 일수
}

// Init은 로그 시스템을 초기화합니다.
// Console이 켜져 있으면 표준 출력에, File이 설정되어 있으면
// 회전 로그 파일에 기록합니다. 둘 다 꺼져 있으면 기록하지 않습니다.
func Init(cfg Config) error {
	l := logrus.New()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	var writers []io.Writer

	if cfg.Console {
		writers = append(writers, os.Stdout)
	}

	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			return err
		}

		writers = append(writers, &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
		})
	}

	if len(writers) == 0 {
		l.SetOutput(io.Discard)
	} else {
		l.SetOutput(io.MultiWriter(writers...))
	}

	Logger = l
	return nil
}

// Infof는 INFO 레벨 로그를 기록합니다
func Infof(format string, args ...interface{}) {
	if Logger != nil {
		Logger.Infof(format, args...)
	}
}

// Warnf는 WARN 레벨 로그를 기록합니다
func Warnf(format string, args ...interface{}) {
	if Logger != nil {
		Logger.Warnf(format, args...)
	}
}

// Errorf는 ERROR 레벨 로그를 기록합니다
func Errorf(format string, args ...interface{}) {
	if Logger != nil {
		Logger.Errorf(format, args...)
	}
}

// WithFields는 구조화된 필드를 가진 로그 엔트리를 반환합니다
func WithFields(fields logrus.Fields) *logrus.Entry {
	if Logger != nil {
		return Logger.WithFields(fields)
	}
	return logrus.NewEntry(logrus.New())
}
