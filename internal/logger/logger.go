package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New 建立root logger
// debug/development 環境使用console輸出, 其餘輸出json
// extra 額外的輸出目標, 例如 KafkaLogWriter
func New(env string, level string, extra ...io.Writer) *zerolog.Logger {
	var w io.Writer = os.Stdout
	if env == "debug" || env == "development" {
		w = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}
	if len(extra) > 0 {
		w = zerolog.MultiLevelWriter(append([]io.Writer{w}, extra...)...)
	}

	lv, err := zerolog.ParseLevel(level)
	if err != nil || lv == zerolog.NoLevel {
		lv = zerolog.InfoLevel
	}

	zerolog.TimeFieldFormat = time.RFC3339
	l := zerolog.New(w).Level(lv).With().Timestamp().Logger()
	return &l
}

// Nop 測試用
func Nop() *zerolog.Logger {
	l := zerolog.Nop()
	return &l
}
