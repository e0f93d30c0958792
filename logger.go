package codegen

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SetupLogger 按运行模式初始化全局日志
// dev模式输出控制台格式并放开debug级别,其余模式输出JSON只保留info以上
func SetupLogger(mode string) {
	zerolog.TimeFieldFormat = time.DateTime

	if mode != "dev" {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.InfoLevel)
		return
	}

	console := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.DateTime,
	}
	console.FormatTimestamp = func(i interface{}) string {
		return fmt.Sprintf("[%s]", i)
	}
	console.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}

	log.Logger = zerolog.New(console).With().Timestamp().Logger().Level(zerolog.DebugLevel)
}
