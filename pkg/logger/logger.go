package logger

import (
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/sirupsen/logrus"
)

// Log является глобальным экземпляром логгера для всего приложения.
var Log = logrus.New()

// Options - настройки логгера из окружения.
type Options struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"text"`
}

// Init инициализирует глобальный логгер.
// Вызывается один раз при старте приложения в main.go (и в TestMain).
func Init() {
	var opts Options
	if err := env.Parse(&opts); err != nil {
		opts = Options{Level: "info", Format: "text"}
	}
	Configure(opts)
}

// Configure применяет настройки к глобальному логгеру.
func Configure(opts Options) {
	Log = logrus.New()

	// 1. Уровень логирования. По умолчанию - "info", для отладки - "debug".
	level, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	// 2. Форматтер.
	// "json" - для продакшена и сбора логов.
	// "text" - для удобной разработки.
	if strings.ToLower(opts.Format) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	// 3. Пишем в стандартный вывод.
	Log.SetOutput(os.Stdout)
}
