package logger

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

func New(logLevel string) *logrus.Logger {
	log := logrus.New()

	// Временные метки в UTC: журнал переходов тревог читается как единая
	// временная шкала независимо от зоны хоста.
	log.SetFormatter(&utcFormatter{&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339Nano,
	}})

	log.SetOutput(os.Stdout)

	// Уровень логирования
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel // Уровень по умолчанию, если передан некорректный
	}
	log.SetLevel(level)
	return log
}

type utcFormatter struct {
	inner logrus.Formatter
}

func (f *utcFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	entry.Time = entry.Time.UTC()
	return f.inner.Format(entry)
}
