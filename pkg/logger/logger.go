package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// Logger printf-style логгер поверх logrus, пишет в stdout и (опционально) в файл
type Logger struct {
	log  *logrus.Logger
	file *os.File
}

// New создает логгер. filePath может быть пустым - тогда только stdout
func New(filePath, level string) (*Logger, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, err
	}

	l := logrus.New()
	l.SetLevel(lvl)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
	})

	var file *os.File
	if filePath != "" {
		if dir := filepath.Dir(filePath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("logger: create log dir: %w", err)
			}
		}
		file, err = os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("logger: open log file: %w", err)
		}
		l.SetOutput(io.MultiWriter(os.Stdout, file))
	} else {
		l.SetOutput(os.Stdout)
	}

	return &Logger{log: l, file: file}, nil
}

// NewWithWriter логгер поверх произвольного writer без временных меток (CLI, тесты)
func NewWithWriter(w io.Writer, level string) (*Logger, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, err
	}
	l := logrus.New()
	l.SetLevel(lvl)
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})
	return &Logger{log: l}, nil
}

func parseLevel(level string) (logrus.Level, error) {
	if level == "" {
		return logrus.InfoLevel, nil
	}
	lvl, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		return 0, fmt.Errorf("logger: invalid level %q: %w", level, err)
	}
	return lvl, nil
}

func (l *Logger) Debug(format string, v ...interface{}) {
	l.log.Debugf(format, v...)
}

func (l *Logger) Info(format string, v ...interface{}) {
	l.log.Infof(format, v...)
}

func (l *Logger) Warn(format string, v ...interface{}) {
	l.log.Warnf(format, v...)
}

func (l *Logger) Error(format string, v ...interface{}) {
	l.log.Errorf(format, v...)
}

// Fatal логирует и завершает процесс
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.log.Fatalf(format, v...)
}

// Close закрывает файл логов, если он был открыт
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
