package utils

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	InfoLogger  *logrus.Logger
	ErrorLogger *logrus.Logger
)

func InitLogger() {
	InfoLogger = logrus.New()
	ErrorLogger = logrus.New()

	InfoLogger.SetOutput(os.Stdout)
	InfoLogger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	ErrorLogger.SetOutput(os.Stderr)
	ErrorLogger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	InfoLogger.SetLevel(logrus.InfoLevel)
	ErrorLogger.SetLevel(logrus.ErrorLevel)
}

// ConfigureLogger sets the info level and, when file is not empty, tees both
// loggers into a size-rotated log file.
func ConfigureLogger(level, file string) error {
	if InfoLogger == nil || ErrorLogger == nil {
		InitLogger()
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	InfoLogger.SetLevel(lvl)

	if file != "" {
		rotator := &lumberjack.Logger{
			Filename:   file,
			MaxSize:    32, // megabytes
			MaxBackups: 2,
			MaxAge:     28, // days
			Compress:   true,
		}
		InfoLogger.SetOutput(io.MultiWriter(os.Stdout, rotator))
		ErrorLogger.SetOutput(io.MultiWriter(os.Stderr, rotator))
	}
	return nil
}
