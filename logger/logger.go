package logger

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// InitLogger configures the global JSON logger. Output is discarded in
// test mode to keep test output clean.
func InitLogger(testMode string) {
	if testMode == "test" {
		logrus.SetOutput(io.Discard)
	}
	logrus.SetLevel(logrus.InfoLevel)
	jsonFormatter := logrus.JSONFormatter{
		TimestampFormat: time.RFC3339Nano,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyMsg:   "message",
			logrus.FieldKeyLevel: "level",
		},
	}
	logrus.SetFormatter(&jsonFormatter)
}
