package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func init() {
	log.SetOutput(os.Stdout)
	Configure(os.Getenv("ENVIRONMENT"))
}

// Configure switches between the human readable development output and
// JSON lines for everything else.
func Configure(environment string) {
	if environment == "" || environment == "development" {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		log.SetLevel(logrus.DebugLevel)
		return
	}
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

func Logger() *logrus.Logger {
	return log
}

func Info(format string, v ...interface{}) {
	log.Infof(format, v...)
}

func Error(format string, v ...interface{}) {
	log.Errorf(format, v...)
}

func Debug(format string, v ...interface{}) {
	log.Debugf(format, v...)
}

func Warn(format string, v ...interface{}) {
	log.Warnf(format, v...)
}

func Fatal(format string, v ...interface{}) {
	log.Fatalf(format, v...)
}

func WithFields(fields logrus.Fields) *logrus.Entry {
	return log.WithFields(fields)
}

func WithError(err error) *logrus.Entry {
	return log.WithError(err)
}
