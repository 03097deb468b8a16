package logutils

import "github.com/sirupsen/logrus"

var Log = logrus.New()

func InitLogger(level string) {
	parsedLevel, err := logrus.ParseLevel(level)
	if err != nil {
		Log.Warnf("Invalid log level '%s', defaulting to 'info'", level)
		parsedLevel = logrus.InfoLevel
	}
	Log.SetLevel(parsedLevel)
	Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}
