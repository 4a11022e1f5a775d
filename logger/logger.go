package logger

import (
	"fmt"
	"io"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/jonboulle/clockwork"
	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/pkg/errors"
	"github.com/rifflock/lfshook"
	"github.com/sirupsen/logrus"
)

const DefaultTimeFormat = "2006-01-02 15:04:05.000"

var logger = logrus.New()

type Configuration struct {
	Level         logrus.Level
	TimeFormat    string
	LogPath       string
	EnableFileLog bool
	// Clock drives file rotation, the real clock when nil
	Clock clockwork.Clock
}

// Configure replaces the level, formatters and hooks of the package logger.
func Configure(config *Configuration) error {
	logger.SetLevel(config.Level)

	timeFormat := config.TimeFormat
	if timeFormat == "" {
		timeFormat = DefaultTimeFormat
	}

	logger.SetFormatter(&logrus.TextFormatter{
		TimestampFormat: timeFormat,
		FullTimestamp:   true,
	})
	logger.ReplaceHooks(make(logrus.LevelHooks))

	if config.EnableFileLog {
		clock := config.Clock
		if clock == nil {
			clock = clockwork.NewRealClock()
		}
		writerMap := lfshook.WriterMap{}
		for _, level := range []logrus.Level{logrus.InfoLevel, logrus.WarnLevel, logrus.ErrorLevel, logrus.DebugLevel} {
			writer, err := setupWriter(config.LogPath, level.String(), clock)
			if err != nil {
				return err
			}
			writerMap[level] = writer
		}
		// files get no color codes
		fileFormatter := &logrus.TextFormatter{
			TimestampFormat: timeFormat,
			FullTimestamp:   true,
			DisableColors:   true,
		}
		logger.AddHook(lfshook.NewHook(writerMap, fileFormatter))
	}

	logger.SetOutput(os.Stderr)
	return nil
}

// SetOutput redirects console output.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

func setupWriter(logPath string, level string, clock clockwork.Clock) (*rotatelogs.RotateLogs, error) {
	logFullPath := path.Join(logPath, level)
	writer, err := rotatelogs.New(
		logFullPath+".%Y%m%d.log",
		rotatelogs.WithClock(clock),
		rotatelogs.WithMaxAge(7*24*time.Hour),
		rotatelogs.WithRotationTime(24*time.Hour),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "log writer for %s", logFullPath)
	}
	return writer, nil
}

func appendGoroutineID(msg string) string {
	return fmt.Sprintf("[g: %v] %s", runtime.NumGoroutine(), msg)
}

func InfoF(format string, args ...interface{}) {
	logger.Infof(appendGoroutineID(format), args...)
}

func DebugF(format string, args ...interface{}) {
	logger.Debugf(appendGoroutineID(format), args...)
}

func WarnF(format string, args ...interface{}) {
	logger.Warnf(appendGoroutineID(format), args...)
}

func ErrorF(format string, args ...interface{}) {
	logger.Errorf(appendGoroutineID(format), args...)
}

func IsEnabledDebug() bool {
	return logger.IsLevelEnabled(logrus.DebugLevel)
}
