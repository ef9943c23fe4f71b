package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

type Config struct {
	FileLevel      logrus.Level
	ConsoleLevel   logrus.Level
	FileDir        string
	DisableConsole bool
}

var (
	globalConfig = Config{
		FileLevel:      logrus.DebugLevel,
		ConsoleLevel:   logrus.InfoLevel,
		FileDir:        "logs",
		DisableConsole: false,
	}

	defaultLogger     *logrus.Logger
	defaultLoggerOnce sync.Once
)

func SetDefaultConfig(config *Config) {
	globalConfig = *config
}

func GenerateTestConfig(t testingT) *Config {
	return &Config{
		FileLevel:      logrus.DebugLevel,
		ConsoleLevel:   logrus.DebugLevel,
		FileDir:        t.TempDir(),
		DisableConsole: false,
	}
}

// testingT is the part of *testing.T we need; keeps logging importable from
// non-test code without the testing package leaking in.
type testingT interface {
	TempDir() string
}

/*
NewLogger builds a logger writing to a per-day file under FileDir at
FileLevel, and (unless disabled) to stderr via a level-filtered hook at
ConsoleLevel. If the file cannot be opened the logger falls back to stderr
only.
*/
func NewLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(globalConfig.FileLevel)

	file, err := openLogFile(globalConfig.FileDir)
	if err != nil {
		logger.SetOutput(os.Stderr)
		logger.Warnf("open log file fail, fallback to stderr: %v", err)
		return logger
	}

	logger.SetOutput(file)

	if !globalConfig.DisableConsole {
		logger.AddHook(&consoleHook{
			writer: os.Stderr,
			level:  globalConfig.ConsoleLevel,
		})
	}

	return logger
}

/*
Default returns a process-wide shared logger, built lazily from the config
active at first use.
*/
func Default() *logrus.Logger {
	defaultLoggerOnce.Do(func() {
		defaultLogger = NewLogger()
	})
	return defaultLogger
}

func openLogFile(dir string) (io.Writer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	name := fmt.Sprintf("%s.log", time.Now().Format("2006-01-02"))
	return os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

type consoleHook struct {
	writer io.Writer
	level  logrus.Level
}

func (h *consoleHook) Levels() []logrus.Level {
	ret := make([]logrus.Level, 0, len(logrus.AllLevels))
	for _, level := range logrus.AllLevels {
		if level <= h.level {
			ret = append(ret, level)
		}
	}
	return ret
}

func (h *consoleHook) Fire(entry *logrus.Entry) error {
	line, err := entry.Bytes()
	if err != nil {
		return err
	}

	_, err = h.writer.Write(line)
	return err
}
