package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

type LogLevel int

type Logger struct {
	logLevel LogLevel
	logDir   string
	logger   *log.Logger
}

const (
	DEBUG LogLevel = iota
	INFO
	ERROR
)

func (l LogLevel) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel reads a level name such as "debug" or "ERROR".
func ParseLevel(s string) (LogLevel, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return DEBUG, nil
	case "INFO":
		return INFO, nil
	case "ERROR":
		return ERROR, nil
	}
	return ERROR, fmt.Errorf("unknown log level: %s", s)
}

var (
	registryMu sync.RWMutex
	registry   = map[string]*Logger{}

	discard = &Logger{logLevel: ERROR + 1, logger: log.New(io.Discard, "", 0)}
)

// Get returns the logger registered under name, or a logger that drops
// everything when there is none.
func Get(name string) *Logger {
	registryMu.RLock()
	defer registryMu.RUnlock()

	if ln, ok := registry[name]; ok {
		return ln
	}

	return discard
}

// New registers a logger writing to a dated file in logDir. A name that is
// already registered returns the existing logger.
func New(name string, logDir string, logLevel LogLevel) (*Logger, error) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if logger, exists := registry[name]; exists {
		return logger, nil
	}

	logger := &Logger{
		logLevel: logLevel,
		logDir:   logDir,
	}
	if err := logger.init(); err != nil {
		return nil, err
	}

	registry[name] = logger
	return logger, nil
}

// NewWithWriter registers a logger writing to w, replacing any logger
// already registered under name.
func NewWithWriter(name string, w io.Writer, logLevel LogLevel) *Logger {
	registryMu.Lock()
	defer registryMu.Unlock()

	logger := &Logger{
		logLevel: logLevel,
		logger:   log.New(w, name+" ", log.Ldate|log.Ltime|log.Lshortfile),
	}
	registry[name] = logger
	return logger
}

func (l *Logger) init() error {
	if err := os.MkdirAll(l.logDir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	timestamp := time.Now().Format("2006-01-02")

	logFile, err := os.OpenFile(
		filepath.Join(l.logDir, fmt.Sprintf("RelAlg-%s.log", timestamp)),
		os.O_APPEND|os.O_CREATE|os.O_WRONLY,
		0644,
	)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	l.logger = log.New(logFile, "", log.Ldate|log.Ltime|log.Lshortfile)

	return nil
}

func (l *Logger) Enabled(level LogLevel) bool {
	return level >= l.logLevel
}

func (l *Logger) output(level LogLevel, format string, v ...any) {
	if !l.Enabled(level) {
		return
	}
	// calldepth 3 attributes the line to the caller of Info/Debug/Error.
	_ = l.logger.Output(3, level.String()+": "+fmt.Sprintf(format, v...))
}

func (l *Logger) Info(format string, v ...any) {
	l.output(INFO, format, v...)
}

func (l *Logger) Debug(format string, v ...any) {
	l.output(DEBUG, format, v...)
}

func (l *Logger) Error(format string, v ...any) {
	l.output(ERROR, format, v...)
}

func ResetRegistry() {
	registryMu.Lock()
	defer registryMu.Unlock()

	registry = map[string]*Logger{}
}
