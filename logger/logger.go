// Copyright 2026 the wmienum authors

// Package logger wraps logrus with console and rotating-file hooks. All
// output goes through the hooks so that each destination can carry its own
// formatter.
package logger

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"runtime"
	"strconv"
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	DefaultLogLevel    = "info"
	DefaultLogFormat   = TextFormat
	DefaultMaxLogFiles = 10
	MaxFilesLimit      = 20
	DefaultMaxLogSize  = 100  // in MB
	MaxLogSizeLimit    = 1024 // in MB
	JSONFormat         = "json"
	TextFormat         = "text"
)

// LogParams to configure logging
type LogParams struct {
	Level      string
	File       string
	MaxFiles   int
	MaxSizeMiB int
	Format     string
}

// Fields is re-exported so callers don't need a direct logrus import
type Fields = log.Fields

var (
	logParams LogParams
	initMutex sync.Mutex
)

func (l LogParams) isValidLevel() bool {
	switch l.Level {
	case "trace":
		fallthrough
	case "debug":
		fallthrough
	case "info":
		fallthrough
	case "warn":
		fallthrough
	case "error":
		return true
	default:
		return false
	}
}

func (l LogParams) isValidLogFormat() bool {
	switch l.Format {
	case "json":
		fallthrough
	case "text":
		return true
	default:
		return false
	}
}

func (l LogParams) isValidMaxLogFiles() bool {
	return l.MaxFiles > 0 && l.MaxFiles <= MaxFilesLimit
}

func (l LogParams) isValidMaxLogSize() bool {
	return l.MaxSizeMiB > 0 && l.MaxSizeMiB <= MaxLogSizeLimit
}

func (l LogParams) GetLevel() string {
	if !l.isValidLevel() {
		return DefaultLogLevel
	}
	return l.Level
}

func (l LogParams) GetFile() string {
	return l.File
}

func (l LogParams) GetMaxFiles() int {
	if !l.isValidMaxLogFiles() {
		return DefaultMaxLogFiles
	}
	return l.MaxFiles
}

func (l LogParams) GetMaxSize() int {
	if !l.isValidMaxLogSize() {
		return DefaultMaxLogSize
	}
	return l.MaxSizeMiB
}

func (l LogParams) GetLogFormat() string {
	if !l.isValidLogFormat() {
		return DefaultLogFormat
	}
	return l.Format
}

func (l LogParams) UseJsonFormatter() bool {
	return l.Format == JSONFormat
}

func updateLogParamsFromEnv() {
	level := os.Getenv("LOG_LEVEL")
	if level != "" {
		logParams.Level = level
	}

	logFile := os.Getenv("LOG_FILE")
	if logFile != "" {
		logParams.File = logFile
	}

	maxSize := os.Getenv("LOG_MAX_SIZE")
	if maxSize != "" {
		size, err := strconv.ParseInt(maxSize, 0, 0)
		if err == nil {
			logParams.MaxSizeMiB = int(size)
		}
	}

	maxFiles := os.Getenv("LOG_MAX_FILES")
	if maxFiles != "" {
		fileCount, err := strconv.ParseInt(maxFiles, 0, 0)
		if err == nil {
			logParams.MaxFiles = int(fileCount)
		}
	}

	logFormat := os.Getenv("LOG_FORMAT")
	if logFormat != "" {
		logParams.Format = logFormat
	}
}

// InitLogging initializes logging with the given params. If params is nil,
// defaults are used. Environment variables override either. When logName is
// non-empty a rotating file hook is attached; when alsoLogToStderr is set, a
// console hook is attached as well.
func InitLogging(logName string, params *LogParams, alsoLogToStderr bool) error {
	initMutex.Lock()
	defer initMutex.Unlock()

	if params == nil {
		logParams.Level = DefaultLogLevel
		logParams.MaxSizeMiB = DefaultMaxLogSize
		logParams.MaxFiles = DefaultMaxLogFiles
		logParams.Format = DefaultLogFormat
	} else {
		logParams = *params
	}

	if logName != "" {
		logParams.File = logName
	}

	// check any overrides from env and apply
	updateLogParamsFromEnv()

	// No output except for the hooks
	log.SetOutput(ioutil.Discard)

	if logParams.GetFile() != "" {
		if err := AddFileHook(); err != nil {
			return err
		}
	}
	if alsoLogToStderr {
		if err := AddConsoleHook(); err != nil {
			return err
		}
	}

	level, err := log.ParseLevel(logParams.GetLevel())
	if err != nil {
		return err
	}
	log.SetLevel(level)

	// Remind users where the log file lives
	log.WithFields(log.Fields{
		"logLevel":        log.GetLevel().String(),
		"logFileLocation": logParams.GetFile(),
		"alsoLogToStderr": alsoLogToStderr,
	}).Debug("Initialized logging.")

	return nil
}

// AddConsoleHook adds a console hook to the standard logger
func AddConsoleHook() error {
	log.AddHook(NewConsoleHook())
	return nil
}

// AddFileHook adds a rotating-file hook to the standard logger
func AddFileHook() error {
	hook, err := NewFileHook()
	if err != nil {
		return err
	}
	log.AddHook(hook)
	return nil
}

// ConsoleHook sends log entries to stderr
type ConsoleHook struct {
	formatter log.Formatter
}

// NewConsoleHook creates a new log hook for writing to stderr
func NewConsoleHook() *ConsoleHook {
	return &ConsoleHook{&log.TextFormatter{FullTimestamp: true}}
}

// Levels returns all supported levels
func (hook *ConsoleHook) Levels() []log.Level {
	return log.AllLevels
}

// Fire sends the log entry to stderr
func (hook *ConsoleHook) Fire(entry *log.Entry) error {
	line, err := hook.formatter.Format(entry)
	if err != nil {
		return err
	}
	fmt.Fprint(os.Stderr, string(line))
	return nil
}

// FileHook sends log entries to a rotating log file
type FileHook struct {
	formatter log.Formatter
	logger    io.Writer
	location  string
}

// NewFileHook creates a new log hook for writing to a file
func NewFileHook() (*FileHook, error) {
	var formatter log.Formatter
	if logParams.UseJsonFormatter() {
		formatter = &log.JSONFormatter{}
	} else {
		formatter = &log.TextFormatter{FullTimestamp: true, DisableColors: true}
	}

	logFileLocation := logParams.GetFile()
	logRotator := &lumberjack.Logger{
		Filename:   logFileLocation,
		MaxSize:    logParams.GetMaxSize(),
		MaxBackups: logParams.GetMaxFiles(),
		Compress:   true,
	}

	return &FileHook{formatter: formatter, logger: logRotator, location: logFileLocation}, nil
}

// Levels returns all supported levels
func (hook *FileHook) Levels() []log.Level {
	return log.AllLevels
}

// Fire sends the log entry to the rotating log file
func (hook *FileHook) Fire(entry *log.Entry) error {
	line, err := hook.formatter.Format(entry)
	if err != nil {
		return err
	}
	_, err = hook.logger.Write(line)
	return err
}

// GetLocation returns the file this hook logs to
func (hook *FileHook) GetLocation() string {
	return hook.location
}

// GetLevel returns the current standard logger level
func GetLevel() log.Level {
	return log.GetLevel()
}

// IsLevelEnabled checks if the given level is enabled on the standard logger
func IsLevelEnabled(level log.Level) bool {
	return log.IsLevelEnabled(level)
}

// WithField creates an entry from the standard logger and adds a field to it
func WithField(key string, value interface{}) *log.Entry {
	return sourced().WithField(key, value)
}

// WithFields creates an entry from the standard logger and adds multiple fields to it
func WithFields(fields Fields) *log.Entry {
	return sourced().WithFields(fields)
}

// sourced adds a source field to the logger that contains
// the file name and line where the logging happened.
func sourced() *log.Entry {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		file = "<???>"
		line = 1
	} else {
		slash := strings.LastIndex(file, "/")
		file = file[slash+1:]
	}
	return log.WithField("file", fmt.Sprintf("%s:%d", file, line))
}

// Trace logs a message at level Trace on the standard logger.
func Trace(args ...interface{}) {
	sourced().Trace(args...)
}

// Debug logs a message at level Debug on the standard logger.
func Debug(args ...interface{}) {
	sourced().Debug(args...)
}

// Info logs a message at level Info on the standard logger.
func Info(args ...interface{}) {
	sourced().Info(args...)
}

// Warn logs a message at level Warn on the standard logger.
func Warn(args ...interface{}) {
	sourced().Warn(args...)
}

// Error logs a message at level Error on the standard logger.
func Error(args ...interface{}) {
	sourced().Error(args...)
}

// Tracef logs a message at level Trace on the standard logger.
func Tracef(format string, args ...interface{}) {
	sourced().Tracef(format, args...)
}

// Debugf logs a message at level Debug on the standard logger.
func Debugf(format string, args ...interface{}) {
	sourced().Debugf(format, args...)
}

// Infof logs a message at level Info on the standard logger.
func Infof(format string, args ...interface{}) {
	sourced().Infof(format, args...)
}

// Warnf logs a message at level Warn on the standard logger.
func Warnf(format string, args ...interface{}) {
	sourced().Warnf(format, args...)
}

// Errorf logs a message at level Error on the standard logger.
func Errorf(format string, args ...interface{}) {
	sourced().Errorf(format, args...)
}
