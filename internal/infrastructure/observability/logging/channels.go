// Package logging provides structured logging channels for the content store,
// its validators and the HTTP surface.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Channel represents a logical logging channel for different system components
type Channel string

const (
	// System channels
	ChannelSystem   Channel = "system"   // General system operations
	ChannelStartup  Channel = "startup"  // Application startup and initialization
	ChannelShutdown Channel = "shutdown" // Application shutdown and cleanup

	// Content channels
	ChannelContent    Channel = "content"    // Locale tree assembly and lookups
	ChannelDataset    Channel = "dataset"    // Officer and absconded dataset loading
	ChannelValidation Channel = "validation" // Integrity checks across locales
	ChannelRender     Channel = "render"     // HTML rendering

	// Infrastructure channels
	ChannelDatabase Channel = "database" // Archive database operations
	ChannelHTTP     Channel = "http"     // HTTP requests

	// Performance channels
	ChannelPerf      Channel = "performance" // Performance markers
	ChannelSlowQuery Channel = "slow-query"  // Slow archive queries

	ChannelDebug Channel = "debug"
)

// AllChannels lists every channel in a stable order.
func AllChannels() []Channel {
	return []Channel{
		ChannelSystem, ChannelStartup, ChannelShutdown,
		ChannelContent, ChannelDataset, ChannelValidation, ChannelRender,
		ChannelDatabase, ChannelHTTP,
		ChannelPerf, ChannelSlowQuery,
		ChannelDebug,
	}
}

// ChanneledLogger provides structured logging with multiple channels
type ChanneledLogger struct {
	channels map[Channel]*slog.Logger
	files    []*os.File
	config   *LoggerConfig
	configMu sync.RWMutex
}

// LoggerConfig contains configuration options for the channeled logger
type LoggerConfig struct {
	OutputToFile    bool      `json:"outputToFile"`    // Write one file per channel
	OutputToConsole bool      `json:"outputToConsole"` // Write to stdout
	LogDirectory    string    `json:"logDirectory"`    // Directory for log files
	Writer          io.Writer `json:"-"`               // Extra sink, used by tests

	JSONFormat    bool `json:"jsonFormat"`
	IncludeSource bool `json:"includeSource"`

	DefaultLevel  slog.Level             `json:"defaultLevel"`
	ChannelLevels map[Channel]slog.Level `json:"channelLevels"`
}

// DefaultLoggerConfig returns a sensible default configuration
func DefaultLoggerConfig() *LoggerConfig {
	return &LoggerConfig{
		OutputToFile:    false,
		OutputToConsole: true,
		LogDirectory:    "logs",
		JSONFormat:      true,
		IncludeSource:   false,
		DefaultLevel:    slog.LevelInfo,
		ChannelLevels:   make(map[Channel]slog.Level),
	}
}

// NewChanneledLogger creates a new channeled logger with the given configuration
func NewChanneledLogger(config *LoggerConfig) (*ChanneledLogger, error) {
	if config == nil {
		config = DefaultLoggerConfig()
	}
	if config.ChannelLevels == nil {
		config.ChannelLevels = make(map[Channel]slog.Level)
	}

	logger := &ChanneledLogger{
		channels: make(map[Channel]*slog.Logger),
		config:   config,
	}

	if config.OutputToFile {
		if err := os.MkdirAll(config.LogDirectory, 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	for _, channel := range AllChannels() {
		channelLogger, err := logger.createChannelLogger(channel)
		if err != nil {
			logger.Close()
			return nil, fmt.Errorf("failed to create logger for channel %s: %w", channel, err)
		}
		logger.channels[channel] = channelLogger
	}

	return logger, nil
}

// NewDiscardLogger returns a logger that writes nowhere. Handy in tests.
func NewDiscardLogger() *ChanneledLogger {
	l, _ := NewChanneledLogger(&LoggerConfig{Writer: io.Discard, DefaultLevel: slog.LevelError})
	return l
}

func (cl *ChanneledLogger) createChannelLogger(channel Channel) (*slog.Logger, error) {
	level := cl.config.DefaultLevel
	if channelLevel, exists := cl.config.ChannelLevels[channel]; exists {
		level = channelLevel
	}

	var writers []io.Writer
	if cl.config.OutputToConsole {
		writers = append(writers, os.Stdout)
	}
	if cl.config.Writer != nil {
		writers = append(writers, cl.config.Writer)
	}
	if cl.config.OutputToFile {
		path := filepath.Join(cl.config.LogDirectory, string(channel)+".log")
		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
		}
		cl.files = append(cl.files, file)
		writers = append(writers, file)
	}

	var writer io.Writer
	switch len(writers) {
	case 0:
		writer = io.Discard
	case 1:
		writer = writers[0]
	default:
		writer = io.MultiWriter(writers...)
	}

	handlerOpts := &slog.HandlerOptions{
		Level:     level,
		AddSource: cl.config.IncludeSource,
	}

	var handler slog.Handler
	if cl.config.JSONFormat {
		handler = slog.NewJSONHandler(writer, handlerOpts)
	} else {
		handler = slog.NewTextHandler(writer, handlerOpts)
	}

	return slog.New(handler).With(slog.String("channel", string(channel))), nil
}

func (cl *ChanneledLogger) System() *slog.Logger     { return cl.GetChannel(ChannelSystem) }
func (cl *ChanneledLogger) Startup() *slog.Logger    { return cl.GetChannel(ChannelStartup) }
func (cl *ChanneledLogger) Shutdown() *slog.Logger   { return cl.GetChannel(ChannelShutdown) }
func (cl *ChanneledLogger) Content() *slog.Logger    { return cl.GetChannel(ChannelContent) }
func (cl *ChanneledLogger) Dataset() *slog.Logger    { return cl.GetChannel(ChannelDataset) }
func (cl *ChanneledLogger) Validation() *slog.Logger { return cl.GetChannel(ChannelValidation) }
func (cl *ChanneledLogger) Render() *slog.Logger     { return cl.GetChannel(ChannelRender) }
func (cl *ChanneledLogger) Database() *slog.Logger   { return cl.GetChannel(ChannelDatabase) }
func (cl *ChanneledLogger) HTTP() *slog.Logger       { return cl.GetChannel(ChannelHTTP) }
func (cl *ChanneledLogger) Perf() *slog.Logger       { return cl.GetChannel(ChannelPerf) }
func (cl *ChanneledLogger) SlowQuery() *slog.Logger  { return cl.GetChannel(ChannelSlowQuery) }
func (cl *ChanneledLogger) Debug() *slog.Logger      { return cl.GetChannel(ChannelDebug) }

// GetChannel returns a logger for a specific channel, falling back to system.
func (cl *ChanneledLogger) GetChannel(channel Channel) *slog.Logger {
	cl.configMu.RLock()
	defer cl.configMu.RUnlock()

	if logger, exists := cl.channels[channel]; exists {
		return logger
	}
	return cl.channels[ChannelSystem]
}

// WithLocale returns a channel logger carrying the locale attribute.
func (cl *ChanneledLogger) WithLocale(channel Channel, locale string) *slog.Logger {
	return cl.GetChannel(channel).With(slog.String("locale", locale))
}

// LogSlowQuery logs a slow archive query
func (cl *ChanneledLogger) LogSlowQuery(query string, duration time.Duration) {
	cl.SlowQuery().Warn("Slow query detected",
		slog.String("query", sanitizeQuery(query)),
		slog.Duration("duration", duration),
	)
}

// LogStartupPhase logs application startup phases
func (cl *ChanneledLogger) LogStartupPhase(phase string, duration time.Duration, success bool, metadata map[string]any) {
	logger := cl.Startup().With(
		slog.String("phase", phase),
		slog.Duration("duration", duration),
		slog.Bool("success", success),
	)
	for key, value := range metadata {
		logger = logger.With(slog.Any(key, value))
	}

	if success {
		logger.Info("Startup phase completed")
	} else {
		logger.Error("Startup phase failed")
	}
}

func sanitizeQuery(query string) string {
	query = strings.Join(strings.Fields(query), " ")
	if len(query) > 500 {
		query = query[:500] + "..."
	}
	return query
}

// SetChannelLevel dynamically sets the log level for a specific channel
func (cl *ChanneledLogger) SetChannelLevel(channel Channel, level slog.Level) error {
	cl.configMu.Lock()
	defer cl.configMu.Unlock()

	if _, exists := cl.channels[channel]; !exists {
		return fmt.Errorf("channel %s does not exist", channel)
	}

	cl.config.ChannelLevels[channel] = level
	newLogger, err := cl.createChannelLogger(channel)
	if err != nil {
		return fmt.Errorf("failed to recreate logger for channel %s: %w", channel, err)
	}
	cl.channels[channel] = newLogger
	return nil
}

// GetChannelLevels returns the current log levels for all channels.
func (cl *ChanneledLogger) GetChannelLevels() map[string]string {
	cl.configMu.RLock()
	defer cl.configMu.RUnlock()

	levels := make(map[string]string, len(cl.channels))
	for channel := range cl.channels {
		if level, ok := cl.config.ChannelLevels[channel]; ok {
			levels[string(channel)] = level.String()
		} else {
			levels[string(channel)] = cl.config.DefaultLevel.String()
		}
	}
	return levels
}

// Close closes any log files opened by the logger.
func (cl *ChanneledLogger) Close() error {
	cl.configMu.Lock()
	defer cl.configMu.Unlock()

	var firstErr error
	for _, f := range cl.files {
		if err := f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	cl.files = nil
	return firstErr
}

// ParseLevel maps LOG_LEVEL style strings onto slog levels.
func ParseLevel(s string) (slog.Level, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRACE", "DEBUG":
		return slog.LevelDebug, true
	case "INFO", "":
		return slog.LevelInfo, true
	case "WARN", "WARNING":
		return slog.LevelWarn, true
	case "ERROR", "FATAL":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}
