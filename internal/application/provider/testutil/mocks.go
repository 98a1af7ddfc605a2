// Package testutil provides mock implementations for testing the provider application layer.
package testutil

import (
	"context"
	"sync"

	"github.com/smmpanel/panel/internal/shared/logger"
)

// MockTransactor runs the callback directly, optionally failing before it starts.
type MockTransactor struct {
	mu    sync.Mutex
	err   error
	calls int
}

// NewMockTransactor creates a new mock transactor.
func NewMockTransactor() *MockTransactor {
	return &MockTransactor{}
}

// SetError makes the next transactions fail without running the callback.
func (m *MockTransactor) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Calls returns how many transactions were started.
func (m *MockTransactor) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// RunInTransaction implements usecases.Transactor.
func (m *MockTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	m.calls++
	err := m.err
	m.mu.Unlock()

	if err != nil {
		return err
	}
	return fn(ctx)
}

// MockLogger is a mock implementation of Logger for testing.
type MockLogger struct {
	mu      sync.RWMutex
	entries []LogEntry
}

// LogEntry records a log call.
type LogEntry struct {
	Level   string
	Message string
	Fields  map[string]interface{}
}

// NewMockLogger creates a new mock logger.
func NewMockLogger() *MockLogger {
	return &MockLogger{
		entries: make([]LogEntry, 0),
	}
}

func (m *MockLogger) Debug(msg string, args ...any) { m.log("DEBUG", msg, args...) }
func (m *MockLogger) Info(msg string, args ...any)  { m.log("INFO", msg, args...) }
func (m *MockLogger) Warn(msg string, args ...any)  { m.log("WARN", msg, args...) }
func (m *MockLogger) Error(msg string, args ...any) { m.log("ERROR", msg, args...) }

// With returns a logger with additional fields.
func (m *MockLogger) With(args ...any) logger.Interface {
	return m
}

func (m *MockLogger) Debugw(msg string, keysAndValues ...any) { m.log("DEBUG", msg, keysAndValues...) }
func (m *MockLogger) Infow(msg string, keysAndValues ...any)  { m.log("INFO", msg, keysAndValues...) }
func (m *MockLogger) Warnw(msg string, keysAndValues ...any)  { m.log("WARN", msg, keysAndValues...) }
func (m *MockLogger) Errorw(msg string, keysAndValues ...any) { m.log("ERROR", msg, keysAndValues...) }

func (m *MockLogger) log(level, msg string, fields ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry := LogEntry{
		Level:   level,
		Message: msg,
		Fields:  make(map[string]interface{}),
	}

	// Parse fields (key-value pairs)
	for i := 0; i < len(fields)-1; i += 2 {
		if key, ok := fields[i].(string); ok {
			entry.Fields[key] = fields[i+1]
		}
	}

	m.entries = append(m.entries, entry)
}

// GetEntries returns all logged entries.
func (m *MockLogger) GetEntries() []LogEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]LogEntry, len(m.entries))
	copy(result, m.entries)
	return result
}

// HasMessage reports whether any entry at level carries msg.
func (m *MockLogger) HasMessage(level, msg string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, e := range m.entries {
		if e.Level == level && e.Message == msg {
			return true
		}
	}
	return false
}
