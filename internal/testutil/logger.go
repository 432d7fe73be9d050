package testutil

import (
	"sync"

	"github.com/Abdalkaderdev/Realhouse-sub003/internal/core/port"
)

// LogEntry: один вызов, пойманный RecordingLogger
type LogEntry struct {
	Level   string
	Message string
	Err     error
	Fields  port.Fields
}

// RecordingLogger хранит все записи в памяти. Логгеры, полученные через
// WithFields, пишут в тот же список.
type RecordingLogger struct {
	mu      *sync.Mutex
	entries *[]LogEntry
	fields  port.Fields
}

func NewRecordingLogger() *RecordingLogger {
	return &RecordingLogger{mu: &sync.Mutex{}, entries: &[]LogEntry{}, fields: port.Fields{}}
}

// NewNopLogger: логгер для тестов, которым вывод не важен
func NewNopLogger() port.LoggerPort {
	return NewRecordingLogger()
}

func (l *RecordingLogger) add(level, msg string, err error, fields port.Fields) {
	merged := make(port.Fields, len(l.fields)+len(fields))
	for k, v := range l.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	l.mu.Lock()
	*l.entries = append(*l.entries, LogEntry{Level: level, Message: msg, Err: err, Fields: merged})
	l.mu.Unlock()
}

func (l *RecordingLogger) Info(msg string, fields port.Fields)  { l.add("info", msg, nil, fields) }
func (l *RecordingLogger) Warn(msg string, fields port.Fields)  { l.add("warn", msg, nil, fields) }
func (l *RecordingLogger) Debug(msg string, fields port.Fields) { l.add("debug", msg, nil, fields) }

func (l *RecordingLogger) Error(msg string, err error, fields port.Fields) {
	l.add("error", msg, err, fields)
}

func (l *RecordingLogger) WithFields(fields port.Fields) port.LoggerPort {
	merged := make(port.Fields, len(l.fields)+len(fields))
	for k, v := range l.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &RecordingLogger{mu: l.mu, entries: l.entries, fields: merged}
}

// Entries возвращает копию всех записей на текущий момент
func (l *RecordingLogger) Entries() []LogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]LogEntry(nil), *l.entries...)
}

// Messages возвращает сообщения заданного уровня
func (l *RecordingLogger) Messages(level string) []string {
	var out []string
	for _, e := range l.Entries() {
		if e.Level == level {
			out = append(out, e.Message)
		}
	}
	return out
}
