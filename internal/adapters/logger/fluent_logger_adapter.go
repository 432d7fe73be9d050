package logger_adapter

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/Abdalkaderdev/Realhouse-sub003/internal/core/port"
	"github.com/fluent/fluent-logger-golang/fluent"
)

// FluentPoster: часть клиента fluent, которую использует адаптер.
// *fluent.Fluent удовлетворяет интерфейсу; в тестах подставляется фейк.
type FluentPoster interface {
	Post(tag string, message interface{}) error
	Close() error
}

var _ FluentPoster = (*fluent.Fluent)(nil)

// FluentLoggerAdapter отправляет записи в Fluent Bit, тег = уровень записи.
type FluentLoggerAdapter struct {
	client   FluentPoster
	fields   port.Fields
	minLevel slog.Level
}

func NewFluentLoggerAdapter(client FluentPoster, minLevel slog.Leveler) (*FluentLoggerAdapter, error) {
	if client == nil {
		return nil, fmt.Errorf("fluent client cannot be nil")
	}

	level := slog.LevelInfo
	if minLevel != nil {
		level = minLevel.Level()
	}

	return &FluentLoggerAdapter{
		client:   client,
		fields:   make(port.Fields),
		minLevel: level,
	}, nil
}

func (a *FluentLoggerAdapter) mergeFields(fields port.Fields) port.Fields {
	merged := make(port.Fields, len(a.fields)+len(fields))
	for k, v := range a.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return merged
}

func (a *FluentLoggerAdapter) post(level slog.Level, tag string, msg string, fields port.Fields) port.Fields {
	if level < a.minLevel {
		return nil
	}
	data := a.mergeFields(fields)
	data["level"] = tag
	data["message"] = msg
	data["timestamp"] = time.Now().UTC().Format(time.RFC3339Nano)

	// Fluent Bit может быть недоступен, но логирование не должно ронять запрос
	_ = a.client.Post(tag, data)
	return data
}

func (a *FluentLoggerAdapter) Info(msg string, fields port.Fields) {
	a.post(slog.LevelInfo, "info", msg, fields)
}

func (a *FluentLoggerAdapter) Warn(msg string, fields port.Fields) {
	a.post(slog.LevelWarn, "warn", msg, fields)
}

func (a *FluentLoggerAdapter) Error(msg string, err error, fields port.Fields) {
	if err != nil {
		fields = a.withError(fields, err)
	}
	a.post(slog.LevelError, "error", msg, fields)
}

func (a *FluentLoggerAdapter) Debug(msg string, fields port.Fields) {
	a.post(slog.LevelDebug, "debug", msg, fields)
}

func (a *FluentLoggerAdapter) withError(fields port.Fields, err error) port.Fields {
	out := make(port.Fields, len(fields)+1)
	for k, v := range fields {
		out[k] = v
	}
	out["error"] = err.Error()
	return out
}

// WithFields создает новый логгер с расширенным контекстом
func (a *FluentLoggerAdapter) WithFields(fields port.Fields) port.LoggerPort {
	return &FluentLoggerAdapter{
		client:   a.client,
		fields:   a.mergeFields(fields),
		minLevel: a.minLevel,
	}
}

func (a *FluentLoggerAdapter) Close() error {
	return a.client.Close()
}
