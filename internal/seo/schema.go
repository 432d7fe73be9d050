// Package seo переводит контент сайта в JSON-LD schema.org и поддерживает head
// документа (title, meta, canonical, скрипты JSON-LD) в согласованном виде.
//
// Генераторы следуют правилу omit-if-absent: неизвестные необязательные поля
// не попадают в payload вовсе, а не выводятся как null или "".
package seo

import (
	"encoding/json"
	"math"
	"strings"
	"time"
)

// Schema: объект JSON-LD
type Schema map[string]any

const schemaContext = "https://schema.org"

func newSchema(typ string) Schema {
	return Schema{"@context": schemaContext, "@type": typ}
}

// JSON сериализует схему. json.Marshal экранирует <, > и &, поэтому payload
// безопасен внутри <script>.
func (s Schema) JSON() (string, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// set кладет v под key, если v не пустое: пустая строка, nil, нулевое время,
// пустой срез или map и ноль считаются отсутствием
func set(m map[string]any, key string, v any) {
	switch val := v.(type) {
	case nil:
		return
	case string:
		if strings.TrimSpace(val) == "" {
			return
		}
	case int:
		if val == 0 {
			return
		}
	case int64:
		if val == 0 {
			return
		}
	case float64:
		if val == 0 || math.IsNaN(val) {
			return
		}
	case time.Time:
		if val.IsZero() {
			return
		}
		v = val.Format(time.RFC3339)
	case []string:
		if len(val) == 0 {
			return
		}
	case []any:
		if len(val) == 0 {
			return
		}
	case []map[string]any:
		if len(val) == 0 {
			return
		}
	case map[string]any:
		if len(val) == 0 {
			return
		}
	case Schema:
		if len(val) == 0 {
			return
		}
	}
	m[key] = v
}

func date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

// AbsoluteURL склеивает baseURL и path, если path еще не абсолютный
func AbsoluteURL(baseURL, path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(path, "/")
}

func absoluteURLs(baseURL string, paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if u := AbsoluteURL(baseURL, p); u != "" {
			out = append(out, u)
		}
	}
	return out
}
