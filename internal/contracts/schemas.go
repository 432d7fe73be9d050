package contracts

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/Abdalkaderdev/Realhouse-sub003/internal/core/domain"
	"github.com/Abdalkaderdev/Realhouse-sub003/schemas"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Ключи схем тел запросов
const (
	PropertyCreateV1 = "PropertyCreateRequest/1.0.0"
	PropertyUpdateV1 = "PropertyUpdateRequest/1.0.0"
	InquiryV1        = "InquiryRequest/1.0.0"
)

const (
	schemaRoot    = "requests"
	schemaBaseURL = "https://realhouse.local/schemas/"
	// общие определения, на которые ссылаются остальные схемы
	sharedSchemaDir = "common"
)

var (
	compiledSchemas map[string]*jsonschema.Schema
	loadOnce        sync.Once
	loadErr         error
)

// Load компилирует встроенные схемы. Повторные вызовы возвращают результат первого.
func Load() error {
	loadOnce.Do(func() {
		compiledSchemas, loadErr = compileAll(schemas.SchemasFS)
	})
	return loadErr
}

func compileAll(fsys fs.FS) (map[string]*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft7
	compiler.AssertFormat = true

	var paths []string
	// Сначала все файлы добавляются как ресурсы, чтобы работали $ref между ними
	err := fs.WalkDir(fsys, schemaRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".json") {
			return nil
		}
		file, err := fsys.Open(path)
		if err != nil {
			return err
		}
		defer file.Close()
		if err := compiler.AddResource(schemaBaseURL+path, file); err != nil {
			return fmt.Errorf("failed to add schema resource %s: %w", path, err)
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking schema resources: %w", err)
	}

	out := make(map[string]*jsonschema.Schema, len(paths))
	for _, path := range paths {
		key := generateKeyFromPath(path)
		if key == "" {
			continue
		}
		schema, err := compiler.Compile(schemaBaseURL + path)
		if err != nil {
			return nil, fmt.Errorf("could not compile schema %s: %w", path, err)
		}
		out[key] = schema
	}
	return out, nil
}

// generateKeyFromPath: "requests/property-create/v1.json" -> "PropertyCreateRequest/1.0.0"
func generateKeyFromPath(path string) string {
	trimmed := strings.TrimPrefix(path, schemaRoot+"/")
	trimmed = strings.TrimSuffix(trimmed, ".json")

	parts := strings.Split(trimmed, "/")
	if len(parts) != 2 || parts[0] == sharedSchemaDir {
		return ""
	}

	caser := cases.Title(language.English)
	var name strings.Builder
	for _, p := range strings.Split(parts[0], "-") {
		name.WriteString(caser.String(p))
	}
	name.WriteString("Request")

	version := strings.Replace(parts[1], "v", "", 1) + ".0.0"
	return name.String() + "/" + version
}

// ValidateRequest проверяет тело запроса по схеме.
// Нарушения схемы возвращаются как *domain.ValidationError.
func ValidateRequest(key string, body []byte) error {
	if err := Load(); err != nil {
		return err
	}
	schema, ok := compiledSchemas[key]
	if !ok {
		return fmt.Errorf("schema %q not found", key)
	}

	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		return domain.NewValidationError(map[string]string{"body": "must be valid JSON"})
	}

	if err := schema.Validate(v); err != nil {
		var verr *jsonschema.ValidationError
		if errors.As(err, &verr) {
			return domain.NewValidationError(fieldErrors(verr))
		}
		return fmt.Errorf("JSON schema validation failed: %w", err)
	}
	return nil
}

// fieldErrors сводит дерево ошибок к "поле -> сообщение"
func fieldErrors(verr *jsonschema.ValidationError) map[string]string {
	fields := make(map[string]string)
	for _, e := range verr.BasicOutput().Errors {
		if e.Error == "" || strings.HasPrefix(e.Error, "doesn't validate with") {
			continue
		}
		field := strings.TrimPrefix(e.InstanceLocation, "/")
		if field == "" {
			field = "body"
		}
		if _, seen := fields[field]; !seen {
			fields[field] = e.Error
		}
	}
	if len(fields) == 0 {
		fields["body"] = verr.Message
	}
	return fields
}
