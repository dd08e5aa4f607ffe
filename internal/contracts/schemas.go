package contracts

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"path"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"property-search-service/internal/core/domain"
)

//go:embed schemas/*.json
var schemasFS embed.FS

// SchemaPropertyCreate — ключ схемы тела POST /api/properties.
const SchemaPropertyCreate = "PropertyCreate/1.0.0"

var compiledSchemas = make(map[string]*jsonschema.Schema)

func init() {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true

	// Добавляем все схемы как ресурсы, чтобы они могли
	// ссылаться друг на друга через `$ref`.
	err := fs.WalkDir(schemasFS, "schemas", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(p, ".json") {
			file, err := schemasFS.Open(p)
			if err != nil {
				return err
			}
			defer file.Close()
			if err := compiler.AddResource(p, file); err != nil {
				log.Fatalf("failed to add schema resource %s: %v", p, err)
			}
		}
		return nil
	})
	if err != nil {
		log.Fatalf("error walking and adding schema resources: %v", err)
	}

	// Снова обходим для компиляции и регистрации
	err = fs.WalkDir(schemasFS, "schemas", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(p, ".json") {
			schema, err := compiler.Compile(p)
			if err != nil {
				log.Printf("WARNING: could not compile schema %s: %v. Skipping.", p, err)
				return nil
			}

			key := generateKeyFromPath(p)
			compiledSchemas[key] = schema
		}
		return nil
	})
	if err != nil {
		log.Fatalf("error compiling schemas: %v", err)
	}
}

// generateKeyFromPath превращает "schemas/property-create.v1.json"
// в ключ вида "PropertyCreate/1.0.0".
func generateKeyFromPath(p string) string {
	name := strings.TrimSuffix(path.Base(p), ".json")
	parts := strings.Split(name, ".")
	if len(parts) != 2 {
		return name
	}

	caser := cases.Title(language.English)

	var nameBuilder strings.Builder
	for _, part := range strings.Split(parts[0], "-") {
		nameBuilder.WriteString(caser.String(part))
	}

	version := strings.Replace(parts[1], "v", "", 1) + ".0.0"

	return fmt.Sprintf("%s/%s", nameBuilder.String(), version)
}

// ValidatePayload проверяет тело запроса по зарегистрированной схеме.
// Любое нарушение возвращается как domain.ValidationError со списком
// всех проблемных полей, а не только первого.
func ValidatePayload(schemaKey string, body []byte) error {
	schema, ok := compiledSchemas[schemaKey]
	if !ok {
		return fmt.Errorf("schema '%s' is not registered", schemaKey)
	}

	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		// Если это невалидный JSON, валидация по схеме невозможна
		return domain.NewValidationError("request body is not valid JSON")
	}

	if err := schema.Validate(v); err != nil {
		var ve *jsonschema.ValidationError
		if errors.As(err, &ve) {
			return domain.NewValidationError("invalid property payload: %s", strings.Join(collectCauses(ve), "; "))
		}
		return fmt.Errorf("JSON schema validation failed: %w", err)
	}

	return nil
}

// collectCauses собирает сообщения листовых причин валидационной ошибки.
func collectCauses(ve *jsonschema.ValidationError) []string {
	if len(ve.Causes) == 0 {
		if loc := strings.TrimPrefix(ve.InstanceLocation, "/"); loc != "" {
			return []string{fmt.Sprintf("%s: %s", loc, ve.Message)}
		}
		return []string{ve.Message}
	}

	var msgs []string
	for _, cause := range ve.Causes {
		msgs = append(msgs, collectCauses(cause)...)
	}
	return msgs
}
