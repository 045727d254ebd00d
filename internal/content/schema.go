package content

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "schema://financelab-content.json"

// documentSchema describes the structural shape of a content file. Semantic
// checks (unique ids, answer references) live in validateDocument.
const documentSchema = `{
  "type": "object",
  "required": ["modules"],
  "properties": {
    "modules": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "title", "skills"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "title": {"type": "string"},
          "description": {"type": "string"},
          "skills": {
            "type": "array",
            "items": {
              "type": "object",
              "required": ["id", "title", "questions"],
              "properties": {
                "id": {"type": "string", "minLength": 1},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "questions": {
                  "type": "array",
                  "items": {"$ref": "#/$defs/question"}
                }
              }
            }
          }
        }
      }
    }
  },
  "$defs": {
    "question": {
      "type": "object",
      "required": ["id", "mode", "type", "difficulty", "prompt", "answer", "explanation"],
      "properties": {
        "id": {"type": "string", "minLength": 1},
        "mode": {"enum": ["learn", "practice", "both"]},
        "type": {"enum": ["mcq", "numeric"]},
        "difficulty": {"enum": [1, 2, 3]},
        "prompt": {"type": "string"},
        "scenarioContext": {"type": "string"},
        "options": {
          "type": "array",
          "items": {
            "type": "object",
            "required": ["id", "text"],
            "properties": {
              "id": {"type": "string", "minLength": 1},
              "text": {"type": "string"}
            }
          }
        },
        "answer": {"type": ["string", "number"]},
        "numericTolerance": {"type": "number", "minimum": 0},
        "explanation": {"type": "string"},
        "inPractice": {"type": "string"},
        "examTip": {"type": "string"},
        "tags": {"type": "array", "items": {"type": "string"}}
      },
      "allOf": [
        {
          "if": {"properties": {"type": {"const": "mcq"}}},
          "then": {"required": ["options"], "properties": {"answer": {"type": "string"}}}
        },
        {
          "if": {"properties": {"type": {"const": "numeric"}}},
          "then": {"properties": {"answer": {"type": "number"}}}
        }
      ]
    }
  }
}`

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// compiledSchema returns the compiled document schema, compiling it once.
func compiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(documentSchema), &def); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
		if compileErr != nil {
			compileErr = fmt.Errorf("compile: %w", compileErr)
		}
	})
	return compiled, compileErr
}

// validateSchema checks raw JSON against the document schema.
func validateSchema(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	sch, err := compiledSchema()
	if err != nil {
		return err
	}
	if err := sch.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
