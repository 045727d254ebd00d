package content

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

//go:embed default_content.json
var defaultContent []byte

var (
	ErrUnknownModule = errors.New("unknown module")
	ErrUnknownSkill  = errors.New("unknown skill")
)

// Catalog is the read-only, validated question bank with precomputed indices.
type Catalog struct {
	modules    []Module
	byModule   map[string]*Module
	byQuestion map[string]*Question
}

// Parse validates raw content JSON (structure, then semantics) and builds a
// catalog from it.
func Parse(raw []byte) (*Catalog, error) {
	if err := validateSchema(raw); err != nil {
		return nil, err
	}
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}
	if err := validateDocument(&doc); err != nil {
		return nil, err
	}
	return buildCatalog(doc.Modules), nil
}

// Load reads and parses the content file at path. An empty path loads the
// embedded default catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content: %w", err)
	}
	return Parse(raw)
}

// Default returns the embedded catalog.
func Default() (*Catalog, error) {
	return Parse(defaultContent)
}

func buildCatalog(modules []Module) *Catalog {
	c := &Catalog{
		modules:    modules,
		byModule:   make(map[string]*Module, len(modules)),
		byQuestion: make(map[string]*Question),
	}
	for i := range c.modules {
		m := &c.modules[i]
		c.byModule[m.ID] = m
		for j := range m.Skills {
			for k := range m.Skills[j].Questions {
				q := &m.Skills[j].Questions[k]
				c.byQuestion[q.ID] = q
			}
		}
	}
	return c
}

// Modules returns all modules in catalog order.
func (c *Catalog) Modules() []Module {
	return c.modules
}

// Module returns the module with the given id.
func (c *Catalog) Module(moduleID string) (Module, error) {
	m, ok := c.byModule[moduleID]
	if !ok {
		return Module{}, fmt.Errorf("%w: %q", ErrUnknownModule, moduleID)
	}
	return *m, nil
}

// Skill returns the skill with the given id inside a module.
func (c *Catalog) Skill(moduleID, skillID string) (Skill, error) {
	m, err := c.Module(moduleID)
	if err != nil {
		return Skill{}, err
	}
	for _, s := range m.Skills {
		if s.ID == skillID {
			return s, nil
		}
	}
	return Skill{}, fmt.Errorf("%w: %q in module %q", ErrUnknownSkill, skillID, moduleID)
}

// Question looks up a question anywhere in the catalog.
func (c *Catalog) Question(questionID string) (Question, bool) {
	q, ok := c.byQuestion[questionID]
	if !ok {
		return Question{}, false
	}
	return *q, true
}

// Pool returns the questions of a skill that serve the given session mode,
// in catalog order. The returned slice is a fresh copy.
func (c *Catalog) Pool(moduleID, skillID string, mode Mode) ([]Question, error) {
	s, err := c.Skill(moduleID, skillID)
	if err != nil {
		return nil, err
	}
	var pool []Question
	for _, q := range s.Questions {
		if q.Mode.Serves(mode) {
			pool = append(pool, q)
		}
	}
	return pool, nil
}

// ModulesForMode returns modules that have at least one question for mode.
func (c *Catalog) ModulesForMode(mode Mode) []Module {
	var out []Module
	for _, m := range c.modules {
		if moduleServes(m, mode) {
			out = append(out, m)
		}
	}
	return out
}

func moduleServes(m Module, mode Mode) bool {
	for _, s := range m.Skills {
		for _, q := range s.Questions {
			if q.Mode.Serves(mode) {
				return true
			}
		}
	}
	return false
}
