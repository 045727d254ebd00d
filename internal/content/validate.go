package content

import (
	"fmt"
	"strings"
)

// validateDocument performs all semantic checks on a decoded document.
// Returns a combined error describing all problems found, or nil if valid.
func validateDocument(doc *Document) error {
	var errs []string

	if len(doc.Modules) == 0 {
		errs = append(errs, "content has no modules")
	}

	moduleIDs := make(map[string]bool, len(doc.Modules))
	questionIDs := make(map[string]string)

	for _, m := range doc.Modules {
		if moduleIDs[m.ID] {
			errs = append(errs, fmt.Sprintf("duplicate module ID: %q", m.ID))
		}
		moduleIDs[m.ID] = true

		skillIDs := make(map[string]bool, len(m.Skills))
		for _, s := range m.Skills {
			if skillIDs[s.ID] {
				errs = append(errs, fmt.Sprintf("module %q: duplicate skill ID: %q", m.ID, s.ID))
			}
			skillIDs[s.ID] = true

			for _, q := range s.Questions {
				where := fmt.Sprintf("module %q skill %q question %q", m.ID, s.ID, q.ID)
				if prev, ok := questionIDs[q.ID]; ok {
					errs = append(errs, fmt.Sprintf("%s: duplicate question ID (first seen in %s)", where, prev))
				} else {
					questionIDs[q.ID] = fmt.Sprintf("%s/%s", m.ID, s.ID)
				}
				errs = append(errs, validateQuestion(where, q)...)
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("content validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

func validateQuestion(where string, q Question) []string {
	var errs []string

	switch q.Mode {
	case ModeLearn, ModePractice, ModeBoth:
	default:
		errs = append(errs, fmt.Sprintf("%s: unknown mode %q", where, q.Mode))
	}
	if q.Difficulty < 1 || q.Difficulty > 3 {
		errs = append(errs, fmt.Sprintf("%s: difficulty must be 1, 2 or 3, got %d", where, q.Difficulty))
	}

	switch q.Type {
	case TypeMCQ:
		if len(q.Options) < 2 {
			errs = append(errs, fmt.Sprintf("%s: mcq needs at least 2 options, got %d", where, len(q.Options)))
		}
		if q.Answer.IsNumber() {
			errs = append(errs, fmt.Sprintf("%s: mcq answer must be an option id", where))
		} else if _, ok := q.OptionText(q.Answer.Text()); !ok {
			errs = append(errs, fmt.Sprintf("%s: answer %q is not one of the option ids", where, q.Answer.Text()))
		}
		seen := make(map[string]bool, len(q.Options))
		for _, o := range q.Options {
			if seen[o.ID] {
				errs = append(errs, fmt.Sprintf("%s: duplicate option ID %q", where, o.ID))
			}
			seen[o.ID] = true
		}
	case TypeNumeric:
		if !q.Answer.IsNumber() {
			errs = append(errs, fmt.Sprintf("%s: numeric answer must be a number", where))
		}
		if q.NumericTolerance != nil && *q.NumericTolerance < 0 {
			errs = append(errs, fmt.Sprintf("%s: numericTolerance must be >= 0", where))
		}
	default:
		errs = append(errs, fmt.Sprintf("%s: unknown type %q", where, q.Type))
	}

	return errs
}
