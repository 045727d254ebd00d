package progress

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/abhisek/financelab/internal/content"
	"github.com/abhisek/financelab/internal/scoring"
)

// wireState is the persisted JSON form of AppState.
type wireState struct {
	XPTotal           int                       `json:"xpTotal"`
	StreakCount       int                       `json:"streakCount"`
	LastCompletedDate *string                   `json:"lastCompletedDate"`
	Modules           map[string]ModuleProgress `json:"modules"`
	WeakQuestionIDs   []string                  `json:"weakQuestionIds"`
	LastSession       *wireLastSession          `json:"lastSession"`
}

type wireLastSession struct {
	SessionID       string                   `json:"sessionId,omitempty"`
	Mode            content.Mode             `json:"mode"`
	ModuleID        string                   `json:"moduleId"`
	SkillID         string                   `json:"skillId"`
	StartedAt       string                   `json:"startedAtISO"`
	CompletedAt     string                   `json:"completedAtISO"`
	QuestionResults []content.QuestionResult `json:"questionResults"`
}

// Encode serializes state to its persisted JSON form.
func Encode(state AppState) ([]byte, error) {
	w := wireState{
		XPTotal:         state.XPTotal,
		StreakCount:     state.StreakCount,
		Modules:         state.Modules,
		WeakQuestionIDs: state.WeakQuestionIDs,
	}
	if w.Modules == nil {
		w.Modules = map[string]ModuleProgress{}
	}
	if w.WeakQuestionIDs == nil {
		w.WeakQuestionIDs = []string{}
	}
	if state.LastCompletedDate != "" {
		d := state.LastCompletedDate
		w.LastCompletedDate = &d
	}
	if ls := state.LastSession; ls != nil {
		w.LastSession = &wireLastSession{
			SessionID:       ls.SessionID,
			Mode:            ls.Mode,
			ModuleID:        ls.ModuleID,
			SkillID:         ls.SkillID,
			StartedAt:       ls.StartedAt.UTC().Format(time.RFC3339Nano),
			CompletedAt:     ls.CompletedAt.UTC().Format(time.RFC3339Nano),
			QuestionResults: ls.QuestionResults,
		}
		if w.LastSession.QuestionResults == nil {
			w.LastSession.QuestionResults = []content.QuestionResult{}
		}
	}

	b, err := json.Marshal(w)
	if err != nil {
		return nil, fmt.Errorf("marshal state: %w", err)
	}
	return b, nil
}

// Decode rebuilds state from persisted bytes. It never fails: an unreadable
// snapshot yields DefaultState, and each missing or malformed field falls back
// to its default on its own. The returned notes describe every field that was
// present but unusable.
func Decode(raw []byte) (AppState, []string) {
	state := DefaultState()
	d := &decoder{}

	if len(bytes.TrimSpace(raw)) == 0 {
		return state, nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		d.note("snapshot", "not a JSON object")
		return state, d.notes
	}

	if v, ok := fields["xpTotal"]; ok {
		state.XPTotal = d.count("xpTotal", v)
	}
	if v, ok := fields["streakCount"]; ok {
		state.StreakCount = d.count("streakCount", v)
	}
	if v, ok := fields["lastCompletedDate"]; ok && !isNull(v) {
		var s string
		if err := json.Unmarshal(v, &s); err != nil || !scoring.ValidDate(s) {
			d.note("lastCompletedDate", "expected YYYY-MM-DD string")
		} else {
			state.LastCompletedDate = s
		}
	}
	if v, ok := fields["modules"]; ok {
		state.Modules = d.modules(v)
	}
	if v, ok := fields["weakQuestionIds"]; ok {
		state.WeakQuestionIDs = d.weakIDs(v)
	}
	if v, ok := fields["lastSession"]; ok && !isNull(v) {
		state.LastSession = d.lastSession(v)
	}

	return state, d.notes
}

// decoder accumulates notes about unusable fields.
type decoder struct {
	notes []string
}

func (d *decoder) note(field, problem string) {
	d.notes = append(d.notes, fmt.Sprintf("%s: %s", field, problem))
}

func isNull(raw json.RawMessage) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}

// number decodes a finite JSON number.
func number(raw json.RawMessage) (float64, bool) {
	if isNull(raw) {
		return 0, false
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// maxCount is the largest integer a JSON number (float64) holds exactly.
const maxCount = 1 << 53

// count decodes a non-negative number, truncated to an int.
func (d *decoder) count(field string, raw json.RawMessage) int {
	f, ok := number(raw)
	if !ok || f < 0 || f > maxCount {
		d.note(field, "expected non-negative number")
		return 0
	}
	return int(f)
}

func (d *decoder) object(field string, raw json.RawMessage) (map[string]json.RawMessage, bool) {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(raw, &m); err != nil || m == nil {
		d.note(field, "expected object")
		return nil, false
	}
	return m, true
}

func (d *decoder) modules(raw json.RawMessage) map[string]ModuleProgress {
	out := make(map[string]ModuleProgress)
	mods, ok := d.object("modules", raw)
	if !ok {
		return out
	}
	for moduleID, modRaw := range mods {
		field := "modules." + moduleID
		skills, ok := d.object(field, modRaw)
		if !ok {
			continue
		}
		if inner, ok := legacySkills(skills); ok {
			skills = inner
		}
		mp := make(ModuleProgress, len(skills))
		for skillID, skillRaw := range skills {
			modes, ok := d.object(field+"."+skillID, skillRaw)
			if !ok {
				continue
			}
			mp[skillID] = SkillModes{
				Learn:    d.skillProgress(field+"."+skillID+".learn", modes["learn"]),
				Practice: d.skillProgress(field+"."+skillID+".practice", modes["practice"]),
			}
		}
		out[moduleID] = mp
	}
	return out
}

// legacySkills unwraps the older {"skills": {...}} module shape. A real skill
// named "skills" is told apart by its learn/practice values being progress
// records rather than skills.
func legacySkills(module map[string]json.RawMessage) (map[string]json.RawMessage, bool) {
	raw, ok := module["skills"]
	if !ok || len(module) != 1 {
		return nil, false
	}
	var inner map[string]json.RawMessage
	if err := json.Unmarshal(raw, &inner); err != nil || inner == nil {
		return nil, false
	}
	if isProgressRecord(inner["learn"]) || isProgressRecord(inner["practice"]) {
		return nil, false
	}
	return inner, true
}

// isProgressRecord reports whether raw is an object carrying any
// SkillProgress key.
func isProgressRecord(raw json.RawMessage) bool {
	if raw == nil {
		return false
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(raw, &m); err != nil {
		return false
	}
	for _, k := range []string{"bestScore", "stars", "sessionsCompleted"} {
		if _, ok := m[k]; ok {
			return true
		}
	}
	return false
}

func (d *decoder) skillProgress(field string, raw json.RawMessage) SkillProgress {
	var p SkillProgress
	if raw == nil {
		return p
	}
	m, ok := d.object(field, raw)
	if !ok {
		return p
	}
	if v, ok := m["bestScore"]; ok {
		if f, ok := number(v); ok && f >= 0 && f <= 1 {
			p.BestScore = f
		} else {
			d.note(field+".bestScore", "expected number in [0,1]")
		}
	}
	if v, ok := m["stars"]; ok {
		if f, ok := number(v); ok && f >= 0 && f <= float64(scoring.MaxStars) && f == math.Trunc(f) {
			p.Stars = scoring.Stars(f)
		} else {
			d.note(field+".stars", "expected integer 0-3")
		}
	}
	if v, ok := m["sessionsCompleted"]; ok {
		p.SessionsCompleted = d.count(field+".sessionsCompleted", v)
	}
	return p
}

func (d *decoder) weakIDs(raw json.RawMessage) []string {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil || items == nil {
		d.note("weakQuestionIds", "expected array")
		return []string{}
	}
	ids := make([]string, 0, len(items))
	for _, item := range items {
		var id string
		if err := json.Unmarshal(item, &id); err != nil || isNull(item) {
			d.note("weakQuestionIds", "dropped non-string entry")
			continue
		}
		ids = append(ids, id)
	}
	return mergeWeakIDs(ids, nil, nil)
}

func (d *decoder) lastSession(raw json.RawMessage) *LastSession {
	m, ok := d.object("lastSession", raw)
	if !ok {
		return nil
	}

	rawMode, ok := m["mode"]
	if !ok || isNull(rawMode) {
		d.note("lastSession.mode", "missing; dropping last session")
		return nil
	}
	var mode string
	if err := json.Unmarshal(rawMode, &mode); err != nil {
		d.note("lastSession.mode", "expected string; dropping last session")
		return nil
	}
	parsed, err := content.ParseSessionMode(mode)
	if err != nil {
		d.note("lastSession.mode", fmt.Sprintf("expected learn or practice, got %q; dropping last session", mode))
		return nil
	}

	ls := &LastSession{Mode: parsed}
	ls.SessionID = d.str("lastSession.sessionId", m["sessionId"])
	ls.ModuleID = d.str("lastSession.moduleId", m["moduleId"])
	ls.SkillID = d.str("lastSession.skillId", m["skillId"])
	ls.StartedAt = d.timestamp("lastSession.startedAtISO", m["startedAtISO"])
	ls.CompletedAt = d.timestamp("lastSession.completedAtISO", m["completedAtISO"])
	ls.QuestionResults = d.results(m["questionResults"])
	return ls
}

func (d *decoder) str(field string, raw json.RawMessage) string {
	if raw == nil || isNull(raw) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		d.note(field, "expected string")
		return ""
	}
	return s
}

func (d *decoder) timestamp(field string, raw json.RawMessage) time.Time {
	s := d.str(field, raw)
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		d.note(field, "expected RFC 3339 timestamp")
		return time.Time{}
	}
	return t.UTC()
}

func (d *decoder) results(raw json.RawMessage) []content.QuestionResult {
	out := []content.QuestionResult{}
	if raw == nil || isNull(raw) {
		return out
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		d.note("lastSession.questionResults", "expected array")
		return out
	}
	for i, item := range items {
		field := fmt.Sprintf("lastSession.questionResults[%d]", i)
		m, ok := d.object(field, item)
		if !ok {
			continue
		}
		r := content.QuestionResult{QuestionID: d.str(field+".questionId", m["questionId"])}
		if v, ok := m["correct"]; ok {
			if err := json.Unmarshal(v, &r.Correct); err != nil {
				d.note(field+".correct", "expected boolean")
			}
		}
		r.UserAnswer = d.answer(field+".userAnswer", m["userAnswer"])
		r.CorrectAnswer = d.answer(field+".correctAnswer", m["correctAnswer"])
		out = append(out, r)
	}
	return out
}

func (d *decoder) answer(field string, raw json.RawMessage) content.Answer {
	var a content.Answer
	if raw == nil || isNull(raw) {
		return a
	}
	if err := json.Unmarshal(raw, &a); err != nil {
		d.note(field, "expected string or number")
		return content.Answer{}
	}
	return a
}
