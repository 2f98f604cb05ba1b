// Package extract parses control markers out of model output.
//
// The model annotates its replies with bracketed markers (memory
// intents, goal lifecycle, confirmations) and invisible end-of-line
// playbook commands. Extraction is a pure function over the text:
// every recognized marker is collected and stripped so the user only
// ever sees clean prose.
package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Visibility of a memory intent. Mirrors the memory store's visibility
// ladder: private < shared < global.
type Visibility string

const (
	VisibilityPrivate Visibility = "private"
	VisibilityShared  Visibility = "shared"
	VisibilityGlobal  Visibility = "global"
)

// MemoryIntent is a [REMEMBER…] marker: a fact the model wants stored.
type MemoryIntent struct {
	Content    string
	Visibility Visibility
}

// GoalIntent is a [GOAL…] marker with an optional deadline.
type GoalIntent struct {
	Content  string
	Deadline *time.Time
}

// Observation is a [MEMORY:…] corroboration marker.
type Observation struct {
	Type       string
	Confidence float64
	Content    string
}

// PlaybookCommand is an invisible ELLIE::COMMAND trailer.
type PlaybookCommand struct {
	Name string
	Args string
}

// Result is everything extracted from one model reply.
type Result struct {
	CleanedText   string
	Memories      []MemoryIntent
	Goals         []GoalIntent
	Completions   []string
	Observations  []Observation
	Confirmations []string
	Playbooks     []PlaybookCommand
}

const (
	defaultObservationType       = "finding"
	defaultObservationConfidence = 0.7
)

var (
	rememberRe = regexp.MustCompile(`(?is)\[REMEMBER(-PRIVATE|-GLOBAL)?:\s*(.*?)\]`)
	goalRe     = regexp.MustCompile(`(?is)\[GOAL:\s*(.*?)\]`)
	doneRe     = regexp.MustCompile(`(?is)\[DONE:\s*(.*?)\]`)
	memoryRe   = regexp.MustCompile(`(?is)\[MEMORY:\s*(.*?)\]`)
	confirmRe  = regexp.MustCompile(`(?is)\[CONFIRM:\s*(.*?)\]`)
	playbookRe = regexp.MustCompile(`(?m)ELLIE::([A-Za-z0-9_-]+)[ \t]*([^\n]*)$`)

	deadlineSplitRe = regexp.MustCompile(`(?i)\|\s*DEADLINE:\s*`)
	blankLinesRe    = regexp.MustCompile(`\n{3,}`)
)

// Parse extracts and strips all recognized markers from text.
func Parse(text string) Result {
	res := Result{}
	cleaned := text

	cleaned = rememberRe.ReplaceAllStringFunc(cleaned, func(m string) string {
		groups := rememberRe.FindStringSubmatch(m)
		content := strings.TrimSpace(groups[2])
		if content == "" {
			return ""
		}
		res.Memories = append(res.Memories, MemoryIntent{
			Content:    content,
			Visibility: visibilityFromSuffix(groups[1]),
		})
		return ""
	})

	cleaned = goalRe.ReplaceAllStringFunc(cleaned, func(m string) string {
		groups := goalRe.FindStringSubmatch(m)
		body := strings.TrimSpace(groups[1])
		if body == "" {
			return ""
		}
		res.Goals = append(res.Goals, parseGoal(body))
		return ""
	})

	cleaned = doneRe.ReplaceAllStringFunc(cleaned, func(m string) string {
		groups := doneRe.FindStringSubmatch(m)
		search := strings.TrimSpace(groups[1])
		if search == "" {
			return ""
		}
		res.Completions = append(res.Completions, search)
		return ""
	})

	cleaned = memoryRe.ReplaceAllStringFunc(cleaned, func(m string) string {
		groups := memoryRe.FindStringSubmatch(m)
		body := strings.TrimSpace(groups[1])
		if body == "" {
			return ""
		}
		res.Observations = append(res.Observations, parseObservation(body))
		return ""
	})

	cleaned = confirmRe.ReplaceAllStringFunc(cleaned, func(m string) string {
		groups := confirmRe.FindStringSubmatch(m)
		desc := strings.TrimSpace(groups[1])
		if desc == "" {
			return ""
		}
		res.Confirmations = append(res.Confirmations, desc)
		return ""
	})

	cleaned = playbookRe.ReplaceAllStringFunc(cleaned, func(m string) string {
		groups := playbookRe.FindStringSubmatch(m)
		res.Playbooks = append(res.Playbooks, PlaybookCommand{
			Name: groups[1],
			Args: strings.TrimSpace(groups[2]),
		})
		return ""
	})

	res.CleanedText = tidy(cleaned)
	return res
}

func visibilityFromSuffix(suffix string) Visibility {
	switch strings.ToUpper(suffix) {
	case "-PRIVATE":
		return VisibilityPrivate
	case "-GLOBAL":
		return VisibilityGlobal
	default:
		return VisibilityShared
	}
}

// parseGoal splits "content | DEADLINE: <iso>" into content and an
// optional deadline. Unparseable deadlines are kept as part of the
// content rather than silently dropped.
func parseGoal(body string) GoalIntent {
	parts := deadlineSplitRe.Split(body, 2)
	goal := GoalIntent{Content: strings.TrimSpace(parts[0])}
	if len(parts) == 2 {
		if t, ok := parseDeadline(strings.TrimSpace(parts[1])); ok {
			goal.Deadline = &t
		} else {
			goal.Content = body
		}
	}
	return goal
}

func parseDeadline(s string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseObservation handles the optional "type:" and "confidence:"
// prefixes of a [MEMORY:…] marker.
func parseObservation(body string) Observation {
	obs := Observation{
		Type:       defaultObservationType,
		Confidence: defaultObservationConfidence,
	}

	if head, rest, ok := strings.Cut(body, ":"); ok && isTypeToken(head) {
		obs.Type = strings.ToLower(strings.TrimSpace(head))
		body = strings.TrimSpace(rest)
	}
	if head, rest, ok := strings.Cut(body, ":"); ok {
		if conf, err := strconv.ParseFloat(strings.TrimSpace(head), 64); err == nil && conf >= 0 && conf <= 1 {
			obs.Confidence = conf
			body = strings.TrimSpace(rest)
		}
	}

	obs.Content = body
	return obs
}

// isTypeToken reports whether s looks like a type prefix rather than
// the opening words of free-form content.
func isTypeToken(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 32 {
		return false
	}
	for _, r := range s {
		if !(r == '_' || r == '-' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')) {
			return false
		}
	}
	return !strings.ContainsAny(s, " \t")
}

// tidy collapses the whitespace holes left behind by stripped markers.
func tidy(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		out = append(out, strings.TrimRight(line, " \t"))
	}
	s = strings.Join(out, "\n")
	s = blankLinesRe.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
