package memory

import "time"

// Metadata keys maintained by merge and flag operations.
const (
	metaAltSources         = "alt_sources"
	metaCorroborationCount = "corroboration_count"
	metaLastCorroboratedAt = "last_corroborated_at"
	metaNeedsReview        = "needs_review"
	metaConflictInfo       = "conflict_info"
)

// mergeCorroboration returns a copy of meta with the corroborating
// agent recorded: alt_sources accumulates deduped (excluding the
// row's primary agent), the corroboration count bumps, and the
// timestamp refreshes.
func mergeCorroboration(meta map[string]interface{}, primaryAgent, newAgent string, now time.Time) map[string]interface{} {
	out := cloneMeta(meta)

	if newAgent != primaryAgent {
		out[metaAltSources] = appendUnique(stringSlice(out[metaAltSources]), newAgent)
	}
	out[metaCorroborationCount] = intValue(out[metaCorroborationCount]) + 1
	out[metaLastCorroboratedAt] = now.UTC().Format(time.RFC3339)
	return out
}

// flagConflict returns a copy of meta marked for user review with the
// details of the colliding insert.
func flagConflict(meta map[string]interface{}, params InsertParams, similarity float64, reason string, now time.Time) map[string]interface{} {
	out := cloneMeta(meta)
	out[metaNeedsReview] = true
	out[metaConflictInfo] = map[string]interface{}{
		"new_content":      params.Content,
		"new_source_agent": params.SourceAgent,
		"new_visibility":   params.Visibility,
		"similarity":       similarity,
		"reason":           reason,
		"flagged_at":       now.UTC().Format(time.RFC3339),
	}
	return out
}

func cloneMeta(meta map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(meta)+3)
	for k, v := range meta {
		out[k] = v
	}
	return out
}

// stringSlice coerces a metadata value that may round-trip through
// JSON as []interface{}.
func stringSlice(v interface{}) []string {
	switch vv := v.(type) {
	case []string:
		return vv
	case []interface{}:
		out := make([]string, 0, len(vv))
		for _, item := range vv {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// intValue coerces a metadata count that may round-trip as float64.
func intValue(v interface{}) int {
	switch vv := v.(type) {
	case int:
		return vv
	case int64:
		return int(vv)
	case float64:
		return int(vv)
	default:
		return 0
	}
}

func appendUnique(list []string, item string) []string {
	for _, existing := range list {
		if existing == item {
			return list
		}
	}
	return append(list, item)
}
