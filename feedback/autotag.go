package feedback

import (
	"strings"

	"github.com/bitmark-inc/feedback-api/schema"
)

type tagRule struct {
	keywords []string
	tag      string
	escalate bool
}

// tagRules are evaluated independently; a message may match several.
var tagRules = []tagRule{
	{keywords: []string{"bug", "error", "issue"}, tag: "bug-report", escalate: true},
	{keywords: []string{"feature", "suggestion", "improve"}, tag: "feature-request"},
	{keywords: []string{"app", "mobile"}, tag: "mobile-app"},
	{keywords: []string{"device", "iot", "hardware"}, tag: "hardware"},
	{keywords: []string{"great", "awesome", "love"}, tag: "positive"},
	{keywords: []string{"problem", "difficult", "hate"}, tag: "negative", escalate: true},
}

// AutoTag derives category tags from a message by case-insensitive
// substring matching and reports whether the matches call for a priority
// escalation. It runs once at creation time and is never re-applied on
// update.
func AutoTag(message string) ([]string, bool) {
	lowered := strings.ToLower(message)

	tags := []string{}
	escalate := false
	for _, rule := range tagRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lowered, keyword) {
				tags = append(tags, rule.tag)
				if rule.escalate {
					escalate = true
				}
				break
			}
		}
	}

	return tags, escalate
}

// MergeTags unions caller-supplied and derived tags, deduplicated,
// preserving first-insertion order.
func MergeTags(existing, derived []string) []string {
	merged := []string{}
	seen := map[string]struct{}{}
	for _, tag := range append(append([]string{}, existing...), derived...) {
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		merged = append(merged, tag)
	}

	return merged
}

// EscalatePriority raises a priority to high. An already-urgent entry is
// never downgraded.
func EscalatePriority(p schema.FeedbackPriority) schema.FeedbackPriority {
	if p == schema.FeedbackPriorityUrgent {
		return p
	}
	return schema.FeedbackPriorityHigh
}
