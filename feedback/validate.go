package feedback

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/bitmark-inc/feedback-api/schema"
)

// defaultRating is assumed when a submission leaves the rating out.
const defaultRating = 5

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[A-Za-z]{2,}$`)

// ValidationError collects every field violation of a submission. Message
// carries the first offending field's text; Details keeps the full list.
type ValidationError struct {
	Message string
	Details []string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// SubmissionParams are the user-supplied fields of an inbound submission.
// A zero Rating means the field was absent.
type SubmissionParams struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	ContactNumber string `json:"contact_number"`
	Message       string `json:"message"`
	Rating        int    `json:"rating"`
}

// fieldRule is one declarative field constraint. Checks apply in a fixed
// precedence: required, then format, then minimum, then maximum length,
// reporting only the first failure per field.
type fieldRule struct {
	label      string
	required   bool
	pattern    *regexp.Regexp
	patternMsg string
	minLen     int
	maxLen     int
}

var submissionRules = []fieldRule{
	{label: "Name", required: true, minLen: 2, maxLen: 100},
	{label: "Email", required: true, pattern: emailPattern, patternMsg: "Please provide a valid email address"},
	// The bounds count characters, not digits, so a 10-character
	// non-numeric value passes.
	{label: "Contact number", minLen: 10, maxLen: 20},
	{label: "Message", required: true, minLen: 10, maxLen: 1000},
}

func checkField(value string, rule fieldRule) string {
	if value == "" {
		if rule.required {
			return fmt.Sprintf("%s is required", rule.label)
		}
		return ""
	}

	if rule.pattern != nil && !rule.pattern.MatchString(value) {
		return rule.patternMsg
	}

	if rule.minLen > 0 && len(value) < rule.minLen {
		return fmt.Sprintf("%s must be at least %d characters", rule.label, rule.minLen)
	}

	if rule.maxLen > 0 && len(value) > rule.maxLen {
		return fmt.Sprintf("%s cannot exceed %d characters", rule.label, rule.maxLen)
	}

	return ""
}

// ValidateSubmission checks every field of a candidate submission and
// either returns the normalized record to be created or a ValidationError
// carrying all violations. Normalization trims every field and lowercases
// the email.
func ValidateSubmission(params SubmissionParams) (*schema.Feedback, error) {
	values := []string{
		strings.TrimSpace(params.Name),
		strings.ToLower(strings.TrimSpace(params.Email)),
		strings.TrimSpace(params.ContactNumber),
		strings.TrimSpace(params.Message),
	}

	violations := []string{}
	for i, rule := range submissionRules {
		if msg := checkField(values[i], rule); msg != "" {
			violations = append(violations, msg)
		}
	}

	if params.Rating != 0 && (params.Rating < 1 || params.Rating > 5) {
		violations = append(violations, "Rating must be between 1 and 5")
	}

	if len(violations) > 0 {
		return nil, &ValidationError{
			Message: violations[0],
			Details: violations,
		}
	}

	rating := params.Rating
	if rating == 0 {
		rating = defaultRating
	}

	return &schema.Feedback{
		Name:          values[0],
		Email:         values[1],
		ContactNumber: values[2],
		Message:       values[3],
		Rating:        rating,
		Status:        schema.FeedbackStatusNew,
		Priority:      schema.FeedbackPriorityMedium,
		IsPublic:      true,
		Tags:          []string{},
	}, nil
}
