package feedback

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/feedback-api/schema"
)

func validParams() SubmissionParams {
	return SubmissionParams{
		Name:    "Alice Chen",
		Email:   "alice@example.com",
		Message: "the new dashboard is great",
	}
}

func TestValidateSubmissionNormalizes(t *testing.T) {
	params := validParams()
	params.Email = "  Alice.Chen@Example.COM "
	params.Name = " Alice Chen "

	entry, err := ValidateSubmission(params)
	assert.NoError(t, err)
	assert.Equal(t, "alice.chen@example.com", entry.Email)
	assert.Equal(t, "Alice Chen", entry.Name)
	assert.Equal(t, 5, entry.Rating)
	assert.Equal(t, schema.FeedbackStatusNew, entry.Status)
	assert.Equal(t, schema.FeedbackPriorityMedium, entry.Priority)
	assert.True(t, entry.IsPublic)
	assert.Empty(t, entry.Tags)
}

func TestValidateSubmissionKeepsExplicitRating(t *testing.T) {
	params := validParams()
	params.Rating = 2

	entry, err := ValidateSubmission(params)
	assert.NoError(t, err)
	assert.Equal(t, 2, entry.Rating)
}

func TestValidateSubmissionCollectsAllViolations(t *testing.T) {
	_, err := ValidateSubmission(SubmissionParams{
		Name:    "A",
		Email:   "not-an-email",
		Message: "too short",
		Rating:  9,
	})

	validationErr, ok := err.(*ValidationError)
	assert.True(t, ok)
	assert.Equal(t, "Name must be at least 2 characters", validationErr.Message)
	assert.Equal(t, []string{
		"Name must be at least 2 characters",
		"Please provide a valid email address",
		"Message must be at least 10 characters",
		"Rating must be between 1 and 5",
	}, validationErr.Details)
}

func TestValidateSubmissionRequiredFields(t *testing.T) {
	_, err := ValidateSubmission(SubmissionParams{})

	validationErr, ok := err.(*ValidationError)
	assert.True(t, ok)
	assert.Equal(t, "Name is required", validationErr.Message)
	assert.Contains(t, validationErr.Details, "Email is required")
	assert.Contains(t, validationErr.Details, "Message is required")
	assert.NotContains(t, validationErr.Details, "Contact number is required")
}

func TestValidateSubmissionFieldBounds(t *testing.T) {
	params := validParams()
	params.Name = strings.Repeat("a", 101)
	_, err := ValidateSubmission(params)
	assert.EqualError(t, err, "Name cannot exceed 100 characters")

	params = validParams()
	params.Message = strings.Repeat("m", 1001)
	_, err = ValidateSubmission(params)
	assert.EqualError(t, err, "Message cannot exceed 1000 characters")
}

func TestValidateSubmissionEmailFormat(t *testing.T) {
	for _, email := range []string{"plain", "missing@tld", "two@@example.com", "dot@example.c", "space in@example.com"} {
		params := validParams()
		params.Email = email
		_, err := ValidateSubmission(params)
		assert.EqualError(t, err, "Please provide a valid email address", email)
	}

	for _, email := range []string{"a@b.co", "first.last@sub.example.org"} {
		params := validParams()
		params.Email = email
		_, err := ValidateSubmission(params)
		assert.NoError(t, err, email)
	}
}

// TestValidateContactNumberCharacterCount pins the contact number bound
// as a character count, not a digit count: a 10-character non-numeric
// value passes.
func TestValidateContactNumberCharacterCount(t *testing.T) {
	params := validParams()
	params.ContactNumber = "abcdefghij"
	_, err := ValidateSubmission(params)
	assert.NoError(t, err)

	params.ContactNumber = "123456789"
	_, err = ValidateSubmission(params)
	assert.EqualError(t, err, "Contact number must be at least 10 characters")

	params.ContactNumber = strings.Repeat("1", 21)
	_, err = ValidateSubmission(params)
	assert.EqualError(t, err, "Contact number cannot exceed 20 characters")
}
