package feedback

import (
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/bitmark-inc/feedback-api/schema"
	"github.com/bitmark-inc/feedback-api/store"
)

// duplicateWindow is how long a submitter has to wait before the same
// email is accepted again.
const duplicateWindow = 60 * time.Minute

var (
	ErrDuplicateSubmission = fmt.Errorf("feedback from this email was already submitted recently")
	ErrUnauthorized        = fmt.Errorf("admin secret mismatch")
)

// SubmissionMeta carries request-scoped metadata captured once at intake
// and never served back on any public surface.
type SubmissionMeta struct {
	IPAddress string
	UserAgent string
}

// Service composes the feedback lifecycle over the persistence layer:
// validation, duplicate suppression and auto-tagging in front of creation,
// and the admin secret gate in front of deletion.
type Service struct {
	mongoStore  store.Feedback
	adminSecret string
}

func NewService(mongoStore store.Feedback, adminSecret string) *Service {
	return &Service{
		mongoStore:  mongoStore,
		adminSecret: adminSecret,
	}
}

// Submit runs the full intake pipeline: validate, guard against repeat
// submissions inside the duplicate window, auto-tag, then create. The
// duplicate check and the create are not atomic: two concurrent
// submissions with the same email can both pass the check. This is an
// accepted spam-control tradeoff, not an idempotency guarantee.
func (s *Service) Submit(params SubmissionParams, meta SubmissionMeta) (*schema.Feedback, error) {
	entry, err := ValidateSubmission(params)
	if err != nil {
		return nil, err
	}

	recent, err := s.mongoStore.HasRecentFeedbackFrom(entry.Email, time.Now().UTC().Add(-duplicateWindow))
	if err != nil {
		return nil, err
	}
	if recent {
		return nil, ErrDuplicateSubmission
	}

	tags, escalate := AutoTag(entry.Message)
	entry.Tags = MergeTags(entry.Tags, tags)
	if escalate {
		entry.Priority = EscalatePriority(entry.Priority)
	}

	entry.IPAddress = meta.IPAddress
	entry.UserAgent = meta.UserAgent

	return s.mongoStore.CreateFeedback(*entry)
}

func (s *Service) List(filter store.FeedbackFilter, page, pageSize int64) (*store.FeedbackPage, error) {
	return s.mongoStore.ListFeedback(filter, page, pageSize)
}

func (s *Service) Get(id string) (*schema.Feedback, error) {
	return s.mongoStore.GetFeedback(id)
}

func (s *Service) Recent(limit int64) ([]schema.Feedback, error) {
	return s.mongoStore.RecentFeedback(limit)
}

func (s *Service) Stats() (*schema.FeedbackStats, error) {
	return s.mongoStore.FeedbackStats()
}

// Delete physically removes an entry after checking the presented admin
// secret in constant time. On a mismatch the store is never touched.
func (s *Service) Delete(id, presentedSecret string) error {
	if subtle.ConstantTimeCompare([]byte(presentedSecret), []byte(s.adminSecret)) != 1 {
		return ErrUnauthorized
	}

	return s.mongoStore.DeleteFeedback(id)
}
