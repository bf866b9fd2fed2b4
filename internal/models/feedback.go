package models

import (
	"errors"
	"io"
	"strings"
)

// ErrMissingInput marks a request whose required fields are absent or empty.
var ErrMissingInput = errors.New("missing required input")

// UploadedDocument is one received payload held in the temporary store for the
// lifetime of a single request.
type UploadedDocument struct {
	Handle      string
	Filename    string
	ContentType string
	Size        int64
}

// ReviewRequest is implemented by the three operation variants. The method set is
// sealed so no other package can add a variant.
type ReviewRequest interface {
	Validate() error
	isReviewRequest()
}

type DocumentReview struct {
	Document    io.Reader
	Filename    string
	ContentType string
	Size        int64
}

type GuidanceQuery struct {
	Query string `json:"query"`
}

type InterviewFeedback struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

func (r *DocumentReview) Validate() error {
	if r == nil || r.Document == nil || r.Size <= 0 {
		return ErrMissingInput
	}
	return nil
}

func (r *GuidanceQuery) Validate() error {
	if r == nil || blank(r.Query) {
		return ErrMissingInput
	}
	return nil
}

func (r *InterviewFeedback) Validate() error {
	if r == nil || blank(r.Question) || blank(r.Answer) {
		return ErrMissingInput
	}
	return nil
}

func (*DocumentReview) isReviewRequest()    {}
func (*GuidanceQuery) isReviewRequest()     {}
func (*InterviewFeedback) isReviewRequest() {}

// blank treats whitespace-only input as absent.
func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

type FeedbackResponse struct {
	Feedback string `json:"feedback"`
}

type GuidanceResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
