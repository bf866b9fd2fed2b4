// Package prompt builds the instruction sent to the inference service for each
// operation. Every function is pure: the same input always yields the same bytes.
package prompt

import (
	"fmt"

	"github.com/BerylCAtieno/career-feedback-api/internal/models"
)

const resumeReviewTemplate = `Review this resume and provide constructive feedback to help improve it for software engineering roles.

Here is the resume content:
"""
%s
"""
`

const careerGuidanceTemplate = `
You are a professional career guidance chatbot.

Given the following user question, offer tailored guidance:

User Question:
"%s"

Respond with:
1. Recommended Career Paths
2. Required Skills to Acquire
3. Month-by-Month Learning Roadmap (6 months)
4. Useful Online Resources (include links if possible)

Respond clearly and concisely. Add some friendly words, and feel like chatting with a career friend.
`

const interviewFeedbackTemplate = `
You are an experienced interviewer.
Analyze the following response to the interview question and provide detailed constructive feedback.

Question: "%s"
Answer: "%s"

Your feedback should help the candidate improve.
`

func ResumeReview(resumeText string) string {
	return fmt.Sprintf(resumeReviewTemplate, resumeText)
}

func CareerGuidance(query string) string {
	return fmt.Sprintf(careerGuidanceTemplate, query)
}

func InterviewFeedback(question, answer string) string {
	return fmt.Sprintf(interviewFeedbackTemplate, question, answer)
}

// Compose selects the template by request variant. For a DocumentReview the
// extracted text is passed separately; it is ignored for the other variants.
func Compose(req models.ReviewRequest, extractedText string) string {
	switch r := req.(type) {
	case *models.DocumentReview:
		return ResumeReview(extractedText)
	case *models.GuidanceQuery:
		return CareerGuidance(r.Query)
	case *models.InterviewFeedback:
		return InterviewFeedback(r.Question, r.Answer)
	default:
		// ReviewRequest is sealed; this is unreachable.
		panic(fmt.Sprintf("prompt: unknown request type %T", req))
	}
}
