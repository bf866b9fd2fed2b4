package services

import (
	"context"
	"time"

	"github.com/BerylCAtieno/career-feedback-api/internal/config"
	"github.com/BerylCAtieno/career-feedback-api/internal/extractor"
	"github.com/BerylCAtieno/career-feedback-api/internal/inference"
	"github.com/BerylCAtieno/career-feedback-api/internal/models"
	"github.com/BerylCAtieno/career-feedback-api/internal/prompt"
	"github.com/BerylCAtieno/career-feedback-api/internal/storage"
	"github.com/BerylCAtieno/career-feedback-api/internal/utils"
)

// releaseTimeout bounds cleanup, which runs detached from the request context.
const releaseTimeout = 10 * time.Second

// Caller-facing errors. Causes are attached with WithCause and never reach the response body.
var (
	errNoResume        = utils.NewBadRequestError("No resume file uploaded.")
	errReviewFailed    = utils.NewInternalError("Failed to process resume.")
	errMissingQuery    = utils.NewBadRequestError("Missing resume or query.")
	errGuidanceFailed  = utils.NewInternalError("Something went wrong with the chatbot.")
	errMissingAnswer   = utils.NewBadRequestError("Question and answer are required")
	errInterviewFailed = utils.NewInternalError("Failed to get feedback from AI.")
)

type FeedbackService interface {
	ReviewResume(ctx context.Context, req *models.DocumentReview) (*models.FeedbackResponse, error)
	AskCareerGuidance(ctx context.Context, req *models.GuidanceQuery) (*models.GuidanceResponse, error)
	MockInterviewFeedback(ctx context.Context, req *models.InterviewFeedback) (*models.FeedbackResponse, error)
}

type feedbackService struct {
	storage   storage.Storage
	extractor extractor.Extractor
	generator inference.Generator
	modelIDs  config.Models
	metrics   *Metrics
	logger    *utils.Logger
}

func NewService(
	store storage.Storage,
	textExtractor extractor.Extractor,
	generator inference.Generator,
	modelIDs config.Models,
	metrics *Metrics,
	logger *utils.Logger,
) FeedbackService {
	return &feedbackService{
		storage:   store,
		extractor: textExtractor,
		generator: generator,
		modelIDs:  modelIDs,
		metrics:   metrics,
		logger:    logger,
	}
}

func (s *feedbackService) ReviewResume(ctx context.Context, req *models.DocumentReview) (*models.FeedbackResponse, error) {
	outcome := OutcomeInternalError
	defer func() { s.metrics.observe(OperationReview, outcome) }()

	if err := req.Validate(); err != nil {
		outcome = OutcomeMissingInput
		return nil, errNoResume.WithCause(err)
	}

	doc, err := s.storage.Acquire(ctx, req.Document, req.Filename, req.ContentType, req.Size)
	if err != nil {
		s.logger.Error("Failed to store upload", "error", err, "filename", req.Filename)
		return nil, errReviewFailed.WithCause(err)
	}
	defer s.release(ctx, doc)

	data, err := s.storage.Open(ctx, doc)
	if err != nil {
		s.logger.Error("Failed to read upload", "error", err, "handle", doc.Handle)
		return nil, errReviewFailed.WithCause(err)
	}

	text, err := s.extractor.Extract(data)
	if err != nil {
		s.logger.Error("Failed to extract text",
			"error", err,
			"handle", doc.Handle,
			"format", extractor.Detect(data),
			"size", doc.Size,
			"content_type", doc.ContentType)
		outcome = OutcomeExtractionFailed
		return nil, errReviewFailed.WithCause(err)
	}

	feedback, err := s.generate(ctx, OperationReview, s.modelIDs.Review, prompt.Compose(req, text))
	if err != nil {
		outcome = OutcomeInferenceFailed
		return nil, errReviewFailed.WithCause(err)
	}
	outcome = OutcomeSuccess

	s.logger.Info("Resume reviewed",
		"handle", doc.Handle,
		"size", doc.Size,
		"text_length", len(text),
		"feedback_length", len(feedback))

	return &models.FeedbackResponse{Feedback: feedback}, nil
}

func (s *feedbackService) AskCareerGuidance(ctx context.Context, req *models.GuidanceQuery) (*models.GuidanceResponse, error) {
	outcome := OutcomeInternalError
	defer func() { s.metrics.observe(OperationGuidance, outcome) }()

	if err := req.Validate(); err != nil {
		outcome = OutcomeMissingInput
		return nil, errMissingQuery.WithCause(err)
	}

	answer, err := s.generate(ctx, OperationGuidance, s.modelIDs.Guidance, prompt.Compose(req, ""))
	if err != nil {
		outcome = OutcomeInferenceFailed
		return nil, errGuidanceFailed.WithCause(err)
	}
	outcome = OutcomeSuccess

	return &models.GuidanceResponse{Message: answer}, nil
}

func (s *feedbackService) MockInterviewFeedback(ctx context.Context, req *models.InterviewFeedback) (*models.FeedbackResponse, error) {
	outcome := OutcomeInternalError
	defer func() { s.metrics.observe(OperationInterview, outcome) }()

	if err := req.Validate(); err != nil {
		outcome = OutcomeMissingInput
		return nil, errMissingAnswer.WithCause(err)
	}

	feedback, err := s.generate(ctx, OperationInterview, s.modelIDs.Interview, prompt.Compose(req, ""))
	if err != nil {
		outcome = OutcomeInferenceFailed
		return nil, errInterviewFailed.WithCause(err)
	}
	outcome = OutcomeSuccess

	return &models.FeedbackResponse{Feedback: feedback}, nil
}

// generate runs inference for op and logs its timing.
func (s *feedbackService) generate(ctx context.Context, op, model, promptText string) (string, error) {
	start := time.Now()

	completion, err := s.generator.Generate(ctx, model, promptText)
	if err != nil {
		s.logger.Error("Inference failed",
			"error", err,
			"operation", op,
			"model", model,
			"prompt_length", len(promptText),
			"elapsed_ms", time.Since(start).Milliseconds())
		return "", err
	}

	s.logger.Info("Inference succeeded",
		"operation", op,
		"model", model,
		"prompt_length", len(promptText),
		"elapsed_ms", time.Since(start).Milliseconds())
	return completion, nil
}

// release deletes doc. Failures are logged and counted, never returned.
func (s *feedbackService) release(ctx context.Context, doc *models.UploadedDocument) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), releaseTimeout)
	defer cancel()

	if err := s.storage.Release(ctx, doc); err != nil {
		s.metrics.cleanupFailed()
		s.logger.Error("Failed to delete temporary document", "error", err, "handle", doc.Handle)
	}
}
