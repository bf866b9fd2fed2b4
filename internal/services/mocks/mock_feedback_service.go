package mocks

import (
	"context"

	"github.com/BerylCAtieno/career-feedback-api/internal/models"

	"github.com/stretchr/testify/mock"
)

type MockFeedbackService struct {
	mock.Mock
}

func (m *MockFeedbackService) ReviewResume(ctx context.Context, req *models.DocumentReview) (*models.FeedbackResponse, error) {
	args := m.Called(ctx, req)
	if resp, ok := args.Get(0).(*models.FeedbackResponse); ok {
		return resp, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockFeedbackService) AskCareerGuidance(ctx context.Context, req *models.GuidanceQuery) (*models.GuidanceResponse, error) {
	args := m.Called(ctx, req)
	if resp, ok := args.Get(0).(*models.GuidanceResponse); ok {
		return resp, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockFeedbackService) MockInterviewFeedback(ctx context.Context, req *models.InterviewFeedback) (*models.FeedbackResponse, error) {
	args := m.Called(ctx, req)
	if resp, ok := args.Get(0).(*models.FeedbackResponse); ok {
		return resp, args.Error(1)
	}
	return nil, args.Error(1)
}
