package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/BerylCAtieno/career-feedback-api/internal/models"
	"github.com/BerylCAtieno/career-feedback-api/internal/services"
	"github.com/BerylCAtieno/career-feedback-api/internal/utils"
)

// ResumeField is the multipart field carrying the uploaded resume.
const ResumeField = "resume"

// multipartOverhead allows for boundaries and part headers on top of the file itself.
const multipartOverhead = 64 << 10

type FeedbackHandler struct {
	service     services.FeedbackService
	logger      *utils.Logger
	maxFileSize int64
}

func NewFeedbackHandler(service services.FeedbackService, logger *utils.Logger, maxFileSize int64) *FeedbackHandler {
	return &FeedbackHandler{
		service:     service,
		logger:      logger,
		maxFileSize: maxFileSize,
	}
}

func (h *FeedbackHandler) ReviewResume(w http.ResponseWriter, r *http.Request) {
	limit := h.maxFileSize + multipartOverhead

	// Reject oversized requests before reading the body
	if r.ContentLength > limit {
		h.respondError(w, h.tooLarge())
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, limit)

	req := &models.DocumentReview{}

	if err := r.ParseMultipartForm(h.maxFileSize); err != nil {
		if isTooLarge(err) {
			h.respondError(w, h.tooLarge())
			return
		}
		// Not a multipart body; the service reports the missing file
		h.logger.Debug("Unparseable review form", "error", err)
	} else {
		defer r.MultipartForm.RemoveAll()
	}

	if r.MultipartForm != nil {
		file, header, err := r.FormFile(ResumeField)
		switch {
		case err == nil:
			defer file.Close()
			if header.Size > h.maxFileSize {
				h.respondError(w, h.tooLarge())
				return
			}
			req = documentReview(file, header)
		case errors.Is(err, http.ErrMissingFile):
		default:
			h.logger.Debug("Failed to open uploaded resume", "error", err)
		}
	}

	resp, err := h.service.ReviewResume(r.Context(), req)
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, resp)
}

func (h *FeedbackHandler) AskCareerGuidance(w http.ResponseWriter, r *http.Request) {
	var req models.GuidanceQuery
	if err := h.decodeJSON(w, r, &req); err != nil {
		req = models.GuidanceQuery{}
	}

	resp, err := h.service.AskCareerGuidance(r.Context(), &req)
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, resp)
}

func (h *FeedbackHandler) MockInterviewFeedback(w http.ResponseWriter, r *http.Request) {
	var req models.InterviewFeedback
	if err := h.decodeJSON(w, r, &req); err != nil {
		req = models.InterviewFeedback{}
	}

	resp, err := h.service.MockInterviewFeedback(r.Context(), &req)
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, resp)
}

// decodeJSON fills dst from the body. Callers treat a malformed body as missing
// input and let the service report it.
func (h *FeedbackHandler) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxFileSize)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.logger.Debug("Malformed JSON body", "error", err, "path", r.URL.Path)
		return err
	}
	return nil
}

func (h *FeedbackHandler) tooLarge() *utils.AppError {
	return utils.NewBadRequestError(fmt.Sprintf("File size exceeds %dMB limit", h.maxFileSize>>20))
}

func isTooLarge(err error) bool {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return true
	}
	return strings.Contains(err.Error(), "request body too large")
}

func documentReview(file multipart.File, header *multipart.FileHeader) *models.DocumentReview {
	return &models.DocumentReview{
		Document:    file,
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
	}
}

func (h *FeedbackHandler) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode JSON response", "error", err)
	}
}

func (h *FeedbackHandler) respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "Internal server error"

	if appErr, ok := utils.AsAppError(err); ok {
		status = appErr.StatusCode
		message = appErr.Message
	}

	if status >= http.StatusInternalServerError {
		h.logger.Error("Request error", "status", status, "error", err)
	} else {
		h.logger.Warn("Request rejected", "status", status, "error", err)
	}

	h.respondJSON(w, status, models.ErrorResponse{Error: message})
}
