package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"resumelens/internal/ai"
	"resumelens/internal/observability"
	"resumelens/internal/parser"
	"resumelens/internal/storage"
	"resumelens/internal/types"
)

// createTailorHandler wraps the tailor handler with observability.
// The AI returns only rewritten text; the tailored resume is re-parsed
// and re-scored by the local engines before the response goes out.
func (s *Server) createTailorHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("resumelens.api")
		ctx, span := tracer.Start(ctx, "api.tailor")
		defer span.End()

		// Parse request
		var req TailorRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		baseResume, session, errResp := s.resolveResumeText(ctx, req.SessionID, req.ResumeText)
		if errResp != nil {
			span.RecordError(fmt.Errorf("%s", errResp.Error))
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, errResp.Error, errResp.Message, http.StatusBadRequest)
			return
		}

		if strings.TrimSpace(req.JobDescription) == "" {
			err := fmt.Errorf("missing job description")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing job description", "jobDescription field is required", http.StatusBadRequest)
			return
		}

		// Size validation
		if len(baseResume) > int(s.MaxRequestSize/2) {
			err := fmt.Errorf("base resume too large: %d chars", len(baseResume))
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Base resume too large", fmt.Sprintf("resumeText exceeds recommended size limit of %d characters", s.MaxRequestSize/2), http.StatusBadRequest)
			return
		}
		if len(req.JobDescription) > int(s.MaxRequestSize/2) {
			err := fmt.Errorf("job description too large: %d chars", len(req.JobDescription))
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Job description too large", fmt.Sprintf("jobDescription exceeds recommended size limit of %d characters", s.MaxRequestSize/2), http.StatusBadRequest)
			return
		}

		// Add request attributes to span
		span.SetAttributes(
			attribute.Int("request.resume_length", len(baseResume)),
			attribute.Int("request.job_length", len(req.JobDescription)),
			attribute.String("operation", "tailor"),
		)

		input := types.TailorResumeInput{
			BaseResume:     baseResume,
			JobDescription: req.JobDescription,
		}

		// Create AI service for tailor operation
		tailorConfig := s.currentConfig().GetTailorConfig()
		aiService, err := ai.NewService(&tailorConfig, "tailor", s.Logger)
		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "service_creation"))
			writeErrorResponse(w, "Failed to create AI service", err.Error(), http.StatusInternalServerError)
			return
		}

		// Track AI operation with observability and token usage
		metrics := om.GetMetrics()
		var draft types.TailoredDraft
		err = metrics.TrackAIOperationWithTokens(ctx, "tailor", func(ctx context.Context) *observability.AIOperationResult {
			output, tokenUsage, aiErr := aiService.Provider.TailorResume(ctx, input)
			draft = output
			return &observability.AIOperationResult{
				Error:      aiErr,
				TokenUsage: (*observability.TokenUsage)(tokenUsage),
			}
		}, om)

		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "ai_processing"))
			metrics.RecordBusinessMetric(ctx, "resume_tailored", false, om,
				attribute.String("error", err.Error()))
			writeErrorResponse(w, "Failed to tailor resume", err.Error(), http.StatusInternalServerError)
			return
		}

		// Re-parse and re-score the tailored text locally
		var result types.TailorResumeOutput
		metrics.TrackPipelineOperation(ctx, "tailor_rescore", func(context.Context) {
			doc := parser.Parse(draft.TailoredResume)
			score := s.currentScorer().Score(draft.TailoredResume, req.JobDescription, &doc)
			result = types.TailorResumeOutput{
				TailoredResume: draft.TailoredResume,
				KeyChanges:     draft.KeyChanges,
				Document:       &doc,
				Score:          score,
			}
		})

		// Persist the tailored text when the request came from a session
		if session != nil {
			session.JobDescription = req.JobDescription
			session.TailoredContent = draft.TailoredResume
			if updateErr := s.Store.UpdateSession(ctx, session); updateErr != nil {
				s.Logger.Warn("Failed to persist tailored resume to session",
					"session_id", session.ID,
					"error", updateErr.Error())
			}
		}

		// Record success metrics
		metrics.RecordBusinessMetric(ctx, "resume_tailored", true, om,
			attribute.Int("output.tailored_length", len(result.TailoredResume)),
			attribute.Int("ats.score", result.Score.OverallScore))
		metrics.RecordScoreGrade(ctx, result.Score.Grade, om)

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("response.tailored_length", len(result.TailoredResume)),
			attribute.Int("ats.score", result.Score.OverallScore),
			attribute.String("ats.grade", result.Score.Grade),
		)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// resolveResumeText returns the resume text for a request that accepts
// either inline text or a session reference. The returned session is
// non-nil only when the text came from the store.
func (s *Server) resolveResumeText(ctx context.Context, sessionID, resumeText string) (string, *storage.ResumeSession, *ErrorResponse) {
	if strings.TrimSpace(resumeText) != "" {
		return resumeText, nil, nil
	}

	if strings.TrimSpace(sessionID) == "" {
		return "", nil, &ErrorResponse{
			Error:   "Missing resume",
			Message: "either resumeText or sessionId is required",
		}
	}

	id, err := uuid.Parse(sessionID)
	if err != nil {
		return "", nil, &ErrorResponse{
			Error:   "Invalid session ID",
			Message: fmt.Sprintf("sessionId is not a valid UUID: %s", sessionID),
		}
	}

	session, err := s.Store.GetSession(ctx, id)
	if err != nil {
		return "", nil, &ErrorResponse{
			Error:   "Session not found",
			Message: err.Error(),
		}
	}
	return session.OriginalContent, session, nil
}

// createRateLimitMiddleware adds observability to rate limiting
func (s *Server) createRateLimitMiddleware(om *observability.ObservabilityManager) func(http.HandlerFunc) http.HandlerFunc {
	originalMiddleware := s.rateLimitMiddleware()

	return func(next http.HandlerFunc) http.HandlerFunc {
		return originalMiddleware(func(w http.ResponseWriter, r *http.Request) {
			// Check if this request was rate limited by examining the response
			// We'll wrap the ResponseWriter to detect rate limit responses
			wrapper := &responseWrapper{ResponseWriter: w, statusCode: 200}

			next(wrapper, r)

			// If rate limited, record metric
			if wrapper.statusCode == http.StatusTooManyRequests {
				metrics := om.GetMetrics()
				metrics.RecordBusinessMetric(r.Context(), "rate_limit_hit", true, om,
					attribute.String("endpoint", r.URL.Path),
					attribute.String("method", r.Method))
			}
		})
	}
}

// responseWrapper wraps http.ResponseWriter to capture status code
type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWrapper) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
