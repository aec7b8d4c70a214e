package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"resumelens/internal/extract"
	"resumelens/internal/observability"
	"resumelens/internal/parser"
	"resumelens/internal/render"
	"resumelens/internal/storage"
	"resumelens/internal/types"
)

// createParseHandler wraps the parse handler with observability
func (s *Server) createParseHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("resumelens.api")
		ctx, span := tracer.Start(ctx, "api.parse")
		defer span.End()

		var req ParseRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if strings.TrimSpace(req.ResumeText) == "" {
			err := fmt.Errorf("missing resume text")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing resume text", "resumeText field is required", http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.Int("request.resume_length", len(req.ResumeText)),
			attribute.String("operation", "parse"),
		)

		metrics := om.GetMetrics()
		var doc types.ParsedResume
		metrics.TrackPipelineOperation(ctx, "parse", func(context.Context) {
			doc = parser.Parse(req.ResumeText)
		})

		metrics.RecordBusinessMetric(ctx, "resume_parsed", true, om,
			attribute.Int("document.sections", len(doc.Sections)))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("response.sections", len(doc.Sections)),
		)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(doc); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// createScoreHandler wraps the score handler with observability
func (s *Server) createScoreHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("resumelens.api")
		ctx, span := tracer.Start(ctx, "api.score")
		defer span.End()

		var req ScoreRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if strings.TrimSpace(req.ResumeText) == "" {
			err := fmt.Errorf("missing resume text")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing resume text", "resumeText field is required", http.StatusBadRequest)
			return
		}

		if strings.TrimSpace(req.JobDescription) == "" {
			err := fmt.Errorf("missing job description")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing job description", "jobDescription field is required", http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.Int("request.resume_length", len(req.ResumeText)),
			attribute.Int("request.job_length", len(req.JobDescription)),
			attribute.String("operation", "score"),
		)

		metrics := om.GetMetrics()
		var result types.ScoreResumeOutput
		metrics.TrackPipelineOperation(ctx, "score", func(context.Context) {
			doc := parser.Parse(req.ResumeText)
			score := s.currentScorer().Score(req.ResumeText, req.JobDescription, &doc)
			result = types.ScoreResumeOutput{Document: &doc, Score: score}
		})

		metrics.RecordBusinessMetric(ctx, "resume_scored", true, om,
			attribute.Int("ats.score", result.Score.OverallScore),
			attribute.String("ats.grade", result.Score.Grade))
		metrics.RecordScoreGrade(ctx, result.Score.Grade, om)

		span.SetAttributes(
			attribute.Bool("success", true),
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

// createUploadHandler wraps the upload handler with observability.
// Uploaded PDF/DOCX/text files are converted to plain text and stored
// as a new session; the file bytes themselves are discarded.
func (s *Server) createUploadHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("resumelens.api")
		ctx, span := tracer.Start(ctx, "api.upload")
		defer span.End()

		if r.Method != http.MethodPost {
			writeErrorResponse(w, "Method not allowed", "POST is required for this endpoint", http.StatusMethodNotAllowed)
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing file", "multipart field 'file' is required", http.StatusBadRequest)
			return
		}
		defer func() { _ = file.Close() }()

		data, err := io.ReadAll(file)
		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "read"))
			writeErrorResponse(w, "Failed to read file", err.Error(), http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.String("upload.filename", header.Filename),
			attribute.Int("upload.size_bytes", len(data)),
			attribute.String("operation", "upload"),
		)

		text, err := extract.FromBytes(header.Filename, data)
		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "extraction"))
			writeErrorResponse(w, "Failed to extract text", err.Error(), http.StatusUnprocessableEntity)
			return
		}

		session := &storage.ResumeSession{
			FileName:        header.Filename,
			OriginalContent: text,
		}
		if err := s.Store.CreateSession(ctx, session); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "storage"))
			writeErrorResponse(w, "Failed to create session", err.Error(), http.StatusInternalServerError)
			return
		}

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.String("session.id", session.ID.String()),
			attribute.Int("response.text_length", len(text)),
		)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(session); err != nil {
			span.RecordError(err)
		}
	}
}

// createRenderHandler wraps the render handler with observability
func (s *Server) createRenderHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("resumelens.api")
		ctx, span := tracer.Start(ctx, "api.render")
		defer span.End()

		var req RenderRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		resumeText, _, errResp := s.resolveRenderText(ctx, req)
		if errResp != nil {
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, errResp.Error, errResp.Message, http.StatusBadRequest)
			return
		}

		renderCfg := s.currentConfig().Render
		style := types.RenderStyle(req.Style)
		if style == "" {
			style = types.RenderStyle(renderCfg.DefaultStyle)
		}
		if style != types.StyleProfessional && style != types.StyleModern {
			err := fmt.Errorf("invalid render style: %s", style)
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid style", "style must be 'professional' or 'modern'", http.StatusBadRequest)
			return
		}

		renderer, err := render.ForFormat(req.Format, renderCfg, s.Logger)
		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid format", err.Error(), http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.String("render.format", req.Format),
			attribute.String("render.style", string(style)),
			attribute.String("operation", "render"),
		)

		var output []byte
		var renderErr error
		metrics := om.GetMetrics()
		metrics.TrackPipelineOperation(ctx, "render", func(context.Context) {
			doc := parser.Parse(resumeText)
			output, renderErr = renderer.Render(&doc, style)
		})
		if renderErr != nil {
			span.RecordError(renderErr)
			span.SetAttributes(attribute.String("error.type", "render"))
			metrics.RecordBusinessMetric(ctx, "resume_rendered", false, om,
				attribute.String("render.format", req.Format),
				attribute.String("error", renderErr.Error()))
			writeErrorResponse(w, "Failed to render resume", renderErr.Error(), http.StatusInternalServerError)
			return
		}

		metrics.RecordBusinessMetric(ctx, "resume_rendered", true, om,
			attribute.String("render.format", req.Format),
			attribute.Int("output.size_bytes", len(output)))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("response.size_bytes", len(output)),
		)

		w.Header().Set("Content-Type", render.ContentType(req.Format))
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"resume.%s\"", req.Format))
		if _, err := w.Write(output); err != nil {
			span.RecordError(err)
		}
	}
}

// resolveRenderText prefers tailored content over the original upload
// when rendering from a session.
func (s *Server) resolveRenderText(ctx context.Context, req RenderRequest) (string, *storage.ResumeSession, *ErrorResponse) {
	if strings.TrimSpace(req.ResumeText) != "" {
		return req.ResumeText, nil, nil
	}

	text, session, errResp := s.resolveResumeText(ctx, req.SessionID, req.ResumeText)
	if errResp != nil {
		return "", nil, errResp
	}
	if session != nil && strings.TrimSpace(session.TailoredContent) != "" {
		return session.TailoredContent, session, nil
	}
	return text, session, nil
}

// createSessionHandler serves GET /session/{id} and GET /session/
func (s *Server) createSessionHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("resumelens.api")
		ctx, span := tracer.Start(ctx, "api.session")
		defer span.End()

		if r.Method != http.MethodGet {
			writeErrorResponse(w, "Method not allowed", "GET is required for this endpoint", http.StatusMethodNotAllowed)
			return
		}

		idStr := strings.TrimPrefix(r.URL.Path, "/session/")
		if idStr == "" {
			sessions, err := s.Store.ListSessions(ctx)
			if err != nil {
				span.RecordError(err)
				writeErrorResponse(w, "Failed to list sessions", err.Error(), http.StatusInternalServerError)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			if err := json.NewEncoder(w).Encode(sessions); err != nil {
				span.RecordError(err)
			}
			return
		}

		id, err := uuid.Parse(idStr)
		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid session ID", fmt.Sprintf("session ID is not a valid UUID: %s", idStr), http.StatusBadRequest)
			return
		}

		session, err := s.Store.GetSession(ctx, id)
		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "not_found"))
			writeErrorResponse(w, "Session not found", err.Error(), http.StatusNotFound)
			return
		}

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.String("session.id", session.ID.String()),
		)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(session); err != nil {
			span.RecordError(err)
		}
	}
}
