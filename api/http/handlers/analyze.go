package handlers

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/atsmatch/api/http/presenter"
	"github.com/artem13815/atsmatch/pkg/analysis"
	"github.com/artem13815/atsmatch/pkg/resume"
	"github.com/artem13815/atsmatch/pkg/storage"
)

const (
	msgResumeRequired = "Resume PDF is required"
	msgNoSelectedFile = "No selected file"
	msgJobRequired    = "Job description is required"
)

type AnalyzeHandler struct {
	svc       analysis.UseCase
	store     storage.FileStore
	extractor resume.Extractor
	logger    *slog.Logger
	// Limit uploaded file size read into memory (bytes)
	maxBytes int64
	// retain keeps uploads in the store after the request.
	retain bool
}

type AnalyzeOptions struct {
	MaxBytes int64
	Retain   bool
	Logger   *slog.Logger
}

func NewAnalyzeHandler(svc analysis.UseCase, store storage.FileStore, extractor resume.Extractor, opts AnalyzeOptions) *AnalyzeHandler {
	if opts.MaxBytes <= 0 {
		opts.MaxBytes = 16 << 20
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &AnalyzeHandler{
		svc:       svc,
		store:     store,
		extractor: extractor,
		logger:    opts.Logger,
		maxBytes:  opts.MaxBytes,
		retain:    opts.Retain,
	}
}

// AnalyzeResponse carries the three generated texts. A failed generation is
// reported inline as "AI Error after N retries: ..." and listed in Warnings.
type AnalyzeResponse struct {
	ParsedResume         string   `json:"parsed_resume"`
	ParsedJobDescription string   `json:"parsed_job_description"`
	ATSResult            string   `json:"ats_result"`
	MatchPercentage      *int     `json:"match_percentage,omitempty"`
	Warnings             []string `json:"warnings,omitempty"`
}

// Analyze parses a resume and a job description and scores their match.
// @Summary Resume vs job description ATS analysis
// @Description Extracts the resume text, analyzes the resume and the job description, then produces a match score.
// @Tags    analysis
// @Accept  multipart/form-data
// @Produce json
// @Param   resume          formData file   true "Resume (PDF; DOCX and TXT are also read)"
// @Param   job_description formData string true "Job description text"
// @Success 200 {object} handlers.AnalyzeResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 413 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /analyze [post]
func (h *AnalyzeHandler) Analyze(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, msgResumeRequired)
	}
	files := form.File["resume"]
	if len(files) == 0 {
		// A file input submitted without a selection arrives as a plain field.
		if _, ok := form.Value["resume"]; ok {
			return presenter.Error(c, http.StatusBadRequest, msgNoSelectedFile)
		}
		return presenter.Error(c, http.StatusBadRequest, msgResumeRequired)
	}
	fh := files[0]
	if fh.Filename == "" {
		return presenter.Error(c, http.StatusBadRequest, msgNoSelectedFile)
	}
	var jobDescription string
	if v := form.Value["job_description"]; len(v) > 0 {
		jobDescription = v[0]
	}
	if jobDescription == "" {
		return presenter.Error(c, http.StatusBadRequest, msgJobRequired)
	}

	rep, err := h.run(c.Context(), fh, jobDescription)
	if err != nil {
		h.logger.Error("analyze request failed", slog.String("filename", fh.Filename), slog.Any("error", err))
		return presenter.Error(c, http.StatusInternalServerError, presenter.InternalError(err))
	}
	return presenter.JSON(c, http.StatusOK, AnalyzeResponse{
		ParsedResume:         rep.Resume.String(),
		ParsedJobDescription: rep.JobDescription.String(),
		ATSResult:            rep.Match.String(),
		MatchPercentage:      rep.MatchPercentage,
		Warnings:             rep.Warnings,
	})
}

// run stores the upload, extracts its text from the stored copy and runs the analysis.
func (h *AnalyzeHandler) run(ctx context.Context, fh *multipart.FileHeader, jobDescription string) (analysis.Report, error) {
	file, err := fh.Open()
	if err != nil {
		return analysis.Report{}, fmt.Errorf("open upload: %w", err)
	}
	defer file.Close()

	data, err := readAtMost(file, h.maxBytes)
	if err != nil {
		return analysis.Report{}, err
	}
	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/pdf"
	}

	key := storage.ObjectKey(fh.Filename)
	if err := h.store.Save(ctx, key, data, contentType); err != nil {
		return analysis.Report{}, err
	}
	if !h.retain {
		defer func() {
			if err := h.store.Delete(ctx, key); err != nil {
				h.logger.Warn("failed to remove upload", slog.String("key", key), slog.Any("error", err))
			}
		}()
	}
	stored, err := h.store.Load(ctx, key)
	if err != nil {
		return analysis.Report{}, err
	}

	ex := h.extractor.Extract(fh.Filename, stored)
	return h.svc.Analyze(ctx, analysis.Input{Resume: ex, JobDescription: jobDescription}), nil
}

func readAtMost(f multipart.File, max int64) ([]byte, error) {
	limited := io.LimitReader(f, max+1)
	b, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(b)) > max {
		return nil, fmt.Errorf("file too large: limit is %d bytes", max)
	}
	return b, nil
}
