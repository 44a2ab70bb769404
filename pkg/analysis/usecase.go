package analysis

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/artem13815/atsmatch/pkg/llm"
	"github.com/artem13815/atsmatch/pkg/resume"
)

// Generator produces one generation result per prompt. *llm.Resilient implements it.
type Generator interface {
	Generate(ctx context.Context, p llm.Prompt) llm.Result
}

// UseCase runs the resume / job description / match pipeline.
type UseCase interface {
	Analyze(ctx context.Context, in Input) Report
}

// Options tune the pipeline.
type Options struct {
	// Parallel runs the resume and job description stages concurrently.
	// The match stage always waits for both.
	Parallel bool
	Logger   *slog.Logger
}

type service struct {
	gen      Generator
	parallel bool
	logger   *slog.Logger
}

func NewService(gen Generator, opts Options) UseCase {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &service{gen: gen, parallel: opts.Parallel, logger: logger}
}

func (s *service) Analyze(ctx context.Context, in Input) Report {
	var rep Report
	if in.Resume.Empty() {
		rep.Warnings = append(rep.Warnings, emptyResumeWarning(in.Resume))
	}

	resumeP := llm.Prompt{Text: resumePrompt(in.Resume.Text), SystemInstruction: recruiterInstruction}
	jobP := llm.Prompt{Text: jobPrompt(in.JobDescription), SystemInstruction: recruiterInstruction}

	if s.parallel {
		var g errgroup.Group
		g.Go(func() error {
			rep.Resume = s.gen.Generate(ctx, resumeP)
			return nil
		})
		g.Go(func() error {
			rep.JobDescription = s.gen.Generate(ctx, jobP)
			return nil
		})
		_ = g.Wait()
	} else {
		rep.Resume = s.gen.Generate(ctx, resumeP)
		rep.JobDescription = s.gen.Generate(ctx, jobP)
	}

	// Failed stages are embedded as their terminal error line.
	rep.Match = s.gen.Generate(ctx, llm.Prompt{
		Text:              matchPrompt(rep.Resume.String(), rep.JobDescription.String()),
		SystemInstruction: atsInstruction,
	})

	for _, st := range []struct {
		name string
		res  llm.Result
	}{
		{"resume analysis", rep.Resume},
		{"job description analysis", rep.JobDescription},
		{"match scoring", rep.Match},
	} {
		if !st.res.OK() {
			rep.Warnings = append(rep.Warnings, fmt.Sprintf("%s failed: %v", st.name, st.res.Err))
		}
	}
	if rep.Match.OK() {
		rep.MatchPercentage = ParseMatchPercentage(rep.Match.Text)
	}

	s.logger.Info("analysis finished",
		slog.Bool("degraded", rep.Degraded()),
		slog.Int("resume_chars", len(in.Resume.Text)),
		slog.Int("job_description_chars", len(in.JobDescription)))
	return rep
}

func emptyResumeWarning(ex resume.Extraction) string {
	if ex.Err != nil {
		return fmt.Sprintf("resume text could not be extracted: %v", ex.Err)
	}
	return "resume contains no extractable text"
}
