package bioflow

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Flow wires the four role stages, the session service, and the runner into
// one reviewed biography workflow. A Flow owns exactly one session; create a
// fresh Flow (hence a fresh session id) for each concurrent logical request.
type Flow struct {
	appName string
	userID  string

	model           LLMProvider
	researcherModel LLMProvider
	answererModel   LLMProvider
	reviewerModel   LLMProvider
	refinerModel    LLMProvider

	searcher   SearchProvider
	searchCost float64

	researcherInstr string
	answererInstr   string
	reviewerInstr   string
	refinerInstr    string

	maxRefinements int
	logger         *zap.Logger

	service *InMemorySessionService
	session *Session
	runner  *Runner
}

// New constructs a Flow with optional configuration. Initialize must be
// called before ResearchPerson.
func New(opts ...Option) *Flow {
	f := &Flow{
		appName:         defaultAppName,
		userID:          defaultUserID,
		maxRefinements:  defaultMaxRefinements,
		researcherInstr: researcherInstructions,
		answererInstr:   answererInstructions,
		reviewerInstr:   reviewerInstructions,
		refinerInstr:    refinerInstructions,
		logger:          zap.NewNop(),
		service:         NewInMemorySessionService(),
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.researcherModel == nil {
		f.researcherModel = f.model
	}
	if f.answererModel == nil {
		f.answererModel = f.model
	}
	if f.reviewerModel == nil {
		f.reviewerModel = f.model
	}
	if f.refinerModel == nil {
		f.refinerModel = f.model
	}
	return f
}

// Initialize creates the conversation session and binds the runner to the
// composed workflow. Setup errors are logged and returned.
func (f *Flow) Initialize(ctx context.Context) error {
	if f.researcherModel == nil || f.answererModel == nil || f.reviewerModel == nil || f.refinerModel == nil {
		err := errors.New("flow: model is not configured")
		f.logger.Error("failed to initialize session and runner", zap.Error(err))
		return err
	}
	if f.searcher == nil {
		err := errors.New("flow: no search provider configured")
		f.logger.Error("failed to initialize session and runner", zap.Error(err))
		return err
	}

	workflow := NewWorkflow(
		newResearchStage(f.researcherModel, f.researcherInstr, f.searcher, f.searchCost),
		newAnswerStage(f.answererModel, f.answererInstr),
		newReviewStage(f.reviewerModel, f.reviewerInstr),
		newRefineStage(f.refinerModel, f.refinerInstr),
		f.maxRefinements,
	)

	sess, err := f.service.Create(ctx, f.appName, f.userID, "")
	if err != nil {
		f.logger.Error("failed to initialize session and runner", zap.Error(err))
		return fmt.Errorf("create session: %w", err)
	}
	f.session = sess
	f.runner = NewRunner(f.appName, workflow, f.service)
	f.logger.Info("session and runner initialized",
		zap.String("app", f.appName),
		zap.String("session_id", sess.ID))
	return nil
}

// ResearchPerson runs one end-to-end pass of the workflow for the given
// person and returns the reviewed summary, or nil when no summary could be
// produced. Errors during the run are logged and absorbed; they are never
// returned to the caller.
func (f *Flow) ResearchPerson(ctx context.Context, personName string) *Result {
	name := strings.TrimSpace(personName)
	if name == "" {
		f.logger.Error("person name cannot be empty")
		return nil
	}

	f.session.State.Set(StatePersonName, name)
	f.logger.Info("starting research workflow", zap.String("person", name))

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	message := fmt.Sprintf("Research and create an early life biography section summary for %s", name)
	events, err := f.runner.Run(runCtx, f.userID, f.session.ID, message)
	if err != nil {
		f.logger.Error("failed to start workflow run", zap.Error(err))
		return nil
	}

	var finalText string
	var sawFinal bool
	var total float64
	for ev := range events {
		total += ev.Cost
		if ev.Err != nil {
			f.logger.Error("error during research workflow",
				zap.String("stage", ev.Author), zap.Error(ev.Err))
			return nil
		}
		f.logger.Debug("workflow event",
			zap.String("author", ev.Author), zap.Bool("final", ev.Final))
		if ev.Final {
			finalText = ev.Text
			sawFinal = true
			break
		}
	}

	return f.resolveResult(finalText, sawFinal, total)
}

// resolveResult applies the result resolution order: the answer summary from
// session state wins, then the observed final response text, then nothing.
func (f *Flow) resolveResult(finalText string, sawFinal bool, cost float64) *Result {
	if summary := f.session.State.Get(StateAnswerSummary); summary != "" {
		return &Result{Summary: summary, Cost: cost}
	}
	if sawFinal && finalText != "" {
		return &Result{Summary: finalText, Cost: cost}
	}
	f.logger.Warn("no final summary available after workflow run")
	return nil
}

// ReviewStatus classifies the reviewer's verdict from the last run. ok is
// false when there is no session, no review result, or the result has an
// unrecognized form.
func (f *Flow) ReviewStatus() (VerdictKind, bool) {
	if f.session == nil {
		return "", false
	}
	verdict, ok := ParseVerdict(f.session.State.Get(StateReviewResult))
	if !ok {
		return "", false
	}
	return verdict.Kind, true
}

// ReviewFeedback returns the reviewer's feedback with the verdict prefix
// stripped. For NEEDS_IMPROVEMENT only the text before the first |
// delimiter is returned. Empty when no verdict is available.
func (f *Flow) ReviewFeedback() string {
	if f.session == nil {
		return ""
	}
	verdict, ok := ParseVerdict(f.session.State.Get(StateReviewResult))
	if !ok {
		return ""
	}
	return verdict.Feedback
}

// ResearchData returns the raw research notes from the last run, or the
// empty string when no session exists.
func (f *Flow) ResearchData() string {
	if f.session == nil {
		return ""
	}
	return f.session.State.Get(StateResearchData)
}
