package bioflow

import (
	"context"
	"fmt"
)

// Sequential runs child stages strictly in order, never concurrently; a
// later stage is not started until the previous stage has written its
// output field. The first error stops execution.
type Sequential struct {
	name   string
	stages []Stage
}

// NewSequential composes stages into one ordered unit.
func NewSequential(name string, stages ...Stage) *Sequential {
	return &Sequential{name: name, stages: stages}
}

func (s *Sequential) Name() string { return s.name }

// OutputKey is the output field of the last child stage.
func (s *Sequential) OutputKey() string {
	if len(s.stages) == 0 {
		return ""
	}
	return s.stages[len(s.stages)-1].OutputKey()
}

func (s *Sequential) Run(ctx context.Context, sess *Session) (float64, error) {
	var total float64
	for _, stage := range s.stages {
		cost, err := stage.Run(ctx, sess)
		total += cost
		if err != nil {
			return total, fmt.Errorf("%s: stage %s: %w", s.name, stage.Name(), err)
		}
	}
	return total, nil
}

// workflowPhase enumerates the states of the refinement loop.
type workflowPhase int

const (
	phaseResearching workflowPhase = iota
	phaseAnswering
	phaseReviewing
	phaseRefining
	phaseDone
)

// Workflow is the research-review-refine loop. Each pass runs the research,
// answer, and review stages in order; a NEEDS_IMPROVEMENT verdict with
// budget remaining runs the refiner and loops back to research. An APPROVED
// verdict, an unrecognized verdict, or an exhausted budget ends the run with
// whatever summary exists.
type Workflow struct {
	name           string
	research       Stage
	answer         Stage
	review         Stage
	refine         Stage
	maxRefinements int
}

// NewWorkflow composes the four role stages into the bounded refinement
// loop. maxRefinements is the number of extra research/answer passes allowed
// after the first review; zero means a single pass.
func NewWorkflow(research, answer, review, refine Stage, maxRefinements int) *Workflow {
	if maxRefinements < 0 {
		maxRefinements = 0
	}
	return &Workflow{
		name:           "iterative_research_workflow",
		research:       research,
		answer:         answer,
		review:         review,
		refine:         refine,
		maxRefinements: maxRefinements,
	}
}

// Name identifies the workflow in runner events.
func (w *Workflow) Name() string { return w.name }

// run drives the state machine, emitting one event per completed stage and
// a trailing final event. emit returns false when the consumer is gone, at
// which point the run stops; side effects already written to session state
// are kept.
func (w *Workflow) run(ctx context.Context, sess *Session, emit func(Event) bool) {
	var lastText string
	refinements := 0
	phase := phaseResearching

	for phase != phaseDone {
		var stage Stage
		switch phase {
		case phaseResearching:
			stage = w.research
		case phaseAnswering:
			stage = w.answer
		case phaseReviewing:
			stage = w.review
		case phaseRefining:
			stage = w.refine
		}

		cost, err := stage.Run(ctx, sess)
		if err != nil {
			emit(Event{Author: stage.Name(), Cost: cost, Err: err, Final: true})
			return
		}
		lastText = sess.State.Get(stage.OutputKey())
		if !emit(Event{Author: stage.Name(), Text: lastText, Cost: cost}) {
			return
		}

		switch phase {
		case phaseResearching:
			phase = phaseAnswering
		case phaseAnswering:
			phase = phaseReviewing
		case phaseReviewing:
			verdict, ok := ParseVerdict(sess.State.Get(StateReviewResult))
			if ok && verdict.Kind == VerdictNeedsImprovement && refinements < w.maxRefinements {
				phase = phaseRefining
			} else {
				phase = phaseDone
			}
		case phaseRefining:
			w.seedFollowUpResearch(sess)
			refinements++
			phase = phaseResearching
		}
	}

	finalText := sess.State.Get(StateAnswerSummary)
	if finalText == "" {
		finalText = lastText
	}
	emit(Event{Author: w.name, Text: finalText, Final: true})
}

// seedFollowUpResearch redirects the next research pass using the parsed
// verdict: the directive after the | delimiter when present, otherwise the
// feedback text itself.
func (w *Workflow) seedFollowUpResearch(sess *Session) {
	verdict, ok := ParseVerdict(sess.State.Get(StateReviewResult))
	if !ok {
		return
	}
	followUp := verdict.Directive
	if followUp == "" {
		followUp = verdict.Feedback
	}
	if followUp != "" {
		sess.State.Set(StateAdditionalResearch, followUp)
	}
}
