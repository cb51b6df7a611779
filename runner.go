package bioflow

import (
	"context"
	"fmt"
)

// Runner drives workflow invocations against sessions held by a session
// service. It is bound to one application name and one workflow.
type Runner struct {
	appName  string
	workflow *Workflow
	service  *InMemorySessionService
}

// NewRunner binds a workflow to a session store.
func NewRunner(appName string, workflow *Workflow, service *InMemorySessionService) *Runner {
	return &Runner{appName: appName, workflow: workflow, service: service}
}

// Run records the user message in the session and drives one workflow
// invocation. It returns a lazy, finite event stream: one event per
// completed stage, then exactly one final event, after which the channel is
// closed. The consumer may stop reading after the final event; canceling
// ctx releases the producing goroutine.
func (r *Runner) Run(ctx context.Context, userID, sessionID, message string) (<-chan Event, error) {
	sess, ok := r.service.Get(r.appName, userID, sessionID)
	if !ok {
		return nil, fmt.Errorf("unknown session: %s", sessionID)
	}
	sess.AppendMessage("user", message)

	events := make(chan Event)
	emit := func(ev Event) bool {
		if ctx.Err() != nil {
			return false
		}
		select {
		case events <- ev:
			return true
		case <-ctx.Done():
			return false
		}
	}
	go func() {
		defer close(events)
		r.workflow.run(ctx, sess, emit)
	}()
	return events, nil
}
