package types

import "encoding/json"

// GenerationOutcome is the result of a submission: either an accepted task or
// a rejection reason. Build it with Accepted or Rejected and branch on
// IsAccepted before reading either side.
type GenerationOutcome struct {
	accepted bool
	task     Task
	reason   string
}

// Accepted returns the outcome for a submission the service queued.
func Accepted(task Task) GenerationOutcome {
	return GenerationOutcome{accepted: true, task: task}
}

// Rejected returns the outcome for a submission the service turned down.
func Rejected(reason string) GenerationOutcome {
	return GenerationOutcome{reason: reason}
}

// IsAccepted is the discriminant.
func (o GenerationOutcome) IsAccepted() bool { return o.accepted }

// Task returns the accepted task; ok is false for a rejection.
func (o GenerationOutcome) Task() (Task, bool) {
	if !o.accepted {
		return Task{}, false
	}
	return o.task, true
}

// Reason returns the rejection reason; ok is false for an acceptance.
func (o GenerationOutcome) Reason() (string, bool) {
	if o.accepted {
		return "", false
	}
	return o.reason, true
}

type outcomeJSON struct {
	Accepted bool   `json:"accepted"`
	Task     *Task  `json:"task,omitempty"`
	Reason   string `json:"reason,omitempty"`
}

// MarshalJSON renders only the active variant.
func (o GenerationOutcome) MarshalJSON() ([]byte, error) {
	if o.accepted {
		t := o.task
		return json.Marshal(outcomeJSON{Accepted: true, Task: &t})
	}
	return json.Marshal(outcomeJSON{Reason: o.reason})
}
