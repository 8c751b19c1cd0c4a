package types

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// TaskStatus is the remote state of a generation job.
type TaskStatus string

// Remote job states: INITIAL -> PROCESSING -> DONE | FAIL.
const (
	TaskStatusInitial    TaskStatus = "INITIAL"
	TaskStatusProcessing TaskStatus = "PROCESSING"
	TaskStatusDone       TaskStatus = "DONE"
	TaskStatusFail       TaskStatus = "FAIL"
)

// IsTerminal reports whether no further remote transition will happen.
func (s TaskStatus) IsTerminal() bool {
	return s == TaskStatusDone || s == TaskStatusFail
}

func (s TaskStatus) String() string { return string(s) }

// Task is one snapshot of a remote generation job.
//
// Optional fields are nil when the response did not supply them. A nil field
// says nothing about the status; it only means "not in this response".
// Snapshots are values: polling again yields a new Task, and predicates are
// computed from the snapshot every time they are called.
type Task struct {
	ID               string     `json:"uuid"`
	Status           TaskStatus `json:"status"`
	Images           []string   `json:"images,omitempty"`
	ErrorDescription *string    `json:"errorDescription,omitempty"`
	Censored         *bool      `json:"censored,omitempty"`
	GenerationTime   *float64   `json:"generationTime,omitempty"`
}

// IsFinished reports whether the job reached DONE or FAIL.
func (t Task) IsFinished() bool {
	return t.Status.IsTerminal()
}

// IsCensored reports whether a finished job was flagged by content policy.
// The flag is ignored before completion because the service does not report
// it reliably until then.
func (t Task) IsCensored() bool {
	return t.IsFinished() && t.Censored != nil && *t.Censored
}

// IsSuccess reports whether the job produced usable images.
// A censored DONE job carries a placeholder image, so DONE alone is not enough.
func (t Task) IsSuccess() bool {
	return t.Status == TaskStatusDone && !t.IsCensored() && len(t.Images) > 0
}

// DecodeImages returns the binary content of every image payload.
func (t Task) DecodeImages() ([][]byte, error) {
	out := make([][]byte, 0, len(t.Images))
	for i, img := range t.Images {
		data, err := decodeImage(img)
		if err != nil {
			return nil, fmt.Errorf("decode image %d of task %s: %w", i, t.ID, err)
		}
		out = append(out, data)
	}
	return out, nil
}

func decodeImage(s string) ([]byte, error) {
	if strings.HasPrefix(s, "data:") {
		if idx := strings.Index(s, ";base64,"); idx >= 0 {
			s = s[idx+len(";base64,"):]
		}
	}
	return base64.StdEncoding.DecodeString(strings.TrimSpace(s))
}
