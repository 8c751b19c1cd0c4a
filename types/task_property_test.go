package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func genTask() *rapid.Generator[Task] {
	return rapid.Custom(func(rt *rapid.T) Task {
		status := rapid.SampledFrom([]TaskStatus{
			TaskStatusInitial, TaskStatusProcessing, TaskStatusDone, TaskStatusFail, "UNKNOWN",
		}).Draw(rt, "status")

		task := Task{ID: rapid.StringN(1, 36, -1).Draw(rt, "id"), Status: status}
		if rapid.Bool().Draw(rt, "hasImages") {
			task.Images = rapid.SliceOfN(rapid.String(), 0, 3).Draw(rt, "images")
		}
		switch rapid.IntRange(0, 2).Draw(rt, "censored") {
		case 1:
			task.Censored = boolPtr(true)
		case 2:
			task.Censored = boolPtr(false)
		}
		return task
	})
}

// IsSuccess implies IsFinished and excludes IsCensored for every snapshot.
func TestProperty_SuccessImpliesFinishedAndUncensored(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		task := genTask().Draw(rt, "task")

		if task.IsSuccess() {
			assert.True(rt, task.IsFinished(), "success must imply finished")
			assert.False(rt, task.IsCensored(), "success must imply not censored")
		}

		want := task.Status == TaskStatusDone &&
			!(task.Censored != nil && *task.Censored) &&
			len(task.Images) > 0
		assert.Equal(rt, want, task.IsSuccess())
	})
}

// Unfinished snapshots are never censored, whatever the flag says.
func TestProperty_UnfinishedNeverCensored(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		task := genTask().Draw(rt, "task")
		if !task.IsFinished() {
			assert.False(rt, task.IsCensored())
		}
	})
}
