package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/BaSui01/fusionbrain-go/config"
	"github.com/BaSui01/fusionbrain-go/types"
)

var errWaitTimeout = errors.New("timed out waiting for task")

// statusChecker is the part of the client the poll loop needs.
type statusChecker interface {
	CheckStatus(ctx context.Context, id string) (types.Task, error)
}

// =============================================================================
// ⏳ 轮询
// =============================================================================

// waitForTask polls id every poll.Interval until the task finishes or
// poll.MaxWait elapses. observe sees every snapshot, including the last one.
// A status error stops the loop; the service reports expired handles as 404.
func waitForTask(ctx context.Context, checker statusChecker, id string, poll config.PollConfig, observe func(types.Task)) (types.Task, error) {
	waitCtx, cancel := context.WithTimeout(ctx, poll.MaxWait)
	defer cancel()

	ticker := time.NewTicker(poll.Interval)
	defer ticker.Stop()

	var last types.Task
	for {
		select {
		case <-waitCtx.Done():
			return last, waitError(ctx, id, poll.MaxWait)
		case <-ticker.C:
		}

		task, err := checker.CheckStatus(waitCtx, id)
		if err != nil {
			if waitCtx.Err() != nil {
				return last, waitError(ctx, id, poll.MaxWait)
			}
			return last, err
		}
		last = task
		if observe != nil {
			observe(task)
		}
		if task.IsFinished() {
			return task, nil
		}
	}
}

func waitError(parent context.Context, id string, maxWait time.Duration) error {
	if err := parent.Err(); err != nil {
		return err
	}
	return fmt.Errorf("task %s: %w after %s", id, errWaitTimeout, maxWait)
}

// =============================================================================
// 💾 图片保存
// =============================================================================

// saveImages writes every image of task into dir as {taskID}_{n}{ext}.
func saveImages(dir string, task types.Task) ([]string, error) {
	images, err := task.DecodeImages()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	paths := make([]string, 0, len(images))
	for i, data := range images {
		path := filepath.Join(dir, fmt.Sprintf("%s_%d%s", filepath.Base(task.ID), i+1, imageExt(data)))
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return paths, fmt.Errorf("write image %d: %w", i+1, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func imageExt(data []byte) string {
	switch http.DetectContentType(data) {
	case "image/png":
		return ".png"
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	default:
		return ".bin"
	}
}
