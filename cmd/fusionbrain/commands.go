package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/BaSui01/fusionbrain-go/client"
	"github.com/BaSui01/fusionbrain-go/types"
)

var (
	errRejected = errors.New("generation rejected")
	errCensored = errors.New("image censored")
	errNoImages = errors.New("task finished without images")
	errNoModels = errors.New("no models available")
)

// =============================================================================
// ✅ check
// =============================================================================

func newCheckCommand(a *app) *cobra.Command {
	var (
		model  string
		strict bool
	)
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check whether a model accepts generation requests",
		Args:  cobra.NoArgs,
	}
	cmd.RunE = a.run(func(ctx context.Context, _ []string) error {
		m, err := a.resolveModel(ctx, model)
		if err != nil {
			return err
		}
		var opts []client.AvailabilityOption
		if strict {
			opts = append(opts, client.Strict())
		}
		ready, err := a.client.CheckAvailability(ctx, m.ID, opts...)
		if err != nil {
			return err
		}

		if a.jsonOutput {
			return a.printJSON(struct {
				Model types.ModelInfo `json:"model"`
				Ready bool            `json:"ready"`
			}{m, ready})
		}
		state := "ready"
		if !ready {
			state = "not ready"
		}
		fmt.Fprintf(a.out, "%s: %s\n", modelLabel(m), state)
		return nil
	})
	cmd.Flags().StringVar(&model, "model", "", "Model id or name (default: first listed model)")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail when the model is not ready")
	return cmd
}

// =============================================================================
// 🎨 generate
// =============================================================================

func newGenerateCommand(a *app) *cobra.Command {
	var (
		model    string
		style    string
		negative string
		width    int
		height   int
		images   int
		wait     bool
		outDir   string
	)
	cmd := &cobra.Command{
		Use:   "generate <prompt>",
		Short: "Submit a text-to-image task",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.RunE = a.run(func(ctx context.Context, args []string) error {
		prompt := strings.Join(args, " ")

		m, err := a.resolveModel(ctx, model)
		if err != nil {
			return err
		}
		styleName, err := a.resolveStyle(ctx, style)
		if err != nil {
			return err
		}

		opts := []client.GenerateOption{
			client.WithStyle(styleName),
			client.WithSize(width, height),
			client.WithImages(images),
		}
		if negative != "" {
			opts = append(opts, client.WithNegativePrompt(negative))
		}

		outcome, err := a.client.Generate(ctx, m.ID, prompt, opts...)
		if err != nil {
			return err
		}
		task, accepted := outcome.Task()
		if !accepted {
			reason, _ := outcome.Reason()
			if a.jsonOutput {
				if err := a.printJSON(outcome); err != nil {
					return err
				}
			} else {
				fmt.Fprintf(a.out, "rejected: %s\n", reason)
			}
			return errRejected
		}
		a.metrics.ObserveTask(task)

		if !wait {
			return a.printTask(task)
		}

		a.logger.Info("waiting for task",
			zap.String("task_id", task.ID),
			zap.Duration("interval", a.cfg.Poll.Interval),
			zap.Duration("max_wait", a.cfg.Poll.MaxWait),
		)
		task, err = waitForTask(ctx, a.client, task.ID, a.cfg.Poll, a.metrics.ObserveTask)
		if err != nil {
			return err
		}
		return a.finish(task, outDir)
	})

	flags := cmd.Flags()
	flags.StringVar(&model, "model", "", "Model id or name (default: first listed model)")
	flags.StringVar(&style, "style", client.DefaultStyle, "Style name, see 'fusionbrain styles'")
	flags.StringVar(&negative, "negative", "", "What the image should not contain")
	flags.IntVar(&width, "width", client.DefaultWidth, "Image width in pixels")
	flags.IntVar(&height, "height", client.DefaultHeight, "Image height in pixels")
	flags.IntVar(&images, "images", 1, "Number of images to request")
	flags.BoolVar(&wait, "wait", false, "Poll until the task finishes and save the images")
	flags.StringVar(&outDir, "out", ".", "Directory for saved images (with --wait)")
	return cmd
}

// =============================================================================
// 🔍 status
// =============================================================================

func newStatusCommand(a *app) *cobra.Command {
	var outDir string
	cmd := &cobra.Command{
		Use:   "status <task-id>",
		Short: "Show a task snapshot and optionally save its images",
		Args:  cobra.ExactArgs(1),
	}
	cmd.RunE = a.run(func(ctx context.Context, args []string) error {
		task, err := a.client.CheckStatus(ctx, args[0])
		if err != nil {
			return err
		}
		a.metrics.ObserveTask(task)
		if !task.IsFinished() {
			return a.printTask(task)
		}
		return a.finish(task, outDir)
	})
	cmd.Flags().StringVar(&outDir, "out", "", "Directory for saved images (default: do not save)")
	return cmd
}

// =============================================================================
// 📚 models / styles / catalog
// =============================================================================

func newModelsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "models",
		Short: "List generation models",
		Args:  cobra.NoArgs,
	}
	cmd.RunE = a.run(func(ctx context.Context, _ []string) error {
		models, err := a.client.ListModels(ctx)
		if err != nil {
			return err
		}
		if a.jsonOutput {
			return a.printJSON(models)
		}
		return printModels(a.out, models)
	})
	return cmd
}

func newStylesCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "styles",
		Short: "List generation styles",
		Args:  cobra.NoArgs,
	}
	cmd.RunE = a.run(func(ctx context.Context, _ []string) error {
		styles, err := a.client.ListStyles(ctx)
		if err != nil {
			return err
		}
		if a.jsonOutput {
			return a.printJSON(styles)
		}
		return printStyles(a.out, styles)
	})
	return cmd
}

func newCatalogCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List models and styles",
		Args:  cobra.NoArgs,
	}
	cmd.RunE = a.run(func(ctx context.Context, _ []string) error {
		var (
			models []types.ModelInfo
			styles []types.StyleInfo
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			models, err = a.client.ListModels(gctx)
			return err
		})
		g.Go(func() error {
			var err error
			styles, err = a.client.ListStyles(gctx)
			return err
		})
		if err := g.Wait(); err != nil {
			return err
		}

		if a.jsonOutput {
			return a.printJSON(struct {
				Models []types.ModelInfo `json:"models"`
				Styles []types.StyleInfo `json:"styles"`
			}{models, styles})
		}
		if err := printModels(a.out, models); err != nil {
			return err
		}
		fmt.Fprintln(a.out)
		return printStyles(a.out, styles)
	})
	return cmd
}

// =============================================================================
// 📋 version
// =============================================================================

func newVersionCommand(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(*cobra.Command, []string) {
			fmt.Fprintf(out, "fusionbrain %s\n", Version)
			fmt.Fprintf(out, "  Build Time: %s\n", BuildTime)
			fmt.Fprintf(out, "  Git Commit: %s\n", GitCommit)
		},
	}
}

// =============================================================================
// 🔧 辅助函数
// =============================================================================

// resolveModel accepts a numeric id, a model name, or nothing. Names and the
// empty reference are looked up in the model catalogue.
func (a *app) resolveModel(ctx context.Context, ref string) (types.ModelInfo, error) {
	ref = strings.TrimSpace(ref)
	if id, err := strconv.ParseInt(ref, 10, 64); err == nil {
		return types.ModelInfo{ID: id}, nil
	}

	models, err := a.client.ListModels(ctx)
	if err != nil {
		return types.ModelInfo{}, err
	}
	if ref == "" {
		if len(models) == 0 {
			return types.ModelInfo{}, errNoModels
		}
		return models[0], nil
	}
	m, ok := types.FindModel(models, ref)
	if !ok {
		return types.ModelInfo{}, fmt.Errorf("unknown model %q", ref)
	}
	return m, nil
}

// resolveStyle checks a non-default style against the style catalogue and
// returns its canonical name.
func (a *app) resolveStyle(ctx context.Context, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.EqualFold(name, client.DefaultStyle) {
		return client.DefaultStyle, nil
	}
	styles, err := a.client.ListStyles(ctx)
	if err != nil {
		return "", err
	}
	s, ok := types.FindStyle(styles, name)
	if !ok {
		return "", fmt.Errorf("unknown style %q", name)
	}
	return s.Name, nil
}

// finish reports a finished task and saves its images when outDir is set.
func (a *app) finish(task types.Task, outDir string) error {
	if err := a.printTask(task); err != nil {
		return err
	}
	switch {
	case task.IsSuccess():
		if outDir == "" {
			return nil
		}
		paths, err := saveImages(outDir, task)
		if err != nil {
			return err
		}
		for _, p := range paths {
			a.logger.Info("image saved", zap.String("task_id", task.ID), zap.String("path", p))
			if !a.jsonOutput {
				fmt.Fprintf(a.out, "saved: %s\n", p)
			}
		}
		return nil
	case task.IsCensored():
		return fmt.Errorf("task %s: %w", task.ID, errCensored)
	case task.Status == types.TaskStatusFail:
		reason := "no description"
		if task.ErrorDescription != nil {
			reason = *task.ErrorDescription
		}
		return fmt.Errorf("task %s failed: %s", task.ID, reason)
	default:
		return fmt.Errorf("task %s: %w", task.ID, errNoImages)
	}
}

func modelLabel(m types.ModelInfo) string {
	if m.Name == "" {
		return fmt.Sprintf("model %d", m.ID)
	}
	return fmt.Sprintf("model %d (%s)", m.ID, m.Name)
}
