package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/BaSui01/fusionbrain-go/types"
)

func (a *app) printJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (a *app) printTask(task types.Task) error {
	if a.jsonOutput {
		return a.printJSON(task)
	}
	tw := newTable(a.out)
	fmt.Fprintf(tw, "TASK\t%s\n", task.ID)
	fmt.Fprintf(tw, "STATUS\t%s\n", task.Status)
	if len(task.Images) > 0 {
		fmt.Fprintf(tw, "IMAGES\t%d\n", len(task.Images))
	}
	if task.Censored != nil {
		fmt.Fprintf(tw, "CENSORED\t%t\n", *task.Censored)
	}
	if task.GenerationTime != nil {
		fmt.Fprintf(tw, "GENERATION TIME\t%.1fs\n", *task.GenerationTime)
	}
	if task.ErrorDescription != nil {
		fmt.Fprintf(tw, "ERROR\t%s\n", *task.ErrorDescription)
	}
	return tw.Flush()
}

func printModels(w io.Writer, models []types.ModelInfo) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tVERSION\tTYPE")
	for _, m := range models {
		fmt.Fprintf(tw, "%d\t%s\t%g\t%s\n", m.ID, m.Name, m.Version, m.Type)
	}
	return tw.Flush()
}

func printStyles(w io.Writer, styles []types.StyleInfo) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "NAME\tTITLE\tTITLE (EN)")
	for _, s := range styles {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", s.Name, s.Title, s.TitleEn)
	}
	return tw.Flush()
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}
