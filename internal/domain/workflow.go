package domain

import (
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/mouse-blink/dataobj/internal/adapter"
	"github.com/mouse-blink/dataobj/internal/controller"
	"github.com/mouse-blink/dataobj/internal/logger"
	m "github.com/mouse-blink/dataobj/internal/model"
)

// SourceArgs selects the data objects an operation runs over.
type SourceArgs struct {
	// Manifest is a YAML manifest path; empty means the sample sequence.
	Manifest m.Path
	Skip     SkipRule
	Workers  int
}

// RenderArgs configures Workflow.Render.
type RenderArgs struct {
	SourceArgs
	Layout Layout
}

// CountArgs configures Workflow.Count.
type CountArgs struct {
	SourceArgs
}

// ValidateArgs configures Workflow.Validate.
type ValidateArgs struct {
	SourceArgs
}

// ExportArgs configures Workflow.Export.
type ExportArgs struct {
	SourceArgs
	// Output is the manifest to write; empty means the workflow's writer.
	Output m.Path
}

// Workflow runs one operation over a sequence of data objects and hands the
// result to the UI or the manifest store.
type Workflow interface {
	Render(ctx context.Context, args RenderArgs) error
	Count(ctx context.Context, args CountArgs) error
	Validate(ctx context.Context, args ValidateArgs) error
	Export(ctx context.Context, args ExportArgs) error
}

type workflow struct {
	store adapter.ManifestStore
	ui    controller.UI
	out   io.Writer
}

// NewWorkflow creates a Workflow. out receives exported manifests when no
// output path is given.
func NewWorkflow(store adapter.ManifestStore, ui controller.UI, out io.Writer) Workflow {
	return &workflow{
		store: store,
		ui:    ui,
		out:   out,
	}
}

// lineCollector renders one parallel chunk and keeps each object's line
// separately, so raw text fields containing newlines stay with their object.
type lineCollector struct {
	renderer *Renderer
	buf      *bytes.Buffer
	lines    []string
}

func newLineCollector(layout Layout) *lineCollector {
	buf := &bytes.Buffer{}
	return &lineCollector{renderer: NewRenderer(buf, layout), buf: buf}
}

func (c *lineCollector) VisitString(o m.StringObject) {
	c.renderer.VisitString(o)
	c.take()
}

func (c *lineCollector) VisitInteger(o m.IntegerObject) {
	c.renderer.VisitInteger(o)
	c.take()
}

func (c *lineCollector) VisitFloat(o m.FloatObject) {
	c.renderer.VisitFloat(o)
	c.take()
}

func (c *lineCollector) take() {
	c.lines = append(c.lines, strings.TrimSuffix(c.buf.String(), "\n"))
	c.buf.Reset()
}

func (w *workflow) Render(ctx context.Context, args RenderArgs) error {
	seq, positions, err := w.load(args.SourceArgs)
	if err != nil {
		return err
	}

	ops, err := DispatchParallel(ctx, seq, args.Workers, func(int) *lineCollector {
		return newLineCollector(args.Layout)
	})
	if err != nil {
		return errors.Wrap(err, "render")
	}

	lines := make([]string, 0, seq.Len())
	for _, op := range ops {
		if err := op.renderer.Err(); err != nil {
			return err
		}

		lines = append(lines, op.lines...)
	}

	descriptions := m.FoldAll[string](seq, Describer{})

	objects := make([]controller.RenderedObject, 0, len(lines))
	for i, line := range lines {
		objects = append(objects, controller.RenderedObject{
			Index:       positions[i],
			Kind:        m.KindOf(seq.At(i)),
			Line:        line,
			Description: descriptions[i],
		})
	}

	logger.Logger.Infow("rendered data objects", "count", len(objects), "layout", args.Layout.String(), "chunks", len(ops))

	return w.ui.DisplayRendered(objects)
}

func (w *workflow) Count(ctx context.Context, args CountArgs) error {
	seq, _, err := w.load(args.SourceArgs)
	if err != nil {
		return err
	}

	ops, err := DispatchParallel(ctx, seq, args.Workers, func(int) *Counter { return NewCounter() })
	if err != nil {
		return errors.Wrap(err, "count")
	}

	var tally m.Tally
	for _, op := range ops {
		tally = tally.Add(op.Tally())
	}

	logger.Logger.Infow("counted data objects", "total", tally.Total(), "chunks", len(ops))

	return w.ui.DisplayTally(tally)
}

func (w *workflow) Validate(ctx context.Context, args ValidateArgs) error {
	seq, positions, err := w.load(args.SourceArgs)
	if err != nil {
		return err
	}

	ops, err := DispatchParallel(ctx, seq, args.Workers, NewValidator)
	if err != nil {
		return errors.Wrap(err, "validate")
	}

	var findings []m.Finding
	for _, op := range ops {
		for _, f := range op.Findings() {
			f.Index = positions[f.Index]
			findings = append(findings, f)
		}
	}

	logger.Logger.Infow("validated data objects", "total", seq.Len(), "findings", len(findings))

	if err := w.ui.DisplayFindings(seq.Len(), findings); err != nil {
		return err
	}

	if len(findings) > 0 {
		return errors.Wrapf(ErrInvalidObjects, "%d finding(s)", len(findings))
	}

	return nil
}

func (w *workflow) Export(ctx context.Context, args ExportArgs) error {
	seq, _, err := w.load(args.SourceArgs)
	if err != nil {
		return err
	}

	ops, err := DispatchParallel(ctx, seq, args.Workers, func(int) *Exporter { return NewExporter() })
	if err != nil {
		return errors.Wrap(err, "export")
	}

	records := make([]m.Record, 0, seq.Len())
	for _, op := range ops {
		records = append(records, op.Records()...)
	}

	logger.Logger.Infow("exported data objects", "count", len(records), "output", string(args.Output))

	if args.Output == "" {
		return w.store.WriteRecords(w.out, records)
	}

	return w.store.SaveRecords(args.Output, records)
}

// load resolves the source sequence and applies the skip rule. positions maps
// each selected object back to its index in the source.
func (w *workflow) load(args SourceArgs) (m.Sequence, []int, error) {
	seq := m.SampleSequence()

	if args.Manifest != "" {
		records, err := w.store.LoadRecords(args.Manifest)
		if err != nil {
			return m.Sequence{}, nil, err
		}

		seq, err = m.DecodeRecords(records)
		if err != nil {
			return m.Sequence{}, nil, errors.Wrapf(err, "manifest %s", args.Manifest)
		}
	}

	selected, positions := Select(seq, args.Skip)

	logger.Logger.Debugw("loaded data objects",
		"manifest", string(args.Manifest),
		"loaded", seq.Len(),
		"selected", selected.Len(),
		"workers", args.Workers,
	)

	return selected, positions, nil
}
