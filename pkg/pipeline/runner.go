package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/hiergraph/hiergraph/pkg/graph"
	"github.com/hiergraph/hiergraph/pkg/hierarchy"
	"github.com/hiergraph/hiergraph/pkg/observability"
	"github.com/hiergraph/hiergraph/pkg/tree"
)

// Runner encapsulates pipeline execution.
//
// The Runner is stateless except for the logger - it doesn't store pipeline
// results. Multiple goroutines can safely use the same Runner with
// different graphs and options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner with the given logger.
// If logger is nil, the default logger is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID uniquely identifies this execution in logs and hook events.
	RunID string

	// Tree is the final hierarchy: the canonical partition tree, or the
	// quasi-flat-zone tree when CollapseFlatZones is set.
	Tree *tree.Tree

	// Altitudes holds one altitude per node of Tree.
	Altitudes []float64

	// MST is the minimum spanning tree (or forest) of the input.
	MST *graph.Graph

	// NodeMap maps the collapsed tree's nodes back to canonical tree node
	// ids. Nil unless CollapseFlatZones ran.
	NodeMap []int

	// Saliency holds one value per input edge. Nil unless ComputeSaliency
	// was requested.
	Saliency []float64

	// Stats contains timing and size information.
	Stats Stats
}

// Execute runs the complete build → collapse → saliency pipeline.
func (r *Runner) Execute(ctx context.Context, g *graph.Graph, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{
		RunID: uuid.NewString(),
		Stats: Stats{
			VertexCount: g.NumVertices(),
			EdgeCount:   g.NumEdges(),
		},
	}
	runStart := time.Now()
	observability.Pipeline().OnRunStart(ctx, result.RunID, g.NumVertices(), g.NumEdges())

	run := func() error {
		// Stage 1: Build
		buildStart := time.Now()
		res, err := r.buildStage(ctx, result.RunID, g, opts)
		if err != nil {
			return fmt.Errorf("build: %w", err)
		}
		result.Tree = res.Tree
		result.Altitudes = res.Altitudes
		result.MST = res.MST
		result.Stats.BuildTime = time.Since(buildStart)

		opts.Logger.Info("built hierarchy",
			"vertices", g.NumVertices(),
			"nodes", res.Tree.NumNodes(),
			"mst_edges", res.MST.NumEdges(),
			"duration", result.Stats.BuildTime)

		// Stage 2: Collapse
		if opts.CollapseFlatZones {
			if err := ctx.Err(); err != nil {
				return err
			}
			collapseStart := time.Now()
			collapsed, nodeMap, alts, err := r.collapseStage(ctx, result.RunID, result.Tree, result.Altitudes)
			if err != nil {
				return fmt.Errorf("collapse: %w", err)
			}
			result.Tree = collapsed
			result.Altitudes = alts
			result.NodeMap = nodeMap
			result.Stats.CollapseTime = time.Since(collapseStart)

			opts.Logger.Info("collapsed flat zones",
				"nodes", collapsed.NumNodes(),
				"duration", result.Stats.CollapseTime)
		}

		// Stage 3: Saliency
		if opts.ComputeSaliency {
			if err := ctx.Err(); err != nil {
				return err
			}
			saliencyStart := time.Now()
			saliency, err := r.saliencyStage(ctx, result.RunID, g, result.Tree, result.Altitudes)
			if err != nil {
				return fmt.Errorf("saliency: %w", err)
			}
			result.Saliency = saliency
			result.Stats.SaliencyTime = time.Since(saliencyStart)

			opts.Logger.Info("computed saliency",
				"edges", len(saliency),
				"duration", result.Stats.SaliencyTime)
		}

		result.Stats.NodeCount = result.Tree.NumNodes()
		return nil
	}

	err := run()
	nodes := 0
	if result.Tree != nil {
		nodes = result.Tree.NumNodes()
	}
	observability.Pipeline().OnRunComplete(ctx, result.RunID, nodes, time.Since(runStart), err)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Build runs only the build stage and returns the canonical hierarchy.
func (r *Runner) Build(ctx context.Context, g *graph.Graph, opts Options) (*hierarchy.Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	return r.buildStage(ctx, uuid.NewString(), g, opts)
}

func (r *Runner) buildStage(ctx context.Context, runID string, g *graph.Graph, opts Options) (*hierarchy.Result, error) {
	hooks := observability.Pipeline()
	hooks.OnStageStart(ctx, runID, "build")
	start := time.Now()

	var buildOpts []hierarchy.BuildOption
	if opts.AllowsDisconnected() {
		buildOpts = append(buildOpts, hierarchy.WithSuperRoot())
	}
	res, err := hierarchy.BuildCanonical(g, buildOpts...)

	hooks.OnStageComplete(ctx, runID, "build", time.Since(start), err)
	return res, err
}

func (r *Runner) collapseStage(ctx context.Context, runID string, t *tree.Tree, alts []float64) (*tree.Tree, []int, []float64, error) {
	hooks := observability.Pipeline()
	hooks.OnStageStart(ctx, runID, "collapse")
	start := time.Now()

	deleted := make([]bool, t.NumNodes())
	for i := t.NumLeaves(); i < t.NumNodes()-1; i++ {
		p, _ := t.Parent(i)
		deleted[i] = alts[i] == alts[p]
	}
	collapsed, nodeMap, err := hierarchy.Simplify(t, deleted)

	var remapped []float64
	if err == nil {
		remapped = make([]float64, len(nodeMap))
		for j, orig := range nodeMap {
			remapped[j] = alts[orig]
		}
	}

	hooks.OnStageComplete(ctx, runID, "collapse", time.Since(start), err)
	return collapsed, nodeMap, remapped, err
}

func (r *Runner) saliencyStage(ctx context.Context, runID string, g *graph.Graph, t *tree.Tree, alts []float64) ([]float64, error) {
	hooks := observability.Pipeline()
	hooks.OnStageStart(ctx, runID, "saliency")
	start := time.Now()

	saliency, err := hierarchy.SaliencyMap(g, t, alts)

	hooks.OnStageComplete(ctx, runID, "saliency", time.Since(start), err)
	return saliency, err
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
