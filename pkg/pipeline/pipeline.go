// Package pipeline provides the end-to-end hierarchy analysis pipeline.
//
// This package implements the complete build → collapse → saliency pipeline
// that can be used by CLI, service, and batch components. By centralizing
// this logic, we ensure consistent behavior across all entry points and
// avoid code duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Build: Construct the canonical partition tree, altitudes and MST from
//     an edge-weighted graph
//  2. Collapse: Optionally contract flat zones (same-altitude merges) into
//     quasi-flat zones
//  3. Saliency: Optionally compute per-edge contour strength against the
//     final hierarchy
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    CollapseFlatZones: true,
//	    ComputeSaliency:   true,
//	}
//	result, err := runner.Execute(ctx, g, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Saliency)
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Disconnected-graph policies.
const (
	// PolicyFail rejects graphs with more than one connected component.
	PolicyFail = "fail"

	// PolicySuperRoot joins the component hierarchies of a disconnected
	// graph under a synthetic root at altitude +Inf.
	PolicySuperRoot = "super-root"
)

// DefaultDisconnectedPolicy is applied when Options leaves the policy empty.
const DefaultDisconnectedPolicy = PolicyFail

// ValidPolicies is the set of supported disconnected-graph policies.
var ValidPolicies = map[string]bool{
	PolicyFail:      true,
	PolicySuperRoot: true,
}

// Options contains all configuration for the hierarchy pipeline.
// This struct supports JSON and TOML deserialization for service requests
// and config files.
type Options struct {
	// DisconnectedPolicy selects how the build stage treats graphs with
	// more than one connected component: PolicyFail or PolicySuperRoot.
	DisconnectedPolicy string `json:"disconnected_policy,omitempty" toml:"disconnected_policy"`

	// CollapseFlatZones contracts internal nodes sitting at the same
	// altitude as their parent, turning the canonical tree into the
	// quasi-flat-zone hierarchy.
	CollapseFlatZones bool `json:"collapse_flat_zones,omitempty" toml:"collapse_flat_zones"`

	// ComputeSaliency computes the per-edge saliency of the input graph
	// against the final hierarchy.
	ComputeSaliency bool `json:"compute_saliency,omitempty" toml:"compute_saliency"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-" toml:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-" toml:"-"`
}

// Stats contains pipeline execution statistics.
type Stats struct {
	VertexCount  int
	EdgeCount    int
	NodeCount    int
	BuildTime    time.Duration
	CollapseTime time.Duration
	SaliencyTime time.Duration
}

// ValidatePolicy checks that a disconnected-graph policy is valid.
func ValidatePolicy(policy string) error {
	if !ValidPolicies[policy] {
		return fmt.Errorf("invalid disconnected_policy: %q (must be one of: fail, super-root)", policy)
	}
	return nil
}

// ValidateAndSetDefaults checks fields and applies defaults for the full
// pipeline. This method is idempotent - calling it multiple times has the
// same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.DisconnectedPolicy == "" {
		o.DisconnectedPolicy = DefaultDisconnectedPolicy
	}
	if err := ValidatePolicy(o.DisconnectedPolicy); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// AllowsDisconnected returns true if the build stage should accept
// disconnected graphs.
func (o *Options) AllowsDisconnected() bool {
	return o.DisconnectedPolicy == PolicySuperRoot
}
