package domain

import "time"

// EvaluationKind distinguishes the two structurally identical evaluation
// tables by lifecycle trigger.
type EvaluationKind string

const (
	EvaluationKindSaved EvaluationKind = "saved"
	EvaluationKindAuto  EvaluationKind = "auto"
)

// Evaluation is one user-defined evaluation row. Saved evaluations are
// created on explicit user save; auto evaluations are created when a user
// puts an evaluation on a schedule. Name collision on save is an overwrite.
type Evaluation struct {
	Name              string                 `json:"name"`
	Description       string                 `json:"description"`
	MetricNames       []string               `json:"metric_names"`
	SourceQuery       string                 `json:"source_query"`
	ParamAssignments  map[string]interface{} `json:"param_assignments"`
	AssociatedObjects map[string]interface{} `json:"associated_objects"`
	Models            map[string]interface{} `json:"models"`
	UpdatedAt         time.Time              `json:"updated_at"`
}
