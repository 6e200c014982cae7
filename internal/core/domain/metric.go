package domain

import (
	"fmt"
	"strings"
	"time"
)

// MetricObjectSuffix is the extension of a custom metric's companion
// binary object in the stage (a serialized scoring function).
const MetricObjectSuffix = ".pkl"

// CustomMetric describes one user-defined metric. Every row owns a
// companion binary object in the stage at ObjectKey(); a row whose object
// is missing is a dangling reference. Hidden rows (ShowMetric=false) still
// own a live object.
type CustomMetric struct {
	MetricName    string    `json:"metric_name"`
	StageFilePath string    `json:"stage_file_path"`
	CreatedAt     time.Time `json:"created_at"`
	ShowMetric    bool      `json:"show_metric"`
	CreationUser  string    `json:"creation_user"`
}

// MetricObjectKey derives the stage key of a metric's companion object.
func MetricObjectKey(metricName string) string {
	return metricName + MetricObjectSuffix
}

// ValidMetricName rejects names that would escape the stage root or
// collide with directory-like key segments.
func ValidMetricName(name string) bool {
	if name == "" {
		return false
	}
	return !strings.ContainsAny(name, "/\\")
}

// DeleteOutcomeKind tags the result of a metric lifecycle deletion so
// callers can branch programmatically instead of parsing text.
type DeleteOutcomeKind string

const (
	// DeleteRemoved: both the companion object and the row were removed.
	DeleteRemoved DeleteOutcomeKind = "removed"
	// DeleteObjectAlreadyAbsent: the companion object was already gone;
	// the row (if any) was removed.
	DeleteObjectAlreadyAbsent DeleteOutcomeKind = "object_already_absent"
	// DeleteRowAlreadyAbsent: the row was already gone; the object (if it
	// existed) was removed.
	DeleteRowAlreadyAbsent DeleteOutcomeKind = "row_already_absent"
	// DeleteStoreUnreachable: one of the stores failed; Detail carries the
	// cause. If the object store failed, the row was left untouched.
	DeleteStoreUnreachable DeleteOutcomeKind = "store_unreachable"
)

// DeleteOutcome is the tagged result of MetricLifecycleService.Delete.
// The two underlying stores do not share a transaction coordinator, so the
// outcome reports each step individually.
type DeleteOutcome struct {
	Kind          DeleteOutcomeKind `json:"kind"`
	MetricName    string            `json:"metric_name"`
	ObjectKey     string            `json:"object_key"`
	ObjectRemoved bool              `json:"object_removed"`
	RowRemoved    bool              `json:"row_removed"`
	Detail        string            `json:"detail,omitempty"`
}

// Failed reports whether the deletion stopped on a store error.
func (o DeleteOutcome) Failed() bool {
	return o.Kind == DeleteStoreUnreachable
}

// Message renders the operator-facing outcome string.
func (o DeleteOutcome) Message() string {
	switch o.Kind {
	case DeleteRemoved:
		return fmt.Sprintf("removed metric %q and stage object %s", o.MetricName, o.ObjectKey)
	case DeleteObjectAlreadyAbsent:
		if o.RowRemoved {
			return fmt.Sprintf("removed metric %q; stage object %s was already absent", o.MetricName, o.ObjectKey)
		}
		return fmt.Sprintf("metric %q not found; nothing to remove", o.MetricName)
	case DeleteRowAlreadyAbsent:
		return fmt.Sprintf("removed stage object %s; metric row %q was already absent", o.ObjectKey, o.MetricName)
	case DeleteStoreUnreachable:
		return fmt.Sprintf("error removing metric %q: %s", o.MetricName, o.Detail)
	default:
		return fmt.Sprintf("unknown outcome for metric %q", o.MetricName)
	}
}

// DanglingMetric is a custom metric row whose companion object is missing
// from the stage.
type DanglingMetric struct {
	MetricName string `json:"metric_name"`
	ObjectKey  string `json:"object_key"`
	ShowMetric bool   `json:"show_metric"`
}
