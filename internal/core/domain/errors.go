package domain

import "errors"

// ============================================================================
// Provisioning Errors
// ============================================================================

var (
	ErrStepUnsatisfied  = errors.New("provisioning step ordered before its prerequisite")
	ErrInvalidTableSpec = errors.New("table spec must declare at least one column")
)

// ============================================================================
// Repository Mirror Errors
// ============================================================================

var (
	ErrOriginNotAllowed = errors.New("remote url does not match any allow-listed origin")
	ErrMirrorNotBound   = errors.New("repository mirror is not bound")
)

// ============================================================================
// Sync Pipeline Errors
// ============================================================================

var (
	ErrNoFilesMatched  = errors.New("selector matched no files in the mirror")
	ErrInvalidSelector = errors.New("selector must set either a name list or a pattern")
)

// ============================================================================
// Metadata Errors
// ============================================================================

var (
	ErrEvaluationNotFound    = errors.New("evaluation not found")
	ErrInvalidEvaluationName = errors.New("evaluation name is required")
	ErrMetricNotFound        = errors.New("custom metric not found")
	ErrInvalidMetricName     = errors.New("metric name must be non-empty and contain no path separators")
	ErrBindingNotFound       = errors.New("application binding not found")
	ErrInvalidBinding        = errors.New("application binding requires name, stage root and entry file")
)
