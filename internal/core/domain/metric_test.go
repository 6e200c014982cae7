package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricObjectKey(t *testing.T) {
	assert.Equal(t, "accuracy.pkl", MetricObjectKey("accuracy"))
	assert.Equal(t, "my_metric.pkl", MetricObjectKey("my_metric"))
}

func TestValidMetricName(t *testing.T) {
	assert.True(t, ValidMetricName("accuracy"))
	assert.True(t, ValidMetricName("my-metric_2"))
	assert.False(t, ValidMetricName(""))
	assert.False(t, ValidMetricName("a/b"))
	assert.False(t, ValidMetricName(`a\b`))
}

func TestDeleteOutcome_Message(t *testing.T) {
	tests := []struct {
		name     string
		outcome  DeleteOutcome
		contains string
	}{
		{
			name: "removed",
			outcome: DeleteOutcome{
				Kind: DeleteRemoved, MetricName: "alpha", ObjectKey: "alpha.pkl",
				ObjectRemoved: true, RowRemoved: true,
			},
			contains: "removed metric \"alpha\"",
		},
		{
			name: "object already absent, row removed",
			outcome: DeleteOutcome{
				Kind: DeleteObjectAlreadyAbsent, MetricName: "alpha", ObjectKey: "alpha.pkl",
				RowRemoved: true,
			},
			contains: "already absent",
		},
		{
			name: "nothing existed",
			outcome: DeleteOutcome{
				Kind: DeleteObjectAlreadyAbsent, MetricName: "alpha", ObjectKey: "alpha.pkl",
			},
			contains: "nothing to remove",
		},
		{
			name: "row already absent",
			outcome: DeleteOutcome{
				Kind: DeleteRowAlreadyAbsent, MetricName: "alpha", ObjectKey: "alpha.pkl",
				ObjectRemoved: true,
			},
			contains: "row \"alpha\" was already absent",
		},
		{
			name: "store unreachable",
			outcome: DeleteOutcome{
				Kind: DeleteStoreUnreachable, MetricName: "alpha", ObjectKey: "alpha.pkl",
				Detail: "connection refused",
			},
			contains: "connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, tt.outcome.Message(), tt.contains)
		})
	}
}

func TestDeleteOutcome_Failed(t *testing.T) {
	assert.True(t, DeleteOutcome{Kind: DeleteStoreUnreachable}.Failed())
	assert.False(t, DeleteOutcome{Kind: DeleteRemoved}.Failed())
	assert.False(t, DeleteOutcome{Kind: DeleteObjectAlreadyAbsent}.Failed())
	assert.False(t, DeleteOutcome{Kind: DeleteRowAlreadyAbsent}.Failed())
}
