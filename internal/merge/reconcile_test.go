package merge

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjulian5/braid/internal/model"
)

func rel(from, to, commit string, ts int64) model.MergeRelationship {
	return model.MergeRelationship{
		From:      from,
		To:        to,
		Commit:    commit,
		Kind:      model.MergeThreeWay,
		Timestamp: time.Unix(ts, 0),
	}
}

func TestReconcile(t *testing.T) {
	tests := []struct {
		name       string
		structural []model.MergeRelationship
		recorded   []model.MergeRelationship
		want       []model.MergeRelationship
	}{
		{
			name:       "recorded pair missing from graph is appended",
			structural: []model.MergeRelationship{rel("feature", "main", "c3", 300)},
			recorded:   []model.MergeRelationship{rel("old", "main", "c9", 100)},
			want: []model.MergeRelationship{
				rel("feature", "main", "c3", 300),
				rel("old", "main", "c9", 100),
			},
		},
		{
			name:       "structural finding wins over recorded duplicate",
			structural: []model.MergeRelationship{rel("feature", "main", "c3", 300)},
			recorded:   []model.MergeRelationship{rel("feature", "main", "other", 100)},
			want:       []model.MergeRelationship{rel("feature", "main", "c3", 300)},
		},
		{
			name:       "duplicate recorded pairs collapse to the first",
			structural: nil,
			recorded: []model.MergeRelationship{
				rel("old", "main", "c1", 100),
				rel("old", "main", "c2", 200),
			},
			want: []model.MergeRelationship{rel("old", "main", "c1", 100)},
		},
		{
			name:       "swapped direction is a distinct pair",
			structural: []model.MergeRelationship{rel("feature", "main", "c3", 300)},
			recorded:   []model.MergeRelationship{rel("main", "feature", "c4", 400)},
			want: []model.MergeRelationship{
				rel("feature", "main", "c3", 300),
				rel("main", "feature", "c4", 400),
			},
		},
		{
			name:       "empty inputs yield empty output",
			structural: nil,
			recorded:   nil,
			want:       []model.MergeRelationship{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reconcile(tt.structural, tt.recorded)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}
