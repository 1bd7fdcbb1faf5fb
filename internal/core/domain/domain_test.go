package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chorelabs/chore/internal/core/domain"
)

func TestOptions_Merge(t *testing.T) {
	tests := []struct {
		name     string
		base     domain.Options
		override domain.Options
		want     domain.Options
	}{
		{
			name:     "override wins on conflict",
			base:     domain.Options{"message": "hi", "count": 1},
			override: domain.Options{"count": 2},
			want:     domain.Options{"message": "hi", "count": 2},
		},
		{
			name:     "nil base",
			base:     nil,
			override: domain.Options{"age": 34},
			want:     domain.Options{"age": 34},
		},
		{
			name:     "nil override",
			base:     domain.Options{"message": "hi"},
			override: nil,
			want:     domain.Options{"message": "hi"},
		},
		{
			name:     "both nil",
			base:     nil,
			override: nil,
			want:     domain.Options{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.base.Merge(tt.override)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOptions_MergeDoesNotMutateInputs(t *testing.T) {
	base := domain.Options{"message": "hi"}
	override := domain.Options{"age": 34}

	merged := base.Merge(override)
	merged["message"] = "changed"
	merged["extra"] = true

	assert.Equal(t, domain.Options{"message": "hi"}, base)
	assert.Equal(t, domain.Options{"age": 34}, override)
}

func TestOptions_Clone(t *testing.T) {
	base := domain.Options{"x": 1}
	clone := base.Clone()
	clone["x"] = 2

	assert.Equal(t, 1, base["x"])

	require.NotNil(t, domain.Options(nil).Clone())
	assert.Empty(t, domain.Options(nil).Clone())
}

func TestDependencyConstructors(t *testing.T) {
	bare := domain.Dep("compile")
	assert.Equal(t, "compile", bare.Task)
	assert.Nil(t, bare.Options)

	withOpts := domain.DepWith("compile", domain.Options{"race": true})
	assert.Equal(t, "compile", withOpts.Task)
	assert.Equal(t, domain.Options{"race": true}, withOpts.Options)
}
