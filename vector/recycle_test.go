package vector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecycle(t *testing.T) {
	tests := []struct {
		name    string
		lengths []int
		want    Plan
		wantErr bool
	}{
		{name: "Equal", lengths: []int{3, 3}, want: Plan{Length: 3}},
		{name: "ShorterAuxiliary", lengths: []int{4, 2}, want: Plan{Length: 4, Uneven: true}},
		{name: "LongerAuxiliary", lengths: []int{1, 3}, want: Plan{Length: 3, Uneven: true}},
		{name: "SingleVector", lengths: []int{5}, want: Plan{Length: 5}},
		{name: "ZeroMain", lengths: []int{0, 2, 1}, want: Plan{}},
		{name: "ZeroAuxiliary", lengths: []int{3, 0}, want: Plan{}},
		{name: "Incompatible", lengths: []int{4, 3}, wantErr: true},
		{name: "Negative", lengths: []int{-1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Recycle(tt.lengths...)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrRecycling)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRecycle_AuxiliaryIndex(t *testing.T) {
	plan, err := Recycle(4, 2)
	require.NoError(t, err)

	aux := Of(0, 1)
	for i := range plan.Length {
		got, ok := aux.At(i)
		require.True(t, ok)
		assert.Equal(t, i%2, got)
	}
}

func TestPlan_Chunks(t *testing.T) {
	t.Run("Even", func(t *testing.T) {
		spans := Plan{Length: 6}.Chunks(3)
		assert.Equal(t, []Span{{0, 2}, {2, 4}, {4, 6}}, spans)
	})

	t.Run("Remainder", func(t *testing.T) {
		spans := Plan{Length: 7}.Chunks(3)
		assert.Equal(t, []Span{{0, 3}, {3, 5}, {5, 7}}, spans)
	})

	t.Run("MoreWorkersThanElements", func(t *testing.T) {
		spans := Plan{Length: 2}.Chunks(8)
		assert.Equal(t, []Span{{0, 1}, {1, 2}}, spans)
	})

	t.Run("Empty", func(t *testing.T) {
		assert.Nil(t, Plan{}.Chunks(4))
	})
}
