package filters

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelector(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   map[string]string
		want string
	}{
		{name: "empty", in: nil, want: ""},
		{name: "single", in: map[string]string{"env": "production"}, want: "env=production"},
		{
			name: "multiple in key order",
			in:   map[string]string{"team": "infra", "env": "staging", "app": "web"},
			want: "app=web,env=staging,team=infra",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Selector(tt.in))
		})
	}
}

func TestTagTerms(t *testing.T) {
	t.Parallel()

	got := TagTerms(map[string]string{"env": "production", "app": "web"})
	assert.Equal(t, []Term{
		{Key: "tag:app", Value: "web"},
		{Key: "tag:env", Value: "production"},
	}, got)
}

func TestTagTerms_Empty(t *testing.T) {
	t.Parallel()
	assert.Empty(t, TagTerms(nil))
}
