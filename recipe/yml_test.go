package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func node(t *testing.T, src string) yaml.Node {
	t.Helper()
	var doc struct {
		Field yaml.Node `yaml:"field"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(src), &doc))
	return doc.Field
}

func TestStrings(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{
			name: "plain sequence",
			src:  "field: [a, b, c]",
			want: []string{"a", "b", "c"},
		},
		{
			name: "blank entries dropped",
			src:  "field: [a, '   ', '', b]",
			want: []string{"a", "b"},
		},
		{
			name: "scalar is not a list",
			src:  "field: oops",
			want: nil,
		},
		{
			name: "mapping is not a list",
			src:  "field: {a: b}",
			want: nil,
		},
		{
			name: "nested mappings skipped",
			src:  "field: [a, {b: c}, d]",
			want: []string{"a", "d"},
		},
		{
			name: "absent field",
			src:  "other: 1",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Strings(node(t, tt.src)))
		})
	}
}
