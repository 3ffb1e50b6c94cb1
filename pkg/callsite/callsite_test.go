package callsite

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/printbreak/pkg/errors"
)

var sample = filepath.Join("testdata", "calls.go.txt")

func TestNames(t *testing.T) {
	tests := []struct {
		name string
		call Call
		want []string
	}{
		{
			name: "simple break",
			call: Call{File: sample, Line: 6, Funcs: []string{"Break"}, Count: 2},
			want: []string{"user", "items"},
		},
		{
			name: "conditional skips the condition",
			call: Call{File: sample, Line: 7, Funcs: []string{"BreakIf"}, Skip: 1, Count: 1},
			want: []string{`cfg["port"]`},
		},
		{
			name: "multi-line call from any of its lines",
			call: Call{File: sample, Line: 11, Funcs: []string{"Break"}, Count: 2},
			want: []string{"user", `cfg["a"] + cfg["b"]`},
		},
		{
			name: "second call on a line",
			call: Call{File: sample, Line: 14, Funcs: []string{"Break"}, Count: 1},
			want: []string{"user"},
		},
		{
			name: "no values",
			call: Call{File: sample, Line: 6, Funcs: []string{"Break"}, Count: 0},
			want: []string{},
		},
	}

	r := NewResolver()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			names, err := r.Names(tt.call)
			require.NoError(t, err)
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestNamesFallback(t *testing.T) {
	r := NewResolver()

	t.Run("spread arguments", func(t *testing.T) {
		names, err := r.Names(Call{File: sample, Line: 13, Funcs: []string{"Break"}, Count: 3})
		assert.Error(t, err)
		assert.Equal(t, []string{"arg0", "arg1", "arg2"}, names)
	})

	t.Run("count mismatch", func(t *testing.T) {
		names, err := r.Names(Call{File: sample, Line: 6, Funcs: []string{"Break"}, Count: 3})
		assert.Error(t, err)
		assert.Equal(t, []string{"arg0", "arg1", "arg2"}, names)
	})

	t.Run("missing file", func(t *testing.T) {
		names, err := r.Names(Call{File: filepath.Join(t.TempDir(), "nope.go"), Line: 1, Funcs: []string{"Break"}, Count: 1})
		assert.True(t, errors.IsErrorCode(err, errors.ErrSourceRead))
		assert.Equal(t, []string{"arg0"}, names)
	})
}

func TestResolverCachesFiles(t *testing.T) {
	r := NewResolver()
	_, err := r.Names(Call{File: sample, Line: 6, Funcs: []string{"Break"}, Count: 2})
	require.NoError(t, err)
	assert.Len(t, r.files, 1)

	_, err = r.Names(Call{File: sample, Line: 7, Funcs: []string{"BreakIf"}, Skip: 1, Count: 1})
	require.NoError(t, err)
	assert.Len(t, r.files, 1)
}
