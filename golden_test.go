package caddy65_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/alnah/go-caddy65"
)

// TestFormat_Golden formats every testdata/*.s source and compares the result
// with testdata/golden/<name>.golden. Run with -update to regenerate.
func TestFormat_Golden(t *testing.T) {
	inputs, err := filepath.Glob(filepath.Join("testdata", "*.s"))
	require.NoError(t, err)
	require.NotEmpty(t, inputs)

	f, err := caddy65.NewFormatter()
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)

	for _, in := range inputs {
		name := strings.TrimSuffix(filepath.Base(in), ".s")
		t.Run(name, func(t *testing.T) {
			src, err := os.ReadFile(in)
			require.NoError(t, err)

			res, err := f.Format(context.Background(), src)
			require.NoError(t, err)
			require.Empty(t, res.Warnings)
			g.Assert(t, name, res.Output)

			again, err := f.Format(context.Background(), res.Output)
			require.NoError(t, err)
			require.False(t, again.Changed, "second pass changed %s:\n%s", name, again.Output)
		})
	}
}
