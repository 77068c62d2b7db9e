package gvf

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteProfileCSV(t *testing.T) {
	fp := filepath.Join(t.TempDir(), "profile.csv")
	WriteProfileCSV(fp, []DepthSample{{0., 1.0528}, {1., 1.3035}, {2., 1.3099}})

	b, err := os.ReadFile(fp)
	require.NoError(t, err)
	lns := strings.Split(strings.TrimSpace(string(b)), "\n")
	require.Len(t, lns, 4)
	require.Equal(t, "x,y", strings.TrimSpace(lns[0])) // header fixed for downstream consumers
}
