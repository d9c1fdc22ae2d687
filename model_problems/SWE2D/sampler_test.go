package SWE2D

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSamplerCopiesFields(t *testing.T) {
	g := NewGrid(1.e3, 1.e3, 5, 5)
	f := NewFields(g)
	f.Eta.Set(1, 1, 2.5)
	s := NewSampler(2, 10, 1.)
	s.Observe(1, f) // Not a sampling step
	require.Equal(t, 0, len(s.Snapshots))
	s.Observe(2, f)
	require.Equal(t, 1, len(s.Snapshots))
	require.Equal(t, 2., s.Snapshots[0].Time)

	// Later in-place mutation must not reach the recorded snapshot
	f.Eta.Set(1, 1, -9.)
	require.Equal(t, 2.5, s.Snapshots[0].Eta.At(1, 1))
}

func TestSamplerPreSizedCapacity(t *testing.T) {
	s := NewSampler(20, 5000, 1.)
	require.Equal(t, 250, cap(s.Snapshots))
}

func TestWriteGnuplot(t *testing.T) {
	dir := t.TempDir()
	g := NewGrid(1.e3, 1.e3, 4, 4)
	f := NewFields(g)
	f.InitGaussian(g)
	s := NewSampler(1, 2, 0.5)
	s.Observe(1, f)
	s.Observe(2, f)
	require.NoError(t, s.WriteGnuplot(dir))

	for _, name := range []string{"u_0000.dat", "v_0000.dat", "eta_0001.dat"} {
		_, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "eta_0000.dat"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Equal(t, 4, len(lines))
	require.Equal(t, 4, len(strings.Fields(lines[0])))

	idx, err := os.ReadFile(filepath.Join(dir, "snapshots.idx"))
	require.NoError(t, err)
	require.Equal(t, 2, len(strings.Split(strings.TrimSpace(string(idx)), "\n")))
}
