package SWE2D

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// buildFluxFixture returns a 4x4 grid with unit spacing, a distinct eta
// value per cell and zeroed velocities
func buildFluxFixture() (g *Grid, f *Fields, fs *FluxScratch) {
	g = NewGrid(3, 3, 4, 4)
	f = NewFields(g)
	fs = NewFluxScratch(g)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			f.Eta.Set(i, j, float64(i)+10*float64(j))
		}
	}
	return
}

func TestUpwindTieSelectsDownwindCell(t *testing.T) {
	g, f, fs := buildFluxFixture()
	H := 100.
	// All face velocities exactly zero: the strict > 0 test resolves every
	// tie to the east/north cell
	fs.InterfaceDepths(f, H, 0, g.Nx, g.Nx, g.Ny)
	for j := 0; j < 4; j++ {
		for i := 0; i < 3; i++ {
			require.Equal(t, f.Eta.At(i+1, j)+H, fs.HE.At(i, j))
		}
		for i := 1; i < 4; i++ {
			require.Equal(t, f.Eta.At(i, j)+H, fs.HW.At(i, j))
		}
	}
	for i := 0; i < 4; i++ {
		for j := 0; j < 3; j++ {
			require.Equal(t, f.Eta.At(i, j+1)+H, fs.HN.At(i, j))
		}
		for j := 1; j < 4; j++ {
			require.Equal(t, f.Eta.At(i, j)+H, fs.HS.At(i, j))
		}
	}
}

func TestUpwindSelectsUpstreamCell(t *testing.T) {
	g, f, fs := buildFluxFixture()
	H := 100.
	// Positive u at the face between cells (1,j) and (2,j): flow comes from
	// the west cell, both face arrays must take its depth
	for j := 0; j < 4; j++ {
		f.UNext.Set(1, j, 0.5)
	}
	// Negative v at the face between cells (i,0) and (i,1): flow comes from
	// the north cell
	for i := 0; i < 4; i++ {
		f.VNext.Set(i, 0, -0.5)
	}
	fs.InterfaceDepths(f, H, 0, g.Nx, g.Nx, g.Ny)
	for j := 0; j < 4; j++ {
		require.Equal(t, f.Eta.At(1, j)+H, fs.HE.At(1, j))
		require.Equal(t, f.Eta.At(1, j)+H, fs.HW.At(2, j))
	}
	for i := 0; i < 4; i++ {
		require.Equal(t, f.Eta.At(i, 1)+H, fs.HN.At(i, 0))
		require.Equal(t, f.Eta.At(i, 1)+H, fs.HS.At(i, 1))
	}
}

func TestEdgeFacesUseBoundaryCellDepth(t *testing.T) {
	g, f, fs := buildFluxFixture()
	H := 7.
	fs.InterfaceDepths(f, H, 0, g.Nx, g.Nx, g.Ny)
	for j := 0; j < 4; j++ {
		require.Equal(t, f.Eta.At(3, j)+H, fs.HE.At(3, j))
		require.Equal(t, f.Eta.At(0, j)+H, fs.HW.At(0, j))
	}
	for i := 0; i < 4; i++ {
		require.Equal(t, f.Eta.At(i, 3)+H, fs.HN.At(i, 3))
		require.Equal(t, f.Eta.At(i, 0)+H, fs.HS.At(i, 0))
	}
}

func TestNetFluxDivergence(t *testing.T) {
	g, f, fs := buildFluxFixture()
	H := 100.
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			f.UNext.Set(i, j, 0.1*float64(i+1))
			f.VNext.Set(i, j, -0.2*float64(j+1))
		}
	}
	fs.InterfaceDepths(f, H, 0, g.Nx, g.Nx, g.Ny)
	fs.NetFlux(f, 0, g.Nx, g.Ny)
	// Western/southern edge cells count only the outgoing face
	for j := 0; j < 4; j++ {
		require.Equal(t, f.UNext.At(0, j)*fs.HE.At(0, j), fs.FluxX.At(0, j))
	}
	for i := 0; i < 4; i++ {
		require.Equal(t, f.VNext.At(i, 0)*fs.HN.At(i, 0), fs.FluxY.At(i, 0))
	}
	// Interior cells difference outgoing and incoming face fluxes
	for i := 1; i < 4; i++ {
		for j := 1; j < 4; j++ {
			wantX := f.UNext.At(i, j)*fs.HE.At(i, j) - f.UNext.At(i-1, j)*fs.HW.At(i, j)
			wantY := f.VNext.At(i, j)*fs.HN.At(i, j) - f.VNext.At(i, j-1)*fs.HS.At(i, j)
			require.Equal(t, wantX, fs.FluxX.At(i, j))
			require.Equal(t, wantY, fs.FluxY.At(i, j))
		}
	}
}
