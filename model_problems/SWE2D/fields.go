package SWE2D

import (
	"math"

	"github.com/oceanmodeling/goswe/utils"
)

// Fields owns the three physical fields at the current and next time level.
// Eta is cell centered, U lives on east faces and V on north faces, an
// Arakawa-C style staggering. The next-level matrices are distinct
// allocations: the upwind scheme reads the current level while the next
// level is being written, so the two must never alias.
type Fields struct {
	U, V, Eta             utils.Matrix
	UNext, VNext, EtaNext utils.Matrix
}

func NewFields(g *Grid) (f *Fields) {
	f = &Fields{
		U:       utils.NewMatrix(g.Nx, g.Ny),
		V:       utils.NewMatrix(g.Nx, g.Ny),
		Eta:     utils.NewMatrix(g.Nx, g.Ny),
		UNext:   utils.NewMatrix(g.Nx, g.Ny),
		VNext:   utils.NewMatrix(g.Nx, g.Ny),
		EtaNext: utils.NewMatrix(g.Nx, g.Ny),
	}
	return
}

// InitGaussian seeds eta with the off-axis Gaussian bump of the reference
// configuration, amplitude 1 at the center, decay scale 0.05*Lx in both
// directions. U and V start at rest. The asymmetric placement produces a
// non-trivial gravity wave radiation pattern.
func (f *Fields) InitGaussian(g *Grid) {
	var (
		cx = g.Lx / 2.7
		cy = g.Ly / 4
		s2 = 2 * (0.05 * g.Lx) * (0.05 * g.Lx)
	)
	for i := 0; i < g.Nx; i++ {
		for j := 0; j < g.Ny; j++ {
			x, y := g.X.At(i, j)-cx, g.Y.At(i, j)-cy
			f.Eta.Set(i, j, math.Exp(-(x*x+y*y)/s2))
		}
	}
}

// Swap promotes the next-level fields to the current level by full copy,
// leaving the buffers distinct for the following step
func (f *Fields) Swap() {
	f.UNext.CopyInto(f.U)
	f.VNext.CopyInto(f.V)
	f.EtaNext.CopyInto(f.Eta)
}
