package SWE2D

import (
	"github.com/oceanmodeling/goswe/utils"
)

// Grid is the uniform rectangular domain discretization. Coordinates are
// centered, spanning [-Lx/2, Lx/2] x [-Ly/2, Ly/2], with i indexing the
// x-direction and j indexing the y-direction. Immutable after construction.
type Grid struct {
	Nx, Ny int
	Lx, Ly float64
	Dx, Dy float64
	X, Y   utils.Matrix // Physical coordinates of point (i,j), Nx x Ny each
}

func NewGrid(Lx, Ly float64, Nx, Ny int) (g *Grid) {
	g = &Grid{
		Nx: Nx,
		Ny: Ny,
		Lx: Lx,
		Ly: Ly,
		Dx: Lx / float64(Nx-1),
		Dy: Ly / float64(Ny-1),
		X:  utils.NewMatrix(Nx, Ny),
		Y:  utils.NewMatrix(Nx, Ny),
	}
	x := utils.NewVector(Nx).Linspace(-Lx/2, Lx/2)
	y := utils.NewVector(Ny).Linspace(-Ly/2, Ly/2)
	for i := 0; i < Nx; i++ {
		for j := 0; j < Ny; j++ {
			g.X.Set(i, j, x.AtVec(i))
			g.Y.Set(i, j, y.AtVec(j))
		}
	}
	g.X.SetReadOnly("X")
	g.Y.SetReadOnly("Y")
	return
}
