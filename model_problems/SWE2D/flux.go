package SWE2D

import (
	"github.com/oceanmodeling/goswe/utils"
)

// FluxScratch holds the per-step buffers for the upwind scheme in the eta
// equation: one interface total depth (eta+H) array per compass face and the
// net face-normal mass flux accumulators. Every element is overwritten each
// step, no state survives across steps.
type FluxScratch struct {
	HE, HW, HN, HS utils.Matrix
	FluxX, FluxY   utils.Matrix
}

func NewFluxScratch(g *Grid) (fs *FluxScratch) {
	fs = &FluxScratch{
		HE:    utils.NewMatrix(g.Nx, g.Ny),
		HW:    utils.NewMatrix(g.Nx, g.Ny),
		HN:    utils.NewMatrix(g.Nx, g.Ny),
		HS:    utils.NewMatrix(g.Nx, g.Ny),
		FluxX: utils.NewMatrix(g.Nx, g.Ny),
		FluxY: utils.NewMatrix(g.Nx, g.Ny),
	}
	return
}

// InterfaceDepths fills the four face arrays for rows [iMin, iMax). The
// interface depth is taken from the cell the just-updated face-normal
// velocity flows from; a velocity of exactly zero selects the east/north
// cell. Domain edge faces take the adjacent boundary cell's depth directly.
func (fs *FluxScratch) InterfaceDepths(f *Fields, H float64, iMin, iMax, Nx, Ny int) {
	var (
		uN  = f.UNext.RawMatrix().Data
		vN  = f.VNext.RawMatrix().Data
		eta = f.Eta.RawMatrix().Data
		hE  = fs.HE.RawMatrix().Data
		hW  = fs.HW.RawMatrix().Data
		hN  = fs.HN.RawMatrix().Data
		hS  = fs.HS.RawMatrix().Data
	)
	for i := iMin; i < iMax; i++ {
		for j := 0; j < Ny; j++ {
			ind := i*Ny + j
			switch {
			case i == Nx-1:
				hE[ind] = eta[ind] + H
			case uN[ind] > 0:
				hE[ind] = eta[ind] + H
			default:
				hE[ind] = eta[ind+Ny] + H
			}
			switch {
			case i == 0:
				hW[ind] = eta[ind] + H
			case uN[ind-Ny] > 0:
				hW[ind] = eta[ind-Ny] + H
			default:
				hW[ind] = eta[ind] + H
			}
			switch {
			case j == Ny-1:
				hN[ind] = eta[ind] + H
			case vN[ind] > 0:
				hN[ind] = eta[ind] + H
			default:
				hN[ind] = eta[ind+1] + H
			}
			switch {
			case j == 0:
				hS[ind] = eta[ind] + H
			case vN[ind-1] > 0:
				hS[ind] = eta[ind-1] + H
			default:
				hS[ind] = eta[ind] + H
			}
		}
	}
}

// NetFlux accumulates the conservative discrete divergence of (eta+H) times
// velocity for rows [iMin, iMax). Cells on the western/southern edge have no
// incoming face, only the single outgoing one.
func (fs *FluxScratch) NetFlux(f *Fields, iMin, iMax, Ny int) {
	var (
		uN    = f.UNext.RawMatrix().Data
		vN    = f.VNext.RawMatrix().Data
		hE    = fs.HE.RawMatrix().Data
		hW    = fs.HW.RawMatrix().Data
		hN    = fs.HN.RawMatrix().Data
		hS    = fs.HS.RawMatrix().Data
		fluxX = fs.FluxX.RawMatrix().Data
		fluxY = fs.FluxY.RawMatrix().Data
	)
	for i := iMin; i < iMax; i++ {
		for j := 0; j < Ny; j++ {
			ind := i*Ny + j
			if i == 0 {
				fluxX[ind] = uN[ind] * hE[ind]
			} else {
				fluxX[ind] = uN[ind]*hE[ind] - uN[ind-Ny]*hW[ind]
			}
			if j == 0 {
				fluxY[ind] = vN[ind] * hN[ind]
			} else {
				fluxY[ind] = vN[ind]*hN[ind] - vN[ind-1]*hS[ind]
			}
		}
	}
}
