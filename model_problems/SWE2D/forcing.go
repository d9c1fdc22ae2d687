package SWE2D

import (
	"math"
)

// Force terms are resolved once at model construction: each enabled toggle
// becomes a closure over its coefficients, disabled toggles contribute
// nothing, so the inner loop carries no per-step branch checks. Momentum
// terms run between the predictor and the wall enforcement, continuity
// terms run after the eta update.
type momentumForce func()
type continuityForce func()

// frictionTerm applies linear bottom friction -kappa*u, -kappa*v using the
// current level fields
func (c *SWE2D) frictionTerm() momentumForce {
	var (
		Nx, Ny = c.Grid.Nx, c.Grid.Ny
		dtK    = c.Dt * c.IP.Kappa
	)
	return func() {
		var (
			u  = c.Fields.U.RawMatrix().Data
			v  = c.Fields.V.RawMatrix().Data
			uN = c.Fields.UNext.RawMatrix().Data
			vN = c.Fields.VNext.RawMatrix().Data
		)
		for i := 0; i < Nx; i++ {
			for j := 0; j < Ny; j++ {
				ind := i*Ny + j
				if i < Nx-1 {
					uN[ind] -= dtK * u[ind]
				}
				if j < Ny-1 {
					vN[ind] -= dtK * v[ind]
				}
			}
		}
	}
}

// windTerm applies a zonal wind stress profile tau_x(y) = -tau_0*cos(pi*y/Ly)
// to the u momentum equation
func (c *SWE2D) windTerm() momentumForce {
	var (
		Nx, Ny = c.Grid.Nx, c.Grid.Ny
		accel  = make([]float64, Ny)
	)
	for j := 0; j < Ny; j++ {
		y := c.Grid.Y.At(0, j)
		tauX := -c.IP.Tau0 * math.Cos(math.Pi*y/c.Grid.Ly)
		accel[j] = c.Dt * tauX / (c.IP.Rho0 * c.IP.H)
	}
	return func() {
		uN := c.Fields.UNext.RawMatrix().Data
		for i := 0; i < Nx-1; i++ {
			for j := 0; j < Ny; j++ {
				uN[i*Ny+j] += accel[j]
			}
		}
	}
}

// coriolisTerm corrects the predictor values for rotation using the
// semi-implicit predictor/corrector form of the documented equations, with
// f = f_0 + beta*y when the beta toggle is on
func (c *SWE2D) coriolisTerm() momentumForce {
	var (
		Nx, Ny = c.Grid.Nx, c.Grid.Ny
		alpha  = make([]float64, Ny)
		betaC  = make([]float64, Ny)
	)
	for j := 0; j < Ny; j++ {
		f := c.IP.F0
		if c.IP.UseBeta {
			f += c.IP.Beta * c.Grid.Y.At(0, j)
		}
		alpha[j] = c.Dt * f
		betaC[j] = alpha[j] * alpha[j] / 4
	}
	return func() {
		var (
			u  = c.Fields.U.RawMatrix().Data
			v  = c.Fields.V.RawMatrix().Data
			uN = c.Fields.UNext.RawMatrix().Data
			vN = c.Fields.VNext.RawMatrix().Data
		)
		for i := 0; i < Nx; i++ {
			for j := 0; j < Ny; j++ {
				ind := i*Ny + j
				if i < Nx-1 {
					uN[ind] = (uN[ind] - betaC[j]*u[ind] + alpha[j]*v[ind]) / (1 + betaC[j])
				}
				if j < Ny-1 {
					vN[ind] = (vN[ind] - betaC[j]*v[ind] - alpha[j]*u[ind]) / (1 + betaC[j])
				}
			}
		}
	}
}

// massRateTerm adds a uniform constant rate to the continuity update, used
// for both the source (positive) and the sink (negative)
func (c *SWE2D) massRateTerm(rate float64) continuityForce {
	dEta := c.Dt * rate
	return func() {
		c.Fields.EtaNext.AddScalar(dEta)
	}
}
