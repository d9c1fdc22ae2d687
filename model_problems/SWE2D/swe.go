package SWE2D

import (
	"fmt"
	"sync"
	"time"

	"github.com/oceanmodeling/goswe/InputParameters"
	"github.com/oceanmodeling/goswe/utils"
)

// SWE2D integrates the 2D shallow water equations with linear momentum
// equations and a nonlinear continuity equation on a staggered rectangular
// grid, using a forward-in-time centered-in-space momentum predictor and an
// upwind scheme for the mass flux. Explicit and CFL bounded.
type SWE2D struct {
	IP         *InputParameters.ParametersSWE2D
	Grid       *Grid
	Fields     *Fields
	Scratch    *FluxScratch
	Sampler    *Sampler
	Dx, Dy, Dt float64
	NP         int // Number of goroutines for the per-step field updates

	pm               *utils.PartitionMap
	momentumForces   []momentumForce
	continuityForces []continuityForce
	logFrequency     int
}

func NewSWE2D(ip *InputParameters.ParametersSWE2D, NP int) (c *SWE2D, err error) {
	if err = ip.Validate(); err != nil {
		return nil, err
	}
	if NP < 1 {
		NP = 1
	}
	d := ip.Discretize()
	c = &SWE2D{
		IP:           ip,
		Dx:           d.Dx,
		Dy:           d.Dy,
		Dt:           d.Dt,
		NP:           NP,
		logFrequency: 500,
	}
	c.Grid = NewGrid(ip.Lx, ip.Ly, ip.Nx, ip.Ny)
	c.Fields = NewFields(c.Grid)
	c.Fields.InitGaussian(c.Grid)
	c.Scratch = NewFluxScratch(c.Grid)
	c.Sampler = NewSampler(ip.AnimInterval, ip.MaxTimeStep, d.Dt)
	c.pm = utils.NewPartitionMap(NP, c.Grid.Nx)
	if ip.UseFriction {
		c.momentumForces = append(c.momentumForces, c.frictionTerm())
	}
	if ip.UseWind {
		c.momentumForces = append(c.momentumForces, c.windTerm())
	}
	if ip.UseCoriolis {
		c.momentumForces = append(c.momentumForces, c.coriolisTerm())
	}
	if ip.UseSource {
		c.continuityForces = append(c.continuityForces, c.massRateTerm(ip.Sigma))
	}
	if ip.UseSink {
		c.continuityForces = append(c.continuityForces, c.massRateTerm(-ip.W))
	}
	fmt.Printf("dx = %8.2f m, dy = %8.2f m, dt = %8.4f s (CFL bound %8.4f s)\nGrid %d x %d, %d steps, sampling every %d steps\n",
		c.Dx, c.Dy, c.Dt, ip.CFLLimit(), ip.Nx, ip.Ny, ip.MaxTimeStep, ip.AnimInterval)
	return
}

// Run executes the fixed length integration loop, sampling the fields every
// AnimInterval completed steps
func (c *SWE2D) Run() {
	start := time.Now()
	for step := 1; step <= c.IP.MaxTimeStep; step++ {
		c.Step()
		c.Sampler.Observe(step, c.Fields)
		if step%c.logFrequency == 0 {
			fmt.Printf("Time = %8.2f s, step = %6d / %d, eta min = %8.6f, eta max = %8.6f\n",
				float64(step)*c.Dt, step, c.IP.MaxTimeStep, c.Fields.Eta.Min(), c.Fields.Eta.Max())
		}
	}
	elapsed := time.Since(start)
	fmt.Printf("completed %d steps in %v, %d snapshots recorded\n",
		c.IP.MaxTimeStep, elapsed, len(c.Sampler.Snapshots))
}

// Step advances the fields one time level: momentum predictor, optional
// force terms, wall enforcement, upwind mass flux, continuity update, swap.
// The sub-computations are ordered, each completes before the next begins.
func (c *SWE2D) Step() {
	c.runRows(c.momentumPredictor)
	for _, force := range c.momentumForces {
		force()
	}
	c.enforceWalls()
	c.runRows(func(iMin, iMax int) {
		c.Scratch.InterfaceDepths(c.Fields, c.IP.H, iMin, iMax, c.Grid.Nx, c.Grid.Ny)
		c.Scratch.NetFlux(c.Fields, iMin, iMax, c.Grid.Ny)
		c.continuityUpdate(iMin, iMax)
	})
	for _, force := range c.continuityForces {
		force()
	}
	c.Fields.Swap()
}

// runRows executes stage over the i-index range, split across NP goroutines.
// The per-cell updates within a stage are independent across rows; stages
// synchronize on return.
func (c *SWE2D) runRows(stage func(iMin, iMax int)) {
	if c.NP == 1 {
		stage(0, c.Grid.Nx)
		return
	}
	var wg sync.WaitGroup
	for n := 0; n < c.NP; n++ {
		iMin, iMax := c.pm.GetBucketRange(n)
		wg.Add(1)
		go func(iMin, iMax int) {
			defer wg.Done()
			stage(iMin, iMax)
		}(iMin, iMax)
	}
	wg.Wait()
}

// momentumPredictor is the linear forward-in-time centered-in-space update
// of u and v from the current eta gradient. The last u row and last v
// column are left to the wall enforcement.
func (c *SWE2D) momentumPredictor(iMin, iMax int) {
	var (
		Nx, Ny = c.Grid.Nx, c.Grid.Ny
		gdtdx  = c.IP.G * c.Dt / c.Dx
		gdtdy  = c.IP.G * c.Dt / c.Dy
		u      = c.Fields.U.RawMatrix().Data
		v      = c.Fields.V.RawMatrix().Data
		eta    = c.Fields.Eta.RawMatrix().Data
		uN     = c.Fields.UNext.RawMatrix().Data
		vN     = c.Fields.VNext.RawMatrix().Data
	)
	for i := iMin; i < iMax; i++ {
		for j := 0; j < Ny; j++ {
			ind := i*Ny + j
			if i < Nx-1 {
				uN[ind] = u[ind] - gdtdx*(eta[ind+Ny]-eta[ind])
			}
			if j < Ny-1 {
				vN[ind] = v[ind] - gdtdy*(eta[ind+1]-eta[ind])
			}
		}
	}
}

// enforceWalls pins the eastern u row and northern v column to zero, the
// impermeable no-outflow boundaries. Hard overwrites, applied every step.
func (c *SWE2D) enforceWalls() {
	var (
		Nx, Ny = c.Grid.Nx, c.Grid.Ny
		uN     = c.Fields.UNext.RawMatrix().Data
		vN     = c.Fields.VNext.RawMatrix().Data
	)
	for j := 0; j < Ny; j++ {
		uN[(Nx-1)*Ny+j] = 0
	}
	for i := 0; i < Nx; i++ {
		vN[i*Ny+Ny-1] = 0
	}
}

// continuityUpdate advances eta from the net mass flux divergence
func (c *SWE2D) continuityUpdate(iMin, iMax int) {
	var (
		Ny    = c.Grid.Ny
		eta   = c.Fields.Eta.RawMatrix().Data
		etaN  = c.Fields.EtaNext.RawMatrix().Data
		fluxX = c.Scratch.FluxX.RawMatrix().Data
		fluxY = c.Scratch.FluxY.RawMatrix().Data
	)
	for i := iMin; i < iMax; i++ {
		for j := 0; j < Ny; j++ {
			ind := i*Ny + j
			etaN[ind] = eta[ind] - c.Dt*(fluxX[ind]/c.Dx+fluxY[ind]/c.Dy)
		}
	}
}
