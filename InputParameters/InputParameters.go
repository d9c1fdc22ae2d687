package InputParameters

import (
	"fmt"
	"io"
	"math"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type ParametersSWE2D struct {
	Title        string  `yaml:"Title"`
	Lx           float64 `yaml:"Lx"`           // Length of domain in x-direction [m]
	Ly           float64 `yaml:"Ly"`           // Length of domain in y-direction [m]
	Nx           int     `yaml:"Nx"`           // Number of grid points in x-direction
	Ny           int     `yaml:"Ny"`           // Number of grid points in y-direction
	G            float64 `yaml:"G"`            // Acceleration of gravity [m/s^2]
	H            float64 `yaml:"H"`            // Resting depth of fluid [m]
	F0           float64 `yaml:"F0"`           // Fixed part of coriolis parameter [1/s]
	Beta         float64 `yaml:"Beta"`         // Gradient of coriolis parameter [1/ms]
	Rho0         float64 `yaml:"Rho0"`         // Density of fluid [kg/m^3]
	Tau0         float64 `yaml:"Tau0"`         // Amplitude of wind stress [kg/ms^2]
	Kappa        float64 `yaml:"Kappa"`        // Bottom friction coefficient [1/s]
	Sigma        float64 `yaml:"Sigma"`        // Mass source rate [m/s]
	W            float64 `yaml:"W"`            // Mass sink rate [m/s]
	SafetyFactor float64 `yaml:"SafetyFactor"` // Fraction of the CFL bound used for dt
	Dt           float64 `yaml:"Dt"`           // Optional explicit time step, must satisfy the CFL bound
	MaxTimeStep  int     `yaml:"MaxTimeStep"`
	AnimInterval int     `yaml:"AnimInterval"`
	UseCoriolis  bool    `yaml:"UseCoriolis"`
	UseBeta      bool    `yaml:"UseBeta"`
	UseFriction  bool    `yaml:"UseFriction"`
	UseWind      bool    `yaml:"UseWind"`
	UseSource    bool    `yaml:"UseSource"`
	UseSink      bool    `yaml:"UseSink"`
}

// Discretization holds the grid spacing and time step derived from the
// parameter set, fixed for the whole run
type Discretization struct {
	Dx, Dy, Dt float64
}

// DefaultParameters reproduces the reference configuration of the model with
// all optional force terms switched off
func DefaultParameters() *ParametersSWE2D {
	return &ParametersSWE2D{
		Title:        "Gaussian Bump",
		Lx:           1.e6,
		Ly:           1.e6,
		Nx:           150,
		Ny:           150,
		G:            9.81,
		H:            100.,
		F0:           1.e-4,
		Beta:         2.e-11,
		Rho0:         1024.,
		Tau0:         0.1,
		Kappa:        1.e-6,
		SafetyFactor: 0.1,
		MaxTimeStep:  5000,
		AnimInterval: 20,
	}
}

func (ip *ParametersSWE2D) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

// Validate detects fatal configuration errors once, before the first step
func (ip *ParametersSWE2D) Validate() (err error) {
	if ip.Nx < 2 || ip.Ny < 2 {
		return fmt.Errorf("need at least 2 grid points per direction, have Nx = %d, Ny = %d", ip.Nx, ip.Ny)
	}
	if ip.Lx <= 0 || ip.Ly <= 0 {
		return fmt.Errorf("domain lengths must be positive, have Lx = %v, Ly = %v", ip.Lx, ip.Ly)
	}
	if ip.G <= 0 || ip.H <= 0 {
		return fmt.Errorf("gravity and resting depth must be positive, have G = %v, H = %v", ip.G, ip.H)
	}
	if ip.SafetyFactor <= 0 || ip.SafetyFactor > 1 {
		return fmt.Errorf("CFL safety factor must be in (0,1], have %v", ip.SafetyFactor)
	}
	if ip.MaxTimeStep < 1 {
		return fmt.Errorf("MaxTimeStep must be at least 1, have %d", ip.MaxTimeStep)
	}
	if ip.AnimInterval < 1 {
		return fmt.Errorf("AnimInterval must be at least 1, have %d", ip.AnimInterval)
	}
	if ip.Dt < 0 {
		return fmt.Errorf("explicit time step must be positive, have Dt = %v", ip.Dt)
	}
	if ip.Dt > ip.CFLLimit() {
		return fmt.Errorf("explicit time step Dt = %v violates the CFL bound min(dx,dy)/sqrt(g*H) = %v",
			ip.Dt, ip.CFLLimit())
	}
	return
}

// CFLLimit is the stability bound on dt for the explicit scheme
func (ip *ParametersSWE2D) CFLLimit() float64 {
	dx := ip.Lx / float64(ip.Nx-1)
	dy := ip.Ly / float64(ip.Ny-1)
	return math.Min(dx, dy) / math.Sqrt(ip.G*ip.H)
}

// Discretize derives the grid spacing and the CFL bounded time step. When an
// explicit Dt was supplied (and passed Validate) it is used unchanged.
func (ip *ParametersSWE2D) Discretize() (d Discretization) {
	d.Dx = ip.Lx / float64(ip.Nx-1)
	d.Dy = ip.Ly / float64(ip.Ny-1)
	if ip.Dt != 0 {
		d.Dt = ip.Dt
	} else {
		d.Dt = ip.SafetyFactor * ip.CFLLimit()
	}
	return
}

func (ip *ParametersSWE2D) Print() {
	d := ip.Discretize()
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("%8.5g\t\t= Lx\n", ip.Lx)
	fmt.Printf("%8.5g\t\t= Ly\n", ip.Ly)
	fmt.Printf("[%d x %d]\t= Nx x Ny\n", ip.Nx, ip.Ny)
	fmt.Printf("%8.5f\t\t= G\n", ip.G)
	fmt.Printf("%8.5f\t\t= H\n", ip.H)
	fmt.Printf("%8.5f\t\t= SafetyFactor\n", ip.SafetyFactor)
	fmt.Printf("%8.2f\t\t= dx\n", d.Dx)
	fmt.Printf("%8.2f\t\t= dy\n", d.Dy)
	fmt.Printf("%8.2f\t\t= dt\n", d.Dt)
	fmt.Printf("[%d]\t\t\t= MaxTimeStep\n", ip.MaxTimeStep)
	fmt.Printf("[%d]\t\t\t= AnimInterval\n", ip.AnimInterval)
}

// WriteReport produces the human readable parameter report written once
// before the integration loop starts
func (ip *ParametersSWE2D) WriteReport(w io.Writer) (err error) {
	d := ip.Discretize()
	s := "\n================================================================"
	s += fmt.Sprintf("\nuse_coriolis = %v\nuse_beta = %v", ip.UseCoriolis, ip.UseBeta)
	s += fmt.Sprintf("\nuse_friction = %v\nuse_wind = %v", ip.UseFriction, ip.UseWind)
	s += fmt.Sprintf("\nuse_source = %v\nuse_sink = %v", ip.UseSource, ip.UseSink)
	s += fmt.Sprintf("\ng = %v\nH = %v", ip.G, ip.H)
	s += fmt.Sprintf("\ndx = %.2f km\ndy = %.2f km\ndt = %.2f s", d.Dx/1000., d.Dy/1000., d.Dt)
	_, err = io.WriteString(w, s)
	return
}
