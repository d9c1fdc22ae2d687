package InputParameters

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDeck(t *testing.T) {
	deck := `
Title: "Test Case"
Lx: 2.e6
Nx: 100
SafetyFactor: 0.2
MaxTimeStep: 300
UseFriction: true
Kappa: 2.e-6
`
	ip := DefaultParameters()
	require.NoError(t, ip.Parse([]byte(deck)))
	assert.Equal(t, "Test Case", ip.Title)
	assert.Equal(t, 2.e6, ip.Lx)
	assert.Equal(t, 100, ip.Nx)
	assert.Equal(t, 0.2, ip.SafetyFactor)
	assert.Equal(t, 300, ip.MaxTimeStep)
	assert.True(t, ip.UseFriction)
	assert.Equal(t, 2.e-6, ip.Kappa)
	// Fields absent from the deck keep their defaults
	assert.Equal(t, 1.e6, ip.Ly)
	assert.Equal(t, 9.81, ip.G)
	assert.False(t, ip.UseCoriolis)
	require.NoError(t, ip.Validate())
}

func TestValidateRejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*ParametersSWE2D)
	}{
		{"tiny grid", func(ip *ParametersSWE2D) { ip.Nx = 1 }},
		{"negative length", func(ip *ParametersSWE2D) { ip.Ly = -1 }},
		{"zero gravity", func(ip *ParametersSWE2D) { ip.G = 0 }},
		{"zero depth", func(ip *ParametersSWE2D) { ip.H = 0 }},
		{"bad safety factor", func(ip *ParametersSWE2D) { ip.SafetyFactor = 1.5 }},
		{"no steps", func(ip *ParametersSWE2D) { ip.MaxTimeStep = 0 }},
		{"bad interval", func(ip *ParametersSWE2D) { ip.AnimInterval = 0 }},
		{"negative dt", func(ip *ParametersSWE2D) { ip.Dt = -1 }},
		{"dt above CFL bound", func(ip *ParametersSWE2D) { ip.Dt = ip.CFLLimit() * 1.001 }},
	}
	for _, tc := range cases {
		ip := DefaultParameters()
		tc.mutate(ip)
		require.Error(t, ip.Validate(), tc.name)
	}
	require.NoError(t, DefaultParameters().Validate())
}

func TestDiscretize(t *testing.T) {
	ip := DefaultParameters()
	d := ip.Discretize()
	assert.InDelta(t, 1.e6/149., d.Dx, 1.e-9)
	assert.InDelta(t, 1.e6/149., d.Dy, 1.e-9)
	want := 0.1 * math.Min(d.Dx, d.Dy) / math.Sqrt(9.81*100.)
	assert.InDelta(t, want, d.Dt, 1.e-12)
	assert.LessOrEqual(t, d.Dt, ip.CFLLimit())

	// An explicit dt below the bound is honored unchanged
	ip.Dt = ip.CFLLimit() * 0.5
	require.NoError(t, ip.Validate())
	assert.Equal(t, ip.Dt, ip.Discretize().Dt)
}

func TestWriteReport(t *testing.T) {
	var buf bytes.Buffer
	ip := DefaultParameters()
	require.NoError(t, ip.WriteReport(&buf))
	report := buf.String()
	assert.Contains(t, report, "use_coriolis = false")
	assert.Contains(t, report, "use_friction = false")
	assert.Contains(t, report, "g = 9.81")
	assert.Contains(t, report, "H = 100")
	assert.Contains(t, report, "dx = 6.71 km")
	assert.Contains(t, report, "dt = ")
}
