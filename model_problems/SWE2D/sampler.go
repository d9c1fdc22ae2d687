package SWE2D

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/oceanmodeling/goswe/utils"
)

// Snapshot is an immutable deep copy of the fields at a sampled step, the
// hand-off unit for the visualization collaborator
type Snapshot struct {
	Step      int
	Time      float64 // Simulated time in seconds
	U, V, Eta utils.Matrix
}

// Sampler records a snapshot every Interval completed steps into an ordered,
// pre-sized sequence. Copies, never references: the live fields are mutated
// in place on subsequent steps.
type Sampler struct {
	Interval  int
	Snapshots []Snapshot
	dt        float64
}

func NewSampler(interval, maxSteps int, dt float64) (s *Sampler) {
	s = &Sampler{
		Interval:  interval,
		Snapshots: make([]Snapshot, 0, maxSteps/interval),
		dt:        dt,
	}
	return
}

// Observe is called after each completed step with the post-swap fields
func (s *Sampler) Observe(step int, f *Fields) {
	if step%s.Interval != 0 {
		return
	}
	s.Snapshots = append(s.Snapshots, Snapshot{
		Step: step,
		Time: float64(step) * s.dt,
		U:    f.U.Copy(),
		V:    f.V.Copy(),
		Eta:  f.Eta.Copy(),
	})
}

// WriteGnuplot exports every snapshot as whitespace separated matrix files
// (one per field, gnuplot "matrix with image" format) plus an index file
// mapping snapshot number to step and simulated time
func (s *Sampler) WriteGnuplot(dir string) (err error) {
	idx, err := os.Create(filepath.Join(dir, "snapshots.idx"))
	if err != nil {
		return
	}
	defer idx.Close()
	for n, snap := range s.Snapshots {
		for _, field := range []struct {
			name string
			m    utils.Matrix
		}{
			{"u", snap.U},
			{"v", snap.V},
			{"eta", snap.Eta},
		} {
			name := fmt.Sprintf("%s_%04d.dat", field.name, n)
			if err = writeMatrix(filepath.Join(dir, name), field.m); err != nil {
				return
			}
		}
		if _, err = fmt.Fprintf(idx, "%d %d %.6f\n", n, snap.Step, snap.Time); err != nil {
			return
		}
	}
	return
}

func writeMatrix(path string, m utils.Matrix) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	nr, nc := m.Dims()
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			if j != 0 {
				if _, err = w.WriteString(" "); err != nil {
					return
				}
			}
			if _, err = fmt.Fprintf(w, "%.8e", m.At(i, j)); err != nil {
				return
			}
		}
		if _, err = w.WriteString("\n"); err != nil {
			return
		}
	}
	return w.Flush()
}
