/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/oceanmodeling/goswe/InputParameters"
	"github.com/oceanmodeling/goswe/model_problems/SWE2D"
)

type ModelSWE struct {
	ICFile    string
	OutputDir string
	NP        int
	Profile   bool
}

// SweCmd represents the swe command
var SweCmd = &cobra.Command{
	Use:   "swe",
	Short: "Two dimensional shallow water solver on a staggered rectangular grid",
	Long: `Two dimensional shallow water solver on a staggered rectangular grid.
Momentum equations are linear, the continuity equation is solved in its
nonlinear form with an upwind scheme. Field snapshots are exported for
visualization.`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		msw := &ModelSWE{}
		if msw.ICFile, err = cmd.Flags().GetString("inputConditionsFile"); err != nil {
			panic(err)
		}
		msw.OutputDir, _ = cmd.Flags().GetString("outputDir")
		msw.NP, _ = cmd.Flags().GetInt("np")
		msw.Profile, _ = cmd.Flags().GetBool("profile")
		ip := processInput(msw)
		if maxSteps, _ := cmd.Flags().GetInt("maxSteps"); maxSteps != 0 {
			ip.MaxTimeStep = maxSteps
		}
		if interval, _ := cmd.Flags().GetInt("interval"); interval != 0 {
			ip.AnimInterval = interval
		}
		RunSWE(msw, ip)
	},
}

func processInput(msw *ModelSWE) (ip *InputParameters.ParametersSWE2D) {
	var (
		err error
	)
	if len(msw.ICFile) == 0 {
		err := fmt.Errorf("must supply an input parameters file (-I, --inputConditionsFile) in YAML format")
		fmt.Printf("error: %s\n", err.Error())
		exampleFile := `
########################################
Title: "Gaussian Bump"
Lx: 1.e6
Ly: 1.e6
Nx: 150
Ny: 150
G: 9.81
H: 100.
SafetyFactor: 0.1
MaxTimeStep: 5000
AnimInterval: 20
UseCoriolis: false
UseFriction: false
UseWind: false
########################################
`
		fmt.Printf("Example File:%s\n", exampleFile)
		os.Exit(1)
	}
	var data []byte
	if data, err = ioutil.ReadFile(msw.ICFile); err != nil {
		panic(err)
	}
	ip = InputParameters.DefaultParameters()
	if err = ip.Parse(data); err != nil {
		panic(err)
	}
	return
}

func init() {
	rootCmd.AddCommand(SweCmd)
	SweCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file for input parameters like:\n\t- Lx, Ly, Nx, Ny\n\t- G, H\n\t- SafetyFactor (CFL)")
	SweCmd.Flags().StringP("outputDir", "o", ".", "directory for the parameter report and snapshot export")
	SweCmd.Flags().IntP("np", "p", 1, "number of goroutines used for the per-step field updates")
	SweCmd.Flags().Bool("profile", false, "write a CPU profile of the run")
	SweCmd.Flags().Int("maxSteps", 0, "override MaxTimeStep from the input file")
	SweCmd.Flags().Int("interval", 0, "override AnimInterval from the input file")
}

func RunSWE(msw *ModelSWE, ip *InputParameters.ParametersSWE2D) {
	if err := ip.Validate(); err != nil {
		fmt.Printf("configuration error: %s\n", err.Error())
		os.Exit(1)
	}
	ip.Print()
	if err := os.MkdirAll(msw.OutputDir, 0755); err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	// Write the parameter report before the first step, the report is not
	// consumed by the solver itself
	reportFile := filepath.Join(msw.OutputDir, "param_output.txt")
	f, err := os.Create(reportFile)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	if err = ip.WriteReport(f); err != nil {
		panic(err)
	}
	if err = f.Close(); err != nil {
		panic(err)
	}
	if msw.Profile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(msw.OutputDir)).Stop()
	}
	c, err := SWE2D.NewSWE2D(ip, msw.NP)
	if err != nil {
		fmt.Printf("configuration error: %s\n", err.Error())
		os.Exit(1)
	}
	c.Run()
	if err = c.Sampler.WriteGnuplot(msw.OutputDir); err != nil {
		fmt.Printf("snapshot export failed: %s\n", err.Error())
		os.Exit(1)
	}
	fmt.Printf("wrote %d snapshots to %s\n", len(c.Sampler.Snapshots), msw.OutputDir)
}
