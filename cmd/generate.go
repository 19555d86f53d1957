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
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/meshgrad/InputParameters"
	"github.com/notargets/meshgrad/grid"
	"github.com/notargets/meshgrad/mesh"
	"github.com/notargets/meshgrad/readfiles"
	"github.com/notargets/meshgrad/tessellate"
	"github.com/notargets/meshgrad/utils"
)

type Generate struct {
	GridFile      string
	Subdivisions  int
	OutputDir     string
	Format        readfiles.Format
	Weld          bool
	WeldTolerance float64
}

// GenerateCmd represents the generate command
var GenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Tessellate a control grid and write the mesh artifact",
	Long: `
Reads a grid definition (or uses the default 3x3 grid), tessellates every patch with the
requested number of subdivisions and writes mesh-<unix time>-subdiv<N>.<ext> files.

meshgrad generate -I grid.yaml -s 4 -o out --format both`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			gen = &Generate{}
			out = cmd.OutOrStdout()
			gp  *InputParameters.GridParameters
		)
		report(out, "generate called\n")
		if gen.GridFile, err = cmd.Flags().GetString("inputGridFile"); err != nil {
			return
		}
		if gen.Format, err = readfiles.NewFormat(viper.GetString("format")); err != nil {
			return
		}
		gen.OutputDir = viper.GetString("outputDir")
		gen.Weld = viper.GetBool("weld")
		gen.WeldTolerance = viper.GetFloat64("weldTolerance")
		if gp, err = processGridInput(gen.GridFile); err != nil {
			return
		}
		gen.Subdivisions = viper.GetInt("subdivisions")
		if !cmd.Flags().Changed("subdivisions") && gp.Subdivisions > 0 {
			gen.Subdivisions = gp.Subdivisions
		}
		if !viper.GetBool("quiet") {
			gp.Print()
		}
		_, err = RunGenerate(gen, gp, time.Now(), out)
		return
	},
}

func init() {
	rootCmd.AddCommand(GenerateCmd)
	GenerateCmd.Flags().StringP("inputGridFile", "I", "", "YAML grid definition file, the default 3x3 grid is used when omitted")
	GenerateCmd.Flags().IntP("subdivisions", "s", 0, "subdivisions per patch side, a patch gets (s+1)^2 cells")
	GenerateCmd.Flags().StringP("outputDir", "o", ".", "directory the mesh files are written to")
	GenerateCmd.Flags().String("format", "json", "mesh file format: json, gltf or both")
	GenerateCmd.Flags().Bool("weld", false, "merge coincident vertices along patch boundaries")
	GenerateCmd.Flags().Float64("weldTolerance", 1.e-6, "position and color distance under which vertices are merged")
	for _, key := range []string{"subdivisions", "outputDir", "format", "weld", "weldTolerance"} {
		if err := viper.BindPFlag(key, GenerateCmd.Flags().Lookup(key)); err != nil {
			panic(err)
		}
	}
}

// processGridInput reads the grid file, or hands back the default grid when there is none
func processGridInput(gridFile string) (gp *InputParameters.GridParameters, err error) {
	if len(gridFile) == 0 {
		return InputParameters.DefaultGridParameters(), nil
	}
	if gp, err = readfiles.ReadGridFile(gridFile); err != nil {
		exampleFile := `
########################################
Title: "Test Grid"
Width: 3
Height: 2
Subdivisions: 4
Colors:
  - [1, 0, 0]
  - [0, 1, 0]
  - [0, 0, 1]
  - [1, 1, 0]
  - [0, 1, 1]
  - [1, 0, 1]
Positions:
  1: [0.6, 0.1]
########################################
`
		fmt.Printf("Example File:%s\n", exampleFile)
	}
	return
}

func RunGenerate(gen *Generate, gp *InputParameters.GridParameters, now time.Time, out io.Writer) (paths []string, err error) {
	var (
		g *grid.ControlGrid
		m *mesh.Mesh
	)
	if g, err = gp.BuildGrid(); err != nil {
		return
	}
	if m, err = tessellate.Tessellate(g, gen.Subdivisions); err != nil {
		return
	}
	report(out, "%d patches, %d subdivisions: %d vertices, %d triangles\n",
		g.NumPatches(), gen.Subdivisions, m.NumVertices(), m.NumTriangles())
	if gen.Weld {
		if m, err = m.Weld(gen.WeldTolerance); err != nil {
			return
		}
		report(out, "welded to %d vertices\n", m.NumVertices())
	}
	if paths, err = readfiles.WriteMesh(gen.OutputDir, m, now, gen.Subdivisions, gen.Format); err != nil {
		return
	}
	for _, path := range paths {
		report(out, "wrote %s\n", path)
	}
	report(out, "%s\n", utils.GetMemUsage())
	return
}
