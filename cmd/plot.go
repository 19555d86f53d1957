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

	"github.com/spf13/cobra"

	"github.com/notargets/meshgrad/InputParameters"
	"github.com/notargets/meshgrad/ferguson"
	"github.com/notargets/meshgrad/grid"
	"github.com/notargets/meshgrad/mesh"
	"github.com/notargets/meshgrad/readfiles"
	"github.com/notargets/meshgrad/utils"
)

type Plot struct {
	MeshFile   string
	GridFile   string
	Preview    bool
	PlotPoints bool
	EdgeSteps  int
	Dots       int
	Hold       int // Milliseconds the window stays up, zero waits forever
}

// PlotCmd represents the plot command
var PlotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Display a mesh artifact, or the patch preview of a control grid",
	Long: `
Plots a mesh file written by generate, shaded by vertex luminance, or with --preview plots the
boundary curves and interior dots of every patch of a grid, as an editor draws them.

meshgrad plot -F mesh.json
meshgrad plot -I grid.yaml --preview`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		pl := &Plot{}
		report(cmd.OutOrStdout(), "plot called\n")
		if pl.MeshFile, err = cmd.Flags().GetString("meshFile"); err != nil {
			return
		}
		if pl.GridFile, err = cmd.Flags().GetString("inputGridFile"); err != nil {
			return
		}
		pl.Preview, _ = cmd.Flags().GetBool("preview")
		pl.PlotPoints, _ = cmd.Flags().GetBool("points")
		pl.EdgeSteps, _ = cmd.Flags().GetInt("edgeSteps")
		pl.Dots, _ = cmd.Flags().GetInt("dots")
		pl.Hold, _ = cmd.Flags().GetInt("hold")
		return RunPlot(pl)
	},
}

func init() {
	rootCmd.AddCommand(PlotCmd)
	PlotCmd.Flags().StringP("meshFile", "F", "", "mesh file to plot (.json, .gltf or .glb)")
	PlotCmd.Flags().StringP("inputGridFile", "I", "", "YAML grid definition file for --preview, the default 3x3 grid is used when omitted")
	PlotCmd.Flags().BoolP("preview", "p", false, "plot the patch preview of the grid instead of a mesh file")
	PlotCmd.Flags().Bool("points", false, "mark the mesh vertices")
	PlotCmd.Flags().Int("edgeSteps", ferguson.DefaultEdgeSteps, "segments per patch edge curve in the preview")
	PlotCmd.Flags().Int("dots", ferguson.DefaultDots, "interior preview dots per patch side")
	PlotCmd.Flags().IntP("hold", "d", 0, "milliseconds to keep the plot up, 0 waits until interrupted")
}

func RunPlot(pl *Plot) (err error) {
	switch {
	case pl.Preview:
		var (
			gp       *InputParameters.GridParameters
			g        *grid.ControlGrid
			previews []ferguson.PatchPreview
		)
		if gp, err = processGridInput(pl.GridFile); err != nil {
			return
		}
		if g, err = gp.BuildGrid(); err != nil {
			return
		}
		if previews, err = ferguson.Preview(g, pl.EdgeSteps, pl.Dots); err != nil {
			return
		}
		if _, err = readfiles.PlotPreview(previews); err != nil {
			return
		}
	case len(pl.MeshFile) != 0:
		var m *mesh.Mesh
		if m, err = readfiles.ReadMeshFile(pl.MeshFile); err != nil {
			return
		}
		if _, err = readfiles.PlotMesh(m, pl.PlotPoints); err != nil {
			return
		}
	default:
		return fmt.Errorf("must supply a mesh file (-F, --meshFile) or ask for a grid preview (-p, --preview)")
	}
	if pl.Hold > 0 {
		utils.SleepFor(pl.Hold)
		return
	}
	for {
		utils.SleepFor(50000)
	}
}
