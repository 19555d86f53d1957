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

	"github.com/spf13/cobra"

	"github.com/notargets/meshgrad/mesh"
	"github.com/notargets/meshgrad/readfiles"
	"github.com/notargets/meshgrad/types"
)

// InfoCmd represents the info command
var InfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Validate a mesh file and print its counts and bounds",
	Long: `
meshgrad info -F mesh-1700000000-subdiv3.json --field x,green`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var meshFile string
		if meshFile, err = cmd.Flags().GetString("meshFile"); err != nil {
			return
		}
		if len(meshFile) == 0 {
			return fmt.Errorf("must supply a mesh file (-F, --meshFile)")
		}
		var (
			m      *mesh.Mesh
			fields []types.FIELD
			names  []string
		)
		if names, err = cmd.Flags().GetStringSlice("field"); err != nil {
			return
		}
		for _, name := range names {
			var f types.FIELD
			if f, err = types.NewField(name); err != nil {
				return
			}
			fields = append(fields, f)
		}
		if m, err = readfiles.ReadMeshFile(meshFile); err != nil {
			return
		}
		PrintInfo(cmd.OutOrStdout(), meshFile, m, fields...)
		return
	},
}

func init() {
	rootCmd.AddCommand(InfoCmd)
	InfoCmd.Flags().StringP("meshFile", "F", "", "mesh file to inspect (.json, .gltf or .glb)")
	InfoCmd.Flags().StringSlice("field", nil, "also print the range of these fields: x, y, r, g, b")
}

// PrintInfo always prints, --quiet does not apply to output that was asked for
func PrintInfo(w io.Writer, name string, m *mesh.Mesh, fields ...types.FIELD) {
	lo, hi := m.Bounds()
	fmt.Fprintf(w, "\"%s\"\t\t= Mesh\n", name)
	fmt.Fprintf(w, "[%d]\t\t\t\t= Vertices\n", m.NumVertices())
	fmt.Fprintf(w, "[%d]\t\t\t\t= Triangles\n", m.NumTriangles())
	fmt.Fprintf(w, "%v\t= Min\n", lo)
	fmt.Fprintf(w, "%v\t= Max\n", hi)
	for _, f := range fields {
		flo, fhi := m.FieldRange(f)
		fmt.Fprintf(w, "[%g, %g]\t\t= %s range\n", flo, fhi, f)
	}
}
