package InputParameters

import (
	"fmt"
	"sort"

	"github.com/ghodss/yaml"

	"github.com/notargets/meshgrad/grid"
	"github.com/notargets/meshgrad/types"
	"github.com/notargets/meshgrad/utils"
)

// Parameters obtained from the YAML grid file
type GridParameters struct {
	Title        string             `yaml:"Title"`
	Width        int                `yaml:"Width"`
	Height       int                `yaml:"Height"`
	Colors       [][3]float64       `yaml:"Colors"`       // Row-major, one [r,g,b] per point
	Positions    map[int][2]float64 `yaml:"Positions"`    // Row-major point index to moved [x,y]
	Subdivisions int                `yaml:"Subdivisions"` // Zero means the command line value is used
}

// DefaultGridParameters is the 3x3 grid the editor starts with, rows black, blue and green
func DefaultGridParameters() (gp *GridParameters) {
	var (
		black = [3]float64{0, 0, 0}
		blue  = [3]float64{0, 0, 1}
		green = [3]float64{0, 1, 0}
	)
	gp = &GridParameters{
		Title:  "default",
		Width:  3,
		Height: 3,
		Colors: [][3]float64{
			black, black, black,
			blue, blue, blue,
			green, green, green,
		},
	}
	return
}

func (gp *GridParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, gp)
}

func (gp *GridParameters) Marshal() ([]byte, error) {
	return yaml.Marshal(gp)
}

func (gp *GridParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", gp.Title)
	fmt.Printf("[%d x %d]\t\t= Grid Dimensions\n", gp.Width, gp.Height)
	fmt.Printf("[%d]\t\t\t\t= Subdivisions\n", gp.Subdivisions)
	for h := 0; h < gp.Height; h++ {
		for w := 0; w < gp.Width; w++ {
			n := h*gp.Width + w
			if n < len(gp.Colors) {
				fmt.Printf("Colors[%d,%d] = %v\n", w, h, gp.Colors[n])
			}
		}
	}
	keys := make([]int, 0, len(gp.Positions))
	for k := range gp.Positions {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	for _, key := range keys {
		fmt.Printf("Positions[%d] = %v\n", key, gp.Positions[key])
	}
}

// BuildGrid lays out the grid and then applies the moved positions on top of the even layout
func (gp *GridParameters) BuildGrid() (g *grid.ControlGrid, err error) {
	colors := make([]utils.Vec3, len(gp.Colors))
	for i, c := range gp.Colors {
		colors[i] = c
	}
	if g, err = grid.New(gp.Width, gp.Height, colors); err != nil {
		return nil, fmt.Errorf("grid \"%s\": %w", gp.Title, err)
	}
	for ind, pos := range gp.Positions {
		if ind < 0 || ind >= len(g.Points) {
			return nil, fmt.Errorf("grid \"%s\": moved point %d is outside [0,%d): %w",
				gp.Title, ind, len(g.Points), types.ErrIndexOutOfRange)
		}
		g.Points[ind].Position = pos
	}
	return
}
