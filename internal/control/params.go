package control

import (
	"fmt"

	"lifebox/internal/core"
)

// Parameters reports the board, camera and pointer state for the HUD.
func (c *Controller) Parameters() core.ParameterSnapshot {
	f := c.last
	cursor := "--"
	neighbors := "--"
	if f.Valid {
		cursor = fmt.Sprintf("%d, %d", f.Cell.X, f.Cell.Y)
	}
	if r := c.report; r != nil {
		neighbors = fmt.Sprintf("%d @ %d, %d", r.Neighbors, r.Cell.X, r.Cell.Y)
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Board",
			Params: []core.Parameter{
				core.IntParam("generation", "Generation", c.grid.Generation()),
				core.IntParam("size", "Size", c.grid.Size()),
				core.IntParam("population", "Population", c.grid.Population()),
			},
		},
		{
			Name: "Camera",
			Params: []core.Parameter{
				core.FloatParam("zoom", "Zoom", c.cam.Zoom()),
				core.TextParam("target", "Target", fmt.Sprintf("%.0f, %.0f", c.cam.Target[0], c.cam.Target[1])),
			},
		},
		{
			Name: "Pointer",
			Params: []core.Parameter{
				core.TextParam("cell", "Cell", cursor),
				core.BoolParam("alive", "Alive", f.Valid && c.grid.Alive(f.Cell.X, f.Cell.Y)),
				core.TextParam("inspect", "Neighbors", neighbors),
			},
		},
	}}
}
