package main

import (
	"github.com/spf13/cobra"

	"github.com/jmigpin/nodedrag/scene"
)

var exampleCmd = &cobra.Command{
	Use:   "example",
	Short: "Print an example scene",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return exampleScene().Encode(cmd.OutOrStdout())
	},
}

func exampleScene() *scene.Scene {
	pt := func(x, y float64) *[2]float64 { return &[2]float64{x, y} }
	return &scene.Scene{
		Nodes: []scene.Node{
			{Id: "graph", Rect: [4]float64{20, 20, 760, 560}},
			{Id: "source", Parent: "graph", Rect: [4]float64{40, 60, 140, 80}, Draggable: true},
			{Id: "filter", Parent: "graph", Rect: [4]float64{260, 60, 140, 80}, Draggable: true},
			{Id: "sink", Parent: "graph", Rect: [4]float64{480, 60, 140, 80}, Draggable: true},
		},
		Steps: []scene.Step{
			{Down: pt(300, 100)},
			{Move: pt(310, 150)},
			{Move: pt(330, 260)},
			{Up: pt(330, 260)},
		},
	}
}
