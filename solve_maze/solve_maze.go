// This defines a standalone executable for solving a maze text file and
// rendering the outcome, without running the full HTTP service.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/beka-birhanu/maze-solver-api/maze"
	"github.com/beka-birhanu/maze-solver-api/render"
	"github.com/beka-birhanu/maze-solver-api/search"
)

func run() int {
	var mazeFile, strategyName, outputFile string
	var showExplored bool
	flag.StringVar(&mazeFile, "maze", "", "The maze text file to solve: "+
		"'A' marks the start, 'B' the goal, spaces are open, anything else is a wall.")
	flag.StringVar(&strategyName, "strategy", "bfs", "The search strategy: dfs or bfs.")
	flag.BoolVar(&showExplored, "show_explored", false, "If set, the rendered "+
		"image also colors every cell the search expanded.")
	flag.StringVar(&outputFile, "output_file", "", "If set, the PNG of the "+
		"solved maze is written here.")
	flag.Parse()

	if mazeFile == "" {
		fmt.Printf("Usage: %s -maze <file> [-strategy dfs|bfs] [-show_explored] [-output_file out.png]\n", os.Args[0])
		return 1
	}

	strategy, err := search.ParseStrategy(strategyName)
	if err != nil {
		fmt.Printf("Invalid strategy %s: %s\n", strategyName, err)
		return 1
	}

	data, err := os.ReadFile(mazeFile)
	if err != nil {
		fmt.Printf("Error reading maze file %s: %s\n", mazeFile, err)
		return 1
	}

	grid, err := maze.Parse(data)
	if err != nil {
		fmt.Printf("Error parsing maze file %s: %s\n", mazeFile, err)
		return 1
	}

	fmt.Println("Maze:")
	fmt.Println(maze.Render(grid, nil))
	fmt.Println("Solving...")

	res, err := search.Solve(grid, strategy)
	if err != nil {
		fmt.Printf("Error solving maze: %s\n", err)
		return 1
	}

	fmt.Println("States Explored:", len(res.Explored))
	if !res.Found {
		fmt.Println("No Solution")
		return 1
	}

	fmt.Println("Solution:")
	fmt.Println(maze.Render(grid, res))

	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			fmt.Printf("Error creating output file %s: %s\n", outputFile, err)
			return 1
		}
		defer f.Close()
		if err := render.WritePNG(f, grid, res, showExplored); err != nil {
			fmt.Printf("Error writing image to %s: %s\n", outputFile, err)
			return 1
		}
		fmt.Printf("Maze solution saved as %s\n", outputFile)
	}

	return 0
}

func main() {
	os.Exit(run())
}
