package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"lifebox/internal/life"
)

type cellList [][2]int

func (l *cellList) String() string {
	parts := make([]string, len(*l))
	for i, c := range *l {
		parts[i] = fmt.Sprintf("%d,%d", c[0], c[1])
	}
	return strings.Join(parts, " ")
}

func (l *cellList) Set(value string) error {
	x, y, ok := strings.Cut(value, ",")
	if !ok {
		return fmt.Errorf("cell %q: want x,y", value)
	}
	cx, err := strconv.Atoi(strings.TrimSpace(x))
	if err != nil {
		return fmt.Errorf("cell %q: %w", value, err)
	}
	cy, err := strconv.Atoi(strings.TrimSpace(y))
	if err != nil {
		return fmt.Errorf("cell %q: %w", value, err)
	}
	*l = append(*l, [2]int{cx, cy})
	return nil
}

func main() {
	size := flag.Int("size", life.DefaultSize, "active grid size")
	steps := flag.Int("steps", 10, "generations to simulate")
	seed := flag.Int64("seed", 0, "randomize the board with this seed (0 leaves it empty)")
	show := flag.Bool("print", false, "print the final board")
	var cells cellList
	flag.Var(&cells, "cell", "live cell in x,y form (repeatable)")
	flag.Parse()

	if err := run(os.Stdout, *size, *steps, *seed, cells, *show); err != nil {
		log.Fatal(err)
	}
}

func run(w io.Writer, size, steps int, seed int64, cells cellList, show bool) error {
	if steps < 0 {
		return fmt.Errorf("steps must be non-negative, got %d", steps)
	}
	g := life.NewGrid(life.MaxSize, size)
	if seed != 0 {
		g.Randomize(seed)
	}
	for _, c := range cells {
		g.Set(c[0], c[1], true)
	}

	fmt.Fprintf(w, "size %d, generation %d: population %d\n", g.Size(), g.Generation(), g.Population())
	for i := 0; i < steps; i++ {
		g.Step()
		fmt.Fprintf(w, "size %d, generation %d: population %d\n", g.Size(), g.Generation(), g.Population())
	}
	if show {
		printBoard(w, g)
	}
	return nil
}

func printBoard(w io.Writer, g *life.Grid) {
	var sb strings.Builder
	for y := 0; y < g.Size(); y++ {
		for x := 0; x < g.Size(); x++ {
			if g.Alive(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	io.WriteString(w, sb.String())
}
