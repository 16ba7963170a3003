// Command amgkern-demo assembles a small topology with builder, exports it
// through csr.FromCore, runs one kernel pipeline against the resulting
// view, and reports a structured summary. It is a caller of this module's
// kernels in the same spirit as the AMG setup phase that surrounds them:
// it touches only array views and scalars, never kernel internals.
package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/amgkernels/bfs"
	"github.com/katalvlaran/amgkernels/builder"
	"github.com/katalvlaran/amgkernels/color"
	"github.com/katalvlaran/amgkernels/components"
	"github.com/katalvlaran/amgkernels/core"
	"github.com/katalvlaran/amgkernels/csr"
	"github.com/katalvlaran/amgkernels/lloyd"
	"github.com/katalvlaran/amgkernels/mis"
	"github.com/katalvlaran/amgkernels/misk"
)

func main() {
	pipeline := flag.String("pipeline", "mis", "kernel to run: mis, coloring, misk, bfs, components, lloyd, coarsen")
	topology := flag.String("topology", "grid", "topology to build: grid, cycle, complete, path, star, wheel, bipartite, random-sparse, random-regular")
	size := flag.Int("n", 6, "topology size (rows/cols for grid, n1 for bipartite, n otherwise)")
	size2 := flag.Int("n2", 3, "second partition size, used only by bipartite")
	degree := flag.Int("d", 2, "regular degree, used only by random-regular")
	prob := flag.Float64("p", 0.3, "edge probability, used only by random-sparse")
	seed := flag.Int64("seed", 1, "RNG seed, used only by random-sparse and random-regular")
	flag.Parse()

	g, err := buildTopology(*topology, *size, *size2, *degree, *prob, *seed)
	if err != nil {
		log.Error().Err(err).Str("topology", *topology).Msg("failed to build topology")
		os.Exit(1)
	}

	view, ids, err := csr.FromCore(g)
	if err != nil {
		log.Error().Err(err).Msg("failed to export CSR view")
		os.Exit(1)
	}
	log.Info().Int("vertices", int(view.N)).Int("nnz", int(view.NNZ())).Str("topology", *topology).Msg("exported CSR view")

	if err := runPipeline(*pipeline, g, view, ids); err != nil {
		log.Error().Err(err).Str("pipeline", *pipeline).Msg("kernel pipeline failed")
		os.Exit(1)
	}
}

func buildTopology(name string, n, n2, degree int, prob float64, seed int64) (*core.Graph, error) {
	switch name {
	case "grid":
		rows := n
		cols := n
		return builder.BuildGraph(nil, nil, builder.Grid(rows, cols))
	case "cycle":
		return builder.BuildGraph(nil, nil, builder.Cycle(n))
	case "complete":
		return builder.BuildGraph(nil, nil, builder.Complete(n))
	case "path":
		return builder.BuildGraph(nil, nil, builder.Path(n))
	case "star":
		return builder.BuildGraph(nil, nil, builder.Star(n))
	case "wheel":
		return builder.BuildGraph(nil, nil, builder.Wheel(n))
	case "bipartite":
		return builder.BuildGraph(nil, nil, builder.CompleteBipartite(n, n2))
	case "random-sparse":
		bopts := []builder.BuilderOption{builder.WithSeed(seed)}
		return builder.BuildGraph(nil, bopts, builder.RandomSparse(n, prob))
	case "random-regular":
		bopts := []builder.BuilderOption{builder.WithSeed(seed)}
		return builder.BuildGraph(nil, bopts, builder.RandomRegular(n, degree))
	default:
		return nil, errUnknownTopology
	}
}

func runPipeline(name string, g *core.Graph, view *csr.Graph[int], ids []string) error {
	switch name {
	case "mis":
		return runMIS(view)
	case "coloring":
		return runColoring(view)
	case "misk":
		return runMISK(view)
	case "bfs":
		return runBFS(view)
	case "components":
		return runComponents(view, ids)
	case "lloyd":
		return runLloyd(view)
	case "coarsen":
		return runCoarsen(g, view, ids)
	default:
		return errUnknownPipeline
	}
}

func runMIS(view *csr.Graph[int]) error {
	const active, excluded, inMIS = 0, -1, 1
	x := make([]int, view.N)
	count, err := mis.Serial(view, active, excluded, inMIS, x)
	if err != nil {
		return err
	}
	log.Info().Int("promoted", count).Msg("mis.Serial complete")
	return nil
}

func runColoring(view *csr.Graph[int]) error {
	x := make([]int, view.N)
	for i := range x {
		x[i] = color.Uncolored
	}
	numColors, err := color.MISPeel(view, x)
	if err != nil {
		return err
	}
	log.Info().Int("colors", int(numColors)).Msg("color.MISPeel complete")
	return nil
}

func runMISK(view *csr.Graph[int]) error {
	const k = 2
	x := make([]int, view.N)
	y := make([]float64, view.N)
	for i := range y {
		y[i] = float64(i)
	}
	count, err := misk.Parallel(view, k, x, y, -1)
	if err != nil {
		return err
	}
	log.Info().Int("promoted", count).Int("k", k).Msg("misk.Parallel complete")
	return nil
}

func runBFS(view *csr.Graph[int]) error {
	order := make([]int, view.N)
	level := make([]int, view.N)
	for i := range level {
		level[i] = -1
	}
	count, err := bfs.Traverse(view, 0, order, level)
	if err != nil {
		return err
	}
	log.Info().Int("reached", int(count)).Int("total", int(view.N)).Msg("bfs.Traverse complete")
	return nil
}

func runComponents(view *csr.Graph[int], ids []string) error {
	labels := make([]int, view.N)
	k, err := components.ConnectedComponents(view, labels)
	if err != nil {
		return err
	}
	log.Info().Int("components", int(k)).Int("vertices", len(ids)).Msg("components.ConnectedComponents complete")
	return nil
}

func runLloyd(view *csr.Graph[int]) error {
	ax := make([]float64, len(view.Aj))
	for i := range ax {
		ax[i] = 1
	}
	weighted, err := csr.NewWeighted(view.N, view.Ap, view.Aj, ax)
	if err != nil {
		return err
	}

	c := []int{0, int(view.N) - 1}
	d := make([]float64, view.N)
	cm := make([]int, view.N)
	if err := lloyd.Approximate(weighted, c, d, cm); err != nil {
		return err
	}
	log.Info().Ints("seeds", c).Msg("lloyd.Approximate complete")
	return nil
}

// runCoarsen drives one level of aggregation coarsening directly against the
// mutable core.Graph: mis.Serial picks aggregate seeds over the exported CSR
// view, then every non-seed vertex is folded into a seed neighbor via
// Graph.Contract, producing the next coarse level in place.
func runCoarsen(g *core.Graph, view *csr.Graph[int], ids []string) error {
	const active, excluded, inMIS = 0, -1, 1
	x := make([]int, view.N)
	seedCount, err := mis.Serial(view, active, excluded, inMIS, x)
	if err != nil {
		return err
	}

	before := g.Stats()
	log.Info().Int("vertices", before.VertexCount).Int("edges", before.EdgeCount).Int("seeds", seedCount).
		Msg("coarsen: fine level")

	for i, xi := range x {
		if xi == inMIS {
			continue
		}

		seed, ok := nearestSeed(view, x, i)
		if !ok {
			continue
		}

		if err := g.Contract(ids[seed], ids[i]); err != nil {
			return err
		}
	}

	after := g.Stats()
	log.Info().Int("vertices", after.VertexCount).Int("edges", after.EdgeCount).Msg("coarsen: coarse level")

	if after.VertexCount > 0 {
		seedID := ids[0]
		if in, out, undirected, err := g.Degree(seedID); err == nil {
			log.Info().Str("vertex", seedID).Int("in", in).Int("out", out).Int("undirected", undirected).
				Msg("coarsen: aggregate seed degree")
		}
	}

	return nil
}

// nearestSeed returns the first MIS-selected neighbor of vertex i in the CSR
// adjacency, or ok=false if i has none (an isolated non-seed vertex stays
// uncontracted at this level).
func nearestSeed(view *csr.Graph[int], x []int, i int) (seed int, ok bool) {
	const inMIS = 1
	for _, j := range view.Aj[view.Ap[i]:view.Ap[i+1]] {
		if x[j] == inMIS {
			return j, true
		}
	}

	return 0, false
}
