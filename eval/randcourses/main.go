package main

import (
	"flag"
	"math/rand"
	"strconv"
	"time"

	"github.com/roverlab/waypointx/pkg/courseio"
	log "github.com/roverlab/waypointx/pkg/logger"
	"github.com/roverlab/waypointx/pkg/planner"
	"github.com/roverlab/waypointx/pkg/util"
)

var (
	numCourses   = flag.Int("courses", 1000, "number of random courses to generate")
	numWaypoints = flag.Int("waypoints", 1000, "waypoints per course")
	seed         = flag.Int64("seed", 42, "rng seed")
	courseFile   = flag.String("out", "./data/rand_courses.txt.bz2", "generated course file")
	numWorkers   = flag.Int("workers", 8, "planner workers")
)

// generates random courses on the default 100x100 field, writes them
// compressed, then times a full batch plan over them.
func main() {
	flag.Parse()
	logger, err := log.New()
	if err != nil {
		panic(err)
	}

	rng := rand.New(rand.NewSource(*seed))

	courses := make([]*planner.Course, *numCourses)
	for i := range courses {
		waypoints := make([]planner.Waypoint, *numWaypoints)
		penalties := make([]float64, *numWaypoints)
		for j := range waypoints {
			waypoints[j] = planner.NewWaypoint(float64(1+rng.Intn(99)), float64(1+rng.Intn(99)))
			penalties[j] = float64(1 + rng.Intn(100))
		}
		courses[i], err = planner.NewCourse(waypoints, penalties)
		if err != nil {
			panic(err)
		}
	}

	if err := courseio.WriteCourses(*courseFile, courses); err != nil {
		panic(err)
	}
	logger.Sugar().Infof("wrote %v courses to %v", *numCourses, *courseFile)

	loaded, err := courseio.ReadCourses(*courseFile)
	if err != nil {
		panic(err)
	}

	p := planner.NewPlanner(planner.DefaultParams(), logger, *numWorkers)

	before := time.Now()
	results, err := p.PlanAll(loaded)
	if err != nil {
		panic(err)
	}
	duration := time.Since(before)

	costs := make([]float64, len(results))
	visited := 0
	for i, res := range results {
		costs[i] = res.GetMinCost()
		visited += res.NumVisited()
	}

	logger.Sugar().Infof("planned %v courses in %v ms", len(results), duration.Milliseconds())
	logger.Sugar().Infof("mean min cost %v, mean visited waypoints %v",
		strconv.FormatFloat(util.Mean(costs), 'f', -1, 64),
		float64(visited)/float64(len(results)))

	outPath, err := courseio.WriteResults(*courseFile, results)
	if err != nil {
		panic(err)
	}
	logger.Sugar().Infof("results written to %v", outPath)
}
