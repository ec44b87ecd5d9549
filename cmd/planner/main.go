package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/roverlab/waypointx/pkg"
	"github.com/roverlab/waypointx/pkg/courseio"
	"github.com/roverlab/waypointx/pkg/logger"
	"github.com/roverlab/waypointx/pkg/planner"
	"github.com/roverlab/waypointx/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func main() {
	log, err := logger.New()
	if err != nil {
		panic(err)
	}

	viper.SetDefault("PLANNER_COURSE_FILE", pkg.DEFAULT_COURSE_FILE)
	viper.SetDefault("PLANNER_START", fmt.Sprintf("%v,%v", pkg.DEFAULT_START_X, pkg.DEFAULT_START_Y))
	viper.SetDefault("PLANNER_GOAL", fmt.Sprintf("%v,%v", pkg.DEFAULT_GOAL_X, pkg.DEFAULT_GOAL_Y))
	viper.SetDefault("PLANNER_VELOCITY", pkg.DEFAULT_VELOCITY_MPS)
	viper.SetDefault("PLANNER_DWELL_TIME", pkg.DEFAULT_DWELL_TIME_SECOND)
	if err := util.ReadConfig(); err != nil {
		log.Debug("no config file found, using defaults", zap.Error(err))
	}

	var (
		courseFile = flag.String("file", viper.GetString("PLANNER_COURSE_FILE"), "course file to solve")
		initPos    = flag.String("initial_position", viper.GetString("PLANNER_START"), "rover start position x,y in meters")
		goalPos    = flag.String("goal_position", viper.GetString("PLANNER_GOAL"), "rover goal position x,y in meters")
		velocity   = flag.Float64("velocity", viper.GetFloat64("PLANNER_VELOCITY"), "rover velocity in meters/second")
		dwellTime  = flag.Float64("dwell_time", viper.GetFloat64("PLANNER_DWELL_TIME"), "dwell time charged per waypoint arrival in seconds")
		numWorkers = flag.Int("workers", 0, "planner workers, 0 means one per cpu")
	)
	flag.Parse()

	start, err := planner.ParsePosition(*initPos)
	if err != nil {
		usageError(err)
	}
	goal, err := planner.ParsePosition(*goalPos)
	if err != nil {
		usageError(err)
	}
	params, err := planner.NewParams(start, goal, *velocity, *dwellTime)
	if err != nil {
		usageError(err)
	}

	courses, err := courseio.ReadCourses(*courseFile)
	if err != nil {
		log.Fatal("read courses", zap.String("file", *courseFile), zap.Error(err))
	}
	log.Info("courses loaded", zap.String("file", *courseFile), zap.Int("courses", len(courses)))

	results, err := planner.NewPlanner(params, log, *numWorkers).PlanAll(courses)
	if err != nil {
		log.Fatal("plan courses", zap.Error(err))
	}

	outPath, err := courseio.WriteResults(*courseFile, results)
	if err != nil {
		log.Fatal("write results", zap.Error(err))
	}
	log.Info("results written", zap.String("file", outPath), zap.Int("courses", len(results)))
}

func usageError(err error) {
	fmt.Fprintln(os.Stderr, err)
	flag.Usage()
	os.Exit(2)
}
