package pkg

const (
	INF_WEIGHT     float64 = 1e15
	INF_WEIGHT_INT         = 1e15
)

// defaults of the planner command surface. overridable via flags or config file.
const (
	DEFAULT_COURSE_FILE = "sample.txt"

	DEFAULT_START_X float64 = 0.0
	DEFAULT_START_Y float64 = 0.0
	DEFAULT_GOAL_X  float64 = 100.0
	DEFAULT_GOAL_Y  float64 = 100.0

	DEFAULT_VELOCITY_MPS      float64 = 2.0
	DEFAULT_DWELL_TIME_SECOND float64 = 10.0
)

const (
	RESULT_FILE_EXTENSION = ".out"
	COURSE_FILE_EXTENSION = ".txt"

	// number of decimal places kept when writing minimum traversal times.
	RESULT_DECIMAL_PLACES = 3
)

const (
	DEBUG = false
)
