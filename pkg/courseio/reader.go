package courseio

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"github.com/roverlab/waypointx/pkg/planner"
	"github.com/roverlab/waypointx/pkg/util"
)

// course files are plain text. one course is a waypoint count header followed
// by that many "x y penalty" lines; a count of 0 terminates the file. blank
// lines are ignored everywhere. files ending in .bz2 are decompressed on the
// fly, which is how the big generated benchmark inputs are stored.

func ReadCourses(filename string) ([]*planner.Course, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(filename, ".bz2") {
		bz, err := bzip2.NewReader(f, nil)
		if err != nil {
			return nil, err
		}
		defer bz.Close()
		r = bz
	}

	return readCourses(bufio.NewReader(r))
}

func readCourses(br *bufio.Reader) ([]*planner.Course, error) {
	courses := make([]*planner.Course, 0)

	for {
		header, err := readNonEmptyLine(br)
		if err == io.EOF {
			// a missing 0 sentinel just ends the run at EOF
			break
		}
		if err != nil {
			return nil, err
		}

		n, err := util.StringToInt(header)
		if err != nil {
			return nil, util.WrapErrorf(planner.ErrInputMismatch, util.ErrBadParamInput,
				"course %d: waypoint count header %q is not an integer", len(courses)+1, header)
		}
		if n == 0 {
			break
		}
		if n < 0 {
			return nil, util.WrapErrorf(planner.ErrInputMismatch, util.ErrBadParamInput,
				"course %d: negative waypoint count %d", len(courses)+1, n)
		}

		course, err := readCourseBody(br, len(courses)+1, n)
		if err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}

	return courses, nil
}

func readCourseBody(br *bufio.Reader, courseID, n int) (*planner.Course, error) {
	waypoints := make([]planner.Waypoint, 0, n)
	penalties := make([]float64, 0, n)

	for count := 0; count < n; count++ {
		line, err := readNonEmptyLine(br)
		if err == io.EOF {
			return nil, util.WrapErrorf(planner.ErrInputMismatch, util.ErrBadParamInput,
				"course %d: declared %d waypoints but the file ends after %d", courseID, n, count)
		}
		if err != nil {
			return nil, err
		}

		tokens := util.Fields(line)
		if len(tokens) != 3 {
			return nil, util.WrapErrorf(planner.ErrInputMismatch, util.ErrBadParamInput,
				"course %d: waypoint line %q must be \"x y penalty\"", courseID, line)
		}

		x, err := util.StringToFloat64(tokens[0])
		if err != nil {
			return nil, util.WrapErrorf(planner.ErrInputMismatch, util.ErrBadParamInput,
				"course %d: waypoint line %q has a non-numeric x", courseID, line)
		}
		y, err := util.StringToFloat64(tokens[1])
		if err != nil {
			return nil, util.WrapErrorf(planner.ErrInputMismatch, util.ErrBadParamInput,
				"course %d: waypoint line %q has a non-numeric y", courseID, line)
		}
		penalty, err := util.StringToFloat64(tokens[2])
		if err != nil {
			return nil, util.WrapErrorf(planner.ErrInputMismatch, util.ErrBadParamInput,
				"course %d: waypoint line %q has a non-numeric penalty", courseID, line)
		}

		waypoints = append(waypoints, planner.NewWaypoint(x, y))
		penalties = append(penalties, penalty)
	}

	return planner.NewCourse(waypoints, penalties)
}

// readNonEmptyLine skips blank lines and returns the next line with content.
func readNonEmptyLine(br *bufio.Reader) (string, error) {
	for {
		line, err := util.ReadLine(br)
		if err != nil {
			return "", err
		}
		line = strings.TrimSpace(line)
		if line != "" {
			return line, nil
		}
	}
}
