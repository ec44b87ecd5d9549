package courseio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"github.com/roverlab/waypointx/pkg"
	"github.com/roverlab/waypointx/pkg/planner"
	"github.com/roverlab/waypointx/pkg/util"
)

// WriteCourses writes courses in the same format ReadCourses parses,
// terminated by the 0 sentinel. A .bz2 filename compresses the output.
func WriteCourses(filename string, courses []*planner.Course) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	var w io.Writer = f
	if strings.HasSuffix(filename, ".bz2") {
		bz, err := bzip2.NewWriter(f, &bzip2.WriterConfig{})
		if err != nil {
			return err
		}
		defer bz.Close()
		w = bz
	}

	bw := bufio.NewWriter(w)

	for _, course := range courses {
		fmt.Fprintf(bw, "%d\n", course.NumWaypoints())

		penalties := course.GetPenalties()
		for i, waypoint := range course.GetWaypoints() {
			xF := strconv.FormatFloat(waypoint.GetX(), 'f', -1, 64)
			yF := strconv.FormatFloat(waypoint.GetY(), 'f', -1, 64)
			penaltyF := strconv.FormatFloat(penalties[i], 'f', -1, 64)

			fmt.Fprintf(bw, "%s %s %s\n", xF, yF, penaltyF)
		}
	}
	fmt.Fprintf(bw, "0\n")

	return bw.Flush()
}

// ResultPath maps a course file path to its result file path: same directory,
// same name, the course extension swapped for .out. A compression suffix is
// dropped first, so courses.txt.bz2 also maps to courses.out.
func ResultPath(courseFile string) string {
	path := strings.TrimSuffix(courseFile, ".bz2")
	path = strings.TrimSuffix(path, filepath.Ext(path))
	return path + pkg.RESULT_FILE_EXTENSION
}

// WriteResults writes one minimum traversal time per line, in course order,
// next to the course file. Costs are rounded to RESULT_DECIMAL_PLACES and
// rendered without trailing zeros. Returns the path written.
func WriteResults(courseFile string, results []*planner.Result) (string, error) {
	outPath := ResultPath(courseFile)

	f, err := os.Create(outPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	for _, result := range results {
		fmt.Fprintf(bw, "%s\n", util.FormatFloatShort(result.GetMinCost(), pkg.RESULT_DECIMAL_PLACES))
	}

	if err := bw.Flush(); err != nil {
		return "", err
	}
	return outPath, nil
}
