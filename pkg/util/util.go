package util

import (
	"bufio"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// error

type Error struct {
	orig error
	msg  string
	code error
}

func (e *Error) Error() string {
	if e.orig != nil {
		return fmt.Sprintf("%s: %s", e.msg, e.orig)
	}

	return e.msg
}

func (e *Error) Unwrap() error {
	return e.orig
}

func WrapErrorf(orig error, code error, format string, a ...interface{}) error {
	return &Error{
		code: code,
		orig: orig,
		msg:  fmt.Sprintf(format, a...),
	}
}

func (e *Error) Code() error {
	return e.code
}

var (
	ErrInternalServerError = errors.New("internal Server Error")
	ErrNotFound            = errors.New("your requested Item is not found")
	ErrConflict            = errors.New("your Item already exist")
	ErrBadParamInput       = errors.New("given Param is not valid")
)

var MessageInternalServerError string = "internal server error"

// ReadLine reads one full line from r, stitching together the fragments
// bufio returns for lines longer than its buffer.
func ReadLine(r *bufio.Reader) (string, error) {
	frag, isPrefix, err := r.ReadLine()
	if err != nil {
		return "", err
	}
	if !isPrefix {
		return string(frag), nil
	}

	var sb strings.Builder
	sb.Write(frag)
	for isPrefix {
		frag, isPrefix, err = r.ReadLine()
		if err != nil {
			return "", err
		}
		sb.Write(frag)
	}
	return sb.String(), nil
}

func Fields(s string) []string {
	return strings.Fields(s)
}

func StringToFloat64(str string) (float64, error) {
	val, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0, err
	}
	return val, nil
}

func StringToInt(str string) (int, error) {
	val, err := strconv.Atoi(str)
	if err != nil {
		return 0, err
	}
	return val, nil
}

func RoundFloat(val float64, precision uint) float64 {
	ratio := math.Pow(10, float64(precision))
	return math.Round(val*ratio) / ratio
}

// FormatFloatShort renders val with at most precision decimal places, without
// trailing zeros ("12.500" -> "12.5", "20.000" -> "20").
func FormatFloatShort(val float64, precision uint) string {
	rounded := RoundFloat(val, precision)
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}

func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

func ReverseG[T any](arr []T) []T {
	copyArr := make([]T, len(arr)) // should do on the copy )
	copy(copyArr, arr)
	for i, j := 0, len(copyArr)-1; i < j; i, j = i+1, j-1 {
		copyArr[i], copyArr[j] = copyArr[j], copyArr[i]
	}
	return copyArr
}

