package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Parse  bool
	Encode bool
	Filter bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("ITERMCOLORS_DEBUG_PARSE")
	d.Encode = boolEnv("ITERMCOLORS_DEBUG_ENCODE")
	d.Filter = boolEnv("ITERMCOLORS_DEBUG_FILTER")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Encode() bool {
	return d.Encode
}
func Filter() bool {
	return d.Filter
}

func Logf(f string, args ...any) {
	fmt.Fprintf(os.Stderr, f, args...)
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(append(d, '\n'))
}
