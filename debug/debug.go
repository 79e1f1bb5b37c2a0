// Package debug gates diagnostic logging on environment variables so
// the library core carries no logger configuration.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Merge      bool
	Provenance bool
	Codec      bool
}

var d *debug

func init() {
	d = &debug{}
	d.Merge = boolEnv("PARAMERGE_DEBUG_MERGE")
	d.Provenance = boolEnv("PARAMERGE_DEBUG_PROVENANCE")
	d.Codec = boolEnv("PARAMERGE_DEBUG_CODEC")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Merge() bool {
	return d.Merge
}
func Provenance() bool {
	return d.Provenance
}
func Codec() bool {
	return d.Codec
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}
