// Package debug provides env-gated debug flags for go-sexp.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse bool
	Drop  bool
	Pool  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("SEXP_DEBUG_PARSE")
	d.Drop = boolEnv("SEXP_DEBUG_DROP")
	d.Pool = boolEnv("SEXP_DEBUG_POOL")
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
func Drop() bool {
	return d.Drop
}
func Pool() bool {
	return d.Pool
}
