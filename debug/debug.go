package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Match     bool
	Transform bool
	Walk      bool
}

var d *debug

func init() {
	d = &debug{}
	d.Match = boolEnv("REWEAVE_DEBUG_MATCH")
	d.Transform = boolEnv("REWEAVE_DEBUG_TRANSFORM")
	d.Walk = boolEnv("REWEAVE_DEBUG_WALK")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Match() bool {
	return d.Match
}
func Transform() bool {
	return d.Transform
}
func Walk() bool {
	return d.Walk
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
