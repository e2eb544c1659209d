package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse  bool
	Eval   bool
	Ground bool
	Model  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("FOL_DEBUG_PARSE")
	d.Eval = boolEnv("FOL_DEBUG_EVAL")
	d.Ground = boolEnv("FOL_DEBUG_GROUND")
	d.Model = boolEnv("FOL_DEBUG_MODEL")
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
func Eval() bool {
	return d.Eval
}
func Ground() bool {
	return d.Ground
}
func Model() bool {
	return d.Model
}
