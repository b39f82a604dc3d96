// Package stacktrace reduces a call stack to the frames under internal/.
package stacktrace

import (
	"runtime"
	"strconv"
	"strings"
)

const maxDepth = 64

// Internal returns "internal/<file>:<line>" for every frame of the current
// goroutine that belongs to an internal/ package, innermost first. skip
// counts frames above the caller of Internal.
func Internal(skip int) []string {
	pcs := make([]uintptr, maxDepth)
	n := runtime.Callers(skip+2, pcs)

	frames := runtime.CallersFrames(pcs[:n])
	paths := make([]string, 0, n)
	for {
		frame, more := frames.Next()
		if _, rel, ok := strings.Cut(frame.File, "/internal/"); ok {
			paths = append(paths, "internal/"+rel+":"+strconv.Itoa(frame.Line))
		}
		if !more {
			break
		}
	}
	return paths
}
