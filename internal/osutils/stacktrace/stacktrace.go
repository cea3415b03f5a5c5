package stacktrace

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
)

// Frame is a single frame in a stacktrace
type Frame struct {
	// Func is the fully qualified function name
	Func string
	// Path is the path of the file that the frame originates from
	Path string
	// Line is the line number inside the file
	Line int
}

// Stacktrace reflects a stacktrace at a specific point in the code
type Stacktrace struct {
	Frames []Frame
}

// String returns a human readable rendition of the stacktrace
func (t *Stacktrace) String() string {
	result := []string{}
	for _, frame := range t.Frames {
		result = append(result, fmt.Sprintf("%s:%d (%s)", frame.Path, frame.Line, frame.Func))
	}
	return strings.Join(result, "\n")
}

// Get returns a stacktrace for the calling function
func Get() *Stacktrace {
	return GetWithSkip(nil)
}

// GetWithSkip returns a stacktrace that excludes frames originating from the
// given files, so error helpers don't pollute the trace with themselves.
func GetWithSkip(skipFiles []string) *Stacktrace {
	stacktrace := &Stacktrace{}
	skipFiles = append(skipFiles, currentFile())

	pc := make([]uintptr, 100)
	n := runtime.Callers(0, pc)
	if n == 0 {
		return stacktrace
	}

	pc = pc[:n]
	frames := runtime.CallersFrames(pc)
	for {
		frame, more := frames.Next()
		if !isSkipped(frame.File, skipFiles) {
			stacktrace.Frames = append(stacktrace.Frames, Frame{
				Func: frame.Function,
				Path: frame.File,
				Line: frame.Line,
			})
		}
		if !more {
			break
		}
	}

	return stacktrace
}

func isSkipped(file string, skipFiles []string) bool {
	for _, skip := range skipFiles {
		if filepath.Clean(file) == filepath.Clean(skip) {
			return true
		}
	}
	return false
}

func currentFile() string {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		return ""
	}
	return file
}
