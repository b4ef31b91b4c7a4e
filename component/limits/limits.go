package limits

import "math"

const (
	DefaultOpenFiles  = 256
	InfiniteOpenFiles = math.MaxInt32

	// files kept free for listeners, logs and the config itself
	reservedOpenFiles = 16
)

// Concurrency clamps want so that at most that many word files are open at
// once without exhausting the descriptors left to the process
func Concurrency(want int, openFiles int) int {
	budget := openFiles - reservedOpenFiles
	if budget < 1 {
		budget = 1
	}
	if want > budget {
		return budget
	}
	if want < 1 {
		return 1
	}
	return want
}
