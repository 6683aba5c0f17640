package detect

import (
	"path/filepath"
	"runtime"
)

// NumCPU returns the number of logical CPUs known to the OS. It counts
// sysfs entries so that CPUs outside this process's current affinity
// mask are still probed, falling back to runtime.NumCPU where sysfs is
// unavailable.
func NumCPU() int {
	matches, err := filepath.Glob("/sys/devices/system/cpu/cpu[0-9]*")
	if err != nil || len(matches) == 0 {
		return runtime.NumCPU()
	}
	return len(matches)
}
