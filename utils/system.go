package utils

import (
	"fmt"
	"runtime"
)

// GetMemUsage summarises the runtime heap for debug logs
func GetMemUsage() string {
	const MiB = 1 << 20
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return fmt.Sprintf("heap=%dMiB total=%dMiB sys=%dMiB gc=%d",
		ms.Alloc/MiB, ms.TotalAlloc/MiB, ms.Sys/MiB, ms.NumGC)
}
