// Package system probes the host for worker sizing and the optional
// post-run resource report.
package system

import (
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// Stats is a snapshot of host resources.
type Stats struct {
	LogicalCPUs   int
	MemoryTotalMB uint64
	MemoryUsedMB  uint64
	MemoryPercent float64
}

// Collect probes CPU count and memory usage. Probe failures degrade to
// runtime defaults rather than erroring: the report is advisory.
func Collect() Stats {
	s := Stats{LogicalCPUs: runtime.NumCPU()}
	if n, err := cpu.Counts(true); err == nil && n > 0 {
		s.LogicalCPUs = n
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		s.MemoryTotalMB = vm.Total / (1024 * 1024)
		s.MemoryUsedMB = vm.Used / (1024 * 1024)
		s.MemoryPercent = vm.UsedPercent
	}
	return s
}

// String renders the one-line resource report.
func (s Stats) String() string {
	return fmt.Sprintf("cpus=%d mem=%d/%dMB (%.1f%%)",
		s.LogicalCPUs, s.MemoryUsedMB, s.MemoryTotalMB, s.MemoryPercent)
}

// WorkerCount picks a sampling fork-join width: the logical CPU count,
// capped so small documents do not pay spawn overhead.
func WorkerCount() int {
	n := runtime.NumCPU()
	if c, err := cpu.Counts(true); err == nil && c > 0 {
		n = c
	}
	if n > 8 {
		n = 8
	}
	if n < 1 {
		n = 1
	}
	return n
}
