package utils

import "github.com/shirou/gopsutil/cpu"

// CPUUsage returns current total CPU utilization in percent.
func CPUUsage() (float64, error) {
	usage, err := cpu.Percent(0, false)
	if err != nil {
		return 0, err
	}
	return usage[0], nil
}
