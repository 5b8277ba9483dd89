package rvfill

// ComputeOptimalThreadCount returns the fill thread count for a dataset of
// the given size on coreCount cores: all cores above 1 GiB, three quarters
// above 256 MiB, half otherwise, and never less than one. Small datasets use
// fewer threads to avoid cache thrashing.
func ComputeOptimalThreadCount(datasetSize, coreCount int) int {
	threads := coreCount

	switch {
	case datasetSize > 1<<30:
		threads = coreCount
	case datasetSize > 256<<20:
		threads = coreCount * 3 / 4
	default:
		threads = coreCount / 2
	}

	if threads < 1 {
		return 1
	}
	return threads
}
