// Package mem provides memory allocation utilities.
//
// # Aligned Allocation
//
// Provides cache-line aligned allocation for the dataset and cache buffers
// so the aligned block-copy path is actually taken.
package mem
