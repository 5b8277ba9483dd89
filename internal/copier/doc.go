// Package copier provides the cache-line-aware chunked copy used by the
// dataset fill workers.
//
// CopyAligned copies line by line with a software prefetch running two
// cache lines ahead when both buffers are line-aligned and the copy is
// large enough to amortize the setup; everything else falls back to a
// byte-wise copy. Alignment and size only affect throughput, never the
// bytes written.
package copier
