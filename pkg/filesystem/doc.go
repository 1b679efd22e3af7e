// Package filesystem provides the filesystem codec reads templates from and
// writes generated files to.
//
// Every implementation is backed by afero: NewOS for the real disk,
// NewMemory for tests and NewDryRun for previews that read from disk but
// keep all writes in memory.
package filesystem
