// Package paths holds the fixed script locations of the host.
//
// All paths are relative to the process working directory. Configuration
// may point the host elsewhere, but these are the defaults every run
// starts from.
package paths
