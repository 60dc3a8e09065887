// Package file loads a dataset from one or more files on disk. A dataset
// path may be a glob of part-files; parts are parsed in parallel and
// appended in sorted path order, so loading is deterministic.
package file
