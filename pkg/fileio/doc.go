// Package fileio provides thin filesystem wrappers: whole-file and
// line-oriented reads and writes, metadata queries, directory creation,
// copy, and delete. Every operation opens, acts, and closes within the
// call; failures come back as *IOError with a classified Kind wrapping the
// OS error, so errors.Is against the io/fs sentinels keeps working.
package fileio
