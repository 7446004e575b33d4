package catalog

import "fmt"

// InvalidPathError is returned when a directory import is pointed at
// something that is not an existing directory.
type InvalidPathError struct {
	Path string
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("%s is not a valid directory", e.Path)
}

// FileNotFoundError is returned when a consolidated file does not exist.
type FileNotFoundError struct {
	Path string
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("file %s not found", e.Path)
}

// FileError records a single file that could not be imported during a
// directory import. These are collected, never returned as the call's error.
type FileError struct {
	File string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("error loading %s: %v", e.File, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}
