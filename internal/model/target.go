// Package model defines the data structures for structural patching.
package model

import "os"

// Path represents a file system path.
type Path string

// PatchTarget is a file loaded into memory for the duration of one session.
// Buffer is the current state, Original the content read from disk.
type PatchTarget struct {
	Path     Path
	Original string
	Buffer   string
	Mode     os.FileMode
	Dirty    bool
}

// FileChange pairs the on-disk content of a file with the content a session
// produced for it.
type FileChange struct {
	Path   Path
	Before string
	After  string
}
