package fs

import (
	"log"
	"os"
	"path/filepath"
)

// Dir is an owned directory listing: the entry names of one directory, read
// once. A Dir outlives the Files it hands out, which keep a back-reference
// to it for resolving relative symlink destinations.
type Dir struct {
	// Path is the directory's own path, which child names are joined
	// onto.
	Path string

	names []string
}

// ReadDir reads the contents of the directory at path. The names come back
// in the sorted order the OS call provides.
func ReadDir(path string) (*Dir, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}

	return &Dir{Path: path, names: names}, nil
}

// Join joins an entry name onto the directory's path.
func (d *Dir) Join(name string) string {
	return filepath.Join(d.Path, name)
}

// Names returns the entry names in this directory.
func (d *Dir) Names() []string {
	return d.names
}

// Files constructs a File for every entry in the directory, each carrying a
// back-reference to this Dir. An entry whose stat fails — say it vanished
// between enumeration and stat, or is unreadable — is logged and skipped
// rather than aborting the rest of the listing.
func (d *Dir) Files() []*File {
	files := make([]*File, 0, len(d.names))
	for _, name := range d.names {
		f, err := NewFile(d.Join(name), d, name)
		if err != nil {
			log.Printf("Warning: cannot stat %s: %v", d.Join(name), err)
			continue
		}
		files = append(files, f)
	}
	return files
}
