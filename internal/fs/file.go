// Package fs implements the file metadata core: each File couples a path
// with a point-in-time snapshot of its metadata and answers every derived
// question (type, size, permissions, timestamps) from that snapshot alone.
package fs

import (
	"os"
	"path/filepath"
	"strings"
)

// File wraps a filesystem path together with the metadata captured when it
// was constructed.
//
// Every file has its name displayed at least once, its extension extracted
// at least once, and its metadata queried several times over, so all of it
// is computed up front and held on to. The metadata is a cache, not a live
// view: the one Lstat happens in NewFile and is never repeated, so two
// queries against the same File always agree even if the entry on disk has
// changed underneath it.
type File struct {
	// Name is the filename portion of the path, including the extension.
	Name string

	// Path is the path that begat this file. The name is extracted from
	// it, but the original path is still needed for operations such as
	// reading a symlink.
	Path string

	// Parent refers to the directory listing that produced this entry.
	// It is nil for paths handed in directly by a caller, and it is a
	// borrowed reference: the listing that owns the Dir keeps it alive
	// for as long as its Files are in use.
	Parent *Dir

	ext    string
	hasExt bool
	info   os.FileInfo
}

// NewFile stats path (without following symlinks) and builds a File around
// the result. parent may be nil. name overrides the derived filename when
// the caller already knows it, as during directory enumeration; pass "" to
// derive it from the path. The stat is the only I/O performed, and its
// failure is the only error condition.
func NewFile(path string, parent *Dir, name string) (*File, error) {
	if name == "" {
		name = Filename(path)
	}
	ext, hasExt := splitExt(name)

	info, err := os.Lstat(path)
	if err != nil {
		return nil, err
	}

	return &File{
		Name:   name,
		Path:   path,
		Parent: parent,
		ext:    ext,
		hasExt: hasExt,
		info:   info,
	}, nil
}

// Filename derives a display name from a path. Paths such as "/" or ".."
// have no regular filename component, so the last component is used as-is
// rather than failing.
func Filename(path string) string {
	if path == "" {
		return path
	}
	return filepath.Base(path)
}

// splitExt extracts a lowercased extension from a filename: the characters
// after the last dot. Dotfiles deliberately count, so ".vimrc" has the
// extension "vimrc". The relative components "." and ".." have no extension.
func splitExt(name string) (string, bool) {
	if name == "." || name == ".." {
		return "", false
	}
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return "", false
	}
	return strings.ToLower(name[i+1:]), true
}

// Ext returns the file's cached extension, and whether it has one at all.
func (f *File) Ext() (string, bool) {
	return f.ext, f.hasExt
}

// IsDirectory reports whether this file is a directory.
func (f *File) IsDirectory() bool {
	return f.info.IsDir()
}

// IsFile reports whether this is a regular file — not a directory, a link,
// or anything else treated specially.
func (f *File) IsFile() bool {
	return f.info.Mode().IsRegular()
}

// IsLink reports whether this file is a symbolic link.
func (f *File) IsLink() bool {
	return f.info.Mode()&os.ModeSymlink != 0
}

// IsPipe reports whether this file is a named pipe.
func (f *File) IsPipe() bool {
	return f.info.Mode()&os.ModeNamedPipe != 0
}

// IsCharDevice reports whether this file is a character device.
func (f *File) IsCharDevice() bool {
	return f.info.Mode()&os.ModeCharDevice != 0
}

// IsBlockDevice reports whether this file is a block device.
func (f *File) IsBlockDevice() bool {
	m := f.info.Mode()
	return m&os.ModeDevice != 0 && m&os.ModeCharDevice == 0
}

// IsSocket reports whether this file is a socket.
func (f *File) IsSocket() bool {
	return f.info.Mode()&os.ModeSocket != 0
}

// PointsToDirectory reports whether this file is a directory, or a working
// symlink whose target points to one. Broken and unreadable links do not
// point anywhere.
func (f *File) PointsToDirectory() bool {
	if f.IsDirectory() {
		return true
	}
	if f.IsLink() {
		if t := f.LinkTarget(); t.File != nil {
			return t.File.PointsToDirectory()
		}
	}
	return false
}

// IsExecutableFile reports whether this is a regular file the platform
// considers executable, using the platform's default policy: execute
// permission bits where the filesystem has them, a conventional extension
// list where it does not. See ExecPolicy for supplying a different rule.
func (f *File) IsExecutableFile() bool {
	return f.IsFile() && defaultExecPolicy(f)
}

// Type classifies the file into exactly one category, tested in a fixed
// priority order with TypeSpecial as the fallback.
func (f *File) Type() Type {
	switch {
	case f.IsFile():
		return TypeFile
	case f.IsDirectory():
		return TypeDirectory
	case f.IsPipe():
		return TypePipe
	case f.IsLink():
		return TypeLink
	case f.IsCharDevice():
		return TypeCharDevice
	case f.IsBlockDevice():
		return TypeBlockDevice
	case f.IsSocket():
		return TypeSocket
	default:
		return TypeSpecial
	}
}

// Size reports the file's size. Directories have a byte length on some
// filesystems but never a meaningful one, so they report no size at all.
// Char and block devices report their device IDs instead, because their
// byte length is usually zero.
func (f *File) Size() Size {
	switch {
	case f.IsDirectory():
		return Size{Kind: SizeNone}
	case f.IsCharDevice() || f.IsBlockDevice():
		return Size{Kind: SizeDevice, Device: sysDeviceIDs(f.info)}
	default:
		return Size{Kind: SizeBytes, Bytes: uint64(f.info.Size())}
	}
}

// Links reports the hard-link count. Multiple is only flagged for regular
// files, where more than one link is unusual enough to highlight.
func (f *File) Links() Links {
	count := sysLinkCount(f.info)
	return Links{
		Count:    count,
		Multiple: f.IsFile() && count > 1,
	}
}

// Inode reports the file's inode number.
func (f *File) Inode() uint64 {
	return sysInode(f.info)
}

// Blocks reports the number of filesystem blocks backing the file. Only
// regular files and links report one.
func (f *File) Blocks() Blocks {
	if f.IsFile() || f.IsLink() {
		return sysBlocks(f.info)
	}
	return Blocks{}
}

// User reports the ID of the user that owns this file.
func (f *File) User() uint32 {
	return sysUser(f.info)
}

// Group reports the ID of the group that owns this file.
func (f *File) Group() uint32 {
	return sysGroup(f.info)
}

// Permissions reports the file's permission bits, one flag each.
func (f *File) Permissions() Permissions {
	return sysPermissions(f.info)
}

// ModifiedTime reports the last-modified timestamp.
func (f *File) ModifiedTime() Time {
	return sysModified(f.info)
}

// CreatedTime reports the creation timestamp, where the platform records
// one; see the platform notes in the stat files.
func (f *File) CreatedTime() Time {
	return sysCreated(f.info)
}

// AccessedTime reports the last-accessed timestamp.
func (f *File) AccessedTime() Time {
	return sysAccessed(f.info)
}

// ExtensionIsOneOf reports whether the file's extension is any of the given
// strings. The comparison is case-sensitive against the already-lowercased
// cached extension, and is always false for files with no extension.
func (f *File) ExtensionIsOneOf(choices []string) bool {
	if !f.hasExt {
		return false
	}
	for _, c := range choices {
		if c == f.ext {
			return true
		}
	}
	return false
}

// NameIsOneOf reports whether the file's name, including extension, is any
// of the given strings.
func (f *File) NameIsOneOf(choices []string) bool {
	for _, c := range choices {
		if c == f.Name {
			return true
		}
	}
	return false
}

// ToDir reads this file's path as a directory listing. This returns an I/O
// error on failure, so it is not the way to check whether a File is a
// directory; that is what IsDirectory is for.
func (f *File) ToDir() (*Dir, error) {
	return ReadDir(f.Path)
}

// reorientTargetPath re-prefixes a symlink destination so that it can be
// stat-ed from whichever directory the process happens to run in. Relative
// destinations are resolved against the parent-directory context when there
// is one, else against the directory containing this file's own path, with
// the path itself as a last resort for paths with no parent component.
func (f *File) reorientTargetPath(dest string) string {
	if filepath.IsAbs(dest) {
		return dest
	}
	if f.Parent != nil {
		return f.Parent.Join(dest)
	}
	if dir := filepath.Dir(f.Path); dir != f.Path {
		return filepath.Join(dir, dest)
	}
	return filepath.Join(f.Path, dest)
}

// LinkTarget follows this file, assuming it is a symlink, and returns the
// result.
//
// For a working link the result carries the File at the other end, built
// from the raw destination recorded on disk — which may be relative, and is
// what a caller should display — while the stat runs against the reoriented
// absolute form. For a destination that does not exist the result carries
// the raw destination so callers can still show where the link would point.
// If the link itself cannot be read, the result carries that error; none of
// these outcomes is propagated as a failure of the listing, they are facts
// about this one entry.
func (f *File) LinkTarget() FileTarget {
	dest, err := os.Readlink(f.Path)
	if err != nil {
		return FileTarget{Err: err}
	}

	abs := f.reorientTargetPath(dest)

	// A plain Stat, not Lstat: a link to a link should resolve straight
	// through to the final target.
	info, err := os.Stat(abs)
	if err != nil {
		return FileTarget{Broken: dest}
	}

	name := Filename(dest)
	ext, hasExt := splitExt(name)
	return FileTarget{
		File: &File{
			Name:   name,
			Path:   dest,
			Parent: nil,
			ext:    ext,
			hasExt: hasExt,
			info:   info,
		},
	}
}

// FileTarget is the result of following a symlink. Exactly one of the three
// fields is meaningful: File for a link whose target exists, Broken (the raw
// destination path) for a link whose target does not, and Err when the link
// itself could not be read — which can happen if the file is not a link to
// begin with, or if it is not accessible.
//
// Err lives here rather than in an ordinary error return because failing to
// follow a symlink is not a serious condition: it is displayed against the
// one entry and the rest of the listing carries on.
type FileTarget struct {
	File   *File
	Broken string
	Err    error
}

// IsBroken reports whether following the link failed to land on an existing
// file, for whatever reason. Consumers use this alone to pick a rendering
// style for dead links.
func (t FileTarget) IsBroken() bool {
	return t.File == nil
}
