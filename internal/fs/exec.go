package fs

// ExecPolicy decides whether a regular file counts as executable. The
// question is really "is this file conventionally executable on this
// platform": filesystems with POSIX permission bits answer it from the
// mode, filesystems without them fall back to matching well-known
// executable extensions. The platform default lives in the stat files;
// callers with their own convention (say, a configured extension list) can
// build a policy here and apply it themselves.
type ExecPolicy func(*File) bool

// ModeExecPolicy answers from the execute permission bits.
func ModeExecPolicy(f *File) bool {
	return f.info.Mode().Perm()&0o111 != 0
}

// ExtensionExecPolicy answers by matching the file's extension against a
// list of conventionally executable suffixes, lowercased and without the
// leading dot. This is a deliberate simplification for platforms that have
// no execute bits to inspect, not a substitute for them elsewhere.
func ExtensionExecPolicy(exts []string) ExecPolicy {
	return func(f *File) bool {
		return f.ExtensionIsOneOf(exts)
	}
}

// DefaultExecutableExtensions is the extension list the Windows default
// policy uses.
var DefaultExecutableExtensions = []string{"exe", "bat", "cmd", "com"}
