package fs

// Type classifies a filesystem entry into exactly one category. It feeds the
// leftmost character of a permissions column.
type Type int

// Entry types, in the order they are tested during classification.
const (
	TypeFile Type = iota
	TypeDirectory
	TypePipe
	TypeLink
	TypeCharDevice
	TypeBlockDevice
	TypeSocket
	TypeSpecial
)

// Char returns the single-character tag used at the front of a mode string.
func (t Type) Char() byte {
	switch t {
	case TypeFile:
		return '-'
	case TypeDirectory:
		return 'd'
	case TypePipe:
		return 'p'
	case TypeLink:
		return 'l'
	case TypeCharDevice:
		return 'c'
	case TypeBlockDevice:
		return 'b'
	case TypeSocket:
		return 's'
	default:
		return '?'
	}
}

func (t Type) String() string {
	switch t {
	case TypeFile:
		return "file"
	case TypeDirectory:
		return "directory"
	case TypePipe:
		return "pipe"
	case TypeLink:
		return "link"
	case TypeCharDevice:
		return "char-device"
	case TypeBlockDevice:
		return "block-device"
	case TypeSocket:
		return "socket"
	default:
		return "special"
	}
}

// Links is a hard-link count. Multiple is set only for regular files with
// more than one link, since multi-linked directories are routine while
// multi-linked files are worth pointing out.
type Links struct {
	Count    uint64
	Multiple bool
}

// Blocks is a filesystem block count. Valid is false for entry kinds that do
// not report one (anything other than regular files and links).
type Blocks struct {
	Count uint64
	Valid bool
}

// DeviceIDs is the (major, minor) pair identifying a character or block
// device.
type DeviceIDs struct {
	Major uint32
	Minor uint32
}

// SizeKind discriminates the three ways an entry reports its size.
type SizeKind int

const (
	// SizeNone is used for directories, which have a byte length on some
	// filesystems but never a useful one.
	SizeNone SizeKind = iota
	// SizeBytes is a plain byte length.
	SizeBytes
	// SizeDevice replaces the byte length of char/block devices, whose
	// length is usually zero, with their device IDs.
	SizeDevice
)

// Size is an entry's reported size.
type Size struct {
	Kind   SizeKind
	Bytes  uint64
	Device DeviceIDs
}

// Time is a timestamp as seconds and nanoseconds since the Unix epoch.
// Platform-native epochs are converted into this representation.
type Time struct {
	Seconds     int64
	Nanoseconds int64
}

// Permissions holds one flag per permission bit.
type Permissions struct {
	UserRead, UserWrite, UserExecute    bool
	GroupRead, GroupWrite, GroupExecute bool
	OtherRead, OtherWrite, OtherExecute bool

	Sticky bool
	Setgid bool
	Setuid bool
}

// String renders the nine-character rwx triplet form, with the usual s/S and
// t/T substitutions for setuid, setgid and sticky.
func (p Permissions) String() string {
	b := make([]byte, 9)
	set := func(i int, on bool, c byte) {
		if on {
			b[i] = c
		} else {
			b[i] = '-'
		}
	}
	set(0, p.UserRead, 'r')
	set(1, p.UserWrite, 'w')
	set(2, p.UserExecute, 'x')
	set(3, p.GroupRead, 'r')
	set(4, p.GroupWrite, 'w')
	set(5, p.GroupExecute, 'x')
	set(6, p.OtherRead, 'r')
	set(7, p.OtherWrite, 'w')
	set(8, p.OtherExecute, 'x')

	if p.Setuid {
		if p.UserExecute {
			b[2] = 's'
		} else {
			b[2] = 'S'
		}
	}
	if p.Setgid {
		if p.GroupExecute {
			b[5] = 's'
		} else {
			b[5] = 'S'
		}
	}
	if p.Sticky {
		if p.OtherExecute {
			b[8] = 't'
		} else {
			b[8] = 'T'
		}
	}
	return string(b)
}
