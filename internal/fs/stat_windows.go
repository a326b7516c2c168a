//go:build windows

package fs

// Projections of the raw stat result on Windows. The Lstat snapshot only
// carries a Win32FileAttributeData, which has the three timestamps and the
// attribute flags but no link count, inode, block count or owner — those
// would need an open handle, so they report zero here. Callers should treat
// the zeroes as "not available on this platform", not as data.

import (
	"os"
	"syscall"
)

var defaultExecPolicy ExecPolicy = ExtensionExecPolicy(DefaultExecutableExtensions)

func attrData(info os.FileInfo) *syscall.Win32FileAttributeData {
	d, _ := info.Sys().(*syscall.Win32FileAttributeData)
	return d
}

// ntToUnixEpoch converts an NT FILETIME — 100-nanosecond ticks since
// 1601-01-01 — into seconds and nanoseconds since the Unix epoch.
func ntToUnixEpoch(ft syscall.Filetime) Time {
	const (
		ticksPerSecond = 10_000_000
		epochDelta     = 11_644_473_600 // seconds between 1601 and 1970
	)
	nt := uint64(ft.HighDateTime)<<32 | uint64(ft.LowDateTime)
	return Time{
		Seconds:     int64(nt/ticksPerSecond) - epochDelta,
		Nanoseconds: int64(nt%ticksPerSecond) * 100,
	}
}

func sysLinkCount(info os.FileInfo) uint64 { return 0 }

func sysInode(info os.FileInfo) uint64 { return 0 }

func sysBlocks(info os.FileInfo) Blocks { return Blocks{} }

func sysUser(info os.FileInfo) uint32 { return 0 }

func sysGroup(info os.FileInfo) uint32 { return 0 }

func sysDeviceIDs(info os.FileInfo) DeviceIDs { return DeviceIDs{} }

func sysModified(info os.FileInfo) Time {
	if d := attrData(info); d != nil {
		return ntToUnixEpoch(d.LastWriteTime)
	}
	return Time{}
}

func sysCreated(info os.FileInfo) Time {
	if d := attrData(info); d != nil {
		return ntToUnixEpoch(d.CreationTime)
	}
	return Time{}
}

func sysAccessed(info os.FileInfo) Time {
	if d := attrData(info); d != nil {
		return ntToUnixEpoch(d.LastAccessTime)
	}
	return Time{}
}

// sysPermissions approximates the rwx bits from the read-only attribute;
// everything else is reported as allowed, since NTFS ACLs do not map onto
// permission flags.
func sysPermissions(info os.FileInfo) Permissions {
	writable := true
	if d := attrData(info); d != nil {
		writable = d.FileAttributes&syscall.FILE_ATTRIBUTE_READONLY == 0
	}
	return Permissions{
		UserRead: true, UserWrite: writable, UserExecute: true,
		GroupRead: true, GroupWrite: writable, GroupExecute: true,
		OtherRead: true, OtherWrite: writable, OtherExecute: true,
	}
}
