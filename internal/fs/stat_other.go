//go:build !linux && !windows

package fs

// Portable fallbacks for platforms without a dedicated stat file. Only what
// os.FileInfo itself exposes is reported; the rest is zero. A platform that
// grows real support should get its own file alongside stat_linux.go.

import "os"

var defaultExecPolicy ExecPolicy = ModeExecPolicy

func sysLinkCount(info os.FileInfo) uint64 { return 0 }

func sysInode(info os.FileInfo) uint64 { return 0 }

func sysBlocks(info os.FileInfo) Blocks { return Blocks{} }

func sysUser(info os.FileInfo) uint32 { return 0 }

func sysGroup(info os.FileInfo) uint32 { return 0 }

func sysDeviceIDs(info os.FileInfo) DeviceIDs { return DeviceIDs{} }

func sysModified(info os.FileInfo) Time {
	t := info.ModTime()
	return Time{Seconds: t.Unix(), Nanoseconds: int64(t.Nanosecond())}
}

func sysCreated(info os.FileInfo) Time { return Time{} }

func sysAccessed(info os.FileInfo) Time { return Time{} }

func sysPermissions(info os.FileInfo) Permissions {
	m := info.Mode()
	p := m.Perm()
	return Permissions{
		UserRead:     p&0o400 != 0,
		UserWrite:    p&0o200 != 0,
		UserExecute:  p&0o100 != 0,
		GroupRead:    p&0o040 != 0,
		GroupWrite:   p&0o020 != 0,
		GroupExecute: p&0o010 != 0,
		OtherRead:    p&0o004 != 0,
		OtherWrite:   p&0o002 != 0,
		OtherExecute: p&0o001 != 0,
		Sticky:       m&os.ModeSticky != 0,
		Setgid:       m&os.ModeSetgid != 0,
		Setuid:       m&os.ModeSetuid != 0,
	}
}
