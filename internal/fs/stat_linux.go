//go:build linux

package fs

// Projections of the raw stat result that need the platform's own view of
// it. On Linux the Lstat snapshot carries a full syscall.Stat_t, so every
// field here is the real thing.

import (
	"os"
	"syscall"

	"golang.org/x/sys/unix"
)

var defaultExecPolicy ExecPolicy = ModeExecPolicy

func statT(info os.FileInfo) *syscall.Stat_t {
	st, _ := info.Sys().(*syscall.Stat_t)
	return st
}

func sysLinkCount(info os.FileInfo) uint64 {
	if st := statT(info); st != nil {
		return uint64(st.Nlink)
	}
	return 0
}

func sysInode(info os.FileInfo) uint64 {
	if st := statT(info); st != nil {
		return st.Ino
	}
	return 0
}

func sysBlocks(info os.FileInfo) Blocks {
	if st := statT(info); st != nil {
		return Blocks{Count: uint64(st.Blocks), Valid: true}
	}
	return Blocks{}
}

func sysUser(info os.FileInfo) uint32 {
	if st := statT(info); st != nil {
		return st.Uid
	}
	return 0
}

func sysGroup(info os.FileInfo) uint32 {
	if st := statT(info); st != nil {
		return st.Gid
	}
	return 0
}

func sysDeviceIDs(info os.FileInfo) DeviceIDs {
	st := statT(info)
	if st == nil {
		return DeviceIDs{}
	}
	rdev := uint64(st.Rdev)
	return DeviceIDs{Major: unix.Major(rdev), Minor: unix.Minor(rdev)}
}

func sysModified(info os.FileInfo) Time {
	if st := statT(info); st != nil {
		sec, nsec := st.Mtim.Unix()
		return Time{Seconds: sec, Nanoseconds: nsec}
	}
	return Time{}
}

// sysCreated reports the status-change time: Linux keeps no birth time in
// struct stat, and ctime is the closest thing it offers.
func sysCreated(info os.FileInfo) Time {
	if st := statT(info); st != nil {
		sec, nsec := st.Ctim.Unix()
		return Time{Seconds: sec, Nanoseconds: nsec}
	}
	return Time{}
}

func sysAccessed(info os.FileInfo) Time {
	if st := statT(info); st != nil {
		sec, nsec := st.Atim.Unix()
		return Time{Seconds: sec, Nanoseconds: nsec}
	}
	return Time{}
}

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
