//go:build linux

package evdev

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// AbsInfo mirrors the kernel input_absinfo struct returned by EVIOCGABS.
type AbsInfo struct {
	Value      int32
	Minimum    int32
	Maximum    int32
	Fuzz       int32
	Flat       int32
	Resolution int32
}

// ioctl request encoding from linux/ioctl.h, only the read direction.
func iocRead(typ, nr, size uintptr) uintptr {
	const (
		nrBits    = 8
		typeBits  = 8
		sizeBits  = 14
		nrShift   = 0
		typeShift = nrShift + nrBits
		sizeShift = typeShift + typeBits
		dirShift  = sizeShift + sizeBits
		dirRead   = 2
	)
	return (dirRead << dirShift) | (typ << typeShift) | (nr << nrShift) | (size << sizeShift)
}

func eviocgName(n int) uintptr { return iocRead('E', 0x06, uintptr(n)) }
func eviocgBit(ev, n int) uintptr {
	return iocRead('E', 0x20+uintptr(ev), uintptr(n))
}
func eviocgAbs(axis uint16) uintptr {
	return iocRead('E', 0x40+uintptr(axis), unsafe.Sizeof(AbsInfo{}))
}

func ioctlName(fd int) (string, error) {
	buf := make([]byte, 256)
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), eviocgName(len(buf)), uintptr(unsafe.Pointer(&buf[0])))
	if errno != 0 {
		return "", errno
	}
	n := 0
	for n < len(buf) && buf[n] != 0 {
		n++
	}
	return string(buf[:n]), nil
}

func ioctlAbsInfo(fd int, axis uint16) (AbsInfo, error) {
	var info AbsInfo
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), eviocgAbs(axis), uintptr(unsafe.Pointer(&info)))
	if errno != 0 {
		return AbsInfo{}, errno
	}
	return info, nil
}

// ioctlBits fills a capability bitmap for event type ev (0 queries the
// supported event types themselves).
func ioctlBits(fd int, ev int, nbits int) ([]byte, error) {
	buf := make([]byte, (nbits+7)/8)
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), eviocgBit(ev, len(buf)), uintptr(unsafe.Pointer(&buf[0])))
	if errno != 0 {
		return nil, errno
	}
	return buf, nil
}

func bitSet(bits []byte, n uint16) bool {
	idx := int(n) / 8
	if idx >= len(bits) {
		return false
	}
	return bits[idx]&(1<<(n%8)) != 0
}
