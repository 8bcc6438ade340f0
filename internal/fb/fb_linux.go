//go:build linux

package fb

import (
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

// DefaultDevice is the usual framebuffer node on the reference board.
const DefaultDevice = "/dev/fb0"

// FBIOGET_VSCREENINFO and FBIOGET_FSCREENINFO from linux/fb.h.
const (
	fbioGetVScreenInfo = 0x4600
	fbioGetFScreenInfo = 0x4602
)

// varScreenInfo is the leading portion of fb_var_screeninfo; the kernel
// writes the full struct, so the ioctl buffer must cover all of it.
type varScreenInfo struct {
	XRes         uint32
	YRes         uint32
	XResVirtual  uint32
	YResVirtual  uint32
	XOffset      uint32
	YOffset      uint32
	BitsPerPixel uint32
	Grayscale    uint32
	_            [34]uint32 // bitfields, timings and reserved words
}

// fixScreenInfo mirrors fb_fix_screeninfo. Only LineLength is consumed, but
// the kernel writes the full struct.
type fixScreenInfo struct {
	ID         [16]byte
	SmemStart  uintptr
	SmemLen    uint32
	Type       uint32
	TypeAux    uint32
	Visual     uint32
	XPanStep   uint16
	YPanStep   uint16
	YWrapStep  uint16
	LineLength uint32
	MmioStart  uintptr
	MmioLen    uint32
	Accel      uint32
	Caps       uint16
	_          [2]uint16
}

// Framebuffer is an opened, memory-mapped framebuffer device. Drawing goes
// straight to display memory through the embedded Surface.
type Framebuffer struct {
	*Surface
	file *os.File
	mem  []byte
}

// Open maps the framebuffer device. Only 32bpp displays are supported;
// the reference panel runs ARGB8888.
func Open(path string) (*Framebuffer, error) {
	if path == "" {
		path = DefaultDevice
	}
	file, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	var info varScreenInfo
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, file.Fd(), fbioGetVScreenInfo, uintptr(unsafe.Pointer(&info)))
	if errno != 0 {
		file.Close()
		return nil, fmt.Errorf("screeninfo %s: %w", path, errno)
	}
	if info.BitsPerPixel != 32 {
		file.Close()
		return nil, fmt.Errorf("%s: unsupported depth %d bpp (need 32)", path, info.BitsPerPixel)
	}

	var fix fixScreenInfo
	_, _, errno = unix.Syscall(unix.SYS_IOCTL, file.Fd(), fbioGetFScreenInfo, uintptr(unsafe.Pointer(&fix)))
	if errno != 0 {
		file.Close()
		return nil, fmt.Errorf("fixed screeninfo %s: %w", path, errno)
	}

	width := int(info.XRes)
	height := int(info.YRes)

	// Drivers may pad rows; line_length is the real stride. Some report 0,
	// which means packed rows.
	stride := int(fix.LineLength)
	if stride < width*bytesPerPixel {
		stride = width * bytesPerPixel
	}

	mem, err := unix.Mmap(int(file.Fd()), 0, height*stride, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("mmap %s: %w", path, err)
	}

	return &Framebuffer{
		Surface: newSurfaceOver(mem, width, height, stride),
		file:    file,
		mem:     mem,
	}, nil
}

// Close unmaps the display memory and closes the device.
func (f *Framebuffer) Close() error {
	var first error
	if f.mem != nil {
		first = unix.Munmap(f.mem)
		f.mem = nil
	}
	if f.file != nil {
		if err := f.file.Close(); first == nil {
			first = err
		}
		f.file = nil
	}
	return first
}
