// Package fb provides minimal framebuffer output: an mmap'd /dev/fb*
// device and the handful of ARGB8888 drawing primitives the demo harness
// needs (clear, pixel, rectangle). Drawing works on any byte-backed
// surface, so it is testable without hardware.
package fb

import "encoding/binary"

// ARGB8888 colors.
const (
	ColorBlack   uint32 = 0xFF000000
	ColorWhite   uint32 = 0xFFFFFFFF
	ColorRed     uint32 = 0xFFFF0000
	ColorGreen   uint32 = 0xFF00FF00
	ColorBlue    uint32 = 0xFF0000FF
	ColorYellow  uint32 = 0xFFFFFF00
	ColorCyan    uint32 = 0xFF00FFFF
	ColorMagenta uint32 = 0xFFFF00FF
)

const bytesPerPixel = 4

// Surface is a 32bpp pixel buffer. Coordinates outside the surface are
// clipped, never an error: drawing stays total against bad input the same
// way the touch decoder does.
type Surface struct {
	pix    []byte
	width  int
	height int
	stride int // bytes per row
}

// NewSurface allocates an in-memory surface, useful for tests and
// offscreen composition.
func NewSurface(width, height int) *Surface {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Surface{
		pix:    make([]byte, width*height*bytesPerPixel),
		width:  width,
		height: height,
		stride: width * bytesPerPixel,
	}
}

// newSurfaceOver wraps existing pixel memory (the mmap'd framebuffer).
func newSurfaceOver(pix []byte, width, height, stride int) *Surface {
	return &Surface{pix: pix, width: width, height: height, stride: stride}
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int { return s.width }

// Height returns the surface height in pixels.
func (s *Surface) Height() int { return s.height }

// Clear fills the whole surface with one color.
func (s *Surface) Clear(color uint32) {
	for y := 0; y < s.height; y++ {
		row := s.pix[y*s.stride:]
		for x := 0; x < s.width; x++ {
			binary.LittleEndian.PutUint32(row[x*bytesPerPixel:], color)
		}
	}
}

// SetPixel writes one pixel; out-of-bounds coordinates are ignored.
func (s *Surface) SetPixel(x, y int, color uint32) {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return
	}
	binary.LittleEndian.PutUint32(s.pix[y*s.stride+x*bytesPerPixel:], color)
}

// At reads one pixel back; out-of-bounds coordinates return 0.
func (s *Surface) At(x, y int) uint32 {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return 0
	}
	return binary.LittleEndian.Uint32(s.pix[y*s.stride+x*bytesPerPixel:])
}

// FillRect fills a rectangle, clipped to the surface.
func (s *Surface) FillRect(x, y, w, h int, color uint32) {
	x0, y0, x1, y1 := s.clip(x, y, w, h)
	for yy := y0; yy < y1; yy++ {
		row := s.pix[yy*s.stride:]
		for xx := x0; xx < x1; xx++ {
			binary.LittleEndian.PutUint32(row[xx*bytesPerPixel:], color)
		}
	}
}

// DrawRect draws a one-pixel rectangle outline, clipped to the surface.
func (s *Surface) DrawRect(x, y, w, h int, color uint32) {
	x0, y0, x1, y1 := s.clip(x, y, w, h)
	if x0 >= x1 || y0 >= y1 {
		return
	}
	for xx := x0; xx < x1; xx++ {
		s.SetPixel(xx, y, color)
		s.SetPixel(xx, y+h-1, color)
	}
	for yy := y0; yy < y1; yy++ {
		s.SetPixel(x, yy, color)
		s.SetPixel(x+w-1, yy, color)
	}
}

// FillCircle fills a circle centered at (cx, cy); the touch demo uses it to
// mark contact points.
func (s *Surface) FillCircle(cx, cy, r int, color uint32) {
	if r <= 0 {
		return
	}
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				s.SetPixel(cx+dx, cy+dy, color)
			}
		}
	}
}

func (s *Surface) clip(x, y, w, h int) (x0, y0, x1, y1 int) {
	x0, y0 = x, y
	x1, y1 = x+w, y+h
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > s.width {
		x1 = s.width
	}
	if y1 > s.height {
		y1 = s.height
	}
	return x0, y0, x1, y1
}
