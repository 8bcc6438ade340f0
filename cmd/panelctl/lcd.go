//go:build linux

package main

import (
	"flag"
	"fmt"
	"time"

	"panelkit/internal/fb"
)

// cmdLCD exercises the framebuffer: full-screen color sweeps followed by a
// rectangle pattern, mirroring the classic bring-up test.
func cmdLCD(args []string) error {
	fs := flag.NewFlagSet("lcd", flag.ExitOnError)
	device := fs.String("device", fb.DefaultDevice, "framebuffer device")
	hold := fs.Duration("hold", time.Second, "time to hold each test screen")
	if err := fs.Parse(args); err != nil {
		return err
	}

	display, err := fb.Open(*device)
	if err != nil {
		return err
	}
	defer display.Close()

	fmt.Printf("framebuffer: %s %dx%d\n", *device, display.Width(), display.Height())

	sweeps := []struct {
		name  string
		color uint32
	}{
		{"red", fb.ColorRed},
		{"green", fb.ColorGreen},
		{"blue", fb.ColorBlue},
		{"white", fb.ColorWhite},
		{"black", fb.ColorBlack},
	}
	for _, s := range sweeps {
		fmt.Println("clear:", s.name)
		display.Clear(s.color)
		time.Sleep(*hold)
	}

	fmt.Println("rectangles")
	display.Clear(fb.ColorBlack)
	w, h := display.Width(), display.Height()
	display.FillRect(w/8, h/8, w/4, h/4, fb.ColorYellow)
	display.FillRect(w/2, h/2, w/4, h/4, fb.ColorCyan)
	display.DrawRect(w/16, h/16, w-w/8, h-h/8, fb.ColorMagenta)
	time.Sleep(*hold)

	display.Clear(fb.ColorBlack)
	return nil
}
