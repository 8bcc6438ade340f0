//go:build linux

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"panelkit/internal/config"
	"panelkit/internal/evdev"
	"panelkit/internal/fb"
	"panelkit/internal/touch"
)

// cmdProbe lists input device nodes with names and touch capability.
func cmdProbe(args []string) error {
	fs := flag.NewFlagSet("probe", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	devices := evdev.ListDevices()
	if len(devices) == 0 {
		return errors.New("no input devices found (need access to /dev/input)")
	}
	for _, d := range devices {
		marker := " "
		if d.Touch {
			marker = "*"
		}
		fmt.Printf("%s %-22s %s\n", marker, d.Path, d.Name)
	}

	res, err := evdev.FindTouchDevice("", nil)
	if err != nil {
		return err
	}
	defer res.Device.Close()

	fmt.Printf("\nselected: %s (%s)\n", res.Device.Path(), res.Name)
	if res.Calibrated {
		fmt.Printf("axis X: %d..%d  axis Y: %d..%d\n",
			res.X.Minimum, res.X.Maximum, res.Y.Minimum, res.Y.Maximum)
	} else {
		fmt.Printf("axis calibration unavailable, fixed %d-point fallback\n", touch.FixedResolution)
	}
	return nil
}

// cmdTouch polls the touch device and prints decoded frames, optionally
// painting contact points to the framebuffer.
func cmdTouch(args []string) error {
	fs := flag.NewFlagSet("touch", flag.ExitOnError)
	configPath := fs.String("config", "", "config file")
	device := fs.String("device", "", "input device path (overrides probe)")
	draw := fs.Bool("draw", false, "paint touch points to the framebuffer")
	count := fs.Int("count", 0, "stop after this many frames (0 = run until interrupted)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *device != "" {
		cfg.Touch.DevicePath = *device
	}

	res, err := evdev.FindTouchDevice(cfg.Touch.DevicePath, cfg.Touch.NameHints)
	if err != nil {
		return err
	}
	defer res.Device.Close()
	fmt.Printf("device: %s (%s)\n", res.Device.Path(), res.Name)

	decoder := touch.NewDecoder(decoderConfig(cfg, res))

	var display *fb.Framebuffer
	if *draw {
		display, err = fb.Open(cfg.Framebuffer.DevicePath)
		if err != nil {
			return err
		}
		defer display.Close()
		display.Clear(fb.ColorBlack)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	ticker := time.NewTicker(time.Duration(cfg.Touch.PollIntervalMs) * time.Millisecond)
	defer ticker.Stop()

	seen := 0
	for {
		select {
		case <-stop:
			return nil
		case <-ticker.C:
			events, err := res.Device.ReadEvents()
			if err != nil {
				return err
			}
			for _, frame := range decoder.Feed(events) {
				printFrame(frame)
				if display != nil {
					drawFrame(display, frame)
				}
				seen++
				if *count > 0 && seen >= *count {
					return nil
				}
			}
		}
	}
}

func decoderConfig(cfg *config.Config, res *evdev.ProbeResult) touch.Config {
	dc := touch.Config{
		MaxPoints:    cfg.Touch.MaxPoints,
		ScreenWidth:  cfg.Touch.ScreenWidth,
		ScreenHeight: cfg.Touch.ScreenHeight,
	}
	if res.Calibrated {
		dc.BoundsX = touch.AxisRange{Min: res.X.Minimum, Max: res.X.Maximum}
		dc.BoundsY = touch.AxisRange{Min: res.Y.Minimum, Max: res.Y.Maximum}
	}
	return dc
}

func printFrame(frame touch.Frame) {
	fmt.Printf("[%8d ms] contacts=%d", frame.TimestampMS, frame.Count)
	for _, p := range frame.Points {
		if !p.Valid && p.Kind == touch.KindNone {
			continue
		}
		fmt.Printf("  #%d %s (%d,%d) p=%d", p.ID, p.Kind, p.X, p.Y, p.Pressure)
	}
	fmt.Println()
}

// contact colors: red for the first slot, green for the second, white
// beyond that.
func contactColor(id int) uint32 {
	switch id {
	case 0:
		return fb.ColorRed
	case 1:
		return fb.ColorGreen
	default:
		return fb.ColorWhite
	}
}

func drawFrame(display *fb.Framebuffer, frame touch.Frame) {
	for _, p := range frame.Points {
		switch {
		case p.Valid:
			display.FillCircle(p.X, p.Y, 8, contactColor(p.ID))
		case p.Kind == touch.KindRelease:
			// Leave the last mark, draw the release as an outline.
			display.DrawRect(p.X-8, p.Y-8, 17, 17, fb.ColorBlue)
		}
	}
}
