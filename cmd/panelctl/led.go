//go:build linux

package main

import (
	"flag"
	"fmt"
	"strconv"
	"time"

	"panelkit/internal/led"
)

// cmdLED drives the user LEDs:
//
//	panelctl led on <index>
//	panelctl led off <index>
//	panelctl led toggle <index>
//	panelctl led pattern <bits>     e.g. 0b0101 or 5
//	panelctl led blink <index>      until interrupted by -cycles
func cmdLED(args []string) error {
	fs := flag.NewFlagSet("led", flag.ExitOnError)
	base := fs.String("sysfs", led.DefaultSysfsBase, "LED sysfs base directory")
	cycles := fs.Int("cycles", 10, "blink cycles")
	interval := fs.Duration("interval", 250*time.Millisecond, "blink interval")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) < 1 {
		return fmt.Errorf("led: need an action (on/off/toggle/pattern/blink)")
	}

	ctl := led.NewController(*base, nil)

	switch rest[0] {
	case "on", "off", "toggle", "blink":
		if len(rest) < 2 {
			return fmt.Errorf("led %s: need an LED index (0..%d)", rest[0], ctl.Count()-1)
		}
		idx, err := strconv.Atoi(rest[1])
		if err != nil {
			return fmt.Errorf("led: bad index %q", rest[1])
		}
		switch rest[0] {
		case "on":
			return ctl.Set(idx, true)
		case "off":
			return ctl.Set(idx, false)
		case "toggle":
			return ctl.Toggle(idx)
		case "blink":
			for i := 0; i < *cycles; i++ {
				if err := ctl.Toggle(idx); err != nil {
					return err
				}
				time.Sleep(*interval)
			}
			return ctl.Set(idx, false)
		}
		return nil

	case "pattern":
		if len(rest) < 2 {
			return fmt.Errorf("led pattern: need a bit pattern")
		}
		bits, err := strconv.ParseUint(rest[1], 0, 8)
		if err != nil {
			return fmt.Errorf("led: bad pattern %q", rest[1])
		}
		return ctl.SetPattern(uint8(bits))

	case "list":
		for i := 0; i < ctl.Count(); i++ {
			state := "missing"
			if ctl.Available(i) {
				on, err := ctl.Get(i)
				if err == nil {
					state = "off"
					if on {
						state = "on"
					}
				}
			}
			fmt.Printf("%d %-14s %s\n", i, ctl.Name(i), state)
		}
		return nil

	default:
		return fmt.Errorf("led: unknown action %q", rest[0])
	}
}
