//go:build linux

// panelctl - hardware bring-up tool for panelkit
//
//	panelctl probe          List input devices and the touch probe decision
//	panelctl touch          Decode and print touch frames (optionally draw them)
//	panelctl lcd            Draw a framebuffer test pattern
//	panelctl led            Drive the user LEDs
package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "probe":
		err = cmdProbe(os.Args[2:])
	case "touch":
		err = cmdTouch(os.Args[2:])
	case "lcd":
		err = cmdLCD(os.Args[2:])
	case "led":
		err = cmdLED(os.Args[2:])
	case "help", "-h", "--help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", os.Args[1])
		usage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprint(os.Stderr, `panelctl - hardware bring-up tool for panelkit

Usage:
  panelctl probe                    list input devices
  panelctl touch [flags]            decode and print touch frames
  panelctl lcd [flags]              framebuffer test pattern
  panelctl led <on|off|toggle|pattern|blink|list> [args]

Run "panelctl <command> -h" for command flags.
`)
}
