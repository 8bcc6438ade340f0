//go:build linux

// paneld - touch panel decode daemon
//
// paneld probes the touch input device, decodes the kernel multi-touch
// event stream into frames, and publishes the frames on D-Bus for UI
// processes. It re-probes on input hotplug events and blinks a heartbeat
// LED while running.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/godbus/dbus/v5"

	"panelkit/internal/config"
	"panelkit/internal/evdev"
	"panelkit/internal/frames"
	"panelkit/internal/led"
	"panelkit/internal/logging"
	"panelkit/internal/touch"
)

func main() {
	configPath := flag.String("config", "/etc/panelkit/panelkit.toml", "config file")
	bus := flag.String("bus", "session", "D-Bus to publish on: session, system or none")
	flag.Parse()

	if err := run(*configPath, *bus); err != nil {
		fmt.Fprintln(os.Stderr, "paneld:", err)
		os.Exit(1)
	}
}

func run(configPath, bus string) error {
	loader := config.NewLoader(configPath)
	cfg, err := loader.Load()
	if err != nil {
		return err
	}
	defer loader.Close()

	logger, err := logging.New(&logging.Config{
		Level:      logging.ParseLevel(cfg.Logging.Level),
		Format:     logging.ParseFormat(cfg.Logging.Format),
		Output:     cfg.Logging.Output,
		Component:  "paneld",
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Config hot reload: a changed file takes effect at the next probe
	// cycle; broken edits are logged and ignored.
	if err := loader.Watch(); err != nil {
		logger.Warn("config watch unavailable", "error", err)
	} else {
		loader.OnChange(func(*config.Config) {
			logger.Info("configuration reloaded")
		})
		go func() {
			for {
				select {
				case <-ctx.Done():
					return
				case err := <-loader.Errors():
					logger.Warn("config reload failed", "error", err)
				}
			}
		}()
	}

	var publisher *frames.Publisher
	switch bus {
	case "session":
		publisher, err = frames.NewPublisher(dbus.ConnectSessionBus)
	case "system":
		publisher, err = frames.NewPublisher(dbus.ConnectSystemBus)
	case "none":
	default:
		return fmt.Errorf("unknown bus %q (session, system or none)", bus)
	}
	if err != nil {
		return err
	}
	if publisher != nil {
		defer publisher.Close()
		logger.Info("publishing frames", "bus", bus, "name", frames.BusName)
	}

	leds := led.NewController(cfg.LEDs.SysfsBase, cfg.LEDs.Names)
	heartbeat := cfg.LEDs.Heartbeat
	if heartbeat >= 0 && !leds.Available(heartbeat) {
		logger.Warn("heartbeat LED unavailable", "index", heartbeat)
		heartbeat = -1
	}
	if heartbeat >= 0 {
		defer leds.Set(heartbeat, false)
	}

	monitor, err := evdev.NewMonitor("/dev/input")
	if err != nil {
		logger.Warn("hotplug monitoring unavailable", "error", err)
	} else {
		defer monitor.Close()
	}

	for {
		cfg = loader.Config()
		if err := serveDevice(ctx, cfg, logger, publisher, leds, heartbeat, monitor); err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			logger.Error("device session ended", "error", err)
		}
		// Device gone or never found: wait for hotplug or a timer before
		// probing again.
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(2 * time.Second):
		}
	}
}

// serveDevice probes once and polls the device until it fails, the context
// is cancelled, or a hotplug event suggests re-probing.
func serveDevice(ctx context.Context, cfg *config.Config, logger *slog.Logger,
	publisher *frames.Publisher, leds *led.Controller, heartbeat int,
	monitor *evdev.Monitor) error {

	res, err := evdev.FindTouchDevice(cfg.Touch.DevicePath, cfg.Touch.NameHints)
	if err != nil {
		return err
	}
	defer res.Device.Close()

	dc := touch.Config{
		MaxPoints:    cfg.Touch.MaxPoints,
		ScreenWidth:  cfg.Touch.ScreenWidth,
		ScreenHeight: cfg.Touch.ScreenHeight,
	}
	if res.Calibrated {
		dc.BoundsX = touch.AxisRange{Min: res.X.Minimum, Max: res.X.Maximum}
		dc.BoundsY = touch.AxisRange{Min: res.Y.Minimum, Max: res.Y.Maximum}
	} else {
		logger.Info("axis calibration unavailable, using fixed-resolution scaling")
	}
	decoder := touch.NewDecoder(dc)

	logger.Info("decoding touch events",
		"device", res.Device.Path(),
		"name", res.Name,
		"max_points", cfg.Touch.MaxPoints,
		"screen", fmt.Sprintf("%dx%d", cfg.Touch.ScreenWidth, cfg.Touch.ScreenHeight))

	poll := time.NewTicker(time.Duration(cfg.Touch.PollIntervalMs) * time.Millisecond)
	defer poll.Stop()
	beat := time.NewTicker(time.Second)
	defer beat.Stop()

	var hotplug <-chan evdev.HotplugEvent
	if monitor != nil {
		hotplug = monitor.Events()
	}

	for {
		select {
		case <-ctx.Done():
			return context.Canceled

		case ev := <-hotplug:
			if ev.Removed && ev.Path == res.Device.Path() {
				return fmt.Errorf("device %s removed", ev.Path)
			}

		case <-beat.C:
			if heartbeat >= 0 {
				if err := leds.Toggle(heartbeat); err != nil {
					logger.Debug("heartbeat toggle failed", "error", err)
				}
			}

		case <-poll.C:
			events, err := res.Device.ReadEvents()
			if err != nil {
				return err
			}
			for _, frame := range decoder.Feed(events) {
				logger.Debug("frame", "count", frame.Count, "ts_ms", frame.TimestampMS)
				if publisher != nil {
					if err := publisher.Publish(frame); err != nil {
						logger.Warn("publish failed", "error", err)
					}
				}
			}
		}
	}
}
