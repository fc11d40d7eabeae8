// Command signalctl runs a headless SIGNAL engine for a fixed number of
// frames and prints the resulting per-system timing table. It exists as
// a small host demonstration binary; no core package imports it.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/olekukonko/tablewriter"

	"github.com/atimics/signal"
)

func main() {
	cfg, err := signal.LoadConfig(os.Getenv("SIGNALCTL_CONFIG"))
	if err != nil {
		fmt.Fprintln(os.Stderr, "signalctl: loading config:", err)
		os.Exit(1)
	}

	logger := signal.NewDefaultLogger("signalctl", cfg.Debug)
	engine := signal.NewEngine(cfg, logger)

	ship, err := signal.NewBuilder(engine.World).
		WithTransform(signal.Vec3{0, 0, 0}, signal.IdentityQuat()).
		WithPhysics(80, signal.Vec3{40, 40, 40}, true).
		WithThrusters(signal.Vec3{6000, 6000, 10000}, signal.Vec3{2000, 2000, 2000}, 0.2).
		WithRenderable(uuid.New(), uuid.New()).
		Build()
	if err != nil {
		fmt.Fprintln(os.Stderr, "signalctl: building ship:", err)
		os.Exit(1)
	}

	_, err = signal.NewBuilder(engine.World).
		WithTransform(signal.Vec3{0, 0, -5}, signal.IdentityQuat()).
		WithControl(ship, 1.0).
		Build()
	if err != nil {
		fmt.Fprintln(os.Stderr, "signalctl: building controller:", err)
		os.Exit(1)
	}

	engine.Start()
	const frameDelta = 1.0 / 60.0
	for i := 0; i < 600; i++ {
		engine.SetInput(signal.InputState{Thrust: 1})
		engine.Tick(frameDelta)
	}
	engine.Stop()

	printTimings(engine.Monitor.Snapshot())
}

func printTimings(rows []signal.SystemTiming) {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"System", "Calls", "Total", "Min", "Max", "Rolling Avg"})
	for _, r := range rows {
		_ = table.Append([]string{
			r.Name,
			fmt.Sprintf("%d", r.Calls),
			r.Total.Round(time.Microsecond).String(),
			r.Min.Round(time.Microsecond).String(),
			r.Max.Round(time.Microsecond).String(),
			r.RollingAverage.Round(time.Microsecond).String(),
		})
	}
	_ = table.Render()
}
