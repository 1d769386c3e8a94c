package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/milk9111/jumpking/input"
	"github.com/milk9111/jumpking/levels"
	"github.com/milk9111/jumpking/prefabs"
	"github.com/milk9111/jumpking/sim"
)

func main() {
	levelName := flag.String("level", levels.Default, "level name in levels/ (basename, .yaml optional)")
	scriptName := flag.String("script", "climb", "input script: a file path or a name in prefabs/scripts")
	frames := flag.Int("frames", 600, "number of frames to simulate")
	fps := flag.Float64("fps", 60, "frames per second fed to the session")
	every := flag.Int("every", 10, "print one row every n frames (0 prints only the summary)")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if *fps <= 0 {
		log.Fatalf("simulate: fps must be positive, got %g", *fps)
	}

	session, err := sim.Load(*levelName)
	if err != nil {
		log.Fatal(err)
	}
	src, err := prefabs.LoadScript(*scriptName)
	if err != nil {
		log.Fatalf("simulate: load script %s: %v", *scriptName, err)
	}
	scripted, err := input.NewScriptSource(src, 1 / *fps)
	if err != nil {
		log.Fatal(err)
	}

	if err := run(session, scripted, *frames, *every, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(session *sim.Session, src *input.ScriptSource, frames, every int, out io.Writer) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "frame\tticks\tx\ty\tvx\tvy\tgrounded\tcharge\t")

	var jumps, landings int
	wasGrounded := session.PlayerState().CanJump
	for i := 0; i < frames; i++ {
		if err := src.Advance(); err != nil {
			return err
		}
		session.Frame(src)

		// the ground gate only closes on upward motion, so leaving it is a jump
		p := session.PlayerState()
		switch {
		case wasGrounded && !p.CanJump:
			jumps++
		case !wasGrounded && p.CanJump:
			landings++
		}
		wasGrounded = p.CanJump

		if every > 0 && i%every == 0 {
			fmt.Fprintf(tw, "%d\t%d\t%.2f\t%.2f\t%.2f\t%.2f\t%t\t%.0f\t\n",
				i, session.Ticks(), p.Position.X, p.Position.Y, p.Velocity.X, p.Velocity.Y, p.CanJump, p.JumpCharge)
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	p := session.PlayerState()
	slog.Info("simulation finished",
		"session", session.ID().String(),
		"level", session.Name(),
		"frames", session.Frames(),
		"ticks", session.Ticks(),
		"jumps", jumps,
		"landings", landings,
		"x", p.Position.X,
		"y", p.Position.Y,
	)
	return nil
}
