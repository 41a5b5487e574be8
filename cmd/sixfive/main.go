// Command sixfive is a minimal host harness: it loads a flat binary image
// into a Core's address space, drives Tick() for a fixed number of full
// cycles, and with --trace prints the per-cycle diagnostic strings as it
// goes. It is
// not a monitor or a debugger; it exists to exercise a Core from outside
// the cpu package's own tests.
package main

import (
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"

	"github.com/urfave/cli/v2"

	"sixfive/cpu"
)

func main() {
	app := &cli.App{
		Name:    "sixfive",
		Usage:   "run a flat 6502 binary image against a cycle-accurate core",
		Version: "v0.0.1",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "program",
				Aliases:  []string{"p"},
				Usage:    "path to a flat binary image",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "load-addr",
				Aliases: []string{"a"},
				Usage:   "address (hex, e.g. 0x0200) to load the image at",
				Value:   "0x0200",
			},
			&cli.BoolFlag{
				Name:  "set-reset-vector",
				Usage: "point the reset vector at load-addr instead of trusting the image's own vectors",
				Value: true,
			},
			&cli.BoolFlag{
				Name:  "core-test",
				Usage: "warm-reset (skip the 7-cycle cold RESET sequence) before running",
			},
			&cli.IntFlag{
				Name:    "cycles",
				Aliases: []string{"n"},
				Usage:   "number of full cycles to run",
				Value:   1000,
			},
			&cli.BoolFlag{
				Name:  "trace",
				Usage: "print CycleAction/OpcodeAction diagnostics for every cycle",
			},
		},
		Action: run,
	}
	sort.Sort(cli.FlagsByName(app.Flags))

	if err := app.Run(os.Args); err != nil {
		log.Fatalf("sixfive: %v", err)
	}
}

func run(ctx *cli.Context) error {
	img, err := os.ReadFile(ctx.String("program"))
	if err != nil {
		return fmt.Errorf("reading program: %w", err)
	}

	loadAddr, err := strconv.ParseUint(ctx.String("load-addr"), 0, 16)
	if err != nil {
		return fmt.Errorf("parsing load-addr: %w", err)
	}

	c := cpu.New(cpu.Config{CoreTest: ctx.Bool("core-test")})
	c.LoadProgram(uint16(loadAddr), img, ctx.Bool("set-reset-vector"))
	c.Reset(ctx.Bool("core-test"))

	trace := ctx.Bool("trace")
	for i := 0; i < ctx.Int("cycles"); i++ {
		err := c.Tick()
		if trace {
			fmt.Printf("cycle %6d  PC=%04X  A=%02X X=%02X Y=%02X P=%02X SP=%04X  %s: %s\n",
				i, c.PC, c.A, c.X, c.Y, c.P, c.SP, c.OpcodeAction, c.CycleAction)
		}
		if err != nil {
			if _, jammed := err.(cpu.JammedError); jammed {
				fmt.Printf("core jammed after %d cycles: %v\n", i, err)
				return nil
			}
			return err
		}
	}
	fmt.Printf("ran %d cycles, PC=%04X A=%02X X=%02X Y=%02X P=%02X SP=%04X\n",
		c.TotalCycles, c.PC, c.A, c.X, c.Y, c.P, c.SP)
	return nil
}
