package main

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/urfave/cli.v2"

	"dmgcore"
	"dmgcore/internal/dmglog"
)

var modeNames = map[string]dmgcore.SystemMode{
	"gameboy":         dmgcore.SystemModeGameboy,
	"gameboy-pocket":  dmgcore.SystemModeGameboyPocket,
	"super-gameboy":   dmgcore.SystemModeSuperGameboy,
	"gameboy-color":   dmgcore.SystemModeGameboyColorDMG,
	"gameboy-color-c": dmgcore.SystemModeGameboyColorGBC,
}

func main() {
	app := &cli.App{
		Name:    "dmgcore",
		Usage:   "run a Game Boy ROM against the cycle-accurate DMG core",
		Version: "v0.0.1",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "rom",
				Aliases: []string{"r"},
				Usage:   "cartridge ROM image to load",
			},
			&cli.StringFlag{
				Name:    "boot",
				Aliases: []string{"b"},
				Usage:   "optional 256-byte boot ROM image",
			},
			&cli.StringFlag{
				Name:  "mode",
				Usage: "system mode: gameboy, gameboy-pocket, super-gameboy, gameboy-color, gameboy-color-c",
				Value: "gameboy",
			},
			&cli.IntFlag{
				Name:  "tcycles",
				Usage: "stop after running this many master T-cycles (0 runs until a fault)",
				Value: 0,
			},
		},
		Action: run,
	}

	sort.Sort(cli.FlagsByName(app.Flags))
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	romPath := c.String("rom")
	if romPath == "" {
		cli.ShowAppHelp(c)
		return cli.Exit("a -rom is required", 86)
	}

	mode, ok := modeNames[c.String("mode")]
	if !ok {
		return cli.Exit(fmt.Sprintf("unknown mode %q", c.String("mode")), 86)
	}

	log := dmglog.New()

	cons, err := dmgcore.New(mode, log)
	if err != nil {
		return err
	}

	if err := cons.AttachCartridge(romPath); err != nil {
		return err
	}

	if bootPath := c.String("boot"); bootPath != "" {
		if err := cons.AttachBootROM(bootPath); err != nil {
			return err
		}
	}

	if err := cons.Reset(); err != nil {
		return err
	}

	budget := c.Int("tcycles")
	if budget > 0 {
		err = cons.RunForTCycles(budget)
	} else {
		err = cons.Run(nil)
	}
	if err != nil {
		log.WithError(err).Error("emulation halted")
		return cli.Exit(err.Error(), 1)
	}

	return nil
}
