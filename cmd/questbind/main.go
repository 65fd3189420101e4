// Command questbind exercises the QuEST bindings from the command line.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/hsiuhsiu/quest-go/pkg/quest"
)

var (
	configFlag = &cli.StringFlag{
		Name:    "config",
		Usage:   "TOML configuration file",
		EnvVars: []string{"QUESTBIND_CONFIG"},
	}
	seedFlag = &cli.Uint64SliceFlag{
		Name:  "seed",
		Usage: "seed for QuEST's random number generator (repeatable)",
	}
	poisonFlag = &cli.BoolFlag{
		Name:  "poison",
		Usage: "refuse further operations on a register after a native error",
	}
	verboseFlag = &cli.BoolFlag{
		Name:  "verbose",
		Usage: "log at debug level",
	}
	colorFlag = &cli.StringFlag{
		Name:  "color",
		Usage: "colorize output: auto, always or never",
	}
	logFormatFlag = &cli.StringFlag{
		Name:  "log-format",
		Usage: "log format: text or json",
	}
)

// app holds the state shared by every command once flags are parsed.
type app struct {
	settings settings
	log      *slog.Logger
}

func (a *app) setup(c *cli.Context) error {
	s, err := loadSettings(c.String(configFlag.Name))
	if err != nil {
		return err
	}
	s.applyFlags(c)
	if err := s.validate(); err != nil {
		return err
	}
	s.applyColor()

	logger, err := s.newLogger(c.App.ErrWriter)
	if err != nil {
		return err
	}
	a.settings = s
	a.log = logger
	return nil
}

// env creates a QuEST environment configured from the settings.
func (a *app) env() (*quest.Env, error) {
	env, err := quest.NewEnv(a.settings.questConfig(a.log))
	if err != nil {
		return nil, fmt.Errorf("create environment: %w", err)
	}
	return env, nil
}

func newApp() *cli.App {
	a := &app{}
	return &cli.App{
		Name:    "questbind",
		Usage:   "run small QuEST simulations through the Go bindings",
		Version: quest.WrapperVersion(),
		Flags: []cli.Flag{
			configFlag,
			seedFlag,
			poisonFlag,
			verboseFlag,
			colorFlag,
			logFormatFlag,
		},
		Before: a.setup,
		Commands: []*cli.Command{
			versionCommand(),
			a.envCommand(),
			a.groverCommand(),
			a.hamilCommand(),
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("questbind: %v", err))
		os.Exit(1)
	}
}
