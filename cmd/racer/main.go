package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ttacon/chalk"
	"github.com/urfave/cli"

	"racer/internal/desktop"
	"racer/internal/game"
)

func failWith(err error) {
	fmt.Fprintln(os.Stderr, chalk.Red.Color("error: "+err.Error()))
	os.Exit(1)
}

func main() {
	if err := makeapp().Run(os.Args); err != nil {
		failWith(err)
	}
}

var commonFlags = []cli.Flag{
	cli.Uint64Flag{Name: "seed", Usage: "RNG seed (defaults to RACER_SEED or the clock)"},
	cli.IntFlag{Name: "stage-frames", Value: game.StageFrames, Usage: "Frames between stage changes"},
	cli.BoolFlag{Name: "fixed-step", Usage: "Advance one reference frame per tick regardless of frame time"},
}

// configFrom layers command-line flags over DefaultConfig.
func configFrom(c *cli.Context) game.Config {
	cfg := game.DefaultConfig()
	if c.IsSet("seed") {
		cfg.Seed = c.Uint64("seed")
	}
	if n := c.Int("stage-frames"); n > 0 {
		cfg.StageFrames = n
	}
	cfg.FixedStep = c.Bool("fixed-step")
	cfg.Mute = c.Bool("mute")
	if c.IsSet("volume") {
		cfg.Volume = c.Float64("volume")
	}
	if w := c.Int("width"); w > 0 {
		cfg.Width = w
	}
	if h := c.Int("height"); h > 0 {
		cfg.Height = h
	}
	return cfg
}

func withCommon(flags ...cli.Flag) []cli.Flag {
	return append(append([]cli.Flag{}, commonFlags...), flags...)
}

func makeapp() *cli.App {
	app := cli.NewApp()
	app.Name = "racer"
	app.Usage = "Race along procedurally generated tube tracks"
	app.Description = "Tube track racer"

	playFlags := withCommon(
		cli.BoolFlag{Name: "mute", Usage: "Disable sound"},
		cli.Float64Flag{Name: "volume", Value: 0.5, Usage: "Sound effect volume in [0,1]"},
		cli.IntFlag{Name: "width", Value: game.WindowWidth, Usage: "Window width"},
		cli.IntFlag{Name: "height", Value: game.WindowHeight, Usage: "Window height"},
	)
	play := func(c *cli.Context) error {
		return desktop.RunDesktop(configFrom(c), game.DefaultStages())
	}

	app.Flags = playFlags
	app.Action = play
	app.Commands = []cli.Command{
		{
			Name:   "play",
			Usage:  "Open a window and race",
			Flags:  playFlags,
			Action: play,
		},
		{
			Name:  "tui",
			Usage: "Race in the terminal on a top-down map",
			Flags: withCommon(),
			Action: func(c *cli.Context) error {
				cfg := configFrom(c)
				scene := game.NewMemoryScene()
				race, err := game.NewRace(cfg, game.DefaultStages(), scene)
				if err != nil {
					return err
				}
				view := game.NewTerminalView(game.NewScheduler(race, scene))
				game.LogOutput = view
				race.LogEvents()
				if _, err := tea.NewProgram(view, tea.WithAltScreen()).Run(); err != nil {
					return err
				}
				game.LogOutput = os.Stderr
				return view.Err()
			},
		},
		{
			Name:  "sim",
			Usage: "Run the race headless for a number of frames and print a summary",
			Flags: withCommon(
				cli.IntFlag{Name: "frames", Value: 2 * game.StageFrames, Usage: "Number of ticks to run"},
				cli.StringSliceFlag{Name: "hold", Usage: "Key held for the whole run (repeatable)"},
			),
			Action: func(c *cli.Context) error {
				cfg := configFrom(c)
				cfg.FixedStep = true
				in := game.NewInputState()
				for _, k := range c.StringSlice("hold") {
					in.Set(k, true)
				}
				sum, err := game.RunHeadless(cfg, game.DefaultStages(), c.Int("frames"), in)
				printSummary(sum)
				return err
			},
		},
		{
			Name:  "snapshot",
			Usage: "Write a top-down PNG of a stage",
			Flags: withCommon(
				cli.IntFlag{Name: "stage", Usage: "Stage index"},
				cli.StringFlag{Name: "out", Value: "stage.png", Usage: "Output file"},
				cli.IntFlag{Name: "width", Value: 480, Usage: "Image width"},
				cli.IntFlag{Name: "height", Value: 800, Usage: "Image height"},
			),
			Action: func(c *cli.Context) error {
				cfg := configFrom(c)
				race, err := game.NewRace(cfg, game.DefaultStages(), game.NewMemoryScene())
				if err != nil {
					return err
				}
				if i := c.Int("stage"); i != 0 {
					if err := race.Stages.Enter(i); err != nil {
						return err
					}
				}
				out := c.String("out")
				if err := game.SaveSnapshot(race, cfg.Width, cfg.Height, out); err != nil {
					return err
				}
				fmt.Println(chalk.Green.Color("wrote " + out))
				return nil
			},
		},
	}
	return app
}

func printSummary(s game.Summary) {
	fmt.Println(chalk.Bold.TextStyle("race summary"))
	fmt.Printf("  frames       %d\n", s.Frames)
	fmt.Printf("  transitions  %d\n", s.Transitions)
	fmt.Printf("  stage        %d (%s)\n", s.Stage, s.StageName)
	fmt.Printf("  player       (%.2f, %.2f, %.2f) speed %.3f heading %.2f\n",
		s.Player.X(), s.Player.Y(), s.Player.Z(), s.Speed, s.Heading)
	for i, p := range s.AIProgress {
		fmt.Printf("  ai %d        progress %.3f\n", i+1, p)
	}
	fmt.Printf("  obstacles    %d\n", s.Obstacles)
	fmt.Printf("  scene items  %s\n", chalk.Cyan.Color(fmt.Sprint(s.SceneItems)))
}
