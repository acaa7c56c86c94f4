package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/lixenwraith/reverb/audio"
	"github.com/lixenwraith/reverb/config"
	"github.com/lixenwraith/reverb/constant"
	"github.com/lixenwraith/reverb/core"
	"github.com/lixenwraith/reverb/engine"
	"github.com/spf13/cobra"
)

var version = "0.3.0"

type options struct {
	configPath string
	debug      bool
	mute       bool
	seed       uint64
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "reverb",
		Short: "reverb: graphs, colors and melodies in the terminal",
		Long: brand.Sprint("reverb") + " - click to grow a forest of nodes, click a node to make it ring\n" +
			subtle.Sprint("Drag a node into the black hole to remove it with its subtree"),
		Version:      version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts)
		},
	}

	cmd.SetVersionTemplate("reverb {{ .Version }}\n")
	cmd.Flags().StringVar(&opts.configPath, "config", config.DefaultPath(), "Path to the TOML config file")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "Write a debug log to "+logDir+"/"+logFileName)
	cmd.Flags().BoolVar(&opts.mute, "mute", false, "Start with audio muted")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "Random seed for node sizes, 0 picks one")

	return cmd
}

func run(ctx context.Context, opts *options) error {
	if logFile := setupLogging(opts.debug); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		bad.Fprintf(os.Stderr, "reverb: %v\n", err)
		return err
	}
	cfg.ApplyEnv()
	if opts.mute {
		cfg.Audio.Muted = true
	}

	seed := opts.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	bank, err := audio.NewBank(beep.SampleRate(cfg.Audio.SampleRate))
	if err != nil {
		bad.Fprintf(os.Stderr, "reverb: %v\n", err)
		return err
	}
	mixer := audio.NewMixer(bank, cfg.Audio.Muted)
	if err := mixer.Initialize(); err != nil {
		log.Printf("audio: %v, continuing without sound", err)
	}
	defer mixer.Cleanup()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	core.SetResetHook(screen.Fini)
	screen.EnableMouse()
	screen.EnableFocus()
	screen.HideCursor()

	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	clock := engine.NewPausableClock()
	s, err := newSession(cfg, screen, clock, mixer, seed)
	if err != nil {
		screen.Fini()
		return err
	}
	log.Printf("session: seed=%d canvas=%gx%g max_node_size=%g", seed, cfg.Canvas.Width, cfg.Canvas.Height, cfg.Session.MaxNodeSize)

	events := make(chan tcell.Event, constant.EventChannelSize)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	})

	loop := engine.NewLoop(clock, cfg.TickInterval(), cfg.FrameInterval(), engine.LoopHandlers[tcell.Event]{
		Event: s.handle,
		Tick:  s.tick,
		Frame: s.frame,
	})
	err = loop.Run(ctx, events)
	screen.Fini()

	if ready := mixer.Ready(); errors.Is(ready, audio.ErrNotInitialized) {
		warn.Fprintln(os.Stderr, "reverb: no audio device, ran silent")
	}
	subtle.Fprintf(os.Stderr, "reverb: %d ticks, %d nodes at exit\n", loop.Ticks(), len(s.scene.Nodes()))

	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
