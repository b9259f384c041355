package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/faiface/beep"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iburimskiy/piverse/internal/audio"
	"github.com/iburimskiy/piverse/internal/compose"
	"github.com/iburimskiy/piverse/internal/config"
	"github.com/iburimskiy/piverse/internal/digits"
	"github.com/iburimskiy/piverse/internal/frame"
	"github.com/iburimskiy/piverse/internal/game"
	"github.com/iburimskiy/piverse/internal/logging"
	"github.com/iburimskiy/piverse/internal/render"
	"github.com/iburimskiy/piverse/internal/view"
)

var (
	// Global flags
	configPath string
	verbose    bool

	cfg    *config.Config
	seq    digits.Sequence
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "piverse",
	Short: "Decorative visualizations of the digits of π",
	Long: `piverse draws the digits of π as a radial diagram, a rotating point
cloud, an animated spiral and composable circle art.

Run without arguments to open the window.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		logger, err = logging.New(cfg.Logging, verbose)
		if err != nil {
			return err
		}
		if cfg.Digits.Count > 0 {
			seq, err = digits.Generate(cfg.Digits.Count)
			if err != nil {
				return fmt.Errorf("generate digits: %w", err)
			}
		} else {
			seq = digits.Default()
		}
		logger.Debug("configuration loaded",
			zap.String("path", configPath),
			zap.Int("digits", seq.Digits()))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runWindow,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the visualization window",
	Long: `Opens the desktop window on the chosen view.

Keys:
  1-4        radial, cloud, pattern, art
  E / V      export PNG / SVG
  P          play or pause the digit tones
  O          play an audio file (wav, mp3, flac) under the views
  Esc / Q    quit`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a view headlessly and export it",
	Long: `Drives the view's frame loop for a number of frames without a window
and writes the final frame as PNG, and optionally as SVG.

Example:
  piverse render --view pattern --frames 600 --out spiral.png --svg spiral.svg`,
	Args: cobra.NoArgs,
	RunE: renderView,
}

var tonesCmd = &cobra.Command{
	Use:   "tones",
	Short: "Export the digits as a WAV melody",
	Args:  cobra.NoArgs,
	RunE:  exportTones,
}

var (
	windowView string

	renderName   string
	renderFrames int
	renderFPS    int
	renderOut    string
	renderSVG    string

	tonesOut string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "piverse.yaml", "configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	names := strings.Join(view.Names, ", ")
	runCmd.Flags().StringVar(&windowView, "view", "", "first view ("+names+")")

	renderCmd.Flags().StringVar(&renderName, "view", view.NamePattern, "view to render ("+names+")")
	renderCmd.Flags().IntVar(&renderFrames, "frames", 1, "frames to advance before export")
	renderCmd.Flags().IntVar(&renderFPS, "fps", 0, "frame rate, 0 renders as fast as possible")
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "PNG output path (default: the view's export name)")
	renderCmd.Flags().StringVar(&renderSVG, "svg", "", "also write an SVG document")

	tonesCmd.Flags().StringVarP(&tonesOut, "out", "o", "pi-tones.wav", "WAV output path")

	rootCmd.AddCommand(runCmd, renderCmd, tonesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runWindow(cmd *cobra.Command, args []string) error {
	if windowView != "" {
		cfg.View = windowView
	}
	return game.Run(cfg, seq, logger)
}

func renderView(cmd *cobra.Command, args []string) error {
	if renderFrames < 1 {
		return fmt.Errorf("--frames must be at least 1")
	}
	v, err := view.New(renderName, view.Options{
		Sequence:   seq,
		Pattern:    cfg.Pattern,
		ToolRadius: cfg.Art.ToolRadius,
	})
	if err != nil {
		return err
	}
	if art, ok := v.(*view.Art); ok {
		if tool, ok := compose.ParseKind(cfg.Art.Tool); ok {
			art.SetTool(tool)
		}
	}
	if renderOut == "" {
		renderOut = v.ExportName()
	}

	w, h := v.Size()
	surface, err := render.NewSurface(w, h)
	if err != nil {
		return err
	}
	defer surface.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	frames := uint64(renderFrames)
	d := frame.New(v, surface,
		frame.WithLogger(logger.With(zap.String("view", v.Name()))),
		frame.WithTickHook(func(n uint64) {
			if n >= frames {
				cancel()
			}
		}))

	interval := time.Nanosecond
	if renderFPS > 0 {
		interval = time.Second / time.Duration(renderFPS)
	}
	start := time.Now()
	if err := d.Start(ctx, frame.NewTicker(interval)); err != nil {
		return err
	}
	<-d.Done()
	if d.Ticks() < frames {
		return fmt.Errorf("render interrupted after %d of %d frames", d.Ticks(), frames)
	}
	if err := surface.Err(); err != nil {
		return fmt.Errorf("render %s: %w", v.Name(), err)
	}
	logger.Info("frames rendered",
		zap.String("view", v.Name()),
		zap.Uint64("frames", d.Ticks()),
		zap.Duration("elapsed", time.Since(start)))

	if err := surface.SavePNG(renderOut); err != nil {
		return err
	}
	logger.Info("image exported", zap.String("path", renderOut))

	if renderSVG != "" {
		if err := render.SaveSVG(renderSVG, w, h, view.ExportFrame(v)); err != nil {
			return err
		}
		logger.Info("vector exported", zap.String("path", renderSVG))
	}
	return nil
}

func exportTones(cmd *cobra.Command, args []string) error {
	note, err := cfg.NoteDuration()
	if err != nil {
		return err
	}
	rate := beep.SampleRate(cfg.Audio.SampleRate)
	if rate <= 0 {
		return errors.New("audio sample rate must be positive")
	}
	f, err := os.Create(tonesOut)
	if err != nil {
		return fmt.Errorf("export tones: %w", err)
	}
	if err := audio.ExportWAV(f, seq, rate, note); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("export tones: %w", err)
	}
	logger.Info("tones exported",
		zap.String("path", tonesOut),
		zap.Int("notes", seq.Len()),
		zap.Duration("note", note))
	return nil
}
