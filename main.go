package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/iburimskiy/portfolio-fx/internal/config"
	"github.com/iburimskiy/portfolio-fx/internal/game"
	"github.com/iburimskiy/portfolio-fx/internal/particles"
	"github.com/iburimskiy/portfolio-fx/internal/termview"
)

var (
	verbose     bool
	seed        uint64
	width       int
	height      int
	pagePath    string
	contentPath string
	terminal    bool
	noCursor    bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "portfolio-fx",
	Short: "Portfolio landing page with an ambient particle background",
	Long: `portfolio-fx renders a portfolio landing page in a desktop window:
drifting particles joined by faint lines, a typed hero line, a navbar with a
hamburger menu, sections that fade in as they scroll into view, a simulated
contact form and a custom cursor.

With --term only the particle field is drawn, inside the terminal.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if terminal {
			return runTerminal(cmd.Context())
		}
		return runWindow()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.Flags().Uint64Var(&seed, "seed", 0, "seed for the particle layout (0 picks one at random)")
	rootCmd.Flags().IntVar(&width, "width", config.WindowWidth, "window width")
	rootCmd.Flags().IntVar(&height, "height", config.WindowHeight, "window height")
	rootCmd.Flags().StringVar(&pagePath, "path", "", "current page path used to highlight the navbar (defaults to the content file's)")
	rootCmd.Flags().StringVar(&contentPath, "content", "", "YAML file with page content (defaults to the built-in page)")
	rootCmd.Flags().BoolVar(&terminal, "term", false, "draw the particle field in the terminal")
	rootCmd.Flags().BoolVar(&noCursor, "no-cursor", false, "keep the system cursor")
}

func newRand() *rand.Rand {
	if seed == 0 {
		return nil
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func loadContent() (*config.Content, error) {
	if contentPath != "" {
		return config.LoadContent(contentPath)
	}
	return config.DefaultContent()
}

func runWindow() error {
	content, err := loadContent()
	if err != nil {
		return err
	}
	if pagePath != "" {
		content.Path = pagePath
	}

	g, err := game.New(game.Options{
		Content: content,
		Rand:    newRand(),
		Logger:  logger,
		Width:   width,
		Height:  height,
		Cursor:  !noCursor,
	})
	if err != nil {
		return err
	}
	defer g.Close()

	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(content.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.TPS)
	if !noCursor {
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
	}

	logger.Info("opening window", zap.Int("width", width), zap.Int("height", height), zap.String("path", content.Path))
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}

func runTerminal(ctx context.Context) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()

	host := termview.NewHost(screen, config.Background, logger)
	opts := []particles.Option{particles.WithLogger(logger)}
	if rng := newRand(); rng != nil {
		opts = append(opts, particles.WithRand(rng))
	}
	_, stop := particles.Start(host, host.Canvas(), opts...)
	defer stop()

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()
	return host.Run(ctx)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
