package cli

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/guna-thota/portfolio/internal/analytics"
	"github.com/guna-thota/portfolio/internal/config"
	"github.com/guna-thota/portfolio/internal/contact"
	"github.com/guna-thota/portfolio/internal/logger"
	"github.com/guna-thota/portfolio/internal/pipeline"
	"github.com/guna-thota/portfolio/internal/portfolio"
	"github.com/guna-thota/portfolio/internal/session"
	"github.com/guna-thota/portfolio/internal/tui"
	"github.com/guna-thota/portfolio/internal/web"
)

var (
	cfg         *config.Config
	profilePath string
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "portfolio",
		Short:         "Personal data-engineering portfolio",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg = config.Load()
			if profilePath != "" {
				cfg.App.ProfilePath = profilePath
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&profilePath, "profile", "", "YAML profile overriding the built-in copy (env PROFILE_PATH)")

	root.AddCommand(serveCmd(), tuiCmd(), stagesCmd())
	return root
}

func serveCmd() *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the portfolio over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			if port != "" {
				cfg.App.Port = port
			}
			log := logger.New(cfg.App.LogFilePath, cfg.IsProduction())
			defer log.Sync()

			profile, err := portfolio.LoadProfile(cfg.App.ProfilePath)
			if err != nil {
				return err
			}

			var tracker *analytics.Store
			if cfg.App.TrackingEnabled {
				tracker, err = analytics.Open(cfg.App.DBPath, log.Named("analytics"))
				if err != nil {
					return err
				}
				defer tracker.Close()
			}

			srv := web.New(web.Deps{
				Config:   cfg,
				Profile:  profile,
				Sessions: session.NewStore(cfg.Session.TTL, 10*time.Minute),
				Tracker:  tracker,
				Mailer: contact.NewMailer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Password,
					cfg.SMTP.ToEmail, log.Named("contact")),
				Logger: log,
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			if err := srv.Run(ctx); err != nil {
				log.Error("server stopped", zap.Error(err))
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "listen port (env PORT, default 8080)")
	return cmd
}

func tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Browse the portfolio in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.NewFileOnly(cfg.App.LogFilePath)
			defer log.Sync()

			profile, err := portfolio.LoadProfile(cfg.App.ProfilePath)
			if err != nil {
				return err
			}
			return tui.Run(profile, log)
		},
	}
}

func stagesCmd() *cobra.Command {
	var mode string
	cmd := &cobra.Command{
		Use:   "stages [stage]",
		Short: "Print the pipeline stages and their content",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, ok := pipeline.ParseMode(mode)
			if !ok {
				return fmt.Errorf("unknown mode %q (want summary or detail)", mode)
			}
			stages := pipeline.Stages()
			if len(args) == 1 {
				s, ok := pipeline.ParseStage(args[0])
				if !ok {
					return fmt.Errorf("unknown stage %q", args[0])
				}
				stages = []pipeline.Stage{s}
			}
			for _, s := range stages {
				printStage(cmd.OutOrStdout(), pipeline.NewViewState().SelectStage(s).WithMode(m))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&mode, "mode", "summary", "summary (recruiter) or detail (engineer)")
	return cmd
}

var (
	stageID  = color.New(color.FgGreen, color.Bold)
	heading  = color.New(color.Bold)
	subtitle = color.New(color.Faint)
	section  = color.New(color.FgCyan)
)

func printStage(w io.Writer, v pipeline.ViewState) {
	c := pipeline.VisibleContent(v)
	stageID.Fprintf(w, "[%s] ", v.Stage.ID())
	heading.Fprintln(w, c.Heading.Title)
	subtitle.Fprintln(w, "  "+c.Heading.Subtitle)

	if c.Summary != nil {
		for _, h := range c.Summary.Highlights {
			fmt.Fprintln(w, "  • "+h)
		}
	}
	if c.Detail != nil {
		section.Fprintln(w, "  What I did")
		for _, s := range c.Detail.What {
			fmt.Fprintln(w, "    • "+s)
		}
		section.Fprint(w, "  Tech: ")
		fmt.Fprintln(w, strings.Join(c.Detail.Tech, ", "))
		section.Fprintln(w, "  Reliability")
		for _, s := range c.Detail.Reliability {
			fmt.Fprintln(w, "    • "+s)
		}
	}
	fmt.Fprintln(w)
}
