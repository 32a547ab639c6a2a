package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ziadkadry99/docviewer/internal/history"
	"github.com/ziadkadry99/docviewer/internal/server"
	"github.com/ziadkadry99/docviewer/internal/site"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the documentation viewer HTTP server",
	Long: `Starts the viewer on the configured port. The viewer page lives under
viewer_path (default /viewer/), raw documents are served from the docs
directory, and /ws/viewer pushes every viewer state change to the page.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "override server.port")
	serveCmd.Flags().Bool("open", false, "open browser automatically")
	serveCmd.Flags().Bool("allow-all-origins", false, "allow every CORS origin")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if port, _ := cmd.Flags().GetInt("port"); port > 0 {
		cfg.Server.Port = port
	}
	if allow, _ := cmd.Flags().GetBool("allow-all-origins"); allow {
		cfg.Server.AllowAllOrigins = true
	}

	a, err := buildApp(cfg, true)
	if err != nil {
		return err
	}
	defer a.Close()

	srv := server.New(server.Config{
		Port:     cfg.Server.Port,
		AllowAll: cfg.Server.AllowAllOrigins,
	}, logger)

	// Register all feature routes.
	v := site.New(site.Options{
		Controller: a.controller,
		Docs:       a.docs,
		ViewerPath: cfg.ViewerPath,
		SiteName:   cfg.SiteName,
		Styles:     a.styles,
		Logger:     logger,
	})
	if a.history != nil {
		history.RegisterRoutes(srv.Router(), a.history)
	}
	v.RegisterRoutes(srv.Router())
	v.RegisterStreamRoutes(srv.StreamRouter())

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("shutdown", zap.Error(err))
		}
	}()

	pageURL := site.PageURL(fmt.Sprintf("http://localhost:%d", cfg.Server.Port), cfg.ViewerPath)
	fmt.Fprintf(os.Stderr, "docviewer %s serving %d documents from %s\n", Version, len(a.catalog), cfg.DocsDir)
	fmt.Fprintf(os.Stderr, "  Viewer: %s\n", pageURL)
	if a.db != nil {
		fmt.Fprintf(os.Stderr, "  History: %s (failures: /api/viewer/history/failures)\n", a.db.Path())
	}
	fmt.Fprintln(os.Stderr, "Press Ctrl+C to stop.")

	if open, _ := cmd.Flags().GetBool("open"); open {
		go site.OpenBrowser(pageURL)
	}

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
