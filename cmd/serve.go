// cmd/serve.go
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Bitlatte/splash/internal/build"
	"github.com/Bitlatte/splash/internal/config"
)

const debounceDuration = 500 * time.Millisecond

var serverPort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the site locally and rebuilds it on changes",
	Long: `The serve command builds the site, serves the output directory on a local
web server and watches the content and static directories and the site
configuration file, rebuilding the site whenever they change.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		builder, err := build.New(appConfig, log)
		if err != nil {
			return err
		}
		if err := builder.Build(ctx); err != nil {
			return fmt.Errorf("initial build failed: %w", err)
		}

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("failed to create file watcher: %w", err)
		}
		defer watcher.Close()

		for _, root := range []string{appConfig.ContentDir, appConfig.StaticDir} {
			watchTree(watcher, root)
		}
		// Editors often replace files instead of writing them, so the
		// directory holding the site config is watched rather than the file.
		siteConfigDir := filepath.Dir(appConfig.SiteConfig)
		if err := watcher.Add(siteConfigDir); err != nil {
			log.Warn("failed to watch site config directory", zap.String("dir", siteConfigDir), zap.Error(err))
		}

		go watchLoop(ctx, watcher, builder)

		server := &http.Server{
			Addr:              fmt.Sprintf(":%d", serverPort),
			Handler:           noCacheHandler(appConfig.OutputDir),
			ReadHeaderTimeout: 10 * time.Second,
		}
		go func() {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Shutdown(shutdownCtx)
		}()

		log.Info("serving site",
			zap.String("dir", appConfig.OutputDir),
			zap.String("url", fmt.Sprintf("http://localhost:%d", serverPort)))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start HTTP server: %w", err)
		}
		log.Info("server stopped")
		return nil
	},
}

// watchTree adds root and all directories below it to the watcher.
func watchTree(watcher *fsnotify.Watcher, root string) {
	if _, err := os.Stat(root); errors.Is(err, fs.ErrNotExist) {
		log.Info("directory not found, it is only watched if later created beside the site config", zap.String("dir", root))
		return
	}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Warn("error walking directory", zap.String("path", path), zap.Error(err))
			return nil
		}
		if d.IsDir() {
			if err := watcher.Add(path); err != nil {
				log.Warn("failed to watch directory", zap.String("dir", path), zap.Error(err))
			}
		}
		return nil
	})
	if err != nil {
		log.Warn("error during directory walk", zap.String("dir", root), zap.Error(err))
	}
}

type siteBuilder interface {
	Build(ctx context.Context) error
}

// watchLoop rebuilds the site once changes have settled for debounceDuration.
func watchLoop(ctx context.Context, watcher *fsnotify.Watcher, builder siteBuilder) {
	var (
		mu         sync.Mutex
		buildTimer *time.Timer
	)
	rebuild := func() {
		mu.Lock()
		defer mu.Unlock()
		log.Info("rebuilding site")
		if err := builder.Build(ctx); err != nil {
			log.Error("rebuild failed", zap.Error(err))
			return
		}
		log.Info("site rebuilt")
	}

	for {
		select {
		case <-ctx.Done():
			if buildTimer != nil {
				buildTimer.Stop()
			}
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			if !isSource(event.Name) {
				continue
			}
			log.Debug("change detected", zap.String("path", event.Name), zap.String("op", event.Op.String()))

			if event.Has(fsnotify.Create) && isDir(event.Name) {
				watchTree(watcher, event.Name)
			}
			if buildTimer != nil {
				buildTimer.Stop()
			}
			buildTimer = time.AfterFunc(debounceDuration, rebuild)
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Warn("watcher error", zap.Error(err))
		}
	}
}

// noCacheHandler serves dir without directory listings and with caching
// disabled.
func noCacheHandler(dir string) http.Handler {
	files := http.FileServer(http.Dir(dir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") && r.URL.Path != "/" {
			if _, err := os.Stat(filepath.Join(dir, filepath.FromSlash(r.URL.Path), "index.html")); err != nil {
				http.NotFound(w, r)
				return
			}
		}
		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		w.Header().Set("Pragma", "no-cache")
		w.Header().Set("Expires", "0")
		files.ServeHTTP(w, r)
	})
}

// isSource reports whether path is an input of the build. The site config
// directory may also hold the output directory, whose changes are ignored.
func isSource(path string) bool {
	path = filepath.Clean(path)
	if path == filepath.Clean(appConfig.SiteConfig) {
		return true
	}
	for _, dir := range []string{appConfig.ContentDir, appConfig.StaticDir} {
		if config.Within(path, dir) {
			return true
		}
	}
	return false
}

func isDir(path string) bool {
	fileInfo, err := os.Stat(path)
	if err != nil {
		return false
	}
	return fileInfo.IsDir()
}

func init() {
	serveCmd.Flags().IntVarP(&serverPort, "port", "p", 1313, "Port to serve the site on")
	rootCmd.AddCommand(serveCmd)
}
