package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/Olga-Zydziak/website-of-publishing-house/internal/config"
	"github.com/Olga-Zydziak/website-of-publishing-house/internal/db"
	"github.com/Olga-Zydziak/website-of-publishing-house/internal/manager"
	"github.com/Olga-Zydziak/website-of-publishing-house/internal/relay"
	"github.com/Olga-Zydziak/website-of-publishing-house/internal/server"
	"github.com/Olga-Zydziak/website-of-publishing-house/internal/site"
	"github.com/Olga-Zydziak/website-of-publishing-house/internal/store"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the website and manager console",
	Long:  `Starts the HTTP server: the public site at /, the manager console at /manager, and the contact API. The config file is watched and reloaded on change.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if servePort != 0 {
			cfg.Port = servePort
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
			return fmt.Errorf("creating data directory: %w", err)
		}
		dbPath := filepath.Join(cfg.DataDir, "pubsite.db")
		database, err := db.Open(dbPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		runtime := config.NewRuntime(cfg)
		st := store.New(database)

		srv := server.New(runtime, st)
		pipeline := relay.NewPipeline(relay.NewClient(), cfg.Relay.BaseURL, cfg.Relay.VerificationNote)
		pages := site.New(runtime, st, pipeline)
		console := manager.New(runtime, st)

		site.RegisterRoutes(srv.Router(), pages)
		console.RegisterRoutes(srv.Router())

		stopWatch, err := watchConfig(cfgFile, runtime)
		if err != nil {
			log.Printf("Config watch disabled: %v", err)
		} else {
			defer stopWatch()
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			srv.Shutdown(context.Background())
		}()

		fmt.Fprintf(os.Stderr, "pubsite v%s starting on port %d\n", Version, cfg.Port)
		fmt.Fprintf(os.Stderr, "  Database: %s\n", dbPath)
		fmt.Fprintf(os.Stderr, "  Manager:  http://localhost:%d/manager\n", cfg.Port)

		return srv.Start()
	},
}

// watchConfig reloads the config file on change and swaps it into the
// runtime. Events are debounced since editors fire several per save.
func watchConfig(path string, runtime *config.Runtime) (func(), error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, err
	}

	target, err := filepath.Abs(path)
	if err != nil {
		target = path
	}

	go func() {
		var reloadTimer *time.Timer
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				name, _ := filepath.Abs(event.Name)
				if name != target {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
					continue
				}
				if reloadTimer != nil {
					reloadTimer.Stop()
				}
				reloadTimer = time.AfterFunc(500*time.Millisecond, func() {
					cfg, err := config.Load(path)
					if err != nil {
						log.Printf("Config reload failed: %v", err)
						return
					}
					if err := cfg.Validate(); err != nil {
						log.Printf("Config reload rejected: %v", err)
						return
					}
					runtime.Replace(cfg)
					log.Printf("Config reloaded from %s", path)
				})
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("Config watcher error: %v", err)
			}
		}
	}()

	return func() { watcher.Close() }, nil
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "override the configured listen port")
	rootCmd.AddCommand(serveCmd)
}
