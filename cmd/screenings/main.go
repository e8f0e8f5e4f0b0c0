package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/mfinch/screenings/internal/config"
	"github.com/mfinch/screenings/internal/log"
	"github.com/mfinch/screenings/internal/rating"
	"github.com/mfinch/screenings/internal/service"
	"github.com/mfinch/screenings/internal/session"
	"github.com/mfinch/screenings/internal/tmdb"
	"github.com/mfinch/screenings/internal/tui"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	// Handle version flag
	var showVersion bool
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.Parse()

	if showVersion {
		fmt.Printf("screenings %s\n", Version)
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger, err := log.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = log.NullLogger()
	}
	slog.SetDefault(logger)

	logger.Info("starting screenings", "version", Version)

	// Check if configured
	if !cfg.IsConfigured() {
		return runSetupFlow(cfg)
	}

	client := tmdb.NewClient(cfg.API.BaseURL, cfg.API.Key, cfg.API.Timeout, logger)

	// Restore a persisted session if one exists
	store, err := session.NewStore(config.DefaultDataPath())
	if err != nil {
		return fmt.Errorf("failed to open session store: %w", err)
	}
	defer store.Close()

	id, username, _ := store.Load()
	sess := session.New(id, username)

	// Create services
	sessionSvc := service.NewSessionService(client, sess, store, logger)
	if !sess.SignedIn() {
		if err := runSignInFlow(sessionSvc); err != nil {
			return err
		}
	}

	catalogSvc := service.NewCatalogService(client, sess, logger)
	ratingsSvc := service.NewRatingsService(client, sess, logger)
	searchSvc := service.NewSearchService(client, logger)
	gateway := rating.NewGateway(client, sess, logger)

	// Create TUI model
	model := tui.NewModel(catalogSvc, ratingsSvc, searchSvc, sessionSvc, gateway, sess, tui.Options{
		PrefetchRows:    cfg.UI.PrefetchRows,
		SuggestDebounce: cfg.UI.SuggestDebounce,
		ReviewsShown:    cfg.UI.ReviewsPerDetail,
	})

	// Run the TUI
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}

// runSetupFlow handles the initial setup when no API key is configured
func runSetupFlow(cfg *config.Config) error {
	fmt.Println()
	fmt.Println("Welcome to Screenings!")
	fmt.Println()
	fmt.Println("An API read access token is required. You can create one at")
	fmt.Println("https://www.themoviedb.org/settings/api")
	fmt.Println()

	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print("Enter your API read access token: ")
		input, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		key := strings.TrimSpace(input)
		if key == "" {
			fmt.Println("Token cannot be empty. Please try again.")
			continue
		}
		cfg.API.Key = key
		break
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Println()
	fmt.Println("✓ Configuration saved!")
	fmt.Println()
	fmt.Println("Run screenings again to start the application.")

	return nil
}

// runSignInFlow prompts for account credentials and establishes a session
func runSignInFlow(svc *service.SessionService) error {
	fmt.Println()
	fmt.Println("Sign in to your account to rate movies.")
	fmt.Println()

	reader := bufio.NewReader(os.Stdin)

	var username string
	for {
		fmt.Print("Username: ")
		input, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		username = strings.TrimSpace(input)
		if username != "" {
			break
		}
		fmt.Println("Username cannot be empty. Please try again.")
	}

	fmt.Print("Password: ")
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := svc.SignIn(ctx, username, string(password)); err != nil {
		return fmt.Errorf("sign-in failed: %w", err)
	}

	fmt.Println()
	fmt.Printf("✓ Signed in as %s\n", username)
	time.Sleep(500 * time.Millisecond)

	return nil
}
