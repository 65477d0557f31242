package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	"github.com/KirkDiggler/lanstats/internal/handlers/discord"
	sessionRepo "github.com/KirkDiggler/lanstats/internal/repositories/session"
	subjectRepo "github.com/KirkDiggler/lanstats/internal/repositories/subject"
	userRepo "github.com/KirkDiggler/lanstats/internal/repositories/user"
	statsService "github.com/KirkDiggler/lanstats/internal/services/stats"
	trackerService "github.com/KirkDiggler/lanstats/internal/services/tracker"
)

func main() {
	// Load .env if present; real environments set variables directly
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	dbPath := getEnv("DATABASE_PATH", "stats.db")

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		log.Fatalf("Failed to open database %s: %v", dbPath, err)
	}
	defer db.Close()

	// SQLite allows one writer at a time; a single connection avoids
	// SQLITE_BUSY under concurrent reads from command handlers.
	db.SetMaxOpenConns(1)

	// Initialize repositories
	users, err := userRepo.NewSQLite(&userRepo.Config{DB: db})
	if err != nil {
		log.Fatalf("Failed to create user repository: %v", err)
	}

	subjects, err := subjectRepo.NewSQLite(&subjectRepo.Config{DB: db})
	if err != nil {
		log.Fatalf("Failed to create subject repository: %v", err)
	}

	sessions, err := sessionRepo.NewSQLite(&sessionRepo.Config{DB: db})
	if err != nil {
		log.Fatalf("Failed to create session repository: %v", err)
	}

	// Initialize tracker service
	trackerSvc, err := trackerService.New(&trackerService.Config{
		UserRepo:           users,
		SubjectRepo:        subjects,
		SessionRepo:        sessions,
		RecoveryWindow:     time.Duration(getEnvInt("RECOVERY_WINDOW_MINUTES", 5)) * time.Minute,
		MaxSessionDuration: time.Duration(getEnvInt("MAX_SESSION_HOURS", 12)) * time.Hour,
	})
	if err != nil {
		log.Fatalf("Failed to create tracker service: %v", err)
	}

	// Initialize stats service
	statsSvc, err := statsService.New(&statsService.Config{
		UserRepo:    users,
		SessionRepo: sessions,
	})
	if err != nil {
		log.Fatalf("Failed to create stats service: %v", err)
	}

	// Get Discord token from environment
	discordToken := getEnv("DISCORD_TOKEN", "")
	if discordToken == "" {
		log.Fatal("DISCORD_TOKEN environment variable is required")
	}

	// Initialize Discord bot
	bot, err := discord.New(&discord.Config{
		Token:          discordToken,
		ApplicationID:  getEnv("APPLICATION_ID", ""),
		GuildID:        getEnv("GUILD_ID", ""),
		TrackerService: trackerSvc,
		StatsService:   statsSvc,
	})
	if err != nil {
		log.Fatalf("Failed to create Discord bot: %v", err)
	}

	// Start the bot; reconciliation runs before live processing begins
	if err := bot.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start Discord bot: %v", err)
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	// Shutdown the bot and drain open sessions
	if err := bot.Stop(); err != nil {
		log.Printf("Error stopping bot: %v", err)
	}

	log.Println("Bot has been shut down")
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt gets an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Invalid value %q for %s, using %d", value, key, defaultValue)
		return defaultValue
	}
	return parsed
}
