package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	pkg "github.com/lirennote/chronicle/pkg/internal"
	"github.com/fatih/color"

	"github.com/lirennote/chronicle/pkg/internal/cache"
	"github.com/lirennote/chronicle/pkg/internal/database"
	"github.com/lirennote/chronicle/pkg/internal/files"
	"github.com/lirennote/chronicle/pkg/internal/http"
	"github.com/lirennote/chronicle/pkg/internal/services"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
}

func main() {
	// Booting screen
	fmt.Println(color.YellowString("  ____ _                     _      _\n / ___| |__  _ __ ___  _ __ (_) ___| | ___\n| |   | '_ \\| '__/ _ \\| '_ \\| |/ __| |/ _ \\\n| |___| | | | | | (_) | | | | | (__| |  __/\n \\____|_| |_|_|  \\___/|_| |_|_|\\___|_|\\___|"))
	fmt.Printf("%s v%s\n", color.New(color.FgHiYellow).Add(color.Bold).Sprintf("Chronicle"), pkg.AppVersion)
	fmt.Printf("The community blogging service\n")
	color.HiBlack("=====================================================\n")

	// Configure settings
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.SetConfigName("settings")
	viper.SetConfigType("toml")
	viper.SetDefault("bind", "0.0.0.0:8445")
	viper.SetDefault("feed.posts_per_page", services.DefaultPostsPerPage)
	viper.SetDefault("cache.index_lifespan", 20)

	// Load settings
	if err := viper.ReadInConfig(); err != nil {
		log.Panic().Err(err).Msg("An error occurred when loading settings.")
	}

	// Prepare response cache
	if err := cache.NewStore(); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when setting up cache.")
	}

	// Connect to database
	if err := database.NewGorm(); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when connect to database.")
	} else if err := database.RunMigration(database.C); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when running database auto migration.")
	}

	// Connect to file storage
	if err := files.NewClient(); err != nil {
		log.Error().Err(err).Msg("An error occurred when connecting file storage. Image upload will be disabled.")
	}

	// Configure timed tasks
	quartz := cron.New(cron.WithLogger(cron.VerbosePrintfLogger(&log.Logger)))
	quartz.AddFunc("@every 60m", services.DoAutoDatabaseCleanup)
	quartz.Start()

	// Server
	go http.Listen(http.NewServer())

	// Messages
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	quartz.Stop()
}
