package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"cafe-console/config"
	"cafe-console/console"
	"cafe-console/db"
	"cafe-console/logging"

	"go.uber.org/zap"
)

func main() {
	args := os.Args[1:]
	migrateOnly := false
	if len(args) > 0 && args[0] == "migrate" {
		migrateOnly = true
		args = args[1:]
	}
	if len(args) != 3 {
		fmt.Fprintf(os.Stderr, "usage: %s [migrate] <dbname> <port> <user>\n", filepath.Base(os.Args[0]))
		os.Exit(2)
	}

	cfg, err := config.Load(args[0], args[1], args[2])
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logging:", err)
		os.Exit(1)
	}
	defer logging.Sync(log)

	if migrateOnly {
		if err := applyMigrations(cfg.DB, log); err != nil {
			log.Error("migrate", zap.Error(err))
			os.Exit(1)
		}
		return
	}

	greeting()

	fmt.Print("Connecting to database...")
	if err := db.Init(cfg.DB); err != nil {
		fmt.Println()
		log.Error("unable to connect to database", zap.Error(err))
		os.Exit(1)
	}
	defer db.Close()
	fmt.Println("Done")
	log.Info("connected",
		zap.String("host", cfg.DB.Host),
		zap.Int("port", cfg.DB.Port),
		zap.String("database", cfg.DB.Database),
	)

	if cfg.AutoMigrate {
		if err := applyMigrations(cfg.DB, log); err != nil {
			log.Error("migrate", zap.Error(err))
			os.Exit(1)
		}
	}

	sess := console.New(os.Stdin, os.Stdout, console.NewStore(), log)
	sess.Run(context.Background())

	fmt.Print("Disconnecting from database...")
	db.Close()
	fmt.Println("Done")
	fmt.Println()
	fmt.Println("Bye !")
}

func greeting() {
	fmt.Println()
	fmt.Println("*******************************************************")
	fmt.Println("                   Cafe User Interface                 ")
	fmt.Println("*******************************************************")
	fmt.Println()
}
