package main

import (
	"context"
	"fmt"
	"os"

	"nautto-be/internal/config"
	"nautto-be/internal/model"
	"nautto-be/internal/repository/contract"
	"nautto-be/internal/repository/unitofwork"
	"nautto-be/pkg/database"

	"github.com/fatih/color"
)

const usage = `usage: migrate <command>

commands:
  init      create the tables
  drop      drop the tables
  populate  insert sample users, widgets, layouts and sets`

func main() {
	if len(os.Args) != 2 {
		fmt.Println(usage)
		os.Exit(2)
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}

	db, err := database.NewGormDB(database.GormConfig{
		Driver:   cfg.Database.Driver,
		DSN:      cfg.Database.Connection,
		LogLevel: cfg.Database.LogLevel,
	})
	if err != nil {
		color.Red("Error: failed to connect to database: %v", err)
		os.Exit(1)
	}

	switch os.Args[1] {
	case "init":
		color.Cyan("Creating tables...")
		err = database.Migrate(db, model.All()...)
	case "drop":
		color.Yellow("Dropping tables...")
		err = database.Drop(db, model.All()...)
	case "populate":
		color.Cyan("Populating sample data...")
		policy, _ := contract.ParseDeletePolicy(cfg.Database.DeletePolicy)
		err = populate(context.Background(), unitofwork.NewRepositoryFactory(db, policy))
	default:
		fmt.Println(usage)
		os.Exit(2)
	}

	if err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
	color.Green("done")
}
