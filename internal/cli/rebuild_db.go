package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/mrlokans/catalog/internal/config"
	"github.com/mrlokans/catalog/internal/database"
	"github.com/mrlokans/catalog/internal/logging"
)

// RebuildDBCommand drops and recreates the catalog database and tables.
type RebuildDBCommand struct {
	ConfigPath string
	Yes        bool
}

func NewRebuildDBCommand() *RebuildDBCommand {
	return &RebuildDBCommand{}
}

func (cmd *RebuildDBCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("rebuild-db", flag.ContinueOnError)

	fs.StringVar(&cmd.ConfigPath, "config", "", "Path to a KEY = value configuration file")
	fs.BoolVar(&cmd.Yes, "yes", false, "Confirm that all catalog data will be deleted (required)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s rebuild-db -yes [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Drop the catalog database, create it again and create empty tables.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if !cmd.Yes {
		fs.Usage()
		return fmt.Errorf("refusing to delete data without -yes")
	}

	return nil
}

func (cmd *RebuildDBCommand) Run() error {
	cfg, err := config.NewConfig(cmd.ConfigPath)
	if err != nil {
		return err
	}
	logging.Init(cfg.Logging.Level, cfg.Logging.Format)
	cfg.Database.Rebuild = true

	db, err := database.NewDatabase(cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	log.Info().Str("database", cfg.Database.Name).Msg("Catalog database rebuilt")
	return nil
}
