package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/mrlokans/catalog/internal/config"
	"github.com/mrlokans/catalog/internal/entrypoint"
	"github.com/mrlokans/catalog/internal/logging"
)

// ServeCommand runs the HTTP server.
type ServeCommand struct {
	ConfigPath string
	Rebuild    bool
	Version    string
}

func NewServeCommand(version string) *ServeCommand {
	return &ServeCommand{Version: version}
}

func (cmd *ServeCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)

	fs.StringVar(&cmd.ConfigPath, "config", "", "Path to a KEY = value configuration file")
	fs.BoolVar(&cmd.Rebuild, "rebuild", false, "Drop and recreate the database before serving")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s serve [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s serve -config ./server.conf\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s serve -config ./server.conf -rebuild\n", os.Args[0])
	}

	return fs.Parse(args)
}

// Config loads the configuration and applies flag overrides.
func (cmd *ServeCommand) Config() (*config.Config, error) {
	cfg, err := config.NewConfig(cmd.ConfigPath)
	if err != nil {
		return nil, err
	}
	if cmd.Rebuild {
		cfg.Database.Rebuild = true
	}
	return cfg, nil
}

func (cmd *ServeCommand) Run() error {
	cfg, err := cmd.Config()
	if err != nil {
		return err
	}

	logging.Init(cfg.Logging.Level, cfg.Logging.Format)
	entrypoint.Run(cfg, cmd.Version)
	return nil
}
