// cmd/inkblock/main.go
package main

import (
	"fmt"
	"io"
	stlog "log"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/inkblock/internal/app"
	"github.com/bethropolis/inkblock/internal/block"
	"github.com/bethropolis/inkblock/internal/config"
	"github.com/bethropolis/inkblock/internal/logger"
	"github.com/bethropolis/inkblock/internal/style"
)

var version = "dev"

// exportDoc is the TOML document written by -export.
type exportDoc struct {
	ID         string            `toml:"id"`
	Text       string            `toml:"text"`
	Attributes []style.Attribute `toml:"attributes"`
}

func main() {
	// --- Argument & Flag Parsing ---
	flags := &config.Flags{}
	flags.ParseFlags()

	if *flags.Version {
		fmt.Printf("%s %s\n", config.AppName, version)
		os.Exit(0)
	}

	cfg, err := config.LoadConfig(*flags.ConfigFilePath, flags)
	if err != nil {
		stlog.Printf("Warning: %v", err)
	}

	// --- Logger Initialization ---
	logger.SetFilterDebug(*flags.DebugLog)
	var logOutput io.Writer = io.Discard
	switch cfg.Logger.LogFilePath {
	case "-":
		logOutput = os.Stderr
	case "":
	default:
		logFile, err := os.OpenFile(cfg.Logger.LogFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			stlog.Fatalf("Failed to open log file '%s': %v", cfg.Logger.LogFilePath, err)
		}
		defer logFile.Close()
		logOutput = logFile
	}
	logger.Init(cfg.Logger, logOutput)

	logger.Infof("Starting %s %s...", config.AppName, version)
	logger.Debugf("Block id %q, %d initial characters", cfg.Editor.BlockID, len([]rune(cfg.Editor.InitialText)))

	// --- Create and Run App ---
	inkApp, err := app.NewApp(cfg)
	if err != nil {
		logger.Errorf("Error initializing application: %v", err)
		os.Exit(1)
	}

	if err := inkApp.Run(); err != nil {
		logger.Errorf("Application exited with error: %v", err)
		os.Exit(1)
	}

	if *flags.Export {
		if err := export(os.Stdout, inkApp.Editor().Block()); err != nil {
			logger.Errorf("Export failed: %v", err)
			os.Exit(1)
		}
	}

	logger.Infof("%s finished.", config.AppName)
}

// export writes the final block and its style attributes as TOML.
func export(w io.Writer, b block.Block) error {
	doc := exportDoc{
		ID:         b.ID(),
		Text:       b.Text(),
		Attributes: block.Attributes(b),
	}
	return toml.NewEncoder(w).Encode(doc)
}
