package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/eugenenazirov/demo/internal/application"
	"github.com/eugenenazirov/demo/internal/config"
	"github.com/eugenenazirov/demo/internal/logging"
)

func main() {
	parseArgs(os.Args[1:])

	if err := run(os.Stdout, os.Stderr); err != nil {
		panic(fmt.Sprintf("failed to start: %v", err))
	}
}

// newCLI declares the command line. Only kingpin's built-in --help and
// --version are recognised; every other token lands in the returned slice.
func newCLI() (*kingpin.Application, *[]string) {
	cli := kingpin.New(config.DefaultName, "Project scaffold that prints a greeting banner").
		Version(config.DefaultVersion).
		Interspersed(false)
	rest := cli.Arg("args", "Ignored.").Hidden().Strings()
	return cli, rest
}

// parseArgs handles --help and --version and returns the input that was
// discarded. Unknown flags are not an error: the whole input is discarded.
func parseArgs(args []string) []string {
	cli, rest := newCLI()
	if _, err := cli.Parse(args); err != nil {
		return args
	}
	return *rest
}

// run builds a fresh configuration and prints the banner to stdout. Failed
// banner writes are logged and do not change the exit status.
func run(stdout, stderr io.Writer) error {
	cfg := config.New()

	logger, err := logging.New(cfg.Debug(), stderr)
	if err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := application.New(cfg, logger, stdout).Run(); err != nil {
		logger.Error("failed to print banner", zap.Error(err))
	}
	return nil
}
