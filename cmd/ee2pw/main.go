package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/linuxmatters/ee2pw/internal/cli"
	"github.com/linuxmatters/ee2pw/internal/config"
	"github.com/linuxmatters/ee2pw/internal/easyeffects"
	"github.com/linuxmatters/ee2pw/internal/logging"
	"github.com/linuxmatters/ee2pw/internal/pipewire"
	"github.com/linuxmatters/ee2pw/internal/ui"
)

var (
	version = "0.0.1"
)

// CLI defines the command-line interface
type CLI struct {
	Version           bool            `short:"v" help:"Show version information"`
	Config            kong.ConfigFlag `short:"c" help:"Path to YAML config file (optional)"`
	FilterChainName   string          `short:"n" env:"EE2PW_FILTER_CHAIN_NAME" help:"Filter chain name (default: preset file name)"`
	SmartFilterTarget string          `short:"t" env:"EE2PW_SMART_FILTER_TARGET" help:"Node the chain attaches to as a smart filter"`
	Output            string          `short:"o" type:"path" help:"Output file (default: stdout)"`
	Section           string          `short:"s" enum:"output,input" default:"output" help:"Preset section to convert"`
	Strict            bool            `help:"Fail on plugins that have no mapping"`
	Logs              bool            `help:"Save a debug log and conversion report"`
	Inspect           bool            `help:"Browse the generated graph"`
	File              string          `arg:"" name:"file" help:"EasyEffects preset to convert" type:"existingfile" optional:""`
}

func newParser(cliArgs *CLI, options ...kong.Option) (*kong.Kong, error) {
	options = append([]kong.Option{
		kong.Name("ee2pw"),
		kong.Description("EasyEffects preset to PipeWire filter-chain converter"),
		kong.UsageOnError(),
		kong.Vars{
			"version": version,
		},
		kong.Configuration(config.YAML, config.DefaultPaths...),
		kong.Help(cli.StyledHelpPrinter(kong.HelpOptions{Compact: true})),
	}, options...)
	return kong.New(cliArgs, options...)
}

func main() {
	cliArgs := &CLI{}
	parser, err := newParser(cliArgs)
	if err != nil {
		cli.PrintError(err.Error())
		os.Exit(1)
	}
	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	// Handle version flag
	if cliArgs.Version {
		cli.PrintVersion(version)
		os.Exit(0)
	}

	// Validate input
	if cliArgs.File == "" {
		cli.PrintError("No input file specified")
		_ = ctx.PrintUsage(false)
		os.Exit(1)
	}

	if err := run(cliArgs, os.Stdout, os.Stderr); err != nil {
		cli.PrintError(err.Error())
		os.Exit(1)
	}
}

// run converts one preset. Nothing is written unless every stage succeeds.
func run(cliArgs *CLI, stdout, stderr io.Writer) error {
	startTime := time.Now()

	// Debug log only with --logs
	var debugLog *logging.DebugLog
	if cliArgs.Logs {
		debugLog = logging.OpenDebugLog(logging.DebugLogName)
		defer debugLog.Close()
	}

	chainName := cliArgs.FilterChainName
	if chainName == "" {
		chainName = presetName(cliArgs.File)
	}
	debugLog.Printf("[MAIN] Converting %s (%s) as %q", cliArgs.File, cliArgs.Section, chainName)

	preset, err := easyeffects.Load(cliArgs.File, cliArgs.Section)
	if err != nil {
		return err
	}
	debugLog.Printf("[MAIN] Loaded %d plugin(s): %s", len(preset.Order), strings.Join(preset.NodeNames(), ", "))

	var unknown []string
	doc, err := pipewire.Build(preset, pipewire.Options{
		ChainName:   chainName,
		SmartTarget: cliArgs.SmartFilterTarget,
		Strict:      cliArgs.Strict,
		OnUnknown: func(e easyeffects.Entry) {
			unknown = append(unknown, e.Key)
			debugLog.Printf("[MAIN] No mapping for %s", e.Key)
			cli.PrintWarning(fmt.Sprintf("no mapping for %s, node %s left empty", e.Key, e.NodeName()))
		},
	})
	if err != nil {
		return err
	}

	data, err := pipewire.Encode(doc)
	if err != nil {
		return err
	}
	if err := pipewire.Write(cliArgs.Output, data, stdout); err != nil {
		return err
	}
	debugLog.Printf("[MAIN] Wrote %d bytes to %s", len(data), outputName(cliArgs.Output))

	if cliArgs.Output != "" && cliArgs.Output != "-" {
		cli.PrintSummary(stderr, "Wrote", cliArgs.Output)
	}

	// Generate conversion report if --logs flag is set
	if cliArgs.Logs {
		reportPath, err := logging.GenerateReport(logging.ReportData{
			InputPath:   cliArgs.File,
			OutputPath:  cliArgs.Output,
			Section:     preset.Section,
			ChainName:   chainName,
			SmartTarget: cliArgs.SmartFilterTarget,
			StartTime:   startTime,
			EndTime:     time.Now(),
			Document:    doc,
			Unknown:     unknown,
		})
		if err != nil {
			debugLog.Printf("[MAIN] Failed to generate report: %v", err)
		} else {
			cli.PrintSummary(stderr, "Report", reportPath)
		}
	}

	if cliArgs.Inspect {
		if err := ui.Inspect(chainName, doc, debugLog); err != nil {
			return fmt.Errorf("UI error: %w", err)
		}
	}

	return nil
}

// presetName is the preset file name without directory or extension.
func presetName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func outputName(path string) string {
	if path == "" || path == "-" {
		return "stdout"
	}
	return path
}
