package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
)

type helpCLI struct {
	File   string `arg:"" help:"Preset to convert."`
	Name   string `short:"n" help:"Chain name." env:"TEST_CHAIN_NAME"`
	Strict bool   `help:"Fail on unknown plugins."`
	Secret bool   `hidden:""`
	Mode   string `default:"output" help:"Preset section."`
}

func renderHelp(t *testing.T) string {
	t.Helper()

	var out bytes.Buffer
	var cli helpCLI
	parser, err := kong.New(&cli,
		kong.Name("ee2pw"),
		kong.Writers(&out, &out),
		kong.Help(StyledHelpPrinter(kong.HelpOptions{})),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		t.Fatalf("kong.New failed: %v", err)
	}

	_, _ = parser.Parse([]string{"--help"})
	return out.String()
}

func TestStyledHelpPrinter(t *testing.T) {
	help := renderHelp(t)

	for _, want := range []string{
		"ee2pw [flags] <file>",
		"<file>",
		"Preset to convert.",
		"--name=NAME",
		"-n, --name",
		"$TEST_CHAIN_NAME",
		"--strict",
		"default: output",
		"-h, --help",
	} {
		if !strings.Contains(help, want) {
			t.Errorf("help output missing %q:\n%s", want, help)
		}
	}

	if strings.Contains(help, "--secret") {
		t.Errorf("hidden flag shown in help:\n%s", help)
	}
}
