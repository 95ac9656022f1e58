package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/medium2dev"
	"github.com/fwojciec/medium2dev/fs"
	m2dgoquery "github.com/fwojciec/medium2dev/goquery"
	"github.com/fwojciec/medium2dev/htmltomarkdown"
	m2dhttp "github.com/fwojciec/medium2dev/http"
	"github.com/fwojciec/medium2dev/markdown"
	m2dslog "github.com/fwojciec/medium2dev/slog"
	"github.com/google/uuid"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	URL       string `arg:"" required:"" help:"URL of the Medium post to convert"`
	OutputDir string `short:"o" default:"." help:"Directory to save the output markdown file"`
	ImageDir  string `short:"i" help:"Directory to save downloaded images (default: <output-dir>/images)"`
	Publish   bool   `short:"p" help:"Publish to DEV.to as a draft"`
	APIKey    string `short:"k" env:"DEVTO_API_KEY" help:"DEV.to API key (or set DEVTO_API_KEY)"`
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("medium2dev"),
		kong.Description("Convert Medium posts to DEV.to markdown format and optionally publish as a draft"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	_, err = parser.Parse(args)
	if err != nil {
		return err
	}

	// The credential check runs before any network activity.
	if cli.Publish && cli.APIKey == "" {
		return medium2dev.Errorf(medium2dev.EINVALID, "publishing requested but no DEV.to API key provided: set DEVTO_API_KEY or use --api-key")
	}

	logger := slog.New(slog.NewTextHandler(stderr, nil)).With("run", uuid.NewString())

	imageDir := cli.ImageDir
	if imageDir == "" {
		imageDir = filepath.Join(cli.OutputDir, "images")
	}

	conv := &Converter{
		URL:       cli.URL,
		Fetcher:   m2dslog.NewLoggingFetcher(m2dhttp.NewFetcher(), logger),
		Extractor: m2dgoquery.NewExtractor(),
		Localizer: m2dgoquery.NewLocalizer(m2dhttp.NewDownloader(), imageDir, logger),
		Renderer:  htmltomarkdown.NewRenderer(),
		Cleaner:   markdown.NewCleaner(markdown.WithImagePrefix(filepath.Base(imageDir) + "/")),
		Writer:    fs.NewWriter(cli.OutputDir),
		Logger:    logger,
	}

	result, err := conv.Convert(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Conversion successful! Output saved to: %s\n", result.Path)
	fmt.Fprintf(stdout, "Images saved to: %s\n", imageDir)

	if !cli.Publish {
		return nil
	}

	publisher := m2dslog.NewLoggingPublisher(m2dhttp.NewPublisher(cli.APIKey), logger)
	if err := publisher.Publish(ctx, result.Title, result.Content); err != nil {
		// A failed publish is reported but does not fail the conversion.
		fmt.Fprintf(stdout, "Failed to publish to DEV.to: %v\n", err)
		return nil
	}

	fmt.Fprintln(stdout, "Successfully published as draft to DEV.to!")
	fmt.Fprintln(stdout, "\nWord Count Comparison:")
	fmt.Fprintln(stdout, "| Platform | Word Count |")
	fmt.Fprintln(stdout, "|----------|------------|")
	fmt.Fprintf(stdout, "| Medium   | %d |\n", result.SourceWordCount)
	fmt.Fprintf(stdout, "| DEV.to   | %d |\n", markdown.BodyWordCount(result.Content))

	return nil
}
