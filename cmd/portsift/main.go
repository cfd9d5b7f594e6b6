package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/portsift"
	"github.com/fwojciec/portsift/fs"
	sifthttp "github.com/fwojciec/portsift/http"
	"github.com/fwojciec/portsift/sqlite"
	siftslog "github.com/fwojciec/portsift/slog"
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
type Main struct {
	// Archive database path. Set before calling Run().
	DBPath string

	// SQLite database used by the scan archive.
	DB *sqlite.DB

	// Archive service, exposed for end-to-end testing.
	Archive portsift.ArchiveService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("portsift"),
		kong.Description("Mine a web-archive index for candidate URLs and probe them for live login portals."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'portsift --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Open the scan archive
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set PORTSIFT_DB to use a different archive path\n")
		return fmt.Errorf("failed to open archive at %q: %w", m.DBPath, err)
	}
	defer m.Close()
	m.Archive = sqlite.NewArchiveService(m.DB)

	deps.Archive = m.Archive
	deps.Store = fs.NewStore(cli.DataDir)
	deps.Progress = fs.OpenProgressFile(filepath.Join(cli.DataDir, fs.DefaultProgressFile))
	deps.Index = siftslog.NewLoggingIndexClient(newIndexClient(cli), deps.Logger)

	return kongCtx.Run(deps)
}

func newIndexClient(cli *CLI) portsift.IndexClient {
	var opts []sifthttp.IndexOption
	if cli.IndexURL != "" {
		opts = append(opts, sifthttp.WithIndexURL(cli.IndexURL))
	}
	return sifthttp.NewIndexClient(opts...)
}

func defaultDBPath() string {
	if path := os.Getenv("PORTSIFT_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "portsift.db"
	}
	dir := filepath.Join(home, ".portsift")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "portsift.db")
}
