package main

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/entrhq/pageshot/pkg/actions"
	"github.com/entrhq/pageshot/pkg/bootstrap"
	"github.com/entrhq/pageshot/pkg/browser"
	"github.com/entrhq/pageshot/pkg/demo"
)

// runFlags holds the command-line flags for the run command.
type runFlags struct {
	File       string
	Viewport   string
	ActionJSON string
	Demo       bool
	Head       bool
	NoSandbox  bool
}

func newRunCommand() *cobra.Command {
	flags := &runFlags{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Load an HTML document and execute a scripted action list",
		Long: `Run loads an HTML document (a file path or a data: URI) in a
mobile-emulated browser and executes the given JSON action list in order.
Without --file it loads a builtin demo page.

Action JSON (selector takes .class or #id):
  - wait:       {"action":"wait","ms":500}
  - click:      {"action":"click","selector":".btn"}
  - scroll:     {"action":"scroll","target":"#main-content","x":0,"y":800}
  - type:       {"action":"type","selector":"input[name=q]","text":"hello","clear":true}
  - screenshot: {"action":"screenshot","path":"shot.png","full_page":false}

Examples (against the builtin demo page):
  pageshot run -a '[{"action":"wait","ms":1000},{"action":"screenshot","path":"01_initial.png","full_page":false}]'
  pageshot run -a '[{"action":"click","selector":".hamburger"},{"action":"wait","ms":500},{"action":"screenshot"}]'
  pageshot run -a '[{"action":"scroll","target":".main-content","x":0,"y":800},{"action":"screenshot"}]'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runActions(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.File, "file", "f", "", "input HTML file path or data: URI (default: builtin demo page)")
	cmd.Flags().StringVarP(&flags.Viewport, "viewport", "v", "375x667", "viewport size as WIDTHxHEIGHT in pixels")
	cmd.Flags().StringVarP(&flags.ActionJSON, "actions", "a", "", "JSON array of actions to execute in order")
	cmd.Flags().BoolVar(&flags.Demo, "demo", false, "use the builtin demo page even when --file is given")
	cmd.Flags().BoolVar(&flags.Head, "head", false, "show the browser window instead of running headless")
	cmd.Flags().BoolVar(&flags.NoSandbox, "no-sandbox", false, "disable the chromium sandbox")

	return cmd
}

func runActions(cmd *cobra.Command, flags *runFlags) error {
	viewport, err := parseViewport(flags.Viewport)
	if err != nil {
		return err
	}

	list, err := parseActionFlag(flags.ActionJSON)
	if err != nil {
		return err
	}

	baseDir, err := bootstrap.ResolveBaseDir()
	if err != nil {
		return err
	}

	target, err := resolveTarget(cmd, flags)
	if err != nil {
		return err
	}

	fontCSS, err := browser.BuildFontCSS(baseDir)
	if err != nil {
		return err
	}
	if fontCSS == "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "[warn] font fonts/%s not found; falling back to default fonts\n", browser.FontFileName)
	}

	manager := browser.NewManager(envDirFor(baseDir))
	if err := manager.Start(); err != nil {
		return err
	}
	defer manager.Stop()

	session, err := manager.Launch(browser.LaunchOptions{
		Headless:  !flags.Head,
		NoSandbox: flags.NoSandbox,
		Viewport:  viewport,
		FontCSS:   fontCSS,
	})
	if err != nil {
		return err
	}
	defer session.Close()

	if err := session.Open(target); err != nil {
		return err
	}

	return actions.NewRunner(session).Run(cmd.Context(), list)
}

// resolveTarget picks the document the browser navigates to: the builtin
// demo page, a data: URI passed through untouched, or a file path made
// absolute against the caller's working directory.
func resolveTarget(cmd *cobra.Command, flags *runFlags) (string, error) {
	if flags.Demo || flags.File == "" {
		if flags.File == "" && !flags.Demo {
			fmt.Fprintln(cmd.ErrOrStderr(), "[info] no --file given; using the builtin demo page")
		}
		return demo.DataURI(demo.HTML()), nil
	}

	if strings.HasPrefix(flags.File, "data:") {
		return flags.File, nil
	}

	abs, err := filepath.Abs(flags.File)
	if err != nil {
		return "", fmt.Errorf("resolve input file %s: %w", flags.File, err)
	}
	// url.URL percent-encodes characters like # that would otherwise
	// truncate the path at navigation time.
	fileURL := url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}
	return fileURL.String(), nil
}

// parseViewport parses a WIDTHxHEIGHT flag value.
func parseViewport(value string) (browser.Viewport, error) {
	width, height, ok := strings.Cut(value, "x")
	if !ok {
		return browser.Viewport{}, fmt.Errorf("invalid viewport %q: expected WIDTHxHEIGHT", value)
	}

	w, err := strconv.Atoi(strings.TrimSpace(width))
	if err != nil {
		return browser.Viewport{}, fmt.Errorf("invalid viewport width %q", width)
	}
	h, err := strconv.Atoi(strings.TrimSpace(height))
	if err != nil {
		return browser.Viewport{}, fmt.Errorf("invalid viewport height %q", height)
	}
	if w <= 0 || h <= 0 {
		return browser.Viewport{}, fmt.Errorf("viewport dimensions must be positive, got %dx%d", w, h)
	}
	return browser.Viewport{Width: w, Height: h}, nil
}

// parseActionFlag decodes the --actions flag, falling back to the default
// list when the flag is absent.
func parseActionFlag(value string) ([]actions.Action, error) {
	if value == "" {
		return actions.Default(), nil
	}
	return actions.Parse([]byte(value))
}

// envDirFor locates the environment directory for a base directory,
// honoring a manifest env_dir override when a usable manifest is present.
// A missing or broken manifest only matters to setup; run falls back to
// the default location.
func envDirFor(baseDir string) string {
	manifest, err := bootstrap.LoadManifest(filepath.Join(baseDir, bootstrap.ManifestFileName))
	if err != nil {
		return filepath.Join(baseDir, bootstrap.DefaultEnvDir)
	}
	return filepath.Join(baseDir, manifest.EnvDir)
}
