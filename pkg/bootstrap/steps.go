// Package bootstrap provisions the local pageshot environment: a Playwright
// driver and browser install isolated under the binary's own directory, and a
// shell alias pointing the user at the run command.
//
// The whole procedure is modeled as a fail-fast pipeline of named steps.
// Completed steps are never rolled back; re-running the pipeline reuses the
// environment directory and rewrites (never duplicates) the alias line.
package bootstrap

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/playwright-community/playwright-go"

	"github.com/entrhq/pageshot/pkg/logging"
	"github.com/entrhq/pageshot/pkg/shellrc"
)

// Options configures a Bootstrapper. Zero values resolve to production
// defaults: paths derived from the running executable and ~/.bashrc.
type Options struct {
	// BaseDir is the directory holding the manifest and environment.
	// Empty means the running executable's directory.
	BaseDir string

	// Executable is the absolute binary path embedded in the alias.
	// Empty means the running executable.
	Executable string

	// RCFile overrides both the manifest and the ~/.bashrc default.
	RCFile string

	// Stdout receives user-facing output such as the activation notice.
	// Nil means os.Stdout.
	Stdout io.Writer

	// Logger receives step diagnostics. Nil means a new component logger.
	Logger *logging.Logger
}

// Bootstrapper runs the environment setup pipeline.
type Bootstrapper struct {
	opts Options
	log  *logging.Logger

	// install is playwright.Install in production; tests stub it.
	install func(...*playwright.RunOptions) error

	// resolved as the pipeline advances
	baseDir    string
	executable string
	manifest   *Manifest
	envDir     string
	envReused  bool
	rcPath     string
	aliasWas   bool
}

// New creates a Bootstrapper with the given options.
func New(opts Options) *Bootstrapper {
	log := opts.Logger
	if log == nil {
		log, _ = logging.NewLogger("bootstrap") // fallback logger on error
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	return &Bootstrapper{
		opts:    opts,
		log:     log,
		install: playwright.Install,
	}
}

// Steps returns the pipeline stages in execution order.
func (b *Bootstrapper) Steps() []Step {
	return []Step{
		{Name: "resolve base directory", Run: b.resolveBaseDir},
		{Name: "load manifest", Run: b.loadManifest},
		{Name: "prepare environment", Run: b.prepareEnvironment},
		{Name: "install driver", Run: b.installDriver},
		{Name: "install browsers", Run: b.installBrowsers},
		{Name: "register alias", Run: b.registerAlias},
		{Name: "activation notice", Run: b.activationNotice},
	}
}

// Run executes the full bootstrap pipeline, reporting each step's outcome
// through onResult when non-nil.
func (b *Bootstrapper) Run(ctx context.Context, onResult func(StepResult)) error {
	pipeline := NewPipeline(b.Steps())
	pipeline.OnResult = onResult
	return pipeline.Run(ctx)
}

// EnvDir returns the environment directory, valid once the pipeline has
// passed the prepare step.
func (b *Bootstrapper) EnvDir() string {
	return b.envDir
}

func (b *Bootstrapper) resolveBaseDir(context.Context) error {
	if b.opts.BaseDir != "" {
		abs, err := filepath.Abs(b.opts.BaseDir)
		if err != nil {
			return fmt.Errorf("resolve base directory %s: %w", b.opts.BaseDir, err)
		}
		b.baseDir = abs
	} else {
		dir, err := ResolveBaseDir()
		if err != nil {
			return err
		}
		b.baseDir = dir
	}

	if b.opts.Executable != "" {
		abs, err := filepath.Abs(b.opts.Executable)
		if err != nil {
			return fmt.Errorf("resolve executable %s: %w", b.opts.Executable, err)
		}
		b.executable = abs
	} else {
		exe, err := ResolveExecutable()
		if err != nil {
			return err
		}
		b.executable = exe
	}

	b.log.Infof("base directory: %s", b.baseDir)
	return nil
}

func (b *Bootstrapper) loadManifest(context.Context) error {
	path := filepath.Join(b.baseDir, ManifestFileName)
	manifest, err := LoadManifest(path)
	if err != nil {
		return err
	}
	b.manifest = manifest
	b.log.Infof("manifest %s: browsers=%v alias=%s", path, manifest.Browsers, manifest.Alias)
	return nil
}

func (b *Bootstrapper) prepareEnvironment(context.Context) error {
	b.envDir = filepath.Join(b.baseDir, b.manifest.EnvDir)

	info, err := os.Stat(b.envDir)
	switch {
	case err == nil && info.IsDir():
		// Existing environment is reused, never recreated.
		b.envReused = true
		b.log.Infof("reusing environment directory %s", b.envDir)
		return nil
	case err == nil:
		return fmt.Errorf("environment path %s exists and is not a directory", b.envDir)
	case !os.IsNotExist(err):
		return fmt.Errorf("stat environment directory %s: %w", b.envDir, err)
	}

	if err := os.MkdirAll(b.envDir, 0o755); err != nil {
		return fmt.Errorf("create environment directory %s: %w", b.envDir, err)
	}
	b.log.Infof("created environment directory %s", b.envDir)
	return nil
}

// runOptions scopes every driver invocation to the environment directory so
// nothing is installed outside it.
func (b *Bootstrapper) runOptions(browsers []string, skipBrowsers bool) *playwright.RunOptions {
	return &playwright.RunOptions{
		DriverDirectory:     b.envDir,
		Browsers:            browsers,
		SkipInstallBrowsers: skipBrowsers,
		Verbose:             false,
		Stdout:              b.log.Writer(),
		Stderr:              b.log.Writer(),
	}
}

func (b *Bootstrapper) installDriver(context.Context) error {
	if err := b.install(b.runOptions(nil, true)); err != nil {
		return fmt.Errorf("install playwright driver: %w", err)
	}
	b.log.Infof("driver installed under %s", b.envDir)
	return nil
}

func (b *Bootstrapper) installBrowsers(context.Context) error {
	if err := b.install(b.runOptions(b.manifest.Browsers, false)); err != nil {
		return fmt.Errorf("install browsers %v: %w", b.manifest.Browsers, err)
	}
	b.log.Infof("browsers installed: %v", b.manifest.Browsers)
	return nil
}

func (b *Bootstrapper) registerAlias(context.Context) error {
	rcPath := b.opts.RCFile
	if rcPath == "" {
		rcPath = b.manifest.RCFile
	}

	store, err := shellrc.NewStore(rcPath)
	if err != nil {
		return err
	}
	b.rcPath = store.Path()

	command := fmt.Sprintf("%s run", b.executable)
	updated, err := store.Set(b.manifest.Alias, command)
	if err != nil {
		return err
	}
	b.aliasWas = updated

	if updated {
		b.log.Infof("updated alias %s in %s", b.manifest.Alias, store.Path())
	} else {
		b.log.Infof("added alias %s to %s", b.manifest.Alias, store.Path())
	}
	return nil
}

// activationNotice tells the user how to load the alias into the current
// shell. A child process cannot modify its parent shell's alias table, so
// printing the source command is the whole contract of this step.
func (b *Bootstrapper) activationNotice(context.Context) error {
	verb := "added to"
	if b.aliasWas {
		verb = "updated in"
	}
	fmt.Fprintf(b.opts.Stdout, "\nAlias %q %s %s.\n", b.manifest.Alias, verb, b.rcPath)
	fmt.Fprintf(b.opts.Stdout, "Load it into the current shell with:\n\n    source %s\n", b.rcPath)
	return nil
}
