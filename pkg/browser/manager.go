// Package browser drives a Playwright browser out of the locally
// provisioned environment directory.
//
// The tool targets containerized and desktop Linux alike, so launching
// prefers chromium with conservative flags and falls back to firefox when
// chromium cannot start (sandbox restrictions being the usual cause). The
// resulting session always emulates a mobile device.
package browser

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/playwright-community/playwright-go"

	"github.com/entrhq/pageshot/pkg/logging"
)

// Manager owns the Playwright driver process and the single session the
// tool runs against it.
type Manager struct {
	pw     *playwright.Playwright
	envDir string
	log    *logging.Logger
}

// NewManager creates a manager whose driver runs out of envDir. An empty
// envDir uses the playwright-go default location.
func NewManager(envDir string) *Manager {
	log, _ := logging.NewLogger("browser") // fallback logger on error
	return &Manager{
		envDir: envDir,
		log:    log,
	}
}

// Start launches the Playwright driver. The driver and browsers must have
// been installed by the bootstrap beforehand; Start does not install.
func (m *Manager) Start() error {
	if m.pw != nil {
		return nil
	}

	opts := &playwright.RunOptions{
		DriverDirectory:     m.envDir,
		SkipInstallBrowsers: true,
		Verbose:             false,
		Stdout:              m.log.Writer(),
		Stderr:              m.log.Writer(),
	}

	pw, err := playwright.Run(opts)
	if err != nil {
		return fmt.Errorf("browser: failed to start playwright driver: %w", err)
	}
	m.pw = pw
	return nil
}

// Launch starts a browser session, preferring chromium and falling back to
// firefox when the chromium launch fails.
func (m *Manager) Launch(opts LaunchOptions) (*Session, error) {
	if m.pw == nil {
		return nil, fmt.Errorf("browser: manager not started")
	}

	if opts.Viewport.Width == 0 || opts.Viewport.Height == 0 {
		opts.Viewport = Viewport{Width: DefaultViewportWidth, Height: DefaultViewportHeight}
	}

	var launchErrors []string
	for _, engine := range []Engine{EngineChromium, EngineFirefox} {
		browser, err := m.launchEngine(engine, opts)
		if err != nil {
			m.log.Warnf("%s launch failed: %v", engine, err)
			launchErrors = append(launchErrors, fmt.Sprintf("%s: %v", engine, err))
			continue
		}

		session, err := m.newSession(engine, browser, opts)
		if err != nil {
			_ = browser.Close()
			return nil, err
		}
		m.log.Infof("launched %s (headless=%t viewport=%dx%d)",
			engine, opts.Headless, opts.Viewport.Width, opts.Viewport.Height)
		return session, nil
	}

	return nil, fmt.Errorf("browser: all engines failed to launch: %s", strings.Join(launchErrors, "; "))
}

func (m *Manager) launchEngine(engine Engine, opts LaunchOptions) (playwright.Browser, error) {
	switch engine {
	case EngineChromium:
		args := append([]string(nil), chromiumArgs...)
		if opts.NoSandbox {
			args = append(args, chromiumNoSandboxArgs...)
		}
		return m.pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
			Headless:        playwright.Bool(opts.Headless),
			ChromiumSandbox: playwright.Bool(false),
			Args:            args,
		})
	case EngineFirefox:
		return m.pw.Firefox.Launch(playwright.BrowserTypeLaunchOptions{
			Headless: playwright.Bool(opts.Headless),
		})
	default:
		return nil, fmt.Errorf("browser: unknown engine %q", engine)
	}
}

func (m *Manager) newSession(engine Engine, browser playwright.Browser, opts LaunchOptions) (*Session, error) {
	contextOpts := playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{
			Width:  opts.Viewport.Width,
			Height: opts.Viewport.Height,
		},
		IsMobile: playwright.Bool(true),
	}

	// Firefox does not support device scale emulation
	if engine == EngineChromium {
		contextOpts.DeviceScaleFactor = playwright.Float(DefaultDeviceScale)
		contextOpts.UserAgent = playwright.String(chromiumUserAgent)
	} else {
		contextOpts.UserAgent = playwright.String(firefoxUserAgent)
	}

	context, err := browser.NewContext(contextOpts)
	if err != nil {
		return nil, fmt.Errorf("browser: failed to create context: %w", err)
	}

	// Inject the font stylesheet before any document script runs so the
	// initial render already uses it
	if opts.FontCSS != "" {
		if err := context.AddInitScript(playwright.Script{
			Content: playwright.String(fontInitScript(opts.FontCSS)),
		}); err != nil {
			_ = context.Close()
			return nil, fmt.Errorf("browser: failed to add font init script: %w", err)
		}
	}

	page, err := context.NewPage()
	if err != nil {
		_ = context.Close()
		return nil, fmt.Errorf("browser: failed to create page: %w", err)
	}

	return &Session{
		Engine:  engine,
		Browser: browser,
		Context: context,
		Page:    page,
		FontCSS: opts.FontCSS,
		log:     m.log,
	}, nil
}

// Stop shuts down the Playwright driver.
func (m *Manager) Stop() error {
	if m.pw == nil {
		return nil
	}
	if err := m.pw.Stop(); err != nil {
		return fmt.Errorf("browser: failed to stop playwright: %w", err)
	}
	m.pw = nil
	return nil
}

// fontInitScript wraps the stylesheet in a script that appends it to the
// document as early as possible.
func fontInitScript(css string) string {
	encoded, _ := json.Marshal(css)
	return fmt.Sprintf(`(() => {
  const style = document.createElement('style');
  style.textContent = %s;
  document.documentElement.appendChild(style);
})();`, encoded)
}
