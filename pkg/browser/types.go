package browser

// Engine identifies a Playwright browser engine.
type Engine string

const (
	EngineChromium Engine = "chromium"
	EngineFirefox  Engine = "firefox"
)

// Viewport represents the emulated viewport dimensions.
type Viewport struct {
	Width  int
	Height int
}

// LaunchOptions configures a browser session launch.
type LaunchOptions struct {
	// Headless controls whether the browser runs without a visible window.
	Headless bool

	// NoSandbox adds the chromium no-sandbox flags. Firefox ignores it.
	NoSandbox bool

	// Viewport sets the emulated viewport. Zero means the mobile default.
	Viewport Viewport

	// FontCSS, when non-empty, is injected into every page as an init
	// script so the first render already uses the bundled font.
	FontCSS string
}

// Mobile emulation defaults. The context always emulates a phone so that
// responsive layouts render their mobile breakpoints.
const (
	DefaultViewportWidth  = 375
	DefaultViewportHeight = 667
	DefaultDeviceScale    = 3.0

	chromiumUserAgent = "Mozilla/5.0 (Linux; Android 14; Pixel 7 Pro) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) " +
		"Chrome/118.0.0.0 Mobile Safari/537.36"
	firefoxUserAgent = "Mozilla/5.0 (Linux; Android 14; Pixel 7 Pro; rv:118.0) " +
		"Gecko/20100101 Firefox/118.0"
)

// chromium launch flags keeping the browser usable inside containers
var chromiumArgs = []string{
	"--single-process",
	"--no-zygote",
	"--disable-gpu",
}

var chromiumNoSandboxArgs = []string{
	"--no-sandbox",
	"--disable-setuid-sandbox",
}
