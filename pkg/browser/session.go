package browser

import (
	"encoding/json"
	"fmt"

	"github.com/playwright-community/playwright-go"

	"github.com/entrhq/pageshot/pkg/logging"
)

const fontReadyTimeout = 5000.0 // milliseconds

// Session is a live browser page plus the resources it hangs off.
type Session struct {
	Engine  Engine
	Browser playwright.Browser
	Context playwright.BrowserContext
	Page    playwright.Page
	FontCSS string

	log *logging.Logger
}

// Open navigates to the target (a file://, http(s):// or data: URI), waits
// for the network to go idle, and settles the injected font. Font problems
// are logged, never fatal: a page without the bundled font still renders.
func (s *Session) Open(url string) error {
	if _, err := s.Page.Goto(url); err != nil {
		return fmt.Errorf("browser: navigation to %s failed: %w", url, err)
	}

	if err := s.Page.WaitForLoadState(playwright.PageWaitForLoadStateOptions{
		State: playwright.LoadStateNetworkidle,
	}); err != nil {
		return fmt.Errorf("browser: wait for load failed: %w", err)
	}

	if s.FontCSS != "" {
		s.settleFont()
	}
	return nil
}

// settleFont re-applies the font stylesheet so it wins cascade order over
// in-document styles, then waits for the font machinery to finish loading.
func (s *Session) settleFont() {
	if _, err := s.Page.AddStyleTag(playwright.PageAddStyleTagOptions{
		Content: playwright.String(s.FontCSS),
	}); err != nil {
		s.log.Warnf("page-level font css injection failed: %v", err)
	}

	fontCheck, _ := json.Marshal(fmt.Sprintf("12px %q", FontFamilyName))

	_, err := s.Page.WaitForFunction(
		"() => document.fonts && document.fonts.status === 'loaded'",
		nil,
		playwright.PageWaitForFunctionOptions{Timeout: playwright.Float(fontReadyTimeout)},
	)
	if err != nil {
		_, err = s.Page.WaitForFunction(
			fmt.Sprintf("() => document.fonts && document.fonts.check(%s)", fontCheck),
			nil,
			playwright.PageWaitForFunctionOptions{Timeout: playwright.Float(fontReadyTimeout)},
		)
		if err != nil {
			s.log.Warnf("font readiness wait failed: %v", err)
		}
	}

	ok, err := s.Page.Evaluate(fmt.Sprintf("() => document.fonts ? document.fonts.check(%s) : false", fontCheck))
	if err != nil {
		s.log.Warnf("font check evaluation failed: %v", err)
		return
	}
	s.log.Infof("font check %q: %v", FontFamilyName, ok)
}

// Click clicks the first element matching the selector.
func (s *Session) Click(selector string) error {
	if err := s.Page.Click(selector); err != nil {
		return fmt.Errorf("browser: click %q failed: %w", selector, err)
	}
	return nil
}

// ScrollWindow scrolls the window by the given deltas.
func (s *Session) ScrollWindow(x, y int) error {
	_, err := s.Page.Evaluate(
		"offset => window.scrollBy(offset.x, offset.y)",
		map[string]interface{}{"x": x, "y": y},
	)
	if err != nil {
		return fmt.Errorf("browser: window scroll failed: %w", err)
	}
	return nil
}

// ScrollElement scrolls the first element matching the selector by the
// given deltas.
func (s *Session) ScrollElement(selector string, x, y int) error {
	_, err := s.Page.Evaluate(
		`arg => {
			const el = document.querySelector(arg.sel);
			if (!el) {
				throw new Error('no element matches selector: ' + arg.sel);
			}
			el.scrollBy(arg.x, arg.y);
		}`,
		map[string]interface{}{"sel": selector, "x": x, "y": y},
	)
	if err != nil {
		return fmt.Errorf("browser: scroll %q failed: %w", selector, err)
	}
	return nil
}

// Type types text into the element matching the selector, clearing any
// existing value first when clear is set.
func (s *Session) Type(selector, text string, clear bool) error {
	if clear {
		if err := s.Page.Fill(selector, ""); err != nil {
			return fmt.Errorf("browser: clear %q failed: %w", selector, err)
		}
	}
	if err := s.Page.Type(selector, text); err != nil {
		return fmt.Errorf("browser: type into %q failed: %w", selector, err)
	}
	return nil
}

// Pause blocks the page for the given number of milliseconds.
func (s *Session) Pause(ms float64) error {
	s.Page.WaitForTimeout(ms)
	return nil
}

// Screenshot captures the page to the given path.
func (s *Session) Screenshot(path string, fullPage bool) error {
	_, err := s.Page.Screenshot(playwright.PageScreenshotOptions{
		Path:     playwright.String(path),
		FullPage: playwright.Bool(fullPage),
	})
	if err != nil {
		return fmt.Errorf("browser: screenshot to %s failed: %w", path, err)
	}
	return nil
}

// Close releases the page, context and browser. Errors during teardown are
// ignored so cleanup always completes.
func (s *Session) Close() {
	_ = s.Page.Close()
	_ = s.Context.Close()
	_ = s.Browser.Close()
}
