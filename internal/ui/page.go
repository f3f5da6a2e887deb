package ui

import (
	"fmt"

	"github.com/playwright-community/playwright-go"
)

// PageActions is the base of every page object: semantic wrappers over the
// open/fill/click/wait primitives of one browser page.
type PageActions struct {
	page    playwright.Page
	ctx     playwright.BrowserContext
	timeout float64
}

// Page exposes the underlying playwright page for one-off interactions.
func (p *PageActions) Page() playwright.Page {
	return p.page
}

// Open navigates to the URL.
func (p *PageActions) Open(url string) error {
	if _, err := p.page.Goto(url); err != nil {
		return fmt.Errorf("opening %s: %w", url, err)
	}
	return nil
}

// Fill types text into the element matched by the locator.
func (p *PageActions) Fill(locator, text string) error {
	if err := p.page.Locator(locator).Fill(text); err != nil {
		return fmt.Errorf("filling %s: %w", locator, err)
	}
	return nil
}

// Click clicks the element matched by the locator.
func (p *PageActions) Click(locator string) error {
	if err := p.page.Locator(locator).Click(); err != nil {
		return fmt.Errorf("clicking %s: %w", locator, err)
	}
	return nil
}

// ExpectURL waits for the redirect to the given URL and verifies the page
// landed there.
func (p *PageActions) ExpectURL(url string) error {
	if err := p.page.WaitForURL(url); err != nil {
		return fmt.Errorf("waiting for redirect to %s: %w", url, err)
	}
	if p.page.URL() != url {
		return fmt.Errorf("expected to land on %s, got %s", url, p.page.URL())
	}
	return nil
}

// ElementText returns the text content of the matched element.
func (p *PageActions) ElementText(locator string) (string, error) {
	text, err := p.page.Locator(locator).TextContent()
	if err != nil {
		return "", fmt.Errorf("reading text of %s: %w", locator, err)
	}
	return text, nil
}

// ExpectPopup asserts the transient notification with the given text: it
// must first become visible, then disappear. Either phase timing out is a
// failure.
func (p *PageActions) ExpectPopup(text string) error {
	popup := p.page.GetByText(text)

	err := popup.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(p.timeout),
	})
	if err != nil {
		return fmt.Errorf("popup %q did not appear: %w", text, err)
	}

	err = popup.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateHidden,
		Timeout: playwright.Float(p.timeout),
	})
	if err != nil {
		return fmt.Errorf("popup %q did not disappear: %w", text, err)
	}

	return nil
}

// Screenshot captures the full page, returning the PNG bytes for test
// artifacts.
func (p *PageActions) Screenshot() ([]byte, error) {
	return p.page.Screenshot(playwright.PageScreenshotOptions{
		FullPage: playwright.Bool(true),
	})
}

// Close releases the page's browser context.
func (p *PageActions) Close() error {
	return p.ctx.Close()
}
