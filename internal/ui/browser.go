// Package ui drives the Cinescope web frontend through playwright: a
// browser fixture plus page objects for the login and registration screens.
// Element locators rely on the frontend's stable data-qa-id attributes.
package ui

import (
	"fmt"
	"time"

	"github.com/playwright-community/playwright-go"
)

// Browser owns one playwright driver and one headless chromium instance
// shared by the UI suites; each test gets its own context and page.
type Browser struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	timeout time.Duration
}

// Launch installs the chromium driver if needed and starts a headless
// browser. The timeout bounds every subsequent page action and wait.
func Launch(timeout time.Duration) (*Browser, error) {
	if err := playwright.Install(&playwright.RunOptions{Browsers: []string{"chromium"}}); err != nil {
		return nil, fmt.Errorf("installing playwright browsers: %w", err)
	}

	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("starting playwright: %w", err)
	}

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("launching chromium: %w", err)
	}

	return &Browser{pw: pw, browser: browser, timeout: timeout}, nil
}

// NewPage opens a fresh isolated browser context with one page.
func (b *Browser) NewPage() (*PageActions, error) {
	ctx, err := b.browser.NewContext()
	if err != nil {
		return nil, fmt.Errorf("creating browser context: %w", err)
	}

	page, err := ctx.NewPage()
	if err != nil {
		ctx.Close()
		return nil, fmt.Errorf("opening page: %w", err)
	}

	timeoutMs := float64(b.timeout.Milliseconds())
	page.SetDefaultTimeout(timeoutMs)
	page.SetDefaultNavigationTimeout(timeoutMs)

	return &PageActions{page: page, ctx: ctx, timeout: timeoutMs}, nil
}

// Close shuts the browser and stops the driver.
func (b *Browser) Close() error {
	if err := b.browser.Close(); err != nil {
		return err
	}
	return b.pw.Stop()
}
