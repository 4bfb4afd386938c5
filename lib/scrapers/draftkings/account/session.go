package account

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"dkscrape-backend/lib/telemetry"

	"github.com/chromedp/cdproto/browser"
	"github.com/chromedp/chromedp"
)

var tracer = telemetry.Tracer("dkscrape.lib.scrapers.draftkings.account")

const loginURL = "https://myaccount.draftkings.com/login?returnPath=%2flobby"

// State tracks how far an authenticated run has progressed. Transitions
// only ever move forward; any failure is terminal for the run and the
// session must be discarded.
type State int

const (
	StateNotLoggedIn State = iota
	StateLoggedIn
	StateDownloadTriggered
	StateFileMoved
	StateParsed
)

func (s State) String() string {
	switch s {
	case StateNotLoggedIn:
		return "not_logged_in"
	case StateLoggedIn:
		return "logged_in"
	case StateDownloadTriggered:
		return "download_triggered"
	case StateFileMoved:
		return "file_moved"
	case StateParsed:
		return "parsed"
	}
	return "unknown"
}

// Session drives a single logged-in browser. It is not safe for
// concurrent use.
type Session struct {
	env    Environment
	ctx    context.Context
	cancel []context.CancelFunc
	state  State
}

// NewSession starts a browser pointed at the configured download
// directory. Close must be called even when Login fails.
func NewSession(ctx context.Context, env Environment) (*Session, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", env.Headless),
		chromedp.Flag("disable-gpu", true),
		chromedp.WindowSize(1920, 1080),
	)
	if env.ChromePath != "" {
		opts = append(opts, chromedp.ExecPath(env.ChromePath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)

	s := &Session{
		env:    env,
		ctx:    browserCtx,
		cancel: []context.CancelFunc{cancelBrowser, cancelAlloc},
		state:  StateNotLoggedIn,
	}

	err := chromedp.Run(browserCtx,
		browser.SetDownloadBehavior(browser.SetDownloadBehaviorBehaviorAllow).
			WithDownloadPath(env.DownloadDirectory),
	)
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("start browser: %w", err)
	}
	return s, nil
}

func (s *Session) Close() {
	for _, cancel := range s.cancel {
		cancel()
	}
}

func (s *Session) State() State {
	return s.state
}

func (s *Session) advance(to State) error {
	if to != s.state+1 {
		return fmt.Errorf("session in state %s, cannot move to %s", s.state, to)
	}
	s.state = to
	return nil
}

// MarkParsed records that the exports this session moved into the csv
// working directory were parsed. Parsing itself runs against the
// filesystem (ProcessStandings, ProcessHistory) so exports left behind
// by a crashed run can be imported without a live session.
func (s *Session) MarkParsed() error {
	return s.advance(StateParsed)
}

// Login fills in the credential form and submits it. The submit button
// is clicked a second time because the page sometimes swallows the
// first click while its scripts are still loading; the second click
// failing just means the first one worked.
func (s *Session) Login(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "account.Login")
	defer span.End()

	if s.state != StateNotLoggedIn {
		return fmt.Errorf("session in state %s, already logged in", s.state)
	}

	slog.InfoContext(ctx, "logging in", "email", s.env.Email)

	err := chromedp.Run(s.ctx,
		chromedp.Navigate(loginURL),
		chromedp.WaitVisible("login-username-input", chromedp.ByID),
		chromedp.SendKeys("login-username-input", s.env.Email, chromedp.ByID),
		chromedp.SendKeys("login-password-input", s.env.Password, chromedp.ByID),
		chromedp.Click("login-submit", chromedp.ByID),
	)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	clickCtx, cancel := context.WithTimeout(s.ctx, 5*time.Second)
	defer cancel()
	err = chromedp.Run(clickCtx, chromedp.Click("login-submit", chromedp.ByID))
	if err != nil {
		slog.DebugContext(ctx, "second login click failed, assuming first submitted", "err", err)
	}

	err = chromedp.Run(s.ctx, chromedp.Sleep(10*time.Second))
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	slog.InfoContext(ctx, "logged in")
	return s.advance(StateLoggedIn)
}

// download navigates to a URL whose response the browser treats as a
// file download. Navigation errors from aborted page loads are
// expected; the download itself is confirmed by watching the download
// directory.
func (s *Session) download(ctx context.Context, url string) error {
	if s.state != StateLoggedIn && s.state != StateDownloadTriggered {
		return fmt.Errorf("session in state %s, must log in before downloading", s.state)
	}

	navCtx, cancel := context.WithTimeout(s.ctx, 30*time.Second)
	defer cancel()
	err := chromedp.Run(navCtx, chromedp.Navigate(url))
	if err != nil {
		slog.DebugContext(ctx, "download navigation interrupted", "url", url, "err", err)
	}

	if s.state == StateLoggedIn {
		s.state = StateDownloadTriggered
	}
	return nil
}
