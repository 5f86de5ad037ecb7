package portal

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"regexp"
	"time"

	"TollSentinel/internal/model"
	"TollSentinel/internal/session"
)

// tokenPattern matches the anti-forgery field in the login form. The portal
// rotates the field name but it always starts with "token_".
var tokenPattern = regexp.MustCompile(`name="(token_[^"]+)"[^>]*value="([^"]*)"`)

// AuthClient executes the portal login protocol:
// fetch login page -> extract token -> submit credentials -> classify.
// A conflict response ("already logged in" elsewhere) gets exactly one
// retry after a fixed backoff; everything else is terminal.
type AuthClient struct {
	BaseURL   string
	LoginPath string
	Client    *http.Client
	Store     *session.Store
	Policy    RetryPolicy

	sleep func(time.Duration)
	now   func() time.Time
}

// NewAuthClient creates an auth client with a cookie jar and optional proxy.
func NewAuthClient(baseURL, loginPath, proxyURL string, store *session.Store) *AuthClient {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	jar, _ := cookiejar.New(nil)
	return &AuthClient{
		BaseURL:   baseURL,
		LoginPath: loginPath,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
			Jar:       jar,
		},
		Store:  store,
		Policy: DefaultRetryPolicy,
		sleep:  time.Sleep,
		now:    time.Now,
	}
}

// Login returns an authenticated session, reusing the cached one when it is
// still inside its TTL. On success the new session is persisted through the
// Store and its cookies are installed in the shared HTTP client.
func (a *AuthClient) Login(username, password string) (*model.Session, error) {
	if sess := a.Store.Load(); sess != nil {
		log.Printf("[INFO] reusing cached session (age %s)", sess.Age(a.now()).Round(time.Second))
		a.installCookies(sess)
		return sess, nil
	}

	outcome, err := a.attempt(username, password)
	if err != nil {
		return nil, err
	}

	switch outcome {
	case OutcomeSuccess:
		return a.persistSession()
	case OutcomeConflict:
		for i := 0; i < a.Policy.MaxAttempts; i++ {
			log.Printf("[WARN] account already logged in elsewhere, retrying in %s", a.Policy.Backoff)
			a.sleep(a.Policy.Backoff)
			outcome, err = a.attempt(username, password)
			if err != nil {
				return nil, err
			}
			if outcome == OutcomeSuccess {
				return a.persistSession()
			}
		}
		return nil, ErrLoginConflictUnresolved
	default:
		return nil, ErrInvalidCredentials
	}
}

// attempt runs one full login round trip: fresh page, fresh token, submit.
func (a *AuthClient) attempt(username, password string) (Outcome, error) {
	tokenName, tokenValue, err := a.fetchLoginForm()
	if err != nil {
		return OutcomeUnknown, err
	}

	form := url.Values{}
	form.Set(tokenName, tokenValue)
	form.Set("username", username)
	form.Set("password", password)
	form.Set("cmdSubmit", "Login")

	resp, err := a.Client.PostForm(a.BaseURL+a.LoginPath, form)
	if err != nil {
		return OutcomeUnknown, fmt.Errorf("%w: submit login: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return OutcomeUnknown, fmt.Errorf("%w: read login response: %v", ErrNetwork, err)
	}
	return Classify(string(body)), nil
}

// fetchLoginForm GETs the login page and extracts the anti-forgery token.
func (a *AuthClient) fetchLoginForm() (name, value string, err error) {
	resp, err := a.Client.Get(a.BaseURL + a.LoginPath)
	if err != nil {
		return "", "", fmt.Errorf("%w: fetch login page: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", "", fmt.Errorf("%w: read login page: %v", ErrNetwork, err)
	}
	if Classify(string(body)) == OutcomeServiceDown {
		return "", "", ErrServiceUnavailable
	}
	m := tokenPattern.FindStringSubmatch(string(body))
	if m == nil {
		return "", "", ErrCsrfTokenNotFound
	}
	return m[1], m[2], nil
}

// persistSession snapshots the jar's cookies into a Session and saves it.
// A failed save is non-fatal: the login itself succeeded.
func (a *AuthClient) persistSession() (*model.Session, error) {
	u, err := url.Parse(a.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	var cookies []model.Cookie
	for _, c := range a.Client.Jar.Cookies(u) {
		cookies = append(cookies, model.Cookie{
			Name:   c.Name,
			Value:  c.Value,
			Domain: u.Hostname(),
			Path:   "/",
		})
	}
	sess := &model.Session{Cookies: cookies, CreatedAt: a.now()}
	if err := a.Store.Save(sess); err != nil {
		log.Printf("[WARN] persist session: %v", err)
	}
	return sess, nil
}

// installCookies loads a cached session's cookies into the HTTP client jar.
func (a *AuthClient) installCookies(sess *model.Session) {
	u, err := url.Parse(a.BaseURL)
	if err != nil {
		return
	}
	cs := make([]*http.Cookie, 0, len(sess.Cookies))
	for _, c := range sess.Cookies {
		cs = append(cs, &http.Cookie{Name: c.Name, Value: c.Value, Path: c.Path})
	}
	a.Client.Jar.SetCookies(u, cs)
}
