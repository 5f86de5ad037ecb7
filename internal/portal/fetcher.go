package portal

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"TollSentinel/internal/model"
)

// FeedHeader is the exact header row the portal's CSV feed must carry.
const FeedHeader = `"Posting Date","Tag/Vehicle Reg.","Transaction Date","Transaction Time","Facility","Entry/Barrier Plaza","Exit Plaza","Toll","Discount Eligible?"`

// FeedFetcher retrieves the raw toll-transaction CSV for a billing month.
// It shares the AuthClient's HTTP client so the session cookies ride along.
// It performs no retries itself; the caller decides whether a bad feed is
// worth a re-authentication.
type FeedFetcher struct {
	BaseURL  string
	FeedPath string
	Client   *http.Client
}

// NewFeedFetcher creates a fetcher over an already-authenticated client.
func NewFeedFetcher(baseURL, feedPath string, client *http.Client) *FeedFetcher {
	return &FeedFetcher{BaseURL: baseURL, FeedPath: feedPath, Client: client}
}

// FetchMonth GETs the transaction feed for the period and validates that the
// response looks like the expected CSV before handing it to the parser.
func (f *FeedFetcher) FetchMonth(period model.MonthPeriod) (string, error) {
	endpoint := fmt.Sprintf("%s%s?year=%d&month=%d",
		f.BaseURL, f.FeedPath, period.Year, period.FeedMonth())

	req, err := http.NewRequest("GET", endpoint, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Referer", f.BaseURL+"/")

	resp, err := f.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: fetch toll feed: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: toll feed status %d", ErrNetwork, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read toll feed: %v", ErrNetwork, err)
	}

	raw := strings.TrimSpace(string(body))
	// Markup instead of CSV usually means the session expired server-side
	// and we got redirected to the login page.
	if strings.HasPrefix(raw, "<") {
		return "", fmt.Errorf("%w: feed returned markup, session may have expired", ErrDataFormat)
	}
	if len(raw) < len(FeedHeader) {
		return "", fmt.Errorf("%w: feed implausibly short (%d bytes)", ErrDataFormat, len(raw))
	}
	if !strings.HasPrefix(raw, FeedHeader) {
		return "", fmt.Errorf("%w: feed missing expected header row", ErrDataFormat)
	}
	return string(body), nil
}
