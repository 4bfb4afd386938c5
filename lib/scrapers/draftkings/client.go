package draftkings

import (
	"net/http/cookiejar"

	"dkscrape-backend/lib/restyutil"
	"dkscrape-backend/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
)

const (
	LobbyURL           = "https://www.draftkings.com/lobby/getcontests?sport=%s"
	ContestAPIURL      = "https://api.draftkings.com/contests/v1/contests/%d?format=json"
	DraftURL           = "https://www.draftkings.com/draft/contest/%d"
	PlayerCSVURL       = "https://www.draftkings.com/bulklineup/getdraftablecsv?draftGroupId=%d"
	SportsURL          = "https://api.draftkings.com/sites/US-DK/sports/v1/sports?format=json"
	ContestHistoryURL  = "https://www.draftkings.com/mycontests/historycsv?sortField=ContestEndDate&sortOrder=Desc&searchTerm="
	StandingsExportURL = "https://www.draftkings.com/contest/exportfullstandingscsv/%d"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"

type Client struct {
	Http *resty.Client
}

type ClientOptions struct {
	Retry restyutil.RetryOptions
}

// NewClient builds the client shared by every unauthenticated scraper.
// Retries on transient failures happen here and nowhere else; callers
// treat a returned error as final.
func NewClient(opts ClientOptions) (*Client, error) {
	client := restyutil.NewRetryClient(opts.Retry)

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	client.SetCookieJar(jar)
	client.SetHeader("user-agent", userAgent)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	telemetry.InstrumentResty(client, "scrapers/draftkings/http")
	restyutil.InstrumentClient(client, tracer, restyInstrumentOutput)

	return &Client{Http: client}, nil
}
