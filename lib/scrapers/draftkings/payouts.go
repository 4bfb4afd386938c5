package draftkings

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"dkscrape-backend/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

// The draft page embeds contest state as an inline assignment, there
// is no JSON endpoint that exposes the payout tiers for upcoming
// contests.
const mvcVarsMarker = "window.mvcVars.contests"

var contestDetailRegex = regexp.MustCompile(`(?s)"contestDetail":(.*?),"errorStatus":`)

type payoutStep struct {
	MaxPosition            int             `json:"maxPosition"`
	MinPosition            int             `json:"minPosition"`
	TierPayoutDescriptions json.RawMessage `json:"tierPayoutDescriptions"`
}

type draftPageContestDetail struct {
	PayoutSummary []payoutStep `json:"payoutSummary"`
}

// ScrapePayouts walks a contest id list and flattens each contest's
// payout schedule into per-tier rows. Contests that 404 (expired or
// cancelled) are skipped.
func (c *Client) ScrapePayouts(ctx context.Context, contestIDs []int64) ([]Payout, error) {
	slog.InfoContext(ctx, "fetching payouts", "contests", len(contestIDs))

	var payouts []Payout
	var errlist []error
	dropped := 0

	for _, contestID := range contestIDs {
		rows, err := c.scrapeContestPayout(ctx, contestID)
		if errors.Is(err, ErrNotFound) {
			slog.InfoContext(ctx, "contest not found", "contest_id", contestID)
			continue
		}
		if err != nil {
			slog.ErrorContext(ctx, "failed to scrape contest payout", "contest_id", contestID, "err", err)
			errlist = append(errlist, err)
			continue
		}

		for _, row := range rows {
			err = Validate(row)
			if err != nil {
				dropped++
				slog.WarnContext(ctx, "validation error for payout", "contest_id", contestID, "err", err)
				continue
			}
			payouts = append(payouts, row)
		}
	}

	if dropped > 0 {
		slog.WarnContext(ctx, "skipped payouts due to validation errors", "count", dropped)
	}
	slog.InfoContext(ctx, "fetched payouts", "count", len(payouts))

	return payouts, errors.Join(errlist...)
}

func (c *Client) scrapeContestPayout(ctx context.Context, contestID int64) ([]Payout, error) {
	res, err := c.Http.R().
		SetContext(ctx).
		Get(fmt.Sprintf(DraftURL, contestID))
	if err != nil {
		return nil, err
	}
	if res.StatusCode() == 404 {
		return nil, fmt.Errorf("contest %d: %w", contestID, ErrNotFound)
	}
	if res.IsError() {
		return nil, fmt.Errorf("contest %d: status %d", contestID, res.StatusCode())
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
	if err != nil {
		return nil, fmt.Errorf("parse draft page for contest %d: %w", contestID, err)
	}

	return extractPayouts(contestID, doc)
}

// extractPayouts pulls the contestDetail blob out of the draft page's
// inline script and flattens its payout summary.
func extractPayouts(contestID int64, doc *goquery.Document) ([]Payout, error) {
	script := htmlutil.FindScript(doc, mvcVarsMarker)
	if script == "" {
		return nil, fmt.Errorf("contest %d: no %s script on draft page", contestID, mvcVarsMarker)
	}

	groups := contestDetailRegex.FindStringSubmatch(script)
	if len(groups) < 2 {
		return nil, fmt.Errorf("contest %d: contestDetail not found in draft page script", contestID)
	}

	var detail draftPageContestDetail
	err := json.Unmarshal([]byte(groups[1]), &detail)
	if err != nil {
		return nil, fmt.Errorf("contest %d: decode contestDetail: %w", contestID, err)
	}

	var rows []Payout
	for _, step := range detail.PayoutSummary {
		row := Payout{
			ContestID:    contestID,
			MaxPosition:  step.MaxPosition,
			MinPosition:  step.MinPosition,
			OriginalTier: string(step.TierPayoutDescriptions),
		}

		tiers, err := decodeOrderedTiers(step.TierPayoutDescriptions)
		if err != nil {
			return nil, fmt.Errorf("contest %d: decode payout tiers: %w", contestID, err)
		}
		if len(tiers) > 0 {
			row.PayoutOneType = tiers[0].kind
			row.PayoutOneValue, err = processPayoutValue(tiers[0].value, tiers[0].kind)
			if err != nil {
				return nil, fmt.Errorf("contest %d: %w", contestID, err)
			}
		}
		if len(tiers) > 1 {
			row.PayoutTwoType = tiers[1].kind
			row.PayoutTwoValue, err = processPayoutValue(tiers[1].value, tiers[1].kind)
			if err != nil {
				return nil, fmt.Errorf("contest %d: %w", contestID, err)
			}
		}

		rows = append(rows, row)
	}

	return rows, nil
}

type payoutTier struct {
	kind  string
	value string
}

// decodeOrderedTiers reads a tierPayoutDescriptions object while
// preserving key order, which determines which payout is "one" and
// which is "two". encoding/json maps cannot do that.
func decodeOrderedTiers(raw json.RawMessage) ([]payoutTier, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected object, got %v", tok)
	}

	var tiers []payoutTier
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("expected string key, got %v", keyTok)
		}

		valueTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		value, ok := valueTok.(string)
		if !ok {
			return nil, fmt.Errorf("expected string value for tier %q, got %v", key, valueTok)
		}

		tiers = append(tiers, payoutTier{kind: key, value: value})
	}

	return tiers, nil
}

// ticket prizes carry no cash value, dollar strings come formatted
// for display
func processPayoutValue(value, kind string) (float64, error) {
	if strings.Contains(strings.ToLower(kind), "ticket") {
		return 0, nil
	}
	cleaned := strings.ReplaceAll(strings.ReplaceAll(value, "$", ""), ",", "")
	parsed, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("unparseable payout value %q: %w", value, err)
	}
	return parsed, nil
}
