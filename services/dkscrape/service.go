package dkscrape

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"dkscrape-backend/lib/scrapers/draftkings"

	"go.opentelemetry.io/otel/codes"
)

// Service runs the scrape pipeline for one sport at a time. Stages
// always execute in a fixed order: draft groups, contests, game types,
// game sets, payouts, salaries. Draft group ids narrow the contest
// scrape and select the salary fetches; contest ids select the payout
// fetches.
type Service struct {
	client *draftkings.Client
	// StrictDeps turns an empty upstream stage into an error instead
	// of silently skipping the stages that depend on it.
	strictDeps bool
}

type Options struct {
	Client     *draftkings.Client
	StrictDeps bool
}

func NewService(opts Options) Service {
	return Service{
		client:     opts.Client,
		strictDeps: opts.StrictDeps,
	}
}

type RunOptions struct {
	Sport string

	SkipDraftGroups bool
	SkipContests    bool
	SkipGameTypes   bool
	SkipGameSets    bool
	SkipPayouts     bool
	SkipSalaries    bool

	// narrows the draft group stage; the matched ids feed the contest
	// and salary stages, where an empty id list means unfiltered
	// contests but no salaries to fetch
	DraftGroupFilter draftkings.DraftGroupFilter
	// game set tag allow-list, empty keeps all
	GameSetTags []string

	// fetch per-contest status from the contests API and fold it into
	// the contest records
	RefreshContestStatus bool
}

type Results struct {
	Sport       string                    `json:"sport"`
	DraftGroups []draftkings.DraftGroup   `json:"draft_groups"`
	Contests    []draftkings.Contest      `json:"contests"`
	GameTypes   []draftkings.GameType     `json:"game_types"`
	GameSets    []draftkings.GameSet      `json:"game_sets"`
	Payouts     []draftkings.Payout       `json:"payouts"`
	Salaries    []draftkings.PlayerSalary `json:"salaries"`

	Elapsed time.Duration `json:"elapsed"`
	// stage name -> error message for stages that partially failed
	StageErrors map[string]string `json:"stage_errors,omitempty"`
}

func (r *Results) recordStageError(stage string, err error) {
	if r.StageErrors == nil {
		r.StageErrors = map[string]string{}
	}
	r.StageErrors[stage] = err.Error()
}

// Run fetches the lobby once and feeds the snapshot through the
// pipeline. Stage errors past the lobby fetch are joined rather than
// aborting the run, partial results are still useful.
func (s Service) Run(ctx context.Context, opts RunOptions) (Results, error) {
	ctx, span := tracer.Start(ctx, "dkscrape.Run")
	defer span.End()

	if opts.Sport == "" {
		return Results{}, errors.New("no sport given")
	}

	slog.InfoContext(ctx, "starting scrape run", "sport", opts.Sport)
	start := time.Now()

	lobby, err := s.client.FetchLobby(ctx, opts.Sport)
	if err != nil {
		span.SetStatus(codes.Error, "failed to fetch lobby")
		span.RecordError(err)
		return Results{}, fmt.Errorf("fetch lobby: %w", err)
	}

	results, err := s.pipeline(ctx, lobby, opts)
	results.Elapsed = time.Since(start)
	if err != nil {
		span.SetStatus(codes.Error, "pipeline failed")
		span.RecordError(err)
		return results, err
	}

	span.SetStatus(codes.Ok, "")
	return results, nil
}

func (s Service) pipeline(ctx context.Context, lobby *draftkings.Lobby, opts RunOptions) (Results, error) {
	results := Results{Sport: lobby.Sport}
	var errlist []error

	if !opts.SkipDraftGroups {
		results.DraftGroups = draftkings.ScrapeDraftGroups(ctx, lobby, opts.DraftGroupFilter)
	}
	draftGroupIDs := draftkings.DraftGroupIDs(results.DraftGroups)

	if !opts.SkipContests {
		// an empty draft group list leaves the contest scrape
		// unfiltered; only the salary stage hard-depends on draft
		// group output
		results.Contests = draftkings.ScrapeContests(ctx, lobby, draftkings.ContestFilter{
			DraftGroupIDs: draftGroupIDs,
		})
		if opts.RefreshContestStatus {
			err := s.refreshContestStatus(ctx, results.Contests)
			if err != nil {
				results.recordStageError("contests", err)
				errlist = append(errlist, err)
			}
		}
	}

	if !opts.SkipGameTypes {
		results.GameTypes = draftkings.ScrapeGameTypes(ctx, lobby)
	}
	if !opts.SkipGameSets {
		results.GameSets = draftkings.ScrapeGameSets(ctx, lobby, opts.GameSetTags)
	}

	if !opts.SkipPayouts {
		skip, err := s.checkDeps(ctx, "payouts", "contests", opts.SkipContests, len(results.Contests))
		if err != nil {
			return results, err
		}
		if !skip {
			payouts, err := s.client.ScrapePayouts(ctx, draftkings.ContestIDs(results.Contests))
			if err != nil {
				results.recordStageError("payouts", err)
				errlist = append(errlist, fmt.Errorf("scrape payouts: %w", err))
			}
			results.Payouts = payouts
		}
	}

	if !opts.SkipSalaries {
		skip, err := s.checkDeps(ctx, "salaries", "draft groups", opts.SkipDraftGroups, len(draftGroupIDs))
		if err != nil {
			return results, err
		}
		if !skip {
			salaries, err := s.client.ScrapeSalaries(ctx, draftGroupIDs)
			if err != nil {
				results.recordStageError("salaries", err)
				errlist = append(errlist, fmt.Errorf("scrape salaries: %w", err))
			}
			results.Salaries = salaries
		}
	}

	slog.InfoContext(ctx, "scrape run finished",
		"sport", results.Sport,
		"draft_groups", len(results.DraftGroups),
		"contests", len(results.Contests),
		"game_types", len(results.GameTypes),
		"game_sets", len(results.GameSets),
		"payouts", len(results.Payouts),
		"salaries", len(results.Salaries),
	)

	return results, errors.Join(errlist...)
}

// checkDeps decides what happens to a stage whose upstream produced
// nothing: skip it quietly, or fail the run under StrictDeps.
func (s Service) checkDeps(ctx context.Context, stage, upstream string, upstreamSkipped bool, upstreamCount int) (skip bool, err error) {
	if upstreamCount > 0 {
		return false, nil
	}
	if s.strictDeps {
		return true, fmt.Errorf("%s requires %s, which produced nothing", stage, upstream)
	}

	reason := "empty"
	if upstreamSkipped {
		reason = "skipped"
	}
	slog.WarnContext(ctx, "skipping stage, upstream produced nothing",
		"stage", stage, "upstream", upstream, "reason", reason)
	return true, nil
}

// refreshContestStatus folds live contest state into the lobby-derived
// records. Contests that have disappeared keep their lobby values.
func (s Service) refreshContestStatus(ctx context.Context, contests []draftkings.Contest) error {
	details, err := s.client.FetchContestDetails(ctx, draftkings.ContestIDs(contests))

	byID := make(map[int64]draftkings.ContestDetail, len(details))
	for _, detail := range details {
		byID[detail.ContestID] = detail
	}
	for i := range contests {
		detail, ok := byID[contests[i].ContestID]
		if !ok {
			continue
		}
		contests[i].IsFinal = detail.IsFinal
		contests[i].IsCancelled = detail.IsCancelled
		contests[i].StartTime = detail.StartTime
	}

	if err != nil {
		return fmt.Errorf("refresh contest status: %w", err)
	}
	return nil
}
