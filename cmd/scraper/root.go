package main

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"steamreviews/internal/adapters/jsonfile"
	"steamreviews/internal/adapters/observability"
	"steamreviews/internal/adapters/steam"
	"steamreviews/internal/app"
	"steamreviews/internal/domain"
)

var (
	appID        int64
	language     string
	reviewType   string
	purchaseType string
	filterMode   string
	dayRange     int64
	numPerPage   int
	offtopic     int
	maxReviews   int
	delay        time.Duration
	timeout      time.Duration
	includeRaw   bool
	noNormalize  bool
	outPath      string
	baseURL      string
)

var rootCmd = &cobra.Command{
	Use:          "steam-reviews",
	Short:        "Download Steam Store reviews for a single AppID and save them to JSON.",
	RunE:         run,
	SilenceUsage: true,
}

func Execute() error { return rootCmd.Execute() }

func init() {
	f := rootCmd.Flags()
	f.Int64Var(&appID, "appid", 4134990, "Steam AppID (e.g. 413150)")
	f.StringVar(&language, "language", "all", `Review language ("all", "english", "brazilian", ...)`)
	f.StringVar(&reviewType, "review-type", "all", "Filter by review sentiment (all|positive|negative)")
	f.StringVar(&purchaseType, "purchase-type", "all", "Filter by purchase type (all|steam|non_steam_purchase)")
	f.StringVar(&filterMode, "filter-mode", "recent", "Paging mode (recent|updated|all; recent/updated recommended)")
	f.Int64Var(&dayRange, "day-range", math.MaxInt64, "Lookback window in days (huge default = all time)")
	f.IntVar(&numPerPage, "num-per-page", 100, "Reviews per page (1-100)")
	f.IntVar(&offtopic, "filter-offtopic-activity", 1, "1 filters off-topic/review-bomb activity; 0 includes it")
	f.IntVar(&maxReviews, "max-reviews", 1000, "Stop after downloading this many reviews (0 = no cap)")
	f.DurationVar(&delay, "delay", 250*time.Millisecond, "Pause between page requests (polite throttling)")
	f.DurationVar(&timeout, "timeout", 30*time.Second, "Per-request timeout")
	f.BoolVar(&includeRaw, "include-raw", false, "Include raw review objects in the output JSON")
	f.BoolVar(&noNormalize, "no-normalize", false, "Store raw page review objects instead of normalized ones")
	f.StringVar(&outPath, "out", "", `Output JSON path (default "steam_reviews_<appid>.json")`)
	f.StringVar(&baseURL, "base-url", steam.DefaultBase, "Steam store base URL")
}

func run(cmd *cobra.Command, args []string) error {
	log.Logger = observability.NewLogger(os.Getenv("APP_ENV"))

	opts := domain.FetchOptions{
		RequestParams: domain.RequestParams{
			Language:       language,
			ReviewType:     reviewType,
			PurchaseType:   purchaseType,
			FilterMode:     filterMode,
			DayRange:       dayRange,
			NumPerPage:     numPerPage,
			FilterOfftopic: offtopic,
		},
		IncludeRaw: includeRaw,
		Normalize:  !noNormalize,
		MaxReviews: maxReviews,
		Delay:      delay,
	}

	svc := app.NewFetchService(steam.New(baseURL, timeout, 5))
	res, err := svc.FetchAll(cmd.Context(), appID, opts)
	if err != nil {
		return err
	}

	out := outPath
	if out == "" {
		out = jsonfile.DefaultPath(appID)
	}
	if err := jsonfile.Save(res, out); err != nil {
		return err
	}
	fmt.Printf("Saved %d reviews to %s\n", res.Count, out)
	return nil
}
