// Newsly — keyword news search, sentiment tagging, and insights.
//
// Main CLI entrypoint using cobra command framework.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/newslyhq/newsly/api"
	"github.com/newslyhq/newsly/internal/chat"
	"github.com/newslyhq/newsly/internal/config"
	"github.com/newslyhq/newsly/internal/insights"
	"github.com/newslyhq/newsly/internal/logging"
	"github.com/newslyhq/newsly/internal/pipeline"
	"github.com/newslyhq/newsly/internal/report"
	"github.com/newslyhq/newsly/pkg/models"
)

// Build-time variables (set via -ldflags).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Global config and logger, set in PersistentPreRunE.
var (
	cfg    *config.Config
	logger *slog.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "newsly",
	Short: "Newsly — keyword news search with sentiment and insights",
	Long: `Newsly fetches headlines for your keywords from the public news
search feed, tags each one with sentiment and a source label, and
presents the ranked result as a terminal feed, an HTML dashboard,
or a chat conversation.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		configFile, _ := cmd.Flags().GetString("config")
		if configFile != "" {
			cfg, err = config.LoadFromFile(configFile)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		level := cfg.Logging.Level
		if override, _ := cmd.Flags().GetString("log-level"); override != "" {
			level = override
		}
		logger = logging.New(level, cfg.Logging.Format)
		slog.SetDefault(logger)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file path (default: ./config/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level override (debug, info, warn, error)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(insightsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statusCmd)
}

// --- Version Command ---

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Newsly %s\n", version)
		fmt.Printf("  commit:  %s\n", commit)
		fmt.Printf("  built:   %s\n", date)
	},
}

// --- Search Command ---

var searchCmd = &cobra.Command{
	Use:   "search [keywords...]",
	Short: "Search news for up to three keywords",
	Long: `Search news headlines for one to three keywords and print the
ranked feed. Results can be filtered by sentiment, re-sorted, and
exported as an HTML dashboard or PDF.

Examples:
  newsly search "climate change"
  newsly search ai crypto --max 15 --sort sentiment
  newsly search markets --show Positive --output dashboard.html`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
		defer cancel()

		svc := pipeline.NewService(cfg.Feed, logger)
		result, err := svc.Search(ctx, args, searchOptions(cmd))
		if err != nil {
			return err
		}

		summary := insights.Summarize(result.Articles, cfg.Insights.TopKeywords)
		fmt.Print(report.RenderText(*result, summary))

		output, _ := cmd.Flags().GetString("output")
		if output == "" {
			return nil
		}

		page, err := report.RenderHTML(*result, summary, report.DefaultDashboardConfig())
		if err != nil {
			return err
		}
		if strings.HasSuffix(strings.ToLower(output), ".pdf") {
			pdfCfg := report.DefaultPDFConfig()
			pdfCfg.OutputPath = output
			if err := report.ExportPDF(page, pdfCfg); err != nil {
				return err
			}
		} else if err := report.SaveHTML(page, output); err != nil {
			return err
		}
		fmt.Printf("Saved dashboard to %s\n", output)
		return nil
	},
}

func init() {
	searchCmd.Flags().Int("max", 0, "max articles to show (5-20)")
	searchCmd.Flags().String("sort", "", "sort order: published_date, sentiment, relevance")
	searchCmd.Flags().StringSlice("show", nil, "only show these sentiments (Positive, Neutral, Negative)")
	searchCmd.Flags().String("output", "", "write the HTML dashboard (or .pdf) to this path")
}

// searchOptions resolves command flags against the configured defaults.
func searchOptions(cmd *cobra.Command) models.SearchOptions {
	opts := models.SearchOptions{
		MaxArticles: cfg.Results.MaxArticles,
		SortBy:      models.SortBy(cfg.Results.SortBy),
	}
	for _, label := range cfg.Results.ShowOnly {
		opts.ShowOnly = append(opts.ShowOnly, models.Sentiment(label))
	}

	if max, _ := cmd.Flags().GetInt("max"); max > 0 {
		opts.MaxArticles = max
	}
	if sort, _ := cmd.Flags().GetString("sort"); sort != "" {
		opts.SortBy = models.SortBy(sort)
	}
	if show, _ := cmd.Flags().GetStringSlice("show"); len(show) > 0 {
		opts.ShowOnly = nil
		for _, label := range show {
			opts.ShowOnly = append(opts.ShowOnly, models.Sentiment(label))
		}
	}

	return opts.Normalized()
}

// --- Chat Command ---

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat session",
	Long: `Start an interactive chat session. Ask for news in the form
'Find news on X'; type 'exit' or 'quit' to leave.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := pipeline.NewService(cfg.Feed, logger)
		assistant := chat.NewService(svc, cfg.Chat.MaxResults, logger)
		sess := chat.NewSession()

		fmt.Println("Newsly chat — ask me to find news on any topic.")
		fmt.Println("Example: Find news on artificial intelligence")

		scanner := bufio.NewScanner(os.Stdin)
		for {
			fmt.Print("> ")
			if !scanner.Scan() {
				break
			}
			input := strings.TrimSpace(scanner.Text())
			if input == "" {
				continue
			}
			if input == "exit" || input == "quit" {
				break
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			reply := assistant.Reply(ctx, sess, input)
			cancel()

			fmt.Println(reply.Content)
			for _, a := range reply.Articles {
				fmt.Printf("  - %s (%s)\n    %s\n", a.Title, a.RelativeTime, a.Link)
			}
		}
		return scanner.Err()
	},
}

// --- Insights Command ---

var insightsCmd = &cobra.Command{
	Use:   "insights [keywords...]",
	Short: "Show keyword frequency and sentiment distribution",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
		defer cancel()

		svc := pipeline.NewService(cfg.Feed, logger)
		result, err := svc.Search(ctx, args, models.DefaultSearchOptions())
		if err != nil {
			return err
		}
		for _, w := range result.Warnings {
			fmt.Printf("! %s: %s\n", w.Keyword, w.Message)
		}

		summary := insights.Summarize(result.Articles, cfg.Insights.TopKeywords)
		if summary.TotalArticles == 0 {
			fmt.Println("No articles found.")
			return nil
		}

		fmt.Printf("Analyzed %d articles for: %s\n\n", summary.TotalArticles, strings.Join(result.Keywords, ", "))
		fmt.Println("Top keywords:")
		for _, kc := range summary.TopKeywords {
			fmt.Printf("  %-24s %d\n", kc.Term, kc.Count)
		}
		fmt.Println("\nSentiment:")
		for _, sc := range summary.Sentiment {
			fmt.Printf("  %-10s %d\n", sc.Label, sc.Count)
		}
		return nil
	},
}

// --- Serve Command (API Server) ---

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := cfg.API.Addr()
		fmt.Printf("Starting Newsly API server on %s\n", addr)
		fmt.Printf("Dashboard: http://%s/dashboard?q=<keywords>\n", addr)

		srv := api.NewServer(cfg, logger, version)
		return srv.ListenAndServe(addr)
	},
}

// --- Status Command ---

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show configuration and environment status",
	RunE: func(cmd *cobra.Command, args []string) error {
		line := strings.Repeat("=", 45)
		fmt.Println(line)
		fmt.Println("  Newsly — Status")
		fmt.Println(line)
		fmt.Printf("  Version:      %s (%s)\n", version, commit)
		fmt.Printf("  Time (UTC):   %s\n", time.Now().UTC().Format("02 Jan 2006 15:04:05"))
		fmt.Println()
		fmt.Println("  Configuration:")
		fmt.Printf("    Feed:         %s (%s)\n", cfg.Feed.Endpoint, cfg.Feed.Edition)
		fmt.Printf("    Results:      max %d, sort %s\n", cfg.Results.MaxArticles, cfg.Results.SortBy)
		fmt.Printf("    Chat:         up to %d results per reply\n", cfg.Chat.MaxResults)
		fmt.Printf("    API Server:   %s\n", cfg.API.Addr())
		fmt.Printf("    Cache TTL:    %ds\n", cfg.Feed.CacheTTLSec)
		fmt.Println()
		pdf := "not available (falls back to HTML)"
		if report.IsPDFSupported() {
			pdf = fmt.Sprintf("available (%s)", report.DetectPDFEngine())
		}
		fmt.Printf("  PDF export:   %s\n", pdf)
		fmt.Println(line)
		return nil
	},
}
