package report

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/newslyhq/newsly/internal/insights"
	"github.com/newslyhq/newsly/pkg/models"
	"github.com/newslyhq/newsly/pkg/utils"
)

// Side-article titles get cut to this length.
const sideTitleLimit = 80

// DashboardConfig controls dashboard rendering.
type DashboardConfig struct {
	Title    string // page title
	ChartCfg ChartConfig
}

// DefaultDashboardConfig returns the defaults for dashboard rendering.
func DefaultDashboardConfig() DashboardConfig {
	return DashboardConfig{
		Title:    "Newsly",
		ChartCfg: DefaultChartConfig(),
	}
}

// ArticleCard is a flattened article for template rendering.
type ArticleCard struct {
	Title          string
	Link           string
	Keyword        string
	SourceTag      string
	RelativeTime   string
	SentimentLabel string
	SentimentClass string
}

// PageData is the template model passed to DashboardTemplate.
type PageData struct {
	Title       string
	Subtitle    string
	GeneratedAt string
	Warnings    []string

	HasFeatured bool
	Main        ArticleCard
	Side        []ArticleCard
	Rest        []ArticleCard

	HasInsights    bool
	KeywordChart   template.HTML
	SentimentChart template.HTML

	TotalArticles int
}

// RenderHTML renders the dashboard page for a search result.
func RenderHTML(result models.SearchResult, summary insights.Summary, cfg DashboardConfig) (string, error) {
	data := buildPageData(result, summary, cfg, time.Now())

	tmpl, err := template.New("dashboard").Parse(DashboardTemplate)
	if err != nil {
		return "", fmt.Errorf("parsing template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template: %w", err)
	}
	return buf.String(), nil
}

func buildPageData(result models.SearchResult, summary insights.Summary, cfg DashboardConfig, now time.Time) PageData {
	if cfg.Title == "" {
		cfg = DefaultDashboardConfig()
	}

	data := PageData{
		Title:         cfg.Title,
		GeneratedAt:   now.UTC().Format("02 Jan 2006, 15:04 UTC"),
		TotalArticles: len(result.Articles),
	}
	if len(result.Keywords) > 0 {
		data.Subtitle = "Results for: " + strings.Join(result.Keywords, ", ")
	}
	for _, w := range result.Warnings {
		data.Warnings = append(data.Warnings, fmt.Sprintf("%s: %s", w.Keyword, w.Message))
	}

	// First three articles get promoted to the featured grid: one main
	// story and two side stories with shortened titles.
	articles := result.Articles
	if len(articles) >= 3 {
		data.HasFeatured = true
		data.Main = toCard(articles[0], false)
		data.Side = []ArticleCard{
			toCard(articles[1], true),
			toCard(articles[2], true),
		}
		articles = articles[3:]
	}
	for _, a := range articles {
		data.Rest = append(data.Rest, toCard(a, false))
	}

	if summary.TotalArticles > 0 {
		data.HasInsights = true
		data.KeywordChart = template.HTML(KeywordChart(summary.TopKeywords, cfg.ChartCfg))
		data.SentimentChart = template.HTML(SentimentChart(summary.Sentiment, cfg.ChartCfg))
	}

	return data
}

func toCard(a models.Article, short bool) ArticleCard {
	title := a.Title
	if short {
		title = utils.Truncate(title, sideTitleLimit)
	}
	return ArticleCard{
		Title:          title,
		Link:           a.Link,
		Keyword:        a.Keyword,
		SourceTag:      a.SourceTag,
		RelativeTime:   a.RelativeTime,
		SentimentLabel: string(a.SentimentLabel),
		SentimentClass: a.SentimentClass,
	}
}

// KeywordChart renders the headline keyword frequencies as a horizontal
// bar chart.
func KeywordChart(counts []insights.KeywordCount, cfg ChartConfig) string {
	items := make([]BarItem, len(counts))
	for i, kc := range counts {
		items[i] = BarItem{Label: kc.Term, Value: float64(kc.Count)}
	}
	if cfg.Title == "" {
		cfg.Title = "Top Keywords in Headlines"
	}
	return HorizontalBarChart(items, cfg)
}

var sentimentColors = map[string]string{
	"Positive": "#34a853",
	"Neutral":  "#9aa0a6",
	"Negative": "#ea4335",
}

// SentimentChart renders the sentiment distribution as a column chart,
// one colored column per sentiment bucket.
func SentimentChart(dist []insights.SentimentCount, cfg ChartConfig) string {
	items := make([]BarItem, len(dist))
	for i, sc := range dist {
		items[i] = BarItem{Label: sc.Label, Value: float64(sc.Count), Color: sentimentColors[sc.Label]}
	}
	if cfg.Title == "" {
		cfg.Title = "Sentiment Distribution"
	}
	return ColumnChart(items, cfg)
}

// RenderText renders the search result as a terminal-friendly feed.
func RenderText(result models.SearchResult, summary insights.Summary) string {
	var sb strings.Builder
	line := strings.Repeat("─", 60)

	if len(result.Keywords) > 0 {
		sb.WriteString(fmt.Sprintf("Results for: %s\n", strings.Join(result.Keywords, ", ")))
	}
	for _, w := range result.Warnings {
		sb.WriteString(fmt.Sprintf("! %s: %s\n", w.Keyword, w.Message))
	}
	sb.WriteString(line + "\n")

	if len(result.Articles) == 0 {
		sb.WriteString("No articles found.\n")
		return sb.String()
	}

	for i, a := range result.Articles {
		sb.WriteString(fmt.Sprintf("%2d. [%s] %s\n", i+1, a.SourceTag, a.Title))
		sb.WriteString(fmt.Sprintf("    %s · %s · %s\n", a.SentimentLabel, a.RelativeTime, a.Keyword))
		sb.WriteString(fmt.Sprintf("    %s\n", a.Link))
	}

	if summary.TotalArticles > 0 && len(summary.TopKeywords) > 0 {
		sb.WriteString(line + "\n")
		sb.WriteString("Top keywords:\n")
		for _, kc := range summary.TopKeywords {
			sb.WriteString(fmt.Sprintf("  %-24s %d\n", kc.Term, kc.Count))
		}
		sb.WriteString("Sentiment:\n")
		for _, sc := range summary.Sentiment {
			sb.WriteString(fmt.Sprintf("  %-10s %d\n", sc.Label, sc.Count))
		}
	}

	return sb.String()
}
