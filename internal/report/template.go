package report

// DashboardTemplate is the HTML template for the news dashboard.
// It is embedded as a Go constant — no external file dependencies.
const DashboardTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Title}}</title>
<style>
  :root {
    --bg: #202124;
    --card: #303134;
    --border: #5f6368;
    --text: #e8eaed;
    --muted: #9aa0a6;
    --accent: #8ab4f8;
    --green: #34a853;
    --red: #ea4335;
  }
  * { margin: 0; padding: 0; box-sizing: border-box; }
  body {
    font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
    color: var(--text);
    background: var(--bg);
    line-height: 1.6;
    max-width: 960px;
    margin: 0 auto;
    padding: 20px;
  }
  h1, h2, h3 { font-weight: 600; }
  h1 { font-size: 1.6rem; }
  h2 { font-size: 1.2rem; margin: 28px 0 12px; padding-bottom: 6px; border-bottom: 2px solid var(--accent); }
  a { color: inherit; text-decoration: none; }
  a:hover { text-decoration: underline; }
  .muted { color: var(--muted); font-size: 0.85rem; }

  .header {
    display: flex;
    justify-content: space-between;
    align-items: flex-start;
    border-bottom: 3px solid var(--accent);
    padding-bottom: 12px;
    margin-bottom: 16px;
  }
  .header h1 { color: var(--accent); }

  .warning {
    background: #3c2f1e;
    border-left: 4px solid #fbbc04;
    color: #fdd663;
    padding: 8px 12px;
    border-radius: 4px;
    margin: 8px 0;
    font-size: 0.9rem;
  }

  .featured-grid {
    display: grid;
    grid-template-columns: 2fr 1fr;
    gap: 16px;
    margin: 16px 0;
  }
  .main-article {
    background: var(--card);
    border: 1px solid var(--border);
    border-radius: 10px;
    padding: 24px;
  }
  .main-article-title { font-size: 1.3rem; font-weight: 600; }
  .side-articles { display: flex; flex-direction: column; gap: 16px; }
  .side-article {
    background: var(--card);
    border: 1px solid var(--border);
    border-radius: 10px;
    padding: 16px;
    flex: 1;
  }
  .side-article-title { font-size: 0.95rem; font-weight: 500; }

  .article-card {
    background: var(--card);
    border: 1px solid var(--border);
    border-radius: 10px;
    padding: 16px 20px;
    margin: 12px 0;
  }
  .article-title { font-size: 1rem; font-weight: 500; }

  .article-meta {
    display: flex;
    align-items: center;
    gap: 8px;
    margin-top: 10px;
    color: var(--muted);
    font-size: 0.85rem;
  }
  .source-icon {
    display: inline-block;
    background: var(--accent);
    color: var(--bg);
    font-size: 0.7rem;
    font-weight: 700;
    padding: 2px 6px;
    border-radius: 4px;
  }
  .article-stats { margin-top: 8px; font-size: 0.85rem; }
  .sentiment-positive { color: var(--green); font-weight: 600; }
  .sentiment-negative { color: var(--red); font-weight: 600; }
  .sentiment-neutral { color: var(--muted); font-weight: 600; }

  .insights-grid {
    display: grid;
    grid-template-columns: 1fr 1fr;
    gap: 16px;
    margin: 16px 0;
  }
  .chart-container {
    background: var(--card);
    border: 1px solid var(--border);
    border-radius: 10px;
    padding: 12px;
    overflow-x: auto;
  }
  .chart-container svg { max-width: 100%; height: auto; }

  .footer {
    margin-top: 32px;
    padding-top: 12px;
    border-top: 2px solid var(--border);
    font-size: 0.8rem;
    color: var(--muted);
    text-align: center;
  }

  @media (max-width: 720px) {
    .featured-grid, .insights-grid { grid-template-columns: 1fr; }
  }
</style>
</head>
<body>

<div class="header">
  <div>
    <h1>{{.Title}}</h1>
    <p class="muted">{{.Subtitle}}</p>
  </div>
  <div class="muted">{{.GeneratedAt}}</div>
</div>

{{range .Warnings}}
<div class="warning">{{.}}</div>
{{end}}

{{if .HasFeatured}}
<div class="featured-grid">
  <div class="main-article">
    <a href="{{.Main.Link}}" class="main-article-title" target="_blank">{{.Main.Title}}</a>
    <div class="article-meta">
      <span class="source-icon">{{.Main.SourceTag}}</span>
      <span>Keyword: {{.Main.Keyword}}</span>
      <span>&#8226;</span>
      <span>{{.Main.RelativeTime}}</span>
    </div>
    <div class="article-stats">
      <span class="{{.Main.SentimentClass}}">{{.Main.SentimentLabel}}</span>
    </div>
  </div>
  <div class="side-articles">
    {{range .Side}}
    <div class="side-article">
      <a href="{{.Link}}" class="side-article-title" target="_blank">{{.Title}}</a>
      <div class="article-meta">
        <span class="source-icon">{{.SourceTag}}</span>
        <span>{{.Keyword}}</span>
        <span>&#8226;</span>
        <span>{{.RelativeTime}}</span>
      </div>
      <div class="article-stats">
        <span class="{{.SentimentClass}}">{{.SentimentLabel}}</span>
      </div>
    </div>
    {{end}}
  </div>
</div>
{{end}}

{{range .Rest}}
<div class="article-card">
  <a href="{{.Link}}" class="article-title" target="_blank">{{.Title}}</a>
  <div class="article-meta">
    <span class="source-icon">{{.SourceTag}}</span>
    <span>Keyword: {{.Keyword}}</span>
    <span>&#8226;</span>
    <span>{{.RelativeTime}}</span>
  </div>
  <div class="article-stats">
    <span class="{{.SentimentClass}}">{{.SentimentLabel}}</span>
  </div>
</div>
{{end}}

{{if .HasInsights}}
<h2>Insights from Today's Headlines</h2>
<div class="insights-grid">
  <div class="chart-container">{{.KeywordChart}}</div>
  <div class="chart-container">{{.SentimentChart}}</div>
</div>
{{end}}

<div class="footer">
  <p>{{.TotalArticles}} articles &#183; Generated {{.GeneratedAt}}</p>
</div>

</body>
</html>`
