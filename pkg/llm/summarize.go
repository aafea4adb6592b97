package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/DevRobi/portfolio-news/pkg/news"
)

// maxContentChars bounds each article body before it enters the prompt.
const maxContentChars = 10000

const (
	msgNoArticles     = "No news articles found to summarize."
	msgNoValidSources = "No valid news articles found (filtered out low quality sources)."
)

const reportPrompt = `You are a senior financial analyst preparing a comprehensive market intelligence report for %s. This is NOT a brief summary - this is a detailed, thorough analysis report.

TODAY'S DATE: %s
Prioritize news from the last 7 days. If an article is older than 30 days, note it as historical context or ignore it if irrelevant.

STRICT CONSTRAINTS:
1. NO ANALYST OPINIONS: no recommendations, price targets, buy/sell ratings or "upside potential". Business fundamentals only.
2. NO SOURCES IN TEXT: do not say "According to...". Integrate facts directly.
3. NO CONTENT FROM ZACKS INVESTMENT RESEARCH. If any data seems to come from Zacks, ignore it.
4. Stay focused on %s. Competitors may be mentioned for context only.

Adopt the persona of a rational, value-oriented investor. Focus on materially useful information: cash flows, competitive advantages, risks, legal outcomes and strategic shifts. Filter out the noise and present only the signal.

Write a single, cohesive, detailed narrative of the news from the last 30 days, at least 50 sentences, in professional flowing prose with no bullet points. Always include specific numbers, dates, percentages and dollar amounts where available.

Here is the news content to analyze:
%s

Begin your detailed report now:`

// Summarizer runs an ordered chain of generation backends. The first entry
// is the local tier and is always attempted; later entries are cloud tiers
// gated on their credentials. Summarize always returns a string and never
// an error: when every tier is down the result is a fixed, human-readable
// degraded message.
type Summarizer struct {
	backends []Backend
}

func NewSummarizer(backends ...Backend) *Summarizer {
	return &Summarizer{backends: backends}
}

// Summarize builds a report prompt from the article bodies and works down
// the backend chain until one produces text.
func (s *Summarizer) Summarize(ctx context.Context, ticker string, items []SourcedContent) string {
	if len(items) == 0 {
		return msgNoArticles
	}

	combined, valid := combineArticles(items)
	if valid == 0 {
		return msgNoValidSources
	}

	prompt := fmt.Sprintf(reportPrompt, ticker,
		time.Now().Format("January 2, 2006"), ticker, combined)

	attempts := 0
	var lastErr error

	for _, backend := range s.backends {
		if !backend.Available() {
			continue
		}
		attempts++

		slog.Info("attempting summary generation", "backend", backend.Name(), "ticker", ticker)

		out, err := backend.Generate(ctx, prompt)
		if err == nil {
			out = strings.TrimSpace(out)
			if out != "" {
				slog.Info("summary generated", "backend", backend.Name(), "ticker", ticker)
				return out
			}
			err = fmt.Errorf("%s returned empty response", backend.Name())
		}

		slog.Warn("summary backend failed, falling back", "backend", backend.Name(), "ticker", ticker, "error", err)
		lastErr = err
	}

	if attempts <= 1 {
		// The local tier failed and no cloud credential is configured.
		return unavailableMessage(ticker, len(items))
	}

	return fmt.Sprintf("Error generating summary: %v. Both local and cloud models failed.", lastErr)
}

func unavailableMessage(ticker string, articleCount int) string {
	return fmt.Sprintf(`**Note: Unable to generate summary.**

The local model is not available, and no cloud API key was found.

Please either:
1. Start the Ollama server: `+"`ollama serve`"+`
2. Set GEMINI_API_KEY or ANTHROPIC_API_KEY in the environment

Recent news for %s suggests active market movements. %d articles found. Please review the sources below.`, ticker, articleCount)
}

// combineArticles renders the prompt body. A denylisted brand can reappear
// through syndication on an otherwise clean source, so the denylist runs
// again over the assembled fields.
func combineArticles(items []SourcedContent) (string, int) {
	var sb strings.Builder
	valid := 0

	for _, item := range items {
		source := item.Source
		if source == "" {
			source = "Unknown Source"
		}
		title := item.Title
		if title == "" {
			title = "No Title"
		}

		content := item.Content
		if len(content) > maxContentChars {
			content = content[:maxContentChars]
		}

		prefix := content
		if len(prefix) > 200 {
			prefix = prefix[:200]
		}
		if news.Denied(source, title, prefix) {
			slog.Info("skipping denylisted article in summarizer", "title", title)
			continue
		}

		fmt.Fprintf(&sb, "Source: %s\nTitle: %s\nContent:\n%s\n\n---\n\n", source, title, content)
		valid++
	}

	return sb.String(), valid
}
