package llm

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"
)

type fakeBackend struct {
	name      string
	available bool
	out       string
	err       error
	calls     int
}

func (f *fakeBackend) Name() string    { return f.name }
func (f *fakeBackend) Available() bool { return f.available }

func (f *fakeBackend) Generate(ctx context.Context, prompt string) (string, error) {
	f.calls++
	return f.out, f.err
}

func item(title, source, content string) SourcedContent {
	return SourcedContent{Title: title, Source: source, Content: content}
}

func TestSummarizeEmptyInput(t *testing.T) {
	s := NewSummarizer(&fakeBackend{name: "local", available: true, out: "report"})

	got := s.Summarize(t.Context(), "ACME", nil)

	assert.Equal(t, msgNoArticles, got)
}

func TestSummarizeAllDenylisted(t *testing.T) {
	primary := &fakeBackend{name: "local", available: true, out: "report"}
	s := NewSummarizer(primary)

	got := s.Summarize(t.Context(), "ACME", []SourcedContent{
		item("Zacks Rank upgrade", "Google News", "body text"),
		item("Earnings recap", "Zacks Investment Research", "body text"),
		item("Market wrap", "Google News", "Per Zacks research, shares look strong..."),
	})

	assert.Equal(t, msgNoValidSources, got)
	assert.Equal(t, 0, primary.calls)
}

func TestSummarizePrimarySuccess(t *testing.T) {
	primary := &fakeBackend{name: "local", available: true, out: "  local report  "}
	cloud := &fakeBackend{name: "gemini", available: true, out: "cloud report"}
	s := NewSummarizer(primary, cloud)

	got := s.Summarize(t.Context(), "ACME", []SourcedContent{
		item("Earnings beat", "Yahoo Finance", "Revenue rose 18 percent."),
	})

	assert.Equal(t, "local report", got)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 0, cloud.calls)
}

func TestSummarizeFallsBackOnPrimaryError(t *testing.T) {
	primary := &fakeBackend{name: "local", available: true, err: errors.New("connection refused")}
	cloud := &fakeBackend{name: "gemini", available: true, out: "cloud report"}
	s := NewSummarizer(primary, cloud)

	got := s.Summarize(t.Context(), "ACME", []SourcedContent{
		item("Earnings beat", "Yahoo Finance", "Revenue rose 18 percent."),
	})

	assert.Equal(t, "cloud report", got)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 1, cloud.calls)
}

func TestSummarizeFallsBackOnEmptyPrimaryOutput(t *testing.T) {
	primary := &fakeBackend{name: "local", available: true, out: "   "}
	cloud := &fakeBackend{name: "gemini", available: true, out: "cloud report"}
	s := NewSummarizer(primary, cloud)

	got := s.Summarize(t.Context(), "ACME", []SourcedContent{
		item("Earnings beat", "Yahoo Finance", "Revenue rose 18 percent."),
	})

	assert.Equal(t, "cloud report", got)
}

func TestSummarizeNoCloudCredential(t *testing.T) {
	primary := &fakeBackend{name: "local", available: true, err: errors.New("connection refused")}
	cloud := &fakeBackend{name: "gemini", available: false}
	s := NewSummarizer(primary, cloud)

	got := s.Summarize(t.Context(), "ACME", []SourcedContent{
		item("Earnings beat", "Yahoo Finance", "Revenue rose 18 percent."),
		item("Guidance raised", "Reuters", "Outlook improved."),
	})

	assert.Equal(t, true, strings.Contains(got, "Unable to generate summary"))
	assert.Equal(t, true, strings.Contains(got, "ACME"))
	assert.Equal(t, true, strings.Contains(got, "2 articles found"))
	assert.Equal(t, 0, cloud.calls)
}

func TestSummarizeAllBackendsFail(t *testing.T) {
	primary := &fakeBackend{name: "local", available: true, err: errors.New("connection refused")}
	cloud := &fakeBackend{name: "gemini", available: true, err: errors.New("quota exceeded")}
	s := NewSummarizer(primary, cloud)

	got := s.Summarize(t.Context(), "ACME", []SourcedContent{
		item("Earnings beat", "Yahoo Finance", "Revenue rose 18 percent."),
	})

	assert.Equal(t, true, strings.Contains(got, "Error generating summary"))
	assert.Equal(t, true, strings.Contains(got, "quota exceeded"))
	assert.Equal(t, true, strings.Contains(got, "failed"))
}

func TestCombineArticlesTruncatesContent(t *testing.T) {
	long := strings.Repeat("a", maxContentChars+500)

	combined, valid := combineArticles([]SourcedContent{
		item("Long read", "Reuters", long),
	})

	assert.Equal(t, 1, valid)
	if len(combined) > maxContentChars+200 {
		t.Fatalf("combined text not truncated: %d chars", len(combined))
	}
}

func TestCombineArticlesFillsMissingFields(t *testing.T) {
	combined, valid := combineArticles([]SourcedContent{
		{Content: "some body"},
	})

	assert.Equal(t, 1, valid)
	assert.Equal(t, true, strings.Contains(combined, "Unknown Source"))
	assert.Equal(t, true, strings.Contains(combined, "No Title"))
}
