package repository

import (
	"encoding/json"
	"log/slog"
	"os"
	"slices"
	"sync"
)

// defaultPortfolio seeds a fresh install so the UI has something to show.
var defaultPortfolio = []string{"DHI", "BUR"}

// PortfolioRepository persists the watched ticker list as a JSON flat file.
type PortfolioRepository struct {
	mu      sync.Mutex
	path    string
	tickers []string
}

// NewPortfolioRepository loads the portfolio from path, falling back to
// the default list when the file is missing or unreadable.
func NewPortfolioRepository(path string) *PortfolioRepository {
	r := &PortfolioRepository{path: path}
	r.tickers = r.load()
	return r
}

func (r *PortfolioRepository) load() []string {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Error("error loading portfolio", "path", r.path, "error", err)
		}
		return slices.Clone(defaultPortfolio)
	}

	var tickers []string
	if err := json.Unmarshal(raw, &tickers); err != nil {
		slog.Error("error parsing portfolio", "path", r.path, "error", err)
		return slices.Clone(defaultPortfolio)
	}
	return tickers
}

func (r *PortfolioRepository) save() {
	raw, err := json.Marshal(r.tickers)
	if err != nil {
		slog.Error("error encoding portfolio", "error", err)
		return
	}
	if err := os.WriteFile(r.path, raw, 0o644); err != nil {
		slog.Error("error saving portfolio", "path", r.path, "error", err)
	}
}

// Load returns the current ticker list.
func (r *PortfolioRepository) Load() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.tickers)
}

// Add appends a ticker if not already present. Reports whether it was
// added.
func (r *PortfolioRepository) Add(ticker string) ([]string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if slices.Contains(r.tickers, ticker) {
		return slices.Clone(r.tickers), false
	}

	r.tickers = append(r.tickers, ticker)
	r.save()
	return slices.Clone(r.tickers), true
}

// Remove deletes a ticker. Reports whether it was present.
func (r *PortfolioRepository) Remove(ticker string) ([]string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := slices.Index(r.tickers, ticker)
	if i < 0 {
		return slices.Clone(r.tickers), false
	}

	r.tickers = slices.Delete(r.tickers, i, i+1)
	r.save()
	return slices.Clone(r.tickers), true
}
