package handler

type TickerRequest struct {
	Ticker string `json:"ticker" binding:"required"`
}

type PortfolioResponse struct {
	Message   string   `json:"message,omitempty"`
	Portfolio []string `json:"portfolio"`
}
