package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mfeld/parity-pulse/internal/model"
	"github.com/mfeld/parity-pulse/internal/ticker"
)

// handleCalculate runs the full pipeline: classify, calculate, synthesize.
// Validation failures are the caller's fault (400); anything past binding
// is recovered inside the core and cannot 500 short of a panic.
func (s *Server) handleCalculate(c *gin.Context) {
	var req model.BasketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.WageType == "" {
		req.WageType = model.WageProfessional
	}
	if !req.WageType.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "wageType must be \"professional\" or \"minimum\""})
		return
	}

	items := s.classifier.Classify(c.Request.Context(), req.Items)

	// Calculator and ticker both only read the classified items, so they
	// can run in parallel once classification completes.
	resultsCh := make(chan []model.CountryResult, 1)
	go func() {
		resultsCh <- s.calc.Calculate(items, req.Location, req.TariffSensitivity, req.WageType)
	}()
	ticks := ticker.Synthesize(items)
	results := <-resultsCh

	c.JSON(http.StatusOK, model.BasketResponse{
		Results:           results,
		Ticker:            ticks,
		MappedCommodities: items,
	})
}

// countryInfo is the public projection of a reference country.
type countryInfo struct {
	Code      string  `json:"code"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	PPPFactor float64 `json:"pppFactor"`
}

func (s *Server) handleCountries(c *gin.Context) {
	countries := s.store.Countries()
	out := make([]countryInfo, len(countries))
	for i, country := range countries {
		out[i] = countryInfo{
			Code:      country.Code,
			Name:      country.Name,
			Latitude:  country.Latitude,
			Longitude: country.Longitude,
			PPPFactor: country.PPPFactor,
		}
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleTicker(c *gin.Context) {
	c.JSON(http.StatusOK, ticker.DefaultFeed())
}

// handleConsultantBrief returns narrative analysis for one country result.
// It never surfaces a hard failure: generation degrades to a placeholder
// body with a 200 status.
func (s *Server) handleConsultantBrief(c *gin.Context) {
	var result model.CountryResult
	if err := c.ShouldBindJSON(&result); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, s.briefs.Generate(c.Request.Context(), result))
}
