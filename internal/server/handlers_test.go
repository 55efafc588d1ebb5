package server

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfeld/parity-pulse/internal/brief"
	"github.com/mfeld/parity-pulse/internal/calculator"
	"github.com/mfeld/parity-pulse/internal/classifier"
	"github.com/mfeld/parity-pulse/internal/model"
	"github.com/mfeld/parity-pulse/internal/refdata"
)

// newTestRouter builds a router with no capability client configured, so
// classification uses catalog matching and briefs return placeholders.
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := refdata.NewStore()
	srv := New(
		store,
		classifier.New(nil, store, logger),
		calculator.New(store),
		brief.NewGenerator(nil, logger),
		logger,
	)
	return srv.Router()
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCalculateEndpoint(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodPost, "/api/calculate", `{"items":["rent","eggs"]}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp model.BasketResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Len(t, resp.Results, len(refdata.NewStore().Countries()))
	assert.True(t, sort.SliceIsSorted(resp.Results, func(i, j int) bool {
		return resp.Results[i].ShadowPriceIndex < resp.Results[j].ShadowPriceIndex
	}))

	require.Len(t, resp.MappedCommodities, 2)
	assert.Equal(t, "rent", resp.MappedCommodities[0].Symbol)
	assert.Equal(t, "eggs", resp.MappedCommodities[1].Symbol)

	require.Len(t, resp.Ticker, 2)
	assert.Equal(t, "RENT", resp.Ticker[0].Symbol)
}

func TestCalculateEndpointOptions(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodPost, "/api/calculate",
		`{"items":["rent"],"location":{"lat":46.8,"lng":8.2},"tariffSensitivity":25,"wageType":"minimum"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp model.BasketResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	// The home country is a target like any other, so its own row still
	// carries the tariff multiplier: importDependency(1.24)=0.2 gives
	// 1 + 0.25*0.2 = 1.05 on top of the otherwise neutral home parity.
	for _, r := range resp.Results {
		if r.CountryCode == "CHE" {
			assert.InDelta(t, 1.05, r.ShadowPriceIndex, 1e-9)
			return
		}
	}
	t.Fatal("CHE missing from results")
}

func TestCalculateEndpointValidation(t *testing.T) {
	router := newTestRouter()

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"items":`},
		{"missing items", `{}`},
		{"empty items", `{"items":[]}`},
		{"empty item string", `{"items":[""]}`},
		{"too many items", `{"items":["a","b","c","d","e","f"]}`},
		{"negative tariff", `{"items":["rent"],"tariffSensitivity":-1}`},
		{"tariff above fifty", `{"items":["rent"],"tariffSensitivity":51}`},
		{"unknown wage type", `{"items":["rent"],"wageType":"executive"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, router, http.MethodPost, "/api/calculate", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)

			var resp map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp["error"])
		})
	}
}

func TestCountriesEndpoint(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodGet, "/api/countries", "")
	require.Equal(t, http.StatusOK, w.Code)

	var countries []countryInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &countries))

	require.NotEmpty(t, countries)
	assert.Equal(t, "USA", countries[0].Code)
	assert.Equal(t, 1.0, countries[0].PPPFactor)
	for _, c := range countries {
		assert.Len(t, c.Code, 3)
		assert.NotEmpty(t, c.Name)
	}
}

func TestTickerEndpoint(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodGet, "/api/ticker", "")
	require.Equal(t, http.StatusOK, w.Code)

	var items []model.TickerItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))

	require.Len(t, items, 8)
	assert.Equal(t, "WTI", items[0].Symbol)
	for _, item := range items {
		assert.Positive(t, item.Price)
	}
}

func TestConsultantBriefEndpoint(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodPost, "/api/consultant-brief",
		`{"countryCode":"CHE","countryName":"Switzerland","shadowPriceIndex":1.24,"macroStability":"Moderate"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var b model.ConsultantBrief
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &b))
	assert.Equal(t, brief.Placeholder, b)
}

func TestConsultantBriefEndpointRejectsBadJSON(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodPost, "/api/consultant-brief", `{"shadowPriceIndex":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthz(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
