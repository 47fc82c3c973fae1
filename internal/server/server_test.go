package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/rezonia/vatin-checker/internal/metrics"
	"github.com/rezonia/vatin-checker/internal/server"
)

func newTestServer() *server.Server {
	config := &server.Config{
		Address:        ":8080",
		Debug:          true,
		MetricsEnabled: true,
		MaxBatchSize:   5,
	}
	return server.NewServer(config)
}

func doJSON(t testing.TB, srv *server.Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer()

	w := doJSON(t, srv, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.Equal(t, "ok", response["status"])
	assert.NotEmpty(t, response["time"])
	assert.NotEmpty(t, w.Header().Get(server.RequestIDHeader))
}

func TestRequestID_Propagated(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(server.RequestIDHeader, "client-id-1")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, "client-id-1", w.Header().Get(server.RequestIDHeader))
}

func TestValidateEndpoint(t *testing.T) {
	srv := newTestServer()

	tests := []struct {
		name     string
		vatin    string
		valid    bool
		country  string
		hasRule  bool
		syntax   bool
		format   string
		message  string
		examples bool
	}{
		{"valid austrian", "ATU13585627", true, "AT", true, false, "default", "", false},
		{"invalid austrian", "ATU13585628", false, "AT", true, false, "", "Austria", true},
		{"irish new style", "IE3628739AI", true, "IE", true, false, "new_style_9", "", false},
		{"greek alias", "GR123456789", true, "EL", true, true, "default", "", false},
		{"unknown country", "US123456", true, "", false, false, "", "", false},
		{"short", "DE", true, "", false, false, "", "", false},
		{"empty", "", true, "", false, false, "", "", false},
		{"gb government", "GBGD500", false, "GB", true, false, "", "United Kingdom", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, srv, http.MethodPost, "/api/v1/vatin/validate", fmt.Sprintf(`{"vatin":%q}`, tt.vatin))
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())

			var resp server.ValidationResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

			assert.Equal(t, tt.vatin, resp.VATIN)
			assert.Equal(t, tt.valid, resp.Valid)
			assert.Equal(t, tt.country, resp.Country)
			assert.Equal(t, tt.hasRule, resp.HasValidator)
			assert.Equal(t, tt.syntax, resp.SyntaxOnly)
			assert.Equal(t, tt.format, resp.Format)
			if tt.message == "" {
				assert.Empty(t, resp.Message)
			} else {
				assert.Contains(t, resp.Message, tt.message)
			}
			assert.Equal(t, tt.examples, len(resp.Examples) > 0)
		})
	}
}

func TestValidateEndpoint_MissingVATIN(t *testing.T) {
	srv := newTestServer()

	for _, body := range []string{`{}`, `{"vatin":null}`, `{"other":"x"}`} {
		w := doJSON(t, srv, http.MethodPost, "/api/v1/vatin/validate", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body %s", body)

		var resp server.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "vatin is required", resp.Error)
	}
}

func TestValidateEndpoint_InvalidBody(t *testing.T) {
	srv := newTestServer()

	w := doJSON(t, srv, http.MethodPost, "/api/v1/vatin/validate", `{"vatin":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, srv, http.MethodPost, "/api/v1/vatin/validate", `{"vatin":42}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestValidateEndpoint_DisplayLanguage(t *testing.T) {
	srv := server.NewServer(&server.Config{DisplayLanguage: language.German})

	w := doJSON(t, srv, http.MethodPost, "/api/v1/vatin/validate", `{"vatin":"ATU1"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp server.ValidationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Message, "Österreich")
}

func TestValidateBatchEndpoint(t *testing.T) {
	srv := newTestServer()

	w := doJSON(t, srv, http.MethodPost, "/api/v1/vatin/validate/batch",
		`{"vatins":["DE136695976","DE136695977","XX1","NL004849255B01"]}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp server.BatchValidateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	require.Len(t, resp.Results, 4)
	assert.Equal(t, 3, resp.Valid)
	assert.Equal(t, 1, resp.Invalid)
	assert.Equal(t, "DE136695976", resp.Results[0].VATIN)
	assert.False(t, resp.Results[1].Valid)
	assert.Equal(t, "NL004849255B01", resp.Results[3].VATIN)
}

func TestValidateBatchEndpoint_Limits(t *testing.T) {
	srv := newTestServer()

	w := doJSON(t, srv, http.MethodPost, "/api/v1/vatin/validate/batch", `{"vatins":[]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, srv, http.MethodPost, "/api/v1/vatin/validate/batch", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, srv, http.MethodPost, "/api/v1/vatin/validate/batch", `{"vatins":["a","b","c","d","e","f"]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCountriesEndpoint(t *testing.T) {
	srv := newTestServer()

	w := doJSON(t, srv, http.MethodGet, "/api/v1/countries", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp []server.CountryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 29)

	byCode := make(map[string]server.CountryResponse)
	for _, c := range resp {
		byCode[c.Code] = c
	}
	assert.Equal(t, "EL", byCode["GR"].Country)
	assert.Equal(t, "Greece", byCode["EL"].Name)
	assert.True(t, byCode["FR"].SyntaxOnly)
	assert.Equal(t, []string{"legal_person", "temporary_taxpayer"}, byCode["LT"].Formats)
}

func TestStructuresEndpoints(t *testing.T) {
	srv := newTestServer()

	w := doJSON(t, srv, http.MethodGet, "/api/v1/structures", "")
	require.Equal(t, http.StatusOK, w.Code)
	var all []server.StructureResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &all))
	assert.Len(t, all, 30)

	w = doJSON(t, srv, http.MethodGet, "/api/v1/structures/el", "")
	require.Equal(t, http.StatusOK, w.Code)
	var st server.StructureResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &st))
	assert.Equal(t, "GR", st.Country)
	assert.Equal(t, "EL", st.CountryCode)
	assert.Equal(t, "Greece", st.Name)
	assert.NotEmpty(t, st.Examples)

	w = doJSON(t, srv, http.MethodGet, "/api/v1/structures/US", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, srv, http.MethodPost, "/api/v1/structures/match", `{"vatin":"CHE116281710TVA"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &st))
	assert.Equal(t, "CH", st.Country)

	w = doJSON(t, srv, http.MethodPost, "/api/v1/structures/match", `{"vatin":"CHE1"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, srv, http.MethodPost, "/api/v1/structures/match", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRatesEndpoints(t *testing.T) {
	srv := newTestServer()

	w := doJSON(t, srv, http.MethodGet, "/api/v1/rates?country=gr", "")
	require.Equal(t, http.StatusOK, w.Code)
	var items []server.RateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 3)
	assert.Equal(t, "el-standard", items[0].ID)
	assert.Equal(t, "S", items[0].TaxCategory)

	w = doJSON(t, srv, http.MethodGet, "/api/v1/rates/lu-parking", "")
	require.Equal(t, http.StatusOK, w.Code)
	var item server.RateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))
	assert.Equal(t, "AA", item.TaxCategory)
	assert.True(t, item.Percentage.Equal(decimal.NewFromInt(14)))

	w = doJSON(t, srv, http.MethodGet, "/api/v1/rates/xx-standard", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "The specified tax rate is invalid.")
}

func TestCalculateEndpoint(t *testing.T) {
	srv := newTestServer()

	w := doJSON(t, srv, http.MethodPost, "/api/v1/rates/fr-reduced-2/calculate", `{"amount":"100"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp server.CalculateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.VAT.Equal(decimal.RequireFromString("5.5")))
	assert.True(t, resp.Gross.Equal(decimal.RequireFromString("105.5")))

	w = doJSON(t, srv, http.MethodPost, "/api/v1/rates/fr-reduced-2/calculate", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, srv, http.MethodPost, "/api/v1/rates/nope/calculate", `{"amount":"1"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer()

	doJSON(t, srv, http.MethodPost, "/api/v1/vatin/validate", `{"vatin":"DE136695977"}`)
	doJSON(t, srv, http.MethodPost, "/api/v1/vatin/validate", `{"vatin":"US1"}`)

	m := srv.Metrics()
	require.NotNil(t, m)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Validations.WithLabelValues("DE", metrics.ResultInvalid)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Validations.WithLabelValues(metrics.UnknownCountry, metrics.ResultValid)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.StructureLookups.WithLabelValues(metrics.LookupPrefix, "true")))

	w := doJSON(t, srv, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "vatin_validations_total")
	assert.Contains(t, w.Body.String(), `route="/api/v1/vatin/validate"`)
}

func TestMetricsDisabled(t *testing.T) {
	srv := server.NewServer(&server.Config{})
	assert.Nil(t, srv.Metrics())

	w := doJSON(t, srv, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRun_GracefulShutdown(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	srv := server.NewServer(&server.Config{
		Address:      addr,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/health")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func BenchmarkValidate(b *testing.B) {
	srv := newTestServer()
	body := []byte(`{"vatin":"DE136695976"}`)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/vatin/validate", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, req)
	}
}

func BenchmarkHealth(b *testing.B) {
	srv := newTestServer()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, req)
	}
}
