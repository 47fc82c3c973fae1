package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rezonia/vatin-checker/internal/metrics"
	"github.com/rezonia/vatin-checker/internal/model"
	"github.com/rezonia/vatin-checker/internal/rates"
	"github.com/rezonia/vatin-checker/internal/structure"
)

func (s *Server) handleValidate(c *gin.Context) {
	var req ValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Details: err.Error()})
		return
	}

	if _, err := s.validator.ValidatePtr(req.VATIN); err != nil {
		if errors.Is(err, model.ErrInvalidArgument) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "vatin is required", Details: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, s.describe(*req.VATIN))
}

func (s *Server) handleValidateBatch(c *gin.Context) {
	var req BatchValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Details: err.Error()})
		return
	}
	if len(req.VATINs) > s.config.MaxBatchSize {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "too many vatins in batch"})
		return
	}

	resp := BatchValidateResponse{Results: make([]ValidationResponse, 0, len(req.VATINs))}
	for _, vatin := range req.VATINs {
		r := s.describe(vatin)
		if r.Valid {
			resp.Valid++
		} else {
			resp.Invalid++
		}
		resp.Results = append(resp.Results, r)
	}
	c.JSON(http.StatusOK, resp)
}

// describe validates vatin and collects what the registry and catalog know about it
func (s *Server) describe(vatin string) ValidationResponse {
	registry := s.validator.Registry()
	result := s.validator.Validate(vatin)

	resp := ValidationResponse{
		VATIN:        vatin,
		Valid:        result.Valid,
		HasValidator: registry.HasValidator(vatin),
		Message:      result.Message(),
	}
	country := metrics.UnknownCountry
	if resp.HasValidator {
		rule, _ := registry.Rule(vatin[:2])
		resp.Country = rule.Country()
		resp.SyntaxOnly = rule.SyntaxOnly()
		country = rule.Country()
		if format, ok := registry.MatchedFormat(vatin); ok {
			resp.Format = format
		}
	}
	if result.Structure != nil {
		resp.Examples = result.Structure.Examples()
	}
	if !result.Valid {
		s.log.Debug("vatin rejected", "country", country, "hint", result.Structure != nil)
	}

	if s.metrics != nil {
		s.metrics.RecordValidation(country, result.Valid)
		if !result.Valid {
			s.metrics.RecordLookup(metrics.LookupPrefix, result.Structure != nil)
		}
	}
	return resp
}

func (s *Server) handleCountries(c *gin.Context) {
	registry := s.validator.Registry()
	codes := registry.Countries()

	resp := make([]CountryResponse, 0, len(codes))
	for _, code := range codes {
		rule, _ := registry.Rule(code)
		resp = append(resp, CountryResponse{
			Code:       code,
			Country:    rule.Country(),
			Name:       s.validator.CountryName(regionOf(code)),
			SyntaxOnly: rule.SyntaxOnly(),
			Formats:    rule.Formats(),
		})
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleStructures(c *gin.Context) {
	all := s.validator.Catalog().All()
	resp := make([]StructureResponse, 0, len(all))
	for _, st := range all {
		resp = append(resp, s.structureResponse(st))
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleStructureByPrefix(c *gin.Context) {
	prefix := c.Param("prefix")
	st, ok := s.validator.Catalog().FindByCountryPrefix(prefix)
	if s.metrics != nil {
		s.metrics.RecordLookup(metrics.LookupPrefix, ok)
	}
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "no structure for prefix", Details: prefix})
		return
	}
	c.JSON(http.StatusOK, s.structureResponse(st))
}

func (s *Server) handleStructureMatch(c *gin.Context) {
	var req MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Details: err.Error()})
		return
	}

	st, ok := s.validator.Catalog().FindByFullMatch(req.VATIN)
	if s.metrics != nil {
		s.metrics.RecordLookup(metrics.LookupFullMatch, ok)
	}
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "no structure matches", Details: req.VATIN})
		return
	}
	c.JSON(http.StatusOK, s.structureResponse(st))
}

func (s *Server) handleRates(c *gin.Context) {
	catalog := s.validator.Rates()

	items := catalog.All()
	if country := c.Query("country"); country != "" {
		items = catalog.ForCountry(country)
	}

	resp := make([]RateResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, rateResponse(item))
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleRate(c *gin.Context) {
	item, ok := s.validator.Rates().Lookup(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: s.validator.ValidateItem(c.Param("id")).Message()})
		return
	}
	c.JSON(http.StatusOK, rateResponse(item))
}

func (s *Server) handleCalculate(c *gin.Context) {
	item, ok := s.validator.Rates().Lookup(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: s.validator.ValidateItem(c.Param("id")).Message()})
		return
	}

	var req CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Details: err.Error()})
		return
	}

	net := *req.Amount
	c.JSON(http.StatusOK, CalculateResponse{
		Rate:  rateResponse(item),
		Net:   net,
		VAT:   item.TaxOn(net),
		Gross: item.GrossOf(net),
	})
}

func (s *Server) structureResponse(st *structure.Structure) StructureResponse {
	return StructureResponse{
		Country:     st.Country(),
		CountryCode: st.CountryCode(),
		Name:        s.validator.CountryName(st.Country()),
		Pattern:     st.Pattern(),
		Examples:    st.Examples(),
	}
}

func rateResponse(item rates.Item) RateResponse {
	return RateResponse{
		ID:          item.ID,
		Country:     item.Country,
		Category:    string(item.Category),
		TaxCategory: string(item.Category.TaxCategory()),
		Percentage:  item.Percentage,
	}
}

// regionOf maps VATIN prefixes that are not ISO 3166-1 regions
func regionOf(code string) string {
	if code == "EL" {
		return "GR"
	}
	return code
}
