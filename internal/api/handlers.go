package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/PCKoper/heatcurve/internal/heatmodel"
)

func (s *Server) RootHandler(c *gin.Context) {
	analysis, err := s.a.Analyze()
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}

	config := s.a.GetConfig()
	charts, err := AnalysisToCharts(analysis, heatmodel.TableForEra(analysis.DistributionEra), config.HoursForHeatingADay)
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}

	_, err = c.Writer.Write(charts)
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
}

func (s *Server) AnalysisHandler(c *gin.Context) {
	analysis, err := s.a.Analyze()
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, analysis)
}

func (s *Server) ReportHandler(c *gin.Context) {
	analysis, err := s.a.Analyze()
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}

	c.String(http.StatusOK, analysis.Report())
}

func (s *Server) SamplesHandler(c *gin.Context) {
	samples, err := s.dc.Samples()
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, samples)
}

func (s *Server) UpdateHandler(c *gin.Context) {
	err := s.Update()
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
}

func (s *Server) ConfigHandler(c *gin.Context) {
	config := s.a.GetConfig()

	c.JSON(http.StatusOK, config)
}

func (s *Server) SetConfigHandler(c *gin.Context) {
	var config heatmodel.Config
	err := c.ShouldBindJSON(&config)
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}

	s.a.SetConfig(config)
}

func (s *Server) SetTemperatureOfInterest(c *gin.Context) {
	var value struct {
		Value float64 `json:"value"`
	}

	err := c.ShouldBindJSON(&value)
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}

	config := s.a.GetConfig()
	config.OutsideTemperatureOfInterest = value.Value

	s.a.SetConfig(*config)
}

func (s *Server) SetCostPerKwh(c *gin.Context) {
	var value struct {
		Value float64 `json:"value"`
	}

	err := c.ShouldBindJSON(&value)
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}

	config := s.a.GetConfig()
	config.CostPerKwh = value.Value

	s.a.SetConfig(*config)
}

func (s *Server) SetDistributionEra(c *gin.Context) {
	var value struct {
		Value string `json:"value"`
	}

	err := c.ShouldBindJSON(&value)
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}

	config := s.a.GetConfig()
	config.DistributionEra = value.Value

	s.a.SetConfig(*config)
}

func (s *Server) SetEstimateGains(c *gin.Context) {
	var value struct {
		Value bool `json:"value"`
	}

	err := c.ShouldBindJSON(&value)
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}

	config := s.a.GetConfig()
	config.EstimateGains = value.Value

	s.a.SetConfig(*config)
}

func (s *Server) SetWindow(c *gin.Context) {
	var value struct {
		Start string `json:"start"`
		End   string `json:"end"`
	}

	err := c.ShouldBindJSON(&value)
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}

	start, err := time.Parse(dateFormat, value.Start)
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	end, err := time.Parse(dateFormat, value.End)
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	if end.Before(start) {
		c.String(http.StatusBadRequest, "window end must not precede its start")
		return
	}

	config := s.a.GetConfig()
	config.Window = heatmodel.DateRange{Start: start, End: end}

	s.a.SetConfig(*config)
}

func (s *Server) ErasHandler(c *gin.Context) {
	c.JSON(http.StatusOK, heatmodel.Eras())
}
