package api

import (
	"github.com/PCKoper/heatcurve/internal/analyzer"
	"github.com/PCKoper/heatcurve/internal/domoticz"
)

const dateFormat = "2006-01-02"

type Server struct {
	a  *analyzer.Analyzer
	dc *domoticz.Client
}

func NewServer(a *analyzer.Analyzer, dc *domoticz.Client) *Server {
	return &Server{
		a:  a,
		dc: dc,
	}
}

// Update pulls fresh sensor history from domoticz. Shared by the daily cron
// and the POST /update route.
func (s *Server) Update() error {
	println("updating sensor data")
	return s.dc.Update()
}
