package domoticz

import (
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/PCKoper/heatcurve/internal/heatmodel"
)

// Config identifies the Domoticz host and the sensors to pull. Counter
// sensors deliver raw v/v_max/v_min readings; all unit conversion is left to
// the model's normalizer.
type Config struct {
	BaseURL string
	// InsecureTLS skips certificate verification, for hosts with
	// self-signed certificates.
	InsecureTLS bool

	OutdoorTemperatureSensorID string
	IndoorTemperatureSensorID  string
	HeatingEnergySensorID      string
	GasSensorID                string
	ElectricitySensorID        string

	// UseGas pulls the gas counter instead of the heat meter.
	UseGas bool
	// FetchGainSensors pulls indoor temperature and electricity too.
	FetchGainSensors bool
}

type Client struct {
	m    sync.RWMutex
	c    *http.Client
	cfg  Config
	data []heatmodel.PartialObservation
}

func NewClient(cfg Config) *Client {
	c := http.DefaultClient
	if cfg.InsecureTLS {
		c = &http.Client{
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
			},
		}
	}

	return &Client{
		c:   c,
		cfg: cfg,
	}
}

// graphRow is one day of a Domoticz graph response. Counters deliver their
// values as strings; temperature sensors as numbers. Rows missing the fields
// we need are skipped.
type graphRow struct {
	Date        string   `json:"d"`
	Temperature *float64 `json:"ta"`
	Value       *string  `json:"v"`
	ValueMax    *string  `json:"v_max"`
	ValueMin    *string  `json:"v_min"`
}

type graphResponse struct {
	Result []graphRow `json:"result"`
}

const dateFormat = "2006-01-02"

// Update fetches a year of data for every configured sensor and replaces the
// cached observations.
func (c *Client) Update() error {
	var obs []heatmodel.PartialObservation

	outdoor, err := c.fetchGraph("temp", c.cfg.OutdoorTemperatureSensorID)
	if err != nil {
		return fmt.Errorf("outdoor temperature: %w", err)
	}
	obs = append(obs, temperatureObservations(outdoor, heatmodel.FieldOutdoorTemperature)...)

	if c.cfg.UseGas {
		gas, err := c.fetchGraph("counter", c.cfg.GasSensorID)
		if err != nil {
			return fmt.Errorf("gas usage: %w", err)
		}
		obs = append(obs, valueObservations(gas, heatmodel.FieldGasVolume)...)
	} else {
		heating, err := c.fetchGraph("Percentage", c.cfg.HeatingEnergySensorID)
		if err != nil {
			return fmt.Errorf("heating energy: %w", err)
		}
		obs = append(obs, counterObservations(heating)...)
	}

	if c.cfg.FetchGainSensors {
		indoor, err := c.fetchGraph("temp", c.cfg.IndoorTemperatureSensorID)
		if err != nil {
			return fmt.Errorf("indoor temperature: %w", err)
		}
		obs = append(obs, temperatureObservations(indoor, heatmodel.FieldIndoorTemperature)...)

		electricity, err := c.fetchGraph("counter", c.cfg.ElectricitySensorID)
		if err != nil {
			return fmt.Errorf("electricity usage: %w", err)
		}
		obs = append(obs, valueObservations(electricity, heatmodel.FieldElectricityEnergy)...)
	}

	c.m.Lock()
	defer c.m.Unlock()
	c.data = obs
	return nil
}

// Samples returns the cached observations from the last Update.
func (c *Client) Samples() ([]heatmodel.PartialObservation, error) {
	c.m.RLock()
	defer c.m.RUnlock()

	if c.data == nil {
		return nil, errors.New("no domoticz data available, call update first")
	}

	data := make([]heatmodel.PartialObservation, len(c.data))
	copy(data, c.data)
	return data, nil
}

func (c *Client) fetchGraph(sensorType, idx string) ([]graphRow, error) {
	url := fmt.Sprintf("%s/json.htm?type=graph&sensor=%s&idx=%s&range=year&method=1", c.cfg.BaseURL, sensorType, idx)

	resp, err := c.c.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected response code %d", resp.StatusCode)
	}

	var graph graphResponse
	err = json.NewDecoder(resp.Body).Decode(&graph)
	if err != nil {
		return nil, err
	}

	return graph.Result, nil
}

func temperatureObservations(rows []graphRow, field heatmodel.Field) []heatmodel.PartialObservation {
	var obs []heatmodel.PartialObservation
	for _, row := range rows {
		if row.Temperature == nil {
			continue
		}
		d, err := time.Parse(dateFormat, row.Date)
		if err != nil {
			continue
		}
		obs = append(obs, heatmodel.PartialObservation{Date: d, Field: field, Value: *row.Temperature})
	}
	return obs
}

func valueObservations(rows []graphRow, field heatmodel.Field) []heatmodel.PartialObservation {
	var obs []heatmodel.PartialObservation
	for _, row := range rows {
		if row.Value == nil {
			continue
		}
		d, err := time.Parse(dateFormat, row.Date)
		if err != nil {
			continue
		}
		v, err := strconv.ParseFloat(*row.Value, 64)
		if err != nil {
			continue
		}
		obs = append(obs, heatmodel.PartialObservation{Date: d, Field: field, Value: v})
	}
	return obs
}

func counterObservations(rows []graphRow) []heatmodel.PartialObservation {
	var obs []heatmodel.PartialObservation
	for _, row := range rows {
		if row.ValueMax == nil || row.ValueMin == nil {
			continue
		}
		d, err := time.Parse(dateFormat, row.Date)
		if err != nil {
			continue
		}
		vmax, err := strconv.ParseFloat(*row.ValueMax, 64)
		if err != nil {
			continue
		}
		vmin, err := strconv.ParseFloat(*row.ValueMin, 64)
		if err != nil {
			continue
		}
		obs = append(obs,
			heatmodel.PartialObservation{Date: d, Field: heatmodel.FieldHeatingCounterMax, Value: vmax},
			heatmodel.PartialObservation{Date: d, Field: heatmodel.FieldHeatingCounterMin, Value: vmin},
		)
	}
	return obs
}
