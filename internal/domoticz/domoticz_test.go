package domoticz

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PCKoper/heatcurve/internal/heatmodel"
)

func testServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/json.htm", func(w http.ResponseWriter, r *http.Request) {
		sensor := r.URL.Query().Get("sensor")
		idx := r.URL.Query().Get("idx")

		switch {
		case sensor == "temp" && idx == "20":
			fmt.Fprint(w, `{"result":[
				{"d":"2019-11-01","ta":5.5},
				{"d":"2019-11-02","ta":3.0},
				{"d":"2019-11-03"},
				{"d":"bogus","ta":1.0}
			]}`)
		case sensor == "temp" && idx == "69":
			fmt.Fprint(w, `{"result":[{"d":"2019-11-01","ta":20.1}]}`)
		case sensor == "Percentage" && idx == "102":
			fmt.Fprint(w, `{"result":[
				{"d":"2019-11-01","v_max":"1044.5","v_min":"1002.3"},
				{"d":"2019-11-02","v":"7.0"}
			]}`)
		case sensor == "counter" && idx == "3":
			fmt.Fprint(w, `{"result":[{"d":"2019-11-01","v":"10.5"}]}`)
		case sensor == "counter" && idx == "53":
			fmt.Fprint(w, `{"result":[{"d":"2019-11-01","v":"4.2"}]}`)
		default:
			http.NotFound(w, r)
		}
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func testClientConfig(baseURL string) Config {
	return Config{
		BaseURL:                    baseURL,
		OutdoorTemperatureSensorID: "20",
		IndoorTemperatureSensorID:  "69",
		HeatingEnergySensorID:      "102",
		GasSensorID:                "53",
		ElectricitySensorID:        "3",
		FetchGainSensors:           true,
	}
}

func TestClient_Update(t *testing.T) {
	srv := testServer(t)

	c := NewClient(testClientConfig(srv.URL))
	require.NoError(t, c.Update())

	obs, err := c.Samples()
	require.NoError(t, err)

	byField := map[heatmodel.Field][]heatmodel.PartialObservation{}
	for _, o := range obs {
		byField[o.Field] = append(byField[o.Field], o)
	}

	t.Run("temperature rows without values are skipped", func(t *testing.T) {
		require.Len(t, byField[heatmodel.FieldOutdoorTemperature], 2)
		assert.Equal(t, 5.5, byField[heatmodel.FieldOutdoorTemperature][0].Value)
	})

	t.Run("counter rows carry max and min", func(t *testing.T) {
		require.Len(t, byField[heatmodel.FieldHeatingCounterMax], 1)
		require.Len(t, byField[heatmodel.FieldHeatingCounterMin], 1)
		assert.Equal(t, 1044.5, byField[heatmodel.FieldHeatingCounterMax][0].Value)
		assert.Equal(t, 1002.3, byField[heatmodel.FieldHeatingCounterMin][0].Value)
	})

	t.Run("gain sensors fetched", func(t *testing.T) {
		require.Len(t, byField[heatmodel.FieldIndoorTemperature], 1)
		require.Len(t, byField[heatmodel.FieldElectricityEnergy], 1)
		assert.Equal(t, 10.5, byField[heatmodel.FieldElectricityEnergy][0].Value)
	})
}

func TestClient_UpdateGasMode(t *testing.T) {
	srv := testServer(t)

	cfg := testClientConfig(srv.URL)
	cfg.UseGas = true
	cfg.FetchGainSensors = false

	c := NewClient(cfg)
	require.NoError(t, c.Update())

	obs, err := c.Samples()
	require.NoError(t, err)

	var gas int
	for _, o := range obs {
		if o.Field == heatmodel.FieldGasVolume {
			gas++
			assert.Equal(t, 4.2, o.Value)
		}
		assert.NotEqual(t, heatmodel.FieldHeatingCounterMax, o.Field)
	}
	assert.Equal(t, 1, gas)
}

func TestClient_SamplesBeforeUpdate(t *testing.T) {
	c := NewClient(testClientConfig("http://localhost:1"))

	_, err := c.Samples()
	assert.Error(t, err)
}
