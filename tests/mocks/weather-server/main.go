// Mock OpenWeatherMap server for running the widget end to end without a real API key.
// Point OPENWEATHERMAP_API_BASE_URL at http://localhost:8081.
package main

import (
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

type condition struct {
	Main        string `json:"main"`
	Description string `json:"description"`
}

type place struct {
	Name        string
	Country     string
	Temp        float64
	FeelsLike   float64
	Humidity    int
	Pressure    int
	WindSpeed   float64
	Clouds      int
	Visibility  int
	Condition   condition
	ForecastRun []condition
}

var places = map[string]place{
	"pakistan": {
		Name: "Pakistan", Country: "PK", Temp: 21.4, FeelsLike: 20.6, Humidity: 38, Pressure: 1014,
		WindSpeed: 3.6, Clouds: 0, Visibility: 10000,
		Condition:   condition{Main: "Clear", Description: "clear sky"},
		ForecastRun: []condition{{"Clear", "clear sky"}, {"Clouds", "few clouds"}, {"Clouds", "scattered clouds"}},
	},
	"london": {
		Name: "London", Country: "GB", Temp: 15.0, FeelsLike: 14.2, Humidity: 76, Pressure: 1009,
		WindSpeed: 5.1, Clouds: 75, Visibility: 8000,
		Condition:   condition{Main: "Clouds", Description: "broken clouds"},
		ForecastRun: []condition{{"Rain", "light rain"}, {"Drizzle", "light intensity drizzle"}, {"Clouds", "overcast clouds"}},
	},
	"oslo": {
		Name: "Oslo", Country: "NO", Temp: -3.5, FeelsLike: -8.1, Humidity: 85, Pressure: 1021,
		WindSpeed: 4.2, Clouds: 100, Visibility: 2500,
		Condition:   condition{Main: "Snow", Description: "light snow"},
		ForecastRun: []condition{{"Snow", "snow"}, {"Mist", "mist"}},
	},
}

// forecastPoints is the size of a real 5 day / 3 hour response
const forecastPoints = 40

func main() {
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/weather", func(c *gin.Context) {
		p, ok := lookup(c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"weather":    []condition{p.Condition},
			"main":       gin.H{"temp": p.Temp, "feels_like": p.FeelsLike, "humidity": p.Humidity, "pressure": p.Pressure},
			"visibility": p.Visibility,
			"wind":       gin.H{"speed": p.WindSpeed},
			"clouds":     gin.H{"all": p.Clouds},
			"dt":         time.Now().Unix(),
			"sys":        gin.H{"country": p.Country},
			"name":       p.Name,
			"cod":        200,
		})
	})

	r.GET("/forecast", func(c *gin.Context) {
		p, ok := lookup(c)
		if !ok {
			return
		}
		start := time.Now().Truncate(3 * time.Hour).Add(3 * time.Hour)
		list := make([]gin.H, forecastPoints)
		for i := range list {
			cond := p.ForecastRun[i%len(p.ForecastRun)]
			list[i] = gin.H{
				"dt":      start.Add(time.Duration(i) * 3 * time.Hour).Unix(),
				"main":    gin.H{"temp": p.Temp + float64(i%8) - 3},
				"weather": []condition{cond},
			}
		}
		c.JSON(http.StatusOK, gin.H{"cod": "200", "message": 0, "cnt": len(list), "list": list, "city": gin.H{"name": p.Name}})
	})

	addr := ":" + envOr("PORT", "8081")
	slog.Info("Mock OpenWeatherMap server starting", "addr", addr)
	if err := r.Run(addr); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}

// lookup resolves q and writes the error response the real API would send
func lookup(c *gin.Context) (place, bool) {
	if c.Query("appid") == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"cod": 401, "message": "Invalid API key."})
		return place{}, false
	}

	q := strings.ToLower(strings.TrimSpace(c.Query("q")))
	switch q {
	case "":
		c.JSON(http.StatusBadRequest, gin.H{"cod": "400", "message": "Nothing to geocode"})
		return place{}, false
	case "servererror":
		c.JSON(http.StatusInternalServerError, gin.H{"cod": "500", "message": "Internal error"})
		return place{}, false
	case "slow":
		time.Sleep(15 * time.Second)
	case "malformed":
		c.String(http.StatusOK, "{not json")
		return place{}, false
	}

	p, ok := places[q]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"cod": "404", "message": "city not found"})
		return place{}, false
	}
	return p, true
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
