package httpapi

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/Sylviettee/fjordgard/internal/meteo"
	"github.com/Sylviettee/fjordgard/internal/store"
	"github.com/Sylviettee/fjordgard/internal/weather"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *weather.Service) {
	v1 := app.Group("/api/v1")

	v1.Get("/locations", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"locations": service.Locations()})
	})

	v1.Get("/weather/current", func(c *fiber.Ctx) error {
		key, err := parseLocationQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		snapshot, err := service.Latest(key)
		if err != nil {
			if errors.Is(err, weather.ErrUnknownLocation) {
				return fiber.NewError(fiber.StatusNotFound, "location is not tracked")
			}
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "no weather data for requested location")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch weather data")
		}

		return c.JSON(snapshot)
	})

	v1.Get("/weather/history", func(c *fiber.Ctx) error {
		var req historyQuery
		if err := req.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		snapshots, err := service.History(req.Name, req.From, req.To)
		if err != nil {
			if errors.Is(err, weather.ErrUnknownLocation) {
				return fiber.NewError(fiber.StatusNotFound, "location is not tracked")
			}
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "no weather history for requested range")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch weather history")
		}

		return c.JSON(fiber.Map{
			"location":  req.Name,
			"from":      req.From,
			"to":        req.To,
			"snapshots": snapshots,
		})
	})

	v1.Get("/weather/hourly", func(c *fiber.Ctx) error {
		req, err := bindForecastQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		vars, err := parseVariableList(req.Variables, meteo.ParseHourlyVariable)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		resp, err := service.Hourly(c.Context(), req.Name, vars, req.Days)
		if err != nil {
			return forecastError(err)
		}
		if resp.Hourly == nil {
			return fiber.NewError(fiber.StatusBadGateway, "no hourly block in upstream response")
		}

		return c.JSON(fiber.Map{
			"location": req.Name,
			"units":    resp.HourlyUnits,
			"hourly":   resp.Hourly,
		})
	})

	v1.Get("/weather/daily", func(c *fiber.Ctx) error {
		req, err := bindForecastQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		vars, err := parseVariableList(req.Variables, meteo.ParseDailyVariable)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		resp, err := service.Daily(c.Context(), req.Name, vars, req.Days)
		if err != nil {
			return forecastError(err)
		}
		if resp.Daily == nil {
			return fiber.NewError(fiber.StatusBadGateway, "no daily block in upstream response")
		}

		return c.JSON(fiber.Map{
			"location": req.Name,
			"units":    resp.DailyUnits,
			"daily":    resp.Daily,
		})
	})
}

func forecastError(err error) error {
	if errors.Is(err, weather.ErrUnknownLocation) {
		return fiber.NewError(fiber.StatusNotFound, "location is not tracked")
	}
	var apiErr *meteo.APIError
	if errors.As(err, &apiErr) {
		return fiber.NewError(fiber.StatusBadGateway, apiErr.Error())
	}
	return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch forecast")
}

// parseVariableList decodes a comma-separated token list through the given
// catalog parser.
func parseVariableList[V any](raw string, parse func(string) (V, error)) ([]V, error) {
	var vars []V
	for _, token := range strings.Split(raw, ",") {
		v, err := parse(strings.TrimSpace(token))
		if err != nil {
			return nil, err
		}
		vars = append(vars, v)
	}
	return vars, nil
}

// locationQuery holds the query parameter identifying a tracked location.
type locationQuery struct {
	Name string `validate:"required"`
}

func parseLocationQuery(c *fiber.Ctx) (string, error) {
	q := locationQuery{Name: c.Query("name")}
	if err := validate.Struct(q); err != nil {
		return "", err
	}
	return q.Name, nil
}

// historyQuery holds query parameters for the history endpoint.
type historyQuery struct {
	Name string    `validate:"required"`
	From time.Time `validate:"required"`
	To   time.Time `validate:"required,gtefield=From"`
}

func (h *historyQuery) bind(c *fiber.Ctx) error {
	name, err := parseLocationQuery(c)
	if err != nil {
		return err
	}
	h.Name = name

	fromStr := c.Query("from")
	toStr := c.Query("to")
	if fromStr == "" || toStr == "" {
		return errors.New("from and to query parameters are required")
	}

	from, err := parseTime(fromStr)
	if err != nil {
		return err
	}
	to, err := parseTime(toStr)
	if err != nil {
		return err
	}

	h.From = from
	h.To = to
	return nil
}

// forecastQuery holds query parameters for the hourly and daily endpoints.
type forecastQuery struct {
	Name      string `validate:"required"`
	Variables string `validate:"required"`
	Days      int    `validate:"min=1,max=16"`
}

func bindForecastQuery(c *fiber.Ctx) (forecastQuery, error) {
	q := forecastQuery{
		Name:      c.Query("name"),
		Variables: c.Query("vars"),
		Days:      c.QueryInt("days", 1),
	}
	if err := validate.Struct(q); err != nil {
		return q, err
	}
	return q, nil
}

// parseTime tries to parse either RFC3339 or Unix seconds.
func parseTime(s string) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts, nil
	}
	if unix, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Unix(unix, 0).UTC(), nil
	}
	return time.Time{}, errors.New("invalid time format; use RFC3339 or unix seconds")
}
