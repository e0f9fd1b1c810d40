package collector

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/clear-route/cityinfo-api/internal/cities"
	"github.com/prometheus/client_golang/prometheus"
)

type Option func(*Collector)

func WithStore(store *cities.Store) Option {
	return func(c *Collector) {
		c.store = store
	}
}

func WithBuildInfo(version string) Option {
	return func(c *Collector) {
		c.buildVersion = version
	}
}

type Collector struct {
	store *cities.Store

	buildVersion string

	buildInfo  *prometheus.Desc
	citiesDesc *prometheus.Desc
	poisDesc   *prometheus.Desc
}

// Collector satisfies prometheus.Collector.
var _ prometheus.Collector = (*Collector)(nil)

// New creates a new Collector with the provided options. It returns an error if required options are missing.
func New(opts ...Option) (*Collector, error) {
	c := &Collector{
		buildInfo: prometheus.NewDesc(
			"cityinfo_build_info",
			"CityInfo API version",
			[]string{"version"},
			nil,
		),
		citiesDesc: prometheus.NewDesc(
			"cityinfo_cities",
			"Number of cities served",
			nil,
			nil,
		),
		poisDesc: prometheus.NewDesc(
			"cityinfo_points_of_interest",
			"Number of points of interest per city",
			[]string{"id", "city"},
			nil,
		),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.store == nil {
		return nil, fmt.Errorf("city store is required")
	}

	return c, nil
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.buildInfo
	ch <- c.citiesDesc
	ch <- c.poisDesc
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(c.buildInfo, prometheus.GaugeValue, 1, c.buildVersion)

	list := c.store.List("")

	ch <- prometheus.MustNewConstMetric(c.citiesDesc, prometheus.GaugeValue, float64(len(list)))

	for _, city := range list {
		ch <- prometheus.MustNewConstMetric(c.poisDesc, prometheus.GaugeValue, float64(city.NumberOfPOIs), strconv.Itoa(city.ID), city.Name)
	}

	slog.Debug("finished collection", slog.Int("cities", len(list)))
}
