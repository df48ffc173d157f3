package logic

import (
	"errors"
	"github.com/prometheus/client_golang/prometheus"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_metrics.go -package mocks ai_digest/logic IMetrics,IRequestObserver

type IMetrics interface {
	StartFetch(label string) IRequestObserver
	FeedFetched(label string)
	ImageResolved(label string)
	ItemsRendered(label string, count int)
	DigestGenerated()
	WriteToFile(fileName string) error
}

type IRequestObserver interface {
	Finish()
}

type metrics struct {
	fetchDuration    *prometheus.HistogramVec
	feedsFetched     *prometheus.CounterVec
	imagesResolved   *prometheus.CounterVec
	itemsRendered    *prometheus.GaugeVec
	digestsGenerated prometheus.Counter
}

func NewMetrics() IMetrics {

	res := metrics{}

	res.fetchDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: "fetch_duration",
		Help: "Duration in seconds of outgoing feed and page requests.",
	}, []string{"label"})
	res.fetchDuration = registerOrReuse(res.fetchDuration)

	res.feedsFetched = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "feeds_fetched",
		Help: "Number of feed fetches, by outcome",
	}, []string{"label"})
	res.feedsFetched = registerOrReuse(res.feedsFetched)

	res.imagesResolved = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "images_resolved",
		Help: "Number of items by where their image came from",
	}, []string{"label"})
	res.imagesResolved = registerOrReuse(res.imagesResolved)

	res.itemsRendered = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "items_rendered",
		Help: "Items on the last generated page, by section",
	}, []string{"label"})
	res.itemsRendered = registerOrReuse(res.itemsRendered)

	res.digestsGenerated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "digests_generated",
		Help: "Number of pages generated",
	})
	res.digestsGenerated = registerOrReuse(res.digestsGenerated)

	return &res
}

// registerOrReuse registers c, or returns the collector already registered under the same name.
func registerOrReuse[T prometheus.Collector](c T) T {
	var are prometheus.AlreadyRegisteredError
	if err := prometheus.Register(c); errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(T); ok {
			return existing
		}
	}
	return c
}

type requestObserver struct {
	label string
	start time.Time
	hgvec *prometheus.HistogramVec
}

func (ro *requestObserver) Finish() {
	elapsed := time.Since(ro.start).Seconds()
	ro.hgvec.WithLabelValues(ro.label).Observe(elapsed)
}

func (m *metrics) StartFetch(label string) IRequestObserver {
	return &requestObserver{label, time.Now(), m.fetchDuration}
}

func (m *metrics) FeedFetched(label string) {
	m.feedsFetched.WithLabelValues(label).Add(1)
}

func (m *metrics) ImageResolved(label string) {
	m.imagesResolved.WithLabelValues(label).Add(1)
}

func (m *metrics) ItemsRendered(label string, count int) {
	m.itemsRendered.WithLabelValues(label).Set(float64(count))
}

func (m *metrics) DigestGenerated() {
	m.digestsGenerated.Add(1)
}

// WriteToFile dumps all registered metrics in the text exposition format, e.g. for node_exporter's textfile collector.
func (m *metrics) WriteToFile(fileName string) error {
	return prometheus.WriteToTextfile(fileName, prometheus.DefaultGatherer)
}
