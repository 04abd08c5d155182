package metrics

import (
	"context"
	"log/slog"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"askfun/internal/models"
)

// unknownOptionLabel replaces unrecognized send values so arbitrary query strings
// cannot create new label values.
const unknownOptionLabel = "other"

var (
	optionViewDesc = prometheus.NewDesc(
		"askfun_send_option_views_total",
		"Total send modal opens by profile, option and outcome",
		[]string{"handle", "option", "outcome"},
		nil,
	)
)

// OptionViewStore persists option view counts.
type OptionViewStore interface {
	IncrementOptionView(ctx context.Context, handle, option, outcome string) error
	GetAllOptionViews(ctx context.Context) ([]models.OptionView, error)
}

// OptionViewCollector is a custom Prometheus collector that reads option view
// counts from the database on each scrape.
type OptionViewCollector struct {
	store OptionViewStore
}

// Describe sends the metric descriptor to the channel.
func (c *OptionViewCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- optionViewDesc
}

// Collect queries the database for all option views and emits them as counters.
func (c *OptionViewCollector) Collect(ch chan<- prometheus.Metric) {
	views, err := c.store.GetAllOptionViews(context.Background())
	if err != nil {
		slog.Error("failed to collect option view metrics", "error", err)
		return
	}
	for _, v := range views {
		ch <- prometheus.MustNewConstMetric(
			optionViewDesc,
			prometheus.CounterValue,
			float64(v.Count),
			v.Handle,
			v.Option,
			v.Outcome,
		)
	}
}

// Recorder provides async option view recording.
type Recorder struct {
	store OptionViewStore
	wg    sync.WaitGroup
}

var (
	recorder     *Recorder
	recorderOnce sync.Once
)

// Init registers the custom collector and initializes the recorder.
// Must be called once at startup.
func Init(store OptionViewStore) {
	recorderOnce.Do(func() {
		recorder = &Recorder{store: store}
		prometheus.MustRegister(&OptionViewCollector{store: store})
	})
}

// RecordOptionView asynchronously records that a profile's send modal was opened.
// Unknown options are recorded under a single "other" label.
func RecordOptionView(handle, option, outcome string) {
	if recorder == nil {
		return
	}
	recorder.record(handle, option, outcome)
}

func (r *Recorder) record(handle, option, outcome string) {
	if outcome != models.OutcomeKnown {
		outcome = models.OutcomeUnknown
		option = unknownOptionLabel
	}
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		if err := r.store.IncrementOptionView(context.Background(), handle, option, outcome); err != nil {
			slog.Error("failed to record option view", "handle", handle, "option", option, "outcome", outcome, "error", err)
		}
	}()
}

// Wait blocks until in-flight recordings finish. Used on shutdown.
func Wait() {
	if recorder == nil {
		return
	}
	recorder.wg.Wait()
}
