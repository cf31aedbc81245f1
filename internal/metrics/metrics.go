package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"
)

// Registry holds every collector of this package. It is separate from the
// default registry so the textfile only carries this tool's series.
var Registry = prometheus.NewRegistry()

var (
	// FilesProcessed counts target files by outcome.
	FilesProcessed = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "emoji_stripper_files_processed_total",
			Help: "Total number of target files processed.",
		},
		[]string{"status"}, // success, error
	)

	// FileErrors counts failed files by error class.
	FileErrors = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "emoji_stripper_file_errors_total",
			Help: "Total number of target files that could not be processed.",
		},
		[]string{"kind"}, // not_found, permission_denied, decoding, other
	)

	// LastRun is the completion time of the most recent run.
	LastRun = promauto.With(Registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "emoji_stripper_last_run_timestamp_seconds",
			Help: "Unix time the last cleanup run finished.",
		},
	)
)

// WriteTextfile writes the registry in text exposition format for the node
// exporter textfile collector. An empty path disables the export.
func WriteTextfile(path string) error {
	if path == "" {
		log.Debug().Msg("Metrics textfile not configured, skipping export.")
		return nil
	}
	if err := prometheus.WriteToTextfile(path, Registry); err != nil {
		return err
	}
	log.Info().Str("path", path).Msg("Wrote metrics textfile")
	return nil
}
