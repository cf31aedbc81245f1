package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/kyokomi/emoji/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"

	"github.com/haytac/emoji-stripper/internal/config"
	"github.com/haytac/emoji-stripper/internal/metrics"
	"github.com/haytac/emoji-stripper/internal/stripper"
	"github.com/haytac/emoji-stripper/pkg/interfaces"
)

// Status markers for the console lines. Only these fixed shortcodes are
// expanded; paths and error text are printed verbatim.
var (
	successMark = strings.TrimSpace(emoji.Sprint(":white_check_mark:"))
	failureMark = strings.TrimSpace(emoji.Sprint(":x:"))
)

// Application holds all dependencies for a cleanup run.
type Application struct {
	Config    *config.AppConfig
	Processor interfaces.FileProcessor
	Out       io.Writer // console status lines
}

// NewApplication creates an application that rewrites files on fs.
func NewApplication(cfg *config.AppConfig, fs afero.Fs, out io.Writer) *Application {
	return &Application{
		Config:    cfg,
		Processor: stripper.New(fs),
		Out:       out,
	}
}

// Result is the outcome for one path. Err is nil on success.
type Result struct {
	Path string
	Err  error
}

// Report collects the results of a run in processing order.
type Report struct {
	Results []Result
}

// Failed returns the number of paths that could not be processed.
func (r Report) Failed() int {
	n := 0
	for _, res := range r.Results {
		if res.Err != nil {
			n++
		}
	}
	return n
}

// Err combines every per-path failure, or returns nil if there were none.
func (r Report) Err() error {
	var merr *multierror.Error
	for _, res := range r.Results {
		if res.Err != nil {
			merr = multierror.Append(merr, res.Err)
		}
	}
	return merr.ErrorOrNil()
}

// Run processes paths one after another. A failure is reported for its path
// and the run moves on to the next one.
func (app *Application) Run(paths []string) Report {
	log.Info().Int("files", len(paths)).Msg("Starting emoji cleanup...")

	report := Report{Results: make([]Result, 0, len(paths))}
	for _, path := range paths {
		err := app.Processor.Process(path)
		report.Results = append(report.Results, Result{Path: path, Err: err})

		if err != nil {
			kind := stripper.KindName(err)
			log.Error().Err(err).Str("path", path).Str("kind", kind).Msg("Failed to process file")
			metrics.FilesProcessed.WithLabelValues("error").Inc()
			metrics.FileErrors.WithLabelValues(kind).Inc()
			fmt.Fprintf(app.Out, "%s Error processing %s: %v\n", failureMark, path, err)
			continue
		}

		log.Debug().Str("path", path).Msg("Processed file")
		metrics.FilesProcessed.WithLabelValues("success").Inc()
		fmt.Fprintf(app.Out, "%s Removed emojis from %s\n", successMark, path)
	}

	metrics.LastRun.SetToCurrentTime()
	if app.Config != nil {
		if err := metrics.WriteTextfile(app.Config.Metrics.Textfile); err != nil {
			log.Error().Err(err).Msg("Failed to write metrics textfile")
		}
	}

	if err := report.Err(); err != nil {
		log.Warn().Err(err).Int("failed", report.Failed()).Int("total", len(paths)).Msg("Emoji cleanup finished with errors")
	} else {
		log.Info().Int("total", len(paths)).Msg("Emoji cleanup finished")
	}
	return report
}
