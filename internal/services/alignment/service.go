package alignment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"nwalign/internal/domain"
	"nwalign/internal/fasta"
	"nwalign/internal/fingerprint"
	"nwalign/internal/observability"
)

var (
	// ErrCardinality is returned when align input does not hold exactly two records.
	ErrCardinality = errors.New("expecting exactly two sequences")
	// ErrOutputWithRuns is returned when an output path is combined with more than one run.
	ErrOutputWithRuns = errors.New("output cannot be combined with more than one run")
	errNegativeRuns   = errors.New("runs must not be negative")
)

// Service aligns sequences with a fixed aligner.
type Service struct {
	aligner domain.Aligner
	sink    domain.AlignmentSink
	metrics *observability.Metrics
	log     *slog.Logger
	workers int
}

// New returns a Service. A nil logger uses slog.Default; workers <= 0 uses GOMAXPROCS.
func New(aligner domain.Aligner, sink domain.AlignmentSink, metrics *observability.Metrics, log *slog.Logger, workers int) *Service {
	if log == nil {
		log = slog.Default()
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Service{aligner: aligner, sink: sink, metrics: metrics, log: log, workers: workers}
}

// Penalties returns the configuration used for every alignment.
func (s *Service) Penalties() domain.Penalties { return s.aligner.Penalties() }

// Align runs the engine once and records metrics under source.
func (s *Service) Align(source string, a, b domain.Sequence[domain.Char]) domain.Alignment[domain.Char] {
	start := time.Now()
	rec := s.aligner.Align(a, b)
	d := time.Since(start)
	s.metrics.ObserveAlignment(source, a.Len(), b.Len(), d)
	s.log.Debug("Aligned", "source", source, "len0", a.Len(), "len1", b.Len(), "duration", d)
	return rec
}

// Request describes one align-mode invocation.
type Request struct {
	Records []fasta.Record
	Runs    int
	Output  string
}

// Report summarises a finished invocation.
type Report struct {
	Runs        int
	Elapsed     time.Duration
	Alignment   domain.Alignment[domain.Char]
	Fingerprint string
}

// RunsPerSecond is the measured throughput.
func (r Report) RunsPerSecond() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Runs) / r.Elapsed.Seconds()
}

// Run aligns the two records req.Runs times. Runs share nothing, so they are
// spread over the worker pool; the first error cancels the remaining runs.
func (s *Service) Run(ctx context.Context, req Request) (Report, error) {
	if len(req.Records) != 2 {
		return Report{}, fmt.Errorf("%w, got %d", ErrCardinality, len(req.Records))
	}
	if req.Runs < 0 {
		return Report{}, errNegativeRuns
	}
	if req.Runs > 1 && req.Output != "" {
		return Report{}, ErrOutputWithRuns
	}
	r0, r1 := req.Records[0], req.Records[1]

	var (
		once  sync.Once
		first domain.Alignment[domain.Char]
	)
	start := time.Now()
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i := 0; i < req.Runs; i++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s.log.Info("Aligning", "seq0", r0.Header, "seq1", r1.Header)
			rec := s.Align(observability.SourceCLI, r0.Sequence, r1.Sequence)
			s.log.Info("Alignment", "score", rec.Score(), "ratio", rec.MatchingRatio(), "alignment", "\n"+rec.String())

			if req.Output != "" && s.sink != nil {
				if err := s.sink.Save(req.Output, rec); err != nil {
					return fmt.Errorf("write %s: %w", req.Output, err)
				}
			}
			once.Do(func() { first = rec })
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	rep := Report{Runs: req.Runs, Elapsed: time.Since(start), Alignment: first}
	s.log.Info("Performed runs", "runs", rep.Runs, "elapsed", rep.Elapsed, "runs_per_sec", fmt.Sprintf("%.0f", rep.RunsPerSecond()))

	// Fingerprinting stays outside the timed section.
	if rep.Runs > 0 {
		sum, err := fingerprint.JSON(rep.Alignment)
		if err != nil {
			return Report{}, fmt.Errorf("fingerprint: %w", err)
		}
		rep.Fingerprint = sum
		s.log.Info("Fingerprint", "fingerprint", sum)
	}
	return rep, nil
}
