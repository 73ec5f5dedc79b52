package pipeline

import (
	"fmt"

	"fixerrors/internal/rewrite"
	"fixerrors/internal/spec"
	"fixerrors/internal/telemetry"
	"fixerrors/internal/transform"
	"fixerrors/sink"
	sinkfile "fixerrors/sink/rustfile"
	"fixerrors/sink/stdout"
	"fixerrors/source/rustfile"
)

// Options carries what the spec cannot know: the directory the run is
// rooted in (empty means the process working directory) and the metrics
// collector.
type Options struct {
	Dir     string
	Metrics *telemetry.Collector
}

// Compile wires a Runner from a migration spec: source driver, one
// stage per substitution rule, then sinks in list order.
func Compile(f spec.File, opts Options) (*Runner, error) {
	r := NewRunner()
	r.SetMetrics(opts.Metrics)

	if f.Source.Kind != "rustfile" {
		return nil, fmt.Errorf("unsupported source %q", f.Source.Kind)
	}
	src, err := rustfile.NewAdapter(f.Source.Driver)
	if err != nil {
		return nil, err
	}
	if err := src.Configure(rustfile.Config{Path: f.Source.Path, Dir: opts.Dir}); err != nil {
		return nil, err
	}
	r.SetSource(src)

	rules, err := rewrite.CompileAll(f)
	if err != nil {
		return nil, err
	}
	for _, rule := range rules {
		r.AddStage(transform.NewRuleStage(rule))
	}

	for _, name := range f.Sinks {
		drv, err := sink.NewAdapter(name)
		if err != nil {
			return nil, err
		}

		switch name {
		case "rustfile":
			err = drv.Configure(sinkfile.Config{Dir: opts.Dir})
		case "stdout":
			err = drv.Configure(stdout.Config{
				PrintDocument: f.Debug.PrintDocument,
				PrintCounter:  f.Debug.PrintCounter,
				ValueMaxBytes: f.Debug.ValueMaxBytes,
			})
		default:
			err = fmt.Errorf("no config block for sink %q", name)
		}
		if err != nil {
			return nil, err
		}

		if ra, ok := drv.(sink.ReceiptAware); ok {
			ra.BindReceipt(r.Receipt)
		}
		r.AddSink(drv)
	}
	return r, nil
}
