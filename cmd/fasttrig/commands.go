package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/fasttrig/internal/analysis"
	"github.com/san-kum/fasttrig/internal/angle"
	"github.com/san-kum/fasttrig/internal/config"
	"github.com/san-kum/fasttrig/internal/export"
	"github.com/san-kum/fasttrig/internal/metrics"
	"github.com/san-kum/fasttrig/internal/storage"
	"github.com/san-kum/fasttrig/internal/trig"
	"github.com/san-kum/fasttrig/internal/viz"
)

const evalHelp = `Evaluate one function with the configured engine.

  sin|cos|tan ANGLE       angle in 1/16384 turn, or degrees with --deg
  asin|acos VALUE         value on the 8192 = 1.0 scale
  atan VALUE              value on the 16384 = 1.0 scale
  atan2 Y X
  magnitude X Y`

func evalFunction(cmd *cobra.Command, args []string) error {
	fn, err := analysis.ParseFunction(args[0])
	if err != nil {
		return err
	}

	nums := make([]int, len(args)-1)
	for i, a := range args[1:] {
		if nums[i], err = strconv.Atoi(a); err != nil {
			return fmt.Errorf("argument %q: %w", a, err)
		}
	}

	toAngle := func(v int) uint16 {
		if degrees {
			return angle.FromDegrees(v)
		}
		return uint16(v & trig.AngleMask)
	}
	need := func(n int) error {
		if len(nums) != n {
			return fmt.Errorf("%s takes %d argument(s), got %d", fn, n, len(nums))
		}
		return nil
	}

	switch fn {
	case analysis.Sin, analysis.Cos, analysis.Tan:
		if err := need(1); err != nil {
			return err
		}
		a := toAngle(nums[0])
		r := angle.ToRadians(a)
		var got int16
		var want float64
		switch fn {
		case analysis.Sin:
			got, want = engine.Sin(a), math.Sin(r)
		case analysis.Cos:
			got, want = engine.Cos(a), math.Cos(r)
		default:
			got, want = engine.Tan(a), math.Tan(r)
		}
		fmt.Printf("%s(%d) = %d  (%.6f, float64 %.6f)\n", fn, a, got, float64(got)/trig.OutputScale, want)

	case analysis.Atan, analysis.Asin, analysis.Acos:
		if err := need(1); err != nil {
			return err
		}
		v := int16(max(min(nums[0], math.MaxInt16), math.MinInt16))
		var got uint16
		switch fn {
		case analysis.Atan:
			got = engine.Atan(v)
		case analysis.Asin:
			got = engine.Asin(v)
		default:
			got = engine.Acos(v)
		}
		fmt.Printf("%s(%d) = %d  (%d°)\n", fn, v, got, angle.ToDegrees(got))

	case analysis.Atan2:
		if err := need(2); err != nil {
			return err
		}
		y := int16(max(min(nums[0], math.MaxInt16), math.MinInt16))
		x := int16(max(min(nums[1], math.MaxInt16), math.MinInt16))
		got := engine.Atan2(y, x)
		fmt.Printf("atan2(%d, %d) = %d  (%d°)\n", y, x, got, angle.ToDegrees(got))

	case analysis.Magnitude:
		if err := need(2); err != nil {
			return err
		}
		got := engine.Magnitude(int32(nums[0]), int32(nums[1]))
		want := math.Hypot(float64(nums[0]), float64(nums[1]))
		fmt.Printf("magnitude(%d, %d) = %d  (float64 %.3f)\n", nums[0], nums[1], got, want)
	}
	return nil
}

func dumpTables(cmd *cobra.Command, args []string) error {
	snap := engine.Tables()
	switch format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(snap)
	case "yaml":
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(snap)
	case "text":
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintln(w, "I\tSINE\tATAN\tASIN\t")
		for i := range snap.Sine {
			fmt.Fprintf(w, "%d\t%d\t%d\t%d\t\n", i, snap.Sine[i], snap.Atan[i], snap.Asin[i])
		}
		return w.Flush()
	default:
		return fmt.Errorf("unknown format: %s (text, json, yaml)", format)
	}
}

func parseFunctions(args []string) ([]analysis.Function, error) {
	if len(args) == 0 {
		return analysis.Functions(), nil
	}
	fns := make([]analysis.Function, 0, len(args))
	for _, a := range args {
		fn, err := analysis.ParseFunction(a)
		if err != nil {
			return nil, err
		}
		fns = append(fns, fn)
	}
	return fns, nil
}

func runAccuracy(cmd *cobra.Command, args []string) error {
	fns, err := parseFunctions(args)
	if err != nil {
		return err
	}

	var st *storage.Store
	if save {
		st = storage.New(cfg.DataDir)
		if err := st.Init(); err != nil {
			return err
		}
	}

	fmt.Printf("N=%d (%d bytes), step %d\n\n", engine.TableSize(), engine.TableMemory(), cfg.Sweep.Step)

	rows := make([][]string, 0, len(fns))
	for _, fn := range fns {
		start := time.Now()
		res, err := analysis.Sweep(engine, fn, cfg.Sweep.Step, cfg.Sweep.Workers)
		if err != nil {
			return err
		}
		logger.Debug("sweep done", "function", fn, "samples", res.Report.Samples, "elapsed", time.Since(start))

		rows = append(rows, reportRow(string(fn), res.Report))

		if st != nil {
			id, err := st.Save(res)
			if err != nil {
				return err
			}
			logger.Info("run saved", "id", id)
			rows[len(rows)-1] = append(rows[len(rows)-1], id)
		}
	}

	header := []string{"FUNCTION", "UNIT", "SAMPLES", "MAX", "MEAN", "RMS", "WORST AT"}
	if st != nil {
		header = append(header, "RUN")
	}
	fmt.Print(viz.Table(header, rows))
	return nil
}

func reportRow(label string, r analysis.Report) []string {
	maxErr := r.Metrics[metrics.MaxAbs]
	limit := 0.001
	if r.Unit == "units" {
		limit = 1
	}
	return []string{
		label,
		r.Unit,
		strconv.Itoa(r.Samples),
		viz.ErrorGrade(maxErr, limit).Render(fmt.Sprintf("%.3e", maxErr)),
		fmt.Sprintf("%.3e", r.Metrics[metrics.MeanAbs]),
		fmt.Sprintf("%.3e", r.Metrics[metrics.RMS]),
		fmt.Sprintf("%.0f", r.Metrics[metrics.WorstInput]),
	}
}

func compareSizes(cmd *cobra.Command, args []string) error {
	fn := analysis.Sin
	if len(args) == 1 {
		var err error
		if fn, err = analysis.ParseFunction(args[0]); err != nil {
			return err
		}
	}

	reports, err := analysis.CompareSizes(sizes, fn, cfg.Sweep.Step, cfg.Sweep.Workers)
	if err != nil {
		return err
	}

	rows := make([][]string, len(reports))
	for i, r := range reports {
		row := reportRow(strconv.Itoa(r.TableSize), r)
		rows[i] = append(row[:1], append([]string{strconv.Itoa(6 * r.TableSize)}, row[3:6]...)...)
	}
	fmt.Printf("%s, step %d\n\n", fn, cfg.Sweep.Step)
	fmt.Print(viz.Table([]string{"N", "BYTES", "MAX", "MEAN", "RMS"}, rows))
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(cfg.DataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tFUNCTION\tN\tTIME\tSAMPLES\tMAX ERROR")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%d\t%.3e %s\n",
			run.ID,
			run.Function,
			run.TableSize,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Samples,
			run.Metrics[metrics.MaxAbs],
			run.Unit,
		)
	}
	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	meta, err := storage.New(cfg.DataDir).Load(args[0])
	if err != nil {
		return err
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

// plotCurve plots a saved run when the argument names one, otherwise a fresh
// sweep of the named function.
func plotCurve(cmd *cobra.Command, args []string) error {
	var (
		smp     []analysis.Sample
		caption string
	)

	st := storage.New(cfg.DataDir)
	if meta, err := st.Load(args[0]); err == nil {
		if smp, err = st.LoadSamples(meta.ID); err != nil {
			return err
		}
		caption = fmt.Sprintf("%s N=%d (run %s)", meta.Function, meta.TableSize, meta.ID)
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	} else {
		fn, err := analysis.ParseFunction(args[0])
		if err != nil {
			return fmt.Errorf("%s is neither a run nor a function: %w", args[0], err)
		}
		res, err := analysis.Sweep(engine, fn, cfg.Sweep.Step, cfg.Sweep.Workers)
		if err != nil {
			return err
		}
		smp = res.Samples
		caption = fmt.Sprintf("%s N=%d", fn, engine.TableSize())
	}

	if len(smp) == 0 {
		return fmt.Errorf("no data to plot")
	}

	data := make([]float64, len(smp))
	for i, s := range smp {
		if showErr {
			data[i] = s.Delta()
		} else {
			data[i] = s.Got
		}
	}
	if showErr {
		caption += " error"
	}

	fmt.Println(asciigraph.Plot(data,
		asciigraph.Height(cfg.Plot.Height),
		asciigraph.Width(cfg.Plot.Width),
		asciigraph.Caption(caption),
	))
	return nil
}

func showSpectrum(cmd *cobra.Command, args []string) error {
	s, err := analysis.AnalyzeSpectrum(engine, cfg.Wave.Samples, cfg.Wave.Step)
	if err != nil {
		return err
	}

	fmt.Println(viz.Metric("samples  ", "%d", s.Samples))
	fmt.Println(viz.Metric("step     ", "%d", s.Step))
	fmt.Println(viz.Metric("coherent ", "%t", s.Coherent))
	fmt.Println(viz.Metric("peak bin ", "%d", s.Peak))
	fmt.Println(viz.Metric("amplitude", "%.5f", s.Amplitude))
	fmt.Println(viz.Metric("SFDR     ", "%.1f dB", s.SFDR))
	fmt.Println(viz.Metric("THD      ", "%.2e", s.THD))
	fmt.Println()

	fmt.Println(asciigraph.Plot(s.DB(),
		asciigraph.Height(cfg.Plot.Height),
		asciigraph.Width(cfg.Plot.Width),
		asciigraph.Caption(fmt.Sprintf("magnitude (dBFS), N=%d", engine.TableSize())),
	))
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	var svg string
	if canvas {
		c := viz.NewCanvas(cfg.Plot.Width, cfg.Plot.Width/2)
		cx, cy := c.SubWidth()/2, c.SubHeight()/2
		r := min(cx, cy) - 1
		c.DrawCircle(engine, cx, cy, r, 96)
		for deg := 0; deg < 360; deg += 30 {
			c.DrawRay(engine, cx, cy, r, angle.FromDegrees(deg))
		}
		svg = export.CanvasToSVG(c, 4)
	} else {
		fn := analysis.Sin
		if len(args) == 1 {
			var err error
			if fn, err = analysis.ParseFunction(args[0]); err != nil {
				return err
			}
		}
		res, err := analysis.Sweep(engine, fn, cfg.Sweep.Step, cfg.Sweep.Workers)
		if err != nil {
			return err
		}
		svg = export.SeriesToSVG(seriesOf(res), 800, 300)
	}

	var w io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	_, err := io.WriteString(w, svg+"\n")
	if err == nil && output != "" {
		fmt.Printf("wrote %s\n", output)
	}
	return err
}

// seriesOf returns the engine output and its error, the latter magnified to
// share the value axis.
func seriesOf(res *analysis.Result) []export.Series {
	n := len(res.Samples)
	xs := make([]float64, n)
	got := make([]float64, n)
	errs := make([]float64, n)

	maxErr := res.Report.Metrics[metrics.MaxAbs]
	gain := 1.0
	if maxErr > 0 {
		gain = math.Pow(10, math.Floor(math.Log10(0.5/maxErr)))
	}
	for i, s := range res.Samples {
		xs[i] = s.Input
		got[i] = s.Got
		errs[i] = s.Delta() * gain
	}

	return []export.Series{
		{Name: string(res.Report.Function), Stroke: "#00ffff", X: xs, Y: got},
		{Name: fmt.Sprintf("error x%g", gain), Stroke: "#ff4444", X: xs, Y: errs},
	}
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ENGINE PRESET\tN\tBYTES")
	for _, name := range trig.ListPresets() {
		e := trig.Preset(name)
		fmt.Fprintf(w, "%s\t%d\t%d\n", name, e.TableSize(), e.TableMemory())
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "WORKLOAD PRESET\tN\tSTEP\tSAMPLES")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\n", name, p.TableSize, p.Sweep.Step, p.Wave.Samples)
	}
	return w.Flush()
}

var benchSink int64

func benchFunctions(cmd *cobra.Command, args []string) error {
	if iterations <= 0 {
		return fmt.Errorf("iterations must be positive")
	}

	type bench struct {
		name string
		fn   func(i int) int64
	}
	benches := []bench{
		{"sin", func(i int) int64 { return int64(engine.Sin(uint16(i))) }},
		{"cos", func(i int) int64 { return int64(engine.Cos(uint16(i))) }},
		{"tan", func(i int) int64 { return int64(engine.Tan(uint16(i))) }},
		{"atan2", func(i int) int64 { return int64(engine.Atan2(int16(i&0x1FFF), int16((i>>4)&0x1FFF))) }},
		{"asin", func(i int) int64 { return int64(engine.Asin(int16(i&0x3FFF) - trig.OutputScale)) }},
		{"magnitude", func(i int) int64 { return int64(engine.Magnitude(int32(i&0x1FFF), int32((i>>4)&0x1FFF))) }},
		{"math.Sin", func(i int) int64 { return int64(math.Sin(angle.ToRadians(uint16(i))) * trig.OutputScale) }},
	}

	fmt.Printf("N=%d, %d calls each\n\n", engine.TableSize(), iterations)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FUNCTION\tTOTAL\tNS/OP")
	for _, b := range benches {
		var sink int64
		start := time.Now()
		for i := 0; i < iterations; i++ {
			sink += b.fn(i)
		}
		elapsed := time.Since(start)
		benchSink += sink
		fmt.Fprintf(w, "%s\t%v\t%.2f\n", b.name, elapsed.Round(time.Microsecond),
			float64(elapsed.Nanoseconds())/float64(iterations))
	}
	return w.Flush()
}
