// Package analysis measures how closely an engine tracks the float64 math
// library.
//
//   - [Sweep]: evaluates one function over its input domain and reports
//     error metrics
//   - [CompareSizes]: the same sweep across several table resolutions
//   - [AnalyzeSpectrum]: spectral purity of a generated sine tone
//
// # Example
//
//	res, _ := analysis.Sweep(trig.Trig128, analysis.Sin, 1, 4)
//	fmt.Println(res.Report.Metrics[metrics.MaxAbs])
package analysis
