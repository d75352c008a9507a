// Package sink implements bench.Reporter destinations for benchmark results.
//
//   - Console prints "<label> - <size> - <seconds>(s)" per trial.
//   - CSV appends "<label>,<size>,<seconds>" rows under the header
//     "algorithm,size,time", creating the file (and its directory) on first use.
//   - Recorder keeps results in memory; Tee fans a result out to several sinks.
//   - WriteSummary renders a table with MFLOPS and speedup over Standard.
//
// Sinks decide nothing about what runs; the runner calls Report once per trial.
package sink
