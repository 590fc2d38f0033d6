package solver

import (
	"log/slog"
	"math"
)

// Options bounds the numeric work done by the bracketed root finder.
type Options struct {
	Samples       int          // sign-change probes across the search interval
	MaxIterations int          // refinement budget per bracket
	Tolerance     float64      // interval width at which a root is accepted
	Logger        *slog.Logger // nil means slog.Default()
}

// DefaultOptions returns the recognized root-finder defaults
func DefaultOptions() Options {
	return Options{
		Samples:       128,
		MaxIterations: 64,
		Tolerance:     1e-9,
	}
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// BracketedRoots finds the real roots of f on [t0, t1] in ascending order.
// The interval is sampled for sign changes and each bracket is refined with
// a Newton iteration safeguarded by bisection; df is the derivative of f
// and may be nil, in which case pure bisection is used. A bracket that
// fails to converge within the iteration budget is dropped and logged,
// never fatal: a single bad ray must not abort a render.
func BracketedRoots(f, df func(float64) float64, t0, t1 float64, opts Options) []float64 {
	if t1 <= t0 || opts.Samples < 2 {
		return nil
	}

	var roots []float64
	step := (t1 - t0) / float64(opts.Samples)

	prevT := t0
	prevF := f(t0)
	if prevF == 0 {
		roots = append(roots, t0)
	}

	for i := 1; i <= opts.Samples; i++ {
		t := t0 + float64(i)*step
		if i == opts.Samples {
			t = t1 // avoid accumulation drift past the interval
		}
		ft := f(t)

		if ft == 0 {
			roots = append(roots, t)
		} else if (prevF < 0) != (ft < 0) && prevF != 0 {
			root, err := refineBracket(f, df, prevT, t, prevF, opts)
			if err != nil {
				opts.logger().Debug("dropping non-converged root bracket",
					"lo", prevT, "hi", t)
			} else {
				roots = append(roots, root)
			}
		}

		prevT, prevF = t, ft
	}

	return roots
}

// refineBracket narrows [lo, hi] with f(lo) and f(hi) of opposite sign.
// Newton steps are taken while they stay inside the bracket and keep
// shrinking it; anything else falls back to bisection.
func refineBracket(f, df func(float64) float64, lo, hi, fLo float64, opts Options) (float64, error) {
	t := 0.5 * (lo + hi)

	for i := 0; i < opts.MaxIterations; i++ {
		ft := f(t)
		if ft == 0 {
			return t, nil
		}
		if (ft < 0) == (fLo < 0) {
			lo, fLo = t, ft
		} else {
			hi = t
		}
		if hi-lo < opts.Tolerance {
			return 0.5 * (lo + hi), nil
		}

		next := math.NaN()
		if df != nil {
			if d := df(t); d != 0 {
				next = t - ft/d
			}
		}
		if math.IsNaN(next) || next <= lo || next >= hi {
			next = 0.5 * (lo + hi)
		}
		t = next
	}

	if hi-lo < opts.Tolerance*16 {
		return 0.5 * (lo + hi), nil
	}
	return 0, ErrNoConvergence
}
