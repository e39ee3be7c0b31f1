package driver

import "oath/internal/observ"

// newTimer returns nil when timings are off; observ.Timer methods accept a nil receiver.
func newTimer(enabled bool) *observ.Timer {
	if !enabled {
		return nil
	}
	return observ.NewTimer()
}

// TimingSummary renders a per-file timing report for --timings.
func TimingSummary(path string, report *observ.Report) string {
	if report == nil {
		return ""
	}
	out := "timings: " + path + "\n"
	return out + report.Format()
}

func timingReport(timer *observ.Timer) *observ.Report {
	if timer == nil {
		return nil
	}
	report := timer.Report()
	return &report
}
