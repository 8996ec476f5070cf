package observable_test

import (
	"context"
	"sync"
	"time"

	"github.com/peershelf/bookledger-go/bookledger/shared/shell"
)

// metricsCollectorSpy captures metrics calls so tests can assert on them.
type metricsCollectorSpy struct {
	mu        sync.Mutex
	counters  []recordedMetric
	durations []recordedMetric
}

type recordedMetric struct {
	Metric string
	Labels map[string]string
}

func (s *metricsCollectorSpy) RecordDuration(metric string, _ time.Duration, labels map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.durations = append(s.durations, recordedMetric{Metric: metric, Labels: labels})
}

func (s *metricsCollectorSpy) IncrementCounter(metric string, labels map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counters = append(s.counters, recordedMetric{Metric: metric, Labels: labels})
}

func (s *metricsCollectorSpy) RecordValue(string, float64, map[string]string) {}

func (s *metricsCollectorSpy) hasCounter(metric string, wantLabels map[string]string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return hasRecord(s.counters, metric, wantLabels)
}

func (s *metricsCollectorSpy) hasDuration(metric string, wantLabels map[string]string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return hasRecord(s.durations, metric, wantLabels)
}

func hasRecord(records []recordedMetric, metric string, wantLabels map[string]string) bool {
	for _, r := range records {
		if r.Metric != metric {
			continue
		}

		match := true
		for k, v := range wantLabels {
			if r.Labels[k] != v {
				match = false
				break
			}
		}

		if match {
			return true
		}
	}

	return false
}

// tracingCollectorSpy records started and finished spans.
type tracingCollectorSpy struct {
	mu             sync.Mutex
	startedSpans   []string
	finishedStatus []string
}

type spanSpy struct{}

func (spanSpy) SetStatus(string)         {}
func (spanSpy) AddAttribute(_, _ string) {}

func (s *tracingCollectorSpy) StartSpan(ctx context.Context, name string, _ map[string]string) (context.Context, shell.SpanContext) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.startedSpans = append(s.startedSpans, name)

	return ctx, spanSpy{}
}

func (s *tracingCollectorSpy) FinishSpan(_ shell.SpanContext, status string, _ map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.finishedStatus = append(s.finishedStatus, status)
}

// loggerSpy records log messages by level.
type loggerSpy struct {
	mu       sync.Mutex
	messages []string
}

func (s *loggerSpy) log(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, msg)
}

func (s *loggerSpy) Debug(msg string, _ ...any) { s.log(msg) }
func (s *loggerSpy) Info(msg string, _ ...any)  { s.log(msg) }
func (s *loggerSpy) Warn(msg string, _ ...any)  { s.log(msg) }
func (s *loggerSpy) Error(msg string, _ ...any) { s.log(msg) }

func (s *loggerSpy) hasMessage(msg string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, m := range s.messages {
		if m == msg {
			return true
		}
	}

	return false
}
