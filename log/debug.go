// Package log provides the program loggers plus a debug mode that traces
// layout resolution and times each part of a widget render. Enable debug
// mode by setting PAYMENTS_CHARTS_DEBUG=1.
package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// DebugEnvVar turns on debug logging when set to "1".
const DebugEnvVar = "PAYMENTS_CHARTS_DEBUG"

// SlowRenderThreshold is the time above which a whole widget render is
// reported as slow.
const SlowRenderThreshold = 16 * time.Millisecond

var (
	DebugEnabled bool
	DebugLog     *log.Logger
	debugLogFile *os.File
)

var debugLogFileName = filepath.Join(os.TempDir(), "payments-charts-debug.log")

// InitDebug opens the debug log when PAYMENTS_CHARTS_DEBUG=1. Otherwise
// DebugLog discards. Initialize calls it.
func InitDebug() {
	DebugEnabled = os.Getenv(DebugEnvVar) == "1"
	DebugLog = log.New(io.Discard, "", 0)
	if !DebugEnabled {
		return
	}

	f, err := os.OpenFile(debugLogFileName, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
	if err != nil {
		ErrorLog.Printf("could not open debug log file: %s", err)
		return
	}
	debugLogFile = f
	DebugLog = log.New(f, "DEBUG:", log.Ldate|log.Ltime|log.Lmicroseconds)
	DebugLog.Printf("debug log: %s", debugLogFileName)
}

// CloseDebug writes the render profile and closes the debug log file.
func CloseDebug() {
	if debugLogFile == nil {
		return
	}
	profiler.LogStats()
	_ = debugLogFile.Close()
	debugLogFile = nil
	fmt.Fprintln(os.Stderr, "wrote debug logs to "+debugLogFileName)
}

// RenderProfiler counts widget renders per breakpoint and times the parts
// of each render (header, slices, labels, legend, footer).
type RenderProfiler struct {
	mu          sync.Mutex
	parts       map[string]*PartTiming
	breakpoints map[string]int
	renders     int
	total       time.Duration
}

// PartTiming accumulates the draw time of one widget part.
type PartTiming struct {
	Name  string
	Count int
	Total time.Duration
	Max   time.Duration
}

var profiler = newRenderProfiler()

func newRenderProfiler() *RenderProfiler {
	return &RenderProfiler{
		parts:       make(map[string]*PartTiming),
		breakpoints: make(map[string]int),
	}
}

// GetProfiler returns the global render profiler.
func GetProfiler() *RenderProfiler {
	return profiler
}

// StartRender starts timing a widget part. Call the returned function
// when the part is drawn. It does nothing unless debug mode is on.
func (p *RenderProfiler) StartRender(part string) func() {
	if !DebugEnabled {
		return func() {}
	}

	start := time.Now()
	return func() {
		elapsed := time.Since(start)
		p.mu.Lock()
		defer p.mu.Unlock()

		t, ok := p.parts[part]
		if !ok {
			t = &PartTiming{Name: part}
			p.parts[part] = t
		}
		t.Count++
		t.Total += elapsed
		t.Max = max(t.Max, elapsed)
	}
}

// RecordRender records one complete widget render at a breakpoint.
func (p *RenderProfiler) RecordRender(breakpoint string, elapsed time.Duration) {
	if !DebugEnabled {
		return
	}

	p.mu.Lock()
	p.renders++
	p.total += elapsed
	p.breakpoints[breakpoint]++
	p.mu.Unlock()

	if elapsed > SlowRenderThreshold {
		PerformanceWarning("slow %s render: %v", breakpoint, elapsed)
	}
}

// Renders returns the number of renders recorded at a breakpoint.
func (p *RenderProfiler) Renders(breakpoint string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.breakpoints[breakpoint]
}

// Part returns the timing of a widget part, if it was recorded.
func (p *RenderProfiler) Part(name string) (PartTiming, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	t, ok := p.parts[name]
	if !ok {
		return PartTiming{}, false
	}
	return *t, true
}

// GetStats returns the render profile as text, slowest part first.
func (p *RenderProfiler) GetStats() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	var sb strings.Builder
	sb.WriteString("=== Render Profile ===\n")
	sb.WriteString(fmt.Sprintf("Renders: %d", p.renders))
	if p.renders > 0 {
		sb.WriteString(fmt.Sprintf(" (avg %v)", p.total/time.Duration(p.renders)))
	}
	sb.WriteString("\n")

	bps := make([]string, 0, len(p.breakpoints))
	for bp := range p.breakpoints {
		bps = append(bps, bp)
	}
	sort.Strings(bps)
	for _, bp := range bps {
		sb.WriteString(fmt.Sprintf("  %s: %d\n", bp, p.breakpoints[bp]))
	}

	parts := make([]*PartTiming, 0, len(p.parts))
	for _, t := range p.parts {
		parts = append(parts, t)
	}
	sort.Slice(parts, func(i, j int) bool { return parts[i].Total > parts[j].Total })
	for _, t := range parts {
		sb.WriteString(fmt.Sprintf("  part %s: count=%d total=%v max=%v\n", t.Name, t.Count, t.Total, t.Max))
	}
	return sb.String()
}

// LogStats writes the render profile to the debug log.
func (p *RenderProfiler) LogStats() {
	if DebugEnabled && DebugLog != nil {
		DebugLog.Print(p.GetStats())
	}
}

// Reset clears all profiling data.
func (p *RenderProfiler) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.parts = make(map[string]*PartTiming)
	p.breakpoints = make(map[string]int)
	p.renders = 0
	p.total = 0
}

// LayoutTrace logs layout resolution events.
func LayoutTrace(format string, v ...interface{}) {
	if DebugEnabled && DebugLog != nil {
		DebugLog.Printf("[LAYOUT] "+format, v...)
	}
}

// RenderTrace logs events while drawing a widget part.
func RenderTrace(part, format string, v ...interface{}) {
	if DebugEnabled && DebugLog != nil {
		DebugLog.Printf("[RENDER:%s] %s", part, fmt.Sprintf(format, v...))
	}
}

// InputTrace logs preview key handling.
func InputTrace(format string, v ...interface{}) {
	if DebugEnabled && DebugLog != nil {
		DebugLog.Printf("[INPUT] "+format, v...)
	}
}

// PerformanceWarning logs slow renders.
func PerformanceWarning(format string, v ...interface{}) {
	if DebugEnabled && DebugLog != nil {
		DebugLog.Printf("[PERF WARNING] "+format, v...)
	}
}
