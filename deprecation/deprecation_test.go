package deprecation

import (
	"bytes"
	"strings"
	"testing"

	"github.com/qbeam/runtimekit/logger"
)

func sampleNotice() Notice {
	return Notice{
		Option:  "noise_amplifier",
		Msg:     "The 'noise_amplifier' resilience option is deprecated",
		Version: "0.12.0",
		Period:  "1 month",
		Remedy:  "Only local folding amplification will be supported.",
	}
}

func TestNoticeString(t *testing.T) {
	n := sampleNotice()
	s := n.String()

	for _, want := range []string{"deprecated", "0.12.0", "1 month", "local folding"} {
		if !strings.Contains(s, want) {
			t.Errorf("expected notice string to contain %q, got %q", want, s)
		}
	}
}

func TestNoticeStringNoRemedy(t *testing.T) {
	n := Notice{Option: "foo", Msg: "foo is deprecated", Version: "0.9.0", Period: "3 months"}
	s := n.String()
	if strings.HasSuffix(s, " ") {
		t.Errorf("expected no trailing space without remedy, got %q", s)
	}
	if !strings.Contains(s, "3 months") {
		t.Errorf("expected period in string, got %q", s)
	}
}

func TestLogReporterEmitsStructuredFields(t *testing.T) {
	var buf bytes.Buffer
	r := NewLogReporter(logger.NewWithWriter(&buf, "test"))
	r.Report(sampleNotice())

	out := buf.String()
	if !strings.Contains(out, `"option":"noise_amplifier"`) {
		t.Errorf("expected option field, got %q", out)
	}
	if !strings.Contains(out, `"version":"0.12.0"`) {
		t.Errorf("expected version field, got %q", out)
	}
	if !strings.Contains(out, `"period":"1 month"`) {
		t.Errorf("expected period field, got %q", out)
	}
	if !strings.Contains(out, `"level":"warn"`) {
		t.Errorf("expected warn level, got %q", out)
	}
}

func TestNewLogReporterNilLogger(t *testing.T) {
	r := NewLogReporter(nil)
	if r == nil {
		t.Fatal("expected non-nil reporter")
	}
	// Must not panic when reporting through the fallback logger.
	r.Report(sampleNotice())
}

func TestRecorderCaptures(t *testing.T) {
	rec := NewRecorder()
	if rec.Count() != 0 {
		t.Errorf("expected empty recorder, got %d", rec.Count())
	}

	rec.Report(sampleNotice())
	rec.Report(Notice{Option: "other", Msg: "other is deprecated"})

	if rec.Count() != 2 {
		t.Fatalf("expected 2 notices, got %d", rec.Count())
	}
	notices := rec.Notices()
	if notices[0].Option != "noise_amplifier" {
		t.Errorf("expected first notice for noise_amplifier, got %q", notices[0].Option)
	}
	if notices[1].Option != "other" {
		t.Errorf("expected second notice for other, got %q", notices[1].Option)
	}
}

func TestRecorderReset(t *testing.T) {
	rec := NewRecorder()
	rec.Report(sampleNotice())
	rec.Reset()
	if rec.Count() != 0 {
		t.Errorf("expected 0 after reset, got %d", rec.Count())
	}
}

func TestRecorderNoticesIsCopy(t *testing.T) {
	rec := NewRecorder()
	rec.Report(sampleNotice())
	notices := rec.Notices()
	notices[0].Option = "mutated"
	if rec.Notices()[0].Option != "noise_amplifier" {
		t.Error("expected internal notices to be unaffected by caller mutation")
	}
}

func TestDefault(t *testing.T) {
	if Default() == nil {
		t.Fatal("expected non-nil default reporter")
	}
}
