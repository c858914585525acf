package validator

import (
	"strings"
	"testing"
)

var cpuSpec = Spec{ExpectedCategory: CategoryCPULoad, ExpectedFormat: FormatLiteral}

func TestValidate_CorrectLiteralAnswer(t *testing.T) {
	res := Validate("CPU load is 42%.", cpuSpec)
	if !res.IsCorrect {
		t.Fatalf("expected correct, got %+v", res)
	}
	if res.Severity != SeverityNone {
		t.Errorf("severity = %q, want NONE", res.Severity)
	}
	if res.ErrorType != "" {
		t.Errorf("error type = %q, want empty", res.ErrorType)
	}
	if res.NormalizedAnswer != "CPU load is 42%" {
		t.Errorf("normalized = %q", res.NormalizedAnswer)
	}
}

func TestValidate_ShapeVariants(t *testing.T) {
	tests := []struct {
		answer string
		spec   Spec
		ok     bool
	}{
		{"CPU load is 42%", cpuSpec, true},
		{"cpu load equals 42%", cpuSpec, true},
		{"Processor load shows 42%.", cpuSpec, true},
		{"CPU load = 42%", cpuSpec, true},
		{"Load is high.", cpuSpec, true}, // bare "load" defaults to CPU_LOAD
		{"Memory usage displays 80%", Spec{CategoryMemoryUsage, FormatLiteral}, true},
		{"Disk usage is 75%", Spec{CategoryDiskUsage, FormatLiteral}, true},
		{"Response time is 200ms", Spec{CategoryResponseTime, FormatLiteral}, true},
		{"Status code is 404", Spec{CategoryStatusCode, FormatLiteral}, true},
		{"just some words", cpuSpec, false},
		{"42%", cpuSpec, false},
	}

	for _, tt := range tests {
		res := Validate(tt.answer, tt.spec)
		if res.IsCorrect != tt.ok {
			t.Errorf("Validate(%q): correct = %v, want %v (%+v)", tt.answer, res.IsCorrect, tt.ok, res)
		}
	}
}

func TestValidate_EmptyAnswer(t *testing.T) {
	for _, answer := range []string{"", "   ", "\t\n"} {
		res := Validate(answer, cpuSpec)
		if res.IsCorrect {
			t.Errorf("Validate(%q): expected fail", answer)
		}
		if res.Severity != SeveritySevere || res.ErrorType != ErrorEmptyAnswer {
			t.Errorf("Validate(%q) = %q/%q, want SEVERE/EMPTY_ANSWER", answer, res.Severity, res.ErrorType)
		}
	}
}

func TestValidate_MultiSentence(t *testing.T) {
	tests := []string{
		"CPU load is 42%. Everything is fine.",
		"Is it high? CPU load is 42%",
		"CPU load is 42%! Really! High!",
	}
	for _, answer := range tests {
		res := Validate(answer, cpuSpec)
		if res.ErrorType != ErrorMultiSentence {
			t.Errorf("Validate(%q): error type = %q, want MULTI_SENTENCE", answer, res.ErrorType)
		}
		if res.Severity != SeveritySevere {
			t.Errorf("Validate(%q): severity = %q, want SEVERE", answer, res.Severity)
		}
	}
}

func TestValidate_FormatViolation(t *testing.T) {
	res := Validate("high CPU right now", cpuSpec)
	if res.ErrorType != ErrorFormatViolation || res.Severity != SeveritySevere {
		t.Errorf("got %q/%q, want SEVERE/FORMAT_VIOLATION", res.Severity, res.ErrorType)
	}
}

func TestValidate_WrongCategory(t *testing.T) {
	res := Validate("Memory is 80%.", cpuSpec)
	if res.ErrorType != ErrorWrongCategory {
		t.Fatalf("error type = %q, want WRONG_CATEGORY", res.ErrorType)
	}
	if len(res.Messages) == 0 {
		t.Fatal("expected a message naming both categories")
	}
	msg := res.Messages[0]
	for _, want := range []string{"CPU_LOAD", "MEMORY_USAGE"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message %q does not name %s", msg, want)
		}
	}
}

func TestValidate_MultipleMetrics(t *testing.T) {
	tests := []string{
		"CPU load is 42% and memory is 80%.",
		"CPU load is higher than the disk usage",
		// Subject category matches, extra metric hides in the value.
		"CPU load is 42% of ram",
	}
	for _, answer := range tests {
		res := Validate(answer, cpuSpec)
		if res.ErrorType != ErrorMultipleMetrics {
			t.Errorf("Validate(%q): error type = %q, want MULTIPLE_METRICS", answer, res.ErrorType)
		}
	}
}

func TestValidate_ValueVariance(t *testing.T) {
	tests := []string{
		"The CPU load seems to be 42%.",
		"CPU load appears to be 42%",
		"CPU load looks like 42%",
		"The CPU load is 42%.",
	}
	for _, answer := range tests {
		res := Validate(answer, cpuSpec)
		if res.IsCorrect {
			t.Errorf("Validate(%q): expected not correct", answer)
		}
		if res.Severity != SeverityMild || res.ErrorType != ErrorValueVariance {
			t.Errorf("Validate(%q) = %q/%q, want MILD/VALUE_VARIANCE", answer, res.Severity, res.ErrorType)
		}
	}
}

func TestValidate_FreeformAlwaysAccepted(t *testing.T) {
	spec := Spec{ExpectedCategory: CategoryCPULoad, ExpectedFormat: "freeform"}
	res := Validate("anything goes here, even two sentences. yes.", spec)
	if !res.IsCorrect || res.Severity != SeverityNone {
		t.Errorf("freeform answer rejected: %+v", res)
	}
}

func TestValidate_Idempotent(t *testing.T) {
	answers := []string{
		"CPU load is 42%.",
		"Memory is 80%.",
		"",
		"The CPU load seems to be 42%.",
	}
	for _, answer := range answers {
		first := Validate(answer, cpuSpec)
		for range 5 {
			again := Validate(answer, cpuSpec)
			if again.IsCorrect != first.IsCorrect ||
				again.Severity != first.Severity ||
				again.ErrorType != first.ErrorType {
				t.Errorf("Validate(%q) not deterministic: %+v vs %+v", answer, first, again)
			}
		}
	}
}

func TestDetectCategory(t *testing.T) {
	tests := []struct {
		text string
		want Category
		ok   bool
	}{
		{"CPU load", CategoryCPULoad, true},
		{"the processor", CategoryCPULoad, true},
		{"load", CategoryCPULoad, true},
		{"Memory usage", CategoryMemoryUsage, true},
		{"free RAM", CategoryMemoryUsage, true},
		{"disk", CategoryDiskUsage, true},
		{"storage", CategoryDiskUsage, true},
		{"response time", CategoryResponseTime, true},
		{"latency", CategoryResponseTime, true},
		{"status code", CategoryStatusCode, true},
		{"the weather", "", false},
		// "download" must not match "load" mid-word.
		{"download speed", "", false},
	}
	for _, tt := range tests {
		got, ok := DetectCategory(tt.text)
		if got != tt.want || ok != tt.ok {
			t.Errorf("DetectCategory(%q) = (%q, %v), want (%q, %v)", tt.text, got, ok, tt.want, tt.ok)
		}
	}
}

func TestCategoriesIn(t *testing.T) {
	cats := CategoriesIn("cpu load is 42% and memory is 80% while disk fills up")
	if len(cats) != 3 {
		t.Fatalf("got %v, want 3 categories", cats)
	}
}

