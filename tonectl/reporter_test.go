package tonectl

import (
	"testing"

	"tonebox-go/errcode"
)

func TestReportLineBytes(t *testing.T) {
	res, _, _, ser, _, _ := testResources()
	c, err := New(res)
	if err != nil {
		t.Fatal(err)
	}

	for _, freq := range []uint16{50, 283, 1000} {
		if err := c.report(freq); err != nil {
			t.Fatalf("report(%d): %v", freq, err)
		}
	}
	want := "Frequency is 50 Hz\r\nFrequency is 283 Hz\r\nFrequency is 1000 Hz\r\n"
	if got := ser.String(); got != want {
		t.Fatalf("serial bytes = %q, want %q", got, want)
	}
}

func TestReportSkippedBeforeFirstSample(t *testing.T) {
	res, _, _, ser, _, _ := testResources()
	c, err := New(res)
	if err != nil {
		t.Fatal(err)
	}

	c.runReport()
	if got := ser.String(); got != "" {
		t.Fatalf("reporter transmitted %q before any conversion", got)
	}
}

func TestReportStallIsBounded(t *testing.T) {
	res, _, _, ser, _, _ := testResources()
	c, err := New(res)
	if err != nil {
		t.Fatal(err)
	}

	ser.stall(true)
	if err := c.report(440); err != errcode.TxStall {
		t.Fatalf("report on stalled channel = %v, want %v", err, errcode.TxStall)
	}
	if got := ser.String(); got != "" {
		t.Fatalf("stalled channel received %q", got)
	}

	// A recovered channel gets a complete fresh line, not the remainder.
	ser.stall(false)
	if err := c.report(440); err != nil {
		t.Fatal(err)
	}
	if got := ser.String(); got != "Frequency is 440 Hz\r\n" {
		t.Fatalf("serial bytes after recovery = %q", got)
	}
}
