package tonectl

import (
	"runtime"

	"tonebox-go/errcode"
	"tonebox-go/x/conv"
)

const (
	reportPrefix = "Frequency is "
	reportSuffix = " Hz\r\n"

	// prefix + up to 4 digits + suffix
	reportLineMax = len(reportPrefix) + 4 + len(reportSuffix)
)

// runReport is the reporter task action: render the current frequency and
// transmit the line. Nothing is reported before the first conversion
// completes. This is the one action allowed to block, and only for well
// under a tick period on a healthy serial channel.
func (c *Controller) runReport() {
	s, ok := c.box.Load()
	if !ok {
		return
	}
	if err := c.report(s.Freq); err != nil {
		println("tonectl: report:", err.Error())
	}
}

// report renders "Frequency is <n> Hz\r\n" without allocation and sends it
// byte by byte. On a transmit stall the remainder of the line is abandoned,
// not retried; the next activation sends a fresh value.
func (c *Controller) report(freq uint16) error {
	var line [reportLineMax]byte
	var digits [4]byte
	out := append(line[:0], reportPrefix...)
	out = append(out, conv.Utoa(digits[:], uint64(freq))...)
	out = append(out, reportSuffix...)

	for _, b := range out {
		if err := c.writeByte(b); err != nil {
			return err
		}
	}
	return nil
}

// writeByte polls the transmit-ready condition with an explicit bound
// before writing, yielding between polls.
func (c *Controller) writeByte(b byte) error {
	for n := 0; n < txReadyPolls; n++ {
		if c.res.Serial.TXReady() {
			return c.res.Serial.WriteByte(b)
		}
		runtime.Gosched()
	}
	return errcode.TxStall
}
