//go:build rp2040

package platform

import (
	"machine"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"
	"tinygo.org/x/drivers/tone"

	"tonebox-go/platform/sim"
	"tonebox-go/tonectl"
	"tonebox-go/types"
)

// nsPerCompareUnit converts reference compare units back to a PWM period.
// The reference timer ran at 16 MHz with prescaler 64 and toggled on
// compare match: period = 2*64*(compare+1)/16MHz = (compare+1) * 8 us.
const nsPerCompareUnit = 8000

// Resources configures the board peripherals. Called once at boot.
func Resources(cfg types.Config) tonectl.Resources {
	machine.InitADC()

	res := tonectl.Resources{
		Pot:    newPot(cfg.ADCChannel),
		Tone:   newBuzzer(machine.Pin(cfg.BuzzerPin)),
		Serial: newSerial(cfg.Serial),
		Wake:   newWakePin(machine.Pin(cfg.WakePin)),
		Tick:   sim.NewTicker(tonectl.TickPeriod),
	}
	if cfg.LEDPin >= 0 {
		res.LED = newLED(machine.Pin(cfg.LEDPin))
	}
	return res
}

// ---- Potentiometer (ADC) ----

type rp2Pot struct {
	adc machine.ADC
	cb  func(raw uint16)
}

func newPot(channel int) *rp2Pot {
	pin := machine.ADC0
	switch channel {
	case 1:
		pin = machine.ADC1
	case 2:
		pin = machine.ADC2
	case 3:
		pin = machine.ADC3
	}
	adc := machine.ADC{Pin: pin}
	adc.Configure(machine.ADCConfig{})
	return &rp2Pot{adc: adc}
}

func (p *rp2Pot) OnSample(fn func(raw uint16)) { p.cb = fn }

// BeginSample runs the conversion on a fresh goroutine so the caller
// returns immediately; an RP2040 conversion takes about 2 us, so the
// completion callback fires long before the next scheduler tick.
func (p *rp2Pot) BeginSample() error {
	go func() {
		raw := p.adc.Get() >> 6 // 16-bit reading scaled to the 10-bit range
		if p.cb != nil {
			p.cb(raw)
		}
	}()
	return nil
}

// ---- Buzzer (PWM tone) ----

type rp2Buzzer struct {
	spk tone.Speaker
	ok  bool
}

func newBuzzer(pin machine.Pin) *rp2Buzzer {
	pwm := pwmForPin(pin)
	if pwm == nil {
		println("platform: no PWM slice for buzzer pin")
		return &rp2Buzzer{}
	}
	spk, err := tone.New(pwm, pin)
	if err != nil {
		println("platform: buzzer pwm:", err.Error())
		return &rp2Buzzer{}
	}
	return &rp2Buzzer{spk: spk, ok: true}
}

func (b *rp2Buzzer) SetTone(compare uint16) error {
	if !b.ok {
		return nil
	}
	return b.spk.SetPeriod(uint64(compare+1) * nsPerCompareUnit)
}

func pwmForPin(pin machine.Pin) tone.PWM {
	slice, err := machine.PWMPeripheral(pin)
	if err != nil {
		return nil
	}
	switch slice {
	case 0:
		return machine.PWM0
	case 1:
		return machine.PWM1
	case 2:
		return machine.PWM2
	case 3:
		return machine.PWM3
	case 4:
		return machine.PWM4
	case 5:
		return machine.PWM5
	case 6:
		return machine.PWM6
	case 7:
		return machine.PWM7
	default:
		return nil
	}
}

// ---- Serial ----

type rp2Serial struct {
	u *uartx.UART
	b [1]byte
}

func newSerial(cfg types.SerialConfig) *rp2Serial {
	u := uartx.UART0
	_ = u.Configure(uartx.UARTConfig{
		BaudRate: cfg.Baud,
		TX:       machine.UART0_TX_PIN,
		RX:       machine.UART0_RX_PIN,
	})
	var par uartx.UARTParity
	switch cfg.Parity {
	case types.ParityEven:
		par = uartx.ParityEven
	case types.ParityOdd:
		par = uartx.ParityOdd
	default:
		par = uartx.ParityNone
	}
	if err := u.SetFormat(cfg.DataBits, cfg.StopBits, par); err != nil {
		println("platform: serial format:", err.Error())
	}
	return &rp2Serial{u: u}
}

// TXReady always holds: uartx queues transmit data in software and applies
// backpressure inside Write, which stands in for the ready-flag poll of the
// reference UART.
func (s *rp2Serial) TXReady() bool { return true }

func (s *rp2Serial) WriteByte(b byte) error {
	s.b[0] = b
	_, err := s.u.Write(s.b[:])
	return err
}

// ---- Wake pin ----

type rp2Wake struct {
	pin machine.Pin
	ch  chan struct{}
}

func newWakePin(pin machine.Pin) *rp2Wake {
	w := &rp2Wake{pin: pin, ch: make(chan struct{}, 1)}
	pin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	// The handler performs no application logic; it only ends a standby
	// halt. Sends must never block the interrupt.
	err := pin.SetInterrupt(machine.PinToggle, func(machine.Pin) {
		select {
		case w.ch <- struct{}{}:
		default:
		}
	})
	if err != nil {
		println("platform: wake irq:", err.Error())
	}
	return w
}

func (w *rp2Wake) High() bool            { return w.pin.Get() }
func (w *rp2Wake) Wake() <-chan struct{} { return w.ch }

// ---- Status LED ----

type rp2LED struct{ pin machine.Pin }

func newLED(pin machine.Pin) *rp2LED {
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	return &rp2LED{pin: pin}
}

func (l *rp2LED) Set(on bool) { l.pin.Set(on) }
