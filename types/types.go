package types

// ---- Shared sample value ----

// Sample is the most recent potentiometer reading after clamping, together
// with the PWM compare value derived from it. One Sample lives in a
// single-slot mailbox for the process lifetime; every conversion overwrites
// it and no history is kept on the device.
type Sample struct {
	Freq    uint16 // clamped frequency, Hz (50..1000)
	Compare uint16 // PWM compare units (124..2499)
}

// ---- Power state ----

type PowerState uint8

const (
	PowerActive PowerState = iota
	PowerStandby
)

func (s PowerState) String() string {
	if s == PowerStandby {
		return "standby"
	}
	return "active"
}

// ---- Serial framing ----

// Parity is a small enum to avoid string parsing on the device side.
type Parity uint8

const (
	ParityNone Parity = iota
	ParityEven
	ParityOdd
)

type SerialConfig struct {
	Baud     uint32
	DataBits uint8
	StopBits uint8
	Parity   Parity
}

// ---- Device configuration ----

// Config is the compile-time device configuration applied by the platform
// provider at boot. Pin numbers follow the target's numbering scheme.
type Config struct {
	Serial SerialConfig

	BuzzerPin int
	WakePin   int
	LEDPin    int

	ADCChannel int
}

// DefaultConfig matches the reference board: 9600 8N1 serial, ADC channel 0.
func DefaultConfig() Config {
	return Config{
		Serial: SerialConfig{
			Baud:     9600,
			DataBits: 8,
			StopBits: 1,
			Parity:   ParityNone,
		},
		BuzzerPin:  15,
		WakePin:    2,
		LEDPin:     25,
		ADCChannel: 0,
	}
}
