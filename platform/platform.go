// Package platform supplies the hardware resources for the selected build
// target. The rp2040 provider wires real peripherals; every other target
// gets simulated ones so the firmware runs on a host.
package platform
