package kel103

import (
	"fmt"
	"strings"
)

// Unit suffixes used by the KEL1xx command set.
const (
	unitVolt = "V"
	unitWatt = "W"
	unitAmp  = "A"
)

// formatValue renders a numeric command argument the way the instrument
// expects it: three decimals followed by the unit suffix.
func formatValue(v float64, unit string) string {
	return fmt.Sprintf("%.3f%s", v, unit)
}

// stripUnit removes any trailing combination of the unit suffix, CR and LF
// from a reply and trims surrounding whitespace, leaving the bare number.
func stripUnit(reply, unit string) string {
	return strings.TrimSpace(strings.TrimRight(reply, unit+"\r\n"))
}

// DynamicCVProfile describes a dynamic constant-voltage load profile: the
// input alternates between Voltage1 and Voltage2 at Frequency Hz with the
// given duty cycle in percent.
type DynamicCVProfile struct {
	Voltage1  float64
	Voltage2  float64
	Frequency float64
	DutyCycle float64
}

func (p DynamicCVProfile) command() string {
	return fmt.Sprintf(":DYN 1,%.3fV,%.3fV,%.3fHZ,%.3f%%",
		p.Voltage1, p.Voltage2, p.Frequency, p.DutyCycle)
}

// DynamicCCProfile describes a dynamic constant-current load profile. The
// slopes are in A/uS and bound how fast the load ramps between Current1
// and Current2.
type DynamicCCProfile struct {
	Slope1    float64
	Slope2    float64
	Current1  float64
	Current2  float64
	Frequency float64
	DutyCycle float64
}

func (p DynamicCCProfile) command() string {
	return fmt.Sprintf(":DYN 2,%.3fA/uS,%.3fA/uS,%.3fA,%.3fA,%.3fHZ,%.3f%%",
		p.Slope1, p.Slope2, p.Current1, p.Current2, p.Frequency, p.DutyCycle)
}
