package kel103

import "testing"

func TestStripUnit(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		unit  string
		want  string
	}{
		{"volt crlf", "12.500V\r\n", unitVolt, "12.500"},
		{"volt lf only", "12.500V\n", unitVolt, "12.500"},
		{"no unit", "12.500\n", unitVolt, "12.500"},
		{"leading space", " 0.100A\r\n", unitAmp, "0.100"},
		{"watt", "150.000W\n", unitWatt, "150.000"},
		{"bare number", "3.3", unitVolt, "3.3"},
		{"repeated terminators", "5.000V\r\n\r\n", unitVolt, "5.000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripUnit(tt.reply, tt.unit); got != tt.want {
				t.Errorf("stripUnit(%q, %q) = %q, want %q", tt.reply, tt.unit, got, tt.want)
			}
		})
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		value float64
		unit  string
		want  string
	}{
		{1, unitVolt, "1.000V"},
		{0.5, unitAmp, "0.500A"},
		{12.3456, unitWatt, "12.346W"},
		{0, unitVolt, "0.000V"},
	}
	for _, tt := range tests {
		if got := formatValue(tt.value, tt.unit); got != tt.want {
			t.Errorf("formatValue(%v, %q) = %q, want %q", tt.value, tt.unit, got, tt.want)
		}
	}
}

func TestDynamicCVProfileCommand(t *testing.T) {
	p := DynamicCVProfile{Voltage1: 1.0, Voltage2: 2.0, Frequency: 50.0, DutyCycle: 25.0}
	want := ":DYN 1,1.000V,2.000V,50.000HZ,25.000%"
	if got := p.command(); got != want {
		t.Errorf("command() = %q, want %q", got, want)
	}
}

func TestDynamicCCProfileCommand(t *testing.T) {
	p := DynamicCCProfile{
		Slope1:    0.5,
		Slope2:    1.5,
		Current1:  1.0,
		Current2:  2.0,
		Frequency: 100.0,
		DutyCycle: 50.0,
	}
	want := ":DYN 2,0.500A/uS,1.500A/uS,1.000A,2.000A,100.000HZ,50.000%"
	if got := p.command(); got != want {
		t.Errorf("command() = %q, want %q", got, want)
	}
}
