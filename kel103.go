// Package kel103 controls Korad KEL103 DC electronic loads over a serial
// port. The instrument speaks a line-based ASCII protocol with one reply
// per query and no write acknowledgement, so every set command is verified
// by reading the setpoint back.
package kel103

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	deviceModel = "KEL103"

	// setTolerance is the absolute difference allowed between a requested
	// value and the readback before a set command is reported as failed.
	setTolerance = 1e-9
)

// Device is a live connection to one electronic load. It is not safe for
// concurrent use; the protocol allows a single in-flight request, so
// callers running from multiple goroutines must serialize access
// themselves.
type Device struct {
	w io.Writer
	r *bufio.Reader
	c io.Closer
}

// Open connects to the load on the given com port and verifies that the
// peer identifies itself as a KEL103. On Linux the port is a device path
// (e.g. /dev/ttyACM0), on Windows a port name (e.g. COM3).
func Open(port string, baudrate int) (*Device, error) {
	p, err := openPort(port, baudrate)
	if err != nil {
		return nil, err
	}
	return NewDevice(p)
}

// NewDevice wraps an already-open transport. The transport's reads must
// not block forever: a read that can produce no data should fail (the
// serial transport maps its timeout to ErrReadTimeout). The identification
// handshake runs before the device is returned; on any failure the
// transport is closed and no device is handed out.
func NewDevice(rw io.ReadWriteCloser) (*Device, error) {
	d := &Device{
		w: rw,
		r: bufio.NewReader(rw),
		c: rw,
	}
	info, err := d.Info()
	if err != nil {
		rw.Close()
		return nil, err
	}
	if !strings.Contains(info, deviceModel) {
		rw.Close()
		return nil, &ModelError{Reply: info}
	}
	return d, nil
}

// Close releases the underlying transport.
func (d *Device) Close() error {
	return d.c.Close()
}

// Info returns the raw identification string from *IDN?.
func (d *Device) Info() (string, error) {
	return d.sendRecv("*IDN?")
}

// MeasureVoltage reads the voltage at the input terminals.
func (d *Device) MeasureVoltage() (float64, error) {
	return d.queryValue(":MEAS:VOLT?", unitVolt)
}

// SetpointVoltage reads the configured CV voltage level.
func (d *Device) SetpointVoltage() (float64, error) {
	return d.queryValue(":VOLT?", unitVolt)
}

// SetVoltage sets the CV voltage level and verifies the readback.
func (d *Device) SetVoltage(volts float64) error {
	if err := d.send(":VOLT " + formatValue(volts, unitVolt)); err != nil {
		return err
	}
	return d.verify("voltage", volts, d.SetpointVoltage)
}

// MeasurePower reads the power dissipated at the input terminals.
func (d *Device) MeasurePower() (float64, error) {
	return d.queryValue(":MEAS:POW?", unitWatt)
}

// SetpointPower reads the configured CW power level.
func (d *Device) SetpointPower() (float64, error) {
	return d.queryValue(":POW?", unitWatt)
}

// SetPower sets the CW power level and verifies the readback.
func (d *Device) SetPower(watts float64) error {
	if err := d.send(":POW " + formatValue(watts, unitWatt)); err != nil {
		return err
	}
	return d.verify("power", watts, d.SetpointPower)
}

// MeasureCurrent reads the current through the input terminals.
func (d *Device) MeasureCurrent() (float64, error) {
	return d.queryValue(":MEAS:CURR?", unitAmp)
}

// SetpointCurrent reads the configured CC current level.
func (d *Device) SetpointCurrent() (float64, error) {
	return d.queryValue(":CURR?", unitAmp)
}

// SetCurrent sets the CC current level and verifies the readback.
func (d *Device) SetCurrent(amps float64) error {
	if err := d.send(":CURR " + formatValue(amps, unitAmp)); err != nil {
		return err
	}
	return d.verify("current", amps, d.SetpointCurrent)
}

// OutputEnabled reports whether the load input is enabled.
func (d *Device) OutputEnabled() (bool, error) {
	reply, err := d.sendRecv(":INP?")
	if err != nil {
		return false, err
	}
	switch {
	case strings.Contains(reply, "OFF"):
		return false, nil
	case strings.Contains(reply, "ON"):
		return true, nil
	}
	return false, &ProtocolError{Query: ":INP?", Reply: reply}
}

// SetOutput enables or disables the load input and verifies the readback.
func (d *Device) SetOutput(on bool) error {
	cmd := ":INP 0"
	if on {
		cmd = ":INP 1"
	}
	if err := d.send(cmd); err != nil {
		return err
	}
	actual, err := d.OutputEnabled()
	if err != nil {
		return err
	}
	if actual != on {
		return &MismatchError{
			Op:       "output",
			Expected: strconv.FormatBool(on),
			Actual:   strconv.FormatBool(actual),
		}
	}
	return nil
}

// The mode commands are fire-and-forget: this protocol revision has no
// query that reliably reports the active regulation mode, so there is
// nothing to verify against.

// SetConstantCurrent switches the load to constant current mode.
func (d *Device) SetConstantCurrent() error {
	return d.send(":FUNC CC")
}

// SetConstantVoltage switches the load to constant voltage mode.
func (d *Device) SetConstantVoltage() error {
	return d.send(":FUNC CV")
}

// SetConstantPower switches the load to constant power mode.
func (d *Device) SetConstantPower() error {
	return d.send(":FUNC CW")
}

// SetConstantResistance switches the load to constant resistance mode.
func (d *Device) SetConstantResistance() error {
	return d.send(":FUNC CR")
}

// SetDynamicCV configures a dynamic constant-voltage profile. Like the
// mode commands this is not verified.
func (d *Device) SetDynamicCV(p DynamicCVProfile) error {
	return d.send(p.command())
}

// SetDynamicCC configures a dynamic constant-current profile. Like the
// mode commands this is not verified.
func (d *Device) SetDynamicCC(p DynamicCCProfile) error {
	return d.send(p.command())
}

// DynamicMode returns the current dynamic mode settings as reported by the
// instrument, with only the trailing newline stripped.
func (d *Device) DynamicMode() (string, error) {
	reply, err := d.sendRecv(":DYN?")
	if err != nil {
		return "", err
	}
	return strings.TrimRight(reply, "\n"), nil
}

// queryValue sends a query and parses the numeric reply after stripping
// the quantity's unit suffix.
func (d *Device) queryValue(query, unit string) (float64, error) {
	reply, err := d.sendRecv(query)
	if err != nil {
		return 0, err
	}
	text := stripUnit(reply, unit)
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, &ParseError{Text: text, Err: err}
	}
	return v, nil
}

// verify reads a setpoint back and compares it to the requested value.
func (d *Device) verify(op string, want float64, readback func() (float64, error)) error {
	got, err := readback()
	if err != nil {
		return err
	}
	if math.Abs(got-want) > setTolerance {
		return &MismatchError{
			Op:       op,
			Expected: strconv.FormatFloat(want, 'g', -1, 64),
			Actual:   strconv.FormatFloat(got, 'g', -1, 64),
		}
	}
	return nil
}

// sendRecv sends one command and consumes exactly one reply line. The
// protocol is strictly request/response; pipelining a second command
// before reading the first reply is a caller error this layer does not
// guard against.
func (d *Device) sendRecv(line string) (string, error) {
	if err := d.send(line); err != nil {
		return "", err
	}
	reply, err := d.r.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read reply to %q: %w", line, err)
	}
	if !utf8.ValidString(reply) {
		return "", &DecodeError{Reply: []byte(reply)}
	}
	return reply, nil
}

// send transmits one newline-terminated command and flushes the transport
// when it supports flushing. Never retried.
func (d *Device) send(line string) error {
	if _, err := io.WriteString(d.w, line+"\n"); err != nil {
		return fmt.Errorf("failed to send command %q: %w", line, err)
	}
	if f, ok := d.w.(interface{ Drain() error }); ok {
		if err := f.Drain(); err != nil {
			return fmt.Errorf("failed to flush command %q: %w", line, err)
		}
	}
	return nil
}
