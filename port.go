package kel103

import (
	"fmt"
	"time"

	"go.bug.st/serial"
)

const readTimeout = 1 * time.Second

// openPort opens the com port in 8N1 mode at the requested baudrate with
// the uniform 1 second read timeout applied to every reply read.
func openPort(port string, baudrate int) (*serialPort, error) {
	mode := &serial.Mode{
		BaudRate: baudrate,
		Parity:   serial.NoParity,
		DataBits: 8,
		StopBits: serial.OneStopBit,
	}
	p, err := serial.Open(port, mode)
	if err != nil {
		return nil, fmt.Errorf("failed to open com port %q : %v", port, err)
	}
	if err := p.SetReadTimeout(readTimeout); err != nil {
		p.Close()
		return nil, fmt.Errorf("failed to set read timeout: %v", err)
	}
	p.ResetInputBuffer()
	p.ResetOutputBuffer()
	return &serialPort{port: p}, nil
}

// serialPort adapts a serial.Port to the io.ReadWriteCloser the driver
// wants. An expired read timeout comes back from go.bug.st/serial as a
// zero-byte read with a nil error, which would make a buffered reader spin;
// it is converted to ErrReadTimeout here.
type serialPort struct {
	port serial.Port
}

func (s *serialPort) Read(p []byte) (int, error) {
	n, err := s.port.Read(p)
	if n == 0 && err == nil {
		return 0, ErrReadTimeout
	}
	return n, err
}

func (s *serialPort) Write(p []byte) (int, error) {
	return s.port.Write(p)
}

func (s *serialPort) Close() error {
	return s.port.Close()
}
