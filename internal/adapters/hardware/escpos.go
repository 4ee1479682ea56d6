package hardware

import (
	"bufio"
	"context"
	"net"
	"strconv"
	"strings"
	"time"

	perr "tilltalk/internal/platform/errors"
	"tilltalk/internal/platform/logger"
)

const defaultTimeout = 3 * time.Second

// escpos drives a networked ESC/POS receipt printer. The cash drawer hangs
// off the printer's kick connector, and the scale answers a weight query on
// the same link, so one address covers all three peripherals.
type escpos struct {
	addr    string
	timeout time.Duration
	log     logger.Logger
	dial    func(ctx context.Context, addr string) (net.Conn, error)
}

// NewESCPOS returns a bridge speaking ESC/POS over TCP to addr
func NewESCPOS(addr string, timeout time.Duration) Bridge {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &escpos{
		addr:    addr,
		timeout: timeout,
		log:     *logger.Named("hardware"),
		dial: func(ctx context.Context, addr string) (net.Conn, error) {
			var d net.Dialer
			return d.DialContext(ctx, "tcp", addr)
		},
	}
}

// drawer kick: ESC p, pin 2, 100ms on, 250ms off
var kickPulse = []byte{0x1b, 0x70, 0x00, 0x32, 0x7d}

// initialize, print a marker line, feed and cut
var testPage = []byte("\x1b@TILLTALK PRINTER TEST\n\x1bd\x04\x1dV\x00")

func (e *escpos) OpenDrawer(ctx context.Context) error {
	return e.send(ctx, "open drawer", kickPulse)
}

func (e *escpos) PrintTest(ctx context.Context) error {
	return e.send(ctx, "print test", testPage)
}

// ReadScale sends the weight query and parses the reply line, e.g. "ST,+001.250kg"
func (e *escpos) ReadScale(ctx context.Context) (float64, error) {
	conn, err := e.connect(ctx)
	if err != nil {
		return 0, err
	}
	defer func() { _ = conn.Close() }()

	if _, err := conn.Write([]byte("W\r\n")); err != nil {
		return 0, perr.Wrapf(err, perr.ErrorCodeUnavailable, "scale query failed")
	}
	line, err := bufio.NewReader(conn).ReadString('\n')
	if err != nil {
		return 0, perr.Wrapf(err, perr.ErrorCodeUnavailable, "scale read failed")
	}
	kg, err := parseScaleReply(line)
	if err != nil {
		return 0, err
	}
	e.log.Debug().Float64("kg", kg).Msg("scale sample")
	return kg, nil
}

func (e *escpos) send(ctx context.Context, what string, payload []byte) error {
	conn, err := e.connect(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()
	if _, err := conn.Write(payload); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnavailable, "%s write failed", what)
	}
	e.log.Debug().Str("action", what).Str("addr", e.addr).Msg("peripheral command sent")
	return nil
}

func (e *escpos) connect(ctx context.Context) (net.Conn, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()
	conn, err := e.dial(ctx, e.addr)
	if err != nil {
		return nil, ErrUnavailable
	}
	_ = conn.SetDeadline(time.Now().Add(e.timeout))
	return conn, nil
}

// parseScaleReply extracts the kilogram value from a scale status line
func parseScaleReply(line string) (float64, error) {
	s := strings.TrimSpace(line)
	if i := strings.LastIndex(s, ","); i >= 0 {
		s = s[i+1:]
	}
	s = strings.TrimSuffix(strings.ToLower(s), "kg")
	s = strings.TrimSpace(strings.TrimPrefix(s, "+"))
	kg, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, perr.Newf(perr.ErrorCodeUnknown, "unreadable scale reply %q", line)
	}
	return kg, nil
}
