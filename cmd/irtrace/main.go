// Command irtrace renders a device command through the transmit engine on
// simulated timers and prints the resulting pulse train. The frames can be
// published to a serial port, a websocket or an HTTP collector. With -pin
// the command is also sent on a GPIO of a Linux board.
//
//	irtrace -device samsung-dvd -command on_off
//	irtrace -device sony-tv -command volume_up -ws ws://localhost:8080/ir/ws
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/sparques/irremote"
	"github.com/sparques/irremote/internal/trace"
	"github.com/sparques/irremote/periphtx"
	"github.com/sparques/irremote/remote"
	"github.com/sparques/irremote/sim"
)

type flagSet struct {
	device     string
	command    string
	list       bool
	repeats    uint
	delay      uint
	resolution int
	asJSON     bool
	serialPort string
	baudRate   int
	wsURL      string
	httpURL    string
	cid        string
	pin        string
}

func parseFlags(args []string) (*flagSet, error) {
	var fs flagSet
	f := flag.NewFlagSet("irtrace", flag.ContinueOnError)
	f.StringVar(&fs.device, "device", "", "Device to render, e.g. "+remote.SonyTV)
	f.StringVar(&fs.command, "command", "", "Command name")
	f.BoolVar(&fs.list, "list", false, "List devices and commands")
	f.UintVar(&fs.repeats, "repeats", 0, "Override the number of transmissions")
	f.UintVar(&fs.delay, "delay", 0, "Post-transmission delay in milliseconds")
	f.IntVar(&fs.resolution, "resolution", trace.DefaultResolution, "Microseconds per frame unit")
	f.BoolVar(&fs.asJSON, "json", false, "Print frames as JSON lines")
	f.StringVar(&fs.serialPort, "serial", "", "Publish frames to the serial port in the form /dev/xxx")
	f.IntVar(&fs.baudRate, "baud", 9600, "Baud rate of the serial port")
	f.StringVar(&fs.wsURL, "ws", "", "Publish frames to a websocket server")
	f.StringVar(&fs.httpURL, "http", "", "POST frames to a collector URL")
	f.StringVar(&fs.cid, "collectorId", "irtrace", "Id attached to published frames")
	f.StringVar(&fs.pin, "pin", "", "Transmit on this GPIO, e.g. GPIO18")
	if err := f.Parse(args); err != nil {
		return nil, err
	}
	if fs.repeats > 255 {
		return nil, errors.New("repeats must be below 256")
	}
	if !fs.list && (fs.device == "" || fs.command == "") {
		f.Usage()
		return nil, errors.New("device and command must be specified")
	}
	return &fs, nil
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	fs, err := parseFlags(os.Args[1:])
	if err != nil {
		slog.Error("bad arguments", "error", err)
		os.Exit(2)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, fs, os.Stdout); err != nil {
		slog.Error("irtrace failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, fs *flagSet, out io.Writer) error {
	// The remote is only used as the device registry here.
	r, err := remote.New(nil)
	if err != nil {
		return err
	}
	if fs.list {
		return list(r, fs.device, out)
	}

	dev, err := r.Device(fs.device)
	if err != nil {
		return err
	}
	cmd, err := dev.Lookup(fs.command)
	if err != nil {
		return err
	}

	desc := dev.DescriptorFor(cmd)
	tr := sim.Record(desc, cmd.Data1, cmd.Data2, uint32(fs.delay), uint8(fs.repeats))
	frames, err := framesOf(tr, desc, fs)
	if err != nil {
		return err
	}
	if err := printTrace(out, desc, tr, frames, fs.asJSON); err != nil {
		return err
	}

	if fs.pin != "" {
		if err := transmit(fs, dev, cmd); err != nil {
			return err
		}
	}

	pubs, err := openPublishers(ctx, fs)
	if err != nil {
		return err
	}
	defer closeAll(pubs)
	return publish(ctx, pubs, frames)
}

// transmit sends cmd on fs.pin through a fresh engine and waits for it.
func transmit(fs *flagSet, dev *remote.Device, cmd remote.Command) error {
	t, err := periphtx.Open(fs.pin)
	if err != nil {
		return err
	}
	e := irremote.NewEngine(t, irremote.AfterFuncDelay{})
	e.Send(dev.DescriptorFor(cmd), cmd.Data1, cmd.Data2, uint32(fs.delay), uint8(fs.repeats))
	e.WaitUntilComplete()
	slog.Info("transmitted", "pin", fs.pin, "device", dev.Name, "command", fs.command)
	return nil
}

func framesOf(tr sim.Trace, desc *irremote.Descriptor, fs *flagSet) ([]trace.TaggedFrame, error) {
	var frames []trace.TaggedFrame
	for _, packet := range tr.Packets() {
		f, err := trace.NewFrame(packet, fs.resolution)
		if err != nil {
			return nil, err
		}
		frames = append(frames, trace.TaggedFrame{
			CollectorID: fs.cid,
			Protocol:    desc.Name,
			Frame:       f,
		})
	}
	return frames, nil
}

func printTrace(out io.Writer, desc *irremote.Descriptor, tr sim.Trace, frames []trace.TaggedFrame, asJSON bool) error {
	if asJSON {
		lp := trace.NewLinePublisher(out)
		for _, f := range frames {
			if err := lp.Publish(context.Background(), f); err != nil {
				return err
			}
		}
		return nil
	}

	fmt.Fprintf(out, "%s: carrier %d Hz, %d intervals, %d marks, %v on air\n",
		desc.Name, tr.Carrier, len(tr.Intervals), tr.Marks(), tr.Duration().Duration())
	for i, packet := range tr.Packets() {
		fmt.Fprintf(out, "packet %d:", i)
		for _, iv := range packet {
			fmt.Fprintf(out, " %d,%d", iv.Mark, iv.Space)
		}
		fmt.Fprintln(out)
	}

	if len(tr.Intervals) > 0 {
		data1, data2, bits, err := irremote.Decode(desc, tr.Packets()[0])
		if err != nil {
			return fmt.Errorf("decode: %w", err)
		}
		fmt.Fprintf(out, "decoded: %d bits, data1 %#x, data2 %#x\n", bits, data1, data2)
	}
	return nil
}

func list(r *remote.Remote, device string, out io.Writer) error {
	names := r.DeviceNames()
	if device != "" {
		if _, err := r.Device(device); err == nil {
			names = []string{device}
		}
	}
	for _, name := range names {
		dev, _ := r.Device(name)
		cmds := make([]string, 0, len(dev.Commands))
		for c := range dev.Commands {
			cmds = append(cmds, c)
		}
		sort.Strings(cmds)
		fmt.Fprintf(out, "%s (%s):\n", name, dev.Descriptor.Name)
		for _, c := range cmds {
			fmt.Fprintf(out, "  %s\n", c)
		}
	}
	return nil
}

// openSerial is replaced in tests.
var openSerial = func(name string, baud int) (trace.Publisher, error) {
	p, err := trace.OpenSerial(name, baud)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func openPublishers(ctx context.Context, fs *flagSet) ([]trace.Publisher, error) {
	var pubs []trace.Publisher
	if fs.serialPort != "" {
		p, err := openSerial(fs.serialPort, fs.baudRate)
		if err != nil {
			return nil, err
		}
		slog.Info("publishing to serial port", "port", fs.serialPort, "baud", fs.baudRate)
		pubs = append(pubs, p)
	}
	if fs.wsURL != "" {
		p, err := trace.DialWebsocket(ctx, fs.wsURL)
		if err != nil {
			closeAll(pubs)
			return nil, err
		}
		slog.Info("publishing to websocket", "url", fs.wsURL)
		pubs = append(pubs, p)
	}
	if fs.httpURL != "" {
		slog.Info("publishing to collector", "url", fs.httpURL)
		pubs = append(pubs, &trace.HTTPPublisher{URL: fs.httpURL})
	}
	return pubs, nil
}

func closeAll(pubs []trace.Publisher) {
	for _, p := range pubs {
		if err := p.Close(); err != nil {
			slog.Warn("close publisher", "error", err)
		}
	}
}

// publish sends every frame to every publisher, one goroutine per
// publisher.
func publish(ctx context.Context, pubs []trace.Publisher, frames []trace.TaggedFrame) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, p := range pubs {
		p := p
		g.Go(func() error {
			for _, f := range frames {
				if err := p.Publish(ctx, f); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}
