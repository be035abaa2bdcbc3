package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparques/irremote/internal/trace"
	"github.com/sparques/irremote/remote"
	"github.com/sparques/irremote/samsung"
)

func TestParseFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{name: "device and command", args: []string{"-device", "sony-tv", "-command", "on_off"}},
		{name: "list", args: []string{"-list"}},
		{name: "missing command", args: []string{"-device", "sony-tv"}, wantErr: true},
		{name: "missing device", args: []string{"-command", "on_off"}, wantErr: true},
		{name: "too many repeats", args: []string{"-device", "sony-tv", "-command", "on_off", "-repeats", "300"}, wantErr: true},
		{name: "unknown flag", args: []string{"-bogus"}, wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			fs, err := parseFlags(tt.args)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, fs)
		})
	}
}

func runArgs(t *testing.T, args ...string) (string, error) {
	t.Helper()
	fs, err := parseFlags(args)
	require.NoError(t, err)
	var out bytes.Buffer
	err = run(context.Background(), fs, &out)
	return out.String(), err
}

func TestRun(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []string
		contains []string
		packets  int
		err      error
	}{
		{
			name: "samsung decode",
			args: []string{"-device", "samsung-dvd", "-command", "on_off"},
			contains: []string{
				"Samsung DVD: carrier 38000 Hz",
				fmt.Sprintf("decoded: 36 bits, data1 %#x, data2 %#x", uint32(samsung.DeviceDVD), uint32(samsung.OnOff)),
			},
			packets: 1,
		},
		{
			name:     "sony repeats",
			args:     []string{"-device", "sony-tv", "-command", "on_off"},
			contains: []string{"Sony TV: carrier 40000 Hz", "packet 0: 2400,600", "decoded: 12 bits"},
			packets:  3,
		},
		{
			name:     "repeat override",
			args:     []string{"-device", "sony-tv", "-command", "on_off", "-repeats", "1"},
			contains: []string{"decoded: 12 bits"},
			packets:  1,
		},
		{
			name:     "hexbug release",
			args:     []string{"-device", "hexbug", "-command", "release"},
			contains: []string{"HEXBUG release: carrier 38000 Hz", "decoded: 9 bits"},
			packets:  10,
		},
		{
			name: "unknown device",
			args: []string{"-device", "toaster", "-command", "on"},
			err:  remote.ErrUnknownDevice,
		},
		{
			name: "unknown command",
			args: []string{"-device", "sony-tv", "-command", "self_destruct"},
			err:  remote.ErrUnknownCommand,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out, err := runArgs(t, tt.args...)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			assert.Equal(t, tt.packets, strings.Count(out, "packet "))
		})
	}
}

func TestRunJSON(t *testing.T) {
	t.Parallel()

	out, err := runArgs(t, "-device", "sony-tv", "-command", "on_off", "-json", "-collectorId", "den")
	require.NoError(t, err)

	var frames []trace.TaggedFrame
	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		var f trace.TaggedFrame
		require.NoError(t, json.Unmarshal(sc.Bytes(), &f))
		frames = append(frames, f)
	}
	require.Len(t, frames, 3)
	for _, f := range frames {
		assert.Equal(t, "den", f.CollectorID)
		assert.Equal(t, "Sony TV", f.Protocol)
		assert.Equal(t, trace.DefaultResolution, f.Frame.Resolution)
		assert.Equal(t, []int{2400, 600}, f.Frame.Data[0])
	}
}

func TestRunList(t *testing.T) {
	t.Parallel()

	out, err := runArgs(t, "-list", "-device", "hexbug")
	require.NoError(t, err)
	assert.Equal(t, "hexbug (HEXBUG):\n"+
		"  back\n  forward\n  left\n  left_weapon\n  release\n  right\n  right_weapon\n  stop\n", out)

	out, err = runArgs(t, "-list")
	require.NoError(t, err)
	for _, name := range []string{remote.SonyTV, remote.LaserDVD, remote.SamsungDVD, remote.LEDStrip} {
		assert.Contains(t, out, name+" (")
	}
}

func TestRunPublishHTTP(t *testing.T) {
	t.Parallel()

	var (
		mu     sync.Mutex
		frames []trace.TaggedFrame
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var f trace.TaggedFrame
		if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		mu.Lock()
		frames = append(frames, f)
		mu.Unlock()
	}))
	defer srv.Close()

	_, err := runArgs(t, "-device", "laser-dvd", "-command", "eject", "-http", srv.URL+"/ir/frame")
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	// first packet and two fast repeats
	require.Len(t, frames, 3)
	assert.Equal(t, "irtrace", frames[0].CollectorID)
	assert.Equal(t, "Laser DVD", frames[0].Protocol)
}

type closeTracker struct {
	closed bool
}

func (c *closeTracker) Publish(context.Context, trace.TaggedFrame) error { return nil }

func (c *closeTracker) Close() error {
	c.closed = true
	return nil
}

// Not parallel: it replaces openSerial.
func TestOpenPublishersClosesOnError(t *testing.T) {
	serial := &closeTracker{}
	orig := openSerial
	openSerial = func(string, int) (trace.Publisher, error) { return serial, nil }
	t.Cleanup(func() { openSerial = orig })

	srv := httptest.NewServer(http.NotFoundHandler())
	url := "ws://" + strings.TrimPrefix(srv.URL, "http://")
	srv.Close()

	fs, err := parseFlags([]string{"-device", "sony-tv", "-command", "on_off", "-serial", "/dev/ttyIR", "-ws", url})
	require.NoError(t, err)
	pubs, err := openPublishers(context.Background(), fs)
	assert.Error(t, err)
	assert.Nil(t, pubs)
	assert.True(t, serial.closed)
}
