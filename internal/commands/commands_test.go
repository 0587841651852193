package commands

import (
	"errors"
	"flag"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeViewer struct {
	warpIndex   int
	warpName    string
	paused      bool
	orbits      bool
	fps, mem    bool
	scale       float32
	shotDir     string
	shotErr     error
}

func (f *fakeViewer) WarpTo(i int) error {
	if i < 0 || i > 6 {
		return fmt.Errorf("no body %d", i+1)
	}
	f.warpIndex = i
	return nil
}
func (f *fakeViewer) WarpToName(name string) error { f.warpName = name; return nil }
func (f *fakeViewer) Paused() bool                 { return f.paused }
func (f *fakeViewer) SetPaused(p bool)             { f.paused = p }
func (f *fakeViewer) OrbitsVisible() bool          { return f.orbits }
func (f *fakeViewer) SetOrbitsVisible(v bool)      { f.orbits = v }
func (f *fakeViewer) SetShowFPS(v bool)            { f.fps = v }
func (f *fakeViewer) SetShowMemAlloc(v bool)       { f.mem = v }
func (f *fakeViewer) SetTimeScale(s float32) error { f.scale = s; return nil }
func (f *fakeViewer) Screenshot(dir string) (string, error) {
	f.shotDir = dir
	return dir + "/frame.png", f.shotErr
}

func setup() (*Registry, *fakeViewer, *[]string) {
	r := NewRegistry()
	v := &fakeViewer{warpIndex: -1}
	var out []string
	RegisterViewer(r, v, func(format string, args ...any) {
		out = append(out, fmt.Sprintf(format, args...))
	})
	return r, v, &out
}

func run(t *testing.T, r *Registry, line string) error {
	t.Helper()
	args, ok := Parse(line)
	require.True(t, ok, line)
	return r.Execute(args)
}

func TestParse(t *testing.T) {
	args, ok := Parse("cmd warp Gas Giant")
	assert.True(t, ok)
	assert.Equal(t, []string{"warp", "Gas", "Giant"}, args)

	args, ok = Parse("cmd   ")
	assert.True(t, ok)
	assert.Nil(t, args)

	_, ok = Parse("hello there")
	assert.False(t, ok)
	_, ok = Parse("CMD warp 1")
	assert.False(t, ok)
}

func TestExecuteErrors(t *testing.T) {
	r, _, _ := setup()
	assert.EqualError(t, r.Execute(nil), "missing subcommand")
	assert.EqualError(t, r.Execute([]string{"teleport"}), "unknown command: teleport")
	assert.Error(t, r.Execute([]string{"speed", "-bogus"}))
}

func TestWarp(t *testing.T) {
	r, v, _ := setup()
	require.NoError(t, run(t, r, "cmd warp 3"))
	assert.Equal(t, 2, v.warpIndex)

	require.NoError(t, run(t, r, "cmd warp Gas Giant"))
	assert.Equal(t, "Gas Giant", v.warpName)

	assert.Error(t, run(t, r, "cmd warp 0"))
	assert.Error(t, run(t, r, "cmd warp"))
}

func TestPauseToggleAndExplicit(t *testing.T) {
	r, v, _ := setup()
	require.NoError(t, run(t, r, "cmd pause"))
	assert.True(t, v.paused)
	require.NoError(t, run(t, r, "cmd pause"))
	assert.False(t, v.paused)

	require.NoError(t, run(t, r, "cmd pause -on"))
	assert.True(t, v.paused)
	require.NoError(t, run(t, r, "cmd pause -on"))
	assert.True(t, v.paused)
	// Flags reset between runs: no flag means toggle again.
	require.NoError(t, run(t, r, "cmd pause"))
	assert.False(t, v.paused)
}

func TestOrbitsFpsSpeed(t *testing.T) {
	r, v, _ := setup()
	require.NoError(t, run(t, r, "cmd orbits"))
	assert.True(t, v.orbits)
	require.NoError(t, run(t, r, "cmd orbits -show=false"))
	assert.False(t, v.orbits)

	require.NoError(t, run(t, r, "cmd fps -mem"))
	assert.True(t, v.fps)
	assert.True(t, v.mem)
	require.NoError(t, run(t, r, "cmd fps -show=false"))
	assert.False(t, v.fps)
	assert.False(t, v.mem)

	require.NoError(t, run(t, r, "cmd speed -scale 2.5"))
	assert.Equal(t, float32(2.5), v.scale)
}

func TestScreenshot(t *testing.T) {
	r, v, out := setup()
	require.NoError(t, run(t, r, "cmd screenshot -dir shots"))
	assert.Equal(t, "shots", v.shotDir)
	assert.Equal(t, []string{"screenshot: shots/frame.png"}, *out)

	require.NoError(t, run(t, r, "cmd screenshot"))
	assert.Equal(t, "screenshots", v.shotDir)

	v.shotErr = errors.New("disk full")
	assert.EqualError(t, run(t, r, "cmd screenshot"), "disk full")
}

func TestHelp(t *testing.T) {
	r, _, out := setup()
	require.NoError(t, run(t, r, "cmd help"))
	assert.Len(t, *out, len(r.Names()))
	assert.Equal(t, []string{"fps", "help", "orbits", "pause", "screenshot", "speed", "warp"}, r.Names())
}

func TestRegisterCustom(t *testing.T) {
	r := NewRegistry()
	fs := flag.NewFlagSet("echo", flag.ContinueOnError)
	msg := fs.String("m", "", "message")
	var got string
	r.Register("echo", "echo -m text", fs, func() error {
		got = *msg
		return nil
	})
	require.NoError(t, r.Execute([]string{"echo", "-m", "hi"}))
	assert.Equal(t, "hi", got)
	assert.Equal(t, []string{"echo: echo -m text"}, r.Usage())
}
