package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"sort"
	"syscall"
	"time"

	"github.com/lixenwraith/rawterm/envconfig"
	"github.com/lixenwraith/rawterm/terminal"
	"github.com/mattn/go-runewidth"
)

var (
	colorFlag = flag.String("color", "auto", "Color depth: auto, 8, 256, truecolor")
	quitFlag  = flag.String("quit", "f10", "Named key that exits (see keynames), Ctrl+C always exits")
	mouseFlag = flag.Bool("mouse", !envconfig.NoMouse(), "Enable SGR mouse reporting")
	tickFlag  = flag.Duration("tick", 0, "Push a custom tick event at this interval (0 = off)")
	envFlag   = flag.Bool("env", false, "Print effective environment configuration and exit")
)

const maxLog = 10

var (
	titleGFX  = terminal.GFX{Fg: terminal.NewColor(200, 200, 200), Bg: terminal.NewColor(40, 40, 60), Attr: terminal.AttrBold}
	logGFX    = terminal.GFX{Fg: terminal.NewColor(180, 180, 180)}
	statusGFX = terminal.GFX{Fg: terminal.NewColor(140, 140, 160), Attr: terminal.AttrFaint}
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\n\x1b[31mINPUT TEST CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	if *envFlag {
		vals := envconfig.Values()
		keys := make([]string, 0, len(vals))
		for k := range vals {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Printf("%s=%q\n", k, vals[k])
		}
		return
	}

	quitKey, ok := terminal.ParseNamedKey(*quitFlag)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown quit key %q\n", *quitFlag)
		os.Exit(2)
	}

	opts := terminal.Options{}
	switch *colorFlag {
	case "8":
		d := terminal.Depth8
		opts.Depth = &d
	case "256":
		d := terminal.Depth256
		opts.Depth = &d
	case "truecolor", "true", "24bit":
		d := terminal.DepthTrueColor
		opts.Depth = &d
	}

	sess := terminal.New(opts)
	if err := sess.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "init failed: %v\n", err)
		os.Exit(1)
	}
	defer sess.Fini()

	if err := sess.AltBufferEnter(); err == nil {
		defer sess.AltBufferExit()
	}
	sess.CursorHide()
	defer sess.CursorShow()
	if *mouseFlag {
		if err := sess.MouseEnable(); err == nil {
			defer sess.MouseDisable()
		}
	}

	tickType, _ := terminal.CustomEventType(0)
	if *tickFlag > 0 {
		go func() {
			var n uint64
			for range time.Tick(*tickFlag) {
				n++
				if err := sess.Push(tickType, []byte(fmt.Sprintf("tick %d", n))); err != nil {
					return
				}
			}
		}()
	}

	var eventLog []string
	addLog := func(s string) {
		if len(eventLog) >= maxLog {
			copy(eventLog, eventLog[1:])
			eventLog = eventLog[:maxLog-1]
		}
		eventLog = append(eventLog, s)
	}

	res := sess.Resolution()
	if err := res.Err(); err != nil {
		addLog(fmt.Sprintf("NOTE: %v", err))
	}

	var lastWait time.Duration
	render := func() {
		sess.EraseScreen()
		w, h, err := sess.Size()
		if err != nil {
			return
		}
		// Clip to the screen width in display columns
		fit := func(s string, x int) string {
			return runewidth.Truncate(s, w-x, "…")
		}
		sess.WriteAt(fit(fmt.Sprintf("Input Test - %s/%s - %s or Ctrl+C quits", res.Profile.Name(), res.Depth, quitKey), 0), titleGFX, 0, 0)
		for i, entry := range eventLog {
			y := 2 + i
			if y >= h-1 {
				break
			}
			sess.WriteAt(fit(entry, 1), logGFX, 1, y)
		}
		status := fmt.Sprintf("Size: %dx%d | last wait: %v", w, h, lastWait.Round(time.Millisecond))
		sess.WriteAt(fit(status, 1), statusGFX, 1, h-1)
		sess.Flush()
	}

	render()
	for {
		ev, elapsed, err := sess.Wait(time.Second)
		if err != nil {
			addLog(fmt.Sprintf("ERROR: %v", err))
			render()
			return
		}
		lastWait = elapsed

		switch e := ev.(type) {
		case terminal.KeyEvent:
			if e.Key.Named == quitKey || (e.Key.IsRune() && e.Key.Rune == terminal.RuneCtrlC) {
				return
			}
			addLog("KEY: " + e.Key.String())
		case terminal.MouseEvent:
			addLog(fmt.Sprintf("MOUSE: %s @ (%d,%d) mod=%d", e.Button, e.X, e.Y, e.Mod))
		case terminal.ResizeEvent:
			addLog(fmt.Sprintf("RESIZE: %dx%d", e.Width, e.Height))
		case terminal.SignalEvent:
			addLog(fmt.Sprintf("SIGNAL: %v", e.Signal))
			if e.Signal == syscall.SIGTERM || e.Signal == syscall.SIGHUP {
				return
			}
		case terminal.CustomEvent:
			addLog(fmt.Sprintf("CUSTOM %s: %s", e.Kind, e.Payload.Bytes()))
		case terminal.TimeoutEvent:
		}
		render()
	}
}
