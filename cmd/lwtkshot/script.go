// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"lwtk.org/app"
	"lwtk.org/io/event"
	"lwtk.org/io/key"
	"lwtk.org/io/pointer"
	"lwtk.org/layout"
)

// step is a scripted event.
type step struct {
	at time.Duration
	ev event.Event
}

// clickTime is how long a scripted click holds the button.
const clickTime = 50 * time.Millisecond

var keyNames = map[string]key.Name{
	"tab":       key.NameTab,
	"space":     key.NameSpace,
	"return":    key.NameReturn,
	"enter":     key.NameEnter,
	"escape":    key.NameEscape,
	"left":      key.NameLeftArrow,
	"right":     key.NameRightArrow,
	"up":        key.NameUpArrow,
	"down":      key.NameDownArrow,
	"backspace": key.NameDeleteBackward,
}

var modNames = map[string]key.Modifiers{
	"ctrl":  key.ModCtrl,
	"shift": key.ModShift,
	"alt":   key.ModAlt,
	"super": key.ModSuper,
}

// parseScript reads a session script. Each line is one of
//
//	move X Y
//	press X Y [secondary] [touch]
//	release X Y [secondary] [touch]
//	click X Y [secondary] [touch]
//	hold X Y DURATION [touch]
//	key [MOD+]... NAME
//	type TEXT
//	wait DURATION
//	close
//
// Blank lines and lines starting with # are ignored. Time starts at
// zero and only advances with wait, click and hold.
func parseScript(r io.Reader) ([]step, error) {
	var (
		steps []step
		now   time.Duration
	)
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		cmd, args, _ := strings.Cut(line, " ")
		args = strings.TrimSpace(args)
		var err error
		switch cmd {
		case "move", "press", "release", "click", "hold":
			steps, now, err = parsePointer(steps, now, cmd, strings.Fields(args))
		case "key":
			steps, err = parseKey(steps, now, args)
		case "type":
			for _, r := range args {
				name := key.Name(strings.ToUpper(string(r)))
				steps = append(steps,
					step{at: now, ev: key.Event{Name: name, State: key.Press, Text: string(r)}},
					step{at: now, ev: key.Event{Name: name, State: key.Release}},
				)
			}
		case "wait":
			var d time.Duration
			d, err = time.ParseDuration(args)
			if err == nil && d < 0 {
				err = fmt.Errorf("negative wait %v", d)
			}
			now += d
		case "close":
			steps = append(steps, step{at: now, ev: app.CloseEvent{}})
		default:
			err = fmt.Errorf("unknown command %q", cmd)
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return steps, nil
}

func parsePointer(steps []step, now time.Duration, cmd string, args []string) ([]step, time.Duration, error) {
	if len(args) < 2 {
		return steps, now, fmt.Errorf("%s: missing coordinates", cmd)
	}
	x, err := strconv.Atoi(args[0])
	if err != nil {
		return steps, now, err
	}
	y, err := strconv.Atoi(args[1])
	if err != nil {
		return steps, now, err
	}
	e := pointer.Event{
		Source:   pointer.Mouse,
		Buttons:  pointer.ButtonPrimary,
		Position: layout.Pt(x, y),
	}
	held := clickTime
	rest := args[2:]
	if cmd == "hold" {
		if len(rest) == 0 {
			return steps, now, fmt.Errorf("hold: missing duration")
		}
		if held, err = time.ParseDuration(rest[0]); err != nil {
			return steps, now, err
		}
		rest = rest[1:]
	}
	for _, a := range rest {
		switch a {
		case "secondary":
			e.Buttons = pointer.ButtonSecondary
		case "touch":
			e.Source = pointer.Touch
			e.Buttons = 0
		default:
			return steps, now, fmt.Errorf("%s: unknown option %q", cmd, a)
		}
	}
	at := func(k pointer.Kind) step {
		ev := e
		ev.Kind = k
		ev.Time = now
		return step{at: now, ev: ev}
	}
	switch cmd {
	case "move":
		e.Buttons = 0
		steps = append(steps, at(pointer.Move))
	case "press":
		steps = append(steps, at(pointer.Press))
	case "release":
		steps = append(steps, at(pointer.Release))
	case "click", "hold":
		steps = append(steps, at(pointer.Press))
		now += held
		steps = append(steps, at(pointer.Release))
	}
	return steps, now, nil
}

func parseKey(steps []step, now time.Duration, arg string) ([]step, error) {
	parts := strings.Split(arg, "+")
	var mods key.Modifiers
	for _, m := range parts[:len(parts)-1] {
		mod, ok := modNames[strings.ToLower(m)]
		if !ok {
			return steps, fmt.Errorf("key: unknown modifier %q", m)
		}
		mods |= mod
	}
	last := parts[len(parts)-1]
	name, ok := keyNames[strings.ToLower(last)]
	var text string
	switch {
	case ok:
		if name == key.NameSpace {
			text = " "
		}
	case utf8.RuneCountInString(last) == 1:
		name = key.Name(strings.ToUpper(last))
		if mods&^key.ModShift == 0 {
			text = last
		}
	default:
		return steps, fmt.Errorf("key: unknown key %q", last)
	}
	return append(steps,
		step{at: now, ev: key.Event{Name: name, Modifiers: mods, State: key.Press, Text: text}},
		step{at: now, ev: key.Event{Name: name, Modifiers: mods, State: key.Release}},
	), nil
}
