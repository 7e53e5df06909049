// internal/script/loader.go
package script

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"strconv"

	"github.com/dop251/goja"

	"go-ghost-shooter/internal/defs"
)

// ErrMalformedWave is returned when a wave script evaluates to something
// that is not a wave object.
var ErrMalformedWave = errors.New("malformed wave script")

const (
	initScript      = "init.js"
	defaultPrepTime = 3.0
)

// JSLoader evaluates wave scripts in one long-lived JavaScript runtime.
// A wave script's completion value is the wave object:
//
//	wave({
//	    name: "First Contact",
//	    prep_time: 3,
//	    spawns: [spawn("BasicFighter", 5, 1.5)],
//	    on_start: function () { log("incoming") },
//	})
//
// The runtime is not safe for concurrent use; the game calls it from the
// update loop only.
type JSLoader struct {
	fsys fs.FS
	vm   *goja.Runtime
}

// NewJSLoader creates a runtime, installs the log host function and runs
// init.js when fsys has one.
func NewJSLoader(fsys fs.FS) (*JSLoader, error) {
	l := &JSLoader{fsys: fsys, vm: goja.New()}
	if err := l.vm.Set("log", func(msg string) {
		log.Printf("Script: %s", msg)
	}); err != nil {
		return nil, fmt.Errorf("failed to install log: %w", err)
	}

	src, err := fs.ReadFile(fsys, initScript)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Printf("Script: %s not found, running without helpers", initScript)
	case err != nil:
		return nil, fmt.Errorf("failed to read %s: %w", initScript, err)
	default:
		if _, err := l.vm.RunScript(initScript, string(src)); err != nil {
			return nil, fmt.Errorf("failed to run %s: %w", initScript, err)
		}
	}
	return l, nil
}

// Bind exposes a Go value (usually a func) to scripts under name.
func (l *JSLoader) Bind(name string, value interface{}) error {
	if err := l.vm.Set(name, value); err != nil {
		return fmt.Errorf("failed to bind %s: %w", name, err)
	}
	return nil
}

// LoadWave runs waves/wave_<number>.js and converts its result.
func (l *JSLoader) LoadWave(number int) (*defs.WaveScript, error) {
	path := fmt.Sprintf("waves/wave_%d.js", number)
	src, err := fs.ReadFile(l.fsys, path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", path, defs.ErrWaveNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	v, err := l.vm.RunScript(path, string(src))
	if err != nil {
		return nil, fmt.Errorf("failed to run %s: %w", path, err)
	}
	ws, err := l.parseWave(v, number)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Printf("Script: loaded wave %d: %s (%d spawn groups)", ws.Number, ws.Name, len(ws.Spawns))
	return ws, nil
}

// parseWave converts the script result. Getters and valueOf on the wave
// object run script code, so a throw there is a malformed wave too.
func (l *JSLoader) parseWave(v goja.Value, number int) (ws *defs.WaveScript, err error) {
	if ex := l.vm.Try(func() {
		ws, err = l.convertWave(v, number)
	}); ex != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedWave, ex)
	}
	return ws, err
}

func (l *JSLoader) convertWave(v goja.Value, number int) (*defs.WaveScript, error) {
	if isMissing(v) {
		return nil, fmt.Errorf("%w: script returned no value", ErrMalformedWave)
	}
	obj := v.ToObject(l.vm)

	ws := &defs.WaveScript{Number: number, PrepTime: defaultPrepTime}
	if n := obj.Get("wave_number"); !isMissing(n) {
		ws.Number = int(n.ToInteger())
	}
	name := obj.Get("name")
	if isMissing(name) {
		return nil, fmt.Errorf("%w: missing name", ErrMalformedWave)
	}
	ws.Name = name.String()
	if p := obj.Get("prep_time"); !isMissing(p) {
		ws.PrepTime = p.ToFloat()
	}

	spawns := obj.Get("spawns")
	if isMissing(spawns) {
		return nil, fmt.Errorf("%w: missing spawns", ErrMalformedWave)
	}
	arr := spawns.ToObject(l.vm)
	length := int(arr.Get("length").ToInteger())
	for i := 0; i < length; i++ {
		item := arr.Get(strconv.Itoa(i))
		if isMissing(item) {
			return nil, fmt.Errorf("%w: spawn %d is empty", ErrMalformedWave, i)
		}
		spec, err := l.parseSpawn(item.ToObject(l.vm))
		if err != nil {
			return nil, fmt.Errorf("spawn %d: %w", i, err)
		}
		ws.Spawns = append(ws.Spawns, spec)
	}

	ws.OnStart = l.hook(obj.Get("on_start"))
	ws.OnComplete = l.hook(obj.Get("on_complete"))
	return ws, nil
}

func (l *JSLoader) parseSpawn(obj *goja.Object) (defs.SpawnSpec, error) {
	var spec defs.SpawnSpec
	kind := obj.Get("type")
	count := obj.Get("count")
	interval := obj.Get("interval")
	if isMissing(kind) || isMissing(count) || isMissing(interval) {
		return spec, fmt.Errorf("%w: type, count and interval are required", ErrMalformedWave)
	}
	spec.EnemyKind = kind.String()
	spec.Count = int(count.ToInteger())
	spec.Interval = interval.ToFloat()
	if d := obj.Get("delay"); !isMissing(d) {
		spec.Delay = d.ToFloat()
	}
	return spec, nil
}

// hook wraps an optional JS function; anything else yields nil.
func (l *JSLoader) hook(v goja.Value) defs.Hook {
	if isMissing(v) {
		return nil
	}
	fn, ok := goja.AssertFunction(v)
	if !ok {
		return nil
	}
	return func() error {
		_, err := fn(goja.Undefined())
		return err
	}
}

func isMissing(v goja.Value) bool {
	return v == nil || goja.IsUndefined(v) || goja.IsNull(v)
}
