//go:build js && wasm

package main

import (
	"syscall/js"
	"time"

	"github.com/caffeinepub/thunderlab/beat"
	"github.com/caffeinepub/thunderlab/beat/render"
	"github.com/caffeinepub/thunderlab/beat/sequencer"
	"github.com/caffeinepub/thunderlab/beat/synth"
	"github.com/caffeinepub/thunderlab/dsp/core"
	"github.com/caffeinepub/thunderlab/dsp/graph"
)

var (
	rt    *graph.Realtime
	sched *sequencer.Scheduler
	funcs []js.Func
)

func main() {
	api := js.Global().Get("Object").New()
	api.Set("init", export(func(args []js.Value) any {
		sr := 44100.0
		if len(args) > 0 {
			sr = args[0].Float()
		}
		if sched != nil {
			sched.Stop()
		}
		rt = graph.NewRealtime(core.WithSampleRate(sr))
		sched = sequencer.New(rt, synth.New())
		return js.Null()
	}))

	api.Set("play", export(func(args []js.Value) any {
		if sched == nil {
			return "not initialised"
		}
		if err := sched.Play(); err != nil {
			return err.Error()
		}
		return js.Null()
	}))

	api.Set("stop", export(func(args []js.Value) any {
		if sched != nil {
			sched.Stop()
		}
		return js.Null()
	}))

	api.Set("isPlaying", export(func(args []js.Value) any {
		return sched != nil && sched.IsPlaying()
	}))

	api.Set("toggleStep", export(func(args []js.Value) any {
		if sched == nil || len(args) < 2 {
			return js.Null()
		}
		s, err := beat.ParseSound(args[0].String())
		if err != nil {
			return err.Error()
		}
		on, err := sched.ToggleStep(s, args[1].Int())
		if err != nil {
			return err.Error()
		}
		return on
	}))

	api.Set("clear", export(func(args []js.Value) any {
		if sched != nil {
			sched.ClearPattern()
		}
		return js.Null()
	}))

	api.Set("pattern", export(func(args []js.Value) any {
		if sched == nil {
			return ""
		}
		return sched.Pattern().String()
	}))

	api.Set("setPattern", export(func(args []js.Value) any {
		if sched == nil || len(args) < 1 {
			return js.Null()
		}
		p, err := beat.ParsePattern(args[0].String())
		if err != nil {
			return err.Error()
		}
		sched.ClearPattern()
		for _, s := range beat.Sounds() {
			steps, _ := p.Steps(s)
			for i, on := range steps {
				if on {
					_ = sched.SetStep(s, i, true)
				}
			}
		}
		return js.Null()
	}))

	api.Set("setBpm", export(func(args []js.Value) any {
		if sched == nil || len(args) < 1 {
			return js.Null()
		}
		bpm := beat.ClampBPM(args[0].Float())
		if err := sched.SetTempo(bpm); err != nil {
			return err.Error()
		}
		return bpm
	}))

	api.Set("bpm", export(func(args []js.Value) any {
		if sched == nil {
			return beat.DefaultBPM
		}
		return sched.Tempo()
	}))

	api.Set("currentStep", export(func(args []js.Value) any {
		if sched == nil || !sched.IsPlaying() {
			return -1
		}
		return sched.CurrentStep()
	}))

	// render returns n interleaved samples for the audio callback.
	api.Set("render", export(func(args []js.Value) any {
		if rt == nil || len(args) < 1 {
			return js.Global().Get("Float32Array").New(0)
		}
		n := args[0].Int()
		buf := make([]float32, n)
		rt.Render(buf)
		arr := js.Global().Get("Float32Array").New(n)
		for i := 0; i < n; i++ {
			arr.SetIndex(i, buf[i])
		}
		return arr
	}))

	api.Set("exportWav", export(func(args []js.Value) any {
		if sched == nil {
			return "not initialised"
		}
		f, err := render.Export(sched.Pattern(), sched.Tempo(), time.Now())
		if err != nil {
			return err.Error()
		}
		data := js.Global().Get("Uint8Array").New(len(f.Data))
		js.CopyBytesToJS(data, f.Data)
		out := js.Global().Get("Object").New()
		out.Set("data", data)
		out.Set("filename", f.Filename)
		out.Set("mimeType", f.MIMEType)
		out.Set("duration", f.Duration.Seconds())
		return out
	}))

	js.Global().Set("Thunderlab", api)
	select {}
}

func export(fn func([]js.Value) any) js.Func {
	f := js.FuncOf(func(_ js.Value, args []js.Value) any {
		return fn(args)
	})
	funcs = append(funcs, f)
	return f
}
