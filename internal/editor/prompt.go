package editor

import "github.com/gdamore/tcell/v2"

// PromptCallback runs after every key the prompt handles, including the
// final Enter or Escape.
type PromptCallback func(input []byte, ev *tcell.EventKey)

type prompt struct {
	template string
	input    []byte
	onKey    PromptCallback
	done     func(input string, ok bool)
	// extra keys that accept like Enter
	accept []tcell.Key
}

// Prompt opens a single-line prompt in the message bar. template holds one
// %s verb for the input typed so far. Keys go to the prompt until Escape
// cancels it or Enter accepts a non-empty input; done then receives the
// result.
func (e *Editor) Prompt(template string, onKey PromptCallback, done func(input string, ok bool)) {
	e.prompt = &prompt{
		template: template,
		onKey:    onKey,
		done:     done,
	}
	e.SetStatusMessage(template, "")
}

func (e *Editor) handlePromptKey(ev *tcell.EventKey) {
	p := e.prompt
	switch ev.Key() {
	case tcell.KeyDelete, tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(p.input) > 0 {
			p.input = p.input[:len(p.input)-1]
		}
	case tcell.KeyEscape:
		e.closePrompt(ev, false)
		return
	case tcell.KeyEnter:
		if len(p.input) > 0 {
			e.closePrompt(ev, true)
			return
		}
	case tcell.KeyUp, tcell.KeyDown, tcell.KeyLeft, tcell.KeyRight:
		if len(p.input) > 0 && p.accepts(ev.Key()) {
			e.closePrompt(ev, true)
			return
		}
	case tcell.KeyRune:
		if r := ev.Rune(); r >= ' ' && r < 0x7f {
			p.input = append(p.input, byte(r))
		}
	}
	if p.onKey != nil {
		p.onKey(p.input, ev)
	}
	e.SetStatusMessage(p.template, p.input)
}

func (e *Editor) closePrompt(ev *tcell.EventKey, ok bool) {
	p := e.prompt
	e.prompt = nil
	e.SetStatusMessage("")
	if p.onKey != nil {
		p.onKey(p.input, ev)
	}
	if p.done != nil {
		p.done(string(p.input), ok)
	}
}

func (p *prompt) accepts(k tcell.Key) bool {
	for _, a := range p.accept {
		if a == k {
			return true
		}
	}
	return false
}
