package terminal

import "github.com/gdamore/tcell/v2"

// Source delivers input one byte at a time. ok is false when no byte
// arrived within the read timeout.
type Source interface {
	Poll() (b byte, ok bool, err error)
}

const escByte = 0x1b

type decodeState int

const (
	stateNormal decodeState = iota
	stateEscape
	stateBracket
	stateBracketDigit
	stateO
	stateUnmatched
)

// ESC [ <final>
var bracketKeys = map[byte]tcell.Key{
	'A': tcell.KeyUp,
	'B': tcell.KeyDown,
	'C': tcell.KeyRight,
	'D': tcell.KeyLeft,
	'H': tcell.KeyHome,
	'F': tcell.KeyEnd,
}

// ESC [ <digit> ~
var tildeKeys = map[byte]tcell.Key{
	'1': tcell.KeyHome,
	'7': tcell.KeyHome,
	'4': tcell.KeyEnd,
	'8': tcell.KeyEnd,
	'3': tcell.KeyDelete,
	'5': tcell.KeyPgUp,
	'6': tcell.KeyPgDn,
}

// ESC O <final>
var oKeys = map[byte]tcell.Key{
	'H': tcell.KeyHome,
	'F': tcell.KeyEnd,
}

// Decoder turns raw terminal bytes into key events.
type Decoder struct {
	src Source
}

func NewDecoder(src Source) *Decoder {
	return &Decoder{src: src}
}

// ReadKey waits for one read timeout. It returns a nil event and nil error
// when no input arrived, so the caller can do periodic work between keys.
func (d *Decoder) ReadKey() (*tcell.EventKey, error) {
	b, ok, err := d.src.Poll()
	if err != nil || !ok {
		return nil, err
	}
	if b != escByte {
		return byteEvent(b), nil
	}
	return d.readEscape(), nil
}

// readEscape decodes the bytes after ESC. Every incomplete or unknown
// sequence collapses into a bare Escape; read errors are left for the next
// ReadKey to report.
func (d *Decoder) readEscape() *tcell.EventKey {
	st := stateEscape
	var digit byte
	for {
		b, ok, err := d.src.Poll()
		if err != nil || !ok {
			return escapeEvent()
		}
		switch st {
		case stateEscape:
			switch b {
			case '[':
				st = stateBracket
			case 'O':
				st = stateO
			default:
				st = stateUnmatched
			}
		case stateBracket:
			if b >= '0' && b <= '9' {
				digit = b
				st = stateBracketDigit
				continue
			}
			return lookup(bracketKeys, b)
		case stateBracketDigit:
			if b != '~' {
				return escapeEvent()
			}
			return lookup(tildeKeys, digit)
		case stateO:
			return lookup(oKeys, b)
		default:
			return escapeEvent()
		}
	}
}

func lookup(table map[byte]tcell.Key, b byte) *tcell.EventKey {
	if k, ok := table[b]; ok {
		return tcell.NewEventKey(k, 0, tcell.ModNone)
	}
	return escapeEvent()
}

func escapeEvent() *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)
}

// byteEvent maps a single byte to its key. Backspace, Tab, Enter, Escape
// and DEL keep their ASCII key codes; the other Ctrl-letter bytes become
// tcell's KeyCtrlA..KeyCtrlZ, whose values differ from the raw bytes.
func byteEvent(b byte) *tcell.EventKey {
	switch {
	case b >= 0x01 && b <= 0x1a && b != '\b' && b != '\t' && b != '\r':
		return tcell.NewEventKey(tcell.KeyRune, rune(b|0x60), tcell.ModCtrl)
	case b < ' ' || b == 0x7f:
		return tcell.NewEventKey(tcell.Key(b), rune(b), tcell.ModNone)
	}
	return tcell.NewEventKey(tcell.KeyRune, rune(b), tcell.ModNone)
}
