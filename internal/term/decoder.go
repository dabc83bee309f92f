package term

import (
	"io"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"

	"github.com/zjrosen/quill/internal/input"
	"github.com/zjrosen/quill/internal/log"
)

const (
	keyDel   = 0x7f
	keyCtrlH = 0x08
	keyCtrlC = 0x03
	keyTab   = '\t'
	keyCR    = '\r'
	keyLF    = '\n'
)

// ss3Introducer follows ESC in application cursor mode arrows (ESC O A).
const ss3Introducer = 'O'

// xterm modifier parameter for ctrl (CSI 1;5C).
const modCtrl = 5

const readSize = 256

// Decoder turns raw terminal bytes into key events.
//
// Input is split with ansi.DecodeSequence one read at a time. A sequence
// left unfinished at the end of a read was a lone ESC followed by ordinary
// keys, since terminals send a whole sequence in a single write.
type Decoder struct {
	r       io.Reader
	parser  *ansi.Parser
	pending []input.KeyEvent
	chunk   []byte
}

// NewDecoder reads keys from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{
		r:      r,
		parser: ansi.NewParser(),
		chunk:  make([]byte, readSize),
	}
}

// Next blocks for the next key. Sequences with no key binding are dropped.
func (d *Decoder) Next() (input.KeyEvent, error) {
	for len(d.pending) == 0 {
		n, err := d.r.Read(d.chunk)
		if n > 0 {
			d.decode(d.chunk[:n])
		}
		if err != nil && len(d.pending) == 0 {
			return input.KeyEvent{}, err
		}
	}

	k := d.pending[0]
	d.pending = d.pending[1:]
	return k, nil
}

// decode queues every key in one read.
func (d *Decoder) decode(b []byte) {
	for len(b) > 0 {
		seq, _, n, state := ansi.DecodeSequence(b, ansi.NormalState, d.parser)
		if state != ansi.NormalState {
			// Unfinished sequence: the ESC stood alone.
			d.control(b[0])
			b = b[1:]
			continue
		}
		n = max(n, 1)
		b = b[n:]

		switch {
		case ansi.HasCsiPrefix(seq):
			d.csi()
		case ansi.HasEscPrefix(seq) && len(seq) == 2 && seq[1] == ss3Introducer && len(b) > 0:
			d.cursor(b[0], 1)
			b = b[1:]
		case ansi.HasEscPrefix(seq) && len(seq) == 2:
			// ESC then a key in the same read: both count. Alt has no bindings.
			d.push(input.Key(input.KeyEscape))
			d.control(seq[1])
		case len(seq) == 1:
			d.control(seq[0])
		case ansi.HasEscPrefix(seq) || seq[0] >= 0x80 && seq[0] < 0xc0:
			// OSC, DCS and other string replies.
			log.Debug(log.CatTerm, "Dropping sequence", "len", len(seq))
		default:
			for len(seq) > 0 {
				r, size := utf8.DecodeRune(seq)
				seq = seq[size:]
				if r == utf8.RuneError {
					log.Warn(log.CatTerm, "Dropping invalid UTF-8 input")
					continue
				}
				d.push(input.Char(r))
			}
		}
	}
}

func (d *Decoder) push(k input.KeyEvent) {
	d.pending = append(d.pending, k)
}

// control maps a single byte.
func (d *Decoder) control(c byte) {
	switch {
	case c == ansi.ESC:
		d.push(input.Key(input.KeyEscape))
	case c == keyDel || c == keyCtrlH:
		d.push(input.Key(input.KeyBackspace))
	case c == keyCR || c == keyLF:
		d.push(input.Key(input.KeyEnter))
	case c == keyTab:
		d.push(input.Key(input.KeyTab))
	case c == keyCtrlC:
		d.push(input.Key(input.KeyCtrlC))
	case c >= 0x01 && c < 0x20:
		d.push(input.KeyEvent{Name: "ctrl+" + string(rune('a'+c-1))})
	case c >= 0x20 && c < keyDel:
		d.push(input.Char(rune(c)))
	default:
		log.Debug(log.CatTerm, "Dropping control byte", "byte", c)
	}
}

// csi maps the sequence the parser just dispatched.
func (d *Decoder) csi() {
	cmd := ansi.Cmd(d.parser.Command())
	if cmd.Prefix() != 0 || cmd.Intermediate() != 0 {
		log.Debug(log.CatTerm, "Unknown CSI sequence", "cmd", int(cmd))
		return
	}

	final := cmd.Final()
	if final == '~' {
		if code, _ := d.parser.Param(0, 0); code == 3 {
			d.push(input.Key(input.KeyDelete))
			return
		}
		log.Debug(log.CatTerm, "Unknown CSI sequence", "final", string(final))
		return
	}

	mod, _ := d.parser.Param(1, 1)
	d.cursor(final, mod)
}

// cursor maps arrow finals; mod is the xterm modifier parameter.
func (d *Decoder) cursor(final byte, mod int) {
	switch {
	case final == 'A' && mod == 1:
		d.push(input.Key(input.KeyUp))
	case final == 'B' && mod == 1:
		d.push(input.Key(input.KeyDown))
	case final == 'C' && mod == 1:
		d.push(input.Key(input.KeyRight))
	case final == 'D' && mod == 1:
		d.push(input.Key(input.KeyLeft))
	case final == 'C' && mod == modCtrl:
		d.push(input.Key(input.KeyCtrlRight))
	case final == 'D' && mod == modCtrl:
		d.push(input.Key(input.KeyCtrlLeft))
	default:
		log.Debug(log.CatTerm, "Unknown cursor sequence", "final", string(final), "mod", mod)
	}
}
