package sandworm

import (
	"fmt"
	"io"
	"os"
	"sync"

	"golang.org/x/term"
)

// progress draws a single self-overwriting "[done/total] pct" line. It is
// only used when stderr is a terminal so redirected logs stay clean.
type progress struct {
	mu sync.Mutex
	w  io.Writer
}

func newProgress(w io.Writer) *progress {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return nil
	}
	return &progress{w: w}
}

func (p *progress) update(done, total int) {
	if total == 0 || (done%25 != 0 && done != total) {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	pct := float64(done) / float64(total) * 100
	fmt.Fprintf(p.w, "\r[%d/%d] %.0f%%", done, total, pct)
}

func (p *progress) clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprint(p.w, "\r\x1b[K")
}
