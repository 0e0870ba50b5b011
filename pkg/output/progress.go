package output

import (
	"io"

	"github.com/cheggaaa/pb/v3"
)

// progressTemplate shows the file being written and the bytes done
const progressTemplate pb.ProgressBarTemplate = `{{string . "prefix"}} {{counters . }} {{bar . }} {{percent . }}`

// Progress reports the progress of file writes
type Progress interface {
	// Track wraps r so that reading it advances a bar labelled label
	Track(r io.Reader, size int64, label string) io.Reader

	// Finish stops the current bar
	Finish()
}

// NewProgress returns a progress bar writing to w, or a no-op when
// disabled
func NewProgress(w io.Writer, enabled bool) Progress {
	if !enabled || w == nil {
		return nullProgress{}
	}
	return &barProgress{writer: w}
}

type barProgress struct {
	writer io.Writer
	bar    *pb.ProgressBar
}

func (p *barProgress) Track(r io.Reader, size int64, label string) io.Reader {
	p.Finish()

	bar := progressTemplate.New(0)
	bar.SetTotal(size)
	bar.Set(pb.Bytes, true)
	bar.Set("prefix", label)
	bar.SetWriter(p.writer)
	bar.SetWidth(TerminalWidth(p.writer, 80))
	bar.Start()
	p.bar = bar

	return bar.NewProxyReader(r)
}

func (p *barProgress) Finish() {
	if p.bar != nil {
		p.bar.Finish()
		p.bar = nil
	}
}

type nullProgress struct{}

func (nullProgress) Track(r io.Reader, size int64, label string) io.Reader { return r }

func (nullProgress) Finish() {}
