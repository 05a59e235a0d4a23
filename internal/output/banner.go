package output

import (
	"io"
	"time"
)

// BannerLayout matches strftime "%a %b %e %H:%M:%S %Z %Y".
const BannerLayout = "Mon Jan _2 15:04:05 MST 2006"

// RenderBanner prints the "IPC status from" line that opens every report.
// source is not trusted and is sanitized before printing.
func RenderBanner(w io.Writer, source string, now time.Time, style Style) {
	p := NewPrinter(w, style)
	p.Printf("%s %s as of %s\n", style.banner("IPC status from"), source, now.Format(BannerLayout))
}
