// seehuhn.de/go/racetrack - rounded track outlines from rectilinear waypoints
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package export

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/chromedp/chromedp"

	"seehuhn.de/go/racetrack"
)

// WriteChromePNG renders the SVG form of the drawing in a headless Chrome
// browser and writes a PNG screenshot of the <svg> element.  The browser
// must be installed on the system; ctx bounds the lifetime of the browser
// process.
func WriteChromePNG(ctx context.Context, w io.Writer, d *racetrack.Drawing, canvas Canvas) error {
	svg, err := MarshalSVG(d, canvas)
	if err != nil {
		return err
	}
	dataURI := "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString(svg)

	opts := append(chromedp.DefaultExecAllocatorOptions[:], chromedp.Headless)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	var buf []byte
	tasks := chromedp.Tasks{
		chromedp.Navigate(dataURI),
		chromedp.WaitVisible(`svg`, chromedp.ByQuery),
		chromedp.Screenshot(`svg`, &buf, chromedp.ByQuery),
	}
	racetrack.Logger().Debug("starting headless browser", slog.Int("svgBytes", len(svg)))
	if err := chromedp.Run(browserCtx, tasks); err != nil {
		return fmt.Errorf("headless browser: %w", err)
	}
	if len(buf) == 0 {
		return errEmptyScreenshot
	}

	_, err = w.Write(buf)
	return err
}

var errEmptyScreenshot = errors.New("headless browser returned an empty screenshot")
