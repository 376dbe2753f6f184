package renderer

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/pkg/errors"
)

const (
	// A4 paper in inches.
	paperWidth  = 8.27
	paperHeight = 11.69
	// Four equal margins, matching the fixed page configuration.
	pageMargin = 0.75

	renderTimeout = 60 * time.Second
)

// WritePDF converts rendered HTML to a PDF file at outputPath using headless
// Chrome. The HTML is staged in a temp directory and loaded over file:// so
// relative assets resolve locally.
func WritePDF(ctx context.Context, html, outputPath, chromePath string) (err error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if chromePath == "" {
		chromePath = os.Getenv("CHROME_PATH")
	}
	if chromePath != "" {
		opts = append(opts, chromedp.ExecPath(chromePath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	runCtx, cancelRun := context.WithTimeout(browserCtx, renderTimeout)
	defer cancelRun()

	var tmpDir string
	tmpDir, err = os.MkdirTemp("", "resume-adapter-")
	if err != nil {
		err = errors.Wrap(err, "failed to create temp directory")
		return err
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "index.html")
	err = os.WriteFile(htmlPath, []byte(html), 0600)
	if err != nil {
		err = errors.Wrap(err, "failed to stage HTML for rendering")
		return err
	}

	var pdfBuf []byte
	err = chromedp.Run(runCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) (actionErr error) {
			pdfBuf, _, actionErr = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(paperWidth).
				WithPaperHeight(paperHeight).
				WithMarginTop(pageMargin).
				WithMarginBottom(pageMargin).
				WithMarginLeft(pageMargin).
				WithMarginRight(pageMargin).
				Do(ctx)
			return actionErr
		}),
	)
	if err != nil {
		err = errors.Wrap(err, "PDF conversion failed")
		return err
	}

	err = writeOutput(pdfBuf, outputPath)

	return err
}

// WriteHTML writes rendered HTML to a file. Used as the degraded output when
// PDF conversion fails.
func WriteHTML(html, outputPath string) (err error) {
	err = writeOutput([]byte(html), outputPath)
	return err
}

// HTMLFallbackPath returns the sibling path for the HTML fallback artifact:
// the .pdf suffix swapped for .html.
func HTMLFallbackPath(outputPath string) (fallback string) {
	if strings.HasSuffix(outputPath, ".pdf") {
		fallback = strings.TrimSuffix(outputPath, ".pdf") + ".html"
		return fallback
	}
	fallback = outputPath + ".html"
	return fallback
}

func writeOutput(data []byte, outputPath string) (err error) {
	outputDir := filepath.Dir(outputPath)
	err = os.MkdirAll(outputDir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create output directory: %s", outputDir)
		return err
	}

	err = os.WriteFile(outputPath, data, 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write output file: %s", outputPath)
		return err
	}

	return err
}
