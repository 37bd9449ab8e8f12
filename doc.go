// Package pdf2pptx converts PDF documents to PowerPoint decks by
// rasterizing each page and placing it full-bleed on its own slide.
//
// # Quick Start
//
// Create a converter, convert a PDF, and write the bytes:
//
//	conv, err := pdf2pptx.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer conv.Close()
//
//	result, err := conv.Convert(ctx, pdf2pptx.Input{PDFPath: "talk.pdf"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("talk.pptx", result.PPTX, 0644)
//
// # Conversion Pipeline
//
//  1. Options are validated (no I/O).
//  2. The PDF is checked with pdfcpu; missing or malformed files fail here.
//  3. Speaker notes are loaded from a reference deck or a Markdown file.
//  4. Each kept page is rendered at the requested DPI (MuPDF or poppler).
//  5. Each raster becomes a slide 10 inches wide with the raster's aspect
//     ratio; the picture covers the whole slide.
//  6. Notes at the same position are copied to the slide.
//  7. The deck is serialized in memory.
//
// Any failure aborts the run and no bytes are returned.
//
// # Page Selection
//
// PageSelection drops the first page or an explicit list of 1-based page
// numbers; the two modes are mutually exclusive. Numbers that name no page
// (0, negatives, or past the last page) are ignored and reported in
// ConvertResult.IgnoredSkips.
//
//	result, err := conv.Convert(ctx, pdf2pptx.Input{
//	    PDFPath: "talk.pdf",
//	    DPI:     150,
//	    Pages:   &pdf2pptx.PageSelection{Skip: []int{2, 4}},
//	    Notes:   &pdf2pptx.NotesSource{DeckPath: "draft.pptx"},
//	})
//
// # Speaker Notes
//
// Notes are matched by output position, after skipped pages are removed:
// slide i receives the notes of reference slide i. Runs keep their text,
// bold, italic, underline, size and explicit RGB color; theme colors are
// left to the destination theme. A Markdown file can supply notes instead,
// with sections separated by thematic breaks (---).
//
// # Parallel Processing
//
// For batch conversion, use ConverterPool:
//
//	pool := pdf2pptx.NewConverterPool(4, pdf2pptx.WithBackend("poppler"))
//	defer pool.Close()
//
//	conv, err := pool.Acquire()
//	if err != nil {
//	    return err
//	}
//	defer pool.Release(conv)
//	result, err := conv.Convert(ctx, input)
//
// # Package Skeleton
//
// Theme, slide master, layout and notes master parts are embedded. Use
// WithAssetPath to override any of them from a directory holding files
// named theme.xml, slideMaster.xml, slideLayout.xml, notesMaster.xml and so on.
package pdf2pptx
