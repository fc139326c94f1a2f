// Package printing converts generated letters from HTML to PDF.
//
// Each backend implements PDFRenderer:
// - WkhtmltopdfRenderer runs the wkhtmltopdf command-line tool
// - ChromedpRenderer prints through headless Chrome
// - GofpdfRenderer lays out the letter's text without styling
//
// FallbackRenderer tries an ordered list of backends and returns the first
// success. NewRendererChain builds that list from configuration.
//
// Example usage:
//
//	chain, err := NewRendererChain(ChainConfig{
//	    Strategies: []string{StrategyWkhtmltopdf, StrategyChromedp},
//	}, logger)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer chain.Close()
//
//	result, err := chain.Render(ctx, NewRenderRequest(html, "Offer Letter"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("Generated PDF: %d bytes via %s\n", len(result.PDFData), result.Renderer)
package printing
