// Package tonetint is the sentiment visualizer: it cuts text into word
// chunks, classifies each chunk and renders the result.
//
// # Basic Usage
//
//	model, _ := classifier.New(classifier.Config{Provider: "lexicon"})
//	v, err := tonetint.New(tonetint.DefaultConfig(), model)
//	if err != nil {
//	    log.Fatal(err) // bad chunk size or palette color
//	}
//
//	markup, err := v.Visualize(ctx, text) // HTML spans for a notebook or web page
//
// # Terminal Mode
//
// DisplayTerminal prints every chunk in green, red or the neutral color and
// renders a standalone page. With Config.Save the page is written to
// ~/Downloads/tonetint_output.html (or Config.ArtifactPath), and with
// Config.Open it is then opened in the default browser.
//
// A Visualizer keeps no state between calls besides its configuration and
// model; it does not guard against concurrent terminal-mode calls racing on
// the artifact file.
package tonetint
