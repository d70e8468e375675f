// Package web serves the browser demo of ToneTint.
//
// Routes:
//
//	GET  /               form: model, chunk size (6-18 words), three colors, text
//	POST /analyze        the form page with the colored text below it
//	POST /download/html  standalone page as analyzed_text.html
//	POST /download/pdf   PDF rendering as analyzed_text.pdf
//	GET  /healthz        liveness and the default model
//
// Analyses run one at a time. Models picked in the form are created on first
// use through the ModelResolver and reused afterwards.
package web
