// Package fetch retrieves a web page and flattens its markup into a
// model.PageSnapshot. It handles the HTTP request, load timing, visible
// text extraction, and the single DOM walk that records the element
// facts the analyzers consume.
package fetch
