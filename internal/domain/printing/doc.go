// Package printing holds the page settings shared by the PDF renderers:
// paper sizes, orientation and margins.
package printing
