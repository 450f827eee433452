// Package encoding provides the length-prefixed string codec used for the
// names block of a binary table set.
package encoding
