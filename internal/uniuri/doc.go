// Package uniuri generates random strings good for use in URIs to identify
// unique objects, such as uploaded file names.
//
// It uses crypto/rand and rejection sampling, so the generated strings are
// uniform over the character set and safe for collision-resistant names.
package uniuri
