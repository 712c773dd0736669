// Package util provides the utility operations of utilkit.
//
// The package-level functions are stateless: JSON and email checks, object
// extension, parent delegation, identifiers and random tokens, UTF-8 and
// base64 encoding, data URI decoding, parameter-name lookup and fixed-point
// string mapping. Service bundles them behind one value with its logger,
// text filters and configuration, and is what bootstrap registers in the
// container.
package util
