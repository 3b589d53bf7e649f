// Package codec serializes composers as documents that name their steps.
//
// Only named steps and nested composers can be encoded. Decoding resolves
// step names through a Registry and rebuilds the composer with the
// constructor of its kind, so a decoded composer is Equal to the encoded one.
package codec
