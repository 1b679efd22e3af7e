// Package testutil provides helpers for building template trees and
// checking generated output in tests.
package testutil
