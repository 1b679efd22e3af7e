// Package template implements codec's placeholder substitution.
//
// A placeholder is written {(variable)} and may pipe the value through
// named transforms: {(name|capitalize_all)}. Substitution is a single
// left-to-right pass over a line or a file name. There are no
// conditionals, loops or includes.
//
// The package has three parts:
//
//   - Scan finds placeholders in a text and reports their byte spans.
//   - Registry maps pipe names to transforms.
//   - Engine renders a text against a set of Bindings.
package template
