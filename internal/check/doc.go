// Package check runs diagnostic rules ("checks") over a parsed file.
//
// A Check declares the node kinds it wants and receives them during one
// shared pre-order traversal of the tree. Checks report issues through a
// Context; the Engine collects them, isolates failing checks and orders
// the result by position.
package check
