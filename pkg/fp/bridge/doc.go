// Package bridge converts between this module's types and the Option and
// Result types of github.com/samber/mo, for code bases that use both.
package bridge
