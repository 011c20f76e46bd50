// Package seq provides order-preserving transforms over slices, plus
// key-preserving map/filter over Go maps.
//
// Every function returns a new collection; inputs are never modified.
package seq
