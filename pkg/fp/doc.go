// Package fp holds the helpers shared by the result, option and validation
// packages: nil detection for generic values and splitting of joined errors.
//
// The algebraic types themselves live in the sub-packages:
// - result: Result[T, E], success or failure
// - option: Option[T], presence or absence
// - validation: Validation[T, E], error accumulation
// - compose: Pipe/Compose/Tap/Partial
// - seq: Map/Filter/Reduce/GroupBy/IndexBy over slices
package fp
