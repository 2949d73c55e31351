// Package graphics classifies vector-drawing instruction streams into typed
// primitives.
//
// A page source supplies drawing groups, each carrying stroke and fill
// attributes and an ordered run of drawing operations. Classification
// dispatches on the operator tag and emits [model.Graphic] values with both
// absolute and normalized geometry. Operator tags outside the classified
// set are skipped, keeping the classifier forward-compatible with
// instruction sets it does not know.
package graphics
