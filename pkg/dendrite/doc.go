// Package dendrite turns markdown documents with YAML metadata headers into
// generated C# component source files.
//
// The engine is a pure function of its explicit inputs: the document, the
// set of applicable ambient imports files, the project options, and the
// generation mode. Identical inputs produce byte-identical output. Nothing
// reads clocks, environment, or global state during generation, and no map
// iteration order leaks into emitted text, so an Engine is safe for
// concurrent use by any number of goroutines.
//
// Incremental builds hang off CacheKey: a key captures every input that can
// influence a document's output, so equal keys mean the previously
// generated unit may be reused verbatim.
package dendrite
