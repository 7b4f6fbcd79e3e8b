package invariant

// Test-only exports: white-box access to the characteristic-polynomial
// kernel without widening the public API.
var CharPoly = charPoly
