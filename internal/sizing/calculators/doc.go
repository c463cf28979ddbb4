// Package calculators provides the concrete rules plugged into the sizing.Engine.
//
// Each calculator implements one rule of thumb of the NBR 5410 low-voltage wiring standard
// (lighting points per area, outlets per perimeter, conductor and breaker selection, demand
// factor). Defaults follow the standard and can be overridden with functional options.
package calculators
