// Package sizing computes residential load and circuit sizing reports.
//
// Each rule of the calculation (lighting points, general-purpose outlets, dedicated appliance
// circuits, circuit sizing and demand factor) is encapsulated in a calculator, and the
// Engine assembles their results into a single CalculationResults report.
package sizing
