// Package types models cargo containers and the ships that carry them.
//
// A Registry builds containers of three kinds (liquid, gas, refrigerated),
// issuing each a serial number of the form KON-<code>-<n> from a counter
// shared by all kinds. Containers enforce their own loading rules:
//
//   - liquid: at most half the capacity for hazardous cargo, 90% otherwise;
//   - gas: an unload keeps 5% of the mass behind as residue;
//   - refrigerated: only known cargo, and only when the set point is at or
//     above the cargo's minimum temperature.
//
// Unsafe attempts are reported to the Registry's HazardNotifier. Hard
// failures are returned as errors that match the sentinels in errors.go with
// errors.Is; expected refusals that change nothing are returned as an Outcome.
//
// A Ship holds an ordered list of containers under a count and weight limit.
// Every ship operation either applies completely or leaves both ships and
// the container as they were. A Fleet indexes ships by name.
package types
