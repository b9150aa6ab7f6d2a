// Package driver contains the driver aggregate. Drivers are assignable to
// delivery runs; assignment is by identifier, a run never embeds the driver.
package driver
