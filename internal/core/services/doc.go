// Package services implements the core business logic, wiring driven
// ports together behind the driving port interfaces.
package services
