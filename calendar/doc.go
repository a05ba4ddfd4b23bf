// Package calendar holds the events of one calendar and applies parsed
// commands to them. Queries treat event intervals as closed, except
// IsTimeSlotOccupied which excludes the end instant.
package calendar
