// Package event defines the immutable Event value and the builders that create and edit single events and series.
package event
