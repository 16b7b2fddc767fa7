// Package report describes flag sets for people and tools.
package report
