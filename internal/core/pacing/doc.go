// Package pacing derives delivery metrics from campaign records, classifies
// delivery risk, explains the verdict and projects daily spend curves.
//
// Every function in this package is pure: it reads a campaign and a
// reference date and returns new values. Nothing is cached and nothing is
// shared, so campaigns can be evaluated concurrently in any order.
package pacing
