// Package ttp is a client for the DHS Trusted Traveler Programs scheduler API.
//
// The scheduler API exposes two public endpoints used here: a locations
// endpoint listing operational enrollment centers for a named service, and a
// slots endpoint returning the soonest open appointment slots at a single
// location. Neither endpoint requires authentication.
package ttp
