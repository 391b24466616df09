// Package appointment provides the display-ready appointment model.
//
// It turns raw scheduler slots into appointments with a resolved location
// name and timestamps localized to a display timezone, and provides the
// state-based location filter and start-time sort used by the checker.
package appointment
