// Package bin implements destination binning (spec §4.10, component C10):
// classifying a reached destination's state into distance/time/energy/
// custom-range/boolean bins, and generating consecutive bins from a
// BinsConfig's value list.
package bin
