// Package opportunity implements the opportunity model (spec §4.11,
// component C11): attaching activity-type counts to reached destinations,
// combining multiple tabular models with zero-padding, and rolling those
// counts up per time-bin into the output document (package output).
package opportunity
