// Package reconcile holds the collection bookkeeping that keeps the catalog
// consistent: duplicate-copy detection and numbering, unboxed shelf location
// assignment, and the availability cache refresh policy.
package reconcile
