// Package rules holds the checks that need more than one record, such as
// references between tables. They run once every table has been loaded.
package rules
