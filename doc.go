// Package gtfsvalidator validates a GTFS schedule feed.
//
// A run opens the feed, checks its files, loads every table through the
// per-entity processors into one repository, then applies the feed-wide
// rules. Tables load concurrently; notices are reported in table order
// regardless of scheduling.
//
// Example:
//
//	v := gtfsvalidator.New(gtfsvalidator.Options{Logger: logger})
//	report, err := v.Run(ctx, "feed.zip")
//	if err != nil {
//	    // the feed could not be read at all
//	}
//	fmt.Println(report.Errors, report.Warnings)
package gtfsvalidator
