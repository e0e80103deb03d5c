// Package sink collects the notices emitted during a validation run.
package sink
