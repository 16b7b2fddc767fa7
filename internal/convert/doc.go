// Package convert moves numbers in and out of text and between integer
// widths.
//
// Integer conversions go through [safemath] so out-of-range values are
// reported instead of silently truncated. Text is handled by [cast].
package convert
