// Package candidates reads candidate records from CSV files.
//
// The expected layout is a header row naming exactly the columns
// first_name, last_name, email, phone and skills (any order), followed by one
// candidate per row. Files must be UTF-8 and comma-delimited.
//
// Every row must have as many fields as the header. A short or long row, bad
// quoting or invalid UTF-8 fails with recruit.ErrMalformedInput and the line
// number of the offending record.
package candidates
