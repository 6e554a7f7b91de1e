// Package inventory reads device inventories and normalizes them into
// per-address entries.
//
// An inventory is a CSV file whose header names the columns
//
//	Device Name, IP Address, URL, CIDR
//
// Only "IP Address" is required to carry data; the others may be absent or
// empty. A single row may list several addresses separated by commas:
//
//	Device Name,IP Address,URL,CIDR
//	core-sw,"10.0.0.1,10.0.0.2",https://core-sw.example,24
//	,192.168.1.5,,
//
// # Reading
//
// [ReadFile] and [ReadCSV] return the raw rows in file order. A leading byte
// order mark is skipped, so spreadsheets exported as "CSV UTF-8" or UTF-16
// read the same as plain files. Any failure to open or parse the source is
// reported as a SOURCE_UNREADABLE error.
//
// # Normalizing
//
// [Normalize] expands each [RawRow] into one [DeviceEntry] per address. It
// never drops anything: empty or malformed addresses pass through and are
// rejected later by the subnet grouper.
package inventory
