// Package preprocess cleans and encodes analyst-scored domain records into a
// numeric-ready frame.
//
// Preprocess runs a fixed sequence of steps; the order matters because the
// domainAge statistics are computed over the rows that survive label
// filtering:
//   - drop the traffic and usage-rank columns
//   - drop unlabeled rows
//   - binarize privateRegistrationStatus and registrantContactCountry
//   - z-score domainAge
//   - map analystResult to 0/1
//
// Example Usage:
//
//	p := preprocess.New(preprocess.WithLogger(logger))
//	clean, err := p.Preprocess(frame)
package preprocess
