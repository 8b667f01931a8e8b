// Package model defines the data shared by every stage of a document
// comparison.
//
// A [CharacterRun] is one rendered character with its font and position. A
// [WordToken] groups the runs of one word and carries the line the word was
// found on. The diff engine marks tokens with an [OpSet] and reports them as
// [DiffRecord] values.
//
// Coordinates are top-down: Y grows towards the bottom of the page.
package model
