// Package ui implements the two ways of choosing one resolved link.
//
//  1. [Menu] : an arrow-key menu drawn on a raw-mode terminal
//  2. [Prompt] : a numbered, line-oriented prompt used when no raw terminal is available
//
// The menu is a small state machine. [KeyDecoder] turns raw input bytes into [Key] events one byte at a time
// (ESC, '[', final byte), and [SelectionState] applies those events to a cursor over the borrowed link list.
// Neither touches terminal I/O.
package ui
