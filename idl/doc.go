// Package idl parses the sides interface description language.
//
// A file is a list of declarations:
//
//	binding = "sides"
//
//	Thing = interface +c {
//		number(): i32;
//		static create(seed: u32): Thing;
//	}
//
//	Color = enum { red; green; }
//
// Interfaces list the languages they are generated for (+c) and their
// methods. Methods without a return type return void. Static methods take
// no receiver; all others receive the object as an implicit first argument.
// Settings bind a name to a string; the legacy form is wrapped in '#'.
package idl
